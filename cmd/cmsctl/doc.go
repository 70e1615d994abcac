// Command cmsctl drives the CMS schema: it synchronizes the tables, seeds the
// reference data set and prints the association queries.
//
// # Quick Start
//
//	# Whole script against a local MySQL
//	export DB_USER=root DB_PASS=secret DB_HOST=localhost
//	cmsctl run
//
//	# Same thing on a throwaway SQLite database
//	DATABASE_URL=sqlite://:memory: cmsctl run
//
//	# Step by step
//	cmsctl schema sync
//	cmsctl seed --no-sync
//	cmsctl query --output yaml
//
// # Environment Variables
//
//   - DATABASE_URL: full connection URL (postgres://, mysql:// or sqlite://)
//   - DB_ENGINE, DB_USER, DB_PASS, DB_HOST, DB_NAME: used when DATABASE_URL is empty
//   - CMS_LOG_LEVEL: SQL log level (silent, error, warn, info)
//   - CMS_OUTPUT: report format (text, yaml, markdown, html)
//   - CMS_FIXTURES_PATH: seed fixtures file replacing the embedded data set
//   - CMS_EXPIRY_CUTOFF: date secrets are compared against (YYYY-MM-DD)
//   - CMS_CONFIG_PATH: directory holding cms.yml (default /etc/cms)
package main
