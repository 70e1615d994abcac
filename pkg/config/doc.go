// Package config provides configuration management for cmsctl.
//
// # Configuration Sources
//
// Configuration is loaded in three layers, each overriding the previous:
//
//   - Built-in defaults
//   - cms.yml in CMS_CONFIG_PATH (default /etc/cms), optional
//   - Environment variables
//
// Every attribute remembers which layer set it; `cmsctl configuration show`
// prints the value with its source.
//
// # Key Configuration Options
//
//   - DATABASE_URL: full connection URL (postgres://, mysql://, sqlite://)
//   - DB_ENGINE, DB_USER, DB_PASS, DB_HOST, DB_NAME: used when DATABASE_URL is unset
//   - CMS_LOG_LEVEL: gorm SQL logging (silent, error, warn, info)
//   - CMS_OUTPUT: report format (text, yaml, markdown, html)
//   - CMS_BANNER_WIDTH, CMS_BANNER_FILL: section banner layout
//   - CMS_FIXTURES_PATH: seed fixtures file replacing the embedded one
//   - CMS_EXPIRY_CUTOFF: date of the secret expiry query
package config
