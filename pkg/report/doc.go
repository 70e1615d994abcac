// Package report prints the console output of cmsctl: centred section
// banners and pretty-printed dumps of query results.
package report
