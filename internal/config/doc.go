// Package config provides configuration loading, merging, and validation
// facilities for the go-conf-token CLI.
//
// Configuration is assembled from multiple sources in the following priority
// order (the first source to set a field wins):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON config file (path resolved from sources 1 and 2)
//
// The main entry point is [GetConfig].
package config
