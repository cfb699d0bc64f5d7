// Package config provides configuration loading, merging, and validation
// facilities for the league server.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. A .env file, loaded into the process environment
//  2. Environment variables
//  3. Command-line flags
//  4. JSON config file
//
// Fields left empty by every source receive the defaults of [Default].
// The main entry point is [GetStructuredConfig].
package config
