// Package config provides configuration loading, merging, and validation
// facilities for both client-keeper binaries.
//
// Configuration is assembled from multiple sources in the following priority
// order (earlier sources win for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON config file
//
// The entry points are [GetServerConfig] for the reference backend and
// [GetClientConfig] for the terminal client. Each view applies its own
// defaults and validates itself.
package config
