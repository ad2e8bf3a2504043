// Package config provides configuration loading, merging, and validation
// facilities for the campus assistant client.
//
// Configuration is assembled from multiple sources in the following priority
// order (the first source that sets a field wins):
//  1. Environment variables, after loading an optional .env file
//  2. Command-line flags
//  3. JSON config file
//  4. Built-in defaults
//
// The main entry points are [GetStructuredConfig] for the merged source view
// and [GetClientConfig] for the validated client runtime view.
package config
