// Package config defines the format-agnostic description of a benchmark
// sweep (config.Plan), along with the Loader interface that turns a sweep
// file into one.
//
// The Plan is the single source of truth for the app and sweep packages.
// The concrete HCL implementation of Loader lives in the hcl package.
package config
