// Package hcl provides the HCL implementation of config.Loader. It finds
// sweep files, decodes their blocks with gohcl against an evaluation
// context that knows the skip-mode names, the process environment and a
// few cty standard-library functions, and translates the result into a
// config.Plan.
package hcl
