// Package report serializes result tables: one CSV file per skip mode and
// an aligned console summary printed after each sweep.
package report
