// Package sweep implements the benchmark sweep driver.
//
// For each configured skip mode the driver walks the image table and the
// skip mode's block sizes in order, invokes the renderer once per
// configuration, and collects a Row for every successful invocation. The
// finished table is written to benchmark_results_<skipmode>.csv, echoed to
// the console and handed to the configured publisher.
//
// Execution is strictly sequential: one renderer process at a time, each
// awaited before the next starts.
//
// Under skip mode 0 (no empty-space skipping) the block size does not
// influence the renderer, so only the first block size is actually run per
// image and its metrics are reused for the remaining block sizes. If that
// single run fails the image contributes no rows at all under skip mode 0.
package sweep
