// Package renderer invokes the external volume renderer for a single
// configuration and scrapes its benchmark metrics.
//
// The renderer is treated as a black box with two contracts: the command
// line it accepts (--width, --height, --benchmark, --imin, --imax, --gmin,
// --gmax, --blocksize, --skipmode and a positional volume file) and the
// lines it prints once a benchmark completes. Run returns either the parsed
// metrics or a *RunError describing why no data point could be recorded.
package renderer
