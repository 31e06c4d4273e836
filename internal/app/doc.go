// Package app contains the core application logic. It defines the main App
// struct, its configuration, and the sweep lifecycle: load the sweep file,
// connect the sinks, drive the renderer and report progress. It is
// decoupled from any specific entrypoint like a CLI.
package app
