// Package sink publishes finished result tables to external systems.
//
// Sinks are declared in the sweep file as `sink "<kind>" { ... }` blocks
// and built by New. The supported kinds are postgres, redis, mqtt and
// socketio. Every row travels as the JSON form of Record. The CSV file
// written by the report package remains the primary artifact; sinks are
// best effort and their failures are logged by the sweep driver.
package sink
