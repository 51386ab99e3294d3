// Package persistence stores the topology model outside the process.
//
// The canonical format is a versioned JSON snapshot of a Network,
// written after every mutation the configuration engine applies. A
// YAML form of the same snapshot is supported for human-edited network
// definitions.
package persistence
