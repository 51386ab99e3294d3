// Package model implements the topology model of the mesh network.
//
// # Hierarchy
//
// The topology mirrors the authoritative state held by the devices:
//
//	Network > Node > Element > Model
//
// A Network is the locally cached view of one mesh network: its
// provisioned Nodes, global network and application keys, and Groups.
// Each Node is addressed by a unicast address and holds its per-node key
// records, default TTL and Elements. Elements host Models, which carry
// the application key bind list, an optional publication descriptor and
// a subscription list.
//
// The package is pure data with invariant-preserving mutators and has no
// protocol awareness: every mutation here is driven by the configuration
// engine in response to status messages.
//
// # Synchronization
//
// The Network guards its node, group and key tables with its own lock.
// Node, Element and Model are not internally synchronized; the
// configuration engine serializes all access to them (one goroutine per
// network instance).
package model
