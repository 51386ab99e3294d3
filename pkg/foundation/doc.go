// Package foundation implements the Config message engine: the
// bidirectional state machine that keeps the locally cached topology
// consistent with the authoritative state on each remote node.
//
// # Correlation
//
// Several status kinds can be produced by different request kinds, each
// demanding a different state effect. The engine therefore records every
// outbound correlatable request in a pending request table keyed by
// destination: one live entry per address, silently replaced by the next
// request to the same address, never queued. When a status arrives, the
// entry for its source disambiguates the intent.
//
// # Contracts
//
// Every branch that mutates the topology invokes the persister before the
// table entry is cleared (mutate, persist, then acknowledge locally).
// The persister's outcome is ignored. References that do not resolve
// (unknown node, element, model or group) abort the branch silently: the
// mesh is eventually consistent and missing entries are expected during
// transient desync. The engine neither retries nor times out requests;
// an unanswered request leaves a stale table entry until a later request
// to the same address supersedes it.
//
// The engine is single-threaded per network instance: inbound handling
// and outbound gating are serialized by one mutex, and no operation
// blocks or suspends.
package foundation
