package model

import "github.com/openmesh-protocol/meshcfg-go/pkg/mesh"

// NetworkKey is a global network key record.
type NetworkKey struct {
	// Index is unique among network keys.
	Index uint16

	// Key is the 16-byte key value.
	Key []byte

	// Name is a human-readable label.
	Name string
}

// ApplicationKey is a global application key record, bound to exactly one
// network key.
type ApplicationKey struct {
	// Index is unique among application keys.
	Index uint16

	// BoundNetKeyIndex is the index of the network key this key is bound to.
	BoundNetKeyIndex uint16

	// Key is the 16-byte key value.
	Key []byte

	// Name is a human-readable label.
	Name string
}

// NodeKey records a node's knowledge of one global key.
type NodeKey struct {
	// Index refers to a global key of the corresponding kind.
	Index uint16 `json:"index" yaml:"index"`

	// Updated marks completion of the second key-refresh phase on the node.
	Updated bool `json:"updated,omitempty" yaml:"updated,omitempty"`
}

// Group is a named rendezvous point. Its address may be a group address
// or a virtual address with a known label.
type Group struct {
	// Name is a human-readable label.
	Name string

	// Address is the group's mesh address.
	Address mesh.MeshAddress
}
