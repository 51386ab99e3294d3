package model

import (
	"errors"
	"sort"

	"github.com/openmesh-protocol/meshcfg-go/pkg/mesh"
)

// Node errors.
var (
	ErrElementNotFound = errors.New("element not found")
	ErrModelNotFound   = errors.New("model not found")
)

// DeviceInfo is a node's identity as reported in composition data page 0.
type DeviceInfo struct {
	CompanyID uint16
	ProductID uint16
	VersionID uint16
	CRPL      uint16
	Features  uint16
}

// Node is a provisioned mesh device, identified by its primary unicast
// address. Its key lists, default TTL and element layout are mutated only
// by the configuration engine.
type Node struct {
	name    string
	unicast mesh.Address

	info        DeviceInfo
	composition bool

	defaultTTL *uint8

	netKeys []NodeKey
	appKeys []NodeKey

	elements []*Element
}

// NewNode creates a node at the given primary unicast address.
func NewNode(name string, unicast mesh.Address) *Node {
	return &Node{name: name, unicast: unicast}
}

// Name returns the node label.
func (n *Node) Name() string {
	return n.name
}

// SetName sets the node label.
func (n *Node) SetName(name string) {
	n.name = name
}

// PrimaryUnicast returns the node's primary unicast address.
func (n *Node) PrimaryUnicast() mesh.Address {
	return n.unicast
}

// ContainsAddress returns true if the address is the node's primary
// unicast or one of its element addresses.
func (n *Node) ContainsAddress(addr mesh.Address) bool {
	if addr == n.unicast {
		return true
	}
	for _, el := range n.elements {
		if el.Address() == addr {
			return true
		}
	}
	return false
}

// DeviceInfo returns the identity from the applied composition data.
func (n *Node) DeviceInfo() DeviceInfo {
	return n.info
}

// HasComposition returns true once composition data has been applied.
func (n *Node) HasComposition() bool {
	return n.composition
}

// ApplyComposition applies composition data: the device identity and the
// element layout. Element membership is fixed until the next application.
func (n *Node) ApplyComposition(info DeviceInfo, elements []*Element) {
	n.info = info
	n.elements = elements
	n.composition = true
}

// Elements returns the node's elements in address order.
func (n *Node) Elements() []*Element {
	return n.elements
}

// Element returns the element at the given unicast address.
func (n *Node) Element(addr mesh.Address) (*Element, error) {
	for _, el := range n.elements {
		if el.Address() == addr {
			return el, nil
		}
	}
	return nil, ErrElementNotFound
}

// DefaultTTL returns the node's default TTL, if one has been reported.
func (n *Node) DefaultTTL() (uint8, bool) {
	if n.defaultTTL == nil {
		return 0, false
	}
	return *n.defaultTTL, true
}

// SetDefaultTTL stores the node's default TTL.
func (n *Node) SetDefaultTTL(ttl uint8) {
	n.defaultTTL = &ttl
}

// NetKeys returns a copy of the node's network key records, in index order.
func (n *Node) NetKeys() []NodeKey {
	return append([]NodeKey(nil), n.netKeys...)
}

// AddNetKey appends a network key record unless one exists for the index.
// Returns true if a record was added.
func (n *Node) AddNetKey(index uint16) bool {
	return addKey(&n.netKeys, index)
}

// SetNetKeyUpdated marks the network key record's key-refresh flag.
// Returns true if a record for the index exists.
func (n *Node) SetNetKeyUpdated(index uint16) bool {
	return markUpdated(n.netKeys, index)
}

// RemoveNetKey removes the network key record for the index.
func (n *Node) RemoveNetKey(index uint16) bool {
	return removeKey(&n.netKeys, index)
}

// SetNetKeys replaces the network key records with fresh, not-updated
// records for the given indices, sorted by index.
func (n *Node) SetNetKeys(indexes []uint16) {
	n.netKeys = buildKeys(indexes)
}

// AppKeys returns a copy of the node's application key records, in index
// order.
func (n *Node) AppKeys() []NodeKey {
	return append([]NodeKey(nil), n.appKeys...)
}

// AddAppKey appends an application key record unless one exists for the
// index. Returns true if a record was added.
func (n *Node) AddAppKey(index uint16) bool {
	return addKey(&n.appKeys, index)
}

// SetAppKeyUpdated marks the application key record's key-refresh flag.
func (n *Node) SetAppKeyUpdated(index uint16) bool {
	return markUpdated(n.appKeys, index)
}

// RemoveAppKey removes the application key record for the index.
func (n *Node) RemoveAppKey(index uint16) bool {
	return removeKey(&n.appKeys, index)
}

// RemoveAppKeysFunc removes every application key record whose index
// matches the predicate. Returns the number of records removed.
func (n *Node) RemoveAppKeysFunc(match func(index uint16) bool) int {
	kept := n.appKeys[:0]
	removed := 0
	for _, k := range n.appKeys {
		if match(k.Index) {
			removed++
			continue
		}
		kept = append(kept, k)
	}
	n.appKeys = kept
	return removed
}

// AddAppKeys appends fresh, not-updated application key records for any
// of the indices not already present, keeping the list sorted.
func (n *Node) AddAppKeys(indexes []uint16) {
	for _, index := range indexes {
		addKey(&n.appKeys, index)
	}
}

// addKey inserts a fresh record keeping the list sorted and unique.
func addKey(keys *[]NodeKey, index uint16) bool {
	for _, k := range *keys {
		if k.Index == index {
			return false
		}
	}
	*keys = append(*keys, NodeKey{Index: index})
	sort.Slice(*keys, func(i, j int) bool { return (*keys)[i].Index < (*keys)[j].Index })
	return true
}

func markUpdated(keys []NodeKey, index uint16) bool {
	for i := range keys {
		if keys[i].Index == index {
			keys[i].Updated = true
			return true
		}
	}
	return false
}

func removeKey(keys *[]NodeKey, index uint16) bool {
	for i, k := range *keys {
		if k.Index == index {
			*keys = append((*keys)[:i], (*keys)[i+1:]...)
			return true
		}
	}
	return false
}

func buildKeys(indexes []uint16) []NodeKey {
	keys := make([]NodeKey, 0, len(indexes))
	for _, index := range indexes {
		duplicate := false
		for _, k := range keys {
			if k.Index == index {
				duplicate = true
				break
			}
		}
		if !duplicate {
			keys = append(keys, NodeKey{Index: index})
		}
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i].Index < keys[j].Index })
	return keys
}
