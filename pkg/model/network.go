package model

import (
	"bytes"
	"errors"
	"sort"
	"sync"

	"github.com/openmesh-protocol/meshcfg-go/pkg/mesh"
)

// Network errors.
var (
	ErrNodeNotFound   = errors.New("node not found")
	ErrDuplicateNode  = errors.New("duplicate node address")
	ErrGroupNotFound  = errors.New("group not found")
	ErrDuplicateGroup = errors.New("duplicate group address")
	ErrKeyNotFound    = errors.New("key not found")
	ErrKeyIndexInUse  = errors.New("key index holds a different key")
	ErrKeyStorageFull = errors.New("key storage exhausted")
	ErrKeyInUse       = errors.New("network key has bound application keys")
)

// DefaultKeyCapacity is the number of key slots of each kind a Network
// offers unless configured otherwise.
const DefaultKeyCapacity = 16

// Network is the locally cached view of one mesh network. It owns the
// provisioned nodes, the global key records and the groups, and is the
// topology handle passed into the configuration engine.
type Network struct {
	mu sync.RWMutex

	// Name is a human-readable network label.
	name string

	// localAddress is the primary unicast of the node this stack runs on.
	localAddress mesh.Address

	nodes  []*Node
	groups []*Group

	netKeys map[uint16]*NetworkKey
	appKeys map[uint16]*ApplicationKey

	keyCapacity int
}

// NewNetwork creates an empty network.
func NewNetwork(name string) *Network {
	return &Network{
		name:        name,
		netKeys:     make(map[uint16]*NetworkKey),
		appKeys:     make(map[uint16]*ApplicationKey),
		keyCapacity: DefaultKeyCapacity,
	}
}

// Name returns the network label.
func (n *Network) Name() string {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return n.name
}

// SetName sets the network label.
func (n *Network) SetName(name string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.name = name
}

// SetKeyCapacity sets the number of key slots per kind.
func (n *Network) SetKeyCapacity(capacity int) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.keyCapacity = capacity
}

// LocalAddress returns the primary unicast of the local node.
func (n *Network) LocalAddress() mesh.Address {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return n.localAddress
}

// SetLocalAddress designates the local node by its primary unicast.
func (n *Network) SetLocalAddress(addr mesh.Address) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.localAddress = addr
}

// LocalNode returns the node record of the local node.
func (n *Network) LocalNode() (*Node, error) {
	n.mu.RLock()
	addr := n.localAddress
	n.mu.RUnlock()
	return n.Node(addr)
}

// AddNode adds a provisioned node. The node's address range must not
// collide with an existing node's primary unicast.
func (n *Network) AddNode(node *Node) error {
	n.mu.Lock()
	defer n.mu.Unlock()

	for _, existing := range n.nodes {
		if existing.ContainsAddress(node.PrimaryUnicast()) || node.ContainsAddress(existing.PrimaryUnicast()) {
			return ErrDuplicateNode
		}
	}
	n.nodes = append(n.nodes, node)
	return nil
}

// Node returns the node owning the given unicast address. The address may
// be the primary unicast or any element address of the node.
func (n *Network) Node(addr mesh.Address) (*Node, error) {
	n.mu.RLock()
	defer n.mu.RUnlock()

	for _, node := range n.nodes {
		if node.ContainsAddress(addr) {
			return node, nil
		}
	}
	return nil, ErrNodeNotFound
}

// RemoveNode removes the node owning the given address together with all
// its elements, models and key records.
func (n *Network) RemoveNode(addr mesh.Address) bool {
	n.mu.Lock()
	defer n.mu.Unlock()

	for i, node := range n.nodes {
		if node.ContainsAddress(addr) {
			n.nodes = append(n.nodes[:i], n.nodes[i+1:]...)
			return true
		}
	}
	return false
}

// Nodes returns all nodes ordered by primary unicast.
func (n *Network) Nodes() []*Node {
	n.mu.RLock()
	defer n.mu.RUnlock()

	result := make([]*Node, len(n.nodes))
	copy(result, n.nodes)
	sort.Slice(result, func(i, j int) bool {
		return result[i].PrimaryUnicast() < result[j].PrimaryUnicast()
	})
	return result
}

// AddGroup adds a group. Groups are unique by raw address.
func (n *Network) AddGroup(group *Group) error {
	n.mu.Lock()
	defer n.mu.Unlock()

	for _, existing := range n.groups {
		if existing.Address.Address == group.Address.Address {
			return ErrDuplicateGroup
		}
	}
	n.groups = append(n.groups, group)
	return nil
}

// Group returns the group with the given raw address.
func (n *Network) Group(addr mesh.Address) (*Group, error) {
	n.mu.RLock()
	defer n.mu.RUnlock()

	for _, group := range n.groups {
		if group.Address.Address == addr {
			return group, nil
		}
	}
	return nil, ErrGroupNotFound
}

// RemoveGroup removes the group with the given raw address.
func (n *Network) RemoveGroup(addr mesh.Address) bool {
	n.mu.Lock()
	defer n.mu.Unlock()

	for i, group := range n.groups {
		if group.Address.Address == addr {
			n.groups = append(n.groups[:i], n.groups[i+1:]...)
			return true
		}
	}
	return false
}

// Groups returns all groups ordered by raw address.
func (n *Network) Groups() []*Group {
	n.mu.RLock()
	defer n.mu.RUnlock()

	result := make([]*Group, len(n.groups))
	copy(result, n.groups)
	sort.Slice(result, func(i, j int) bool {
		return result[i].Address.Address < result[j].Address.Address
	})
	return result
}

// AddNetworkKey stores a network key at the given index. Adding an
// identical key at an occupied index is idempotent; a different key value
// fails with ErrKeyIndexInUse. A full key store fails with
// ErrKeyStorageFull.
func (n *Network) AddNetworkKey(index uint16, key []byte) (*NetworkKey, error) {
	n.mu.Lock()
	defer n.mu.Unlock()

	if existing, ok := n.netKeys[index]; ok {
		if bytes.Equal(existing.Key, key) {
			return existing, nil
		}
		return nil, ErrKeyIndexInUse
	}
	if len(n.netKeys) >= n.keyCapacity {
		return nil, ErrKeyStorageFull
	}

	nk := &NetworkKey{Index: index, Key: append([]byte(nil), key...)}
	n.netKeys[index] = nk
	return nk, nil
}

// UpdateNetworkKey replaces the key value stored at the index.
func (n *Network) UpdateNetworkKey(index uint16, key []byte) error {
	n.mu.Lock()
	defer n.mu.Unlock()

	nk, ok := n.netKeys[index]
	if !ok {
		return ErrKeyNotFound
	}
	nk.Key = append([]byte(nil), key...)
	return nil
}

// RemoveNetworkKey removes the network key at the index together with
// every application key bound to it. Unless force is set, removal fails
// with ErrKeyInUse while bound application keys exist.
func (n *Network) RemoveNetworkKey(index uint16, force bool) error {
	n.mu.Lock()
	defer n.mu.Unlock()

	if _, ok := n.netKeys[index]; !ok {
		return ErrKeyNotFound
	}

	var bound []uint16
	for appIndex, ak := range n.appKeys {
		if ak.BoundNetKeyIndex == index {
			bound = append(bound, appIndex)
		}
	}
	if len(bound) > 0 && !force {
		return ErrKeyInUse
	}

	for _, appIndex := range bound {
		delete(n.appKeys, appIndex)
	}
	delete(n.netKeys, index)
	return nil
}

// NetworkKey returns the network key at the index.
func (n *Network) NetworkKey(index uint16) (*NetworkKey, error) {
	n.mu.RLock()
	defer n.mu.RUnlock()

	nk, ok := n.netKeys[index]
	if !ok {
		return nil, ErrKeyNotFound
	}
	return nk, nil
}

// NetworkKeys returns all network keys ordered by index.
func (n *Network) NetworkKeys() []*NetworkKey {
	n.mu.RLock()
	defer n.mu.RUnlock()

	result := make([]*NetworkKey, 0, len(n.netKeys))
	for _, nk := range n.netKeys {
		result = append(result, nk)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Index < result[j].Index })
	return result
}

// NetworkKeyIndexes returns all network key indices in ascending order.
func (n *Network) NetworkKeyIndexes() []uint16 {
	keys := n.NetworkKeys()
	indexes := make([]uint16, len(keys))
	for i, nk := range keys {
		indexes[i] = nk.Index
	}
	return indexes
}

// AddApplicationKey stores an application key at the given index, bound
// to the network key at netKeyIndex. The bound network key must exist.
// Add semantics match AddNetworkKey.
func (n *Network) AddApplicationKey(index, netKeyIndex uint16, key []byte) (*ApplicationKey, error) {
	n.mu.Lock()
	defer n.mu.Unlock()

	if _, ok := n.netKeys[netKeyIndex]; !ok {
		return nil, ErrKeyNotFound
	}
	if existing, ok := n.appKeys[index]; ok {
		if bytes.Equal(existing.Key, key) && existing.BoundNetKeyIndex == netKeyIndex {
			return existing, nil
		}
		return nil, ErrKeyIndexInUse
	}
	if len(n.appKeys) >= n.keyCapacity {
		return nil, ErrKeyStorageFull
	}

	ak := &ApplicationKey{Index: index, BoundNetKeyIndex: netKeyIndex, Key: append([]byte(nil), key...)}
	n.appKeys[index] = ak
	return ak, nil
}

// UpdateApplicationKey replaces the key value stored at the index.
func (n *Network) UpdateApplicationKey(index uint16, key []byte) error {
	n.mu.Lock()
	defer n.mu.Unlock()

	ak, ok := n.appKeys[index]
	if !ok {
		return ErrKeyNotFound
	}
	ak.Key = append([]byte(nil), key...)
	return nil
}

// RemoveApplicationKey removes the application key at the index.
func (n *Network) RemoveApplicationKey(index uint16) error {
	n.mu.Lock()
	defer n.mu.Unlock()

	if _, ok := n.appKeys[index]; !ok {
		return ErrKeyNotFound
	}
	delete(n.appKeys, index)
	return nil
}

// ApplicationKey returns the application key at the index.
func (n *Network) ApplicationKey(index uint16) (*ApplicationKey, error) {
	n.mu.RLock()
	defer n.mu.RUnlock()

	ak, ok := n.appKeys[index]
	if !ok {
		return nil, ErrKeyNotFound
	}
	return ak, nil
}

// ApplicationKeys returns all application keys ordered by index.
func (n *Network) ApplicationKeys() []*ApplicationKey {
	n.mu.RLock()
	defer n.mu.RUnlock()

	result := make([]*ApplicationKey, 0, len(n.appKeys))
	for _, ak := range n.appKeys {
		result = append(result, ak)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Index < result[j].Index })
	return result
}
