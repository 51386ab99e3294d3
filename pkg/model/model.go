package model

import (
	"sort"

	"github.com/openmesh-protocol/meshcfg-go/pkg/mesh"
)

// Model is a functional unit on an element. It owns the application key
// bind list, an optional publication descriptor and the subscription
// list. All three are mutated exclusively by the configuration engine.
type Model struct {
	id mesh.ModelID

	// bind holds application key indices, sorted, at most one per index.
	bind []uint16

	publish *mesh.Publish

	// subscribe holds at most one entry per raw address.
	subscribe []mesh.MeshAddress
}

// NewModel creates a model with the given ID.
func NewModel(id mesh.ModelID) *Model {
	return &Model{id: id}
}

// ID returns the model ID.
func (m *Model) ID() mesh.ModelID {
	return m.id
}

// Bindings returns a copy of the bound application key indices, sorted.
func (m *Model) Bindings() []uint16 {
	return append([]uint16(nil), m.bind...)
}

// Bind adds an application key index to the bind list. Returns true if
// the index was not already bound.
func (m *Model) Bind(index uint16) bool {
	for _, b := range m.bind {
		if b == index {
			return false
		}
	}
	m.bind = append(m.bind, index)
	sort.Slice(m.bind, func(i, j int) bool { return m.bind[i] < m.bind[j] })
	return true
}

// Unbind removes an application key index from the bind list.
func (m *Model) Unbind(index uint16) bool {
	for i, b := range m.bind {
		if b == index {
			m.bind = append(m.bind[:i], m.bind[i+1:]...)
			return true
		}
	}
	return false
}

// SetBindings replaces the bind list wholesale, deduplicated and sorted.
func (m *Model) SetBindings(indexes []uint16) {
	bind := make([]uint16, 0, len(indexes))
	for _, index := range indexes {
		duplicate := false
		for _, b := range bind {
			if b == index {
				duplicate = true
				break
			}
		}
		if !duplicate {
			bind = append(bind, index)
		}
	}
	sort.Slice(bind, func(i, j int) bool { return bind[i] < bind[j] })
	m.bind = bind
}

// IsBoundTo returns true if the application key index is bound.
func (m *Model) IsBoundTo(index uint16) bool {
	for _, b := range m.bind {
		if b == index {
			return true
		}
	}
	return false
}

// Publish returns the publication descriptor, if one is set.
func (m *Model) Publish() (mesh.Publish, bool) {
	if m.publish == nil {
		return mesh.Publish{}, false
	}
	return *m.publish, true
}

// SetPublish stores the publication descriptor verbatim.
func (m *Model) SetPublish(p mesh.Publish) {
	m.publish = &p
}

// ClearPublish removes the publication descriptor.
func (m *Model) ClearPublish() {
	m.publish = nil
}

// Subscriptions returns a copy of the subscription list.
func (m *Model) Subscriptions() []mesh.MeshAddress {
	return append([]mesh.MeshAddress(nil), m.subscribe...)
}

// SubscribesTo returns true if the model subscribes to the raw address.
func (m *Model) SubscribesTo(addr mesh.Address) bool {
	for _, s := range m.subscribe {
		if s.Address == addr {
			return true
		}
	}
	return false
}

// Subscribe adds an address to the subscription list. An entry with the
// same raw address is replaced, so a later canonical representation (with
// label) supersedes an earlier raw one. Returns true if the address was
// not subscribed before.
func (m *Model) Subscribe(addr mesh.MeshAddress) bool {
	for i, s := range m.subscribe {
		if s.Address == addr.Address {
			m.subscribe[i] = addr
			return false
		}
	}
	m.subscribe = append(m.subscribe, addr)
	return true
}

// Unsubscribe removes the entry with the given raw address.
func (m *Model) Unsubscribe(addr mesh.Address) bool {
	for i, s := range m.subscribe {
		if s.Address == addr {
			m.subscribe = append(m.subscribe[:i], m.subscribe[i+1:]...)
			return true
		}
	}
	return false
}

// ClearSubscriptions empties the subscription list.
func (m *Model) ClearSubscriptions() {
	m.subscribe = nil
}

// SetSubscriptions replaces the subscription list wholesale, keeping the
// first entry per raw address.
func (m *Model) SetSubscriptions(addrs []mesh.MeshAddress) {
	m.subscribe = nil
	for _, addr := range addrs {
		m.Subscribe(addr)
	}
}
