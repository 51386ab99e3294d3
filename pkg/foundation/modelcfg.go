package foundation

import (
	"github.com/openmesh-protocol/meshcfg-go/pkg/mesh"
	"github.com/openmesh-protocol/meshcfg-go/pkg/model"
	"github.com/openmesh-protocol/meshcfg-go/pkg/wire"
)

// resolveModel walks source node -> element -> model. Any miss means the
// local cache is behind the device; callers abort their branch silently.
func (e *Engine) resolveModel(src, elementAddr mesh.Address, id mesh.ModelID) (*model.Model, bool) {
	node, err := e.network.Node(src)
	if err != nil {
		return nil, false
	}
	element, err := node.Element(elementAddr)
	if err != nil {
		return nil, false
	}
	m, err := element.Model(id)
	if err != nil {
		return nil, false
	}
	return m, true
}

// handleModelAppStatus applies the outcome of a correlated bind or
// unbind to the model's bind list.
func (e *Engine) handleModelAppStatus(m *wire.ModelAppStatus, src mesh.Address) {
	if !m.Status.IsSuccess() {
		return
	}
	req, ok := e.table.Get(src)
	if !ok {
		return
	}
	target, ok := e.resolveModel(src, m.ElementAddress, m.ModelID)
	if !ok {
		return
	}

	switch req.(type) {
	case *wire.ModelAppBind:
		target.Bind(m.AppKeyIndex)
	case *wire.ModelAppUnbind:
		target.Unbind(m.AppKeyIndex)
	default:
		return
	}

	e.logMutation(src, m.Opcode(), "model bind list changed")
	e.persist()
	e.table.Delete(src)
}

// handleModelAppList replaces the model's bind list wholesale. The full
// list is returned, so the replace is idempotent and needs no
// correlation.
func (e *Engine) handleModelAppList(m *wire.ModelAppList, src mesh.Address) {
	if !m.Status.IsSuccess() {
		return
	}
	target, ok := e.resolveModel(src, m.ElementAddress, m.ModelID)
	if !ok {
		return
	}

	target.SetBindings(m.Indexes)
	e.logMutation(src, m.Opcode(), "model bind list rebuilt")
	e.persist()
}

// handlePublicationStatus applies a publication status. The effect
// depends on the correlated request:
//
//   - Set: the unassigned address clears the publication; anything else
//     stores the reported descriptor verbatim.
//   - Virtual-address set: stores the request's descriptor, which carries
//     the full label the status cannot.
//   - Get: resolves the reported address against local groups to recover
//     a label when one is known.
func (e *Engine) handlePublicationStatus(m *wire.ModelPublicationStatus, src mesh.Address) {
	if !m.Status.IsSuccess() {
		return
	}
	req, ok := e.table.Get(src)
	if !ok {
		return
	}
	target, ok := e.resolveModel(src, m.ElementAddress, m.ModelID)
	if !ok {
		return
	}

	switch r := req.(type) {
	case *wire.ModelPublicationSet:
		if m.Publish.Address.Address.IsUnassigned() {
			target.ClearPublish()
		} else {
			target.SetPublish(m.Publish)
		}

	case *wire.ModelPublicationVirtualAddressSet:
		// The status reports only the derived 16-bit address; requester
		// and responder describe the same publication, so keep the
		// request's descriptor with its full label.
		target.SetPublish(r.Publish)

	case *wire.ModelPublicationGet:
		addr := m.Publish.Address.Address
		switch {
		case addr.IsUnassigned():
			target.ClearPublish()
		case addr.IsVirtual():
			p := m.Publish
			if group, err := e.network.Group(addr); err == nil && group.Address.HasLabel() {
				p.Address = group.Address
			} else {
				p.Address = mesh.NewAddress(addr)
			}
			target.SetPublish(p)
		default:
			target.SetPublish(m.Publish)
		}

	default:
		return
	}

	e.logMutation(src, m.Opcode(), "model publication changed")
	e.persist()
	e.table.Delete(src)
}

// handleSubscriptionStatus applies a subscription status. A correlated
// delete-all acts without consulting the reported address, which carries
// no meaning in that reply. For every other correlated kind the reported
// address must resolve to a local group; a miss only drops the pending
// entry.
func (e *Engine) handleSubscriptionStatus(m *wire.ModelSubscriptionStatus, src mesh.Address) {
	if !m.Status.IsSuccess() {
		return
	}
	req, ok := e.table.Get(src)
	if !ok {
		return
	}
	target, ok := e.resolveModel(src, m.ElementAddress, m.ModelID)
	if !ok {
		return
	}

	if _, ok := req.(*wire.ModelSubscriptionDeleteAll); ok {
		target.ClearSubscriptions()
		e.logMutation(src, m.Opcode(), "model subscriptions cleared")
		e.persist()
		e.table.Delete(src)
		return
	}

	group, err := e.network.Group(m.Address)
	if err != nil {
		e.table.Delete(src)
		return
	}

	switch req.(type) {
	case *wire.ModelSubscriptionOverwrite, *wire.ModelSubscriptionVirtualAddressOverwrite:
		target.ClearSubscriptions()
		target.Subscribe(group.Address)
	case *wire.ModelSubscriptionAdd, *wire.ModelSubscriptionVirtualAddressAdd:
		target.Subscribe(group.Address)
	case *wire.ModelSubscriptionDelete, *wire.ModelSubscriptionVirtualAddressDelete:
		target.Unsubscribe(group.Address.Address)
	default:
		return
	}

	e.logMutation(src, m.Opcode(), "model subscriptions changed")
	e.persist()
	e.table.Delete(src)
}

// handleSubscriptionList replaces the model's subscription list
// wholesale, substituting each reported address with the matching local
// group's canonical representation when one exists.
func (e *Engine) handleSubscriptionList(m *wire.ModelSubscriptionList, src mesh.Address) {
	if !m.Status.IsSuccess() {
		return
	}
	target, ok := e.resolveModel(src, m.ElementAddress, m.ModelID)
	if !ok {
		return
	}

	addrs := make([]mesh.MeshAddress, 0, len(m.Addresses))
	for _, addr := range m.Addresses {
		if group, err := e.network.Group(addr); err == nil {
			addrs = append(addrs, group.Address)
		} else {
			addrs = append(addrs, mesh.NewAddress(addr))
		}
	}
	target.SetSubscriptions(addrs)
	e.logMutation(src, m.Opcode(), "model subscriptions rebuilt")
	e.persist()
}
