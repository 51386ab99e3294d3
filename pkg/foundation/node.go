package foundation

import (
	"github.com/openmesh-protocol/meshcfg-go/pkg/mesh"
	"github.com/openmesh-protocol/meshcfg-go/pkg/model"
	"github.com/openmesh-protocol/meshcfg-go/pkg/wire"
)

// replyCompositionData answers a CompositionDataGet with the local
// node's composition page. Without a local node record there is nothing
// authoritative to report and the request is ignored.
func (e *Engine) replyCompositionData(m *wire.CompositionDataGet, src mesh.Address) {
	node, err := e.network.LocalNode()
	if err != nil {
		return
	}

	info := node.DeviceInfo()
	page := &wire.CompositionPage0{
		CompanyID: info.CompanyID,
		ProductID: info.ProductID,
		VersionID: info.VersionID,
		CRPL:      info.CRPL,
		Features:  info.Features,
	}
	for _, element := range node.Elements() {
		desc := wire.ElementDescriptor{Location: element.Location()}
		for _, mod := range element.Models() {
			if mod.ID().IsVendor() {
				desc.VendorModels = append(desc.VendorModels, mod.ID())
			} else {
				desc.SIGModels = append(desc.SIGModels, mod.ID())
			}
		}
		page.Elements = append(page.Elements, desc)
	}

	e.send(&wire.CompositionDataStatus{Page: 0, Data: page}, src)
}

// applyComposition applies reported composition data to the source node,
// creating its elements and models. The operation is unambiguous, so no
// table lookup is needed.
func (e *Engine) applyComposition(m *wire.CompositionDataStatus, src mesh.Address) {
	if m.Data == nil {
		return
	}
	node, err := e.network.Node(src)
	if err != nil {
		return
	}

	info := model.DeviceInfo{
		CompanyID: m.Data.CompanyID,
		ProductID: m.Data.ProductID,
		VersionID: m.Data.VersionID,
		CRPL:      m.Data.CRPL,
		Features:  m.Data.Features,
	}
	elements := make([]*model.Element, 0, len(m.Data.Elements))
	for i, desc := range m.Data.Elements {
		models := make([]*model.Model, 0, len(desc.SIGModels)+len(desc.VendorModels))
		for _, id := range desc.SIGModels {
			models = append(models, model.NewModel(id))
		}
		for _, id := range desc.VendorModels {
			models = append(models, model.NewModel(id))
		}
		addr := node.PrimaryUnicast() + mesh.Address(i)
		elements = append(elements, model.NewElement(addr, desc.Location, models...))
	}

	node.ApplyComposition(info, elements)
	e.logMutation(src, m.Opcode(), "composition data applied")
	e.persist()
}

// replyDefaultTTL answers a DefaultTTLGet with the local node's stored
// default TTL, falling back to the stack-wide default.
func (e *Engine) replyDefaultTTL(src mesh.Address) {
	ttl := mesh.DefaultTTL
	if node, err := e.network.LocalNode(); err == nil {
		if stored, ok := node.DefaultTTL(); ok {
			ttl = stored
		}
	}
	e.send(&wire.DefaultTTLStatus{TTL: ttl}, src)
}

// setLocalDefaultTTL handles a DefaultTTLSet addressed to this node and
// replies with a status echoing the stored value.
func (e *Engine) setLocalDefaultTTL(m *wire.DefaultTTLSet, src mesh.Address) {
	ttl := mesh.DefaultTTL
	if node, err := e.network.LocalNode(); err == nil {
		node.SetDefaultTTL(m.TTL)
		e.logMutation(src, m.Opcode(), "local default TTL stored")
		e.persist()
		ttl, _ = node.DefaultTTL()
	}
	e.send(&wire.DefaultTTLStatus{TTL: ttl}, src)
}

// handleDefaultTTLStatus stores the reported default TTL on the source
// node.
func (e *Engine) handleDefaultTTLStatus(m *wire.DefaultTTLStatus, src mesh.Address) {
	node, err := e.network.Node(src)
	if err != nil {
		return
	}

	node.SetDefaultTTL(m.TTL)
	e.logMutation(src, m.Opcode(), "node default TTL stored")
	e.persist()
}

// handleNodeReset removes the source node from the topology entirely.
func (e *Engine) handleNodeReset(src mesh.Address) {
	if !e.network.RemoveNode(src) {
		return
	}
	e.logMutation(src, wire.OpNodeResetStatus, "node removed")
	e.persist()
}
