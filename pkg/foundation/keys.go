package foundation

import (
	"errors"

	"github.com/openmesh-protocol/meshcfg-go/pkg/mesh"
	"github.com/openmesh-protocol/meshcfg-go/pkg/model"
	"github.com/openmesh-protocol/meshcfg-go/pkg/wire"
)

// replyNetKeyList answers a NetKeyGet from the local key store.
func (e *Engine) replyNetKeyList(src mesh.Address) {
	e.send(&wire.NetKeyList{Indexes: e.network.NetworkKeyIndexes()}, src)
}

// storeNetKey handles an inbound NetKeyAdd addressed to this node.
// Adding an identical key at an occupied index is idempotent and
// succeeds; a different key at the index reports it as already stored;
// slot exhaustion reports an unspecified error.
func (e *Engine) storeNetKey(m *wire.NetKeyAdd, src mesh.Address) {
	status := wire.StatusSuccess
	if _, err := e.network.AddNetworkKey(m.Index, m.Key); err != nil {
		if errors.Is(err, model.ErrKeyIndexInUse) {
			status = wire.StatusKeyIndexAlreadyStored
		} else {
			status = wire.StatusUnspecifiedError
		}
	} else {
		e.persist()
		e.logMutation(src, m.Opcode(), "network key stored")
	}
	e.send(&wire.NetKeyStatus{Status: status, Index: m.Index}, src)
}

// storeAppKey handles an inbound AppKeyAdd addressed to this node. The
// bound network key must be known.
func (e *Engine) storeAppKey(m *wire.AppKeyAdd, src mesh.Address) {
	status := wire.StatusSuccess
	if _, err := e.network.AddApplicationKey(m.AppKeyIndex, m.NetKeyIndex, m.Key); err != nil {
		switch {
		case errors.Is(err, model.ErrKeyIndexInUse):
			status = wire.StatusKeyIndexAlreadyStored
		case errors.Is(err, model.ErrKeyNotFound):
			status = wire.StatusInvalidNetKeyIndex
		default:
			status = wire.StatusUnspecifiedError
		}
	} else {
		e.persist()
		e.logMutation(src, m.Opcode(), "application key stored")
	}
	e.send(&wire.AppKeyStatus{Status: status, NetKeyIndex: m.NetKeyIndex, AppKeyIndex: m.AppKeyIndex}, src)
}

// handleNetKeyStatus applies the outcome of a correlated network key
// add, update or delete to the source node's key records.
//
// A failure status is dropped without touching the table: the stale
// entry is left for the caller's retry decision, or goes stale. An
// unknown or absent correlated request is likewise a no-op.
func (e *Engine) handleNetKeyStatus(m *wire.NetKeyStatus, src mesh.Address) {
	if !m.Status.IsSuccess() {
		return
	}
	req, ok := e.table.Get(src)
	if !ok {
		return
	}
	node, err := e.network.Node(src)
	if err != nil {
		return
	}

	switch req.(type) {
	case *wire.NetKeyAdd:
		node.AddNetKey(m.Index)
	case *wire.NetKeyUpdate:
		node.SetNetKeyUpdated(m.Index)
	case *wire.NetKeyDelete:
		node.RemoveNetKey(m.Index)
	default:
		return
	}

	e.logMutation(src, m.Opcode(), "node network key records changed")
	e.persist()
	e.table.Delete(src)
}

// handleNetKeyList replaces the source node's network key records with
// the reported index set.
func (e *Engine) handleNetKeyList(m *wire.NetKeyList, src mesh.Address) {
	node, err := e.network.Node(src)
	if err != nil {
		return
	}

	node.SetNetKeys(m.Indexes)
	e.logMutation(src, m.Opcode(), "node network key records rebuilt")
	e.persist()
}

// handleAppKeyStatus applies the outcome of a correlated application key
// add, update or delete, symmetric to handleNetKeyStatus.
func (e *Engine) handleAppKeyStatus(m *wire.AppKeyStatus, src mesh.Address) {
	if !m.Status.IsSuccess() {
		return
	}
	req, ok := e.table.Get(src)
	if !ok {
		return
	}
	node, err := e.network.Node(src)
	if err != nil {
		return
	}

	switch req.(type) {
	case *wire.AppKeyAdd:
		node.AddAppKey(m.AppKeyIndex)
	case *wire.AppKeyUpdate:
		node.SetAppKeyUpdated(m.AppKeyIndex)
	case *wire.AppKeyDelete:
		node.RemoveAppKey(m.AppKeyIndex)
	default:
		return
	}

	e.logMutation(src, m.Opcode(), "node application key records changed")
	e.persist()
	e.table.Delete(src)
}

// handleAppKeyList rebuilds the slice of the source node's application
// key records scoped to the reported network key: records bound to that
// key are replaced by the reported index set.
func (e *Engine) handleAppKeyList(m *wire.AppKeyList, src mesh.Address) {
	if !m.Status.IsSuccess() {
		return
	}
	node, err := e.network.Node(src)
	if err != nil {
		return
	}

	node.RemoveAppKeysFunc(func(index uint16) bool {
		key, err := e.network.ApplicationKey(index)
		return err == nil && key.BoundNetKeyIndex == m.NetKeyIndex
	})
	node.AddAppKeys(m.Indexes)
	e.logMutation(src, m.Opcode(), "node application key records rebuilt")
	e.persist()
}
