package foundation

import (
	"github.com/openmesh-protocol/meshcfg-go/pkg/mesh"
	"github.com/openmesh-protocol/meshcfg-go/pkg/wire"
)

// RequestTable maps a destination address to the most recently sent
// correlatable request awaiting a response. At most one live entry per
// address: a new request silently replaces the prior one. Correlation
// logic depends on this replace-not-queue policy.
//
// The table is not internally synchronized; the engine's lock guards it.
type RequestTable struct {
	pending map[mesh.Address]wire.Message
}

// NewRequestTable creates an empty table.
func NewRequestTable() *RequestTable {
	return &RequestTable{pending: make(map[mesh.Address]wire.Message)}
}

// Put records the request as outstanding for the destination, replacing
// any prior entry unconditionally.
func (t *RequestTable) Put(dst mesh.Address, msg wire.Message) {
	t.pending[dst] = msg
}

// Get returns the outstanding request for the address, if any.
func (t *RequestTable) Get(addr mesh.Address) (wire.Message, bool) {
	msg, ok := t.pending[addr]
	return msg, ok
}

// Delete clears the entry for the address.
func (t *RequestTable) Delete(addr mesh.Address) {
	delete(t.pending, addr)
}

// Len returns the number of live entries.
func (t *RequestTable) Len() int {
	return len(t.pending)
}

// correlatable reports whether the message is a request whose success is
// signaled by a later status or list message and must therefore be
// recorded for correlation. Plain gets are excluded: their replies are
// interpreted without consulting the table, except for publication gets,
// whose status shares its kind with the set variants.
func correlatable(msg wire.Message) bool {
	switch msg.(type) {
	case *wire.NetKeyAdd, *wire.NetKeyUpdate, *wire.NetKeyDelete,
		*wire.AppKeyAdd, *wire.AppKeyUpdate, *wire.AppKeyDelete,
		*wire.ModelAppBind, *wire.ModelAppUnbind,
		*wire.ModelPublicationSet, *wire.ModelPublicationVirtualAddressSet, *wire.ModelPublicationGet,
		*wire.ModelSubscriptionAdd, *wire.ModelSubscriptionDelete,
		*wire.ModelSubscriptionOverwrite, *wire.ModelSubscriptionDeleteAll,
		*wire.ModelSubscriptionVirtualAddressAdd, *wire.ModelSubscriptionVirtualAddressDelete,
		*wire.ModelSubscriptionVirtualAddressOverwrite:
		return true
	default:
		return false
	}
}
