package foundation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openmesh-protocol/meshcfg-go/pkg/mesh"
	"github.com/openmesh-protocol/meshcfg-go/pkg/model"
	"github.com/openmesh-protocol/meshcfg-go/pkg/wire"
)

func differentKey() []byte {
	k := append([]byte(nil), keyValue...)
	k[15] = 0xEE
	return k
}

func TestStoreNetKey(t *testing.T) {
	t.Run("FirstAdd", func(t *testing.T) {
		e, tx, store := testEngine(t)

		e.HandleIncoming(&wire.NetKeyAdd{Index: 4, Key: keyValue}, nodeAddr)

		require.Len(t, tx.sent, 1)
		status := tx.sent[0].msg.(*wire.NetKeyStatus)
		assert.Equal(t, wire.StatusSuccess, status.Status)
		assert.Equal(t, uint16(4), status.Index)
		assert.Equal(t, nodeAddr, tx.sent[0].dst)
		assert.Equal(t, 1, store.saves)
	})

	t.Run("IdempotentAdd", func(t *testing.T) {
		e, tx, _ := testEngine(t)

		e.HandleIncoming(&wire.NetKeyAdd{Index: 4, Key: keyValue}, nodeAddr)
		e.HandleIncoming(&wire.NetKeyAdd{Index: 4, Key: keyValue}, nodeAddr)

		require.Len(t, tx.sent, 2)
		status := tx.sent[1].msg.(*wire.NetKeyStatus)
		assert.Equal(t, wire.StatusSuccess, status.Status, "identical key at the index must succeed")
	})

	t.Run("DifferentKeyAlreadyStored", func(t *testing.T) {
		e, tx, _ := testEngine(t)

		e.HandleIncoming(&wire.NetKeyAdd{Index: 4, Key: keyValue}, nodeAddr)
		e.HandleIncoming(&wire.NetKeyAdd{Index: 4, Key: differentKey()}, nodeAddr)

		require.Len(t, tx.sent, 2)
		status := tx.sent[1].msg.(*wire.NetKeyStatus)
		assert.Equal(t, wire.StatusKeyIndexAlreadyStored, status.Status)

		stored, err := e.Network().NetworkKey(4)
		require.NoError(t, err)
		assert.Equal(t, keyValue, stored.Key, "a rejected add must not alter the stored key")
	})

	t.Run("SlotExhaustion", func(t *testing.T) {
		e, tx, _ := testEngine(t)
		e.Network().SetKeyCapacity(0)

		e.HandleIncoming(&wire.NetKeyAdd{Index: 4, Key: keyValue}, nodeAddr)

		require.Len(t, tx.sent, 1)
		status := tx.sent[0].msg.(*wire.NetKeyStatus)
		assert.Equal(t, wire.StatusUnspecifiedError, status.Status)
	})
}

func TestStoreAppKey(t *testing.T) {
	e, tx, _ := testEngine(t)
	_, err := e.Network().AddNetworkKey(0, keyValue)
	require.NoError(t, err)

	t.Run("UnknownBoundNetKey", func(t *testing.T) {
		e.HandleIncoming(&wire.AppKeyAdd{NetKeyIndex: 9, AppKeyIndex: 3, Key: differentKey()}, nodeAddr)

		status := tx.sent[len(tx.sent)-1].msg.(*wire.AppKeyStatus)
		assert.Equal(t, wire.StatusInvalidNetKeyIndex, status.Status)
	})

	t.Run("Add", func(t *testing.T) {
		e.HandleIncoming(&wire.AppKeyAdd{NetKeyIndex: 0, AppKeyIndex: 3, Key: differentKey()}, nodeAddr)

		status := tx.sent[len(tx.sent)-1].msg.(*wire.AppKeyStatus)
		assert.Equal(t, wire.StatusSuccess, status.Status)
		assert.Equal(t, uint16(0), status.NetKeyIndex)
		assert.Equal(t, uint16(3), status.AppKeyIndex)
	})
}

func TestReplyNetKeyList(t *testing.T) {
	e, tx, store := testEngine(t)
	_, err := e.Network().AddNetworkKey(2, keyValue)
	require.NoError(t, err)
	_, err = e.Network().AddNetworkKey(0, differentKey())
	require.NoError(t, err)

	e.HandleIncoming(&wire.NetKeyGet{}, nodeAddr)

	require.Len(t, tx.sent, 1)
	list := tx.sent[0].msg.(*wire.NetKeyList)
	assert.Equal(t, []uint16{0, 2}, list.Indexes)
	assert.Zero(t, store.saves, "a read-only reply must not persist")
}

func TestNetKeyStatusCorrelation(t *testing.T) {
	t.Run("Add", func(t *testing.T) {
		e, _, store := testEngine(t)
		e.HandleOutgoing(&wire.NetKeyAdd{Index: 2, Key: keyValue}, nodeAddr)

		e.HandleIncoming(&wire.NetKeyStatus{Status: wire.StatusSuccess, Index: 2}, nodeAddr)

		node, err := e.Network().Node(nodeAddr)
		require.NoError(t, err)
		keys := node.NetKeys()
		require.Len(t, keys, 1)
		assert.Equal(t, model.NodeKey{Index: 2, Updated: false}, keys[0])
		assert.Equal(t, 1, store.saves, "exactly one persistence call per mutation")
		assert.Zero(t, e.PendingRequests(), "the entry must be cleared")
	})

	t.Run("Update", func(t *testing.T) {
		e, _, _ := testEngine(t)
		node, err := e.Network().Node(nodeAddr)
		require.NoError(t, err)
		node.AddNetKey(2)

		e.HandleOutgoing(&wire.NetKeyUpdate{Index: 2, Key: differentKey()}, nodeAddr)
		e.HandleIncoming(&wire.NetKeyStatus{Status: wire.StatusSuccess, Index: 2}, nodeAddr)

		assert.True(t, node.NetKeys()[0].Updated, "update must mark the key-refresh flag")
	})

	t.Run("Delete", func(t *testing.T) {
		e, _, _ := testEngine(t)
		node, err := e.Network().Node(nodeAddr)
		require.NoError(t, err)
		node.AddNetKey(2)

		e.HandleOutgoing(&wire.NetKeyDelete{Index: 2}, nodeAddr)
		e.HandleIncoming(&wire.NetKeyStatus{Status: wire.StatusSuccess, Index: 2}, nodeAddr)

		assert.Empty(t, node.NetKeys())
	})

	t.Run("FailureStatusLeavesEntry", func(t *testing.T) {
		e, _, store := testEngine(t)
		e.HandleOutgoing(&wire.NetKeyAdd{Index: 2, Key: keyValue}, nodeAddr)

		e.HandleIncoming(&wire.NetKeyStatus{Status: wire.StatusInsufficientResources, Index: 2}, nodeAddr)

		node, err := e.Network().Node(nodeAddr)
		require.NoError(t, err)
		assert.Empty(t, node.NetKeys())
		assert.Zero(t, store.saves)
		assert.Equal(t, 1, e.PendingRequests(), "the stale entry stays for the caller's retry decision")
	})

	t.Run("UnmatchedRequestKindIsNoOp", func(t *testing.T) {
		e, _, store := testEngine(t)
		e.HandleOutgoing(&wire.ModelAppBind{ElementAddress: nodeAddr, AppKeyIndex: 3, ModelID: 0x1000}, nodeAddr)

		e.HandleIncoming(&wire.NetKeyStatus{Status: wire.StatusSuccess, Index: 2}, nodeAddr)

		node, err := e.Network().Node(nodeAddr)
		require.NoError(t, err)
		assert.Empty(t, node.NetKeys())
		assert.Zero(t, store.saves)
		assert.Equal(t, 1, e.PendingRequests())
	})

	t.Run("NoEntryIsNoOp", func(t *testing.T) {
		e, _, store := testEngine(t)

		e.HandleIncoming(&wire.NetKeyStatus{Status: wire.StatusSuccess, Index: 2}, nodeAddr)

		node, err := e.Network().Node(nodeAddr)
		require.NoError(t, err)
		assert.Empty(t, node.NetKeys())
		assert.Zero(t, store.saves)
	})
}

func TestNetKeyListRebuild(t *testing.T) {
	e, _, store := testEngine(t)
	node, err := e.Network().Node(nodeAddr)
	require.NoError(t, err)
	node.AddNetKey(9)
	node.SetNetKeyUpdated(9)

	e.HandleIncoming(&wire.NetKeyList{Indexes: []uint16{5, 0, 2}}, nodeAddr)

	keys := node.NetKeys()
	require.Len(t, keys, 3)
	assert.Equal(t, []model.NodeKey{{Index: 0}, {Index: 2}, {Index: 5}}, keys,
		"the list is rebuilt sorted with fresh, not-updated records")
	assert.Equal(t, 1, store.saves)
}

func TestAppKeyStatusCorrelation(t *testing.T) {
	// The example scenario: an application key add for index 3 bound to
	// network key 0, confirmed by a success status from the node.
	e, _, store := testEngine(t)

	e.HandleOutgoing(&wire.AppKeyAdd{NetKeyIndex: 0, AppKeyIndex: 3, Key: keyValue}, nodeAddr)
	e.HandleIncoming(&wire.AppKeyStatus{Status: wire.StatusSuccess, NetKeyIndex: 0, AppKeyIndex: 3}, nodeAddr)

	node, err := e.Network().Node(nodeAddr)
	require.NoError(t, err)
	keys := node.AppKeys()
	require.Len(t, keys, 1)
	assert.Equal(t, model.NodeKey{Index: 3, Updated: false}, keys[0])
	assert.Zero(t, e.PendingRequests())
	assert.Equal(t, 1, store.saves)
}

func TestAppKeyListScopedRebuild(t *testing.T) {
	e, _, _ := testEngine(t)
	net := e.Network()

	_, err := net.AddNetworkKey(0, keyValue)
	require.NoError(t, err)
	_, err = net.AddNetworkKey(1, differentKey())
	require.NoError(t, err)
	for i, bound := range []uint16{0, 0, 1} {
		k := append([]byte(nil), keyValue...)
		k[0] = byte(i)
		_, err = net.AddApplicationKey(uint16(i), bound, k)
		require.NoError(t, err)
	}

	node, err := net.Node(nodeAddr)
	require.NoError(t, err)
	// The node currently knows app keys 0 and 1 (bound to net key 0) and
	// app key 2 (bound to net key 1).
	node.AddAppKeys([]uint16{0, 1, 2})

	// A fresh list scoped to net key 0 replaces only entries bound to it.
	e.HandleIncoming(&wire.AppKeyList{Status: wire.StatusSuccess, NetKeyIndex: 0, Indexes: []uint16{1, 7}}, nodeAddr)

	keys := node.AppKeys()
	require.Len(t, keys, 3)
	assert.Equal(t, []model.NodeKey{{Index: 1}, {Index: 2}, {Index: 7}}, keys)
}

func TestAppKeyListFailureDropped(t *testing.T) {
	e, _, store := testEngine(t)

	e.HandleIncoming(&wire.AppKeyList{Status: wire.StatusInvalidNetKeyIndex, NetKeyIndex: 0}, nodeAddr)

	assert.Zero(t, store.saves)
}

func TestKeyStatusForUnknownNode(t *testing.T) {
	e, _, store := testEngine(t)
	unknown := mesh.Address(0x0777)
	e.HandleOutgoing(&wire.NetKeyAdd{Index: 2, Key: keyValue}, unknown)

	e.HandleIncoming(&wire.NetKeyStatus{Status: wire.StatusSuccess, Index: 2}, unknown)

	assert.Zero(t, store.saves, "a missing node record aborts the branch silently")
}
