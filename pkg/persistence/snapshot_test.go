package persistence

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openmesh-protocol/meshcfg-go/pkg/mesh"
	"github.com/openmesh-protocol/meshcfg-go/pkg/model"
)

var testLabel = uuid.MustParse("7c9f6a2e-4b1d-4d55-9d38-cb8248a3c2ad")

func testKey(first byte) []byte {
	k := make([]byte, 16)
	k[0] = first
	for i := 1; i < 16; i++ {
		k[i] = byte(i)
	}
	return k
}

// testNetwork builds a network exercising every snapshot field.
func testNetwork(t *testing.T) *model.Network {
	t.Helper()

	n := model.NewNetwork("home")
	n.SetLocalAddress(0x0001)

	nk, err := n.AddNetworkKey(0, testKey(0xA0))
	require.NoError(t, err)
	nk.Name = "primary"
	_, err = n.AddNetworkKey(1, testKey(0xA1))
	require.NoError(t, err)

	ak, err := n.AddApplicationKey(3, 0, testKey(0xB0))
	require.NoError(t, err)
	ak.Name = "lighting"

	require.NoError(t, n.AddGroup(&model.Group{Name: "kitchen", Address: mesh.NewAddress(0xC000)}))
	require.NoError(t, n.AddGroup(&model.Group{Name: "scene", Address: mesh.NewVirtualAddress(0x8001, testLabel)}))

	lamp := model.NewNode("lamp", 0x0010)
	lamp.SetDefaultTTL(9)
	lamp.AddNetKey(0)
	lamp.AddNetKey(1)
	lamp.SetNetKeyUpdated(1)
	lamp.AddAppKey(3)

	onoff := model.NewModel(0x1000)
	onoff.Bind(3)
	onoff.SetPublish(mesh.Publish{
		Address:     mesh.NewVirtualAddress(0x8001, testLabel),
		AppKeyIndex: 3,
		TTL:         7,
		Period:      30 * time.Second,
		Retransmit:  mesh.PublishRetransmit{Count: 2, Interval: 50 * time.Millisecond},
	})
	onoff.Subscribe(mesh.NewAddress(0xC000))
	lamp.ApplyComposition(model.DeviceInfo{CompanyID: 0x0059, ProductID: 1, VersionID: 0x0200, CRPL: 40},
		[]*model.Element{model.NewElement(0x0010, 0x0100, onoff, model.NewModel(0x1001))})
	require.NoError(t, n.AddNode(lamp))

	// A node whose composition has not been read yet.
	require.NoError(t, n.AddNode(model.NewNode("sensor", 0x0020)))

	return n
}

func TestSnapshotRoundTrip(t *testing.T) {
	n := testNetwork(t)

	restored, err := Snapshot(n).Restore()
	require.NoError(t, err)

	assert.Equal(t, "home", restored.Name())
	assert.Equal(t, mesh.Address(0x0001), restored.LocalAddress())

	nk, err := restored.NetworkKey(0)
	require.NoError(t, err)
	assert.Equal(t, "primary", nk.Name)
	assert.Equal(t, testKey(0xA0), nk.Key)

	ak, err := restored.ApplicationKey(3)
	require.NoError(t, err)
	assert.Equal(t, uint16(0), ak.BoundNetKeyIndex)

	group, err := restored.Group(0x8001)
	require.NoError(t, err)
	require.True(t, group.Address.HasLabel())
	assert.Equal(t, testLabel, *group.Address.Label)

	lamp, err := restored.Node(0x0010)
	require.NoError(t, err)
	ttl, ok := lamp.DefaultTTL()
	require.True(t, ok)
	assert.Equal(t, uint8(9), ttl)
	assert.Equal(t, []model.NodeKey{{Index: 0}, {Index: 1, Updated: true}}, lamp.NetKeys())
	assert.True(t, lamp.HasComposition())
	assert.Equal(t, uint16(0x0059), lamp.DeviceInfo().CompanyID)

	element, err := lamp.Element(0x0010)
	require.NoError(t, err)
	assert.Equal(t, uint16(0x0100), element.Location())
	onoff, err := element.Model(0x1000)
	require.NoError(t, err)
	assert.Equal(t, []uint16{3}, onoff.Bindings())
	assert.True(t, onoff.SubscribesTo(0xC000))
	publish, ok := onoff.Publish()
	require.True(t, ok)
	require.True(t, publish.Address.HasLabel())
	assert.Equal(t, 30*time.Second, publish.Period)

	sensor, err := restored.Node(0x0020)
	require.NoError(t, err)
	assert.False(t, sensor.HasComposition())
	_, ok = sensor.DefaultTTL()
	assert.False(t, ok)
}

func TestSnapshotKeysAreHex(t *testing.T) {
	n := testNetwork(t)

	data, err := json.Marshal(Snapshot(n))
	require.NoError(t, err)

	assert.Contains(t, string(data), `"a00102030405060708090a0b0c0d0e0f"`)
}

func TestRestoreRejectsDanglingAppKey(t *testing.T) {
	s := &NetworkSnapshot{
		Version: SnapshotVersion,
		Name:    "broken",
		AppKeys: []ApplicationKeyRecord{{Index: 3, BoundNetKeyIndex: 7, Key: testKey(0xB0)}},
	}

	_, err := s.Restore()
	require.ErrorIs(t, err, model.ErrKeyNotFound)
}

func TestDefinitionRoundTrip(t *testing.T) {
	n := testNetwork(t)

	var buf bytes.Buffer
	require.NoError(t, WriteDefinition(&buf, n))

	restored, err := ReadDefinition(&buf)
	require.NoError(t, err)
	assert.Equal(t, "home", restored.Name())

	lamp, err := restored.Node(0x0010)
	require.NoError(t, err)
	element, err := lamp.Element(0x0010)
	require.NoError(t, err)
	onoff, err := element.Model(0x1000)
	require.NoError(t, err)
	publish, ok := onoff.Publish()
	require.True(t, ok)
	require.True(t, publish.Address.HasLabel())
	assert.Equal(t, testLabel, *publish.Address.Label)
}
