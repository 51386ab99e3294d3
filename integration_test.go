package meshcfg_test

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openmesh-protocol/meshcfg-go/pkg/foundation"
	"github.com/openmesh-protocol/meshcfg-go/pkg/log"
	"github.com/openmesh-protocol/meshcfg-go/pkg/mesh"
	"github.com/openmesh-protocol/meshcfg-go/pkg/model"
	"github.com/openmesh-protocol/meshcfg-go/pkg/persistence"
	"github.com/openmesh-protocol/meshcfg-go/pkg/wire"
)

const (
	configuratorAddr mesh.Address = 0x0001
	deviceAddr       mesh.Address = 0x0010
)

var testKey = []byte{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15}

// pipe carries Config messages between two engines over the real wire
// codec, the way a transport would.
type pipe struct {
	peer *foundation.Engine
	from mesh.Address
}

func (p *pipe) Send(msg wire.Message, dst mesh.Address) error {
	data, err := wire.Encode(msg)
	if err != nil {
		return err
	}
	decoded, err := wire.Decode(data)
	if err != nil {
		return err
	}
	p.peer.HandleIncoming(decoded, p.from)
	return nil
}

// testPair wires a configurator engine and a device engine back to back.
// The configurator persists to a real snapshot store; the device keeps
// its state in memory.
func testPair(t *testing.T) (configurator, device *foundation.Engine, store *persistence.NetworkStore) {
	t.Helper()

	cfgNet := model.NewNetwork("integration")
	cfgNet.SetLocalAddress(configuratorAddr)
	require.NoError(t, cfgNet.AddNode(model.NewNode("configurator", configuratorAddr)))
	deviceRecord := model.NewNode("lamp", deviceAddr)
	deviceRecord.ApplyComposition(model.DeviceInfo{CompanyID: 0x0059},
		[]*model.Element{model.NewElement(deviceAddr, 0, model.NewModel(0x1000))})
	require.NoError(t, cfgNet.AddNode(deviceRecord))
	require.NoError(t, cfgNet.AddGroup(&model.Group{Name: "kitchen", Address: mesh.NewAddress(0xC000)}))

	devNet := model.NewNetwork("lamp")
	devNet.SetLocalAddress(deviceAddr)
	local := model.NewNode("lamp", deviceAddr)
	local.ApplyComposition(model.DeviceInfo{CompanyID: 0x0059, ProductID: 2, VersionID: 0x0100},
		[]*model.Element{model.NewElement(deviceAddr, 0, model.NewModel(0x1000))})
	require.NoError(t, devNet.AddNode(local))
	// The configurator's record on the device side, so replies resolve.
	require.NoError(t, devNet.AddNode(model.NewNode("configurator", configuratorAddr)))

	cfgPipe := &pipe{from: configuratorAddr}
	devPipe := &pipe{from: deviceAddr}

	store = persistence.NewNetworkStore(filepath.Join(t.TempDir(), "network.json"))
	configurator = foundation.New(cfgNet, cfgPipe, persistence.NewSaver(cfgNet, store))
	device = foundation.New(devNet, devPipe, nil)

	cfgPipe.peer = device
	devPipe.peer = configurator
	return configurator, device, store
}

// issue runs a request through the configurator's outbound gate and
// delivers it to the device over the wire codec.
func issue(t *testing.T, configurator, device *foundation.Engine, msg wire.Message) {
	t.Helper()
	require.True(t, configurator.HandleOutgoing(msg, deviceAddr))
	p := &pipe{peer: device, from: configuratorAddr}
	require.NoError(t, p.Send(msg, deviceAddr))
}

func TestKeyDistributionEndToEnd(t *testing.T) {
	configurator, device, store := testPair(t)

	issue(t, configurator, device, &wire.NetKeyAdd{Index: 0, Key: testKey})

	// The device stored the key and its status drove the configurator's
	// node record.
	nk, err := device.Network().NetworkKey(0)
	require.NoError(t, err)
	assert.Equal(t, testKey, nk.Key)

	node, err := configurator.Network().Node(deviceAddr)
	require.NoError(t, err)
	require.Len(t, node.NetKeys(), 1)
	assert.Equal(t, uint16(0), node.NetKeys()[0].Index)
	assert.Zero(t, configurator.PendingRequests())

	issue(t, configurator, device, &wire.AppKeyAdd{NetKeyIndex: 0, AppKeyIndex: 3, Key: testKey})

	require.Len(t, node.AppKeys(), 1)
	assert.Equal(t, uint16(3), node.AppKeys()[0].Index)

	// The snapshot on disk reflects the mutations.
	snapshot, err := store.Load()
	require.NoError(t, err)
	require.NotNil(t, snapshot)
	restored, err := snapshot.Restore()
	require.NoError(t, err)
	restoredNode, err := restored.Node(deviceAddr)
	require.NoError(t, err)
	assert.Equal(t, node.NetKeys(), restoredNode.NetKeys())
	assert.Equal(t, node.AppKeys(), restoredNode.AppKeys())
}

func TestCompositionReadEndToEnd(t *testing.T) {
	configurator, device, _ := testPair(t)

	// Forget the device's layout, then read it back over the wire.
	cfgNode, err := configurator.Network().Node(deviceAddr)
	require.NoError(t, err)
	cfgNode.ApplyComposition(model.DeviceInfo{}, nil)

	issue(t, configurator, device, &wire.CompositionDataGet{Page: 0})

	assert.Equal(t, uint16(2), cfgNode.DeviceInfo().ProductID)
	require.Len(t, cfgNode.Elements(), 1)
	_, err = cfgNode.Elements()[0].Model(0x1000)
	assert.NoError(t, err)
}

func TestDefaultTTLReadEndToEnd(t *testing.T) {
	configurator, device, _ := testPair(t)

	devNode, err := device.Network().LocalNode()
	require.NoError(t, err)
	devNode.SetDefaultTTL(9)

	issue(t, configurator, device, &wire.DefaultTTLGet{})

	cfgNode, err := configurator.Network().Node(deviceAddr)
	require.NoError(t, err)
	ttl, ok := cfgNode.DefaultTTL()
	require.True(t, ok)
	assert.Equal(t, uint8(9), ttl)
}

func TestEventLogCapturesExchange(t *testing.T) {
	configurator, device, _ := testPair(t)

	path := filepath.Join(t.TempDir(), "events.cbor")
	logger, err := log.NewFileLogger(path)
	require.NoError(t, err)
	configurator.SetLogger(logger)

	issue(t, configurator, device, &wire.NetKeyAdd{Index: 0, Key: testKey})
	require.NoError(t, logger.Close())

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	var events []log.Event
	dec := log.NewDecoder(f)
	for {
		var event log.Event
		if err := dec.Decode(&event); err == io.EOF {
			break
		} else if err != nil {
			t.Fatalf("decode event: %v", err)
		}
		events = append(events, event)
	}

	// Outbound request, inbound status, and the resulting mutation.
	require.Len(t, events, 3)
	assert.Equal(t, log.DirectionOut, events[0].Direction)
	assert.Equal(t, wire.OpNetKeyAdd, events[0].Opcode)
	assert.Equal(t, log.CategoryMessage, events[1].Category)
	require.NotNil(t, events[1].Status)
	assert.Equal(t, wire.StatusSuccess, *events[1].Status)
	assert.Equal(t, log.CategoryMutation, events[2].Category)
}
