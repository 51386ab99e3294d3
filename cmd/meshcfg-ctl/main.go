// Command meshcfg-ctl is an interactive configuration console for a mesh
// network.
//
// It operates on a locally persisted topology model: Config requests are
// issued through the configuration engine, and the confirming statuses of
// a (simulated) peer can be fed back in to watch the model follow them.
//
// Usage:
//
//	meshcfg-ctl [flags]
//
// Flags:
//
//	-state string       Path to the JSON network snapshot (default "meshcfg-state.json")
//	-definition string  YAML network definition to import instead of the snapshot
//	-name string        Network name when starting empty (default "mesh")
//	-local uint         Local node primary unicast address (default 0x0001)
//	-event-log string   Path to a CBOR protocol event log
//
// Examples:
//
//	# Start from (or create) the default snapshot
//	meshcfg-ctl
//
//	# Import a hand-written network definition
//	meshcfg-ctl -definition home.yaml -state home.json
//
//	# Record every protocol event
//	meshcfg-ctl -event-log events.cbor
package main

import (
	"context"
	"flag"
	stdlog "log"
	"os/signal"
	"syscall"

	"github.com/openmesh-protocol/meshcfg-go/cmd/meshcfg-ctl/interactive"
	"github.com/openmesh-protocol/meshcfg-go/pkg/foundation"
	"github.com/openmesh-protocol/meshcfg-go/pkg/log"
	"github.com/openmesh-protocol/meshcfg-go/pkg/mesh"
	"github.com/openmesh-protocol/meshcfg-go/pkg/model"
	"github.com/openmesh-protocol/meshcfg-go/pkg/persistence"
)

// Config holds the console configuration.
type Config struct {
	StatePath      string
	DefinitionPath string
	NetworkName    string
	LocalAddress   uint
	EventLogPath   string
}

var config Config

func init() {
	flag.StringVar(&config.StatePath, "state", "meshcfg-state.json", "Path to the JSON network snapshot")
	flag.StringVar(&config.DefinitionPath, "definition", "", "YAML network definition to import instead of the snapshot")
	flag.StringVar(&config.NetworkName, "name", "mesh", "Network name when starting empty")
	flag.UintVar(&config.LocalAddress, "local", 0x0001, "Local node primary unicast address")
	flag.StringVar(&config.EventLogPath, "event-log", "", "Path to a CBOR protocol event log")
}

func main() {
	flag.Parse()

	network, err := loadNetwork()
	if err != nil {
		stdlog.Fatalf("Failed to load network: %v", err)
	}
	ensureLocalNode(network)

	store := persistence.NewNetworkStore(config.StatePath)
	tx := &interactive.EchoTransmitter{}
	engine := foundation.New(network, tx, persistence.NewSaver(network, store))

	if config.EventLogPath != "" {
		fileLogger, err := log.NewFileLogger(config.EventLogPath)
		if err != nil {
			stdlog.Fatalf("Failed to open event log: %v", err)
		}
		defer fileLogger.Close()
		engine.SetLogger(fileLogger)
	}

	console, err := interactive.New(engine, store, tx)
	if err != nil {
		stdlog.Fatalf("Failed to start console: %v", err)
	}
	tx.SetOutput(console.Stdout())

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	console.Run(ctx, cancel)
}

// loadNetwork picks the topology source: an explicit YAML definition, the
// JSON snapshot, or a fresh empty network.
func loadNetwork() (*model.Network, error) {
	if config.DefinitionPath != "" {
		return persistence.ImportDefinition(config.DefinitionPath)
	}

	snapshot, err := persistence.NewNetworkStore(config.StatePath).Load()
	if err != nil {
		return nil, err
	}
	if snapshot != nil {
		return snapshot.Restore()
	}

	network := model.NewNetwork(config.NetworkName)
	network.SetLocalAddress(mesh.Address(config.LocalAddress))
	return network, nil
}

// ensureLocalNode creates the local node record if the loaded topology
// does not carry one, so composition and TTL queries can be answered.
func ensureLocalNode(network *model.Network) {
	if _, err := network.LocalNode(); err == nil {
		return
	}

	addr := network.LocalAddress()
	if addr.IsUnassigned() {
		addr = mesh.Address(config.LocalAddress)
		network.SetLocalAddress(addr)
	}

	local := model.NewNode("configurator", addr)
	local.ApplyComposition(model.DeviceInfo{CompanyID: 0x02E5, ProductID: 1, VersionID: 0x0100},
		[]*model.Element{model.NewElement(addr, 0, model.NewModel(0x0000), model.NewModel(0x0001))})
	_ = network.AddNode(local)
}
