// Package interactive provides the interactive command-line interface
// for meshcfg-ctl.
package interactive

import (
	"context"
	"encoding/hex"
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"

	"github.com/chzyer/readline"
	"github.com/google/uuid"

	"github.com/openmesh-protocol/meshcfg-go/pkg/foundation"
	"github.com/openmesh-protocol/meshcfg-go/pkg/mesh"
	"github.com/openmesh-protocol/meshcfg-go/pkg/model"
	"github.com/openmesh-protocol/meshcfg-go/pkg/persistence"
	"github.com/openmesh-protocol/meshcfg-go/pkg/wire"
)

// EchoTransmitter prints every outbound message instead of delivering it.
// It stands in for the network transport below the configuration engine.
type EchoTransmitter struct {
	mu sync.Mutex
	w  io.Writer
}

// SetOutput directs the echo output. Use the console's Stdout so prints
// coordinate with the prompt.
func (t *EchoTransmitter) SetOutput(w io.Writer) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.w = w
}

// Send encodes the message and prints a one-line trace.
func (t *EchoTransmitter) Send(msg wire.Message, dst mesh.Address) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.w == nil {
		return nil
	}

	data, err := wire.Encode(msg)
	if err != nil {
		fmt.Fprintf(t.w, "-> %s %s (encode failed: %v)\n", dst, msg.Opcode(), err)
		return err
	}
	fmt.Fprintf(t.w, "-> %s %s (%d bytes)\n", dst, msg.Opcode(), len(data))
	return nil
}

// Console handles interactive mode for meshcfg-ctl.
type Console struct {
	engine *foundation.Engine
	store  *persistence.NetworkStore
	tx     *EchoTransmitter
	rl     *readline.Instance
}

// New creates a new interactive console over the engine. tx is the
// transmitter issued requests are handed to after passing the outbound
// gate.
func New(engine *foundation.Engine, store *persistence.NetworkStore, tx *EchoTransmitter) (*Console, error) {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "meshcfg> ",
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create readline: %w", err)
	}

	return &Console{engine: engine, store: store, tx: tx, rl: rl}, nil
}

// Stdout returns a writer that properly coordinates with the readline
// input. Use this for any output to avoid interfering with the prompt.
func (c *Console) Stdout() io.Writer {
	return c.rl.Stdout()
}

// Run starts the interactive command loop.
func (c *Console) Run(ctx context.Context, cancel context.CancelFunc) {
	defer c.rl.Close()

	c.printHelp()

	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		line, err := c.rl.Readline()
		if err != nil {
			// EOF or interrupt
			if err == readline.ErrInterrupt {
				continue
			}
			fmt.Fprintln(c.rl.Stdout(), "Exiting...")
			cancel()
			return
		}

		input := strings.TrimSpace(line)
		if input == "" {
			continue
		}

		parts := strings.Fields(input)
		cmd := strings.ToLower(parts[0])
		args := parts[1:]

		switch cmd {
		case "help", "?":
			c.printHelp()

		case "nodes", "n":
			c.cmdNodes()

		case "node":
			c.cmdNode(args)

		case "groups", "g":
			c.cmdGroups()

		case "keys", "k":
			c.cmdKeys()

		case "pending", "p":
			c.cmdPending()

		case "netkey":
			c.cmdNetKey(args)

		case "appkey":
			c.cmdAppKey(args)

		case "bind":
			c.cmdBind(args, true)

		case "unbind":
			c.cmdBind(args, false)

		case "sub":
			c.cmdSub(args)

		case "pub":
			c.cmdPub(args)

		case "reset":
			c.cmdReset(args)

		case "reset-status":
			c.cmdResetStatus(args)

		case "confirm":
			c.cmdConfirm(args)

		case "save":
			c.cmdSave()

		case "export":
			c.cmdExport(args)

		case "quit", "exit", "q":
			fmt.Fprintln(c.rl.Stdout(), "Exiting...")
			cancel()
			return

		default:
			fmt.Fprintf(c.rl.Stdout(), "Unknown command: %s (type 'help' for commands)\n", cmd)
		}
	}
}

func (c *Console) printHelp() {
	fmt.Fprintln(c.rl.Stdout(), `
Mesh Configuration Commands:
  Topology:
    nodes                    - List provisioned nodes
    node <addr>              - Show a node's elements, models and keys
    groups                   - List groups
    keys                     - List global key records
    pending                  - Show pending configuration requests

  Requests (issued to a node, confirmed by its status):
    netkey add <dst> <index> <hexkey>
    netkey update <dst> <index> <hexkey>
    netkey delete <dst> <index>
    appkey add <dst> <netidx> <appidx> <hexkey>
    bind <dst> <element> <model> <appidx>
    unbind <dst> <element> <model> <appidx>
    sub add|delete|overwrite <dst> <element> <model> <group>
    sub clear <dst> <element> <model>
    pub set <dst> <element> <model> <addr> <appidx> [ttl]
    pub get <dst> <element> <model>
    reset <dst>              - Request a node reset

  Simulated peer:
    confirm <dst>            - Feed a success status for the pending request
    reset-status <src>       - Feed a node reset status

  General:
    save                     - Persist the network snapshot
    export <path>            - Export a YAML network definition
    help                     - Show this help
    quit                     - Exit

  Addresses are decimal or 0x-prefixed hex, e.g. 0x0010.`)
}

func (c *Console) cmdNodes() {
	nodes := c.engine.Network().Nodes()
	if len(nodes) == 0 {
		fmt.Fprintln(c.rl.Stdout(), "No nodes")
		return
	}

	local := c.engine.Network().LocalAddress()
	fmt.Fprintf(c.rl.Stdout(), "\nNodes (%d):\n", len(nodes))
	for _, node := range nodes {
		marker := " "
		if node.PrimaryUnicast() == local {
			marker = "*"
		}
		composition := "composition unread"
		if node.HasComposition() {
			composition = fmt.Sprintf("%d elements", len(node.Elements()))
		}
		fmt.Fprintf(c.rl.Stdout(), "  %s %s  %-16s %s\n", marker, node.PrimaryUnicast(), node.Name(), composition)
	}
}

func (c *Console) cmdNode(args []string) {
	if len(args) < 1 {
		fmt.Fprintln(c.rl.Stdout(), "Usage: node <addr>")
		return
	}
	addr, err := parseAddress(args[0])
	if err != nil {
		fmt.Fprintf(c.rl.Stdout(), "Invalid address: %v\n", err)
		return
	}

	node, err := c.engine.Network().Node(addr)
	if err != nil {
		fmt.Fprintf(c.rl.Stdout(), "Error: %v\n", err)
		return
	}

	out := c.rl.Stdout()
	fmt.Fprintf(out, "\nNode %s (%s)\n", node.PrimaryUnicast(), node.Name())
	if ttl, ok := node.DefaultTTL(); ok {
		fmt.Fprintf(out, "  Default TTL: %d\n", ttl)
	}
	fmt.Fprintf(out, "  Net keys: %s\n", formatNodeKeys(node.NetKeys()))
	fmt.Fprintf(out, "  App keys: %s\n", formatNodeKeys(node.AppKeys()))

	for _, element := range node.Elements() {
		fmt.Fprintf(out, "  Element %s (location 0x%04X)\n", element.Address(), element.Location())
		for _, m := range element.Models() {
			fmt.Fprintf(out, "    Model %s\n", m.ID())
			if bindings := m.Bindings(); len(bindings) > 0 {
				fmt.Fprintf(out, "      bound app keys: %v\n", bindings)
			}
			if p, ok := m.Publish(); ok {
				fmt.Fprintf(out, "      publishes to %s (app key %d, ttl %d)\n", p.Address, p.AppKeyIndex, p.TTL)
			}
			for _, s := range m.Subscriptions() {
				fmt.Fprintf(out, "      subscribes to %s\n", s)
			}
		}
	}
}

func (c *Console) cmdGroups() {
	groups := c.engine.Network().Groups()
	if len(groups) == 0 {
		fmt.Fprintln(c.rl.Stdout(), "No groups")
		return
	}

	fmt.Fprintf(c.rl.Stdout(), "\nGroups (%d):\n", len(groups))
	for _, g := range groups {
		fmt.Fprintf(c.rl.Stdout(), "  %-16s %s\n", g.Name, g.Address)
	}
}

func (c *Console) cmdKeys() {
	network := c.engine.Network()
	out := c.rl.Stdout()

	fmt.Fprintln(out, "\nNetwork keys:")
	for _, nk := range network.NetworkKeys() {
		fmt.Fprintf(out, "  [%d] %s %s\n", nk.Index, hex.EncodeToString(nk.Key), nk.Name)
	}
	fmt.Fprintln(out, "Application keys:")
	for _, ak := range network.ApplicationKeys() {
		fmt.Fprintf(out, "  [%d] bound to net key %d, %s %s\n", ak.Index, ak.BoundNetKeyIndex, hex.EncodeToString(ak.Key), ak.Name)
	}
}

func (c *Console) cmdPending() {
	count := c.engine.PendingRequests()
	if count == 0 {
		fmt.Fprintln(c.rl.Stdout(), "No pending requests")
		return
	}

	fmt.Fprintf(c.rl.Stdout(), "\nPending requests (%d):\n", count)
	for _, node := range c.engine.Network().Nodes() {
		if req, ok := c.engine.PendingRequest(node.PrimaryUnicast()); ok {
			fmt.Fprintf(c.rl.Stdout(), "  %s  %s\n", node.PrimaryUnicast(), req.Opcode())
		}
	}
}

func (c *Console) cmdNetKey(args []string) {
	if len(args) < 3 {
		fmt.Fprintln(c.rl.Stdout(), "Usage: netkey add|update|delete <dst> <index> [hexkey]")
		return
	}

	dst, err := parseAddress(args[1])
	if err != nil {
		fmt.Fprintf(c.rl.Stdout(), "Invalid address: %v\n", err)
		return
	}
	index, err := parseUint16(args[2])
	if err != nil {
		fmt.Fprintf(c.rl.Stdout(), "Invalid index: %v\n", err)
		return
	}

	var msg wire.Message
	switch args[0] {
	case "add", "update":
		if len(args) < 4 {
			fmt.Fprintln(c.rl.Stdout(), "Usage: netkey add|update <dst> <index> <hexkey>")
			return
		}
		key, err := parseKey(args[3])
		if err != nil {
			fmt.Fprintf(c.rl.Stdout(), "Invalid key: %v\n", err)
			return
		}
		if args[0] == "add" {
			msg = &wire.NetKeyAdd{Index: index, Key: key}
		} else {
			msg = &wire.NetKeyUpdate{Index: index, Key: key}
		}
	case "delete":
		msg = &wire.NetKeyDelete{Index: index}
	default:
		fmt.Fprintf(c.rl.Stdout(), "Unknown netkey action: %s\n", args[0])
		return
	}

	c.issue(msg, dst)
}

func (c *Console) cmdAppKey(args []string) {
	if len(args) < 5 || args[0] != "add" {
		fmt.Fprintln(c.rl.Stdout(), "Usage: appkey add <dst> <netidx> <appidx> <hexkey>")
		return
	}

	dst, err := parseAddress(args[1])
	if err != nil {
		fmt.Fprintf(c.rl.Stdout(), "Invalid address: %v\n", err)
		return
	}
	netIndex, err := parseUint16(args[2])
	if err != nil {
		fmt.Fprintf(c.rl.Stdout(), "Invalid net key index: %v\n", err)
		return
	}
	appIndex, err := parseUint16(args[3])
	if err != nil {
		fmt.Fprintf(c.rl.Stdout(), "Invalid app key index: %v\n", err)
		return
	}
	key, err := parseKey(args[4])
	if err != nil {
		fmt.Fprintf(c.rl.Stdout(), "Invalid key: %v\n", err)
		return
	}

	c.issue(&wire.AppKeyAdd{NetKeyIndex: netIndex, AppKeyIndex: appIndex, Key: key}, dst)
}

func (c *Console) cmdBind(args []string, bind bool) {
	usage := "bind"
	if !bind {
		usage = "unbind"
	}
	if len(args) < 4 {
		fmt.Fprintf(c.rl.Stdout(), "Usage: %s <dst> <element> <model> <appidx>\n", usage)
		return
	}

	dst, element, modelID, err := parseModelTarget(args[0], args[1], args[2])
	if err != nil {
		fmt.Fprintf(c.rl.Stdout(), "Error: %v\n", err)
		return
	}
	appIndex, err := parseUint16(args[3])
	if err != nil {
		fmt.Fprintf(c.rl.Stdout(), "Invalid app key index: %v\n", err)
		return
	}

	if bind {
		c.issue(&wire.ModelAppBind{ElementAddress: element, AppKeyIndex: appIndex, ModelID: modelID}, dst)
	} else {
		c.issue(&wire.ModelAppUnbind{ElementAddress: element, AppKeyIndex: appIndex, ModelID: modelID}, dst)
	}
}

func (c *Console) cmdSub(args []string) {
	if len(args) < 4 {
		fmt.Fprintln(c.rl.Stdout(), "Usage: sub add|delete|overwrite <dst> <element> <model> <group>")
		fmt.Fprintln(c.rl.Stdout(), "       sub clear <dst> <element> <model>")
		return
	}

	dst, element, modelID, err := parseModelTarget(args[1], args[2], args[3])
	if err != nil {
		fmt.Fprintf(c.rl.Stdout(), "Error: %v\n", err)
		return
	}

	if args[0] == "clear" {
		c.issue(&wire.ModelSubscriptionDeleteAll{ElementAddress: element, ModelID: modelID}, dst)
		return
	}

	if len(args) < 5 {
		fmt.Fprintln(c.rl.Stdout(), "Usage: sub add|delete|overwrite <dst> <element> <model> <group>")
		return
	}
	group, err := parseAddress(args[4])
	if err != nil {
		fmt.Fprintf(c.rl.Stdout(), "Invalid group address: %v\n", err)
		return
	}

	var msg wire.Message
	switch args[0] {
	case "add":
		msg = &wire.ModelSubscriptionAdd{ElementAddress: element, Address: group, ModelID: modelID}
	case "delete":
		msg = &wire.ModelSubscriptionDelete{ElementAddress: element, Address: group, ModelID: modelID}
	case "overwrite":
		msg = &wire.ModelSubscriptionOverwrite{ElementAddress: element, Address: group, ModelID: modelID}
	default:
		fmt.Fprintf(c.rl.Stdout(), "Unknown sub action: %s\n", args[0])
		return
	}

	c.issue(msg, dst)
}

func (c *Console) cmdPub(args []string) {
	if len(args) < 4 {
		fmt.Fprintln(c.rl.Stdout(), "Usage: pub set <dst> <element> <model> <addr> <appidx> [ttl]")
		fmt.Fprintln(c.rl.Stdout(), "       pub get <dst> <element> <model>")
		return
	}

	dst, element, modelID, err := parseModelTarget(args[1], args[2], args[3])
	if err != nil {
		fmt.Fprintf(c.rl.Stdout(), "Error: %v\n", err)
		return
	}

	switch args[0] {
	case "get":
		c.issue(&wire.ModelPublicationGet{ElementAddress: element, ModelID: modelID}, dst)

	case "set":
		if len(args) < 6 {
			fmt.Fprintln(c.rl.Stdout(), "Usage: pub set <dst> <element> <model> <addr> <appidx> [ttl]")
			return
		}
		addr, err := parseAddress(args[4])
		if err != nil {
			fmt.Fprintf(c.rl.Stdout(), "Invalid address: %v\n", err)
			return
		}
		appIndex, err := parseUint16(args[5])
		if err != nil {
			fmt.Fprintf(c.rl.Stdout(), "Invalid app key index: %v\n", err)
			return
		}
		ttl := mesh.DefaultTTL
		if len(args) > 6 {
			v, err := strconv.ParseUint(args[6], 0, 8)
			if err != nil {
				fmt.Fprintf(c.rl.Stdout(), "Invalid TTL: %v\n", err)
				return
			}
			ttl = uint8(v)
		}

		publish := mesh.Publish{Address: mesh.NewAddress(addr), AppKeyIndex: appIndex, TTL: ttl}
		// A known virtual group turns the set into a virtual-address set
		// carrying the full label.
		if addr.IsVirtual() {
			group, err := c.engine.Network().Group(addr)
			if err != nil || !group.Address.HasLabel() {
				fmt.Fprintf(c.rl.Stdout(), "No group with a label for %s\n", addr)
				return
			}
			publish.Address = group.Address
			c.issue(&wire.ModelPublicationVirtualAddressSet{ElementAddress: element, ModelID: modelID, Publish: publish}, dst)
			return
		}
		c.issue(&wire.ModelPublicationSet{ElementAddress: element, ModelID: modelID, Publish: publish}, dst)

	default:
		fmt.Fprintf(c.rl.Stdout(), "Unknown pub action: %s\n", args[0])
	}
}

func (c *Console) cmdReset(args []string) {
	if len(args) < 1 {
		fmt.Fprintln(c.rl.Stdout(), "Usage: reset <dst>")
		return
	}
	dst, err := parseAddress(args[0])
	if err != nil {
		fmt.Fprintf(c.rl.Stdout(), "Invalid address: %v\n", err)
		return
	}

	c.issue(&wire.NodeReset{}, dst)
	fmt.Fprintln(c.rl.Stdout(), "The node is removed when its reset status arrives (reset-status <src>)")
}

func (c *Console) cmdResetStatus(args []string) {
	if len(args) < 1 {
		fmt.Fprintln(c.rl.Stdout(), "Usage: reset-status <src>")
		return
	}
	src, err := parseAddress(args[0])
	if err != nil {
		fmt.Fprintf(c.rl.Stdout(), "Invalid address: %v\n", err)
		return
	}

	c.engine.HandleIncoming(&wire.NodeResetStatus{}, src)
	fmt.Fprintln(c.rl.Stdout(), "OK")
}

// cmdConfirm synthesizes the success status a peer would send for the
// pending request and feeds it back into the engine.
func (c *Console) cmdConfirm(args []string) {
	if len(args) < 1 {
		fmt.Fprintln(c.rl.Stdout(), "Usage: confirm <dst>")
		return
	}
	dst, err := parseAddress(args[0])
	if err != nil {
		fmt.Fprintf(c.rl.Stdout(), "Invalid address: %v\n", err)
		return
	}

	req, ok := c.engine.PendingRequest(dst)
	if !ok {
		fmt.Fprintf(c.rl.Stdout(), "No pending request for %s\n", dst)
		return
	}

	status, err := c.confirmationFor(req)
	if err != nil {
		fmt.Fprintf(c.rl.Stdout(), "Cannot confirm %s: %v\n", req.Opcode(), err)
		return
	}

	c.engine.HandleIncoming(status, dst)
	fmt.Fprintf(c.rl.Stdout(), "<- %s %s\n", dst, status.Opcode())
}

// confirmationFor builds the success status matching a correlatable
// request. Virtual subscription requests report only the 16-bit address
// derived from their label, taken here from the matching group.
func (c *Console) confirmationFor(req wire.Message) (wire.Message, error) {
	switch r := req.(type) {
	case *wire.NetKeyAdd:
		return &wire.NetKeyStatus{Status: wire.StatusSuccess, Index: r.Index}, nil
	case *wire.NetKeyUpdate:
		return &wire.NetKeyStatus{Status: wire.StatusSuccess, Index: r.Index}, nil
	case *wire.NetKeyDelete:
		return &wire.NetKeyStatus{Status: wire.StatusSuccess, Index: r.Index}, nil

	case *wire.AppKeyAdd:
		return &wire.AppKeyStatus{Status: wire.StatusSuccess, NetKeyIndex: r.NetKeyIndex, AppKeyIndex: r.AppKeyIndex}, nil
	case *wire.AppKeyUpdate:
		return &wire.AppKeyStatus{Status: wire.StatusSuccess, NetKeyIndex: r.NetKeyIndex, AppKeyIndex: r.AppKeyIndex}, nil
	case *wire.AppKeyDelete:
		return &wire.AppKeyStatus{Status: wire.StatusSuccess, NetKeyIndex: r.NetKeyIndex, AppKeyIndex: r.AppKeyIndex}, nil

	case *wire.ModelAppBind:
		return &wire.ModelAppStatus{Status: wire.StatusSuccess, ElementAddress: r.ElementAddress, AppKeyIndex: r.AppKeyIndex, ModelID: r.ModelID}, nil
	case *wire.ModelAppUnbind:
		return &wire.ModelAppStatus{Status: wire.StatusSuccess, ElementAddress: r.ElementAddress, AppKeyIndex: r.AppKeyIndex, ModelID: r.ModelID}, nil

	case *wire.ModelPublicationSet:
		return &wire.ModelPublicationStatus{Status: wire.StatusSuccess, ElementAddress: r.ElementAddress, ModelID: r.ModelID, Publish: r.Publish}, nil
	case *wire.ModelPublicationVirtualAddressSet:
		p := r.Publish
		p.Address = mesh.NewAddress(p.Address.Address)
		return &wire.ModelPublicationStatus{Status: wire.StatusSuccess, ElementAddress: r.ElementAddress, ModelID: r.ModelID, Publish: p}, nil
	case *wire.ModelPublicationGet:
		return &wire.ModelPublicationStatus{Status: wire.StatusSuccess, ElementAddress: r.ElementAddress, ModelID: r.ModelID}, nil

	case *wire.ModelSubscriptionAdd:
		return c.subscriptionStatus(r.ElementAddress, r.Address, r.ModelID), nil
	case *wire.ModelSubscriptionDelete:
		return c.subscriptionStatus(r.ElementAddress, r.Address, r.ModelID), nil
	case *wire.ModelSubscriptionOverwrite:
		return c.subscriptionStatus(r.ElementAddress, r.Address, r.ModelID), nil
	case *wire.ModelSubscriptionDeleteAll:
		return c.subscriptionStatus(r.ElementAddress, mesh.AddressUnassigned, r.ModelID), nil

	case *wire.ModelSubscriptionVirtualAddressAdd:
		addr, err := c.virtualRawAddress(r.Label)
		if err != nil {
			return nil, err
		}
		return c.subscriptionStatus(r.ElementAddress, addr, r.ModelID), nil
	case *wire.ModelSubscriptionVirtualAddressDelete:
		addr, err := c.virtualRawAddress(r.Label)
		if err != nil {
			return nil, err
		}
		return c.subscriptionStatus(r.ElementAddress, addr, r.ModelID), nil
	case *wire.ModelSubscriptionVirtualAddressOverwrite:
		addr, err := c.virtualRawAddress(r.Label)
		if err != nil {
			return nil, err
		}
		return c.subscriptionStatus(r.ElementAddress, addr, r.ModelID), nil

	default:
		return nil, fmt.Errorf("no confirmation for this request kind")
	}
}

func (c *Console) subscriptionStatus(element, addr mesh.Address, id mesh.ModelID) wire.Message {
	return &wire.ModelSubscriptionStatus{Status: wire.StatusSuccess, ElementAddress: element, Address: addr, ModelID: id}
}

// virtualRawAddress finds the 16-bit address of the group carrying the
// label.
func (c *Console) virtualRawAddress(label uuid.UUID) (mesh.Address, error) {
	for _, g := range c.engine.Network().Groups() {
		if g.Address.HasLabel() && *g.Address.Label == label {
			return g.Address.Address, nil
		}
	}
	return 0, fmt.Errorf("no group with this label")
}

func (c *Console) cmdSave() {
	if err := c.store.Save(persistence.Snapshot(c.engine.Network())); err != nil {
		fmt.Fprintf(c.rl.Stdout(), "Save failed: %v\n", err)
		return
	}
	fmt.Fprintln(c.rl.Stdout(), "OK")
}

func (c *Console) cmdExport(args []string) {
	if len(args) < 1 {
		fmt.Fprintln(c.rl.Stdout(), "Usage: export <path>")
		return
	}
	if err := persistence.ExportDefinition(args[0], c.engine.Network()); err != nil {
		fmt.Fprintf(c.rl.Stdout(), "Export failed: %v\n", err)
		return
	}
	fmt.Fprintln(c.rl.Stdout(), "OK")
}

// issue runs a request through the outbound gate and hands it to the
// transmitter.
func (c *Console) issue(msg wire.Message, dst mesh.Address) {
	if !c.engine.HandleOutgoing(msg, dst) {
		fmt.Fprintln(c.rl.Stdout(), "Send suppressed")
		return
	}
	_ = c.tx.Send(msg, dst)
}

func formatNodeKeys(keys []model.NodeKey) string {
	if len(keys) == 0 {
		return "none"
	}
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		s := strconv.FormatUint(uint64(k.Index), 10)
		if k.Updated {
			s += " (updated)"
		}
		parts = append(parts, s)
	}
	return strings.Join(parts, ", ")
}

func parseAddress(s string) (mesh.Address, error) {
	v, err := strconv.ParseUint(s, 0, 16)
	if err != nil {
		return 0, err
	}
	return mesh.Address(v), nil
}

func parseUint16(s string) (uint16, error) {
	v, err := strconv.ParseUint(s, 0, 16)
	if err != nil {
		return 0, err
	}
	return uint16(v), nil
}

func parseModelID(s string) (mesh.ModelID, error) {
	v, err := strconv.ParseUint(s, 0, 32)
	if err != nil {
		return 0, err
	}
	return mesh.ModelID(v), nil
}

func parseModelTarget(dstArg, elementArg, modelArg string) (mesh.Address, mesh.Address, mesh.ModelID, error) {
	dst, err := parseAddress(dstArg)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("invalid destination: %w", err)
	}
	element, err := parseAddress(elementArg)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("invalid element address: %w", err)
	}
	modelID, err := parseModelID(modelArg)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("invalid model ID: %w", err)
	}
	return dst, element, modelID, nil
}

// parseKey parses a 16-byte hex key.
func parseKey(s string) ([]byte, error) {
	key, err := hex.DecodeString(s)
	if err != nil {
		return nil, err
	}
	if len(key) != 16 {
		return nil, fmt.Errorf("key must be 16 bytes, got %d", len(key))
	}
	return key, nil
}
