package foundation

import (
	"sync"
	"time"

	"github.com/openmesh-protocol/meshcfg-go/pkg/log"
	"github.com/openmesh-protocol/meshcfg-go/pkg/mesh"
	"github.com/openmesh-protocol/meshcfg-go/pkg/model"
	"github.com/openmesh-protocol/meshcfg-go/pkg/wire"
)

// Transmitter delivers a Config message to a destination address. The
// lower layers own framing, encryption, segmentation and retransmission.
type Transmitter interface {
	Send(msg wire.Message, dst mesh.Address) error
}

// Persister saves the topology to the backing store. The engine invokes
// it after every mutation and ignores the result.
type Persister interface {
	Save() error
}

// Engine interprets inbound Config messages and gates outbound ones,
// keeping the topology model consistent with the nodes it describes.
type Engine struct {
	mu sync.Mutex

	network *model.Network
	tx      Transmitter
	store   Persister
	table   *RequestTable
	logger  log.Logger
}

// New creates an engine over the given topology. tx is used to synthesize
// direct replies; store is invoked after each mutation. Either may be nil
// in a read-only or non-persistent deployment.
func New(network *model.Network, tx Transmitter, store Persister) *Engine {
	return &Engine{
		network: network,
		tx:      tx,
		store:   store,
		table:   NewRequestTable(),
		logger:  log.NoopLogger{},
	}
}

// SetLogger installs a protocol event logger.
func (e *Engine) SetLogger(logger log.Logger) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if logger == nil {
		logger = log.NoopLogger{}
	}
	e.logger = logger
}

// Network returns the topology handle the engine operates on.
func (e *Engine) Network() *model.Network {
	return e.network
}

// PendingRequests returns the number of live pending request entries.
func (e *Engine) PendingRequests() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.table.Len()
}

// PendingRequest returns the live pending request for the destination, if
// any.
func (e *Engine) PendingRequest(dst mesh.Address) (wire.Message, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.table.Get(dst)
}

// HandleOutgoing must be called before every Config message is handed to
// the transport. Correlatable requests are recorded so that a later
// status from the destination can be interpreted. The return value is
// whether the send may proceed; the current policy always permits it.
func (e *Engine) HandleOutgoing(msg wire.Message, dst mesh.Address) bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	if correlatable(msg) {
		e.table.Put(dst, msg)
	}
	e.logger.Log(log.Event{
		Timestamp:   time.Now(),
		Direction:   log.DirectionOut,
		Category:    log.CategoryMessage,
		Destination: dst,
		Opcode:      msg.Opcode(),
	})
	return true
}

// HandleIncoming is the entry point for every received Config message.
// Unrecognized kinds are ignored for forward compatibility.
func (e *Engine) HandleIncoming(msg wire.Message, src mesh.Address) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.logIncoming(msg, src)

	switch m := msg.(type) {
	// Direct-answer requests: this node is the entity queried.
	case *wire.CompositionDataGet:
		e.replyCompositionData(m, src)
	case *wire.NetKeyGet:
		e.replyNetKeyList(src)
	case *wire.NetKeyAdd:
		e.storeNetKey(m, src)
	case *wire.AppKeyAdd:
		e.storeAppKey(m, src)
	case *wire.DefaultTTLGet:
		e.replyDefaultTTL(src)
	case *wire.DefaultTTLSet:
		e.setLocalDefaultTTL(m, src)

	// Statuses and lists describing the state of a remote node.
	case *wire.CompositionDataStatus:
		e.applyComposition(m, src)
	case *wire.NetKeyStatus:
		e.handleNetKeyStatus(m, src)
	case *wire.NetKeyList:
		e.handleNetKeyList(m, src)
	case *wire.AppKeyStatus:
		e.handleAppKeyStatus(m, src)
	case *wire.AppKeyList:
		e.handleAppKeyList(m, src)
	case *wire.ModelAppStatus:
		e.handleModelAppStatus(m, src)
	case *wire.ModelAppList:
		e.handleModelAppList(m, src)
	case *wire.ModelPublicationStatus:
		e.handlePublicationStatus(m, src)
	case *wire.ModelSubscriptionStatus:
		e.handleSubscriptionStatus(m, src)
	case *wire.ModelSubscriptionList:
		e.handleSubscriptionList(m, src)
	case *wire.DefaultTTLStatus:
		e.handleDefaultTTLStatus(m, src)
	case *wire.NodeResetStatus:
		e.handleNodeReset(src)

	default:
		// Unrecognized kinds are a no-op.
	}
}

// persist triggers the backing store. The outcome is deliberately
// ignored: a failed save leaves the store eventually consistent and is
// corrected by the next save.
func (e *Engine) persist() {
	if e.store != nil {
		_ = e.store.Save()
	}
}

// send synthesizes a direct reply. Delivery is best-effort; a transport
// error is not this layer's concern.
func (e *Engine) send(msg wire.Message, dst mesh.Address) {
	if e.tx == nil {
		return
	}
	_ = e.tx.Send(msg, dst)
	e.logger.Log(log.Event{
		Timestamp:   time.Now(),
		Direction:   log.DirectionOut,
		Category:    log.CategoryMessage,
		Destination: dst,
		Opcode:      msg.Opcode(),
	})
}

func (e *Engine) logIncoming(msg wire.Message, src mesh.Address) {
	event := log.Event{
		Timestamp: time.Now(),
		Direction: log.DirectionIn,
		Category:  log.CategoryMessage,
		Source:    src,
		Opcode:    msg.Opcode(),
	}
	if sm, ok := msg.(wire.StatusMessage); ok {
		status := sm.ReportedStatus()
		event.Status = &status
	}
	e.logger.Log(event)
}

func (e *Engine) logMutation(src mesh.Address, opcode wire.Opcode, detail string) {
	e.logger.Log(log.Event{
		Timestamp: time.Now(),
		Direction: log.DirectionIn,
		Category:  log.CategoryMutation,
		Source:    src,
		Opcode:    opcode,
		Detail:    detail,
	})
}
