package log

import (
	"fmt"
	"time"

	"github.com/openmesh-protocol/meshcfg-go/pkg/mesh"
	"github.com/openmesh-protocol/meshcfg-go/pkg/wire"
)

// Event represents a protocol event captured by the configuration engine.
// CBOR encoding uses integer keys for compactness.
type Event struct {
	// Timestamp when the event occurred (nanosecond precision).
	Timestamp time.Time `cbor:"1,keyasint"`

	// Direction indicates message flow. Mutation events use DirectionIn,
	// since mutations are always caused by an inbound message.
	Direction Direction `cbor:"2,keyasint"`

	// Category classifies the event type.
	Category Category `cbor:"3,keyasint"`

	// Source is the peer address for inbound messages.
	Source mesh.Address `cbor:"4,keyasint,omitempty"`

	// Destination is the peer address for outbound messages.
	Destination mesh.Address `cbor:"5,keyasint,omitempty"`

	// Opcode identifies the Config message kind involved.
	Opcode wire.Opcode `cbor:"6,keyasint,omitempty"`

	// Status is the reported status code, when the message carries one.
	Status *wire.Status `cbor:"7,keyasint,omitempty"`

	// Detail is a short free-form description (mutation applied, drop
	// reason).
	Detail string `cbor:"8,keyasint,omitempty"`
}

// Direction indicates the direction of message flow.
type Direction uint8

const (
	// DirectionIn indicates an incoming message.
	DirectionIn Direction = 0
	// DirectionOut indicates an outgoing message.
	DirectionOut Direction = 1
)

// String returns the direction name.
func (d Direction) String() string {
	switch d {
	case DirectionIn:
		return "IN"
	case DirectionOut:
		return "OUT"
	default:
		return "UNKNOWN"
	}
}

// Category classifies the event type.
type Category uint8

const (
	// CategoryMessage indicates a Config message handled by the engine.
	CategoryMessage Category = 0
	// CategoryMutation indicates a topology mutation.
	CategoryMutation Category = 1
	// CategoryDrop indicates a message dropped without effect.
	CategoryDrop Category = 2
)

// String returns the category name.
func (c Category) String() string {
	switch c {
	case CategoryMessage:
		return "MESSAGE"
	case CategoryMutation:
		return "MUTATION"
	case CategoryDrop:
		return "DROP"
	default:
		return "UNKNOWN"
	}
}

// String returns a one-line human-readable form of the event.
func (e Event) String() string {
	peer := e.Source
	if e.Direction == DirectionOut {
		peer = e.Destination
	}
	s := fmt.Sprintf("%s %s %s peer=%s op=%s",
		e.Timestamp.Format(time.RFC3339Nano), e.Direction, e.Category, peer, e.Opcode)
	if e.Status != nil {
		s += " status=" + e.Status.String()
	}
	if e.Detail != "" {
		s += " detail=" + e.Detail
	}
	return s
}
