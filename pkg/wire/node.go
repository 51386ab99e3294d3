package wire

import "github.com/openmesh-protocol/meshcfg-go/pkg/mesh"

// CompositionDataGet requests a page of a node's composition data.
type CompositionDataGet struct {
	Page uint8 `cbor:"1,keyasint"`
}

func (*CompositionDataGet) Opcode() Opcode { return OpCompositionDataGet }

// CompositionDataStatus carries a page of composition data. Only page 0
// is defined today.
type CompositionDataStatus struct {
	Page uint8             `cbor:"1,keyasint"`
	Data *CompositionPage0 `cbor:"2,keyasint,omitempty"`
}

func (*CompositionDataStatus) Opcode() Opcode { return OpCompositionDataStatus }

// CompositionPage0 describes a node's identity and element layout.
type CompositionPage0 struct {
	CompanyID uint16 `cbor:"1,keyasint"`
	ProductID uint16 `cbor:"2,keyasint"`
	VersionID uint16 `cbor:"3,keyasint"`

	// CRPL is the replay protection list capacity.
	CRPL uint16 `cbor:"4,keyasint"`

	// Features is the supported-features bitmap (relay, proxy, friend,
	// low power).
	Features uint16 `cbor:"5,keyasint"`

	Elements []ElementDescriptor `cbor:"6,keyasint"`
}

// ElementDescriptor describes one element within composition data. The
// element's address is the node's primary unicast plus its position in
// the page.
type ElementDescriptor struct {
	Location     uint16         `cbor:"1,keyasint"`
	SIGModels    []mesh.ModelID `cbor:"2,keyasint,omitempty"`
	VendorModels []mesh.ModelID `cbor:"3,keyasint,omitempty"`
}

// DefaultTTLGet requests a node's default TTL.
type DefaultTTLGet struct{}

func (*DefaultTTLGet) Opcode() Opcode { return OpDefaultTTLGet }

// DefaultTTLSet requests a change of a node's default TTL.
type DefaultTTLSet struct {
	TTL uint8 `cbor:"1,keyasint"`
}

func (*DefaultTTLSet) Opcode() Opcode { return OpDefaultTTLSet }

// DefaultTTLStatus reports a node's default TTL.
type DefaultTTLStatus struct {
	TTL uint8 `cbor:"1,keyasint"`
}

func (*DefaultTTLStatus) Opcode() Opcode { return OpDefaultTTLStatus }

// NodeReset requests that a node forget all provisioning state.
type NodeReset struct{}

func (*NodeReset) Opcode() Opcode { return OpNodeReset }

// NodeResetStatus confirms a node reset.
type NodeResetStatus struct{}

func (*NodeResetStatus) Opcode() Opcode { return OpNodeResetStatus }
