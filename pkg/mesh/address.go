package mesh

import (
	"fmt"

	"github.com/google/uuid"
)

// Address is a raw 16-bit mesh address.
type Address uint16

// Well-known addresses.
const (
	// AddressUnassigned marks an element or publication with no address set.
	AddressUnassigned Address = 0x0000

	// AddressAllNodes is the fixed group address every node accepts on.
	AddressAllNodes Address = 0xFFFF
)

// Address range boundaries.
const (
	maxUnicast Address = 0x7FFF
	minVirtual Address = 0x8000
	maxVirtual Address = 0xBFFF
	minGroup   Address = 0xC000
)

// IsUnassigned returns true for the unassigned address.
func (a Address) IsUnassigned() bool {
	return a == AddressUnassigned
}

// IsUnicast returns true if the address identifies a single element.
func (a Address) IsUnicast() bool {
	return a > AddressUnassigned && a <= maxUnicast
}

// IsVirtual returns true if the address is derived from a label UUID.
func (a Address) IsVirtual() bool {
	return a >= minVirtual && a <= maxVirtual
}

// IsGroup returns true if the address is a group address.
func (a Address) IsGroup() bool {
	return a >= minGroup
}

// String returns the address in the conventional hex form.
func (a Address) String() string {
	return fmt.Sprintf("0x%04X", uint16(a))
}

// MeshAddress pairs a raw address with the full virtual label when the
// address is virtual and the label is known locally.
//
// Two MeshAddresses with the same raw address but different (or missing)
// labels are distinct values, but address the same destination on the
// radio; compare with Equal or SameRadioAddress accordingly.
type MeshAddress struct {
	Address Address    `cbor:"1,keyasint" json:"address" yaml:"address"`
	Label   *uuid.UUID `cbor:"2,keyasint,omitempty" json:"label,omitempty" yaml:"label,omitempty"`
}

// NewAddress returns a MeshAddress with no virtual label.
func NewAddress(addr Address) MeshAddress {
	return MeshAddress{Address: addr}
}

// NewVirtualAddress returns a MeshAddress carrying the full label. The raw
// address must be the one derived from the label by the provisioning
// layer; this package does not perform the derivation.
func NewVirtualAddress(addr Address, label uuid.UUID) MeshAddress {
	return MeshAddress{Address: addr, Label: &label}
}

// HasLabel returns true if the full virtual label is known.
func (a MeshAddress) HasLabel() bool {
	return a.Label != nil
}

// Equal compares raw address and label.
func (a MeshAddress) Equal(other MeshAddress) bool {
	if a.Address != other.Address {
		return false
	}
	if (a.Label == nil) != (other.Label == nil) {
		return false
	}
	return a.Label == nil || *a.Label == *other.Label
}

// SameRadioAddress compares the raw 16-bit address only.
func (a MeshAddress) SameRadioAddress(other MeshAddress) bool {
	return a.Address == other.Address
}

// String returns the raw address, with the label appended when known.
func (a MeshAddress) String() string {
	if a.Label != nil {
		return fmt.Sprintf("%s (%s)", a.Address, a.Label)
	}
	return a.Address.String()
}
