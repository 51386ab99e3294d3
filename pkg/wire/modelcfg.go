package wire

import (
	"github.com/google/uuid"

	"github.com/openmesh-protocol/meshcfg-go/pkg/mesh"
)

// ModelAppBind requests binding of an application key to a model.
type ModelAppBind struct {
	ElementAddress mesh.Address `cbor:"1,keyasint"`
	AppKeyIndex    uint16       `cbor:"2,keyasint"`
	ModelID        mesh.ModelID `cbor:"3,keyasint"`
}

func (*ModelAppBind) Opcode() Opcode { return OpModelAppBind }

// ModelAppUnbind requests removal of an application key binding.
type ModelAppUnbind struct {
	ElementAddress mesh.Address `cbor:"1,keyasint"`
	AppKeyIndex    uint16       `cbor:"2,keyasint"`
	ModelID        mesh.ModelID `cbor:"3,keyasint"`
}

func (*ModelAppUnbind) Opcode() Opcode { return OpModelAppUnbind }

// ModelAppStatus reports the outcome of a bind or unbind.
type ModelAppStatus struct {
	Status         Status       `cbor:"1,keyasint"`
	ElementAddress mesh.Address `cbor:"2,keyasint"`
	AppKeyIndex    uint16       `cbor:"3,keyasint"`
	ModelID        mesh.ModelID `cbor:"4,keyasint"`
}

func (*ModelAppStatus) Opcode() Opcode { return OpModelAppStatus }

func (m *ModelAppStatus) ReportedStatus() Status { return m.Status }

// ModelAppGet requests the application keys bound to a model.
type ModelAppGet struct {
	ElementAddress mesh.Address `cbor:"1,keyasint"`
	ModelID        mesh.ModelID `cbor:"2,keyasint"`
}

func (*ModelAppGet) Opcode() Opcode { return OpModelAppGet }

// ModelAppList reports the full set of application key indices bound to a
// model.
type ModelAppList struct {
	Status         Status       `cbor:"1,keyasint"`
	ElementAddress mesh.Address `cbor:"2,keyasint"`
	ModelID        mesh.ModelID `cbor:"3,keyasint"`
	Indexes        []uint16     `cbor:"4,keyasint"`
}

func (*ModelAppList) Opcode() Opcode { return OpModelAppList }

func (m *ModelAppList) ReportedStatus() Status { return m.Status }

// ModelPublicationGet requests a model's publication descriptor.
type ModelPublicationGet struct {
	ElementAddress mesh.Address `cbor:"1,keyasint"`
	ModelID        mesh.ModelID `cbor:"2,keyasint"`
}

func (*ModelPublicationGet) Opcode() Opcode { return OpModelPublicationGet }

// ModelPublicationSet requests that a model publish to the given
// destination. Setting the unassigned address clears the publication.
type ModelPublicationSet struct {
	ElementAddress mesh.Address `cbor:"1,keyasint"`
	ModelID        mesh.ModelID `cbor:"2,keyasint"`
	Publish        mesh.Publish `cbor:"3,keyasint"`
}

func (*ModelPublicationSet) Opcode() Opcode { return OpModelPublicationSet }

// ModelPublicationVirtualAddressSet requests publication to a virtual
// destination. The request carries the full label; the responding status
// reports only the derived 16-bit address.
type ModelPublicationVirtualAddressSet struct {
	ElementAddress mesh.Address `cbor:"1,keyasint"`
	ModelID        mesh.ModelID `cbor:"2,keyasint"`
	Publish        mesh.Publish `cbor:"3,keyasint"`
}

func (*ModelPublicationVirtualAddressSet) Opcode() Opcode {
	return OpModelPublicationVirtualAddressSet
}

// ModelPublicationStatus reports a model's current publication.
type ModelPublicationStatus struct {
	Status         Status       `cbor:"1,keyasint"`
	ElementAddress mesh.Address `cbor:"2,keyasint"`
	ModelID        mesh.ModelID `cbor:"3,keyasint"`
	Publish        mesh.Publish `cbor:"4,keyasint"`
}

func (*ModelPublicationStatus) Opcode() Opcode { return OpModelPublicationStatus }

func (m *ModelPublicationStatus) ReportedStatus() Status { return m.Status }

// ModelSubscriptionAdd requests that a model subscribe to a group address.
type ModelSubscriptionAdd struct {
	ElementAddress mesh.Address `cbor:"1,keyasint"`
	Address        mesh.Address `cbor:"2,keyasint"`
	ModelID        mesh.ModelID `cbor:"3,keyasint"`
}

func (*ModelSubscriptionAdd) Opcode() Opcode { return OpModelSubscriptionAdd }

// ModelSubscriptionDelete requests removal of one subscription.
type ModelSubscriptionDelete struct {
	ElementAddress mesh.Address `cbor:"1,keyasint"`
	Address        mesh.Address `cbor:"2,keyasint"`
	ModelID        mesh.ModelID `cbor:"3,keyasint"`
}

func (*ModelSubscriptionDelete) Opcode() Opcode { return OpModelSubscriptionDelete }

// ModelSubscriptionOverwrite requests that the subscription list be
// replaced with the single given address.
type ModelSubscriptionOverwrite struct {
	ElementAddress mesh.Address `cbor:"1,keyasint"`
	Address        mesh.Address `cbor:"2,keyasint"`
	ModelID        mesh.ModelID `cbor:"3,keyasint"`
}

func (*ModelSubscriptionOverwrite) Opcode() Opcode { return OpModelSubscriptionOverwrite }

// ModelSubscriptionDeleteAll requests removal of every subscription.
type ModelSubscriptionDeleteAll struct {
	ElementAddress mesh.Address `cbor:"1,keyasint"`
	ModelID        mesh.ModelID `cbor:"2,keyasint"`
}

func (*ModelSubscriptionDeleteAll) Opcode() Opcode { return OpModelSubscriptionDeleteAll }

// ModelSubscriptionVirtualAddressAdd subscribes a model to a virtual
// address given by its full label.
type ModelSubscriptionVirtualAddressAdd struct {
	ElementAddress mesh.Address `cbor:"1,keyasint"`
	Label          uuid.UUID    `cbor:"2,keyasint"`
	ModelID        mesh.ModelID `cbor:"3,keyasint"`
}

func (*ModelSubscriptionVirtualAddressAdd) Opcode() Opcode {
	return OpModelSubscriptionVirtualAddressAdd
}

// ModelSubscriptionVirtualAddressDelete removes a virtual subscription.
type ModelSubscriptionVirtualAddressDelete struct {
	ElementAddress mesh.Address `cbor:"1,keyasint"`
	Label          uuid.UUID    `cbor:"2,keyasint"`
	ModelID        mesh.ModelID `cbor:"3,keyasint"`
}

func (*ModelSubscriptionVirtualAddressDelete) Opcode() Opcode {
	return OpModelSubscriptionVirtualAddressDelete
}

// ModelSubscriptionVirtualAddressOverwrite replaces the subscription list
// with the single virtual address given by its label.
type ModelSubscriptionVirtualAddressOverwrite struct {
	ElementAddress mesh.Address `cbor:"1,keyasint"`
	Label          uuid.UUID    `cbor:"2,keyasint"`
	ModelID        mesh.ModelID `cbor:"3,keyasint"`
}

func (*ModelSubscriptionVirtualAddressOverwrite) Opcode() Opcode {
	return OpModelSubscriptionVirtualAddressOverwrite
}

// ModelSubscriptionStatus reports the outcome of a subscription change.
// The address is the derived 16-bit address; it carries no meaning for a
// delete-all reply.
type ModelSubscriptionStatus struct {
	Status         Status       `cbor:"1,keyasint"`
	ElementAddress mesh.Address `cbor:"2,keyasint"`
	Address        mesh.Address `cbor:"3,keyasint"`
	ModelID        mesh.ModelID `cbor:"4,keyasint"`
}

func (*ModelSubscriptionStatus) Opcode() Opcode { return OpModelSubscriptionStatus }

func (m *ModelSubscriptionStatus) ReportedStatus() Status { return m.Status }

// ModelSubscriptionGet requests a model's subscription list.
type ModelSubscriptionGet struct {
	ElementAddress mesh.Address `cbor:"1,keyasint"`
	ModelID        mesh.ModelID `cbor:"2,keyasint"`
}

func (*ModelSubscriptionGet) Opcode() Opcode { return OpModelSubscriptionGet }

// ModelSubscriptionList reports a model's full subscription list.
type ModelSubscriptionList struct {
	Status         Status         `cbor:"1,keyasint"`
	ElementAddress mesh.Address   `cbor:"2,keyasint"`
	ModelID        mesh.ModelID   `cbor:"3,keyasint"`
	Addresses      []mesh.Address `cbor:"4,keyasint"`
}

func (*ModelSubscriptionList) Opcode() Opcode { return OpModelSubscriptionList }

func (m *ModelSubscriptionList) ReportedStatus() Status { return m.Status }
