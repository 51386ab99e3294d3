package wire

import "fmt"

// Opcode identifies a Config message kind on the wire.
type Opcode uint16

// Config message opcodes.
const (
	OpAppKeyAdd             Opcode = 0x0000
	OpAppKeyUpdate          Opcode = 0x0001
	OpCompositionDataStatus Opcode = 0x0002
	OpModelPublicationSet   Opcode = 0x0003

	OpAppKeyDelete       Opcode = 0x8000
	OpAppKeyGet          Opcode = 0x8001
	OpAppKeyList         Opcode = 0x8002
	OpAppKeyStatus       Opcode = 0x8003
	OpCompositionDataGet Opcode = 0x8008
	OpDefaultTTLGet      Opcode = 0x800C
	OpDefaultTTLSet      Opcode = 0x800D
	OpDefaultTTLStatus   Opcode = 0x800E

	OpModelPublicationGet               Opcode = 0x8018
	OpModelPublicationStatus            Opcode = 0x8019
	OpModelPublicationVirtualAddressSet Opcode = 0x801A

	OpModelSubscriptionAdd                     Opcode = 0x801B
	OpModelSubscriptionDelete                  Opcode = 0x801C
	OpModelSubscriptionDeleteAll               Opcode = 0x801D
	OpModelSubscriptionOverwrite               Opcode = 0x801E
	OpModelSubscriptionStatus                  Opcode = 0x801F
	OpModelSubscriptionVirtualAddressAdd       Opcode = 0x8020
	OpModelSubscriptionVirtualAddressDelete    Opcode = 0x8021
	OpModelSubscriptionVirtualAddressOverwrite Opcode = 0x8022

	OpModelSubscriptionGet  Opcode = 0x8029
	OpModelSubscriptionList Opcode = 0x802A

	OpModelAppBind   Opcode = 0x803D
	OpModelAppStatus Opcode = 0x803E
	OpModelAppUnbind Opcode = 0x803F

	OpNetKeyAdd    Opcode = 0x8040
	OpNetKeyDelete Opcode = 0x8041
	OpNetKeyGet    Opcode = 0x8042
	OpNetKeyList   Opcode = 0x8043
	OpNetKeyStatus Opcode = 0x8044
	OpNetKeyUpdate Opcode = 0x8045

	OpNodeReset       Opcode = 0x8049
	OpNodeResetStatus Opcode = 0x804A

	OpModelAppGet  Opcode = 0x804B
	OpModelAppList Opcode = 0x804C
)

// String returns the opcode in hex form.
func (o Opcode) String() string {
	return fmt.Sprintf("0x%04X", uint16(o))
}

// Message is a member of the Config message family. The set of
// implementations is closed; dispatch with a type switch and ignore
// unrecognized kinds.
type Message interface {
	// Opcode identifies the message kind on the wire.
	Opcode() Opcode
}

// StatusMessage is implemented by messages carrying a Status code.
type StatusMessage interface {
	Message

	// ReportedStatus returns the status code carried by the message.
	ReportedStatus() Status
}
