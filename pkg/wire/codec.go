package wire

import (
	"fmt"

	"github.com/fxamacker/cbor/v2"
)

// encMode is the CBOR encoder mode for Config messages.
// Configured for deterministic encoding with integer keys.
var encMode cbor.EncMode

// decMode is the CBOR decoder mode for Config messages.
var decMode cbor.DecMode

func init() {
	var err error

	// Configure encoder for deterministic output
	encOpts := cbor.EncOptions{
		Sort:          cbor.SortCanonical,
		IndefLength:   cbor.IndefLengthForbidden,
		NilContainers: cbor.NilContainerAsNull,
		Time:          cbor.TimeUnix,
	}
	encMode, err = encOpts.EncMode()
	if err != nil {
		panic(fmt.Sprintf("failed to create CBOR encoder mode: %v", err))
	}

	// Configure decoder to be lenient for forward compatibility
	decOpts := cbor.DecOptions{
		DupMapKey:         cbor.DupMapKeyQuiet,
		IndefLength:       cbor.IndefLengthAllowed,
		ExtraReturnErrors: cbor.ExtraDecErrorNone,
	}
	decMode, err = decOpts.DecMode()
	if err != nil {
		panic(fmt.Sprintf("failed to create CBOR decoder mode: %v", err))
	}
}

// Marshal encodes a value to CBOR bytes.
func Marshal(v any) ([]byte, error) {
	return encMode.Marshal(v)
}

// Unmarshal decodes CBOR bytes into a value.
func Unmarshal(data []byte, v any) error {
	return decMode.Unmarshal(data, v)
}

// envelope is the outer wire structure carrying any Config message.
type envelope struct {
	Opcode  Opcode          `cbor:"1,keyasint"`
	Payload cbor.RawMessage `cbor:"2,keyasint,omitempty"`
}

// registry maps opcodes to payload constructors for decoding.
var registry = map[Opcode]func() Message{
	OpCompositionDataGet:    func() Message { return new(CompositionDataGet) },
	OpCompositionDataStatus: func() Message { return new(CompositionDataStatus) },

	OpNetKeyAdd:    func() Message { return new(NetKeyAdd) },
	OpNetKeyUpdate: func() Message { return new(NetKeyUpdate) },
	OpNetKeyDelete: func() Message { return new(NetKeyDelete) },
	OpNetKeyGet:    func() Message { return new(NetKeyGet) },
	OpNetKeyList:   func() Message { return new(NetKeyList) },
	OpNetKeyStatus: func() Message { return new(NetKeyStatus) },

	OpAppKeyAdd:    func() Message { return new(AppKeyAdd) },
	OpAppKeyUpdate: func() Message { return new(AppKeyUpdate) },
	OpAppKeyDelete: func() Message { return new(AppKeyDelete) },
	OpAppKeyGet:    func() Message { return new(AppKeyGet) },
	OpAppKeyList:   func() Message { return new(AppKeyList) },
	OpAppKeyStatus: func() Message { return new(AppKeyStatus) },

	OpModelAppBind:   func() Message { return new(ModelAppBind) },
	OpModelAppUnbind: func() Message { return new(ModelAppUnbind) },
	OpModelAppStatus: func() Message { return new(ModelAppStatus) },
	OpModelAppGet:    func() Message { return new(ModelAppGet) },
	OpModelAppList:   func() Message { return new(ModelAppList) },

	OpModelPublicationGet:               func() Message { return new(ModelPublicationGet) },
	OpModelPublicationSet:               func() Message { return new(ModelPublicationSet) },
	OpModelPublicationVirtualAddressSet: func() Message { return new(ModelPublicationVirtualAddressSet) },
	OpModelPublicationStatus:            func() Message { return new(ModelPublicationStatus) },

	OpModelSubscriptionAdd:       func() Message { return new(ModelSubscriptionAdd) },
	OpModelSubscriptionDelete:    func() Message { return new(ModelSubscriptionDelete) },
	OpModelSubscriptionDeleteAll: func() Message { return new(ModelSubscriptionDeleteAll) },
	OpModelSubscriptionOverwrite: func() Message { return new(ModelSubscriptionOverwrite) },
	OpModelSubscriptionVirtualAddressAdd: func() Message {
		return new(ModelSubscriptionVirtualAddressAdd)
	},
	OpModelSubscriptionVirtualAddressDelete: func() Message {
		return new(ModelSubscriptionVirtualAddressDelete)
	},
	OpModelSubscriptionVirtualAddressOverwrite: func() Message {
		return new(ModelSubscriptionVirtualAddressOverwrite)
	},
	OpModelSubscriptionStatus: func() Message { return new(ModelSubscriptionStatus) },
	OpModelSubscriptionGet:    func() Message { return new(ModelSubscriptionGet) },
	OpModelSubscriptionList:   func() Message { return new(ModelSubscriptionList) },

	OpDefaultTTLGet:    func() Message { return new(DefaultTTLGet) },
	OpDefaultTTLSet:    func() Message { return new(DefaultTTLSet) },
	OpDefaultTTLStatus: func() Message { return new(DefaultTTLStatus) },

	OpNodeReset:       func() Message { return new(NodeReset) },
	OpNodeResetStatus: func() Message { return new(NodeResetStatus) },
}

// Encode encodes a Config message into its wire envelope.
func Encode(msg Message) ([]byte, error) {
	payload, err := Marshal(msg)
	if err != nil {
		return nil, fmt.Errorf("failed to encode payload for %s: %w", msg.Opcode(), err)
	}
	return Marshal(envelope{Opcode: msg.Opcode(), Payload: payload})
}

// Decode decodes a wire envelope into its concrete Config message.
// An unknown opcode is an error at this layer; callers deciding to skip
// unknown kinds should check with errors.As against *UnknownOpcodeError.
func Decode(data []byte) (Message, error) {
	var env envelope
	if err := Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("failed to decode envelope: %w", err)
	}

	newMsg, ok := registry[env.Opcode]
	if !ok {
		return nil, &UnknownOpcodeError{Opcode: env.Opcode}
	}

	msg := newMsg()
	if len(env.Payload) > 0 {
		if err := Unmarshal(env.Payload, msg); err != nil {
			return nil, fmt.Errorf("failed to decode %s payload: %w", env.Opcode, err)
		}
	}
	return msg, nil
}

// UnknownOpcodeError reports an envelope with an opcode this stack does
// not implement.
type UnknownOpcodeError struct {
	Opcode Opcode
}

func (e *UnknownOpcodeError) Error() string {
	return fmt.Sprintf("unknown config opcode %s", e.Opcode)
}
