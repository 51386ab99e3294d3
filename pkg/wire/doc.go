// Package wire defines the Config message family used to provision and
// manage nodes, together with its CBOR codec.
//
// # Message Model
//
// Every message is a struct implementing the Message interface and is
// identified by a two-octet Opcode. The family is closed: consumers
// dispatch with a type switch over the concrete kinds and treat unknown
// opcodes as a no-op for forward compatibility.
//
// # Encoding
//
// Messages cross the lower transport layers as a CBOR envelope:
//
//	{
//	  1: opcode,    // uint16
//	  2: payload    // message-specific map, integer keys
//	}
//
// Encoding is deterministic (canonical key order); decoding is lenient so
// that newer peers can add fields without breaking older ones. Network,
// transport and access layer framing, encryption and segmentation all
// happen below this package.
package wire
