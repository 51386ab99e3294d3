package mesh

import "time"

// DefaultTTL is the stack-wide default time-to-live used when a node has
// no explicit default TTL configured.
const DefaultTTL uint8 = 5

// ModelID identifies a functional model on an element. SIG-defined models
// use the low 16 bits; vendor models carry the company identifier in the
// high 16 bits.
type ModelID uint32

// IsVendor returns true if the model is vendor-defined.
func (id ModelID) IsVendor() bool {
	return id > 0xFFFF
}

// String returns the ID as 4 hex digits for SIG models, 8 for vendor.
func (id ModelID) String() string {
	if id.IsVendor() {
		return "0x" + hexUpper(uint32(id), 8)
	}
	return "0x" + hexUpper(uint32(id), 4)
}

func hexUpper(v uint32, digits int) string {
	const hexDigits = "0123456789ABCDEF"
	buf := make([]byte, digits)
	for i := digits - 1; i >= 0; i-- {
		buf[i] = hexDigits[v&0xF]
		v >>= 4
	}
	return string(buf)
}

// Publish describes a model's outbound publication: where it publishes
// and with what transmission parameters.
type Publish struct {
	// Address is the publication destination. A virtual destination
	// carries its label when the label is known to the sender.
	Address MeshAddress `cbor:"1,keyasint" json:"address" yaml:"address"`

	// AppKeyIndex selects the application key securing published messages.
	AppKeyIndex uint16 `cbor:"2,keyasint" json:"app_key_index" yaml:"app_key_index"`

	// TTL is the initial time-to-live for published messages.
	TTL uint8 `cbor:"3,keyasint" json:"ttl" yaml:"ttl"`

	// Period is the interval for periodic publishing; zero disables it.
	Period time.Duration `cbor:"4,keyasint,omitempty" json:"period,omitempty" yaml:"period,omitempty"`

	// Credentials selects friendship security material when true.
	Credentials bool `cbor:"5,keyasint,omitempty" json:"credentials,omitempty" yaml:"credentials,omitempty"`

	// Retransmit configures retransmission of published messages.
	Retransmit PublishRetransmit `cbor:"6,keyasint" json:"retransmit" yaml:"retransmit"`
}

// PublishRetransmit configures retransmissions of a published message.
type PublishRetransmit struct {
	Count    uint8         `cbor:"1,keyasint" json:"count" yaml:"count"`
	Interval time.Duration `cbor:"2,keyasint" json:"interval" yaml:"interval"`
}
