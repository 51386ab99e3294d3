package wire

// NetKeyAdd requests that a network key be stored at the given index.
type NetKeyAdd struct {
	Index uint16 `cbor:"1,keyasint"`
	Key   []byte `cbor:"2,keyasint"`
}

func (*NetKeyAdd) Opcode() Opcode { return OpNetKeyAdd }

// NetKeyUpdate requests the second phase of a key refresh: replacing the
// key value stored at the index.
type NetKeyUpdate struct {
	Index uint16 `cbor:"1,keyasint"`
	Key   []byte `cbor:"2,keyasint"`
}

func (*NetKeyUpdate) Opcode() Opcode { return OpNetKeyUpdate }

// NetKeyDelete requests removal of the network key at the given index.
type NetKeyDelete struct {
	Index uint16 `cbor:"1,keyasint"`
}

func (*NetKeyDelete) Opcode() Opcode { return OpNetKeyDelete }

// NetKeyGet requests the list of known network key indices.
type NetKeyGet struct{}

func (*NetKeyGet) Opcode() Opcode { return OpNetKeyGet }

// NetKeyList reports all network key indices known to the sender.
type NetKeyList struct {
	Indexes []uint16 `cbor:"1,keyasint"`
}

func (*NetKeyList) Opcode() Opcode { return OpNetKeyList }

// NetKeyStatus reports the outcome of a network key add/update/delete.
type NetKeyStatus struct {
	Status Status `cbor:"1,keyasint"`
	Index  uint16 `cbor:"2,keyasint"`
}

func (*NetKeyStatus) Opcode() Opcode { return OpNetKeyStatus }

func (m *NetKeyStatus) ReportedStatus() Status { return m.Status }

// AppKeyAdd requests that an application key be stored at the given index,
// bound to the network key at NetKeyIndex.
type AppKeyAdd struct {
	NetKeyIndex uint16 `cbor:"1,keyasint"`
	AppKeyIndex uint16 `cbor:"2,keyasint"`
	Key         []byte `cbor:"3,keyasint"`
}

func (*AppKeyAdd) Opcode() Opcode { return OpAppKeyAdd }

// AppKeyUpdate requests replacement of the application key value during a
// key refresh.
type AppKeyUpdate struct {
	NetKeyIndex uint16 `cbor:"1,keyasint"`
	AppKeyIndex uint16 `cbor:"2,keyasint"`
	Key         []byte `cbor:"3,keyasint"`
}

func (*AppKeyUpdate) Opcode() Opcode { return OpAppKeyUpdate }

// AppKeyDelete requests removal of the application key at AppKeyIndex.
type AppKeyDelete struct {
	NetKeyIndex uint16 `cbor:"1,keyasint"`
	AppKeyIndex uint16 `cbor:"2,keyasint"`
}

func (*AppKeyDelete) Opcode() Opcode { return OpAppKeyDelete }

// AppKeyGet requests the application key indices bound to a network key.
type AppKeyGet struct {
	NetKeyIndex uint16 `cbor:"1,keyasint"`
}

func (*AppKeyGet) Opcode() Opcode { return OpAppKeyGet }

// AppKeyList reports the application key indices bound to one network key.
type AppKeyList struct {
	Status      Status   `cbor:"1,keyasint"`
	NetKeyIndex uint16   `cbor:"2,keyasint"`
	Indexes     []uint16 `cbor:"3,keyasint"`
}

func (*AppKeyList) Opcode() Opcode { return OpAppKeyList }

func (m *AppKeyList) ReportedStatus() Status { return m.Status }

// AppKeyStatus reports the outcome of an application key add/update/delete.
type AppKeyStatus struct {
	Status      Status `cbor:"1,keyasint"`
	NetKeyIndex uint16 `cbor:"2,keyasint"`
	AppKeyIndex uint16 `cbor:"3,keyasint"`
}

func (*AppKeyStatus) Opcode() Opcode { return OpAppKeyStatus }

func (m *AppKeyStatus) ReportedStatus() Status { return m.Status }
