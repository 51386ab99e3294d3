package wire

import (
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/openmesh-protocol/meshcfg-go/pkg/mesh"
)

func TestMessageRoundTrip(t *testing.T) {
	label := uuid.MustParse("0b91a529-6cc4-4b76-9f4a-7d3a14f1a2b3")

	tests := []struct {
		name string
		msg  Message
	}{
		{
			name: "netkey add",
			msg: &NetKeyAdd{
				Index: 0,
				Key:   []byte{0x00, 0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08, 0x09, 0x0A, 0x0B, 0x0C, 0x0D, 0x0E, 0x0F},
			},
		},
		{
			name: "appkey status",
			msg: &AppKeyStatus{
				Status:      StatusSuccess,
				NetKeyIndex: 0,
				AppKeyIndex: 3,
			},
		},
		{
			name: "publication virtual set",
			msg: &ModelPublicationVirtualAddressSet{
				ElementAddress: 0x0010,
				ModelID:        0x1000,
				Publish: mesh.Publish{
					Address:     mesh.NewVirtualAddress(0x8001, label),
					AppKeyIndex: 3,
					TTL:         7,
					Period:      10 * time.Second,
					Retransmit:  mesh.PublishRetransmit{Count: 2, Interval: 50 * time.Millisecond},
				},
			},
		},
		{
			name: "subscription list",
			msg: &ModelSubscriptionList{
				Status:         StatusSuccess,
				ElementAddress: 0x0010,
				ModelID:        0x1000,
				Addresses:      []mesh.Address{0xC000, 0xC001},
			},
		},
		{
			name: "composition status",
			msg: &CompositionDataStatus{
				Page: 0,
				Data: &CompositionPage0{
					CompanyID: 0x005A,
					ProductID: 0x0001,
					VersionID: 0x0100,
					CRPL:      32,
					Features:  0x0003,
					Elements: []ElementDescriptor{
						{Location: 0x0100, SIGModels: []mesh.ModelID{0x1000, 0x1001}},
						{Location: 0x0101, VendorModels: []mesh.ModelID{0x005A0001}},
					},
				},
			},
		},
		{
			name: "node reset status",
			msg:  &NodeResetStatus{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := Encode(tt.msg)
			if err != nil {
				t.Fatalf("Encode failed: %v", err)
			}

			decoded, err := Decode(data)
			if err != nil {
				t.Fatalf("Decode failed: %v", err)
			}

			if decoded.Opcode() != tt.msg.Opcode() {
				t.Errorf("opcode = %s, want %s", decoded.Opcode(), tt.msg.Opcode())
			}
			if !reflect.DeepEqual(decoded, tt.msg) {
				t.Errorf("round trip mismatch:\n got %#v\nwant %#v", decoded, tt.msg)
			}
		})
	}
}

func TestDecodeUnknownOpcode(t *testing.T) {
	data, err := Marshal(envelope{Opcode: 0x7FFF})
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}

	_, err = Decode(data)
	var unknownErr *UnknownOpcodeError
	if !errors.As(err, &unknownErr) {
		t.Fatalf("expected UnknownOpcodeError, got %v", err)
	}
	if unknownErr.Opcode != 0x7FFF {
		t.Errorf("opcode = %s", unknownErr.Opcode)
	}
}

func TestDeterministicEncoding(t *testing.T) {
	msg := &NetKeyStatus{Status: StatusSuccess, Index: 2}

	first, err := Encode(msg)
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	second, err := Encode(msg)
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Error("encoding is not deterministic")
	}
}
