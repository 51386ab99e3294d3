package log

import (
	"bytes"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/openmesh-protocol/meshcfg-go/pkg/wire"
)

func sampleEvent() Event {
	status := wire.StatusSuccess
	return Event{
		Timestamp: time.Date(2026, 3, 14, 9, 26, 53, 589793238, time.UTC),
		Direction: DirectionIn,
		Category:  CategoryMessage,
		Source:    0x0010,
		Opcode:    wire.OpNetKeyStatus,
		Status:    &status,
	}
}

func TestEventRoundTrip(t *testing.T) {
	event := sampleEvent()

	data, err := EncodeEvent(event)
	if err != nil {
		t.Fatalf("EncodeEvent failed: %v", err)
	}
	decoded, err := DecodeEvent(data)
	if err != nil {
		t.Fatalf("DecodeEvent failed: %v", err)
	}

	if !decoded.Timestamp.Equal(event.Timestamp) {
		t.Errorf("timestamp = %v, want %v", decoded.Timestamp, event.Timestamp)
	}
	if decoded.Source != event.Source || decoded.Opcode != event.Opcode {
		t.Errorf("decoded = %+v", decoded)
	}
	if decoded.Status == nil || *decoded.Status != wire.StatusSuccess {
		t.Errorf("status = %v", decoded.Status)
	}
}

func TestFileLogger(t *testing.T) {
	path := filepath.Join(t.TempDir(), "events.cbor")

	l, err := NewFileLogger(path)
	if err != nil {
		t.Fatalf("NewFileLogger failed: %v", err)
	}
	l.Log(sampleEvent())
	l.Log(sampleEvent())
	if err := l.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
	// Logging after Close is ignored
	l.Log(sampleEvent())

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open failed: %v", err)
	}
	defer f.Close()

	dec := NewDecoder(f)
	count := 0
	for {
		var event Event
		if err := dec.Decode(&event); err != nil {
			if err == io.EOF {
				break
			}
			t.Fatalf("Decode failed: %v", err)
		}
		count++
	}
	if count != 2 {
		t.Errorf("expected 2 events in capture file, got %d", count)
	}
}

func TestMultiLoggerFansOut(t *testing.T) {
	var first, second recordingLogger
	m := NewMultiLogger(&first, &second)

	m.Log(sampleEvent())

	if first.count != 1 || second.count != 1 {
		t.Errorf("counts = %d, %d", first.count, second.count)
	}
}

func TestSlogAdapter(t *testing.T) {
	var buf bytes.Buffer
	handler := slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})
	a := NewSlogAdapter(slog.New(handler))

	a.Log(sampleEvent())

	out := buf.String()
	if !bytes.Contains(buf.Bytes(), []byte("0x8044")) {
		t.Errorf("slog output missing opcode: %q", out)
	}
}

type recordingLogger struct {
	count int
}

func (r *recordingLogger) Log(Event) { r.count++ }
