package log

import (
	"bytes"
	"io"
	"log/slog"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestDirectionString(t *testing.T) {
	tests := []struct {
		d    Direction
		want string
	}{
		{DirectionRead, "READ"},
		{DirectionWrite, "WRITE"},
		{Direction(42), "UNKNOWN"},
	}
	for _, tt := range tests {
		if got := tt.d.String(); got != tt.want {
			t.Errorf("Direction(%d).String() = %q, want %q", tt.d, got, tt.want)
		}
	}
}

func TestCategoryString(t *testing.T) {
	tests := []struct {
		c    Category
		want string
	}{
		{CategoryIO, "IO"},
		{CategoryVerify, "VERIFY"},
		{CategoryState, "STATE"},
		{CategoryError, "ERROR"},
		{Category(42), "UNKNOWN"},
	}
	for _, tt := range tests {
		if got := tt.c.String(); got != tt.want {
			t.Errorf("Category(%d).String() = %q, want %q", tt.c, got, tt.want)
		}
	}
}

func TestStateEntityString(t *testing.T) {
	tests := []struct {
		e    StateEntity
		want string
	}{
		{StateEntitySession, "SESSION"},
		{StateEntityDevice, "DEVICE"},
		{StateEntityChannel, "CHANNEL"},
		{StateEntity(42), "UNKNOWN"},
	}
	for _, tt := range tests {
		if got := tt.e.String(); got != tt.want {
			t.Errorf("StateEntity(%d).String() = %q, want %q", tt.e, got, tt.want)
		}
	}
}

func TestEncodeDecodeEvent(t *testing.T) {
	event := Event{
		Timestamp: time.Date(2026, 3, 14, 9, 26, 53, 589793238, time.UTC),
		SessionID: "f1c2...",
		Device:    "unidrive-sp",
		Feature:   "speed",
		Direction: DirectionWrite,
		Category:  CategoryIO,
		Register:  &RegisterEvent{Address: 23, Raw: 123},
	}

	data, err := EncodeEvent(event)
	if err != nil {
		t.Fatalf("EncodeEvent failed: %v", err)
	}
	decoded, err := DecodeEvent(data)
	if err != nil {
		t.Fatalf("DecodeEvent failed: %v", err)
	}

	if !decoded.Timestamp.Equal(event.Timestamp) {
		t.Errorf("timestamp = %v, want %v (nanosecond precision)", decoded.Timestamp, event.Timestamp)
	}
	if decoded.Device != event.Device || decoded.Feature != event.Feature {
		t.Errorf("identity = %q/%q, want %q/%q", decoded.Device, decoded.Feature, event.Device, event.Feature)
	}
	if decoded.Register == nil || *decoded.Register != *event.Register {
		t.Errorf("register payload = %+v, want %+v", decoded.Register, event.Register)
	}
	if decoded.Query != nil || decoded.Verify != nil {
		t.Error("unset payloads must stay nil after decode")
	}
}

func logTestEvents(t *testing.T, path string) {
	t.Helper()
	logger, err := NewFileLogger(path)
	if err != nil {
		t.Fatalf("NewFileLogger failed: %v", err)
	}
	base := time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)
	events := []Event{
		{Timestamp: base, Device: "drive", Feature: "speed", Direction: DirectionWrite, Category: CategoryIO,
			Register: &RegisterEvent{Address: 23, Raw: 123}},
		{Timestamp: base.Add(time.Second), Device: "drive", Feature: "speed", Direction: DirectionRead, Category: CategoryIO,
			Register: &RegisterEvent{Address: 23, Raw: 100}},
		{Timestamp: base.Add(2 * time.Second), Device: "drive", Feature: "speed", Direction: DirectionWrite, Category: CategoryVerify,
			Verify: &VerifyEvent{Requested: "12.3", Actual: "10"}},
	}
	for _, e := range events {
		logger.Log(e)
	}
	if err := logger.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
}

func readAll(t *testing.T, r *Reader) []Event {
	t.Helper()
	var out []Event
	for {
		e, err := r.Next()
		if err == io.EOF {
			return out
		}
		if err != nil {
			t.Fatalf("Next failed: %v", err)
		}
		out = append(out, e)
	}
}

func TestFileLoggerRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.rlog")
	logTestEvents(t, path)

	r, err := NewReader(path)
	if err != nil {
		t.Fatalf("NewReader failed: %v", err)
	}
	defer r.Close()

	events := readAll(t, r)
	if len(events) != 3 {
		t.Fatalf("got %d events, want 3", len(events))
	}
	if events[0].Register == nil || events[0].Register.Raw != 123 {
		t.Errorf("first event register = %+v", events[0].Register)
	}
	if events[2].Verify == nil || events[2].Verify.Actual != "10" {
		t.Errorf("third event verify = %+v", events[2].Verify)
	}
}

func TestFileLoggerAppends(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.rlog")
	logTestEvents(t, path)

	logger, err := NewFileLogger(path)
	if err != nil {
		t.Fatalf("NewFileLogger failed: %v", err)
	}
	logger.Log(Event{Timestamp: time.Now(), Category: CategoryState,
		State: &StateChangeEvent{Entity: StateEntitySession, NewState: "closed"}})
	if err := logger.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	r, err := NewReader(path)
	if err != nil {
		t.Fatalf("NewReader failed: %v", err)
	}
	defer r.Close()
	if events := readAll(t, r); len(events) != 4 {
		t.Errorf("got %d events after append, want 4", len(events))
	}
}

func TestFileLoggerClosedIgnoresLog(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.rlog")
	logger, err := NewFileLogger(path)
	if err != nil {
		t.Fatalf("NewFileLogger failed: %v", err)
	}
	if err := logger.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
	if err := logger.Close(); err != nil {
		t.Errorf("second Close failed: %v", err)
	}
	logger.Log(Event{Timestamp: time.Now()}) // must not panic

	r, err := NewReader(path)
	if err != nil {
		t.Fatalf("NewReader failed: %v", err)
	}
	defer r.Close()
	if events := readAll(t, r); len(events) != 0 {
		t.Errorf("got %d events after close, want 0", len(events))
	}
}

func TestFilteredReader(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.rlog")
	logTestEvents(t, path)

	t.Run("ByCategory", func(t *testing.T) {
		verify := CategoryVerify
		r, err := NewFilteredReader(path, Filter{Category: &verify})
		if err != nil {
			t.Fatalf("NewFilteredReader failed: %v", err)
		}
		defer r.Close()
		events := readAll(t, r)
		if len(events) != 1 {
			t.Fatalf("got %d events, want 1", len(events))
		}
		if events[0].Verify == nil || events[0].Verify.Requested != "12.3" {
			t.Errorf("verify payload = %+v", events[0].Verify)
		}
	})

	t.Run("ByDirection", func(t *testing.T) {
		read := DirectionRead
		r, err := NewFilteredReader(path, Filter{Direction: &read})
		if err != nil {
			t.Fatalf("NewFilteredReader failed: %v", err)
		}
		defer r.Close()
		if events := readAll(t, r); len(events) != 1 {
			t.Errorf("got %d events, want 1", len(events))
		}
	})

	t.Run("ByTimeWindow", func(t *testing.T) {
		start := time.Date(2026, 3, 14, 9, 0, 1, 0, time.UTC)
		end := start.Add(time.Second)
		r, err := NewFilteredReader(path, Filter{TimeStart: &start, TimeEnd: &end})
		if err != nil {
			t.Fatalf("NewFilteredReader failed: %v", err)
		}
		defer r.Close()
		events := readAll(t, r)
		if len(events) != 1 {
			t.Fatalf("got %d events, want 1", len(events))
		}
		if events[0].Register == nil || events[0].Register.Raw != 100 {
			t.Errorf("windowed event = %+v", events[0])
		}
	})

	t.Run("NoMatch", func(t *testing.T) {
		r, err := NewFilteredReader(path, Filter{Device: "funcgen"})
		if err != nil {
			t.Fatalf("NewFilteredReader failed: %v", err)
		}
		defer r.Close()
		if events := readAll(t, r); len(events) != 0 {
			t.Errorf("got %d events, want 0", len(events))
		}
	})
}

// countingLogger counts events for MultiLogger fan-out checks.
type countingLogger struct {
	count int
}

func (c *countingLogger) Log(Event) { c.count++ }

func TestMultiLogger(t *testing.T) {
	a := &countingLogger{}
	b := &countingLogger{}
	m := NewMultiLogger(a, b)

	m.Log(Event{Timestamp: time.Now()})
	m.Log(Event{Timestamp: time.Now()})

	if a.count != 2 || b.count != 2 {
		t.Errorf("fan-out counts = %d/%d, want 2/2", a.count, b.count)
	}
}

func TestSlogAdapter(t *testing.T) {
	var buf bytes.Buffer
	adapter := NewSlogAdapter(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))

	adapter.Log(Event{
		Timestamp: time.Now(),
		Device:    "drive",
		Feature:   "speed",
		Direction: DirectionWrite,
		Category:  CategoryVerify,
		Verify:    &VerifyEvent{Requested: "12.3", Actual: "10"},
	})

	out := buf.String()
	if !strings.Contains(out, "level=WARN") {
		t.Errorf("verification mismatch not logged at warn level: %s", out)
	}
	for _, want := range []string{"device=drive", "feature=speed", "requested=12.3", "actual=10"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q: %s", want, out)
		}
	}

	buf.Reset()
	adapter.Log(Event{
		Timestamp: time.Now(),
		Category:  CategoryIO,
		Direction: DirectionRead,
		Register:  &RegisterEvent{Address: 23, Raw: 100},
	})
	if !strings.Contains(buf.String(), "level=DEBUG") {
		t.Errorf("IO event not logged at debug level: %s", buf.String())
	}
}
