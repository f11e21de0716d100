package feed

import "testing"

// TestDecodeValidSample round-trips a complete line.
func TestDecodeValidSample(t *testing.T) {
	line := []byte(`{"source":"sensor-a","seq":7,"value":21.5,"ts":1700000000000000000,"payload":"cabin"}`)
	s, err := Decode(line)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if s.Source != "sensor-a" || s.Seq != 7 || s.Value != 21.5 || s.Payload != "cabin" {
		t.Fatalf("Decode = %+v", s)
	}
}

// TestDecodeMissingSource rejects unattributable samples.
func TestDecodeMissingSource(t *testing.T) {
	if _, err := Decode([]byte(`{"seq":1,"value":2}`)); err != ErrNoSource {
		t.Fatalf("Decode without source: err = %v, want ErrNoSource", err)
	}
}

// TestDecodeMalformed propagates the parse error.
func TestDecodeMalformed(t *testing.T) {
	if _, err := Decode([]byte(`{"source":`)); err == nil {
		t.Fatal("Decode of truncated JSON must fail")
	}
}

// TestQuickSource checks the pre-filter extracts without a full parse and
// rejects non-sample lines.
func TestQuickSource(t *testing.T) {
	got := QuickSource([]byte(`{"source":"sensor-b","seq":1}`))
	if string(got) != "sensor-b" {
		t.Fatalf("QuickSource = %q, want sensor-b", got)
	}
	if QuickSource([]byte(`{"kind":"heartbeat"}`)) != nil {
		t.Fatal("QuickSource matched a line without a source field")
	}
	if QuickSource([]byte(`{"source": 12}`)) != nil {
		t.Fatal("QuickSource matched a non-string source")
	}
}

// TestQuickSourceAgreesWithDecode feeds the same line through both paths.
func TestQuickSourceAgreesWithDecode(t *testing.T) {
	line := []byte(`{"source":"pump-3","seq":9,"value":0.25}`)
	quick := string(QuickSource(line))
	s, err := Decode(line)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if quick != s.Source {
		t.Fatalf("QuickSource %q != Decode source %q", quick, s.Source)
	}
}
