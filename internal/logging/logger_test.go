package logging

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestNewWritesJSONToNonTerminal(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf).Component("config")
	log.Info().Msgf("resolved %s", "config.json")

	var line map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &line); err != nil {
		t.Fatalf("output is not JSON: %v (%q)", err, buf.String())
	}
	if line["component"] != "config" {
		t.Errorf("component = %v, want config", line["component"])
	}
	if line["message"] != "resolved config.json" {
		t.Errorf("message = %v, want %q", line["message"], "resolved config.json")
	}
}

func TestSetVerbose(t *testing.T) {
	defer SetVerbose(false)

	var buf bytes.Buffer
	log := New(&buf)

	log.Debug().Msg("hidden")
	if buf.Len() != 0 {
		t.Fatalf("debug written at info level: %q", buf.String())
	}

	SetVerbose(true)
	log.Debug().Msg("shown")
	if buf.Len() == 0 {
		t.Error("debug not written at debug level")
	}
}

func TestOrNop(t *testing.T) {
	if OrNop(nil) == nil {
		t.Fatal("OrNop(nil) returned nil")
	}
	l := Nop()
	if OrNop(l) != l {
		t.Error("OrNop replaced a non-nil logger")
	}
	OrNop(nil).Warn().Msgf("discarded %d", 1)
}

func TestNewPlainIsReadable(t *testing.T) {
	var buf bytes.Buffer
	log := NewPlain(&buf).Component("tray")
	log.Info().Msg("Primary window shown")

	out := buf.String()
	if !strings.Contains(out, "Primary window shown") {
		t.Errorf("message missing from %q", out)
	}
	if strings.Contains(out, "\x1b[") {
		t.Errorf("plain output contains color codes: %q", out)
	}
	if strings.HasPrefix(strings.TrimSpace(out), "{") {
		t.Errorf("plain output is JSON: %q", out)
	}
}
