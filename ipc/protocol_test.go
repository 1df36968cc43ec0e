package ipc

import (
	"encoding/json"
	"testing"
)

func TestFormatEventProducesNewlineTerminatedJSON(t *testing.T) {
	line, err := formatEvent("workspace", map[string]int{"active": 1})
	if err != nil {
		t.Fatalf("formatEvent: %v", err)
	}
	if len(line) == 0 || line[len(line)-1] != '\n' {
		t.Fatalf("formatEvent result not newline-terminated: %q", line)
	}

	var decoded event
	if err := json.Unmarshal(line[:len(line)-1], &decoded); err != nil {
		t.Fatalf("formatEvent output did not round-trip: %v", err)
	}
	if decoded.Event != "workspace" {
		t.Errorf("Event = %q, want %q", decoded.Event, "workspace")
	}
}

func TestFormatEventRejectsUnmarshalablePayload(t *testing.T) {
	if _, err := formatEvent("bad", make(chan int)); err == nil {
		t.Error("formatEvent with an unmarshalable payload: want error, got nil")
	}
}
