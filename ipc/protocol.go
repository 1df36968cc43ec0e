// Package ipc is the control plane: a line-oriented command
// protocol over a local stream socket, plus a JSON event broadcast to every
// subscribed client. It knows nothing about window-manager state directly —
// commands are handed to a Dispatch callback and events are pushed in by
// whoever owns the engine (the bar publisher, in this module's wiring).
package ipc

import "encoding/json"

// event is the wire shape of a broadcast line: `{"event":"<name>","payload":{…}}`.
type event struct {
	Event   string      `json:"event"`
	Payload interface{} `json:"payload"`
}

// formatEvent renders one broadcast event as a single newline-terminated
// JSON line.
func formatEvent(name string, payload interface{}) ([]byte, error) {
	b, err := json.Marshal(event{Event: name, Payload: payload})
	if err != nil {
		return nil, err
	}
	return append(b, '\n'), nil
}
