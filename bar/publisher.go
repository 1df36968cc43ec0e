// Package bar is the bar publisher: it sits between the window-state
// engine's Emit callback and the IPC hub's broadcast, so the engine itself
// never imports the ipc package.
package bar

import "github.com/mywm/mywm/ipc"

// Publisher forwards workspace/focus/bar-toggle events onto
// an IPC hub's subscriber set.
type Publisher struct {
	hub *ipc.Hub
}

// New wraps hub for use as a wm.WM.Emit callback.
func New(hub *ipc.Hub) *Publisher {
	return &Publisher{hub: hub}
}

// Publish matches the wm.WM.Emit signature.
func (p *Publisher) Publish(event string, payload interface{}) {
	p.hub.Broadcast(event, payload)
}
