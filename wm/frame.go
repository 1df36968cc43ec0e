package wm

import (
	"fmt"

	"github.com/BurntSushi/xgb/xproto"
	"github.com/mywm/mywm/x11"
)

// createFrame allocates a decoration window and reparents client into it,
// at offset (outer+inner, outer+inner). Generalized from
// funkycode-marwind's frame.go createParent/reparent, which hard-codes a
// single global border color onto every frame for the rest of its life;
// here the current appearance snapshot is copied onto the new frame so a
// later `set-border`/`set-color` only has to walk live frames, not
// re-derive their decorations from a shared pointer.
func (wm *WM) createFrame(client xproto.Window, geom x11.Geom) (*Frame, error) {
	f := &Frame{
		InnerBorder: uint32(wm.appearance.BorderInner),
		OuterBorder: uint32(wm.appearance.BorderOuter),
		InnerColor:  wm.appearance.ColorInner,
		OuterColor:  wm.appearance.ColorOuter,
	}
	parent, err := wm.gw.CreateFrameWindow(geom, f.OuterColor)
	if err != nil {
		return nil, fmt.Errorf("wm: failed to create frame: %w", err)
	}
	f.Parent = parent
	f.Client = client

	d := f.Decorations()
	if err := wm.gw.Reparent(client, parent, int16(d.Left), int16(d.Top)); err != nil {
		wm.gw.Destroy(parent)
		return nil, err
	}
	return f, nil
}

// destroyFrame reparents the client back to the root (best effort — it may
// already be gone) and destroys the decoration window.
func (wm *WM) destroyFrame(f *Frame) error {
	if f == nil {
		return nil
	}
	wm.gw.Reparent(f.Client, wm.gw.Root, 0, 0)
	return wm.gw.Destroy(f.Parent)
}

// moveResizeFrame configures the frame to g and the client to the inset
// rectangle, then redraws the border bands.
func (wm *WM) moveResizeFrame(f *Frame, g x11.Geom) error {
	f.Geom = g
	if err := wm.gw.Configure(f.Parent, g); err != nil {
		return fmt.Errorf("wm: failed to configure frame: %w", err)
	}
	inner := g.Inset(f.Decorations())
	clientGeom := x11.Geom{X: 0, Y: 0, W: inner.W, H: inner.H}
	if err := wm.gw.Configure(f.Client, clientGeom); err != nil {
		return fmt.Errorf("wm: failed to configure client: %w", err)
	}
	// Synthetic ConfigureNotify in root coordinates, the same Java-popup
	// workaround funkycode-marwind's renderFrame applies.
	wm.gw.NotifyConfigure(f.Client, inner)
	return wm.drawFrame(f)
}

// drawFrame fills the decoration window's background with the outer color,
// then draws the inner band — the ring between the outer border and the
// client — as four GC-filled rectangles in the inner color, since the
// window only has a single background pixel to give the outer band its
// color for free.
func (wm *WM) drawFrame(f *Frame) error {
	if err := wm.gw.SetBackground(f.Parent, f.OuterColor); err != nil {
		return err
	}
	if f.InnerBorder == 0 {
		return nil
	}
	outer, inner := f.OuterBorder, f.InnerBorder
	w, h := f.Geom.W, f.Geom.H
	if w <= 2*outer || h <= 2*outer {
		return nil
	}
	bandW := w - 2*outer
	bandH := h - 2*outer
	rects := []xproto.Rectangle{
		{X: int16(outer), Y: int16(outer), Width: uint16(bandW), Height: uint16(inner)},
		{X: int16(outer), Y: int16(h - outer - inner), Width: uint16(bandW), Height: uint16(inner)},
		{X: int16(outer), Y: int16(outer), Width: uint16(inner), Height: uint16(bandH)},
		{X: int16(w - outer - inner), Y: int16(outer), Width: uint16(inner), Height: uint16(bandH)},
	}
	return wm.gw.FillRect(f.Parent, f.InnerColor, rects)
}

// applyAppearanceToFrame pushes the current global border widths/colors
// onto an existing frame and reconfigures it, used when `set-border`/
// `set-color` change the process-wide defaults.
func (wm *WM) applyAppearanceToFrame(f *Frame) error {
	f.InnerBorder = uint32(wm.appearance.BorderInner)
	f.OuterBorder = uint32(wm.appearance.BorderOuter)
	f.InnerColor = wm.appearance.ColorInner
	f.OuterColor = wm.appearance.ColorOuter
	return wm.moveResizeFrame(f, f.Geom)
}
