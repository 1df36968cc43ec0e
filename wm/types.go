// Package wm is the window-state engine: the authoritative
// owner of the window/workspace/monitor maps, the BSP layout engine, the
// rule matcher, the input manager's binding tables, and the single command
// dispatcher that the IPC server, the input manager and the configuration
// pipeline all funnel commands through.
//
// Generalized from funkycode-marwind's wm/*.go, replacing its fixed
// column layout and single-output assumption with a full BSP tree and
// multi-monitor model.
package wm

import (
	"github.com/BurntSushi/xgb/xproto"
	"github.com/mywm/mywm/x11"
)

// Window is a managed client.
type Window struct {
	ID    xproto.Window
	Class string
	Title string

	Workspace int
	Floating  bool
	Scratch   string // non-empty => the name this window is registered as
	Fullscreen bool

	GeomTiled    x11.Geom
	GeomFloating x11.Geom
	Mapped       bool

	Frame *Frame
}

// Frame is the manager-owned decoration window parenting exactly one
// client. Generalized from funkycode-marwind's wm/frame.go: border
// widths/colors are per-frame mutable fields instead of a single shared
// titlebarConfig, since `set-border`/`set-color` apply as new process-wide
// defaults to every existing frame.
type Frame struct {
	Parent xproto.Window // manager-created decoration window
	Client xproto.Window // the client window reparented into it

	InnerBorder uint32
	OuterBorder uint32
	InnerColor  uint32 // packed 0x00rrggbb
	OuterColor  uint32

	Geom x11.Geom
}

// Decorations returns the pixel inset the frame's borders occupy on each
// edge.
func (f *Frame) Decorations() x11.Dimensions {
	d := f.InnerBorder + f.OuterBorder
	return x11.Dimensions{Top: d, Right: d, Bottom: d, Left: d}
}

// Rule is an adoption-time placement override.
type Rule struct {
	Class string // empty means the rule never matches
	Title string // empty means "don't test title"

	Workspace    int // 0 = unset
	Monitor      int // -1 = unset
	Float        bool
	FloatSet     bool
	Area         string // relative placement token, opaque to the matcher
}

// Matches reports whether a freshly queried (class, title) pair satisfies
// the rule: class must equal the rule's class, and title must equal the
// rule's title if one was set. A rule with no class set never matches.
func (r Rule) Matches(class, title string) bool {
	if r.Class != "" && r.Class != class {
		return false
	}
	if r.Class == "" {
		return false
	}
	if r.Title != "" && r.Title != title {
		return false
	}
	return true
}

// Monitor is a physical output hosting zero or more workspaces.
type Monitor struct {
	ID         int
	Rect       x11.Geom
	Struts     x11.Dimensions // reserved bands, from dock/bar windows
	Workspaces []int          // ordered workspace indices assigned here
	Visible    int            // workspace index currently shown, 0 = none
}

// UsableRect is the monitor rectangle minus reserved struts minus the
// outer gap — the input domain of the BSP layout engine.
func (m *Monitor) UsableRect(outerGap uint32) x11.Geom {
	r := m.Rect.Inset(m.Struts)
	return r.Shrink(outerGap / 2)
}

// Appearance holds the mutable, process-wide defaults that `set-gap`,
// `set-border` and `set-color` change and that config reload
// resets.
type Appearance struct {
	Gap         int
	BorderInner int
	BorderOuter int
	ColorInner  uint32
	ColorOuter  uint32
}

// DefaultAppearance is the state a freshly started daemon, or a
// freshly-reset configuration, begins from.
func DefaultAppearance() Appearance {
	return Appearance{
		Gap:         10,
		BorderInner: 1,
		BorderOuter: 2,
		ColorInner:  0x1a1a1a,
		ColorOuter:  0x3a3a3a,
	}
}
