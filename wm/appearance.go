package wm

import (
	"fmt"
	"strconv"
	"strings"
)

// cmdSetGap implements `set-gap <pixels>`. Reapplies every visible
// workspace's layout so the new gap takes effect immediately.
func (wm *WM) cmdSetGap(arg string) error {
	n, err := strconv.Atoi(arg)
	if err != nil {
		return fmt.Errorf("set-gap: %w", err)
	}
	if n == wm.appearance.Gap {
		return nil
	}
	wm.appearance.Gap = n
	return wm.reapplyAllVisible()
}

// cmdSetBorder implements `set-border inner|outer <pixels>`.
func (wm *WM) cmdSetBorder(which, arg string) error {
	n, err := strconv.Atoi(arg)
	if err != nil {
		return fmt.Errorf("set-border: %w", err)
	}
	switch which {
	case "inner":
		wm.appearance.BorderInner = n
	case "outer":
		wm.appearance.BorderOuter = n
	default:
		return fmt.Errorf("set-border: unknown target %q", which)
	}
	return wm.reapplyAppearance()
}

// cmdSetColor implements `set-color inner|outer #rrggbb`.
func (wm *WM) cmdSetColor(which, arg string) error {
	c, err := parseColor(arg)
	if err != nil {
		return fmt.Errorf("set-color: %w", err)
	}
	switch which {
	case "inner":
		wm.appearance.ColorInner = c
	case "outer":
		wm.appearance.ColorOuter = c
	default:
		return fmt.Errorf("set-color: unknown target %q", which)
	}
	return wm.reapplyAppearance()
}

func parseColor(s string) (uint32, error) {
	s = strings.TrimPrefix(s, "#")
	if len(s) != 6 {
		return 0, fmt.Errorf("want #rrggbb, got %q", s)
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return 0, err
	}
	return uint32(v), nil
}

// reapplyAppearance pushes the current appearance onto every live frame.
func (wm *WM) reapplyAppearance() error {
	var firstErr error
	for _, w := range wm.windows {
		if w.Frame == nil {
			continue
		}
		if err := wm.applyAppearanceToFrame(w.Frame); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

func (wm *WM) reapplyAllVisible() error {
	if err := wm.reapplyAppearance(); err != nil {
		return err
	}
	var firstErr error
	for _, ws := range wm.workspaces {
		if err := wm.applyLayout(ws); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

// cmdBar implements `bar show-occupied-only true|false`.
func (wm *WM) cmdBar(args []string) error {
	if len(args) != 2 || args[0] != "show-occupied-only" {
		return fmt.Errorf("bar: usage: bar show-occupied-only true|false")
	}
	v, err := strconv.ParseBool(args[1])
	if err != nil {
		return fmt.Errorf("bar: %w", err)
	}
	wm.barShowOccupiedOnly = v
	return nil
}

// cmdTogglebar implements `togglebar` as a true toggle, not an explicit
// hide.
func (wm *WM) cmdTogglebar() error {
	wm.barVisible = !wm.barVisible
	wm.emitBarToggleEvent()
	return nil
}
