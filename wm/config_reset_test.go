package wm

import (
	"fmt"
	"testing"

	"github.com/mywm/mywm/keysym"
)

func newTestWM() *WM {
	return &WM{
		bindings:       make(map[keysym.Combo]boundCommand),
		buttonBindings: make(map[keysym.ButtonCombo]boundCommand),
		appearance:     Appearance{Gap: 99, BorderInner: 5, BorderOuter: 5, ColorInner: 1, ColorOuter: 2},
		rules:          []Rule{{Class: "Firefox"}},
		workspaces:     map[int]*Workspace{1: newWorkspace(1, "1")},
	}
}

func TestResetMutableConfigClearsRulesAndAppearance(t *testing.T) {
	wm := newTestWM()
	wm.resetMutableConfig()

	if len(wm.rules) != 0 {
		t.Errorf("rules = %v, want empty after reset", wm.rules)
	}
	if wm.appearance != DefaultAppearance() {
		t.Errorf("appearance = %+v, want defaults after reset", wm.appearance)
	}
}

func TestResetMutableConfigLeavesWorkspacesUntouched(t *testing.T) {
	wm := newTestWM()
	wm.resetMutableConfig()

	if _, ok := wm.workspaces[1]; !ok {
		t.Error("workspaces must survive a config reset — only re-derived by set-workspaces")
	}
}

func TestReloadConfigResetsBeforeInvokingTrigger(t *testing.T) {
	wm := newTestWM()
	var rulesAtTriggerTime int
	wm.ReloadTrigger = func() error {
		rulesAtTriggerTime = len(wm.rules)
		return nil
	}

	if err := wm.ReloadConfig(); err != nil {
		t.Fatalf("ReloadConfig: %v", err)
	}
	if rulesAtTriggerTime != 0 {
		t.Errorf("rules at ReloadTrigger time = %d, want 0 (reset must happen first)", rulesAtTriggerTime)
	}
}

func TestReloadConfigPropagatesTriggerError(t *testing.T) {
	wm := newTestWM()
	wm.ReloadTrigger = func() error { return fmt.Errorf("config 1") }

	err := wm.ReloadConfig()
	if err == nil || err.Error() != "config 1" {
		t.Errorf("ReloadConfig error = %v, want %q", err, "config 1")
	}
}
