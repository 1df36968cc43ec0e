package wm

import (
	"fmt"
	"testing"
)

func TestParseKeyValues(t *testing.T) {
	kv, err := parseKeyValues([]string{"class=Firefox", "workspace=2"})
	if err != nil {
		t.Fatalf("parseKeyValues: %v", err)
	}
	if kv["class"] != "Firefox" || kv["workspace"] != "2" {
		t.Errorf("parseKeyValues = %v, want class=Firefox workspace=2", kv)
	}
}

func TestParseKeyValuesMalformedToken(t *testing.T) {
	if _, err := parseKeyValues([]string{"noequals"}); err == nil {
		t.Error("parseKeyValues(noequals): want error, got nil")
	}
}

func TestParsePlacementHints(t *testing.T) {
	kv := map[string]string{"workspace": "2", "monitor": "1", "float": "true", "area": "top-left"}
	r, err := parsePlacementHints(kv)
	if err != nil {
		t.Fatalf("parsePlacementHints: %v", err)
	}
	if r.Workspace != 2 || r.Monitor != 1 || !r.Float || !r.FloatSet || r.Area != "top-left" {
		t.Errorf("parsePlacementHints = %+v, want {Workspace:2 Monitor:1 Float:true FloatSet:true Area:top-left}", r)
	}
}

func TestParsePlacementHintsDefaultsMonitorUnset(t *testing.T) {
	r, err := parsePlacementHints(map[string]string{})
	if err != nil {
		t.Fatalf("parsePlacementHints: %v", err)
	}
	if r.Monitor != -1 {
		t.Errorf("Monitor = %d, want -1 (unset) when no monitor= hint given", r.Monitor)
	}
}

func TestParsePlacementHintsBadMonitor(t *testing.T) {
	if _, err := parsePlacementHints(map[string]string{"monitor": "nope"}); err == nil {
		t.Error("parsePlacementHints with bad monitor: want error, got nil")
	}
}

func TestCmdRuleRequiresClass(t *testing.T) {
	wm := &WM{}
	if err := wm.cmdRule([]string{"workspace=2"}); err == nil {
		t.Error("cmdRule without class=: want error, got nil")
	}
}

func TestCmdRuleAppendsRuleWithHints(t *testing.T) {
	wm := &WM{}
	if err := wm.cmdRule([]string{"class=Firefox", "workspace=2", "monitor=1"}); err != nil {
		t.Fatalf("cmdRule: %v", err)
	}
	if len(wm.rules) != 1 || wm.rules[0].Workspace != 2 || wm.rules[0].Monitor != 1 {
		t.Errorf("rules = %+v, want one rule with Workspace=2 Monitor=1", wm.rules)
	}
}

func TestCmdSpawnSetsPendingRuleFromPlacementHints(t *testing.T) {
	wm := &WM{Spawn: func(string) error { return nil }}
	if err := wm.cmdSpawn("xterm", []string{"workspace=2", "monitor=1"}); err != nil {
		t.Fatalf("cmdSpawn: %v", err)
	}
	if wm.pendingRule == nil {
		t.Fatal("pendingRule not set from workspace=/monitor= hints")
	}
	if wm.pendingRule.Workspace != 2 || wm.pendingRule.Monitor != 1 {
		t.Errorf("pendingRule = %+v, want Workspace=2 Monitor=1", wm.pendingRule)
	}
}

func TestCmdSpawnScratchHintTakesPendingScratchNotRule(t *testing.T) {
	wm := &WM{Spawn: func(string) error { return nil }}
	if err := wm.cmdSpawn("xterm", []string{"scratch=term", "workspace=2"}); err != nil {
		t.Fatalf("cmdSpawn: %v", err)
	}
	if wm.pendingScratch != "term" {
		t.Errorf("pendingScratch = %q, want %q", wm.pendingScratch, "term")
	}
	if wm.pendingRule != nil {
		t.Errorf("pendingRule = %+v, want nil when a scratch hint is present", wm.pendingRule)
	}
}

func TestCmdSpawnWithNoHintsLeavesPendingFieldsUnset(t *testing.T) {
	wm := &WM{Spawn: func(string) error { return nil }}
	if err := wm.cmdSpawn("xterm", nil); err != nil {
		t.Fatalf("cmdSpawn: %v", err)
	}
	if wm.pendingRule != nil || wm.pendingScratch != "" {
		t.Errorf("pendingRule/pendingScratch set with no hints: %+v / %q", wm.pendingRule, wm.pendingScratch)
	}
}

func TestCmdSpawnPropagatesSpawnError(t *testing.T) {
	wm := &WM{Spawn: func(string) error { return fmt.Errorf("boom") }}
	if err := wm.cmdSpawn("xterm", nil); err == nil {
		t.Error("cmdSpawn: want the underlying Spawn error, got nil")
	}
}
