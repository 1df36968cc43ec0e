package wm

import (
	"fmt"
	"strconv"
	"strings"
)

// parseKeyValues splits a list of `key=value` tokens into a map. A
// malformed token (no `=`) is an error.
func parseKeyValues(args []string) (map[string]string, error) {
	out := make(map[string]string, len(args))
	for _, a := range args {
		idx := strings.IndexByte(a, '=')
		if idx < 0 {
			return nil, fmt.Errorf("malformed key=value token %q", a)
		}
		out[a[:idx]] = a[idx+1:]
	}
	return out, nil
}

// parsePlacementHints parses the workspace/monitor/float/area keys shared by
// `rule` and `spawn`'s placement hints into a Rule's override fields,
// leaving Class/Title for the caller to fill in.
func parsePlacementHints(kv map[string]string) (Rule, error) {
	r := Rule{Monitor: -1}
	if v, ok := kv["workspace"]; ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return r, fmt.Errorf("bad workspace %q", v)
		}
		r.Workspace = n
	}
	if v, ok := kv["monitor"]; ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return r, fmt.Errorf("bad monitor %q", v)
		}
		r.Monitor = n
	}
	if v, ok := kv["float"]; ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return r, fmt.Errorf("bad float %q", v)
		}
		r.Float, r.FloatSet = b, true
	}
	if v, ok := kv["area"]; ok {
		r.Area = v
	}
	return r, nil
}

// cmdRule implements `rule key=value...`: appends a rule. A rule targeting
// a non-existent workspace or monitor is only validated at match time, in
// adoptWindow — apply what is valid, ignore the rest, reply OK.
func (wm *WM) cmdRule(args []string) error {
	kv, err := parseKeyValues(args)
	if err != nil {
		return fmt.Errorf("rule: %w", err)
	}
	r, err := parsePlacementHints(kv)
	if err != nil {
		return fmt.Errorf("rule: %w", err)
	}
	if v, ok := kv["class"]; ok {
		r.Class = v
	}
	if v, ok := kv["title"]; ok {
		r.Title = v
	}
	if r.Class == "" {
		return fmt.Errorf("rule: class is required")
	}
	wm.rules = append(wm.rules, r)
	return nil
}

// cmdSpawn implements `spawn <cmd> [key=value...]`: launches a child
// process. A `scratch=` hint claims the next mapped window as that named
// scratchpad (wm.pendingScratch, the same mechanism `scratch toggle` uses
// for an unspawned pad). Otherwise, workspace=/monitor=/float=/area= hints
// build a one-shot class-less Rule consumed by the very next adoptWindow
// call (wm.pendingRule) — the simplest reading of "apply placement hints"
// that does not require correlating a spawned PID with its eventual X
// window.
func (wm *WM) cmdSpawn(cmd string, hintArgs []string) error {
	if len(hintArgs) > 0 {
		kv, err := parseKeyValues(hintArgs)
		if err != nil {
			return fmt.Errorf("spawn: %w", err)
		}
		if name, ok := kv["scratch"]; ok {
			wm.pendingScratch = name
		} else {
			r, err := parsePlacementHints(kv)
			if err != nil {
				return fmt.Errorf("spawn: %w", err)
			}
			if r.Workspace != 0 || r.Monitor >= 0 || r.FloatSet || r.Area != "" {
				wm.pendingRule = &r
			}
		}
	}
	return wm.Spawn(cmd)
}
