// Input manager: translates decoded key/button events into bound commands
// using the current binding maps. Generalized from funkycode-marwind's
// action-table approach (wm.actions, handleKeyPressEvent) into data-driven
// maps keyed by keysym.Combo/ButtonCombo so `bind` can install bindings at
// runtime instead of only at compile time.
package wm

import (
	"fmt"

	"github.com/BurntSushi/xgb/xproto"
	"github.com/mywm/mywm/keysym"
)

// boundCommand is a command already split into verb/args at bind time, so
// re-dispatching it never round-trips through a re-quoted flat string
// (which would lose word boundaries inside a quoted argument).
type boundCommand struct {
	verb string
	args []string
}

// cmdBind implements `bind <keycombo> <command-string>`: installs or
// replaces a binding and grabs the X combo.
func (wm *WM) cmdBind(comboTok string, verb string, args []string) error {
	combo, err := keysym.ParseCombo(comboTok)
	if err != nil {
		return fmt.Errorf("bind: %w", err)
	}
	if _, replacing := wm.bindings[combo]; replacing {
		wm.ungrabCombo(combo)
	}
	wm.bindings[combo] = boundCommand{verb: verb, args: args}
	return wm.grabCombo(combo)
}

func (wm *WM) grabCombo(combo keysym.Combo) error {
	codes := wm.keymap.Keycodes(combo.Sym)
	if len(codes) == 0 {
		return fmt.Errorf("bind: no keycode produces %v", combo.Sym)
	}
	for _, code := range codes {
		if err := wm.gw.GrabKey(combo.Mods, code); err != nil {
			return err
		}
	}
	return nil
}

func (wm *WM) ungrabCombo(combo keysym.Combo) {
	for _, code := range wm.keymap.Keycodes(combo.Sym) {
		wm.gw.UngrabKey(combo.Mods, code)
	}
}

// cmdBindButton implements `bind-button <buttoncombo> <command...>`: the
// pointer-button analogue of cmdBind, grabbed on the root window so clicks
// over any frame reach the reactor regardless of which client owns the
// window under the pointer.
func (wm *WM) cmdBindButton(comboTok string, verb string, args []string) error {
	combo, err := keysym.ParseButtonCombo(comboTok)
	if err != nil {
		return fmt.Errorf("bind-button: %w", err)
	}
	if _, replacing := wm.buttonBindings[combo]; replacing {
		wm.gw.UngrabButton(combo.Mods, combo.Button)
	}
	wm.buttonBindings[combo] = boundCommand{verb: verb, args: args}
	return wm.gw.GrabButton(combo.Mods, combo.Button)
}

// resetBindings clears both binding maps and ungrabs every combo.
func (wm *WM) resetBindings() {
	for combo := range wm.bindings {
		wm.ungrabCombo(combo)
	}
	for combo := range wm.buttonBindings {
		wm.gw.UngrabButton(combo.Mods, combo.Button)
	}
	wm.bindings = make(map[keysym.Combo]boundCommand)
	wm.buttonBindings = make(map[keysym.ButtonCombo]boundCommand)
}

// handleKeyPress looks up the decoded combo and dispatches its bound command.
// Unknown combos are ignored silently.
func (wm *WM) handleKeyPress(e xproto.KeyPressEvent) {
	sym, ok := wm.keymap.Lookup(e.Detail)
	if !ok {
		return
	}
	combo := keysym.Combo{Mods: e.State, Sym: sym}
	bc, ok := wm.bindings[combo]
	if !ok {
		return
	}
	wm.runBoundCommand(bc)
}

func (wm *WM) handleButtonPress(e xproto.ButtonPressEvent) {
	combo := keysym.ButtonCombo{Mods: e.State, Button: e.Detail}
	bc, ok := wm.buttonBindings[combo]
	if !ok {
		return
	}
	wm.runBoundCommand(bc)
}

// runBoundCommand dispatches an already-tokenized bound command directly —
// called from the reactor goroutine itself, so it bypasses the Submit
// channel round trip the IPC server uses.
func (wm *WM) runBoundCommand(bc boundCommand) {
	if err := wm.dispatch(bc.verb, bc.args); err != nil {
		logger.Warn().Err(err).Str("verb", bc.verb).Msg("bound command failed")
	}
}
