package wm

import (
	"fmt"
	"strconv"
)

// dispatch is the single command dispatcher every input path funnels
// through. It must only ever run on the reactor goroutine.
func (wm *WM) dispatch(verb string, args []string) error {
	switch verb {
	case "set-workspaces":
		return wm.cmdSetWorkspaces(args)

	case "bind":
		if len(args) < 2 {
			return fmt.Errorf("bind: usage: bind <keycombo> <command...>")
		}
		return wm.cmdBind(args[0], args[1], args[2:])

	case "bind-button":
		if len(args) < 2 {
			return fmt.Errorf("bind-button: usage: bind-button <buttoncombo> <command...>")
		}
		return wm.cmdBindButton(args[0], args[1], args[2:])

	case "rule":
		return wm.cmdRule(args)

	case "scratch":
		if len(args) == 1 {
			return wm.cmdScratchRegister(args[0])
		}
		if len(args) == 2 && args[0] == "toggle" {
			return wm.cmdScratchToggle(args[1])
		}
		return fmt.Errorf("scratch: usage: scratch <name>:<cmd> | scratch toggle <name>")

	case "set-gap":
		if len(args) != 1 {
			return fmt.Errorf("set-gap: usage: set-gap <pixels>")
		}
		return wm.cmdSetGap(args[0])

	case "set-border":
		if len(args) != 2 {
			return fmt.Errorf("set-border: usage: set-border inner|outer <pixels>")
		}
		return wm.cmdSetBorder(args[0], args[1])

	case "set-color":
		if len(args) != 2 {
			return fmt.Errorf("set-color: usage: set-color inner|outer #rrggbb")
		}
		return wm.cmdSetColor(args[0], args[1])

	case "bar":
		return wm.cmdBar(args)

	case "spawn":
		if len(args) < 1 {
			return fmt.Errorf("spawn: usage: spawn <cmd> [key=value...]")
		}
		return wm.cmdSpawn(args[0], args[1:])

	case "focus":
		if len(args) != 1 {
			return fmt.Errorf("focus: usage: focus left|right|up|down")
		}
		dir, err := ParseDirection(args[0])
		if err != nil {
			return err
		}
		return wm.cmdFocus(dir)

	case "move":
		if len(args) != 1 {
			return fmt.Errorf("move: usage: move left|right|up|down")
		}
		dir, err := ParseDirection(args[0])
		if err != nil {
			return err
		}
		return wm.cmdMove(dir)

	case "resize":
		if len(args) != 2 {
			return fmt.Errorf("resize: usage: resize <+-dx> <+-dy>")
		}
		dx, dy, err := parseResizeArgs(args[0], args[1])
		if err != nil {
			return err
		}
		return wm.cmdResize(dx, dy)

	case "float":
		if len(args) != 1 || args[0] != "toggle" {
			return fmt.Errorf("float: usage: float toggle")
		}
		return wm.cmdFloatToggle()

	case "close":
		return wm.cmdClose()

	case "view":
		n, err := parseWsArg(args)
		if err != nil {
			return fmt.Errorf("view: %w", err)
		}
		return wm.cmdView(n)

	case "send":
		n, err := parseWsArg(args)
		if err != nil {
			return fmt.Errorf("send: %w", err)
		}
		return wm.cmdSend(n)

	case "move-ws":
		if len(args) != 3 || args[1] != "monitor" {
			return fmt.Errorf("move-ws: usage: move-ws <n> monitor <m>")
		}
		n, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("move-ws: bad workspace %q", args[0])
		}
		m, err := strconv.Atoi(args[2])
		if err != nil {
			return fmt.Errorf("move-ws: bad monitor %q", args[2])
		}
		return wm.cmdMoveWs(n, m)

	case "togglebar":
		return wm.cmdTogglebar()

	case "fullscreen":
		if len(args) != 1 || args[0] != "toggle" {
			return fmt.Errorf("fullscreen: usage: fullscreen toggle")
		}
		return wm.cmdFullscreenToggle()

	case "reload-config":
		return wm.ReloadConfig()

	case "quit":
		wm.Quit()
		return nil

	default:
		return fmt.Errorf("unknown")
	}
}

func parseWsArg(args []string) (int, error) {
	if len(args) != 2 || args[0] != "ws" {
		return 0, fmt.Errorf("usage: ws <n>")
	}
	return strconv.Atoi(args[1])
}

func parseResizeArgs(dxTok, dyTok string) (int, int, error) {
	dx, err := strconv.Atoi(dxTok)
	if err != nil {
		return 0, 0, fmt.Errorf("resize: bad dx %q", dxTok)
	}
	dy, err := strconv.Atoi(dyTok)
	if err != nil {
		return 0, 0, fmt.Errorf("resize: bad dy %q", dyTok)
	}
	return dx, dy, nil
}
