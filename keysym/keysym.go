package keysym

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/BurntSushi/xgb"
	"github.com/BurntSushi/xgb/xproto"
)

// Keymap is the keycode -> keysyms table for the current keyboard, loaded
// once at startup. Grounded on funkycode-marwind's keysym.Keymap (indexed
// as wm.keymap[e.Detail][0] in wm.go's handleKeyPressEvent) and
// driusan-dewm's manual GetKeyboardMapping loop in main().
type Keymap map[xproto.Keycode][]Sym

// LoadKeyMapping queries the X server's keyboard mapping for the full
// keycode range and returns the keycode -> keysym table.
func LoadKeyMapping(conn *xgb.Conn) (Keymap, error) {
	const loKey, hiKey = 8, 255
	reply, err := xproto.GetKeyboardMapping(conn, loKey, hiKey-loKey+1).Reply()
	if err != nil {
		return nil, fmt.Errorf("keysym: failed to load keyboard mapping: %w", err)
	}
	if reply == nil || reply.KeysymsPerKeycode == 0 {
		return nil, fmt.Errorf("keysym: empty keyboard mapping reply")
	}
	km := make(Keymap, hiKey-loKey+1)
	per := int(reply.KeysymsPerKeycode)
	for i := 0; i <= hiKey-loKey; i++ {
		code := xproto.Keycode(loKey + i)
		raw := reply.Keysyms[i*per : (i+1)*per]
		syms := make([]Sym, len(raw))
		for j, s := range raw {
			syms[j] = Sym(s)
		}
		km[code] = syms
	}
	return km, nil
}

// Lookup returns the primary (unshifted) keysym bound to a keycode, or
// false if the keycode has no mapping.
func (k Keymap) Lookup(code xproto.Keycode) (Sym, bool) {
	syms, ok := k[code]
	if !ok || len(syms) == 0 {
		return 0, false
	}
	return syms[0], true
}

// Keycodes returns every keycode that produces the given keysym as its
// primary symbol — a binding is grabbed on all of them, since physical
// keyboards frequently map the same symbol to more than one keycode.
func (k Keymap) Keycodes(sym Sym) []xproto.Keycode {
	var out []xproto.Keycode
	for code, syms := range k {
		if len(syms) > 0 && syms[0] == sym {
			out = append(out, code)
		}
	}
	return out
}

// Modifier mirrors the xproto.ModMask* bits, named the way the control
// protocol's keycombo grammar spells them: "Mod1".."Mod4",
// "Shift", "Ctrl".
type Modifier = uint16

const (
	ModShift Modifier = xproto.ModMaskShift
	ModCtrl  Modifier = xproto.ModMaskControl
	Mod1     Modifier = xproto.ModMask1
	Mod2     Modifier = xproto.ModMask2
	Mod3     Modifier = xproto.ModMask3
	Mod4     Modifier = xproto.ModMask4
)

var modifierNames = map[string]Modifier{
	"shift": ModShift,
	"ctrl":  ModCtrl,
	"mod1":  Mod1,
	"mod2":  Mod2,
	"mod3":  Mod3,
	"mod4":  Mod4,
}

// Combo is a parsed "<Mod>-[<Mod>-...]<KeyName>" token.
type Combo struct {
	Mods Modifier
	Sym  Sym
}

// ParseCombo parses a keycombo token such as "Mod4-Shift-Return" into its
// modifier mask and keysym. Unknown modifier or key names are reported as
// errors, which the IPC/config layers turn into "ERR bind" replies.
func ParseCombo(token string) (Combo, error) {
	parts := strings.Split(token, "-")
	if len(parts) == 0 {
		return Combo{}, fmt.Errorf("keysym: empty combo")
	}
	keyName := parts[len(parts)-1]
	var mods Modifier
	for _, p := range parts[:len(parts)-1] {
		m, ok := modifierNames[strings.ToLower(p)]
		if !ok {
			return Combo{}, fmt.Errorf("keysym: unknown modifier %q", p)
		}
		mods |= m
	}
	sym, ok := names[strings.ToLower(keyName)]
	if !ok {
		return Combo{}, fmt.Errorf("keysym: unknown key name %q", keyName)
	}
	return Combo{Mods: mods, Sym: sym}, nil
}

// String renders a combo back into protocol syntax, canonicalizing
// modifier order so that round-tripping a bound combo always produces the
// same token. Where several key names map to one keysym ("enter" and
// "return"), the alphabetically first name is used.
func (c Combo) String() string {
	var b strings.Builder
	order := []struct {
		mask Modifier
		name string
	}{
		{Mod1, "Mod1"}, {Mod2, "Mod2"}, {Mod3, "Mod3"}, {Mod4, "Mod4"},
		{ModCtrl, "Ctrl"}, {ModShift, "Shift"},
	}
	for _, o := range order {
		if c.Mods&o.mask != 0 {
			b.WriteString(o.name)
			b.WriteByte('-')
		}
	}
	keyName := ""
	for name, sym := range names {
		if sym == c.Sym && (keyName == "" || name < keyName) {
			keyName = name
		}
	}
	if keyName != "" {
		b.WriteString(keyName)
		return b.String()
	}
	b.WriteString(strconv.Itoa(int(c.Sym)))
	return b.String()
}

// ButtonCombo is the pointer-button analogue of Combo.
type ButtonCombo struct {
	Mods   Modifier
	Button xproto.Button
}

// ParseButtonCombo parses "<Mod>-Button1" style tokens.
func ParseButtonCombo(token string) (ButtonCombo, error) {
	parts := strings.Split(token, "-")
	if len(parts) == 0 {
		return ButtonCombo{}, fmt.Errorf("keysym: empty button combo")
	}
	btnName := strings.ToLower(parts[len(parts)-1])
	var mods Modifier
	for _, p := range parts[:len(parts)-1] {
		m, ok := modifierNames[strings.ToLower(p)]
		if !ok {
			return ButtonCombo{}, fmt.Errorf("keysym: unknown modifier %q", p)
		}
		mods |= m
	}
	n, ok := strings.CutPrefix(btnName, "button")
	if !ok {
		return ButtonCombo{}, fmt.Errorf("keysym: unknown button name %q", btnName)
	}
	idx, err := strconv.Atoi(n)
	if err != nil {
		return ButtonCombo{}, fmt.Errorf("keysym: unknown button name %q", btnName)
	}
	return ButtonCombo{Mods: mods, Button: xproto.Button(idx)}, nil
}

func (c ButtonCombo) String() string {
	var b strings.Builder
	if c.Mods&Mod4 != 0 {
		b.WriteString("Mod4-")
	}
	if c.Mods&Mod1 != 0 {
		b.WriteString("Mod1-")
	}
	if c.Mods&ModCtrl != 0 {
		b.WriteString("Ctrl-")
	}
	if c.Mods&ModShift != 0 {
		b.WriteString("Shift-")
	}
	fmt.Fprintf(&b, "Button%d", c.Button)
	return b.String()
}
