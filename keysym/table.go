package keysym

// Sym is an X11 keysym value. The constants below are the subset of the
// X11 keysymdef.h table (https://www.x.org/releases/X11R7.7/doc/xproto/x11protocol.html)
// that the control protocol's KeyName grammar actually needs:
// letters, digits, the modifier-adjacent named keys, and the handful of
// punctuation keys common in window-manager bindings. Grounded on the same
// XK_* naming convention driusan-dewm's keysym package uses.
type Sym uint32

const (
	XK_BackSpace Sym = 0xff08
	XK_Tab       Sym = 0xff09
	XK_Return    Sym = 0xff0d
	XK_Escape    Sym = 0xff1b
	XK_Delete    Sym = 0xffff
	XK_space     Sym = 0x0020

	XK_Left  Sym = 0xff51
	XK_Up    Sym = 0xff52
	XK_Right Sym = 0xff53
	XK_Down  Sym = 0xff54

	XK_minus  Sym = 0x002d
	XK_equal  Sym = 0x003d
	XK_comma  Sym = 0x002c
	XK_period Sym = 0x002e
	XK_slash  Sym = 0x002f
	XK_semicolon Sym = 0x003b

	XK_0 Sym = 0x0030
	XK_1 Sym = 0x0031
	XK_2 Sym = 0x0032
	XK_3 Sym = 0x0033
	XK_4 Sym = 0x0034
	XK_5 Sym = 0x0035
	XK_6 Sym = 0x0036
	XK_7 Sym = 0x0037
	XK_8 Sym = 0x0038
	XK_9 Sym = 0x0039

	XK_a Sym = 0x0061
	XK_b Sym = 0x0062
	XK_c Sym = 0x0063
	XK_d Sym = 0x0064
	XK_e Sym = 0x0065
	XK_f Sym = 0x0066
	XK_g Sym = 0x0067
	XK_h Sym = 0x0068
	XK_i Sym = 0x0069
	XK_j Sym = 0x006a
	XK_k Sym = 0x006b
	XK_l Sym = 0x006c
	XK_m Sym = 0x006d
	XK_n Sym = 0x006e
	XK_o Sym = 0x006f
	XK_p Sym = 0x0070
	XK_q Sym = 0x0071
	XK_r Sym = 0x0072
	XK_s Sym = 0x0073
	XK_t Sym = 0x0074
	XK_u Sym = 0x0075
	XK_v Sym = 0x0076
	XK_w Sym = 0x0077
	XK_x Sym = 0x0078
	XK_y Sym = 0x0079
	XK_z Sym = 0x007a
)

// names maps the lowercase token used in a keycombo (e.g. "Return", "h",
// "minus") to its keysym. Unrecognized names fail to parse.
var names = map[string]Sym{
	"backspace": XK_BackSpace,
	"tab":       XK_Tab,
	"return":    XK_Return,
	"enter":     XK_Return,
	"escape":    XK_Escape,
	"delete":    XK_Delete,
	"space":     XK_space,
	"left":      XK_Left,
	"up":        XK_Up,
	"right":     XK_Right,
	"down":      XK_Down,
	"minus":     XK_minus,
	"equal":     XK_equal,
	"comma":     XK_comma,
	"period":    XK_period,
	"slash":     XK_slash,
	"semicolon": XK_semicolon,
	"0":         XK_0,
	"1":         XK_1,
	"2":         XK_2,
	"3":         XK_3,
	"4":         XK_4,
	"5":         XK_5,
	"6":         XK_6,
	"7":         XK_7,
	"8":         XK_8,
	"9":         XK_9,
	"a":         XK_a,
	"b":         XK_b,
	"c":         XK_c,
	"d":         XK_d,
	"e":         XK_e,
	"f":         XK_f,
	"g":         XK_g,
	"h":         XK_h,
	"i":         XK_i,
	"j":         XK_j,
	"k":         XK_k,
	"l":         XK_l,
	"m":         XK_m,
	"n":         XK_n,
	"o":         XK_o,
	"p":         XK_p,
	"q":         XK_q,
	"r":         XK_r,
	"s":         XK_s,
	"t":         XK_t,
	"u":         XK_u,
	"v":         XK_v,
	"w":         XK_w,
	"x":         XK_x,
	"y":         XK_y,
	"z":         XK_z,
}
