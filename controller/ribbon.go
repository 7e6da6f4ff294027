// ABOUTME: Data-driven ribbon: the table binding UI controls to host formatting commands.
// ABOUTME: Buttons execute their command; select and color controls pass their current value.
package controller

// ControlKind distinguishes how a control supplies its command argument.
type ControlKind string

const (
	KindButton ControlKind = "button"
	KindSelect ControlKind = "select"
	KindColor  ControlKind = "color"
)

// Control is one ribbon entry.
type Control struct {
	ID      string
	Label   string
	Command string
	Kind    ControlKind
	Group   string

	// Reflect marks controls whose active state mirrors the host's command state.
	Reflect bool

	// Options lists choices for select controls.
	Options []string
}

// DefaultRibbon returns the standard ribbon for the given settings.
func DefaultRibbon(s Settings) []Control {
	button := func(id, label, group string) Control {
		return Control{ID: id, Label: label, Command: id, Kind: KindButton, Group: group, Reflect: true}
	}

	return []Control{
		{ID: "font", Label: "Font", Command: "fontName", Kind: KindSelect, Group: "font", Options: s.Fonts},
		{ID: "size", Label: "Size", Command: "fontSize", Kind: KindSelect, Group: "font", Options: s.Sizes},
		{ID: "color", Label: "Color", Command: "foreColor", Kind: KindColor, Group: "font"},
		button("bold", "B", "format"),
		button("italic", "I", "format"),
		button("underline", "U", "format"),
		button("strikeThrough", "S", "format"),
		button("justifyLeft", "Left", "paragraph"),
		button("justifyCenter", "Center", "paragraph"),
		button("justifyRight", "Right", "paragraph"),
		button("justifyFull", "Justify", "paragraph"),
		button("insertUnorderedList", "• List", "paragraph"),
		button("insertOrderedList", "1. List", "paragraph"),
		{ID: "undo", Label: "Undo", Command: "undo", Kind: KindButton, Group: "history"},
		{ID: "redo", Label: "Redo", Command: "redo", Kind: KindButton, Group: "history"},
	}
}

// lookup finds a control by id.
func lookup(ribbon []Control, id string) (Control, bool) {
	for _, c := range ribbon {
		if c.ID == id {
			return c, true
		}
	}
	return Control{}, false
}
