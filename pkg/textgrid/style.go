package textgrid

// BorderRule draws one horizontal rule of a table: its end caps, the fill
// glyph, and the junction at each column boundary.
type BorderRule struct {
	Left     string
	Fill     string
	Junction string
	Right    string
}

// RowRule frames one content line: outer bars and the separator between
// adjacent cells.
type RowRule struct {
	Left      string
	Separator string
	Right     string
}

// TableStyle is the glyph catalog for one table look: the four horizontal
// rule kinds plus the content-line framing. Pure data, no behavior.
type TableStyle struct {
	Name      string
	Top       BorderRule
	HeaderSep BorderRule
	GroupSep  BorderRule
	Bottom    BorderRule
	Row       RowRule
}

// StyleASCII draws with +, - and | only, safe for any terminal.
var StyleASCII = TableStyle{
	Name:      "ascii",
	Top:       BorderRule{"+", "-", "+", "+"},
	HeaderSep: BorderRule{"+", "=", "+", "+"},
	GroupSep:  BorderRule{"+", "-", "+", "+"},
	Bottom:    BorderRule{"+", "-", "+", "+"},
	Row:       RowRule{"|", "|", "|"},
}

// StyleLight uses the light box-drawing set.
var StyleLight = TableStyle{
	Name:      "light",
	Top:       BorderRule{"┌", "─", "┬", "┐"},
	HeaderSep: BorderRule{"├", "─", "┼", "┤"},
	GroupSep:  BorderRule{"├", "─", "┼", "┤"},
	Bottom:    BorderRule{"└", "─", "┴", "┘"},
	Row:       RowRule{"│", "│", "│"},
}

// StyleRounded is StyleLight with rounded corners.
var StyleRounded = TableStyle{
	Name:      "rounded",
	Top:       BorderRule{"╭", "─", "┬", "╮"},
	HeaderSep: BorderRule{"├", "─", "┼", "┤"},
	GroupSep:  BorderRule{"├", "─", "┼", "┤"},
	Bottom:    BorderRule{"╰", "─", "┴", "╯"},
	Row:       RowRule{"│", "│", "│"},
}

// StyleHeavy uses the heavy box-drawing set throughout.
var StyleHeavy = TableStyle{
	Name:      "heavy",
	Top:       BorderRule{"┏", "━", "┳", "┓"},
	HeaderSep: BorderRule{"┣", "━", "╋", "┫"},
	GroupSep:  BorderRule{"┣", "━", "╋", "┫"},
	Bottom:    BorderRule{"┗", "━", "┻", "┛"},
	Row:       RowRule{"┃", "┃", "┃"},
}

// StyleHeavyHead is a light table whose header separator is drawn heavy.
var StyleHeavyHead = TableStyle{
	Name:      "heavy-head",
	Top:       BorderRule{"┌", "─", "┬", "┐"},
	HeaderSep: BorderRule{"┝", "━", "┿", "┥"},
	GroupSep:  BorderRule{"├", "─", "┼", "┤"},
	Bottom:    BorderRule{"└", "─", "┴", "┘"},
	Row:       RowRule{"│", "│", "│"},
}

// StyleDouble uses the double-line box-drawing set.
var StyleDouble = TableStyle{
	Name:      "double",
	Top:       BorderRule{"╔", "═", "╦", "╗"},
	HeaderSep: BorderRule{"╠", "═", "╬", "╣"},
	GroupSep:  BorderRule{"╠", "═", "╬", "╣"},
	Bottom:    BorderRule{"╚", "═", "╩", "╝"},
	Row:       RowRule{"║", "║", "║"},
}

// StyleDashed is StyleLight with dashed fills and bars between groups.
var StyleDashed = TableStyle{
	Name:      "dashed",
	Top:       BorderRule{"┌", "─", "┬", "┐"},
	HeaderSep: BorderRule{"├", "─", "┼", "┤"},
	GroupSep:  BorderRule{"├", "╌", "┼", "┤"},
	Bottom:    BorderRule{"└", "─", "┴", "┘"},
	Row:       RowRule{"│", "╎", "│"},
}

// Styles enumerates every preset in a stable order.
func Styles() []TableStyle {
	return []TableStyle{
		StyleASCII,
		StyleLight,
		StyleRounded,
		StyleHeavy,
		StyleHeavyHead,
		StyleDouble,
		StyleDashed,
	}
}

// StyleByName looks a preset up by its Name field.
func StyleByName(name string) (TableStyle, bool) {
	for _, s := range Styles() {
		if s.Name == name {
			return s, true
		}
	}
	return TableStyle{}, false
}
