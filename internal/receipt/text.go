package receipt

import "strings"

// Line is one rendered text line plus its emphasis flag, for transports that
// can express bold (ESC/POS).
type Line struct {
	Text string
	Bold bool
}

// RenderLines renders a Document to fixed-width lines. Every line is exactly
// Document.Width runes wide; the mapping is deterministic and idempotent, so
// the on-screen preview and the printer payload are always byte-identical.
func RenderLines(d *Document) []Line {
	lines := make([]Line, 0, len(d.Elements))
	for _, el := range d.Elements {
		switch el.Kind {
		case KindRule:
			lines = append(lines, Line{Text: strings.Repeat(string(el.Rule), d.Width)})
		case KindText:
			lines = append(lines, Line{Text: alignText(el.Text, el.Align, d.Width), Bold: el.Bold})
		case KindSpacer:
			lines = append(lines, Line{Text: strings.Repeat(" ", d.Width)})
		case KindColumns:
			row := padRight(el.Item, d.ItemCol) + " " +
				center(el.Qty, d.QtyCol) + " " +
				padLeft(el.Amount, d.AmtCol)
			lines = append(lines, Line{Text: padRight(row, d.Width), Bold: el.Bold})
		case KindAmountRow:
			row := padRight(el.Label, d.LabelCol) + " " + padLeft(el.Value, d.AmtCol+1)
			lines = append(lines, Line{Text: padRight(row, d.Width), Bold: el.Bold})
		}
	}
	return lines
}

// RenderText renders a Document to plain text lines.
func RenderText(d *Document) []string {
	lines := RenderLines(d)
	out := make([]string, len(lines))
	for i, ln := range lines {
		out[i] = ln.Text
	}
	return out
}

// RenderString renders a Document to one newline-joined string, the form used
// for previews and emailed receipts.
func RenderString(d *Document) string {
	return strings.Join(RenderText(d), "\n")
}

func alignText(s string, align Align, width int) string {
	switch align {
	case AlignCenter:
		return center(s, width)
	case AlignRight:
		return padLeft(s, width)
	default:
		return padRight(s, width)
	}
}

// center pads s symmetrically to width. When the padding is odd the extra
// space goes to the right, so text sits one column left of center. This bias
// is a fixed output contract; golden tests depend on it.
func center(s string, width int) string {
	n := len([]rune(s))
	if n >= width {
		return s
	}
	pad := width - n
	left := pad / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", pad-left)
}

func padRight(s string, width int) string {
	n := len([]rune(s))
	if n >= width {
		return s
	}
	return s + strings.Repeat(" ", width-n)
}

func padLeft(s string, width int) string {
	n := len([]rune(s))
	if n >= width {
		return s
	}
	return strings.Repeat(" ", width-n) + s
}
