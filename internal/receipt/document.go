// Package receipt turns a persisted bill into an abstract, backend-agnostic
// document and renders it to fixed-width text or PDF. Composition is pure:
// every width, column and truncation decision is made once here, so the
// preview, the printer payload and the PDF can never disagree about what was
// billed.
package receipt

import "strings"

// Spacing controls how much vertical whitespace separates receipt sections.
type Spacing int

const (
	SpacingCompact Spacing = iota
	SpacingNormal
	SpacingRelaxed
)

// ParseSpacing maps the stored setting value to a Spacing. Unknown values
// fall back to Normal.
func ParseSpacing(s string) Spacing {
	switch strings.TrimSpace(s) {
	case "Compact":
		return SpacingCompact
	case "Relaxed":
		return SpacingRelaxed
	default:
		return SpacingNormal
	}
}

func (s Spacing) String() string {
	switch s {
	case SpacingCompact:
		return "Compact"
	case SpacingRelaxed:
		return "Relaxed"
	default:
		return "Normal"
	}
}

// Align is the horizontal alignment of a text element.
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

// Kind discriminates the element variants of a Document.
type Kind int

const (
	// KindRule is a full-width horizontal rule of a single character.
	KindRule Kind = iota
	// KindText is a single line of text with an alignment.
	KindText
	// KindSpacer is a blank separator line.
	KindSpacer
	// KindColumns is an item/qty/amount row laid out on the column grid.
	KindColumns
	// KindAmountRow is a totals-block row: label left, amount right.
	KindAmountRow
)

// Element is one typed layout entry. All strings are final: truncated to
// their column widths and, for amounts, formatted to two decimals. Renderers
// must reproduce them verbatim.
type Element struct {
	Kind Kind

	Rule byte // KindRule: the rule character

	Text  string // KindText: line content
	Align Align  // KindText: alignment

	Item   string // KindColumns: item cell, left-aligned
	Qty    string // KindColumns: quantity cell, centered
	Amount string // KindColumns: amount cell, right-aligned

	Label string // KindAmountRow: label, left-aligned
	Value string // KindAmountRow: formatted amount, right-aligned

	Bold bool // primary emphasis (grand-total row)
}

// Config is the snapshot of settings the composer consumes. It is passed in
// explicitly; the composer performs no ambient lookups.
type Config struct {
	StoreName    string
	StoreAddress string
	StorePhone   string
	FooterText   string
	CharsPerLine int
	LineSpacing  Spacing
	// PaperSize is an informational label only ("80mm (48 chars)"); column
	// math derives solely from CharsPerLine.
	PaperSize string
}

// Document is the ordered list of layout elements for one receipt, together
// with the column grid every renderer shares.
type Document struct {
	Width    int
	ItemCol  int
	QtyCol   int
	AmtCol   int
	LabelCol int
	Spacing  Spacing
	Elements []Element
}
