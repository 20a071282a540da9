package receipt

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderLinesFixedWidth(t *testing.T) {
	bill := sampleBill()
	bill.TaxAmount = 10.25
	bill.DiscountAmount = 5
	bill.GrandTotal = 210.25

	cfg := sampleConfig(48)
	cfg.StoreAddress = "12 Main Bazaar Road"
	cfg.StorePhone = "04651-123456"

	doc, err := Compose(bill, sampleItems(), cfg)
	require.NoError(t, err)

	for i, ln := range RenderLines(doc) {
		assert.Len(t, []rune(ln.Text), 48, "line %d: %q", i, ln.Text)
	}
}

func TestRenderColumnsHeaderRow(t *testing.T) {
	doc, err := Compose(sampleBill(), sampleItems(), sampleConfig(48))
	require.NoError(t, err)

	lines := RenderText(doc)
	header := ""
	for _, ln := range lines {
		if strings.HasPrefix(ln, "ITEM") {
			header = ln
			break
		}
	}
	require.NotEmpty(t, header)

	// item left in 24, qty centered in 8, amount right in 14, single gaps.
	expected := "ITEM" + strings.Repeat(" ", 20) + " " +
		"  QTY   " + " " +
		strings.Repeat(" ", 11) + "AMT"
	assert.Equal(t, expected, header)
}

func TestRenderTotalRow(t *testing.T) {
	doc, err := Compose(sampleBill(), sampleItems(), sampleConfig(48))
	require.NoError(t, err)

	var total Line
	for _, ln := range RenderLines(doc) {
		if strings.HasPrefix(ln.Text, "TOTAL") {
			total = ln
		}
	}
	require.NotEmpty(t, total.Text)
	assert.True(t, total.Bold)

	// label in 32, one gap, amount right-aligned in 15.
	expected := "TOTAL" + strings.Repeat(" ", 27) + " " + strings.Repeat(" ", 9) + "205.00"
	assert.Equal(t, expected, total.Text)
}

func TestRenderRulesAndSpacers(t *testing.T) {
	doc, err := Compose(sampleBill(), sampleItems(), sampleConfig(32))
	require.NoError(t, err)

	lines := RenderText(doc)
	assert.Equal(t, strings.Repeat("=", 32), lines[0])

	foundSpacer := false
	for _, ln := range lines {
		if ln == strings.Repeat(" ", 32) {
			foundSpacer = true
		}
	}
	assert.True(t, foundSpacer)
}

func TestRenderIsIdempotent(t *testing.T) {
	doc, err := Compose(sampleBill(), sampleItems(), sampleConfig(48))
	require.NoError(t, err)

	first := RenderString(doc)
	second := RenderString(doc)
	assert.Equal(t, first, second)
}

func TestCenterLeftBias(t *testing.T) {
	// Odd leftover padding goes to the right.
	assert.Equal(t, " ab  ", center("ab", 5))
	assert.Equal(t, "  ab  ", center("ab", 6))
	assert.Equal(t, "ab", center("ab", 2))
	assert.Equal(t, "abc", center("abc", 2))
}

func TestPadHelpers(t *testing.T) {
	assert.Equal(t, "ab   ", padRight("ab", 5))
	assert.Equal(t, "   ab", padLeft("ab", 5))
	assert.Equal(t, "abcdef", padRight("abcdef", 5))
	assert.Equal(t, "abcdef", padLeft("abcdef", 5))
}

func TestRenderStringJoinsWithNewlines(t *testing.T) {
	doc, err := Compose(sampleBill(), sampleItems(), sampleConfig(48))
	require.NoError(t, err)

	text := RenderString(doc)
	lines := strings.Split(text, "\n")
	assert.Equal(t, len(RenderLines(doc)), len(lines))
	assert.False(t, strings.HasSuffix(text, "\n"))
}
