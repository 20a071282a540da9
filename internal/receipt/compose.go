package receipt

import (
	"strconv"

	"github.com/thangam/billing-api/internal/domain/entity"
	"github.com/thangam/billing-api/pkg/apperror"
	"github.com/thangam/billing-api/pkg/money"
)

// minWidth is the narrowest renderable paper: below this the mandatory
// ITEM/QTY/AMT header row cannot be laid out safely.
const minWidth = 8

// Compose maps a persisted bill, its ordered items and a settings snapshot to
// a Document. It is pure and side-effect free: identical inputs always yield
// identical Documents. Missing optional fields (address, phone, tax,
// discount) simply omit their elements and never fail.
func Compose(bill *entity.Bill, items []entity.BillItem, cfg Config) (*Document, error) {
	if cfg.CharsPerLine < minWidth {
		return nil, apperror.NewInvalidConfigError("chars_per_line is too narrow to render a receipt")
	}
	if len(items) == 0 {
		return nil, apperror.NewInvalidConfigError("a bill with no items is not renderable")
	}

	width := cfg.CharsPerLine
	itemCol, qtyCol, amtCol := columnWidths(width)

	d := &Document{
		Width:    width,
		ItemCol:  itemCol,
		QtyCol:   qtyCol,
		AmtCol:   amtCol,
		LabelCol: width - amtCol - 2,
		Spacing:  cfg.LineSpacing,
	}

	// Title bar
	d.rule('=')
	d.text(truncate(cfg.StoreName, width), AlignCenter)
	if cfg.StoreAddress != "" {
		addr := []rune(cfg.StoreAddress)
		if len(addr) > width {
			d.text(string(addr[:width]), AlignCenter)
			// Anything beyond two paper widths is silently dropped.
			rest := addr[width:]
			if len(rest) > width {
				rest = rest[:width]
			}
			d.text(string(rest), AlignCenter)
		} else {
			d.text(cfg.StoreAddress, AlignCenter)
		}
	}
	if cfg.StorePhone != "" {
		d.text("Ph: "+cfg.StorePhone, AlignCenter)
	}
	d.rule('=')
	d.spacer()

	// Bill header
	d.text("Bill No: "+bill.BillNumber, AlignLeft)
	d.text("Date: "+bill.DateTime.Format("2006-01-02 15:04:05"), AlignLeft)
	d.text("Customer: "+truncate(bill.CustomerDisplayName(), width-10), AlignLeft)
	if phone := bill.CustomerPhone(); phone != "" {
		d.text("Phone: "+phone, AlignLeft)
	}
	d.spacer()

	// Item table
	d.rule('-')
	d.columns("ITEM", "QTY", "AMT")
	d.rule('-')
	for _, item := range items {
		d.columns(
			truncate(item.ProductName, itemCol),
			truncate(formatQuantity(item.Quantity)+item.Unit, qtyCol),
			truncate(money.Format(item.Total), amtCol),
		)
	}
	d.rule('-')
	d.spacer()

	// Totals block
	d.amountRow("Subtotal", money.Format(bill.Subtotal), false)
	if bill.TaxAmount > 0 {
		d.amountRow("Tax", money.Format(bill.TaxAmount), false)
	}
	if bill.DiscountAmount > 0 {
		d.amountRow("Discount", "-"+money.Format(bill.DiscountAmount), false)
	}
	d.spacer()
	d.rule('=')
	d.amountRow("TOTAL", money.Format(bill.GrandTotal), true)
	d.rule('=')
	d.spacer()

	// Footer
	payment := bill.PaymentMethod
	if payment == "" {
		payment = "Cash"
	}
	d.text("Pay: "+payment, AlignCenter)
	d.spacer()
	if cfg.FooterText != "" {
		d.text(truncate(cfg.FooterText, width), AlignCenter)
	}
	d.text("*** THANK YOU ***", AlignCenter)

	return d, nil
}

// columnWidths returns the item/qty/amount column widths for a paper width.
// The tiers match the physical paper sizes the system supports: 80mm (48),
// 76mm (42) and 58mm (32).
func columnWidths(width int) (itemCol, qtyCol, amtCol int) {
	switch {
	case width >= 48:
		return 24, 8, 14
	case width >= 42:
		return 20, 8, 12
	default:
		return 14, 6, 10
	}
}

// truncate hard-cuts a string to at most n runes, with no ellipsis.
func truncate(s string, n int) string {
	if n <= 0 {
		return ""
	}
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}

// formatQuantity renders a quantity without trailing zeros ("1", "1.5").
func formatQuantity(q float64) string {
	return strconv.FormatFloat(q, 'f', -1, 64)
}

func (d *Document) rule(ch byte) {
	d.Elements = append(d.Elements, Element{Kind: KindRule, Rule: ch})
}

func (d *Document) text(s string, align Align) {
	d.Elements = append(d.Elements, Element{Kind: KindText, Text: s, Align: align})
}

// spacer emits a blank separator unless the receipt is in Compact mode.
func (d *Document) spacer() {
	if d.Spacing == SpacingCompact {
		return
	}
	d.Elements = append(d.Elements, Element{Kind: KindSpacer})
}

func (d *Document) columns(item, qty, amount string) {
	d.Elements = append(d.Elements, Element{Kind: KindColumns, Item: item, Qty: qty, Amount: amount})
}

func (d *Document) amountRow(label, value string, bold bool) {
	d.Elements = append(d.Elements, Element{Kind: KindAmountRow, Label: label, Value: value, Bold: bold})
}
