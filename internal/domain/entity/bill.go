package entity

import (
	"time"
)

// Bill represents one completed sales transaction. Bills and their items are
// written together in a single transaction and are immutable afterwards.
type Bill struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	BillNumber     string    `gorm:"size:100;uniqueIndex;not null" json:"bill_number"`
	CustomerID     *uint     `gorm:"index" json:"customer_id,omitempty"`
	DateTime       time.Time `gorm:"not null;index" json:"date_time"`
	Subtotal       float64   `gorm:"not null" json:"subtotal"`
	TaxPercent     float64   `gorm:"default:0" json:"tax_percent"`
	TaxAmount      float64   `gorm:"default:0" json:"tax_amount"`
	DiscountAmount float64   `gorm:"default:0" json:"discount_amount"`
	GrandTotal     float64   `gorm:"not null" json:"grand_total"`
	PaymentMethod  string    `gorm:"size:50" json:"payment_method"`
	Status         string    `gorm:"size:20;default:'PAID'" json:"status"`

	// Relationships
	Customer *Customer  `gorm:"foreignKey:CustomerID" json:"customer,omitempty"`
	Items    []BillItem `gorm:"foreignKey:BillID;constraint:OnDelete:CASCADE" json:"items,omitempty"`
}

// TableName returns the table name for the Bill model
func (Bill) TableName() string {
	return "bills"
}

// CustomerDisplayName returns the customer name for receipts, or "Walk-in"
// for anonymous sales.
func (b *Bill) CustomerDisplayName() string {
	if b.Customer != nil && b.Customer.Name != "" {
		return b.Customer.Name
	}
	return "Walk-in"
}

// CustomerPhone returns the customer phone, or empty for walk-in sales.
func (b *Bill) CustomerPhone() string {
	if b.Customer != nil && b.Customer.Phone != nil {
		return *b.Customer.Phone
	}
	return ""
}

// BillItem is one product line within a bill. Product name and unit are
// copied at sale time so historical bills survive later product edits.
type BillItem struct {
	ID          uint    `gorm:"primaryKey" json:"id"`
	BillID      uint    `gorm:"not null;index" json:"bill_id"`
	ProductID   uint    `gorm:"not null;index" json:"product_id"`
	ProductName string  `gorm:"size:255;not null" json:"product_name"`
	Quantity    float64 `gorm:"not null" json:"quantity"`
	Unit        string  `gorm:"size:20;not null" json:"unit"`
	Price       float64 `gorm:"not null" json:"price"`
	Total       float64 `gorm:"not null" json:"total"`

	// Relationships
	Bill    Bill    `gorm:"foreignKey:BillID" json:"-"`
	Product Product `gorm:"foreignKey:ProductID" json:"-"`
}

// TableName returns the table name for the BillItem model
func (BillItem) TableName() string {
	return "bill_items"
}
