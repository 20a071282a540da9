package entity

// Product represents a sellable item priced per base unit (g/kg/ml/litre/pcs).
type Product struct {
	ID           uint    `gorm:"primaryKey" json:"id"`
	Name         string  `gorm:"size:255;not null" json:"name"`
	Code         string  `gorm:"size:100" json:"code"`
	BaseUnit     string  `gorm:"size:20;not null" json:"base_unit"`
	PricePerUnit float64 `gorm:"not null" json:"price_per_unit"`
	Category     string  `gorm:"size:100;default:'General'" json:"category"`
}

// TableName returns the table name for the Product model
func (Product) TableName() string {
	return "products"
}
