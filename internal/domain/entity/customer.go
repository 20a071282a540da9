package entity

// Customer represents a known buyer. Phone numbers are unique; bills may
// reference a customer or be anonymous walk-in sales.
type Customer struct {
	ID      uint    `gorm:"primaryKey" json:"id"`
	Name    string  `gorm:"size:255;not null" json:"name"`
	Phone   *string `gorm:"size:50;uniqueIndex" json:"phone,omitempty"`
	Address string  `gorm:"type:text" json:"address,omitempty"`

	// Relationships
	Bills []Bill `gorm:"foreignKey:CustomerID;constraint:OnDelete:SET NULL" json:"-"`
}

// TableName returns the table name for the Customer model
func (Customer) TableName() string {
	return "customers"
}
