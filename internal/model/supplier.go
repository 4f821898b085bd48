package model

// Supplier represents a material vendor. Email and phone are optional contact data.
type Supplier struct {
	ID    uint    `gorm:"primaryKey;column:supplier_id"`
	Name  string  `gorm:"size:120;not null"`
	Email *string `gorm:"size:120"`
	Phone *string `gorm:"size:50"`
}

func (Supplier) TableName() string { return "suppliers" }
