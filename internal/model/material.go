package model

// Material is a catalogue entry. SKU is globally unique.
type Material struct {
	ID       uint    `gorm:"primaryKey;column:material_id"`
	Name     string  `gorm:"size:120;not null"`
	SKU      string  `gorm:"column:sku;size:80;not null;uniqueIndex"`
	Category *string `gorm:"size:80"`
}

func (Material) TableName() string { return "materials" }
