package model

import "time"

// DefaultLowThreshold applies when an inventory row is created without one.
const DefaultLowThreshold = 10

// Inventory records how much of a material is on hand at a site.
// (material_id, site_id) is unique. The stock status is never stored;
// see ClassifyStock.
type Inventory struct {
	ID           uint `gorm:"primaryKey;column:inventory_id"`
	MaterialID   uint `gorm:"not null;uniqueIndex:idx_inventory_material_site,priority:1"`
	SiteID       uint `gorm:"not null;uniqueIndex:idx_inventory_material_site,priority:2;index"`
	Qty          int  `gorm:"not null"`
	LowThreshold int  `gorm:"not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time

	Material *Material `gorm:"foreignKey:MaterialID;constraint:OnDelete:RESTRICT"`
	Site     *Site     `gorm:"foreignKey:SiteID;constraint:OnDelete:RESTRICT"`
}

func (Inventory) TableName() string { return "inventory" }

// Status derives the current stock classification.
func (i Inventory) Status() StockStatus { return ClassifyStock(i.Qty, i.LowThreshold) }
