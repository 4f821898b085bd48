package model

import "time"

// Canonical order statuses. The status column is free text; only these
// four are bucketed by the KPI report.
const (
	OrderStatusScheduled = "SCHEDULED"
	OrderStatusInTransit = "IN_TRANSIT"
	OrderStatusDelayed   = "DELAYED"
	OrderStatusDelivered = "DELIVERED"
)

// OrderStatuses lists the canonical statuses in report order.
var OrderStatuses = []string{
	OrderStatusScheduled,
	OrderStatusInTransit,
	OrderStatusDelayed,
	OrderStatusDelivered,
}

// Order is a material delivery from a supplier to a site.
type Order struct {
	ID          uint    `gorm:"primaryKey;column:order_id"`
	MaterialID  uint    `gorm:"not null;index"`
	SupplierID  uint    `gorm:"not null;index"`
	SiteID      uint    `gorm:"not null;index"`
	Quantity    int     `gorm:"not null"`
	ETA         Date    `gorm:"column:eta;not null"`
	Status      string  `gorm:"size:50;not null;index"`
	DeliveredAt *Date   `gorm:"column:delivered_at"`
	DelayReason *string `gorm:"size:255"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Material *Material `gorm:"foreignKey:MaterialID;constraint:OnDelete:RESTRICT"`
	Supplier *Supplier `gorm:"foreignKey:SupplierID;constraint:OnDelete:RESTRICT"`
	Site     *Site     `gorm:"foreignKey:SiteID;constraint:OnDelete:RESTRICT"`
}

func (Order) TableName() string { return "orders" }

// MarkStatus sets the status and stamps DeliveredAt the first time the
// order becomes DELIVERED. Later transitions never overwrite it.
func (o *Order) MarkStatus(status string, today Date) {
	o.Status = status
	if status == OrderStatusDelivered && o.DeliveredAt == nil {
		d := today
		o.DeliveredAt = &d
	}
}
