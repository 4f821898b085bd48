package model

// Site status values counted by the KPI report. Other values may be stored.
const (
	SiteStatusWorking = "WORKING"
	SiteStatusWIP     = "WIP"
)

// Site is a construction site that holds inventory and receives orders.
type Site struct {
	ID     uint   `gorm:"primaryKey;column:site_id"`
	Name   string `gorm:"column:site_name;size:120;not null"`
	Status string `gorm:"size:50;not null"`
}

func (Site) TableName() string { return "sites" }
