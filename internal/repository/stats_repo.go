package repository

import (
	"context"
	"database/sql"

	"bfbsupply/internal/model"

	"gorm.io/gorm"
)

// StatusCount is one GROUP BY status bucket.
type StatusCount struct {
	Status string
	Count  int64
}

// StockLevel is the classifier input for a single inventory row.
type StockLevel struct {
	Qty          int
	LowThreshold int
}

// Snapshot is the raw material of the KPI report, read in one transaction.
type Snapshot struct {
	SiteStatuses  []StatusCount
	StockLevels   []StockLevel
	OrderStatuses []StatusCount
}

type StatsRepository interface {
	Snapshot(ctx context.Context) (*Snapshot, error)
}

type statsRepo struct{ db *gorm.DB }

func NewStatsRepository(db *gorm.DB) StatsRepository { return &statsRepo{db: db} }

// Snapshot scans sites, inventory and orders inside a read-only
// REPEATABLE READ transaction so the three reads agree with each other.
func (r *statsRepo) Snapshot(ctx context.Context) (*Snapshot, error) {
	var snap Snapshot
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&model.Site{}).
			Select("status, count(*) AS count").
			Group("status").
			Order("status").
			Scan(&snap.SiteStatuses).Error; err != nil {
			return err
		}
		if err := tx.Model(&model.Inventory{}).
			Select("qty, low_threshold").
			Order("inventory_id").
			Scan(&snap.StockLevels).Error; err != nil {
			return err
		}
		return tx.Model(&model.Order{}).
			Select("status, count(*) AS count").
			Group("status").
			Order("status").
			Scan(&snap.OrderStatuses).Error
	}, &sql.TxOptions{Isolation: sql.LevelRepeatableRead, ReadOnly: true})
	if err != nil {
		return nil, translate(err)
	}
	return &snap, nil
}
