package dto

type SiteKPI struct {
	Total   int64 `json:"total"`
	Working int64 `json:"working"`
	WIP     int64 `json:"wip"`
}

type InventoryKPI struct {
	Total   int64 `json:"total"`
	OK      int64 `json:"ok"`
	Low     int64 `json:"low"`
	Reorder int64 `json:"reorder"`
}

type OrderKPI struct {
	Total    int64            `json:"total"`
	ByStatus map[string]int64 `json:"by_status"`
}

// KPIResponse is a point-in-time aggregate over the whole store.
type KPIResponse struct {
	Sites     SiteKPI      `json:"sites"`
	Inventory InventoryKPI `json:"inventory"`
	Orders    OrderKPI     `json:"orders"`
}
