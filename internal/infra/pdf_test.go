package infra

import (
	"bytes"
	"testing"
	"time"

	"bfbsupply/internal/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderKPIReport(t *testing.T) {
	report := dto.KPIResponse{
		Sites:     dto.SiteKPI{Total: 2, Working: 1, WIP: 1},
		Inventory: dto.InventoryKPI{Total: 3, OK: 2, Low: 1},
		Orders: dto.OrderKPI{Total: 2, ByStatus: map[string]int64{
			"SCHEDULED": 1, "IN_TRANSIT": 1, "DELAYED": 0, "DELIVERED": 0,
		}},
	}

	var buf bytes.Buffer
	require.NoError(t, RenderKPIReport(&buf, report, time.Date(2025, 5, 1, 9, 0, 0, 0, time.UTC)))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")))
	assert.Greater(t, buf.Len(), 500)
}

func TestRenderKPIReport_EmptyByStatus(t *testing.T) {
	var buf bytes.Buffer
	assert.NoError(t, RenderKPIReport(&buf, dto.KPIResponse{}, time.Now()))
}
