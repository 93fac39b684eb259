package jobs_test

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/mistica-api/internal/application/ledger"
	"github.com/jhoicas/mistica-api/internal/application/report"
	"github.com/jhoicas/mistica-api/internal/domain/inventory"
	"github.com/jhoicas/mistica-api/internal/infrastructure/jobs"
	"github.com/jhoicas/mistica-api/pkg/logger"
)

type fakeDigest struct{ d report.Digest }

func (f fakeDigest) Digest(time.Time) report.Digest { return f.d }

func TestNewScheduler_EmptySpecDisables(t *testing.T) {
	s, err := jobs.NewScheduler("", fakeDigest{}, nil)

	require.NoError(t, err)
	assert.Nil(t, s)
	s.Start()
	s.Stop()
}

func TestNewScheduler_InvalidExpression(t *testing.T) {
	_, err := jobs.NewScheduler("cada hora", fakeDigest{}, nil)

	assert.Error(t, err)
}

func TestRunStockDigest_LogsSummary(t *testing.T) {
	var buf bytes.Buffer
	src := fakeDigest{d: report.Digest{
		Report:  inventory.StockReport{TotalProducts: 11, TotalStockValue: decimal.RequireFromString("10.5"), ActiveAlerts: 2},
		Summary: ledger.StockSummary{LowStockProducts: 1, OutOfStock: 1},
	}}
	s, err := jobs.NewScheduler("@daily", src, logger.FromWriter(&buf))
	require.NoError(t, err)

	s.RunStockDigest()

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "warn", line["level"])
	assert.Equal(t, "resumen de stock", line["message"])
	assert.EqualValues(t, 11, line["total_products"])
	assert.Equal(t, "10.50", line["total_stock_value"])
	assert.EqualValues(t, 2, line["active_alerts"])
	assert.EqualValues(t, 1, line["out_of_stock"])
}
