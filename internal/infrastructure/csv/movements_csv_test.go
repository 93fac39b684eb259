package csv_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/mistica-api/internal/domain/entity"
	"github.com/jhoicas/mistica-api/internal/infrastructure/csv"
)

func TestMovementsCSV(t *testing.T) {
	at := time.Date(2024, 1, 20, 10, 30, 0, 0, time.UTC)
	movs := []entity.StockMovement{
		{ProductID: "1", Type: entity.MovementSalida, Quantity: 2, PreviousStock: 15, NewStock: 13, Reason: "Venta, mostrador", Reference: "V-1", UserID: "system", CreatedAt: at},
		{ProductID: "99", Type: entity.MovementAjuste, Quantity: 4, PreviousStock: 0, NewStock: 4, Reason: "Conteo", CreatedAt: at},
	}

	data, err := csv.NewMovementsCSV().MovementsCSV(context.Background(), movs, map[string]string{"1": "Lavanda"})
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "fecha,producto_id,producto,tipo,cantidad,stock_anterior,stock_nuevo,motivo,referencia,usuario", lines[0])
	assert.Equal(t, `2024-01-20T10:30:00Z,1,Lavanda,Salida,2,15,13,"Venta, mostrador",V-1,system`, lines[1])
	assert.Equal(t, "2024-01-20T10:30:00Z,99,,Ajuste,4,0,4,Conteo,,", lines[2])
}
