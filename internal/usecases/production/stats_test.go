package production

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dumar-app/dumar-api/internal/domain"
)

func dairyVertical(history []domain.CowProductionRecord, cows []domain.Cow, price float64) *domain.Vertical {
	return &domain.Vertical{
		ID: "v1",
		Schema: domain.Schema{Variant: &domain.DairySchema{
			Type:              domain.SchemaTypeDairy,
			Unit:              "litros",
			Price:             price,
			Inventory:         &domain.DairyInventory{Items: cows},
			ProductionHistory: history,
		}},
	}
}

func TestComputeStats_CowAccumulation(t *testing.T) {
	history := []domain.CowProductionRecord{
		{
			Date:        "2025-08-01",
			TotalLiters: 18,
			Production: []domain.CowProductionEntry{
				{ID: "c1", Name: "Lola", Liters: 10},
				{ID: "c2", Name: "Mora", Liters: 8},
			},
		},
		{
			Date:        "2025-08-02",
			TotalLiters: 12,
			Production: []domain.CowProductionEntry{
				{ID: "c1", Name: "Lola", Liters: 12},
			},
		},
	}
	cows := []domain.Cow{
		{ID: "c1", Name: "Lola"},
		{ID: "c2", Name: "Mora"},
		{ID: "c3", Name: "Nube"}, // nunca aparece en el historial
	}

	stats := ComputeStats(dairyVertical(history, cows, 2.0), nil)

	assert.Equal(t, 30.0, stats.TotalProduction)
	assert.Len(t, stats.CowStats, 2)

	lola := stats.CowStats[0]
	assert.Equal(t, "c1", lola.ID)
	assert.Equal(t, 22.0, lola.TotalLiters)
	assert.Equal(t, 2, lola.Count)
	assert.Equal(t, 11.0, lola.AvgProduction)
	assert.Equal(t, 12.0, lola.LastProduction)

	mora := stats.CowStats[1]
	assert.Equal(t, "c2", mora.ID)
	assert.Equal(t, 8.0, mora.TotalLiters)
	assert.Equal(t, 1, mora.Count)

	// Una vaca sin registros no aparece en la tabla de estadísticas
	for _, cow := range stats.CowStats {
		assert.NotEqual(t, "c3", cow.ID)
	}
}

func TestComputeStats_CowsOrderedByAverageDesc(t *testing.T) {
	history := []domain.CowProductionRecord{
		{
			Date:        "2025-08-01",
			TotalLiters: 21,
			Production: []domain.CowProductionEntry{
				{ID: "c1", Name: "Lola", Liters: 6},
				{ID: "c2", Name: "Mora", Liters: 15},
			},
		},
		{
			Date:        "2025-08-02",
			TotalLiters: 17,
			Production: []domain.CowProductionEntry{
				{ID: "c1", Name: "Lola", Liters: 8},
				{ID: "c3", Name: "Nube", Liters: 9},
			},
		},
	}

	stats := ComputeStats(dairyVertical(history, nil, 2.0), nil)

	// Mora 15, Nube 9, Lola 7: la tabla va de mayor a menor promedio aunque
	// Lola aparezca primero en el historial.
	assert.Len(t, stats.CowStats, 3)
	assert.Equal(t, "c2", stats.CowStats[0].ID)
	assert.Equal(t, "c3", stats.CowStats[1].ID)
	assert.Equal(t, "c1", stats.CowStats[2].ID)
}

func TestComputeTrend_Boundaries(t *testing.T) {
	tests := []struct {
		name   string
		values []float64
		want   domain.Trend
	}{
		{name: "diferencia dentro del umbral", values: []float64{10.0, 10.3}, want: domain.TrendStable},
		{name: "sube más del umbral", values: []float64{10.0, 10.6}, want: domain.TrendIncreasing},
		{name: "baja más del umbral", values: []float64{10.6, 10.0}, want: domain.TrendDecreasing},
		{name: "un solo valor", values: []float64{10.0}, want: domain.TrendStable},
		{name: "sin valores", values: nil, want: domain.TrendStable},
		{
			// Ventana impar: 3 contra 4, el valor del medio pesa en la
			// segunda mitad (10 vs 11.5).
			name:   "el valor del medio cae en la segunda mitad",
			values: []float64{10, 10, 10, 16, 10, 10, 10},
			want:   domain.TrendIncreasing,
		},
		{
			name:   "ventana impar a la baja",
			values: []float64{10, 10, 10, 4, 10, 10, 10},
			want:   domain.TrendDecreasing,
		},
		{
			name:   "sólo cuentan los últimos siete",
			values: []float64{100, 100, 100, 10, 10, 10, 11, 12, 12, 13},
			want:   domain.TrendIncreasing,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, computeTrend(tt.values))
		})
	}
}

func TestComputeStats_EggTotals(t *testing.T) {
	vertical := &domain.Vertical{
		ID: "v1",
		Schema: domain.Schema{Variant: &domain.EggsSchema{
			Type:  domain.SchemaTypeEggs,
			Price: 0.5,
			ProductionHistory: []domain.EggProductionRecord{
				{Date: "2025-08-01", TotalEggs: 120},
				{Date: "2025-08-02", TotalEggs: 90},
			},
		}},
	}

	stats := ComputeStats(vertical, nil)

	assert.Equal(t, 210.0, stats.TotalProduction)
	assert.Empty(t, stats.CowStats)
}

func TestComputeStats_RevenueAndAveragePrice(t *testing.T) {
	history := []domain.CowProductionRecord{
		{Date: "2025-08-01", TotalLiters: 50, Production: []domain.CowProductionEntry{{ID: "c1", Name: "Lola", Liters: 50}}},
	}
	movements := []*domain.Movement{
		{Type: domain.MovementIncome, Amount: 100},
		{Type: domain.MovementIncome, Amount: 25},
		{Type: domain.MovementExpense, Amount: 40}, // los gastos no suman ingresos
	}

	stats := ComputeStats(dairyVertical(history, nil, 2.0), movements)

	assert.Equal(t, 125.0, stats.TotalRevenue)
	assert.Equal(t, 2.5, stats.AveragePrice)
}

func TestComputeStats_AveragePriceFallback(t *testing.T) {
	// Sin producción el precio medio cae al precio base del esquema
	stats := ComputeStats(dairyVertical(nil, nil, 5.0), nil)

	assert.Equal(t, 0.0, stats.TotalProduction)
	assert.Equal(t, 5.0, stats.AveragePrice)
}
