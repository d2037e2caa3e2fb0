package production

import (
	"sort"

	"github.com/dumar-app/dumar-api/internal/domain"
	"github.com/dumar-app/dumar-api/pkg/utils"
)

// trendWindow y trendThreshold controlan el cálculo de tendencia: se comparan
// las medias de la primera y la segunda mitad de los últimos registros.
const (
	trendWindow    = 7
	trendThreshold = 0.5
)

// ComputeStats deriva las estadísticas de lectura de una vertical a partir de
// su historial y de sus movimientos vinculados. Es una función pura: mismo
// esquema y mismos movimientos producen siempre el mismo resultado.
func ComputeStats(vertical *domain.Vertical, movements []*domain.Movement) *domain.VerticalStats {
	stats := &domain.VerticalStats{}

	var totalProduction float64
	switch variant := vertical.Schema.Variant.(type) {
	case *domain.DairySchema:
		totalProduction = dairyTotal(variant)
		stats.CowStats = computeCowStats(variant)
	case *domain.EggsSchema:
		totalProduction = eggsTotal(variant)
	}

	var revenue float64
	for _, movement := range movements {
		if movement.Type == domain.MovementIncome {
			revenue += movement.Amount
		}
	}

	stats.TotalProduction = utils.RoundWithTwoDecimalPlace(totalProduction)
	stats.TotalRevenue = utils.RoundWithTwoDecimalPlace(revenue)
	stats.AveragePrice = averagePrice(vertical, revenue, totalProduction)

	return stats
}

func dairyTotal(schema *domain.DairySchema) float64 {
	var total float64
	for _, record := range schema.ProductionHistory {
		total += record.TotalLiters
	}
	return total
}

func eggsTotal(schema *domain.EggsSchema) float64 {
	var total int
	for _, record := range schema.ProductionHistory {
		total += record.TotalEggs
	}
	return float64(total)
}

// averagePrice divide los ingresos entre la producción total, con el precio
// base del esquema como respaldo cuando aún no hay producción.
func averagePrice(vertical *domain.Vertical, revenue, totalProduction float64) float64 {
	if totalProduction > 0 {
		return utils.RoundWithTwoDecimalPlace(revenue / totalProduction)
	}

	switch variant := vertical.Schema.Variant.(type) {
	case *domain.DairySchema:
		return variant.Price
	case *domain.EggsSchema:
		return variant.Price
	case *domain.GenericSchema:
		return variant.Price
	}

	return 0
}

// computeCowStats acumula totales por vaca recorriendo el historial. Las
// vacas sin ningún registro quedan fuera de la tabla aunque sigan en el
// inventario.
func computeCowStats(schema *domain.DairySchema) []domain.CowStats {
	type accumulator struct {
		name   string
		total  float64
		count  int
		series []struct {
			date   string
			liters float64
		}
	}

	accumulators := make(map[string]*accumulator)
	order := make([]string, 0)

	records := make([]domain.CowProductionRecord, len(schema.ProductionHistory))
	copy(records, schema.ProductionHistory)
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].Date < records[j].Date
	})

	for _, record := range records {
		for _, entry := range record.Production {
			acc, exists := accumulators[entry.ID]
			if !exists {
				acc = &accumulator{name: entry.Name}
				accumulators[entry.ID] = acc
				order = append(order, entry.ID)
			}

			acc.total += entry.Liters
			acc.count++
			acc.series = append(acc.series, struct {
				date   string
				liters float64
			}{record.Date, entry.Liters})
		}
	}

	inventory := make(map[string]domain.Cow)
	comments := make(map[string]string)
	if schema.Inventory != nil {
		for _, cow := range schema.Inventory.Items {
			inventory[cow.ID] = cow
			comments[cow.ID] = cow.Comments
		}
	}

	cowStats := make([]domain.CowStats, 0, len(order))
	for _, cowID := range order {
		acc := accumulators[cowID]

		values := make([]float64, 0, len(acc.series))
		for _, point := range acc.series {
			values = append(values, point.liters)
		}

		inProduction := true
		if cow, ok := inventory[cowID]; ok {
			inProduction = cow.IsInProduction()
		}

		cowStats = append(cowStats, domain.CowStats{
			ID:             cowID,
			Name:           acc.name,
			InProduction:   inProduction,
			TotalLiters:    utils.RoundWithTwoDecimalPlace(acc.total),
			Count:          acc.count,
			AvgProduction:  utils.RoundWithTwoDecimalPlace(acc.total / float64(acc.count)),
			LastProduction: acc.series[len(acc.series)-1].liters,
			Trend:          computeTrend(values),
			Comments:       comments[cowID],
		})
	}

	// La tabla se ordena por promedio descendente; el empate conserva el
	// orden de aparición en el historial.
	sort.SliceStable(cowStats, func(i, j int) bool {
		return cowStats[i].AvgProduction > cowStats[j].AvgProduction
	})

	return cowStats
}

// computeTrend compara las medias de la primera y la segunda mitad de los
// últimos registros de una vaca. Con menos de dos valores no hay tendencia.
func computeTrend(values []float64) domain.Trend {
	if len(values) > trendWindow {
		values = values[len(values)-trendWindow:]
	}

	if len(values) < 2 {
		return domain.TrendStable
	}

	// Con ventana impar el valor del medio cae en la segunda mitad.
	half := len(values) / 2
	firstMean := mean(values[:half])
	secondMean := mean(values[half:])

	diff := secondMean - firstMean
	switch {
	case diff > trendThreshold:
		return domain.TrendIncreasing
	case diff < -trendThreshold:
		return domain.TrendDecreasing
	default:
		return domain.TrendStable
	}
}

func mean(values []float64) float64 {
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}
