package production

import (
	"fmt"
	"math"

	"github.com/dumar-app/dumar-api/internal/domain"
	"github.com/dumar-app/dumar-api/pkg/utils"
)

// mismatchTolerance absorbe el ruido de coma flotante al comparar el total
// manual con la suma del desglose.
const mismatchTolerance = 0.01

// ReconcileResult es la salida de la reconciliación de una entrada de
// producción: la cantidad y el importe que deben persistirse más el aviso no
// bloqueante de descuadre, si lo hay.
type ReconcileResult struct {
	Tracked  bool    `json:"tracked"`
	Quantity float64 `json:"quantity"`
	Amount   float64 `json:"amount"`
	Warning  string  `json:"warning,omitempty"`
}

// Reconcile cruza el desglose por sub-entidad con el total manual. En modo
// ingreso con seguimiento activo el importe se calcula como cantidad × precio;
// en cualquier otro caso la entrada manual se usa tal cual. Un descuadre entre
// total y desglose genera un aviso pero nunca bloquea.
func Reconcile(vertical *domain.Vertical, req *domain.CreateMovementRequest) ReconcileResult {
	if vertical == nil || req.Type != domain.MovementIncome {
		return manualResult(req)
	}

	switch variant := vertical.Schema.Variant.(type) {
	case *domain.DairySchema:
		return reconcileDairy(variant, req)
	case *domain.EggsSchema:
		return reconcileEggs(variant, req)
	default:
		return manualResult(req)
	}
}

func manualResult(req *domain.CreateMovementRequest) ReconcileResult {
	quantity := req.Quantity
	if quantity == 0 && req.ProductionData != nil {
		quantity = req.ProductionData.TotalLiters
	}

	return ReconcileResult{
		Tracked:  false,
		Quantity: quantity,
		Amount:   req.Amount,
	}
}

func reconcileDairy(schema *domain.DairySchema, req *domain.CreateMovementRequest) ReconcileResult {
	tracking := schema.TemplateConfig.TrackIndividualProduction == nil ||
		*schema.TemplateConfig.TrackIndividualProduction
	hasCows := schema.Inventory != nil && len(schema.Inventory.Items) > 0

	if !tracking || !hasCows || req.ProductionData == nil || len(req.ProductionData.ByAnimal) == 0 {
		return manualResult(req)
	}

	var sum float64
	for _, entry := range req.ProductionData.ByAnimal {
		sum += entry.Liters
	}
	sum = utils.RoundWithTwoDecimalPlace(sum)

	price := schema.Price
	if req.ProductionData.PricePerLiter > 0 {
		price = req.ProductionData.PricePerLiter
	}

	result := ReconcileResult{
		Tracked:  true,
		Quantity: sum,
		Amount:   utils.RoundWithTwoDecimalPlace(sum * price),
	}

	manualTotal := req.Quantity
	if manualTotal == 0 {
		manualTotal = req.ProductionData.TotalLiters
	}
	if manualTotal > 0 && math.Abs(manualTotal-sum) > mismatchTolerance {
		result.Warning = fmt.Sprintf(
			"El total introducido (%.2f) no coincide con la suma por vaca (%.2f)",
			manualTotal, sum,
		)
	}

	return result
}

func reconcileEggs(schema *domain.EggsSchema, req *domain.CreateMovementRequest) ReconcileResult {
	tracking := schema.TemplateConfig.TrackByType == nil || *schema.TemplateConfig.TrackByType
	hasTypes := len(schema.ProductionTypes) > 0

	if !tracking || !hasTypes || req.ProductionData == nil || len(req.ProductionData.ByType) == 0 {
		return manualResult(req)
	}

	var sum int
	var amount float64
	for _, entry := range req.ProductionData.ByType {
		sum += entry.Count

		price := entry.Price
		if price == 0 {
			price = priceForType(schema, entry.ID)
		}
		amount += float64(entry.Count) * price
	}

	result := ReconcileResult{
		Tracked:  true,
		Quantity: float64(sum),
		Amount:   utils.RoundWithTwoDecimalPlace(amount),
	}

	manualTotal := int(req.Quantity)
	if manualTotal == 0 && req.ProductionData.TotalEggs > 0 {
		manualTotal = req.ProductionData.TotalEggs
	}
	if manualTotal > 0 && manualTotal != sum {
		result.Warning = fmt.Sprintf(
			"El total introducido (%d) no coincide con la suma por tipo (%d)",
			manualTotal, sum,
		)
	}

	return result
}

func priceForType(schema *domain.EggsSchema, typeID string) float64 {
	for _, eggType := range schema.ProductionTypes {
		if eggType.ID == typeID {
			return eggType.Price
		}
	}
	return schema.Price
}

// DistributeEvenly reparte un total de huevos entre todos los tipos
// configurados, estén activos o no: cada tipo recibe la parte entera y el
// resto va, unidad a unidad, a los primeros tipos en orden de declaración.
func DistributeEvenly(total int, types []domain.EggType) []domain.EggTypeProduction {
	if len(types) == 0 {
		return nil
	}

	base := total / len(types)
	remainder := total % len(types)

	distribution := make([]domain.EggTypeProduction, 0, len(types))
	for i, eggType := range types {
		count := base
		if i < remainder {
			count++
		}

		distribution = append(distribution, domain.EggTypeProduction{
			ID:    eggType.ID,
			Name:  eggType.Name,
			Count: count,
			Price: eggType.Price,
		})
	}

	return distribution
}
