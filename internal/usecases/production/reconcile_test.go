package production

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dumar-app/dumar-api/internal/domain"
)

func trackedDairyVertical(price float64) *domain.Vertical {
	return dairyVertical(nil, []domain.Cow{
		{ID: "c1", Name: "Lola"},
		{ID: "c2", Name: "Mora"},
	}, price)
}

func TestReconcile_DairyTrackedIncome(t *testing.T) {
	req := &domain.CreateMovementRequest{
		Type: domain.MovementIncome,
		ProductionData: &domain.ProductionData{
			ByAnimal: []domain.CowProductionEntry{
				{ID: "c1", Name: "Lola", Liters: 10},
				{ID: "c2", Name: "Mora", Liters: 5},
			},
		},
	}

	result := Reconcile(trackedDairyVertical(2.0), req)

	assert.True(t, result.Tracked)
	assert.Equal(t, 15.0, result.Quantity)
	// importe = cantidad × precio base del esquema
	assert.Equal(t, 30.0, result.Amount)
	assert.Empty(t, result.Warning)
}

func TestReconcile_MismatchWarningIsAdvisory(t *testing.T) {
	req := &domain.CreateMovementRequest{
		Type:     domain.MovementIncome,
		Quantity: 20,
		ProductionData: &domain.ProductionData{
			ByAnimal: []domain.CowProductionEntry{
				{ID: "c1", Name: "Lola", Liters: 10},
				{ID: "c2", Name: "Mora", Liters: 5},
			},
		},
	}

	result := Reconcile(trackedDairyVertical(2.0), req)

	// El descuadre avisa pero no bloquea ni pisa ninguno de los dos valores
	assert.NotEmpty(t, result.Warning)
	assert.Equal(t, 15.0, result.Quantity)
	assert.Equal(t, 30.0, result.Amount)
}

func TestReconcile_ExpenseUsesManualAmount(t *testing.T) {
	req := &domain.CreateMovementRequest{
		Type:   domain.MovementExpense,
		Amount: 80,
	}

	result := Reconcile(trackedDairyVertical(2.0), req)

	assert.False(t, result.Tracked)
	assert.Equal(t, 80.0, result.Amount)
	assert.Empty(t, result.Warning)
}

func TestReconcile_NoVerticalUsesManualAmount(t *testing.T) {
	req := &domain.CreateMovementRequest{
		Type:   domain.MovementIncome,
		Amount: 50,
	}

	result := Reconcile(nil, req)

	assert.False(t, result.Tracked)
	assert.Equal(t, 50.0, result.Amount)
}

func TestReconcile_TrackingDisabledUsesManualAmount(t *testing.T) {
	vertical := &domain.Vertical{
		Schema: domain.Schema{Variant: &domain.DairySchema{
			Type:  domain.SchemaTypeDairy,
			Price: 2.0,
			TemplateConfig: domain.DairyTemplateConfig{
				TrackIndividualProduction: domain.BoolPtr(false),
			},
			Inventory: &domain.DairyInventory{Items: []domain.Cow{{ID: "c1", Name: "Lola"}}},
		}},
	}

	req := &domain.CreateMovementRequest{
		Type:   domain.MovementIncome,
		Amount: 42,
		ProductionData: &domain.ProductionData{
			ByAnimal: []domain.CowProductionEntry{{ID: "c1", Liters: 10}},
		},
	}

	result := Reconcile(vertical, req)

	assert.False(t, result.Tracked)
	assert.Equal(t, 42.0, result.Amount)
}

func TestReconcile_EggsByType(t *testing.T) {
	vertical := &domain.Vertical{
		Schema: domain.Schema{Variant: &domain.EggsSchema{
			Type:  domain.SchemaTypeEggs,
			Price: 0.5,
			ProductionTypes: []domain.EggType{
				{ID: "t1", Name: "AA", Price: 0.6, Active: true},
				{ID: "t2", Name: "A", Price: 0.4, Active: true},
			},
		}},
	}

	req := &domain.CreateMovementRequest{
		Type: domain.MovementIncome,
		ProductionData: &domain.ProductionData{
			ByType: []domain.EggTypeProduction{
				{ID: "t1", Count: 10},
				{ID: "t2", Count: 20},
			},
		},
	}

	result := Reconcile(vertical, req)

	assert.True(t, result.Tracked)
	assert.Equal(t, 30.0, result.Quantity)
	// 10×0.6 + 20×0.4, con el precio tomado del tipo configurado
	assert.Equal(t, 14.0, result.Amount)
}

func TestDistributeEvenly_RemainderToEarliestTypes(t *testing.T) {
	types := []domain.EggType{
		{ID: "t1", Name: "AA", Active: true},
		{ID: "t2", Name: "A", Active: true},
		{ID: "t3", Name: "B", Active: true},
	}

	distribution := DistributeEvenly(10, types)

	assert.Len(t, distribution, 3)
	assert.Equal(t, 4, distribution[0].Count)
	assert.Equal(t, 3, distribution[1].Count)
	assert.Equal(t, 3, distribution[2].Count)

	total := 0
	for _, entry := range distribution {
		total += entry.Count
	}
	assert.Equal(t, 10, total)
}

func TestDistributeEvenly_IncludesInactiveTypes(t *testing.T) {
	// El reparto cubre todos los tipos configurados, también los
	// desactivados.
	types := []domain.EggType{
		{ID: "t1", Name: "AA", Active: true},
		{ID: "t2", Name: "A", Active: false},
		{ID: "t3", Name: "B", Active: true},
	}

	distribution := DistributeEvenly(10, types)

	assert.Len(t, distribution, 3)
	assert.Equal(t, "t2", distribution[1].ID)
	assert.Equal(t, 4, distribution[0].Count)
	assert.Equal(t, 3, distribution[1].Count)
	assert.Equal(t, 3, distribution[2].Count)
}

func TestDistributeEvenly_NoTypes(t *testing.T) {
	assert.Nil(t, DistributeEvenly(10, nil))
}
