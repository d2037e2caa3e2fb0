package vertical

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dumar-app/dumar-api/internal/domain"
)

func TestNormalizeSchema_DairyDefaults(t *testing.T) {
	schema := domain.Schema{Variant: &domain.DairySchema{
		Type:  domain.SchemaTypeDairy,
		Unit:  "litros",
		Price: 2.5,
	}}

	normalized := NormalizeSchema(schema)

	dairy, ok := normalized.Variant.(*domain.DairySchema)
	assert.True(t, ok)

	cfg := dairy.TemplateConfig
	assert.NotEmpty(t, cfg.LastUpdated)
	assert.Equal(t, "1.0.0", cfg.Version)
	assert.NotNil(t, cfg.CustomFields)
	assert.NotNil(t, cfg.TrackIndividualProduction)
	assert.True(t, *cfg.TrackIndividualProduction)
	assert.Equal(t, "daily", cfg.ProductionFrequency)
	assert.NotNil(t, cfg.MilkingTimes)
	assert.Equal(t, 2, *cfg.MilkingTimes)
	assert.NotNil(t, cfg.QualityMetrics)
	assert.False(t, *cfg.QualityMetrics)

	assert.NotNil(t, dairy.Inventory)
	assert.Empty(t, dairy.Inventory.Items)
}

func TestNormalizeSchema_EggDefaults(t *testing.T) {
	schema := domain.Schema{Variant: &domain.EggsSchema{
		Type:  domain.SchemaTypeEggs,
		Unit:  "unidades",
		Price: 0.3,
	}}

	normalized := NormalizeSchema(schema)

	eggs, ok := normalized.Variant.(*domain.EggsSchema)
	assert.True(t, ok)

	cfg := eggs.TemplateConfig
	assert.NotNil(t, cfg.TrackByType)
	assert.True(t, *cfg.TrackByType)
	assert.NotNil(t, cfg.EggGradingEnabled)
	assert.False(t, *cfg.EggGradingEnabled)
	assert.Equal(t, "daily", cfg.CollectionFrequency)
	assert.NotNil(t, cfg.QualityControl)
	assert.False(t, *cfg.QualityControl)
	assert.NotNil(t, eggs.Inventory)
}

func TestNormalizeSchema_PreservesExistingValues(t *testing.T) {
	schema := domain.Schema{Variant: &domain.DairySchema{
		Type: domain.SchemaTypeDairy,
		TemplateConfig: domain.DairyTemplateConfig{
			LastUpdated:               "2025-01-01T00:00:00Z",
			Version:                   "2.1.0",
			TrackIndividualProduction: domain.BoolPtr(false),
			ProductionFrequency:       "weekly",
			MilkingTimes:              domain.IntPtr(3),
			QualityMetrics:            domain.BoolPtr(true),
		},
		Inventory: &domain.DairyInventory{Items: []domain.Cow{{ID: "c1", Name: "Lola"}}},
	}}

	normalized := NormalizeSchema(schema)

	dairy := normalized.Variant.(*domain.DairySchema)
	cfg := dairy.TemplateConfig
	assert.Equal(t, "2025-01-01T00:00:00Z", cfg.LastUpdated)
	assert.Equal(t, "2.1.0", cfg.Version)
	assert.False(t, *cfg.TrackIndividualProduction)
	assert.Equal(t, "weekly", cfg.ProductionFrequency)
	assert.Equal(t, 3, *cfg.MilkingTimes)
	assert.True(t, *cfg.QualityMetrics)
	assert.Len(t, dairy.Inventory.Items, 1)
}

func TestNormalizeSchema_Idempotent(t *testing.T) {
	schema := domain.Schema{Variant: &domain.EggsSchema{
		Type:  domain.SchemaTypeEggs,
		Unit:  "unidades",
		Price: 0.3,
	}}

	once := NormalizeSchema(schema)
	twice := NormalizeSchema(once)

	onceJSON, err := json.Marshal(once)
	assert.NoError(t, err)
	twiceJSON, err := json.Marshal(twice)
	assert.NoError(t, err)

	assert.JSONEq(t, string(onceJSON), string(twiceJSON))
}

func TestNormalizeSchema_GenericUntouched(t *testing.T) {
	raw := []byte(`{"type":"apicultura","unit":"kg","price":12,"colmenas":4}`)

	var schema domain.Schema
	assert.NoError(t, json.Unmarshal(raw, &schema))

	normalized := NormalizeSchema(schema)

	out, err := json.Marshal(normalized)
	assert.NoError(t, err)
	// Un tipo no reconocido conserva su documento original intacto
	assert.JSONEq(t, string(raw), string(out))
}
