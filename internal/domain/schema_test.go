package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSchemaUnmarshalDairy(t *testing.T) {
	raw := `{
		"type": "dairy",
		"unit": "litros",
		"price": 2.5,
		"templateConfig": {
			"trackIndividualProduction": true,
			"milkingTimes": 2
		},
		"inventory": {
			"items": [
				{"id": "c1", "name": "Lola"},
				{"id": "c2", "name": "Manchas", "inProduction": false}
			]
		},
		"cowProductionHistory": [
			{
				"date": "2025-08-01",
				"total_liters": 25,
				"production": [{"id": "c1", "name": "Lola", "liters": 25}],
				"movement_id": "m1"
			}
		]
	}`

	var schema Schema
	err := json.Unmarshal([]byte(raw), &schema)
	assert.NoError(t, err)

	dairy, ok := schema.Variant.(*DairySchema)
	assert.True(t, ok)
	assert.Equal(t, 2.5, dairy.Price)
	assert.Len(t, dairy.Inventory.Items, 2)
	assert.True(t, dairy.Inventory.Items[0].IsInProduction())
	assert.False(t, dairy.Inventory.Items[1].IsInProduction())
	assert.Len(t, dairy.ProductionHistory, 1)
	assert.Equal(t, "m1", dairy.ProductionHistory[0].MovementID)
}

func TestSchemaUnmarshalEggs(t *testing.T) {
	raw := `{
		"type": "eggs",
		"unit": "huevos",
		"price": 0.5,
		"templateConfig": {"trackByType": true},
		"productionTypes": [
			{"id": "t1", "name": "AA", "price": 0.6, "active": true},
			{"id": "t2", "name": "B", "price": 0.4, "active": false}
		]
	}`

	var schema Schema
	err := json.Unmarshal([]byte(raw), &schema)
	assert.NoError(t, err)

	eggs, ok := schema.Variant.(*EggsSchema)
	assert.True(t, ok)
	assert.Equal(t, SchemaTypeEggs, eggs.SchemaType())
	assert.Len(t, eggs.ProductionTypes, 2)
	assert.Equal(t, 0.6, eggs.ProductionTypes[0].Price)
	assert.False(t, eggs.ProductionTypes[1].Active)
}

func TestSchemaUnmarshalUnknownTypeKeepsDocument(t *testing.T) {
	// Un "type" desconocido cae en la variante genérica y el documento debe
	// sobrevivir el viaje de ida y vuelta sin perder campos ajenos.
	raw := `{"type":"apicultura","unit":"kg","price":12,"colmenas":8}`

	var schema Schema
	err := json.Unmarshal([]byte(raw), &schema)
	assert.NoError(t, err)

	generic, ok := schema.Variant.(*GenericSchema)
	assert.True(t, ok)
	assert.Equal(t, "kg", generic.Unit)
	assert.Equal(t, float64(12), generic.Price)

	out, err := json.Marshal(schema)
	assert.NoError(t, err)
	assert.JSONEq(t, raw, string(out))
}

func TestSchemaMarshalNilVariant(t *testing.T) {
	out, err := json.Marshal(Schema{})
	assert.NoError(t, err)
	assert.Equal(t, "null", string(out))
}

func TestSchemaRoundTripDairy(t *testing.T) {
	original := Schema{Variant: &DairySchema{
		Type:  SchemaTypeDairy,
		Unit:  "litros",
		Price: 3,
		TemplateConfig: DairyTemplateConfig{
			TrackIndividualProduction: BoolPtr(true),
			MilkingTimes:              IntPtr(2),
		},
		Inventory: &DairyInventory{Items: []Cow{{ID: "c1", Name: "Lola"}}},
	}}

	data, err := json.Marshal(original)
	assert.NoError(t, err)

	var decoded Schema
	err = json.Unmarshal(data, &decoded)
	assert.NoError(t, err)

	dairy, ok := decoded.Variant.(*DairySchema)
	assert.True(t, ok)
	assert.Equal(t, original.Variant, dairy)
}
