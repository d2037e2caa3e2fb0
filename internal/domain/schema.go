package domain

import (
	"encoding/json"
)

// SchemaType discrimina las variantes del esquema de una vertical.
type SchemaType string

const (
	SchemaTypeDairy   SchemaType = "dairy"
	SchemaTypeEggs    SchemaType = "eggs"
	SchemaTypeGeneric SchemaType = "generic"
)

// VerticalSchema es la unión etiquetada que describe la configuración de una
// vertical. Cada variante se identifica por el campo "type" del documento
// persistido en variables_schema.
type VerticalSchema interface {
	SchemaType() SchemaType
}

// Schema envuelve la unión para poder (de)serializarla desde la columna
// jsonb. El tipo concreto se resuelve mirando el campo "type"; cualquier
// valor desconocido se trata como esquema genérico y se conserva tal cual.
type Schema struct {
	Variant VerticalSchema
}

func (s Schema) MarshalJSON() ([]byte, error) {
	if s.Variant == nil {
		return []byte("null"), nil
	}
	return json.Marshal(s.Variant)
}

func (s *Schema) UnmarshalJSON(data []byte) error {
	var head struct {
		Type SchemaType `json:"type"`
	}
	if err := json.Unmarshal(data, &head); err != nil {
		return err
	}

	switch head.Type {
	case SchemaTypeDairy:
		var dairy DairySchema
		if err := json.Unmarshal(data, &dairy); err != nil {
			return err
		}
		s.Variant = &dairy

	case SchemaTypeEggs:
		var eggs EggsSchema
		if err := json.Unmarshal(data, &eggs); err != nil {
			return err
		}
		s.Variant = &eggs

	default:
		var generic GenericSchema
		if err := json.Unmarshal(data, &generic); err != nil {
			return err
		}
		generic.raw = append([]byte(nil), data...)
		s.Variant = &generic
	}

	return nil
}

// Cow es una vaca del inventario de una vertical lechera. Las vacas nunca se
// borran del historial, sólo se alterna inProduction.
type Cow struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Notes        string `json:"notes,omitempty"`
	Comments     string `json:"comments,omitempty"`
	InProduction *bool  `json:"inProduction,omitempty"`
}

// IsInProduction interpreta la ausencia del flag como activa, igual que el
// resto de flags opcionales del esquema.
func (c Cow) IsInProduction() bool {
	return c.InProduction == nil || *c.InProduction
}

// CowProductionEntry es la producción de una vaca dentro de un registro.
type CowProductionEntry struct {
	ID     string  `json:"id"`
	Name   string  `json:"name"`
	Liters float64 `json:"liters"`
}

// CowProductionRecord es un registro fechado del historial de producción
// lechera. El historial es sólo-anexar: nunca se editan registros pasados.
type CowProductionRecord struct {
	Date        string               `json:"date"`
	TotalLiters float64              `json:"total_liters"`
	Production  []CowProductionEntry `json:"production"`
	MovementID  string               `json:"movement_id,omitempty"`
}

// DairyTemplateConfig contiene las opciones de seguimiento de una vertical
// lechera. Los campos son punteros para distinguir ausente de falso en
// documentos antiguos; el normalizador los completa.
type DairyTemplateConfig struct {
	LastUpdated               string         `json:"lastUpdated,omitempty"`
	Version                   string         `json:"version,omitempty"`
	CustomFields              map[string]any `json:"customFields,omitempty"`
	TrackIndividualProduction *bool          `json:"trackIndividualProduction,omitempty"`
	ProductionFrequency       string         `json:"productionFrequency,omitempty"`
	MilkingTimes              *int           `json:"milkingTimes,omitempty"`
	QualityMetrics            *bool          `json:"qualityMetrics,omitempty"`
}

// DairyInventory agrupa las vacas registradas.
type DairyInventory struct {
	Items []Cow `json:"items"`
}

// DairySchema es la variante lechera de la unión.
type DairySchema struct {
	Type              SchemaType            `json:"type"`
	Unit              string                `json:"unit"`
	Price             float64               `json:"price"`
	TemplateConfig    DairyTemplateConfig   `json:"templateConfig"`
	Inventory         *DairyInventory       `json:"inventory,omitempty"`
	ProductionHistory []CowProductionRecord `json:"cowProductionHistory,omitempty"`
}

func (s *DairySchema) SchemaType() SchemaType { return SchemaTypeDairy }

// EggType es un tipo de huevo configurado en una vertical de huevos.
type EggType struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Active      bool    `json:"active"`
	Description string  `json:"description,omitempty"`
}

// EggTypeProduction es la cantidad producida de un tipo dentro de un registro.
type EggTypeProduction struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Count int     `json:"count"`
	Price float64 `json:"price"`
}

// EggProductionRecord es un registro fechado del historial de producción de
// huevos.
type EggProductionRecord struct {
	Date       string              `json:"date"`
	TotalEggs  int                 `json:"total_eggs"`
	ByType     []EggTypeProduction `json:"by_type,omitempty"`
	MovementID string              `json:"movement_id,omitempty"`
}

// EggTemplateConfig contiene las opciones de seguimiento de una vertical de
// huevos.
type EggTemplateConfig struct {
	LastUpdated         string         `json:"lastUpdated,omitempty"`
	Version             string         `json:"version,omitempty"`
	CustomFields        map[string]any `json:"customFields,omitempty"`
	TrackByType         *bool          `json:"trackByType,omitempty"`
	EggGradingEnabled   *bool          `json:"eggGradingEnabled,omitempty"`
	CollectionFrequency string         `json:"collectionFrequency,omitempty"`
	QualityControl      *bool          `json:"qualityControl,omitempty"`
}

// EggsInventory guarda el total de aves/huevos en inventario.
type EggsInventory struct {
	Total float64 `json:"total"`
}

// EggsSchema es la variante de huevos de la unión.
type EggsSchema struct {
	Type              SchemaType            `json:"type"`
	Unit              string                `json:"unit"`
	Price             float64               `json:"price"`
	TemplateConfig    EggTemplateConfig     `json:"templateConfig"`
	Inventory         *EggsInventory        `json:"inventory,omitempty"`
	ProductionTypes   []EggType             `json:"productionTypes,omitempty"`
	ProductionHistory []EggProductionRecord `json:"eggProductionHistory,omitempty"`
}

func (s *EggsSchema) SchemaType() SchemaType { return SchemaTypeEggs }

// GenericSchema cubre verticales sin editor especializado: sólo unidad y
// precio. Los documentos con "type" desconocido conservan su contenido
// original al reserializarse.
type GenericSchema struct {
	Type      string  `json:"type,omitempty"`
	Unit      string  `json:"unit"`
	Price     float64 `json:"price"`
	Estimated float64 `json:"estimated,omitempty"`

	raw json.RawMessage
}

func (s *GenericSchema) SchemaType() SchemaType { return SchemaTypeGeneric }

func (s *GenericSchema) MarshalJSON() ([]byte, error) {
	if len(s.raw) > 0 {
		return s.raw, nil
	}

	type alias GenericSchema
	return json.Marshal((*alias)(s))
}

// BoolPtr es un helper para los flags opcionales del esquema.
func BoolPtr(v bool) *bool { return &v }

// IntPtr es un helper para los campos numéricos opcionales del esquema.
func IntPtr(v int) *int { return &v }
