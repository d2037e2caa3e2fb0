package vertical

import (
	"time"

	"github.com/dumar-app/dumar-api/internal/domain"
)

// NormalizeSchema completa los campos ausentes de un esquema con los valores
// por defecto de cada variante. Es idempotente: aplicarlo sobre un esquema ya
// normalizado no cambia nada. Los esquemas genéricos se devuelven tal cual.
func NormalizeSchema(schema domain.Schema) domain.Schema {
	switch variant := schema.Variant.(type) {
	case *domain.DairySchema:
		normalized := *variant
		normalized.TemplateConfig = normalizeDairyConfig(variant.TemplateConfig)
		if normalized.Inventory == nil {
			normalized.Inventory = &domain.DairyInventory{Items: []domain.Cow{}}
		}
		return domain.Schema{Variant: &normalized}

	case *domain.EggsSchema:
		normalized := *variant
		normalized.TemplateConfig = normalizeEggConfig(variant.TemplateConfig)
		if normalized.Inventory == nil {
			normalized.Inventory = &domain.EggsInventory{}
		}
		return domain.Schema{Variant: &normalized}

	default:
		return schema
	}
}

func normalizeDairyConfig(cfg domain.DairyTemplateConfig) domain.DairyTemplateConfig {
	if cfg.LastUpdated == "" {
		cfg.LastUpdated = time.Now().Format(time.RFC3339)
	}
	if cfg.Version == "" {
		cfg.Version = "1.0.0"
	}
	if cfg.CustomFields == nil {
		cfg.CustomFields = map[string]any{}
	}
	if cfg.TrackIndividualProduction == nil {
		cfg.TrackIndividualProduction = domain.BoolPtr(true)
	}
	if cfg.ProductionFrequency == "" {
		cfg.ProductionFrequency = "daily"
	}
	if cfg.MilkingTimes == nil {
		cfg.MilkingTimes = domain.IntPtr(2)
	}
	if cfg.QualityMetrics == nil {
		cfg.QualityMetrics = domain.BoolPtr(false)
	}
	return cfg
}

func normalizeEggConfig(cfg domain.EggTemplateConfig) domain.EggTemplateConfig {
	if cfg.LastUpdated == "" {
		cfg.LastUpdated = time.Now().Format(time.RFC3339)
	}
	if cfg.Version == "" {
		cfg.Version = "1.0.0"
	}
	if cfg.CustomFields == nil {
		cfg.CustomFields = map[string]any{}
	}
	if cfg.TrackByType == nil {
		cfg.TrackByType = domain.BoolPtr(true)
	}
	if cfg.EggGradingEnabled == nil {
		cfg.EggGradingEnabled = domain.BoolPtr(false)
	}
	if cfg.CollectionFrequency == "" {
		cfg.CollectionFrequency = "daily"
	}
	if cfg.QualityControl == nil {
		cfg.QualityControl = domain.BoolPtr(false)
	}
	return cfg
}
