package domain

import (
	"cmp"
	"slices"
)

const (
	entityIDSeparator = ":"
	// directStatsSource is the namespace some text requests are recorded under.
	// Its meaning is an assumption about backend key naming, not a guaranteed contract.
	directStatsSource = "direct"
)

// EntityID builds the composite key of a priceable entity.
func EntityID(source, modelID string) string {
	return source + entityIDSeparator + modelID
}

// NormalizeCatalog merges adapter models and provider price records into one list
// of priceable entities ordered by display name.
func NormalizeCatalog(adapters []AdapterRecord, prices []ProviderPriceRecord) []PriceableEntity {
	entities := make([]PriceableEntity, 0, len(prices))

	for _, adapter := range adapters {
		for _, model := range adapter.Models {
			if model.Pricing == nil || model.ID == "" {
				continue
			}
			entities = append(entities, normalizeAdapterModel(adapter, model))
		}
	}

	for _, record := range prices {
		if record.ModelName == "" {
			continue
		}
		entities = append(entities, normalizeProviderPrice(record))
	}

	slices.SortStableFunc(entities, func(a, b PriceableEntity) int {
		if c := cmp.Compare(a.DisplayName, b.DisplayName); c != 0 {
			return c
		}
		return cmp.Compare(a.ID, b.ID)
	})

	return entities
}

func normalizeAdapterModel(adapter AdapterRecord, model AdapterModelRecord) PriceableEntity {
	displayName := model.DisplayName
	if displayName == "" {
		displayName = model.ID
	}

	output := model.Pricing.OutputPer1K

	return PriceableEntity{
		ID:              EntityID(adapter.Name, model.ID),
		Source:          adapter.Name,
		ModelID:         model.ID,
		DisplayName:     displayName,
		MediaType:       MediaText,
		PriceKind:       PricePer1KTokens,
		BaseInputPrice:  model.Pricing.InputPer1K,
		BaseOutputPrice: &output,
		Active:          true,
	}
}

func normalizeProviderPrice(record ProviderPriceRecord) PriceableEntity {
	mediaType, declared := ParseMediaType(record.MediaType)
	if !declared {
		mediaType = ClassifyMediaType(record.ModelName)
	}

	var variants []Variant
	if len(record.PriceVariants) > 0 {
		variants = slices.Clone([]Variant(record.PriceVariants))
	}

	return PriceableEntity{
		ID:             EntityID(record.Provider, record.ModelName),
		Source:         record.Provider,
		ModelID:        record.ModelName,
		DisplayName:    record.ModelName,
		MediaType:      mediaType,
		PriceKind:      ParsePriceKind(record.PriceType),
		BaseInputPrice: record.PriceUSD,
		Variants:       variants,
		Active:         record.IsActive,
	}
}
