package usecase

import (
	"context"
	"listings-service/internal/contextkeys"
	"listings-service/internal/core/domain"
	"listings-service/internal/core/port"
	"sort"
)

type GetFilterOptionsUseCase struct {
	catalog port.PropertyCatalogPort
}

func NewGetFilterOptionsUseCase(catalog port.PropertyCatalogPort) *GetFilterOptionsUseCase {
	return &GetFilterOptionsUseCase{catalog: catalog}
}

// Execute собирает значения для формы фильтра по всему каталогу.
func (uc *GetFilterOptionsUseCase) Execute(ctx context.Context) (*domain.FilterOptionsResult, error) {
	ucLogger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"use_case": "GetFilterOptions",
	})

	all, err := uc.catalog.List(ctx)
	if err != nil {
		ucLogger.Error("Catalog returned an error", err, nil)
		return nil, err
	}

	result := &domain.FilterOptionsResult{TotalCount: len(all)}

	typeCounts := make(map[domain.PropertyType]int)
	bedrooms := make(map[int]bool)
	for i, p := range all {
		typeCounts[p.Type]++
		bedrooms[p.Bedrooms] = true
		if p.Available {
			result.AvailableCount++
		}

		if i == 0 {
			result.Price = &domain.RangeResult{Min: p.Price, Max: p.Price}
			continue
		}
		if p.Price < result.Price.Min {
			result.Price.Min = p.Price
		}
		if p.Price > result.Price.Max {
			result.Price.Max = p.Price
		}
	}

	// Категории в фиксированном порядке, только те, что есть в каталоге
	for _, t := range domain.PropertyTypes {
		if count := typeCounts[t]; count > 0 {
			result.Types = append(result.Types, domain.TypeOption{Type: t, Count: count})
		}
	}

	for b := range bedrooms {
		result.Bedrooms = append(result.Bedrooms, b)
	}
	sort.Ints(result.Bedrooms)

	ucLogger.Debug("Filter options collected", port.Fields{
		"types":    len(result.Types),
		"bedrooms": len(result.Bedrooms),
	})
	return result, nil
}
