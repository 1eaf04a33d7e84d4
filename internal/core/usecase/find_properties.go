package usecase

import (
	"context"
	"listings-service/internal/contextkeys"
	"listings-service/internal/core/domain"
	"listings-service/internal/core/port"
)

type FindPropertiesUseCase struct {
	catalog port.PropertyCatalogPort
}

func NewFindPropertiesUseCase(catalog port.PropertyCatalogPort) *FindPropertiesUseCase {
	return &FindPropertiesUseCase{catalog: catalog}
}

// Execute применяет фильтр к каталогу. Порядок каталога сохраняется, пагинации нет.
func (uc *FindPropertiesUseCase) Execute(ctx context.Context, filter domain.PropertyFilter) ([]domain.Property, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case": "FindProperties",
		"filters":  filter,
	})

	ucLogger.Debug("Use case started", nil)

	all, err := uc.catalog.List(ctx)
	if err != nil {
		ucLogger.Error("Catalog returned an error", err, nil)
		return nil, err
	}

	filtered := domain.FilterProperties(all, filter)

	ucLogger.Info("Use case finished successfully", port.Fields{
		"total_in_catalog": len(all),
		"total_found":      len(filtered),
	})
	return filtered, nil
}
