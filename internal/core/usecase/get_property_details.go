package usecase

import (
	"context"
	"errors"
	"listings-service/internal/contextkeys"
	"listings-service/internal/core/domain"
	"listings-service/internal/core/port"
)

type GetPropertyDetailsUseCase struct {
	catalog port.PropertyCatalogPort
}

func NewGetPropertyDetailsUseCase(catalog port.PropertyCatalogPort) *GetPropertyDetailsUseCase {
	return &GetPropertyDetailsUseCase{catalog: catalog}
}

func (uc *GetPropertyDetailsUseCase) Execute(ctx context.Context, ref string) (*domain.Property, error) {
	ucLogger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"use_case":     "GetPropertyDetails",
		"property_ref": ref,
	})

	property, err := uc.catalog.GetByRef(ctx, ref)
	if err != nil {
		if errors.Is(err, domain.ErrPropertyNotFound) {
			ucLogger.Warn("Property not found", nil)
		} else {
			ucLogger.Error("Catalog returned an error", err, nil)
		}
		return nil, err
	}

	ucLogger.Debug("Property found", port.Fields{"property_id": property.ID})
	return property, nil
}
