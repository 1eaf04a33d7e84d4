package usecase

import (
	"context"
	"listings-service/internal/contextkeys"
	"listings-service/internal/core/domain"
	"listings-service/internal/core/port"
)

type GetFeaturedUseCase struct {
	catalog port.PropertyCatalogPort
}

func NewGetFeaturedUseCase(catalog port.PropertyCatalogPort) *GetFeaturedUseCase {
	return &GetFeaturedUseCase{catalog: catalog}
}

func (uc *GetFeaturedUseCase) Execute(ctx context.Context) ([]domain.Property, error) {
	all, err := uc.catalog.List(ctx)
	if err != nil {
		contextkeys.LoggerFromContext(ctx).Error("Catalog returned an error", err, port.Fields{"use_case": "GetFeatured"})
		return nil, err
	}
	return domain.SelectFeatured(all), nil
}

// MoveCarouselUseCase переключает слайд карусели. Состояния на сервере нет:
// текущий индекс присылает клиент.
type MoveCarouselUseCase struct {
	catalog port.PropertyCatalogPort
}

func NewMoveCarouselUseCase(catalog port.PropertyCatalogPort) *MoveCarouselUseCase {
	return &MoveCarouselUseCase{catalog: catalog}
}

func (uc *MoveCarouselUseCase) Execute(ctx context.Context, index int, direction domain.CarouselDirection) (*domain.CarouselSlide, error) {
	ucLogger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"use_case":  "MoveCarousel",
		"index":     index,
		"direction": direction,
	})

	all, err := uc.catalog.List(ctx)
	if err != nil {
		ucLogger.Error("Catalog returned an error", err, nil)
		return nil, err
	}

	featured := domain.SelectFeatured(all)
	if len(featured) == 0 {
		ucLogger.Warn("No featured properties to show", nil)
		return nil, domain.ErrNoFeatured
	}

	next := domain.StepCarousel(index, len(featured), direction)
	return &domain.CarouselSlide{
		Index:    next,
		Total:    len(featured),
		Property: featured[next],
	}, nil
}
