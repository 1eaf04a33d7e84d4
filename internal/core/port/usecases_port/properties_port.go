package usecases_port

import (
	"context"
	"listings-service/internal/core/domain"
)

type FindPropertiesUseCase interface {
	Execute(ctx context.Context, filter domain.PropertyFilter) ([]domain.Property, error)
}

type GetPropertyDetailsUseCase interface {
	Execute(ctx context.Context, ref string) (*domain.Property, error)
}

type GetGalleryUseCase interface {
	Execute(ctx context.Context, ref string, room domain.RoomType, index int) (*domain.Gallery, error)
}

type GetFilterOptionsUseCase interface {
	Execute(ctx context.Context) (*domain.FilterOptionsResult, error)
}

type GetFeaturedUseCase interface {
	Execute(ctx context.Context) ([]domain.Property, error)
}

type MoveCarouselUseCase interface {
	Execute(ctx context.Context, index int, direction domain.CarouselDirection) (*domain.CarouselSlide, error)
}
