package usecase

import (
	"context"
	"testing"

	"listings-service/internal/core/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int { return &v }

func TestFindProperties_PriceRangeAndType(t *testing.T) {
	uc := NewFindPropertiesUseCase(sampleCatalog())

	got, err := uc.Execute(context.Background(), domain.PropertyFilter{
		Type:     domain.PropertyTypeApartment,
		MinPrice: intPtr(1000),
		MaxPrice: intPtr(1500),
	})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "downtown", got[0].Slug)
}

func TestGetPropertyDetails_NotFound(t *testing.T) {
	uc := NewGetPropertyDetailsUseCase(sampleCatalog())

	_, err := uc.Execute(context.Background(), "missing")
	assert.ErrorIs(t, err, domain.ErrPropertyNotFound)

	p, err := uc.Execute(context.Background(), "3")
	require.NoError(t, err)
	assert.Equal(t, "duplex", p.Slug)
}

func TestGetGallery_RoomFilterAndIndexReset(t *testing.T) {
	uc := NewGetGalleryUseCase(sampleCatalog())

	g, err := uc.Execute(context.Background(), "family-home", domain.RoomTypeExterior, 5)
	require.NoError(t, err)
	assert.Len(t, g.Images, 2)
	assert.Equal(t, 0, g.Index)
	assert.Equal(t, []domain.RoomType{domain.RoomTypeExterior, domain.RoomTypeKitchen}, g.Rooms)

	g, err = uc.Execute(context.Background(), "family-home", "all", 2)
	require.NoError(t, err)
	assert.Len(t, g.Images, 3)
	assert.Equal(t, 2, g.Index)
	assert.Equal(t, domain.RoomType(""), g.Room)
}

func TestGetFilterOptions(t *testing.T) {
	uc := NewGetFilterOptionsUseCase(sampleCatalog())

	opts, err := uc.Execute(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 5, opts.TotalCount)
	assert.Equal(t, 4, opts.AvailableCount)
	assert.Equal(t, &domain.RangeResult{Min: 750, Max: 2400}, opts.Price)
	assert.Equal(t, []int{0, 2, 3, 4}, opts.Bedrooms)
	assert.Equal(t, []domain.TypeOption{
		{Type: domain.PropertyTypeHouse, Count: 2},
		{Type: domain.PropertyTypeApartment, Count: 2},
		{Type: domain.PropertyTypeDuplex, Count: 1},
	}, opts.Types)
}

func TestFeaturedAndCarousel(t *testing.T) {
	catalog := sampleCatalog()

	featured, err := NewGetFeaturedUseCase(catalog).Execute(context.Background())
	require.NoError(t, err)
	// недоступный townhouse не попадает в карусель
	require.Len(t, featured, 2)
	assert.Equal(t, "downtown", featured[0].Slug)
	assert.Equal(t, "studio", featured[1].Slug)

	carousel := NewMoveCarouselUseCase(catalog)
	slide, err := carousel.Execute(context.Background(), 1, domain.CarouselNext)
	require.NoError(t, err)
	assert.Equal(t, 0, slide.Index)
	assert.Equal(t, "downtown", slide.Property.Slug)

	slide, err = carousel.Execute(context.Background(), 0, domain.CarouselPrev)
	require.NoError(t, err)
	assert.Equal(t, 1, slide.Index)
	assert.Equal(t, 2, slide.Total)
}

func TestCarousel_NoFeatured(t *testing.T) {
	catalog := &fakeCatalog{properties: []domain.Property{{ID: "1", Slug: "x", Available: false}}}

	_, err := NewMoveCarouselUseCase(catalog).Execute(context.Background(), 0, domain.CarouselNext)
	assert.ErrorIs(t, err, domain.ErrNoFeatured)
}
