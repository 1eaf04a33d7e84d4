package usecase

import (
	"context"
	"listings-service/internal/contextkeys"
	"listings-service/internal/core/domain"
	"listings-service/internal/core/port"
)

type GetGalleryUseCase struct {
	catalog port.PropertyCatalogPort
}

func NewGetGalleryUseCase(catalog port.PropertyCatalogPort) *GetGalleryUseCase {
	return &GetGalleryUseCase{catalog: catalog}
}

// Execute возвращает фотографии объекта. Пустой room или "all" - все фотографии.
// Индекс за пределами выборки сбрасывается на первую фотографию.
func (uc *GetGalleryUseCase) Execute(ctx context.Context, ref string, room domain.RoomType, index int) (*domain.Gallery, error) {
	ucLogger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"use_case":     "GetGallery",
		"property_ref": ref,
		"room":         room,
	})

	property, err := uc.catalog.GetByRef(ctx, ref)
	if err != nil {
		ucLogger.Warn("Failed to load property for gallery", port.Fields{"error": err.Error()})
		return nil, err
	}

	images := property.Images
	if room == "all" {
		room = ""
	}
	if room != "" {
		images = property.ImagesByRoom(room)
	}

	if index < 0 || index >= len(images) {
		index = 0
	}

	return &domain.Gallery{
		PropertySlug:  property.Slug,
		PropertyTitle: property.Title,
		Room:          room,
		Images:        images,
		Index:         index,
		Rooms:         property.UniqueRooms(),
	}, nil
}
