package port

import (
	"context"
	"listings-service/internal/core/domain"
)

// PropertyCatalogPort - источник объектов аренды. Каталог неизменяем после
// загрузки, поэтому реализации отдают копии.
type PropertyCatalogPort interface {
	// List возвращает все объекты в порядке каталога.
	List(ctx context.Context) ([]domain.Property, error)
	// GetByRef ищет объект по slug или id. Возвращает domain.ErrPropertyNotFound.
	GetByRef(ctx context.Context, ref string) (*domain.Property, error)
}
