package catalog

import (
	"bytes"
	"context"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"listings-service/internal/core/domain"
	"os"
	"slices"

	"gopkg.in/yaml.v3"
)

//go:embed data/properties.yaml
var embeddedCatalog []byte

// StaticCatalog - неизменяемый каталог объектов, загруженный при старте.
// Безопасен для конкурентного чтения.
type StaticCatalog struct {
	properties []domain.Property
	byRef      map[string]int
}

// LoadEmbedded загружает каталог, встроенный в бинарник.
func LoadEmbedded() (*StaticCatalog, error) {
	return Load(bytes.NewReader(embeddedCatalog))
}

// LoadFromFile загружает каталог из YAML-файла (CATALOG_PATH).
func LoadFromFile(path string) (*StaticCatalog, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open catalog file %s: %w", path, err)
	}
	defer file.Close()

	return Load(file)
}

// Load разбирает YAML и проверяет инварианты каталога. Любое нарушение - ошибка.
func Load(r io.Reader) (*StaticCatalog, error) {
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)

	var file catalogFile
	if err := decoder.Decode(&file); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("catalog is empty")
		}
		return nil, fmt.Errorf("failed to decode catalog: %w", err)
	}

	properties := make([]domain.Property, 0, len(file.Properties))
	for i, record := range file.Properties {
		p, err := record.toDomain()
		if err != nil {
			return nil, fmt.Errorf("catalog entry #%d: %w", i, err)
		}
		properties = append(properties, p)
	}

	return NewStaticCatalog(properties)
}

// NewStaticCatalog строит каталог из готовых объектов.
func NewStaticCatalog(properties []domain.Property) (*StaticCatalog, error) {
	c := &StaticCatalog{
		properties: make([]domain.Property, 0, len(properties)),
		byRef:      make(map[string]int, len(properties)*2),
	}

	ids := make(map[string]bool, len(properties))
	slugs := make(map[string]bool, len(properties))

	for _, p := range properties {
		if err := validateProperty(p); err != nil {
			return nil, err
		}
		if ids[p.ID] {
			return nil, fmt.Errorf("duplicate property id %q", p.ID)
		}
		if slugs[p.Slug] {
			return nil, fmt.Errorf("duplicate property slug %q", p.Slug)
		}
		ids[p.ID] = true
		slugs[p.Slug] = true

		c.properties = append(c.properties, p)
	}

	// slug имеет приоритет над id, если они совпадают у разных объектов
	for i, p := range c.properties {
		if _, taken := c.byRef[p.ID]; !taken {
			c.byRef[p.ID] = i
		}
	}
	for i, p := range c.properties {
		c.byRef[p.Slug] = i
	}

	return c, nil
}

func validateProperty(p domain.Property) error {
	if p.ID == "" {
		return fmt.Errorf("property without id (slug %q)", p.Slug)
	}
	if !p.Type.IsValid() {
		return fmt.Errorf("property %s: unknown type %q", p.ID, p.Type)
	}
	if p.Price < 0 {
		return fmt.Errorf("property %s: negative price %d", p.ID, p.Price)
	}
	if p.Bedrooms < 0 {
		return fmt.Errorf("property %s: negative bedrooms %d", p.ID, p.Bedrooms)
	}
	if p.Bathrooms < 0 {
		return fmt.Errorf("property %s: negative bathrooms %v", p.ID, p.Bathrooms)
	}
	return nil
}

// List возвращает копию каталога в исходном порядке.
func (c *StaticCatalog) List(ctx context.Context) ([]domain.Property, error) {
	out := make([]domain.Property, len(c.properties))
	for i, p := range c.properties {
		out[i] = cloneProperty(p)
	}
	return out, nil
}

// GetByRef ищет объект по slug или id.
func (c *StaticCatalog) GetByRef(ctx context.Context, ref string) (*domain.Property, error) {
	i, ok := c.byRef[ref]
	if !ok {
		return nil, domain.ErrPropertyNotFound
	}
	p := cloneProperty(c.properties[i])
	return &p, nil
}

// Len - количество объектов в каталоге.
func (c *StaticCatalog) Len() int {
	return len(c.properties)
}

// cloneProperty копирует срезы и указатели, чтобы вызывающий код не мог изменить каталог.
func cloneProperty(p domain.Property) domain.Property {
	p.Features = slices.Clone(p.Features)
	p.Images = slices.Clone(p.Images)
	p.Utilities = slices.Clone(p.Utilities)
	p.LeaseTerms = slices.Clone(p.LeaseTerms)
	p.AvailableDate = clonePtr(p.AvailableDate)
	p.PetDeposit = clonePtr(p.PetDeposit)
	p.PetRent = clonePtr(p.PetRent)
	p.YearBuilt = clonePtr(p.YearBuilt)
	p.Location = clonePtr(p.Location)
	return p
}

func clonePtr[T any](v *T) *T {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}
