package domain

// PropertyFilter - состояние фильтра каталога. nil/пустое значение означает,
// что условие не задано.
type PropertyFilter struct {
	Type          PropertyType `json:"type,omitempty"`
	MinPrice      *int         `json:"minPrice,omitempty"`
	MaxPrice      *int         `json:"maxPrice,omitempty"`
	MinBedrooms   *int         `json:"minBedrooms,omitempty"`
	OnlyAvailable bool         `json:"onlyAvailable,omitempty"`
}

// Matches проверяет объект по всем заданным условиям. Границы цены включительные.
func (f PropertyFilter) Matches(p Property) bool {
	if f.Type != "" && p.Type != f.Type {
		return false
	}
	if f.MinPrice != nil && p.Price < *f.MinPrice {
		return false
	}
	if f.MaxPrice != nil && p.Price > *f.MaxPrice {
		return false
	}
	if f.MinBedrooms != nil && p.Bedrooms < *f.MinBedrooms {
		return false
	}
	if f.OnlyAvailable && !p.Available {
		return false
	}
	return true
}

// FilterProperties возвращает подмножество объектов, сохраняя исходный порядок.
// Входной срез не изменяется.
func FilterProperties(properties []Property, f PropertyFilter) []Property {
	filtered := make([]Property, 0, len(properties))
	for _, p := range properties {
		if f.Matches(p) {
			filtered = append(filtered, p)
		}
	}
	return filtered
}

// RangeResult - диапазон значений для опций фильтра.
type RangeResult struct {
	Min int
	Max int
}

type TypeOption struct {
	Type  PropertyType
	Count int
}

// FilterOptionsResult - значения, которые клиент может подставить в фильтр.
type FilterOptionsResult struct {
	Types          []TypeOption
	Price          *RangeResult
	Bedrooms       []int
	TotalCount     int
	AvailableCount int
}
