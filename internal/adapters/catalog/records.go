package catalog

import (
	"fmt"
	"listings-service/internal/core/domain"
	"strings"
	"time"

	"github.com/mmcloughlin/geohash"
)

// Точность geohash: ячейка ~150м, достаточно для кластеров на карте.
const geohashPrecision = 7

const availableDateLayout = "2006-01-02"

type catalogFile struct {
	Properties []propertyRecord `yaml:"properties"`
}

type imageRecord struct {
	URL     string `yaml:"url"`
	Caption string `yaml:"caption"`
	Room    string `yaml:"room"`
}

type locationRecord struct {
	Lat float64 `yaml:"lat"`
	Lng float64 `yaml:"lng"`
}

// propertyRecord - объект в том виде, в каком он лежит в YAML-файле.
type propertyRecord struct {
	ID             string          `yaml:"id"`
	Slug           string          `yaml:"slug"`
	Title          string          `yaml:"title"`
	Type           string          `yaml:"type"`
	Address        string          `yaml:"address"`
	City           string          `yaml:"city"`
	State          string          `yaml:"state"`
	ZipCode        string          `yaml:"zipCode"`
	Price          int             `yaml:"price"`
	Deposit        int             `yaml:"deposit"`
	ApplicationFee int             `yaml:"applicationFee"`
	Bedrooms       int             `yaml:"bedrooms"`
	Bathrooms      float64         `yaml:"bathrooms"`
	SquareFeet     int             `yaml:"squareFeet"`
	Description    string          `yaml:"description"`
	Features       []string        `yaml:"features"`
	Images         []imageRecord   `yaml:"images"`
	Available      bool            `yaml:"available"`
	AvailableDate  string          `yaml:"availableDate"`
	PetFriendly    bool            `yaml:"petFriendly"`
	PetDeposit     *int            `yaml:"petDeposit"`
	PetRent        *int            `yaml:"petRent"`
	Parking        string          `yaml:"parking"`
	Laundry        string          `yaml:"laundry"`
	YearBuilt      *int            `yaml:"yearBuilt"`
	Utilities      []string        `yaml:"utilities"`
	LeaseTerms     []string        `yaml:"leaseTerms"`
	Featured       bool            `yaml:"featured"`
	Location       *locationRecord `yaml:"location"`
}

func (r propertyRecord) toDomain() (domain.Property, error) {
	p := domain.Property{
		ID:             strings.TrimSpace(r.ID),
		Slug:           strings.TrimSpace(r.Slug),
		Title:          r.Title,
		Type:           domain.PropertyType(r.Type),
		Address:        r.Address,
		City:           r.City,
		State:          r.State,
		ZipCode:        r.ZipCode,
		Price:          r.Price,
		Deposit:        r.Deposit,
		ApplicationFee: r.ApplicationFee,
		Bedrooms:       r.Bedrooms,
		Bathrooms:      r.Bathrooms,
		SquareFeet:     r.SquareFeet,
		Description:    r.Description,
		Features:       nonNil(r.Features),
		Images:         make([]domain.PropertyImage, 0, len(r.Images)),
		Available:      r.Available,
		PetFriendly:    r.PetFriendly,
		PetDeposit:     r.PetDeposit,
		PetRent:        r.PetRent,
		Parking:        r.Parking,
		Laundry:        r.Laundry,
		YearBuilt:      r.YearBuilt,
		Utilities:      nonNil(r.Utilities),
		LeaseTerms:     nonNil(r.LeaseTerms),
		Featured:       r.Featured,
	}

	// slug необязателен в файле, по умолчанию совпадает с id
	if p.Slug == "" {
		p.Slug = p.ID
	}

	for _, img := range r.Images {
		room := domain.RoomType(img.Room)
		if room == "" {
			room = domain.RoomTypeOther
		}
		p.Images = append(p.Images, domain.PropertyImage{URL: img.URL, Caption: img.Caption, Room: room})
	}

	if r.AvailableDate != "" {
		date, err := time.Parse(availableDateLayout, r.AvailableDate)
		if err != nil {
			return domain.Property{}, fmt.Errorf("property %s: invalid availableDate %q: %w", p.ID, r.AvailableDate, err)
		}
		p.AvailableDate = &date
	}

	if r.Location != nil {
		if r.Location.Lat < -90 || r.Location.Lat > 90 || r.Location.Lng < -180 || r.Location.Lng > 180 {
			return domain.Property{}, fmt.Errorf("property %s: location out of range", p.ID)
		}
		p.Location = &domain.GeoPoint{Lat: r.Location.Lat, Lng: r.Location.Lng}
		p.Geohash = geohash.EncodeWithPrecision(r.Location.Lat, r.Location.Lng, geohashPrecision)
	}

	return p, nil
}

func nonNil(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}
