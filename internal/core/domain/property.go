package domain

import (
	"strconv"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// PropertyType - категория объекта аренды.
type PropertyType string

const (
	PropertyTypeHouse     PropertyType = "house"
	PropertyTypeApartment PropertyType = "apartment"
	PropertyTypeDuplex    PropertyType = "duplex"
)

// PropertyTypes перечисляет все поддерживаемые категории в порядке отображения.
var PropertyTypes = []PropertyType{PropertyTypeHouse, PropertyTypeApartment, PropertyTypeDuplex}

// IsValid проверяет, что категория входит в список поддерживаемых.
func (t PropertyType) IsValid() bool {
	for _, known := range PropertyTypes {
		if t == known {
			return true
		}
	}
	return false
}

// Label возвращает название категории для отображения.
func (t PropertyType) Label() string {
	switch t {
	case PropertyTypeHouse:
		return "House"
	case PropertyTypeApartment:
		return "Apartment"
	case PropertyTypeDuplex:
		return "Duplex"
	default:
		return cases.Title(language.English).String(string(t))
	}
}

// RoomType - тег помещения, к которому относится фотография.
type RoomType string

const (
	RoomTypeExterior RoomType = "exterior"
	RoomTypeLiving   RoomType = "living"
	RoomTypeKitchen  RoomType = "kitchen"
	RoomTypeBedroom  RoomType = "bedroom"
	RoomTypeBathroom RoomType = "bathroom"
	RoomTypeDining   RoomType = "dining"
	RoomTypeBackyard RoomType = "backyard"
	RoomTypeGarage   RoomType = "garage"
	RoomTypeOther    RoomType = "other"
)

// Label возвращает название помещения для галереи.
func (r RoomType) Label() string {
	switch r {
	case RoomTypeLiving:
		return "Living Room"
	case RoomTypeDining:
		return "Dining Room"
	case "":
		return "Other"
	default:
		return cases.Title(language.English).String(string(r))
	}
}

type PropertyImage struct {
	URL     string
	Caption string
	Room    RoomType
}

// GeoPoint - координаты объекта, если они известны.
type GeoPoint struct {
	Lat float64
	Lng float64
}

// Property - объект аренды из каталога.
type Property struct {
	ID             string
	Slug           string
	Title          string
	Type           PropertyType
	Address        string
	City           string
	State          string
	ZipCode        string
	Price          int
	Deposit        int
	ApplicationFee int
	Bedrooms       int
	Bathrooms      float64
	SquareFeet     int
	Description    string
	Features       []string
	Images         []PropertyImage

	Available     bool
	AvailableDate *time.Time

	PetFriendly bool
	PetDeposit  *int
	PetRent     *int

	Parking    string
	Laundry    string
	YearBuilt  *int
	Utilities  []string
	LeaseTerms []string
	Featured   bool

	Location *GeoPoint
	Geohash  string
}

// BedroomText возвращает подпись количества спален. 0 спален - это студия.
func (p *Property) BedroomText() string {
	return BedroomText(p.Bedrooms)
}

// BathroomText возвращает подпись количества санузлов, поддерживая половинные.
func (p *Property) BathroomText() string {
	return BathroomText(p.Bathrooms)
}

func BedroomText(bedrooms int) string {
	switch bedrooms {
	case 0:
		return "Studio"
	case 1:
		return "1 Bed"
	default:
		return strconv.Itoa(bedrooms) + " Beds"
	}
}

func BathroomText(bathrooms float64) string {
	if bathrooms == 1 {
		return "1 Bath"
	}
	return strconv.FormatFloat(bathrooms, 'f', -1, 64) + " Baths"
}

// FullAddress собирает адрес в одну строку.
func (p *Property) FullAddress() string {
	return FormatAddress(p.Address, p.City, p.State, p.ZipCode)
}

// VisibleAvailableDate возвращает дату заселения только для доступных объектов.
func (p *Property) VisibleAvailableDate() *time.Time {
	if !p.Available {
		return nil
	}
	return p.AvailableDate
}

func (p *Property) FirstImage() *PropertyImage {
	if len(p.Images) > 0 {
		return &p.Images[0]
	}
	return nil
}

// ImagesByRoom возвращает фотографии одного помещения в исходном порядке.
func (p *Property) ImagesByRoom(room RoomType) []PropertyImage {
	images := make([]PropertyImage, 0)
	for _, img := range p.Images {
		if img.Room == room {
			images = append(images, img)
		}
	}
	return images
}

// UniqueRooms возвращает помещения в порядке первого появления в галерее.
func (p *Property) UniqueRooms() []RoomType {
	seen := make(map[RoomType]bool)
	var rooms []RoomType
	for _, img := range p.Images {
		if !seen[img.Room] {
			seen[img.Room] = true
			rooms = append(rooms, img.Room)
		}
	}
	return rooms
}
