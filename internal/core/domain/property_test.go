package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBedroomText(t *testing.T) {
	assert.Equal(t, "Studio", (&Property{Bedrooms: 0}).BedroomText())
	assert.Equal(t, "1 Bed", BedroomText(1))
	assert.Equal(t, "4 Beds", BedroomText(4))
	assert.Equal(t, "12 Beds", BedroomText(12))
}

func TestBathroomText(t *testing.T) {
	assert.Equal(t, "1 Bath", BathroomText(1))
	assert.Equal(t, "2 Baths", BathroomText(2))
	assert.Equal(t, "2.5 Baths", BathroomText(2.5))
	assert.Equal(t, "1.5 Baths", (&Property{Bathrooms: 1.5}).BathroomText())
}

func TestLabels(t *testing.T) {
	assert.Equal(t, "Apartment", PropertyTypeApartment.Label())
	assert.Equal(t, "Townhome", PropertyType("townhome").Label())
	assert.True(t, PropertyTypeDuplex.IsValid())
	assert.False(t, PropertyType("castle").IsValid())

	assert.Equal(t, "Living Room", RoomTypeLiving.Label())
	assert.Equal(t, "Backyard", RoomTypeBackyard.Label())
	assert.Equal(t, "Kitchen", RoomTypeKitchen.Label())

	assert.Equal(t, "Schedule Viewing", InquiryTypeViewing.Label())
	assert.Equal(t, "General", InquiryType("").Label())
}

func TestFormatting(t *testing.T) {
	assert.Equal(t, "$1,850", FormatPrice(1850))
	assert.Equal(t, "$750", FormatPrice(750))
	assert.Equal(t, "$12,500", FormatPrice(12500))

	p := Property{Address: "123 Oak Street", City: "Springfield", State: "IL", ZipCode: "62701"}
	assert.Equal(t, "123 Oak Street, Springfield, IL 62701", p.FullAddress())
}

func TestVisibleAvailableDate(t *testing.T) {
	date := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)

	available := Property{Available: true, AvailableDate: &date}
	assert.Equal(t, &date, available.VisibleAvailableDate())

	rented := Property{Available: false, AvailableDate: &date}
	assert.Nil(t, rented.VisibleAvailableDate())
}

func TestGalleryHelpers(t *testing.T) {
	p := Property{Images: []PropertyImage{
		{URL: "1", Room: RoomTypeExterior},
		{URL: "2", Room: RoomTypeKitchen},
		{URL: "3", Room: RoomTypeExterior},
		{URL: "4", Room: RoomTypeBedroom},
	}}

	assert.Equal(t, "1", p.FirstImage().URL)
	assert.Len(t, p.ImagesByRoom(RoomTypeExterior), 2)
	assert.Empty(t, p.ImagesByRoom(RoomTypeGarage))
	assert.Equal(t, []RoomType{RoomTypeExterior, RoomTypeKitchen, RoomTypeBedroom}, p.UniqueRooms())
	assert.Nil(t, (&Property{}).FirstImage())
}

func TestStepCarousel(t *testing.T) {
	assert.Equal(t, 1, StepCarousel(0, 3, CarouselNext))
	assert.Equal(t, 0, StepCarousel(2, 3, CarouselNext))
	assert.Equal(t, 2, StepCarousel(0, 3, CarouselPrev))
	// индекс вне диапазона сначала приводится по модулю
	assert.Equal(t, 0, StepCarousel(7, 3, CarouselPrev))
	assert.Equal(t, 2, StepCarousel(4, 3, CarouselNext))
	assert.Equal(t, 0, StepCarousel(-1, 3, CarouselNext))
	assert.Equal(t, 0, StepCarousel(5, 0, CarouselNext))
}

func TestSelectFeatured_FallsBackToFirstAvailable(t *testing.T) {
	props := []Property{
		{ID: "1", Available: false},
		{ID: "2", Available: true},
		{ID: "3", Available: true},
		{ID: "4", Available: true},
		{ID: "5", Available: true},
	}
	got := SelectFeatured(props)
	assert.Equal(t, []string{"2", "3", "4"}, ids(got))

	props[4].Featured = true
	assert.Equal(t, []string{"5"}, ids(SelectFeatured(props)))
}
