package domain

// DefaultFeaturedCount - сколько доступных объектов показывать в карусели,
// если ни один не отмечен как избранный.
const DefaultFeaturedCount = 3

// SelectFeatured отбирает объекты для карусели на главной странице.
func SelectFeatured(properties []Property) []Property {
	featured := make([]Property, 0)
	for _, p := range properties {
		if p.Featured && p.Available {
			featured = append(featured, p)
		}
	}
	if len(featured) > 0 {
		return featured
	}

	for _, p := range properties {
		if p.Available {
			featured = append(featured, p)
			if len(featured) >= DefaultFeaturedCount {
				break
			}
		}
	}
	return featured
}

type CarouselDirection string

const (
	CarouselNext CarouselDirection = "next"
	CarouselPrev CarouselDirection = "prev"
)

// CarouselSlide - текущий слайд карусели.
type CarouselSlide struct {
	Index    int
	Total    int
	Property Property
}

// StepCarousel вычисляет следующий индекс по кругу. Индекс вне диапазона
// сначала нормализуется по модулю.
func StepCarousel(current, total int, direction CarouselDirection) int {
	if total <= 0 {
		return 0
	}
	current = ((current % total) + total) % total
	switch direction {
	case CarouselPrev:
		return (current - 1 + total) % total
	case CarouselNext:
		return (current + 1) % total
	default:
		return current
	}
}

// Gallery - фотографии объекта с выбранным фильтром по помещению.
type Gallery struct {
	PropertySlug  string
	PropertyTitle string
	Room          RoomType
	Images        []PropertyImage
	Index         int
	Rooms         []RoomType
}
