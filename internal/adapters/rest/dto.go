package rest

import (
	"listings-service/internal/core/domain"
)

const dateLayout = "2006-01-02"

type ImageResponse struct {
	URL       string `json:"url"`
	Caption   string `json:"caption"`
	Room      string `json:"room"`
	RoomLabel string `json:"roomLabel"`
}

type LocationResponse struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// PropertyResponse - объект каталога вместе с готовыми подписями для клиента.
type PropertyResponse struct {
	ID             string            `json:"id"`
	Slug           string            `json:"slug"`
	Title          string            `json:"title"`
	Type           string            `json:"type"`
	TypeLabel      string            `json:"typeLabel"`
	Address        string            `json:"address"`
	City           string            `json:"city"`
	State          string            `json:"state"`
	ZipCode        string            `json:"zipCode"`
	FullAddress    string            `json:"fullAddress"`
	Price          int               `json:"price"`
	PriceText      string            `json:"priceText"`
	Deposit        int               `json:"deposit"`
	ApplicationFee int               `json:"applicationFee"`
	Bedrooms       int               `json:"bedrooms"`
	BedroomText    string            `json:"bedroomText"`
	Bathrooms      float64           `json:"bathrooms"`
	BathroomText   string            `json:"bathroomText"`
	SquareFeet     int               `json:"squareFeet"`
	Description    string            `json:"description"`
	Features       []string          `json:"features"`
	Images         []ImageResponse   `json:"images"`
	Available      bool              `json:"available"`
	AvailableDate  string            `json:"availableDate,omitempty"`
	PetFriendly    bool              `json:"petFriendly"`
	PetDeposit     *int              `json:"petDeposit,omitempty"`
	PetRent        *int              `json:"petRent,omitempty"`
	Parking        string            `json:"parking"`
	Laundry        string            `json:"laundry"`
	YearBuilt      *int              `json:"yearBuilt,omitempty"`
	Utilities      []string          `json:"utilities"`
	LeaseTerms     []string          `json:"leaseTerms"`
	Featured       bool              `json:"featured"`
	Location       *LocationResponse `json:"location,omitempty"`
	Geohash        string            `json:"geohash,omitempty"`
}

type PropertyListResponse struct {
	Properties []PropertyResponse    `json:"properties"`
	Count      int                   `json:"count"`
	Filter     domain.PropertyFilter `json:"filter"`
}

type TypeOptionResponse struct {
	Value string `json:"value"`
	Label string `json:"label"`
	Count int    `json:"count"`
}

type BedroomOptionResponse struct {
	Value int    `json:"value"`
	Label string `json:"label"`
}

type RangeResponse struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

type FilterOptionsResponse struct {
	Types          []TypeOptionResponse    `json:"types"`
	Price          *RangeResponse          `json:"price,omitempty"`
	Bedrooms       []BedroomOptionResponse `json:"bedrooms"`
	TotalCount     int                     `json:"totalCount"`
	AvailableCount int                     `json:"availableCount"`
}

type RoomOptionResponse struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

type GalleryResponse struct {
	PropertySlug  string               `json:"propertySlug"`
	PropertyTitle string               `json:"propertyTitle"`
	Room          string               `json:"room"`
	Images        []ImageResponse      `json:"images"`
	Index         int                  `json:"index"`
	Total         int                  `json:"total"`
	Rooms         []RoomOptionResponse `json:"rooms"`
}

type FeaturedResponse struct {
	Properties []PropertyResponse `json:"properties"`
	Count      int                `json:"count"`
}

type CarouselResponse struct {
	Index    int              `json:"index"`
	Total    int              `json:"total"`
	Property PropertyResponse `json:"property"`
}

// InquiryRequest - тело POST /api/contact.
type InquiryRequest struct {
	Name             string `json:"name"`
	Email            string `json:"email"`
	Phone            string `json:"phone"`
	InquiryType      string `json:"inquiryType"`
	PropertyInterest string `json:"propertyInterest"`
	PreferredDate    string `json:"preferredDate"`
	PreferredTime    string `json:"preferredTime"`
	Message          string `json:"message"`
}

// NewsletterRequest - тело POST /api/email-capture.
type NewsletterRequest struct {
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
}

// FormResponse - ответ форм: клиент показывает message пользователю.
type FormResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type AuthConfigResponse struct {
	Enabled        bool   `json:"enabled"`
	PublishableKey string `json:"publishableKey,omitempty"`
	SignInURL      string `json:"signInUrl"`
	SignUpURL      string `json:"signUpUrl"`
}

type SessionResponse struct {
	Authenticated bool   `json:"authenticated"`
	UserID        string `json:"userId,omitempty"`
}

type DashboardResponse struct {
	UserID    string `json:"userId"`
	Email     string `json:"email,omitempty"`
	SessionID string `json:"sessionId,omitempty"`
}

type HealthResponse struct {
	Status  string `json:"status"`
	Mailer  bool   `json:"mailer"`
	Auth    bool   `json:"auth"`
	Catalog int    `json:"catalog"`
}

func toImageResponses(images []domain.PropertyImage) []ImageResponse {
	out := make([]ImageResponse, 0, len(images))
	for _, img := range images {
		out = append(out, ImageResponse{
			URL:       img.URL,
			Caption:   img.Caption,
			Room:      string(img.Room),
			RoomLabel: img.Room.Label(),
		})
	}
	return out
}

func emptyIfNil(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}

func toPropertyResponse(p domain.Property) PropertyResponse {
	resp := PropertyResponse{
		ID:             p.ID,
		Slug:           p.Slug,
		Title:          p.Title,
		Type:           string(p.Type),
		TypeLabel:      p.Type.Label(),
		Address:        p.Address,
		City:           p.City,
		State:          p.State,
		ZipCode:        p.ZipCode,
		FullAddress:    p.FullAddress(),
		Price:          p.Price,
		PriceText:      domain.FormatPrice(p.Price),
		Deposit:        p.Deposit,
		ApplicationFee: p.ApplicationFee,
		Bedrooms:       p.Bedrooms,
		BedroomText:    p.BedroomText(),
		Bathrooms:      p.Bathrooms,
		BathroomText:   p.BathroomText(),
		SquareFeet:     p.SquareFeet,
		Description:    p.Description,
		Features:       emptyIfNil(p.Features),
		Images:         toImageResponses(p.Images),
		Available:      p.Available,
		PetFriendly:    p.PetFriendly,
		PetDeposit:     p.PetDeposit,
		PetRent:        p.PetRent,
		Parking:        p.Parking,
		Laundry:        p.Laundry,
		YearBuilt:      p.YearBuilt,
		Utilities:      emptyIfNil(p.Utilities),
		LeaseTerms:     emptyIfNil(p.LeaseTerms),
		Featured:       p.Featured,
		Geohash:        p.Geohash,
	}

	// у сданного объекта дату заселения не показываем
	if date := p.VisibleAvailableDate(); date != nil {
		resp.AvailableDate = date.Format(dateLayout)
	}
	if p.Location != nil {
		resp.Location = &LocationResponse{Lat: p.Location.Lat, Lng: p.Location.Lng}
	}
	return resp
}

func toPropertyResponses(properties []domain.Property) []PropertyResponse {
	out := make([]PropertyResponse, 0, len(properties))
	for _, p := range properties {
		out = append(out, toPropertyResponse(p))
	}
	return out
}

func toFilterOptionsResponse(opts *domain.FilterOptionsResult) FilterOptionsResponse {
	resp := FilterOptionsResponse{
		Types:          make([]TypeOptionResponse, 0, len(opts.Types)),
		Bedrooms:       make([]BedroomOptionResponse, 0, len(opts.Bedrooms)),
		TotalCount:     opts.TotalCount,
		AvailableCount: opts.AvailableCount,
	}
	for _, t := range opts.Types {
		resp.Types = append(resp.Types, TypeOptionResponse{Value: string(t.Type), Label: t.Type.Label(), Count: t.Count})
	}
	for _, b := range opts.Bedrooms {
		resp.Bedrooms = append(resp.Bedrooms, BedroomOptionResponse{Value: b, Label: domain.BedroomText(b)})
	}
	if opts.Price != nil {
		resp.Price = &RangeResponse{Min: opts.Price.Min, Max: opts.Price.Max}
	}
	return resp
}

func toGalleryResponse(g *domain.Gallery) GalleryResponse {
	room := string(g.Room)
	if room == "" {
		room = "all"
	}
	resp := GalleryResponse{
		PropertySlug:  g.PropertySlug,
		PropertyTitle: g.PropertyTitle,
		Room:          room,
		Images:        toImageResponses(g.Images),
		Index:         g.Index,
		Total:         len(g.Images),
		Rooms:         make([]RoomOptionResponse, 0, len(g.Rooms)),
	}
	for _, r := range g.Rooms {
		resp.Rooms = append(resp.Rooms, RoomOptionResponse{Value: string(r), Label: r.Label()})
	}
	return resp
}

func (r InquiryRequest) toDomain() domain.Inquiry {
	return domain.Inquiry{
		Name:             r.Name,
		Email:            r.Email,
		Phone:            r.Phone,
		InquiryType:      domain.InquiryType(r.InquiryType),
		PropertyInterest: r.PropertyInterest,
		PreferredDate:    r.PreferredDate,
		PreferredTime:    r.PreferredTime,
		Message:          r.Message,
	}
}

func (r NewsletterRequest) toDomain() domain.Subscriber {
	return domain.Subscriber{Email: r.Email, FirstName: r.FirstName}
}
