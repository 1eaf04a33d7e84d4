package rest

import (
	"errors"
	"listings-service/internal/core/domain"
	usecases_port "listings-service/internal/core/port/usecases_port"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
)

type PropertiesHandler struct {
	findPropertiesUC   usecases_port.FindPropertiesUseCase
	getDetailsUC       usecases_port.GetPropertyDetailsUseCase
	getGalleryUC       usecases_port.GetGalleryUseCase
	getFilterOptionsUC usecases_port.GetFilterOptionsUseCase
	getFeaturedUC      usecases_port.GetFeaturedUseCase
	moveCarouselUC     usecases_port.MoveCarouselUseCase
}

func NewPropertiesHandler(
	findPropertiesUC usecases_port.FindPropertiesUseCase,
	getDetailsUC usecases_port.GetPropertyDetailsUseCase,
	getGalleryUC usecases_port.GetGalleryUseCase,
	getFilterOptionsUC usecases_port.GetFilterOptionsUseCase,
	getFeaturedUC usecases_port.GetFeaturedUseCase,
	moveCarouselUC usecases_port.MoveCarouselUseCase,
) *PropertiesHandler {
	return &PropertiesHandler{
		findPropertiesUC:   findPropertiesUC,
		getDetailsUC:       getDetailsUC,
		getGalleryUC:       getGalleryUC,
		getFilterOptionsUC: getFilterOptionsUC,
		getFeaturedUC:      getFeaturedUC,
		moveCarouselUC:     moveCarouselUC,
	}
}

// filterFromQuery собирает фильтр из query-параметров type, minPrice, maxPrice,
// bedrooms и available.
func filterFromQuery(r *http.Request) domain.PropertyFilter {
	return domain.PropertyFilter{
		Type:          domain.PropertyType(strings.TrimSpace(r.URL.Query().Get("type"))),
		MinPrice:      optionalInt(r, "minPrice"),
		MaxPrice:      optionalInt(r, "maxPrice"),
		MinBedrooms:   optionalInt(r, "bedrooms"),
		OnlyAvailable: boolOrDefault(r, "available", false),
	}
}

func (h *PropertiesHandler) FindProperties(w http.ResponseWriter, r *http.Request) {
	filter := filterFromQuery(r)

	properties, err := h.findPropertiesUC.Execute(r.Context(), filter)
	if err != nil {
		WriteJSONError(w, http.StatusInternalServerError, "Failed to load properties")
		return
	}

	RespondWithJSON(w, http.StatusOK, PropertyListResponse{
		Properties: toPropertyResponses(properties),
		Count:      len(properties),
		Filter:     filter,
	})
}

func (h *PropertiesHandler) GetFilterOptions(w http.ResponseWriter, r *http.Request) {
	options, err := h.getFilterOptionsUC.Execute(r.Context())
	if err != nil {
		WriteJSONError(w, http.StatusInternalServerError, "Failed to get filter options")
		return
	}
	RespondWithJSON(w, http.StatusOK, toFilterOptionsResponse(options))
}

func (h *PropertiesHandler) GetPropertyDetails(w http.ResponseWriter, r *http.Request) {
	ref := chi.URLParam(r, "ref")

	property, err := h.getDetailsUC.Execute(r.Context(), ref)
	if err != nil {
		if errors.Is(err, domain.ErrPropertyNotFound) {
			WriteJSONError(w, http.StatusNotFound, "Property not found")
			return
		}
		WriteJSONError(w, http.StatusInternalServerError, "Failed to load property")
		return
	}

	RespondWithJSON(w, http.StatusOK, toPropertyResponse(*property))
}

func (h *PropertiesHandler) GetGallery(w http.ResponseWriter, r *http.Request) {
	ref := chi.URLParam(r, "ref")
	room := domain.RoomType(strings.TrimSpace(r.URL.Query().Get("room")))
	index := intOrDefault(r, "index", 0)

	gallery, err := h.getGalleryUC.Execute(r.Context(), ref, room, index)
	if err != nil {
		if errors.Is(err, domain.ErrPropertyNotFound) {
			WriteJSONError(w, http.StatusNotFound, "Property not found")
			return
		}
		WriteJSONError(w, http.StatusInternalServerError, "Failed to load gallery")
		return
	}

	RespondWithJSON(w, http.StatusOK, toGalleryResponse(gallery))
}

func (h *PropertiesHandler) GetFeatured(w http.ResponseWriter, r *http.Request) {
	featured, err := h.getFeaturedUC.Execute(r.Context())
	if err != nil {
		WriteJSONError(w, http.StatusInternalServerError, "Failed to load featured properties")
		return
	}
	RespondWithJSON(w, http.StatusOK, FeaturedResponse{
		Properties: toPropertyResponses(featured),
		Count:      len(featured),
	})
}

// MoveCarousel возвращает соседний слайд. Текущий индекс хранит клиент.
func (h *PropertiesHandler) MoveCarousel(w http.ResponseWriter, r *http.Request) {
	direction := domain.CarouselDirection(strings.ToLower(strings.TrimSpace(r.URL.Query().Get("direction"))))
	if direction == "" {
		direction = domain.CarouselNext
	}
	if direction != domain.CarouselNext && direction != domain.CarouselPrev {
		WriteJSONError(w, http.StatusBadRequest, "Direction must be 'next' or 'prev'")
		return
	}
	index := intOrDefault(r, "index", 0)

	slide, err := h.moveCarouselUC.Execute(r.Context(), index, direction)
	if err != nil {
		if errors.Is(err, domain.ErrNoFeatured) {
			WriteJSONError(w, http.StatusNotFound, "No featured properties")
			return
		}
		WriteJSONError(w, http.StatusInternalServerError, "Failed to move carousel")
		return
	}

	RespondWithJSON(w, http.StatusOK, CarouselResponse{
		Index:    slide.Index,
		Total:    slide.Total,
		Property: toPropertyResponse(slide.Property),
	})
}
