package list_facilities

import "github.com/GritX-web/GritX/internal/domain"

// FacilityResponse HTTP модель площадки
type FacilityResponse struct {
	ID          int64    `json:"id"`
	Slug        string   `json:"slug"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	ImageURL    string   `json:"imageUrl"`
	Capacity    int      `json:"capacity"`
	HourlyRate  float64  `json:"hourlyRate"`
	Features    []string `json:"features"`
}

// FacilityListResponse список площадок
type FacilityListResponse struct {
	Facilities []*FacilityResponse `json:"facilities"`
	Total      int                 `json:"total"`
}

// FromDomain конвертирует domain модель в HTTP response
func FromDomain(facility *domain.Facility) *FacilityResponse {
	return &FacilityResponse{
		ID:          facility.ID,
		Slug:        facility.Slug,
		Name:        facility.Name,
		Description: facility.Description,
		ImageURL:    facility.ImageURL,
		Capacity:    facility.Capacity,
		HourlyRate:  facility.HourlyRate,
		Features:    facility.Features,
	}
}
