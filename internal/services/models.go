package services

import "github.com/HealHub-Care/hospital-service/internal/doctors"

// ServiceEntry is one entry in the hospital services catalog. The catalog
// is maintained in code: it changes with the hospital's offering, not with
// user activity, and ships with the release.
type ServiceEntry struct {
	Slug        string `json:"slug"`
	Name        string `json:"name"`
	Specialty   string `json:"specialty"`
	Description string `json:"description"`
}

// ServiceListResponse wraps the catalog
type ServiceListResponse struct {
	Success  bool           `json:"success"`
	Services []ServiceEntry `json:"services"`
}

// ServiceDetailResponse is a catalog entry with its practicing doctors
type ServiceDetailResponse struct {
	Success bool                     `json:"success"`
	Service ServiceEntry             `json:"service"`
	Doctors []doctors.DoctorResponse `json:"doctors"`
}
