package analytics

import "github.com/HealHub-Care/hospital-service/internal/enquiries"

// OverviewResponse backs the admin dashboard landing view
type OverviewResponse struct {
	Success           bool                        `json:"success"`
	TotalDoctors      int                         `json:"total_doctors"`
	TotalAppointments int                         `json:"total_appointments"`
	TotalEnquiries    int                         `json:"total_enquiries"`
	RecentEnquiries   []enquiries.EnquiryResponse `json:"recent_enquiries"`
}

// AppointmentAnalyticsResponse backs the appointment charts
type AppointmentAnalyticsResponse struct {
	Success         bool        `json:"success"`
	StatusBreakdown []NameValue `json:"status_breakdown"`
	BookingsByDate  []DatePoint `json:"bookings_by_date"`
	TopSpecialties  []NameValue `json:"top_specialties"`
}

// DoctorAnalyticsResponse backs the doctor charts
type DoctorAnalyticsResponse struct {
	Success            bool        `json:"success"`
	SpecialtyBreakdown []NameValue `json:"specialty_breakdown"`
	TotalDoctors       int         `json:"total_doctors"`
}
