package analytics

import (
	"context"
	"fmt"

	"github.com/HealHub-Care/hospital-service/internal/appointments"
	"github.com/HealHub-Care/hospital-service/internal/doctors"
	"github.com/HealHub-Care/hospital-service/internal/enquiries"
)

const (
	recentEnquiryCount = 5
	bookingSeriesDays  = 30
)

// DoctorSource is the slice of the doctors repository analytics reads.
type DoctorSource interface {
	CountDoctors(ctx context.Context) (int, error)
	ListAllDoctors(ctx context.Context) ([]doctors.DoctorResponse, error)
}

// AppointmentSource is the slice of the appointments repository analytics reads.
type AppointmentSource interface {
	CountAppointments(ctx context.Context) (int, error)
	ListAllAppointments(ctx context.Context) ([]appointments.AppointmentResponse, error)
}

// EnquirySource is the slice of the enquiries repository analytics reads.
type EnquirySource interface {
	CountEnquiries(ctx context.Context) (int, error)
	ListRecent(ctx context.Context, n int) ([]enquiries.EnquiryResponse, error)
}

// Service computes the admin dashboard views. Everything here is a read
// followed by a pure fold; no state is kept between requests.
type Service struct {
	doctors      DoctorSource
	appointments AppointmentSource
	enquiries    EnquirySource
}

func NewService(doctorSource DoctorSource, appointmentSource AppointmentSource, enquirySource EnquirySource) *Service {
	return &Service{
		doctors:      doctorSource,
		appointments: appointmentSource,
		enquiries:    enquirySource,
	}
}

// Overview returns the dashboard landing numbers and the latest enquiries.
func (s *Service) Overview(ctx context.Context) (*OverviewResponse, error) {
	totalDoctors, err := s.doctors.CountDoctors(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count doctors: %w", err)
	}

	totalAppointments, err := s.appointments.CountAppointments(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count appointments: %w", err)
	}

	totalEnquiries, err := s.enquiries.CountEnquiries(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count enquiries: %w", err)
	}

	recent, err := s.enquiries.ListRecent(ctx, recentEnquiryCount)
	if err != nil {
		return nil, fmt.Errorf("failed to list recent enquiries: %w", err)
	}

	return &OverviewResponse{
		Success:           true,
		TotalDoctors:      totalDoctors,
		TotalAppointments: totalAppointments,
		TotalEnquiries:    totalEnquiries,
		RecentEnquiries:   recent,
	}, nil
}

// AppointmentAnalytics returns the appointment chart data.
func (s *Service) AppointmentAnalytics(ctx context.Context) (*AppointmentAnalyticsResponse, error) {
	all, err := s.appointments.ListAllAppointments(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list appointments: %w", err)
	}

	statuses := make([]string, 0, len(all))
	dates := make([]string, 0, len(all))
	specialties := make([]string, 0, len(all))
	for _, a := range all {
		statuses = append(statuses, a.Status)
		dates = append(dates, a.AppointmentDate)
		if a.DoctorSpecialty != "" {
			specialties = append(specialties, a.DoctorSpecialty)
		}
	}

	return &AppointmentAnalyticsResponse{
		Success:         true,
		StatusBreakdown: CountValues(statuses),
		BookingsByDate:  DateSeries(dates, bookingSeriesDays),
		TopSpecialties:  CountValues(specialties),
	}, nil
}

// DoctorAnalytics returns the doctor chart data.
func (s *Service) DoctorAnalytics(ctx context.Context) (*DoctorAnalyticsResponse, error) {
	all, err := s.doctors.ListAllDoctors(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list doctors: %w", err)
	}

	specialties := make([]string, 0, len(all))
	for _, d := range all {
		specialties = append(specialties, d.Specialty)
	}

	return &DoctorAnalyticsResponse{
		Success:            true,
		SpecialtyBreakdown: CountValues(specialties),
		TotalDoctors:       len(all),
	}, nil
}
