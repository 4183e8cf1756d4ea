package http

import (
	"database/sql"
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gorilla/mux/otelmux"

	"github.com/HealHub-Care/hospital-service/internal/analytics"
	"github.com/HealHub-Care/hospital-service/internal/appointments"
	"github.com/HealHub-Care/hospital-service/internal/auth"
	"github.com/HealHub-Care/hospital-service/internal/cache"
	"github.com/HealHub-Care/hospital-service/internal/contacts"
	"github.com/HealHub-Care/hospital-service/internal/doctors"
	"github.com/HealHub-Care/hospital-service/internal/enquiries"
	"github.com/HealHub-Care/hospital-service/internal/messaging"
	"github.com/HealHub-Care/hospital-service/internal/notify"
	"github.com/HealHub-Care/hospital-service/internal/records"
	"github.com/HealHub-Care/hospital-service/internal/services"
	"github.com/HealHub-Care/hospital-service/internal/telemetry"
)

// Dependencies carries everything the router wires into handlers.
// Publisher, Mailer and Metrics may be nil; the affected features degrade
// to no-ops.
type Dependencies struct {
	DB        *sql.DB
	Cache     *cache.Store
	Publisher messaging.PublisherInterface
	Mailer    notify.MailerInterface
	Verifier  *auth.Verifier
	Perms     auth.Permissions
	Keycloak  auth.KeycloakInterface
	Metrics   *telemetry.Metrics
}

// SetupRouter initializes all routes for the application
func SetupRouter(deps Dependencies) *mux.Router {
	// Initialize doctors components
	doctorRepo := doctors.NewRepository(deps.DB)
	doctorService := doctors.NewService(doctorRepo, deps.Cache)
	doctorHandler := doctors.NewHandler(doctorService)

	// Initialize appointments components
	appointmentRepo := appointments.NewRepository(deps.DB)
	appointmentService := appointments.NewService(appointmentRepo, deps.Cache, deps.Publisher, deps.Mailer, deps.Metrics)
	appointmentHandler := appointments.NewHandler(appointmentService)

	// Initialize enquiries components
	enquiryRepo := enquiries.NewRepository(deps.DB)
	enquiryService := enquiries.NewService(enquiryRepo, deps.Publisher, deps.Mailer, deps.Metrics)
	enquiryHandler := enquiries.NewHandler(enquiryService)

	// Initialize contacts components
	contactRepo := contacts.NewRepository(deps.DB)
	contactService := contacts.NewService(contactRepo, deps.Cache)
	contactHandler := contacts.NewHandler(contactService)

	// Initialize medical records components
	recordRepo := records.NewRepository(deps.DB)
	recordService := records.NewService(recordRepo)
	recordHandler := records.NewHandler(recordService, deps.Perms)

	// Initialize services catalog components
	catalogService := services.NewService(doctorRepo)
	catalogHandler := services.NewHandler(catalogService)

	// Initialize admin analytics components
	analyticsService := analytics.NewService(doctorRepo, appointmentRepo, enquiryRepo)
	analyticsHandler := analytics.NewHandler(analyticsService)

	// Initialize auth components
	authHandler := auth.NewHandler(deps.Keycloak, deps.Perms)

	// The typed-nil guard keeps a nil *telemetry.Metrics from becoming a
	// non-nil interface value inside the middleware.
	var authMetrics auth.MetricsRecorder
	var permMetrics auth.PermissionMetricsRecorder
	if deps.Metrics != nil {
		authMetrics = deps.Metrics
		permMetrics = deps.Metrics
	}

	authed := auth.MiddlewareWithMetrics(deps.Verifier, authMetrics)
	protect := func(permission string, handler http.HandlerFunc) http.Handler {
		return authed(auth.RequirePermissionWithMetrics(permission, deps.Perms, permMetrics)(handler))
	}

	r := mux.NewRouter()
	r.Use(otelmux.Middleware("hospital-service"))

	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"error":   "not_found",
			"message": "Route not found",
		})
	})

	// Public health endpoint
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok","service":"hospital-service"}`))
	}).Methods("GET")

	// Auth routes (registration and login proxy to Keycloak)
	r.HandleFunc("/auth/register", authHandler.Register).Methods("POST")
	r.HandleFunc("/auth/login", authHandler.Login).Methods("POST")
	r.Handle("/auth/me", authed(http.HandlerFunc(authHandler.Me))).Methods("GET")

	// Public doctors directory
	r.HandleFunc("/doctors", doctorHandler.ListDoctors).Methods("GET")
	r.HandleFunc("/doctors/{id}", doctorHandler.GetDoctor).Methods("GET")

	// Public services catalog
	r.HandleFunc("/services", catalogHandler.ListServices).Methods("GET")
	r.HandleFunc("/services/{slug}", catalogHandler.GetService).Methods("GET")

	// Public hospital contacts
	r.HandleFunc("/contacts", contactHandler.ListContacts).Methods("GET")

	// Enquiries: submission is public, triage is for operators
	r.HandleFunc("/enquiries", enquiryHandler.CreateEnquiry).Methods("POST")
	r.Handle("/enquiries", protect("enquiry:view", enquiryHandler.ListEnquiries)).Methods("GET")
	r.Handle("/enquiries/{id}/status", protect("enquiry:update", enquiryHandler.UpdateStatus)).Methods("PATCH")

	// Appointment routes (authenticated patients)
	r.Handle("/appointments", protect("appointment:view", appointmentHandler.ListAppointments)).Methods("GET")
	r.Handle("/appointments", protect("appointment:create", appointmentHandler.BookAppointment)).Methods("POST")
	r.Handle("/appointments/{id}/cancel", protect("appointment:update", appointmentHandler.CancelAppointment)).Methods("POST")
	r.Handle("/appointments/{id}/reschedule", protect("appointment:update", appointmentHandler.RescheduleAppointment)).Methods("POST")

	// Medical records (visibility decided per principal)
	r.Handle("/medical-records", protect("record:view", recordHandler.ListRecords)).Methods("GET")

	// Admin dashboard routes
	r.Handle("/admin/overview", protect("analytics:view", analyticsHandler.Overview)).Methods("GET")
	r.Handle("/admin/analytics/appointments", protect("analytics:view", analyticsHandler.AppointmentAnalytics)).Methods("GET")
	r.Handle("/admin/analytics/doctors", protect("analytics:view", analyticsHandler.DoctorAnalytics)).Methods("GET")

	return r
}
