package cache

import (
	"fmt"
	"strings"
	"time"
)

// Freshness windows per query. Enquiries and analytics are always fetched
// fresh, so they have no window here.
const (
	DoctorsTTL      = 5 * time.Minute
	ContactsTTL     = time.Hour
	AppointmentsTTL = time.Minute
)

// DoctorListKey identifies a doctors directory query by its filter set.
func DoctorListKey(specialty, search string, page int) string {
	return fmt.Sprintf("doctors:specialty=%s:search=%s:page=%d",
		strings.ToLower(specialty), strings.ToLower(search), page)
}

// DoctorKey identifies a single doctor lookup.
func DoctorKey(id string) string {
	return "doctors:id=" + id
}

// ContactsKey identifies the hospital contact directory query.
func ContactsKey() string {
	return "contacts:all"
}

// PatientAppointmentsKey identifies a patient's appointment list. Booking and
// cancelling invalidate exactly this key.
func PatientAppointmentsKey(email string) string {
	return "appointments:patient=" + strings.ToLower(email)
}

// entityOf reports the entity segment of a cache key, used as the metric label.
func entityOf(key string) string {
	if i := strings.IndexByte(key, ':'); i > 0 {
		return key[:i]
	}
	return key
}
