package testutil

import (
	"sync"
	"testing"
)

// SentMail is one message captured by the mock mailer
type SentMail struct {
	Kind      string // "booking_confirmation" or "enquiry_acknowledgement"
	Recipient string
}

// MockMailer captures transactional mail instead of sending it
type MockMailer struct {
	mu   sync.Mutex
	sent []SentMail

	// FailWith, when set, is returned from every send call
	FailWith error
}

// NewMockMailer creates a new mock mailer
func NewMockMailer() *MockMailer {
	return &MockMailer{}
}

func (m *MockMailer) SendBookingConfirmation(email, patientName, doctorName, date, timeSlot, location string) error {
	return m.record("booking_confirmation", email)
}

func (m *MockMailer) SendEnquiryAcknowledgement(email, name string) error {
	return m.record("enquiry_acknowledgement", email)
}

func (m *MockMailer) record(kind, recipient string) error {
	if m.FailWith != nil {
		return m.FailWith
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sent = append(m.sent, SentMail{Kind: kind, Recipient: recipient})
	return nil
}

// SentCount returns how many messages of the given kind were captured
func (m *MockMailer) SentCount(kind string) int {
	m.mu.Lock()
	defer m.mu.Unlock()

	count := 0
	for _, s := range m.sent {
		if s.Kind == kind {
			count++
		}
	}
	return count
}

// AssertSent asserts that at least one message of the given kind went to recipient
func (m *MockMailer) AssertSent(t *testing.T, kind, recipient string) {
	t.Helper()

	m.mu.Lock()
	defer m.mu.Unlock()
	for _, s := range m.sent {
		if s.Kind == kind && s.Recipient == recipient {
			return
		}
	}
	t.Errorf("Expected %s mail to %s, but none was sent", kind, recipient)
}
