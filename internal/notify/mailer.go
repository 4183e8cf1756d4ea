package notify

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/go-gomail/gomail"
)

// Mailer sends transactional mail over SMTP. All sends are best-effort: a
// failed mail never fails the triggering mutation.
type Mailer struct {
	host     string
	port     int
	from     string
	password string
}

// NewMailer reads SMTP settings from the environment. Returns an error when
// the sender address is missing, which callers treat as "mail disabled".
func NewMailer() (*Mailer, error) {
	from := os.Getenv("SMTP_FROM")
	if from == "" {
		return nil, fmt.Errorf("SMTP_FROM not configured")
	}

	host := os.Getenv("SMTP_HOST")
	if host == "" {
		host = "smtp.gmail.com"
	}

	port := 587
	if p := os.Getenv("SMTP_PORT"); p != "" {
		if parsed, err := strconv.Atoi(p); err == nil {
			port = parsed
		}
	}

	return &Mailer{
		host:     host,
		port:     port,
		from:     from,
		password: os.Getenv("SMTP_PASSWORD"),
	}, nil
}

// SendBookingConfirmation mails the patient after a successful booking.
func (m *Mailer) SendBookingConfirmation(email, patientName, doctorName, date, timeSlot, location string) error {
	body := fmt.Sprintf(
		"Dear %s,\n\nYour appointment with %s has been scheduled.\n\nDate: %s\nTime: %s\nLocation: %s\n\nHealHub Hospital",
		patientName, doctorName, date, timeSlot, location,
	)
	return m.send(email, "Appointment Confirmation", body)
}

// SendEnquiryAcknowledgement mails the sender of a contact-form enquiry.
func (m *Mailer) SendEnquiryAcknowledgement(email, name string) error {
	body := fmt.Sprintf(
		"Dear %s,\n\nWe have received your enquiry and our team will get back to you shortly.\n\nHealHub Hospital",
		name,
	)
	return m.send(email, "We received your enquiry", body)
}

func (m *Mailer) send(to, subject, body string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", body)

	d := gomail.NewDialer(m.host, m.port, m.from, m.password)
	if err := d.DialAndSend(msg); err != nil {
		return fmt.Errorf("error sending email: %w", err)
	}

	log.Printf("Sent mail %q to %s", subject, to)
	return nil
}
