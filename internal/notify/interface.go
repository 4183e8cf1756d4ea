package notify

// MailerInterface defines the contract for transactional mail
// This allows for easy mocking in tests
type MailerInterface interface {
	SendBookingConfirmation(email, patientName, doctorName, date, timeSlot, location string) error
	SendEnquiryAcknowledgement(email, name string) error
}

// Ensure Mailer implements MailerInterface
var _ MailerInterface = (*Mailer)(nil)
