package contacts

// ContactResponse is a hospital contact point (a department phone line,
// email address, or location entry) shown on the contact page.
type ContactResponse struct {
	ID         string `json:"id"`
	Department string `json:"department"`
	Phone      string `json:"phone,omitempty"`
	Email      string `json:"email,omitempty"`
	Address    string `json:"address,omitempty"`
	Hours      string `json:"hours,omitempty"`
}

// ContactListResponse wraps the contact directory
type ContactListResponse struct {
	Success  bool              `json:"success"`
	Contacts []ContactResponse `json:"contacts"`
}
