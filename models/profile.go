package models

// Profile is the service center's public profile on the platform.
type Profile struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Phone       string `json:"phone"`
	Email       string `json:"email,omitempty"`
	Address     string `json:"address,omitempty"`
	Description string `json:"description,omitempty"`
	LogoURL     string `json:"logo_url,omitempty"`
	OpensAt     string `json:"opens_at,omitempty"`  // HH:MM
	ClosesAt    string `json:"closes_at,omitempty"` // HH:MM
}

// ProfileInput is the field portion of the multipart profile form; the
// center logo travels alongside it as a file part.
type ProfileInput struct {
	Name        string `json:"name"`
	Phone       string `json:"phone"`
	Email       string `json:"email"`
	Address     string `json:"address"`
	Description string `json:"description"`
	OpensAt     string `json:"opens_at"`
	ClosesAt    string `json:"closes_at"`
}

// Validate returns an i18n message key, or "" when the input is acceptable.
func (in *ProfileInput) Validate() string {
	if in.Name == "" {
		return "name.required"
	}
	if in.Phone == "" {
		return "phone.required"
	}
	if in.OpensAt != "" && !validClock(in.OpensAt) {
		return "hours.invalid"
	}
	if in.ClosesAt != "" && !validClock(in.ClosesAt) {
		return "hours.invalid"
	}
	return ""
}
