// internal/models/settings.go
package models

// ClinicSettings and DoctorProfile are singleton rows (id = 1); updates
// overwrite in place.
type ClinicSettings struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	ContactInfo  string `json:"contactInfo"`
	OpeningHours string `json:"openingHours"`
	LogoURL      string `json:"logoUrl,omitempty"`
}

type DoctorProfile struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	ClinicName string `json:"clinicName"`
	AvatarURL  string `json:"avatarUrl,omitempty"`
}
