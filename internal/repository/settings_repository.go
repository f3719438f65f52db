package repository

import (
	"clinic-manager/internal/database"
	"clinic-manager/internal/models"
)

// SettingsRepository manages the two singleton rows: clinic settings and the
// doctor's profile. Both always exist (seeded at startup) with id 1.
type SettingsRepository interface {
	GetClinicSettings() (*models.ClinicSettings, error)
	UpdateClinicSettings(settings *models.ClinicSettings) error
	GetProfile() (*models.DoctorProfile, error)
	UpdateProfile(profile *models.DoctorProfile) error
}

type settingsRepository struct {
	db *database.DB
}

func NewSettingsRepository(db *database.DB) SettingsRepository {
	return &settingsRepository{db: db}
}

func (r *settingsRepository) GetClinicSettings() (*models.ClinicSettings, error) {
	var s models.ClinicSettings
	err := r.db.QueryRow(`
		SELECT id, COALESCE(name, ''), COALESCE(contact_info, ''),
			COALESCE(opening_hours, ''), COALESCE(logo_url, '')
		FROM clinic_settings WHERE id = 1
	`).Scan(&s.ID, &s.Name, &s.ContactInfo, &s.OpeningHours, &s.LogoURL)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *settingsRepository) UpdateClinicSettings(settings *models.ClinicSettings) error {
	_, err := r.db.Exec(`
		UPDATE clinic_settings SET name = ?, contact_info = ?, opening_hours = ?, logo_url = ?
		WHERE id = 1
	`, settings.Name, settings.ContactInfo, settings.OpeningHours, settings.LogoURL)
	settings.ID = 1
	return err
}

func (r *settingsRepository) GetProfile() (*models.DoctorProfile, error) {
	var p models.DoctorProfile
	err := r.db.QueryRow(`
		SELECT id, COALESCE(name, ''), COALESCE(email, ''), COALESCE(phone, ''),
			COALESCE(clinic_name, ''), COALESCE(avatar_url, '')
		FROM doctor_profile WHERE id = 1
	`).Scan(&p.ID, &p.Name, &p.Email, &p.Phone, &p.ClinicName, &p.AvatarURL)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *settingsRepository) UpdateProfile(profile *models.DoctorProfile) error {
	_, err := r.db.Exec(`
		UPDATE doctor_profile SET name = ?, email = ?, phone = ?, clinic_name = ?, avatar_url = ?
		WHERE id = 1
	`, profile.Name, profile.Email, profile.Phone, profile.ClinicName, profile.AvatarURL)
	profile.ID = 1
	return err
}
