package domain

import (
	"context"
	"time"
)

// Settings is the singleton company configuration edited from the dashboard.
// AutoApproveBooking and MaxBookingPerDay are stored and editable but not yet
// enforced by any booking path; they are reserved for future use.
type Settings struct {
	ID                 string    `bson:"_id,omitempty" json:"id"`
	CompanyName        string    `bson:"company_name,omitempty" json:"company_name"`
	CompanyEmail       string    `bson:"company_email,omitempty" json:"company_email"`
	CompanyPhone       string    `bson:"company_phone,omitempty" json:"company_phone"`
	CompanyWhatsapp    string    `bson:"company_whatsapp,omitempty" json:"company_whatsapp"`
	CompanyAddress     string    `bson:"company_address,omitempty" json:"company_address"`
	CompanyDescription string    `bson:"company_description,omitempty" json:"company_description"`
	EmailNotifications bool      `bson:"email_notifications" json:"email_notifications"`
	WhatsappNotifs     bool      `bson:"whatsapp_notifications" json:"whatsapp_notifications"`
	BlogNotifications  bool      `bson:"blog_notifications" json:"blog_notifications"`
	MaintenanceMode    bool      `bson:"maintenance_mode" json:"maintenance_mode"`
	AutoApproveBooking bool      `bson:"auto_approve_booking" json:"auto_approve_booking"`
	MaxBookingPerDay   int       `bson:"max_booking_per_day,omitempty" json:"max_booking_per_day"`
	CreatedAt          time.Time `bson:"created_at,omitempty" json:"created_at"`
	UpdatedAt          time.Time `bson:"updated_at,omitempty" json:"updated_at"`
}

// DefaultSettings returns the settings document created on first read.
func DefaultSettings() *Settings {
	return &Settings{
		CompanyName:        "MataRaung",
		CompanyEmail:       "info@mataraung.com",
		CompanyPhone:       "+62 812-3456-7890",
		CompanyWhatsapp:    "6281234567890",
		CompanyAddress:     "Jakarta, Indonesia",
		CompanyDescription: "Jelajahi keindahan Indonesia bersama MataRaung",
		EmailNotifications: true,
		WhatsappNotifs:     true,
		BlogNotifications:  false,
		MaintenanceMode:    false,
		AutoApproveBooking: false,
		MaxBookingPerDay:   10,
	}
}

// SettingsRepository defines operations for the settings singleton
type SettingsRepository interface {
	// Get returns the settings document, or ErrNotFound when none exists yet.
	Get(ctx context.Context) (*Settings, error)
	Create(ctx context.Context, settings *Settings) error
	Update(ctx context.Context, settings *Settings) error
}
