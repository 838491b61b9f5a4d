package service

import (
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mataraung/trip-api/internal/domain"
)

func sampleBooking() *domain.Booking {
	return &domain.Booking{
		ID:           "bkg-1",
		CustomerName: "Budi Santoso",
		Whatsapp:     "081234567890",
		People:       3,
		TripDate:     time.Date(2026, time.September, 5, 0, 0, 0, 0, time.UTC),
		TotalPrice:   300000,
		Status:       domain.BookingStatusConfirmed,
		Package: &domain.TripPackage{
			ID:       "pkg-1",
			Name:     "Raja Ampat Explorer",
			Location: "Papua Barat",
		},
	}
}

func TestConfirmationMessage(t *testing.T) {
	svc := NewWhatsAppService()

	message, err := svc.ConfirmationMessage(sampleBooking())
	require.NoError(t, err)

	assert.Contains(t, message, "Halo Budi Santoso!")
	assert.Contains(t, message, "*DISETUJUI*")
	assert.Contains(t, message, "Raja Ampat Explorer")
	assert.Contains(t, message, "Papua Barat")
	assert.Contains(t, message, "3 orang")
	assert.Contains(t, message, "5/9/2026")
	assert.Contains(t, message, "Rp 300.000")
	assert.Contains(t, message, "_Tim MataRaung_")
	assert.NotContains(t, message, "Catatan")
}

func TestConfirmationMessageIncludesNotes(t *testing.T) {
	svc := NewWhatsAppService()
	b := sampleBooking()
	b.Notes = "Vegetarian"

	message, err := svc.ConfirmationMessage(b)
	require.NoError(t, err)
	assert.Contains(t, message, "Catatan: Vegetarian")
}

func TestConfirmationMessageRequiresPackage(t *testing.T) {
	svc := NewWhatsAppService()
	b := sampleBooking()
	b.Package = nil

	_, err := svc.ConfirmationMessage(b)
	assert.Error(t, err)
}

func TestConfirmationLink(t *testing.T) {
	svc := NewWhatsAppService()

	link, err := svc.ConfirmationLink(sampleBooking())
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(link, "https://wa.me/6281234567890?text="), link)

	parsed, err := url.Parse(link)
	require.NoError(t, err)
	message := parsed.Query().Get("text")
	assert.Contains(t, message, "Budi Santoso")
	assert.Contains(t, message, "Raja Ampat Explorer")
}

func TestNormalizeWhatsappNumber(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"081234567890", "6281234567890"},
		{"6281234567890", "6281234567890"},
		{"+6281234567890", "+6281234567890"},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, normalizeWhatsappNumber(tt.in), tt.in)
	}
}

func TestFormatRupiah(t *testing.T) {
	tests := []struct {
		in   int64
		want string
	}{
		{0, "0"},
		{500, "500"},
		{1000, "1.000"},
		{300000, "300.000"},
		{2500000, "2.500.000"},
		{1234567890, "1.234.567.890"},
		{-1500, "-1.500"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, formatRupiah(tt.in))
	}
}
