package service

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/mataraung/trip-api/internal/domain"
)

// WhatsAppService formats the admin's booking-approval message and builds the
// wa.me deep link the dashboard opens. Presentation glue only; it never
// touches the store.
type WhatsAppService struct{}

// NewWhatsAppService creates a new WhatsAppService instance
func NewWhatsAppService() *WhatsAppService {
	return &WhatsAppService{}
}

// ConfirmationMessage renders the Indonesian approval message for a booking.
// The booking must carry its package join; the template exposes customer
// name, booking id, package name and location, headcount, trip date, total
// price and optional notes.
func (s *WhatsAppService) ConfirmationMessage(b *domain.Booking) (string, error) {
	if b.Package == nil {
		return "", fmt.Errorf("booking %s has no package loaded", b.ID)
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Halo %s! \n\n", b.CustomerName)
	sb.WriteString("Selamat! Pemesanan trip Anda telah *DISETUJUI* ✅\n\n")
	sb.WriteString("*Detail Pemesanan:*\n")
	fmt.Fprintf(&sb, "📋 ID: %s\n", b.ID)
	fmt.Fprintf(&sb, "🎯 Paket: %s\n", b.Package.Name)
	fmt.Fprintf(&sb, "📍 Lokasi: %s\n", b.Package.Location)
	fmt.Fprintf(&sb, "👥 Jumlah: %d orang\n", b.People)
	fmt.Fprintf(&sb, "📅 Tanggal: %s\n", b.TripDate.Format("2/1/2006"))
	fmt.Fprintf(&sb, "💰 Total Harga: Rp %s\n", formatRupiah(b.TotalPrice))
	if b.Notes != "" {
		fmt.Fprintf(&sb, "\n📝 Catatan: %s\n", b.Notes)
	}
	sb.WriteString("\n*Langkah Selanjutnya:*\n")
	sb.WriteString("1️⃣ Konfirmasi ketersediaan Anda untuk tanggal tersebut\n")
	sb.WriteString("2️⃣ Kami akan kirim detail pembayaran\n")
	sb.WriteString("3️⃣ Setelah pembayaran, trip Anda akan dikonfirmasi final\n\n")
	sb.WriteString("Silakan balas pesan ini untuk konfirmasi. Terima kasih! 🙏\n\n")
	sb.WriteString("_Tim MataRaung_")

	return sb.String(), nil
}

// ConfirmationLink builds the wa.me deep link carrying the approval message.
func (s *WhatsAppService) ConfirmationLink(b *domain.Booking) (string, error) {
	message, err := s.ConfirmationMessage(b)
	if err != nil {
		return "", err
	}

	number := normalizeWhatsappNumber(b.Whatsapp)
	return fmt.Sprintf("https://wa.me/%s?text=%s", number, url.QueryEscape(message)), nil
}

// normalizeWhatsappNumber rewrites a local Indonesian number (leading 0) to
// international form. Numbers already in international form pass through.
func normalizeWhatsappNumber(number string) string {
	if strings.HasPrefix(number, "0") {
		return "62" + number[1:]
	}
	return number
}

// formatRupiah renders an amount with Indonesian thousand separators.
func formatRupiah(amount int64) string {
	digits := fmt.Sprintf("%d", amount)
	negative := false
	if strings.HasPrefix(digits, "-") {
		negative = true
		digits = digits[1:]
	}

	var sb strings.Builder
	for i, d := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			sb.WriteRune('.')
		}
		sb.WriteRune(d)
	}

	if negative {
		return "-" + sb.String()
	}
	return sb.String()
}
