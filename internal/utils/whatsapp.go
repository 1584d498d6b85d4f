package utils

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/motorlista/vehicle_catalog_app/internal/core/domain"
)

// WhatsAppContactURL builds the wa.me link a catalog visitor follows to
// contact the agency about a listing, with the inquiry message prefilled.
// Returns the empty string when the agency has no number configured.
func WhatsAppContactURL(number string, v domain.Vehicle) string {
	number = sanitizePhoneNumber(number)
	if number == "" {
		return ""
	}
	message := fmt.Sprintf("Hola, me interesa el %s %s %d. ¿Está disponible?", v.Brand, v.Model, v.Year)
	return "https://wa.me/" + number + "?text=" + url.QueryEscape(message)
}

// sanitizePhoneNumber strips everything but digits; wa.me expects the number
// in international format without plus sign or separators.
func sanitizePhoneNumber(number string) string {
	var b strings.Builder
	for _, r := range number {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
