package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/motorlista/vehicle_catalog_app/internal/core/domain"
)

func TestWhatsAppContactURL(t *testing.T) {
	v := domain.Vehicle{Brand: "Toyota", Model: "Corolla", Year: 2020}

	got := WhatsAppContactURL("+54 9 11 2345-6789", v)
	assert.Contains(t, got, "https://wa.me/5491123456789?text=")
	assert.Contains(t, got, "Toyota")
	assert.NotContains(t, got, " ", "message must be URL-encoded")
}

func TestWhatsAppContactURLNoNumber(t *testing.T) {
	assert.Empty(t, WhatsAppContactURL("", domain.Vehicle{}))
	assert.Empty(t, WhatsAppContactURL("  +- ", domain.Vehicle{}))
}
