package mapping

import (
	"github.com/motorlista/vehicle_catalog_app/internal/core/domain"
	"github.com/motorlista/vehicle_catalog_app/internal/models"
)

// ToModelAgency converts a domain agency to its row representation.
func ToModelAgency(a domain.Agency) models.Agency {
	return models.Agency{
		AgencyID:     a.AgencyID,
		Username:     a.Username,
		Email:        a.Email,
		Name:         a.Name,
		PasswordHash: a.PasswordHash,
		LogoURL:      a.LogoURL,
		CoverURL:     a.CoverURL,
		Location:     a.Location,
		WhatsApp:     a.WhatsApp,
		Plan:         string(a.Plan),
		AuditFields:  ToModelAuditFields(a.AuditFields),
	}
}

// ToDomainAgency converts an agency row to the domain representation.
func ToDomainAgency(m models.Agency) domain.Agency {
	return domain.Agency{
		AgencyID:     m.AgencyID,
		Username:     m.Username,
		Email:        m.Email,
		Name:         m.Name,
		PasswordHash: m.PasswordHash,
		LogoURL:      m.LogoURL,
		CoverURL:     m.CoverURL,
		Location:     m.Location,
		WhatsApp:     m.WhatsApp,
		Plan:         domain.Plan(m.Plan),
		AuditFields:  ToDomainAuditFields(m.AuditFields),
	}
}
