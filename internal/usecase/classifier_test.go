package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/xavierca1/clinic-outreach/internal/entity"
	"github.com/xavierca1/clinic-outreach/internal/usecase"
)

// TestFilterClinicLeadsMatchesKeywords - keyword no nome da empresa, case-insensitive
func TestFilterClinicLeadsMatchesKeywords(t *testing.T) {
	leads := []entity.Lead{
		{Email: "a@example.com", CompanyName: "Evergreen Wellness Center"},
		{Email: "b@example.com", CompanyName: "SEATTLE INTEGRATIVE MEDICINE"},
		{Email: "c@example.com", CompanyName: "Joe's Plumbing"},
		{Email: "d@example.com", CompanyName: "Dr. Smith Family Practice"},
	}

	matches := usecase.FilterClinicLeads(usecase.DefaultClinicKeywords, leads)

	assert.Len(t, matches, 3)
	for _, lead := range matches {
		assert.NotEqual(t, "c@example.com", lead.Email)
	}
}

// TestFilterClinicLeadsRequiresUsableEmail - sem email utilizável nunca entra no conjunto
func TestFilterClinicLeadsRequiresUsableEmail(t *testing.T) {
	leads := []entity.Lead{
		{Email: "", CompanyName: "Downtown Clinic"},
		{Email: entity.SentinelEmail, CompanyName: "Uptown Medical Group"},
		{Email: "ok@example.com", CompanyName: "Lakeside Health"},
	}

	matches := usecase.FilterClinicLeads(usecase.DefaultClinicKeywords, leads)

	assert.Len(t, matches, 1)
	assert.Equal(t, "ok@example.com", matches[0].Email)
}

// TestFilterClinicLeadsCustomKeywords - keywords do caller, minúsculas ou não
func TestFilterClinicLeadsCustomKeywords(t *testing.T) {
	leads := []entity.Lead{
		{Email: "a@example.com", CompanyName: "Happy Paws Veterinary"},
		{Email: "b@example.com", CompanyName: "City Bakery"},
	}

	matches := usecase.FilterClinicLeads([]string{"VETERINARY"}, leads)

	assert.Len(t, matches, 1)
	assert.Equal(t, "a@example.com", matches[0].Email)
}

// TestOtherLeadsByEmailExclusion - "other" é exclusão por email, não predicado negado:
// lead sem email utilizável cai em other e clinic+other fecha com o total
func TestOtherLeadsByEmailExclusion(t *testing.T) {
	all := []entity.Lead{
		{Email: "clinic@example.com", CompanyName: "Northgate Clinic"},
		{Email: "shop@example.com", CompanyName: "Corner Shop"},
		{Email: entity.SentinelEmail, CompanyName: "Mystery Wellness"},
		{Email: "", CompanyName: "Nameless Health"},
	}

	clinic := usecase.FilterClinicLeads(usecase.DefaultClinicKeywords, all)
	other := usecase.OtherLeads(all, clinic)

	assert.Len(t, clinic, 1)
	assert.Len(t, other, 3)
	assert.Equal(t, len(all), len(clinic)+len(other))
}
