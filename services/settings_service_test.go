package services

import (
	"testing"

	"menucloud/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestUpdateSettings(t *testing.T) {
	db := newTestDB(t)
	_, _, restRepo, _, _, _ := newRepos(db)
	svc := NewSettingsService(restRepo)

	_, rest := createTenant(t, db, "owner@example.com", "la-taqueria")

	hide := false
	out, err := svc.UpdateSettings(rest.ID, SettingsUpdate{
		TemplateID:   strPtr(entity.TemplateModern),
		PrimaryColor: strPtr("#1A2B3C"),
		ShowPrices:   &hide,
	})
	require.NoError(t, err)
	assert.Equal(t, entity.TemplateModern, out.TemplateID)
	assert.Equal(t, "#1a2b3c", out.PrimaryColor)
	assert.False(t, out.ShowPrices)

	// untouched fields keep their defaults
	assert.Equal(t, "#ff6b6b", out.AccentColor)
}

func TestUpdateSettingsValidation(t *testing.T) {
	db := newTestDB(t)
	_, _, restRepo, _, _, _ := newRepos(db)
	svc := NewSettingsService(restRepo)

	_, rest := createTenant(t, db, "owner@example.com", "la-taqueria")

	_, err := svc.UpdateSettings(rest.ID, SettingsUpdate{TemplateID: strPtr("retro")})
	assert.ErrorIs(t, err, ErrInvalidTemplate)

	for _, bad := range []string{"red", "#fff", "#12345g", "123456", "#1234567"} {
		_, err = svc.UpdateSettings(rest.ID, SettingsUpdate{AccentColor: strPtr(bad)})
		assert.ErrorIs(t, err, ErrValidation, "color %q", bad)
	}

	_, err = svc.UpdateSettings(rest.ID, SettingsUpdate{FontBody: strPtr("  ")})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = svc.UpdateSettings(99999, SettingsUpdate{})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpdateRestaurantProfile(t *testing.T) {
	db := newTestDB(t)
	_, _, restRepo, _, _, _ := newRepos(db)
	svc := NewSettingsService(restRepo)

	_, rest := createTenant(t, db, "owner@example.com", "la-taqueria")

	out, err := svc.UpdateRestaurant(rest.ID, RestaurantUpdate{
		Name:            strPtr("<b>Taquería Nueva</b>"),
		InstagramHandle: strPtr("@lataqueria"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Taquería Nueva", out.Name)
	assert.Equal(t, "lataqueria", out.InstagramHandle)
	// the slug never changes through this path
	assert.Equal(t, "la-taqueria", out.Slug)

	_, err = svc.UpdateRestaurant(rest.ID, RestaurantUpdate{Name: strPtr("")})
	assert.ErrorIs(t, err, ErrValidation)
}
