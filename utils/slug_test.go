package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateSlug(t *testing.T) {
	cases := map[string]string{
		"La Taquería":     "la-taqueria",
		"El Buen Sabor!":  "el-buen-sabor",
		"Café  Luna":      "cafe-luna",
		"  Tacos 1  ":     "tacos-1",
		"___snake_case__": "snake-case",
		"UPPER CASE":      "upper-case",
	}
	for in, want := range cases {
		assert.Equal(t, want, GenerateSlug(in), "input %q", in)
	}
}

func TestGenerateSlugMatchesFormat(t *testing.T) {
	names := []string{"La Taquería", "Pizzería Nápoles", "A&W --- Diner", "éé é"}
	for _, name := range names {
		slug := GenerateSlug(name)
		if len(slug) >= 3 {
			assert.True(t, ValidateSlugFormat(slug), "generated slug %q from %q should validate", slug, name)
		}
	}
}

func TestValidateSlugFormat(t *testing.T) {
	valid := []string{"tacos-1", "la-taqueria", "abc", "a1b2c3", "x-y-z-1"}
	for _, s := range valid {
		assert.True(t, ValidateSlugFormat(s), "%q should be valid", s)
	}

	invalid := []string{
		"",
		"ab",                // too short
		"Tacos 1",           // uppercase + space
		"-tacos",            // leading hyphen
		"tacos-",            // trailing hyphen
		"ta--cos",           // double hyphen
		"tacos_1",           // underscore
		"taquería",          // accent
		string(make([]byte, 51)), // too long
	}
	for _, s := range invalid {
		assert.False(t, ValidateSlugFormat(s), "%q should be invalid", s)
	}
}

func TestNormalizeSlug(t *testing.T) {
	assert.Equal(t, "la-taqueria", NormalizeSlug("  La-Taquería  "))
	assert.Equal(t, "tacos-1", NormalizeSlug("-tacos--1-"))
}
