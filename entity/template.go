package entity

// Template IDs selectable by a tenant. The public renderer dispatches on
// this tag, so it must stay a closed set.
const (
	TemplateClassic = "classic"
	TemplateModern  = "modern"
	TemplateElegant = "elegant"
	TemplateMinimal = "minimal"
)

var templates = map[string]bool{
	TemplateClassic: true,
	TemplateModern:  true,
	TemplateElegant: true,
	TemplateMinimal: true,
}

func ValidTemplate(id string) bool {
	return templates[id]
}

// DefaultSettings returns a fresh settings row for a restaurant with the
// stock theme for the chosen template.
func DefaultSettings(restaurantID uint, templateID string) RestaurantSettings {
	return RestaurantSettings{
		RestaurantID:     restaurantID,
		TemplateID:       templateID,
		PrimaryColor:     "#000000",
		SecondaryColor:   "#666666",
		AccentColor:      "#ff6b6b",
		BackgroundColor:  "#ffffff",
		TextColor:        "#000000",
		FontHeading:      "Inter",
		FontBody:         "Inter",
		ShowPrices:       true,
		ShowDescriptions: true,
	}
}
