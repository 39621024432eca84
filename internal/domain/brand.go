package domain

// Brand carries the platform identity printed on every document.
type Brand struct {
	Name         string `koanf:"name"`
	Platform     string `koanf:"platform"`
	EIN          string `koanf:"ein"`
	SupportEmail string `koanf:"supportemail"`
}

// DefaultBrand is the WasteNaut identity.
func DefaultBrand() Brand {
	return Brand{
		Name:         "WasteNaut",
		Platform:     "WasteNaut Food Rescue Platform",
		EIN:          "12-3456789",
		SupportEmail: "safety@wastenaut.com",
	}
}
