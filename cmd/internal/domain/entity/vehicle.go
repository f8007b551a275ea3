package entity

// Vehicle is a single catalog entry. The catalog ships compiled into the
// binary and is never mutated at runtime; Price keeps its thousands
// separators because that is how it is displayed and stored.
type Vehicle struct {
	ID      int    `json:"id"`
	Name    string `json:"name"`
	Price   string `json:"price"`
	Image   string `json:"image"`
	Type    string `json:"type"` // Electric | Luxury | Sports
	Year    string `json:"year"`
	Mileage string `json:"mileage"` // New | Used
}

// VehicleDetail is the richer record behind the detail view. Every detail
// record embeds exactly one catalog entry, so the two can never disagree.
type VehicleDetail struct {
	Vehicle
	Description string            `json:"description"`
	Specs       map[string]string `json:"specs"`
	Features    []string          `json:"features"`
	Gallery     []string          `json:"gallery"`
}
