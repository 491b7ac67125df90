// Package fleet defines the rental fleet model.
package fleet

// Category is the closed set of rental classes.
type Category string

const (
	CategoryMPVPremium Category = "MPV Premium"
	CategoryVan        Category = "Van"
	CategoryMPV        Category = "MPV"
	CategoryLuxury     Category = "Luxury"
	CategoryEconomy    Category = "Economy"
)

// Valid reports whether c is one of the known categories.
func (c Category) Valid() bool {
	switch c {
	case CategoryMPVPremium, CategoryVan, CategoryMPV, CategoryLuxury, CategoryEconomy:
		return true
	}
	return false
}

// Transmission values as persisted.
type Transmission string

const (
	TransmissionAutomatic       Transmission = "Automatic"
	TransmissionManual          Transmission = "Manual"
	TransmissionManualAutomatic Transmission = "Manual/Automatic"
)

// Car is one rental unit. JSON tags match the persisted slot format
// used by existing deployments.
type Car struct {
	ID           string       `json:"id"`
	Name         string       `json:"name"`
	Brand        string       `json:"brand"`
	Category     Category     `json:"category"`
	PricePerDay  int          `json:"pricePerDay"` // whole IDR per day
	Image        string       `json:"image"`
	Transmission Transmission `json:"transmission"`
	FuelType     string       `json:"fuelType"`
	Seats        int          `json:"seats"`
	Rating       float64      `json:"rating"`
	Description  string       `json:"description"`
	Features     []string     `json:"features"`
}
