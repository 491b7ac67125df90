package fleet

// DefaultFleet returns the seed fleet used when no persisted state
// exists yet. Returns a fresh slice on every call so callers can
// mutate it freely.
func DefaultFleet() []Car {
	return []Car{
		{
			ID:           "1",
			Brand:        "Toyota",
			Name:         "Innova Zenix",
			Category:     CategoryMPVPremium,
			PricePerDay:  850000,
			Image:        "https://images.unsplash.com/photo-1621007947382-bb3c3994e3fb?auto=format&fit=crop&q=80&w=800",
			Transmission: TransmissionAutomatic,
			FuelType:     "Bensin/Hybrid",
			Seats:        7,
			Rating:       4.9,
			Description:  "Generasi terbaru Innova dengan kenyamanan premium dan teknologi hybrid.",
			Features:     []string{"AC", "Audio Premium", "Leather Seats", "Kamera Parkir"},
		},
		{
			ID:           "2",
			Brand:        "Toyota",
			Name:         "Alphard",
			Category:     CategoryLuxury,
			PricePerDay:  2500000,
			Image:        "https://images.unsplash.com/photo-1549399542-7e3f8b79c341?auto=format&fit=crop&q=80&w=800",
			Transmission: TransmissionAutomatic,
			FuelType:     "Bensin",
			Seats:        7,
			Rating:       5.0,
			Description:  "Standar kemewahan untuk perjalanan bisnis dan tamu VIP.",
			Features:     []string{"Pilot Seats", "Sunroof", "Cool Box", "Surround Sound"},
		},
		{
			ID:           "3",
			Brand:        "Toyota",
			Name:         "HiAce Premio",
			Category:     CategoryVan,
			PricePerDay:  1200000,
			Image:        "https://images.unsplash.com/photo-1533473359331-0135ef1b58bf?auto=format&fit=crop&q=80&w=800",
			Transmission: TransmissionManual,
			FuelType:     "Diesel",
			Seats:        15,
			Rating:       4.8,
			Description:  "Pilihan terbaik untuk rombongan besar dengan kabin luas.",
			Features:     []string{"AC Double", "Audio System", "Bagasi Luas", "Comfortable Seats"},
		},
		{
			ID:           "4",
			Brand:        "Toyota",
			Name:         "Avanza",
			Category:     CategoryMPV,
			PricePerDay:  400000,
			Image:        "https://images.unsplash.com/photo-1621007947382-bb3c3994e3fb?auto=format&fit=crop&q=80&w=800",
			Transmission: TransmissionManualAutomatic,
			FuelType:     "Bensin",
			Seats:        7,
			Rating:       4.6,
			Description:  "Mobil keluarga sejuta umat yang handal dan irit.",
			Features:     []string{"AC", "Power Steering", "Safety Feature"},
		},
		{
			ID:           "5",
			Brand:        "Suzuki",
			Name:         "XL 7",
			Category:     CategoryMPV,
			PricePerDay:  500000,
			Image:        "https://images.unsplash.com/photo-1541899481282-d53bffe3c35d?auto=format&fit=crop&q=80&w=800",
			Transmission: TransmissionAutomatic,
			FuelType:     "Bensin",
			Seats:        7,
			Rating:       4.7,
			Description:  "The New Extraordinary SUV untuk petualangan keluarga.",
			Features:     []string{"Smart E-Mirror", "Ground Clearance Tinggi", "LED Headlamp"},
		},
	}
}
