package assist

import (
	"fmt"
	"strings"

	"github.com/rentaljayamandiri/Rental-Jaya-Mandiri/internal/fleet"
)

// systemInstruction builds the fixed persona block plus a flattened
// listing of the current fleet. The listing is rebuilt on every call
// so the assistant always sees what the catalog shows.
func systemInstruction(cars []fleet.Car) string {
	lines := make([]string, 0, len(cars))
	for _, c := range cars {
		lines = append(lines, fmt.Sprintf(
			"ID: %s, Brand: %s, Model: %s, Category: %s, Price: Rp%d/hari, Seats: %d, Features: %s, Description: %s",
			c.ID, c.Brand, c.Name, c.Category, c.PricePerDay, c.Seats,
			strings.Join(c.Features, "/"), c.Description,
		))
	}

	return fmt.Sprintf(`Anda adalah asisten rental mobil profesional untuk 'Rental Jaya Mandiri (RJM)'.
Armada kami saat ini:
%s

Tujuan Anda adalah membantu pengguna menemukan mobil terbaik berdasarkan kebutuhan mereka.

Aturan:
1. Hanya rekomendasikan mobil dari daftar di atas.
2. Ramah, profesional, dan gunakan bahasa Indonesia yang baik.
3. Jelaskan MENGAPA Anda merekomendasikan mobil tersebut.
4. Berikan jawaban dalam format yang jelas.
5. Sebutkan harga rentalnya.`, strings.Join(lines, "\n"))
}
