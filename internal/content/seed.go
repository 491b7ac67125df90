package content

// DefaultArticles returns the seed blog content.
func DefaultArticles() []Article {
	return []Article{
		{
			ID:      "1",
			Title:   "Kenapa Harus Rental di RJM?",
			Content: "Kami menjamin unit selalu bersih, wangi, dan mesin terawat. Setiap mobil melewati protokol pengecekan ketat sebelum diserahkan ke pelanggan.",
			Image:   "https://images.unsplash.com/photo-1503376780353-7e6692767b70",
			Date:    "12 Feb 2024",
		},
	}
}

// DefaultSlides returns the seed homepage banner.
func DefaultSlides() []Slide {
	return []Slide{
		{
			ID:       1,
			Title:    "Toyota Innova Zenix",
			Subtitle: "Teknologi Hybrid Terbaru untuk Keluarga",
			Image:    "https://images.unsplash.com/photo-1606611013016-969c19ba27bb?auto=format&fit=crop&q=80&w=1600",
			CTA:      "Pesan Sekarang",
		},
		{
			ID:       2,
			Title:    "Executive Alphard",
			Subtitle: "Kemewahan Tanpa Kompromi",
			Image:    "https://images.unsplash.com/photo-1549399542-7e3f8b79c341?auto=format&fit=crop&q=80&w=1600",
			CTA:      "Sewa Premium",
		},
		{
			ID:       3,
			Title:    "Suzuki XL7",
			Subtitle: "SUV Tangguh untuk Petualangan Anda",
			Image:    "https://images.unsplash.com/photo-1541899481282-d53bffe3c35d?auto=format&fit=crop&q=80&w=1600",
			CTA:      "Lihat Detail",
		},
	}
}

// DefaultContact returns the seed contact record.
func DefaultContact() ContactInfo {
	return ContactInfo{
		Phone:   "+62 812-1093-2808",
		Email:   "csrentaljayamandiri@gmail.com",
		Address: "Pondok Pinang VI No. 64, Jakarta, Indonesia",
	}
}
