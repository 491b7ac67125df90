// Package content defines the editorial models: blog articles, the
// homepage banner slides, and the contact record.
package content

// Article is one blog post. Date is display text, not a parsed date.
type Article struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Content string `json:"content"`
	Image   string `json:"image"`
	Date    string `json:"date"`
}

// Slide is one rotating homepage banner item.
type Slide struct {
	ID       int    `json:"id"`
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
	Image    string `json:"image"`
	CTA      string `json:"cta"`
}

// ContactInfo is the singleton contact record.
type ContactInfo struct {
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	Address string `json:"address"`
}
