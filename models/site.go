package models

// Site is a Square Online website of the seller.
type Site struct {
	ID          string `json:"id"`
	SiteTitle   string `json:"site_title,omitempty"`
	Domain      string `json:"domain,omitempty"`
	IsPublished bool   `json:"is_published"`
	CreatedAt   string `json:"created_at,omitempty"`
	UpdatedAt   string `json:"updated_at,omitempty"`
}
