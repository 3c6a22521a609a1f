package models

// ServiceListing represents a single catalog entry. Listings are loaded
// once from the dataset source and never mutated afterwards.
type ServiceListing struct {
	ID           string   `json:"id"`
	Title        string   `json:"title"`
	Category     string   `json:"category"`
	Price        int      `json:"price"`
	Rating       float64  `json:"rating"`
	ReviewCount  int      `json:"reviews"`
	Location     string   `json:"location"`
	Duration     string   `json:"duration"`
	Availability string   `json:"availability"`
	Description  string   `json:"description"`
	Highlights   []string `json:"highlights"`
	Includes     []string `json:"includes"`
	Images       []string `json:"images"`
}

// FaqEntry is a static reference entry used by the support assistant.
type FaqEntry struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
	Tag      string `json:"tag"`
}
