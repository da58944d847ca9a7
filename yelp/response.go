package yelp

// SearchResult represents a set of businesses returned by the business search APIs.
// https://docs.developer.yelp.com/reference/v3_business_phone_search
type SearchResult struct {
	Businesses []*Business `json:"businesses"`
	Total      int         `json:"total"`
}

// Business represents a business listed on Yelp.
type Business struct {
	ID           string      `json:"id"`
	Alias        string      `json:"alias"`
	Name         string      `json:"name"`
	Phone        string      `json:"phone"`
	DisplayPhone string      `json:"display_phone"`
	URL          string      `json:"url"`
	ImageURL     string      `json:"image_url"`
	Rating       float64     `json:"rating"`
	ReviewCount  int         `json:"review_count"`
	IsClosed     bool        `json:"is_closed"`
	Price        string      `json:"price"`
	Categories   []*Category `json:"categories"`
	Coordinates  *Point      `json:"coordinates"`
	Location     *Location   `json:"location"`
}

// Category represents a business category.
type Category struct {
	Alias string `json:"alias"`
	Title string `json:"title"`
}

// Point represents a geographic coordinate.
type Point struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Location represents the address of a business.
type Location struct {
	Address1       string   `json:"address1"`
	Address2       string   `json:"address2"`
	Address3       string   `json:"address3"`
	City           string   `json:"city"`
	ZipCode        string   `json:"zip_code"`
	Country        string   `json:"country"`
	State          string   `json:"state"`
	DisplayAddress []string `json:"display_address"`
}

// ReviewsResult represents reviews of a business.
type ReviewsResult struct {
	Reviews []*Review `json:"reviews"`
	Total   int       `json:"total"`
}

// Review represents a review excerpt.
type Review struct {
	ID          string  `json:"id"`
	Text        string  `json:"text"`
	Rating      float64 `json:"rating"`
	URL         string  `json:"url"`
	TimeCreated string  `json:"time_created"`
}

// EventsResult represents a set of events.
type EventsResult struct {
	Events []*Event `json:"events"`
	Total  int      `json:"total"`
}

// Event represents an event listed on Yelp.
type Event struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Description  string    `json:"description"`
	EventSiteURL string    `json:"event_site_url"`
	TimeStart    string    `json:"time_start"`
	TimeEnd      string    `json:"time_end"`
	Location     *Location `json:"location"`
}
