package yelp

// searchResponse is the subset of the Yelp business search payload we read.
type searchResponse struct {
	Businesses []business `json:"businesses"`
}

type business struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Rating   *float64 `json:"rating"`
	Price    string   `json:"price"`
	ImageURL string   `json:"image_url"`
	URL      string   `json:"url"`
	Location struct {
		Address1 string `json:"address1"`
		City     string `json:"city"`
	} `json:"location"`
}
