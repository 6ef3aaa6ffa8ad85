package eventbrite

// searchResponse is the subset of the Eventbrite event search payload we
// read, with venue expansion requested.
type searchResponse struct {
	Events []event `json:"events"`
}

type event struct {
	ID   string `json:"id"`
	Name struct {
		Text string `json:"text"`
	} `json:"name"`
	URL  string `json:"url"`
	Logo *struct {
		URL string `json:"url"`
	} `json:"logo"`
	Venue *struct {
		Address *struct {
			Address1 string `json:"address_1"`
			City     string `json:"city"`
		} `json:"address"`
	} `json:"venue"`
	Start struct {
		Local string `json:"local"`
	} `json:"start"`
	End struct {
		Local string `json:"local"`
	} `json:"end"`
}
