package distancematrix

// Response is the Distance Matrix API response body, reduced to the fields
// the planner reads.
type Response struct {
	Status string `json:"status"` // Top-level status, "OK" on success
	Rows   []Row  `json:"rows"`
}

// Row is one origin's result row.
type Row struct {
	Elements []Element `json:"elements"`
}

// Element is one origin/destination cell.
type Element struct {
	Status            string         `json:"status"` // "OK" when the pair is routable
	Duration          *DurationValue `json:"duration"`
	DurationInTraffic *DurationValue `json:"duration_in_traffic"`
}

// DurationValue carries a duration in seconds.
type DurationValue struct {
	Value int64  `json:"value"` // Seconds
	Text  string `json:"text"`
}
