package types

// FilterAll is the filter value that disables a filter dimension.
const FilterAll = "all"

// Record represents a single saved link as exported by Pocket.
// Field order matches the CSV header and is preserved in JSON output.
type Record struct {
	Title     string `json:"title"`
	URL       string `json:"url"`
	TimeAdded string `json:"time_added"`
	Tags      string `json:"tags"`
	Status    string `json:"status"`
}

// CatalogDocument is the top-level wrapper for JSON API output
type CatalogDocument struct {
	Status  string   `json:"status"`
	Tag     string   `json:"tag"`
	Total   int      `json:"total"`
	Records []Record `json:"records"`
}
