package discover

type SearchRequest struct {
	State    string `json:"state"`
	Category string `json:"category"`
}
