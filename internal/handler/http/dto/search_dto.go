package dto

// SearchQuery is the query string for the search endpoint. Type narrows the
// search to one content type; empty means all types.
type SearchQuery struct {
	Query string `form:"query"`
	Type  string `form:"type" binding:"omitempty,searchtype"`
}
