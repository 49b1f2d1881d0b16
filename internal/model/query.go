package model

// Direction selects the sort order for a table query.
type Direction string

const (
	Ascending  Direction = "ascending"
	Descending Direction = "descending"
)

// SearchSpec is a free-text term matched against a set of record fields.
// An empty term matches every record.
type SearchSpec struct {
	Term   string   `json:"term"`
	Fields []string `json:"fields"`
}

// SortSpec names the single active sort field and its direction.
type SortSpec struct {
	Field     string    `json:"field"`
	Direction Direction `json:"direction"`
}

// PageSpec is a 1-based page request with a fixed page size.
// An out-of-range page yields an empty slice, never an error.
type PageSpec struct {
	Page int `json:"page"`
	Size int `json:"size"`
}

// TableQuery is the full filter/sort/page state of one table view,
// built per request from query parameters.
type TableQuery struct {
	Search SearchSpec `json:"search"`
	Sort   SortSpec   `json:"sort"`
	Page   PageSpec   `json:"page"`
}

// Pagination is the metadata returned alongside every list response.
type Pagination struct {
	Page       int `json:"page"`
	PageSize   int `json:"page_size"`
	Total      int `json:"total"`
	TotalPages int `json:"total_pages"`
}
