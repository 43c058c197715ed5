package scholarship

// Record is a named award opportunity with a due date and a free-text
// description. Name is the de facto key; duplicate names are allowed.
type Record struct {
	Name    string `json:"name" yaml:"name"`
	DueDate Date   `json:"due_date" yaml:"due_date"`
	Summary string `json:"summary" yaml:"summary"`
}

// RawRecord is a record as it appears at the load boundary, before the due
// date has been validated.
type RawRecord struct {
	Name    string `json:"name" yaml:"name"`
	DueDate string `json:"due_date" yaml:"due_date"`
	Summary string `json:"summary" yaml:"summary"`
}

// SearchResult is a full-text search hit.
type SearchResult struct {
	Record  Record  `json:"record"`
	Rank    float64 `json:"rank"`
	Snippet string  `json:"snippet,omitempty"`
}
