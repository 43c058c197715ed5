package scholarship

// SearchOptions provides paging for search.
type SearchOptions struct {
	Limit  int
	Offset int
}
