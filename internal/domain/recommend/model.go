package recommend

const (
	// UnavailableMessage is shown whenever the generator cannot produce text.
	UnavailableMessage = "Recommendation unavailable. Please try again later."
	// FindMessage is the find-scholarships confirmation. No matching is
	// performed behind it.
	FindMessage = "Scholarships matching your preferences will be displayed here!"
)

// Result is the outcome of a recommendation request. When Available is false,
// Text is empty and Message explains why.
type Result struct {
	RequestID string `json:"request_id"`
	Available bool   `json:"available"`
	Text      string `json:"text,omitempty"`
	Message   string `json:"message"`
}
