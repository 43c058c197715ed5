package activity

// ListActivityOptions provides filtering options for listing activity.
type ListActivityOptions struct {
	ActivityType *ActivityType
	RequestID    *string
	Limit        int
	Offset       int
}
