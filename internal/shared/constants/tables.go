package constants

// Database table names.
const (
	TableUsers       = "users"
	TableBooks       = "books"
	TableClasses     = "classes"
	TableFeedback    = "class_feedback"
	TableResources   = "resources"
	TableRequests    = "requests"
	TableAllocations = "allocations"
	TableActivities  = "activities"
)
