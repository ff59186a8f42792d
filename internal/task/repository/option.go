package repository

// ListOptions filters a task listing. Zero values mean "no filter".
type ListOptions struct {
	Category  string
	Completed *bool
	DueBefore string // "2006-01-02", inclusive
	Limit     int    // 0 means no limit
	Offset    int
}

// UpdateOptions is a partial update; nil fields are left as stored. String
// pointers to "" clear the stored value.
type UpdateOptions struct {
	Title            *string
	Details          *string
	DueDate          *string
	StartTime        *string
	EndTime          *string
	Category         *string
	Completed        *bool
	RemindedToday    *bool
	RemindedThreeDay *bool
}
