package entity

// StatusCount is the number of jobs an owner has in one status.
type StatusCount struct {
	Status JobStatus
	Count  int64
}

// MonthlyCount is the number of jobs an owner created in one calendar month.
type MonthlyCount struct {
	Year  int
	Month int
	Count int64
}
