package domain

import "time"

// Choice is one journaled category/dish pair.
type Choice struct {
	Category string `json:"category"`
	Food     string `json:"food"`
}

// Submission is a locally journaled make-order call. The journal is a
// convenience record of what was sent; the service remains the source of
// truth for what stands.
type Submission struct {
	ID          int64
	Date        string
	MenuID      string
	OrderID     string
	Foods       []Choice
	SubmittedAt time.Time
}
