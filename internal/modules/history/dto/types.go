package dto

import "time"

type Choice struct {
	Category string
	Food     string
}

type RecordInput struct {
	Date    string
	MenuID  string
	OrderID string
	Foods   []Choice
}

type SubmissionOutput struct {
	Date        string
	Foods       []Choice
	SubmittedAt time.Time
	Rewrite     bool
}
