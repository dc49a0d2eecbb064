package domain

import "time"

// Semester terms.
const (
	TermSpring = "spring"
	TermSummer = "summer"
	TermFall   = "fall"
)

// Semester is an academic term document.
type Semester struct {
	SemesterID string    `json:"id" dynamodbav:"semester_id"`
	Term       string    `json:"term" dynamodbav:"term"` // "spring" | "summer" | "fall"
	StartDate  time.Time `json:"start_date" dynamodbav:"start_date"`
}
