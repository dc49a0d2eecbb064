package domain

import "time"

// DocTypeReview is the constant doc_type attribute on review items. It is the
// partition key of the doc_type-created_at GSI used for recency queries.
const DocTypeReview = "review"

// Review is a persisted review document. Reviews are immutable once created;
// there is no update or delete path.
type Review struct {
	ReviewID   string    `json:"id" dynamodbav:"review_id"`
	DocType    string    `json:"-" dynamodbav:"doc_type"`
	AuthorID   string    `json:"author_id" dynamodbav:"author_id"` // encrypted username, never the plaintext
	CourseID   string    `json:"course_id" dynamodbav:"course_id"`
	SemesterID string    `json:"semester_id" dynamodbav:"semester_id"`
	Rating     int       `json:"rating" dynamodbav:"rating"`
	Difficulty int       `json:"difficulty" dynamodbav:"difficulty"`
	Workload   int       `json:"workload" dynamodbav:"workload"`
	Body       string    `json:"body" dynamodbav:"body"`
	CreatedAt  time.Time `json:"created" dynamodbav:"created_at"`
}

// ReviewSubmission is the transient input DTO for creating a review. The
// username and code never leave the submission pipeline.
type ReviewSubmission struct {
	CourseID   string `json:"courseId" label:"Course" validate:"required"`
	SemesterID string `json:"semesterId" label:"Semester" validate:"required"`
	Rating     int    `json:"rating" label:"Rating" validate:"required,min=1,max=5"`
	Difficulty int    `json:"difficulty" label:"Difficulty" validate:"required,min=1,max=5"`
	Workload   int    `json:"workload" label:"Workload" validate:"required,min=1,max=100"`
	Body       string `json:"body" label:"Body" validate:"required"`
	Username   string `json:"username" label:"Username" validate:"required"`
	Code       string `json:"code" label:"Code" validate:"required,len=6"`
}

// RecentReview is a review joined with the course and semester it references,
// as served by the recent-reviews feed.
type RecentReview struct {
	Review
	CourseName string    `json:"course_name"`
	CourseSlug string    `json:"course_slug"`
	Semester   *Semester `json:"semester,omitempty"`
}
