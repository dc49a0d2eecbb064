package domain

// Course is a catalog course document.
type Course struct {
	CourseID       string   `json:"id" dynamodbav:"course_id"`
	Slug           string   `json:"slug" dynamodbav:"slug"`
	Name           string   `json:"name" dynamodbav:"name"`
	Department     string   `json:"department" dynamodbav:"department"`
	Number         string   `json:"number" dynamodbav:"number"`
	Description    string   `json:"description,omitempty" dynamodbav:"description"`
	CreditHours    int      `json:"credit_hours" dynamodbav:"credit_hours"`
	OfficialURL    string   `json:"official_url,omitempty" dynamodbav:"official_url"`
	NotesURL       string   `json:"notes_url,omitempty" dynamodbav:"notes_url"`
	Aliases        []string `json:"aliases,omitempty" dynamodbav:"aliases"`
	Tags           []string `json:"tags,omitempty" dynamodbav:"tags"`
	IsFoundational bool     `json:"is_foundational" dynamodbav:"is_foundational"`
	IsDeprecated   bool     `json:"is_deprecated" dynamodbav:"is_deprecated"`
}

// Code returns the course code in "DEPT-NUMBER" form.
func (c Course) Code() string {
	return c.Department + "-" + c.Number
}

// ReviewStats aggregates the rating metrics over a course's reviews.
// Averages cover only reviews that carry the metric; a course with no
// reviews reports zeroes.
type ReviewStats struct {
	ReviewCount   int     `json:"review_count"`
	AvgRating     float64 `json:"avg_rating"`
	AvgDifficulty float64 `json:"avg_difficulty"`
	AvgWorkload   float64 `json:"avg_workload"`
}

// CourseWithStats is a course enriched with aggregated review stats.
type CourseWithStats struct {
	Course
	Stats ReviewStats `json:"stats"`
}

// CourseReview is a review as embedded in a course detail response, with its
// semester reference resolved.
type CourseReview struct {
	Review
	Semester *Semester `json:"semester,omitempty"`
}

// CourseDetail is a course with its full reviews, newest first.
type CourseDetail struct {
	Course
	Reviews []CourseReview `json:"reviews"`
}
