package validate

import (
	"testing"

	"github.com/course-reviews-api/internal/domain"
	"github.com/stretchr/testify/assert"
)

func validSubmission() domain.ReviewSubmission {
	return domain.ReviewSubmission{
		CourseID:   "course-1",
		SemesterID: "semester-1",
		Rating:     4,
		Difficulty: 3,
		Workload:   20,
		Body:       "Solid course.",
		Username:   "jdoe",
		Code:       "123456",
	}
}

func TestMessages_ValidSubmission(t *testing.T) {
	assert.Nil(t, Messages(validSubmission()))
}

func TestMessages_UsesLabelsAndWording(t *testing.T) {
	sub := validSubmission()
	sub.CourseID = ""
	sub.Rating = 6
	sub.Workload = 101
	sub.Code = "12345"

	msgs := Messages(sub)

	assert.ElementsMatch(t, []string{
		"Course is required.",
		"Rating must be at most 5.",
		"Workload must be at most 100.",
		"Code must be exactly 6 digits.",
	}, msgs)
}

func TestMessages_OneMessagePerViolatedField(t *testing.T) {
	msgs := Messages(domain.ReviewSubmission{})
	assert.Len(t, msgs, 8)
}
