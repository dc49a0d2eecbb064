package http

import (
	"github.com/course-reviews-api/internal/infrastructure/dynamo"
	"github.com/course-reviews-api/internal/infrastructure/twilio"
	"github.com/course-reviews-api/internal/pkg/identity"
)

// Deps holds all infrastructure dependencies for the router.
type Deps struct {
	CourseRepo   *dynamo.CourseRepo
	SemesterRepo *dynamo.SemesterRepo
	ProgramRepo  *dynamo.ProgramRepo
	ReviewRepo   *dynamo.ReviewRepo
	Verifier     *twilio.Verifier
	Encryptor    *identity.Encryptor
}
