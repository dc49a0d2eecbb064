package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"golang.org/x/time/rate"

	"github.com/course-reviews-api/internal/application/course"
	"github.com/course-reviews-api/internal/application/program"
	"github.com/course-reviews-api/internal/application/review"
	"github.com/course-reviews-api/internal/application/semester"
	"github.com/course-reviews-api/internal/application/verification"
	"github.com/course-reviews-api/internal/config"
	"github.com/course-reviews-api/internal/transport/http/handler"
	appmiddleware "github.com/course-reviews-api/internal/transport/http/middleware"
)

// NewRouter builds and returns the application router.
func NewRouter(cfg *config.Config, deps *Deps) http.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.RequestID)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	// 5 requests/second, burst of 10 — applied to the public write endpoints.
	sensitiveRL := appmiddleware.NewRateLimiter(rate.Limit(5), 10)

	verificationSvc := verification.NewService(deps.Verifier)
	reviewSvc := review.NewService(review.ServiceDeps{
		Checker:      deps.Verifier,
		Encryptor:    deps.Encryptor,
		ReviewRepo:   deps.ReviewRepo,
		CourseRepo:   deps.CourseRepo,
		SemesterRepo: deps.SemesterRepo,
	})
	courseSvc := course.NewService(deps.CourseRepo, deps.ReviewRepo, deps.SemesterRepo)
	semesterSvc := semester.NewService(deps.SemesterRepo)
	programSvc := program.NewService(deps.ProgramRepo)

	healthH := handler.NewHealthHandler()
	verificationH := handler.NewVerificationHandler(verificationSvc)
	reviewH := handler.NewReviewHandler(reviewSvc)
	courseH := handler.NewCourseHandler(courseSvc)
	semesterH := handler.NewSemesterHandler(semesterSvc)
	programH := handler.NewProgramHandler(programSvc)

	r.Route("/api", func(r chi.Router) {
		r.Get("/health-check/{action}", healthH.Ping)

		r.With(sensitiveRL.Limit).Post("/verifications", verificationH.Create)
		r.With(sensitiveRL.Limit).Post("/reviews", reviewH.Create)

		r.Get("/reviews/recent", reviewH.Recent)
		r.Get("/courses", courseH.List)
		r.Get("/courses/{slug}", courseH.Get)
		r.Get("/semesters", semesterH.List)
		r.Get("/programs", programH.List)
	})

	return r
}
