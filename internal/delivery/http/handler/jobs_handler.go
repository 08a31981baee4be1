package handler

import (
	"errors"

	"jobboard/internal/delivery/http/dto"
	"jobboard/internal/delivery/http/middleware"
	"jobboard/internal/delivery/http/validation"
	"jobboard/internal/domain/job"
	"jobboard/internal/pkg/response"
	"jobboard/internal/search"
	"jobboard/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type JobsHandler struct {
	uc usecase.JobUsecase
}

func NewJobsHandler(uc usecase.JobUsecase) *JobsHandler {
	return &JobsHandler{uc: uc}
}

// RegisterRoutes mounts the job routes on r. Static segments are registered
// before /jobs/:id so they are not captured as ids.
func (h *JobsHandler) RegisterRoutes(r fiber.Router, auth fiber.Handler) {
	if r == nil {
		return
	}

	r.Post("/jobs", auth, h.Create)
	r.Get("/jobs", h.List)
	r.Get("/jobs/search", h.Search)
	r.Get("/jobs/user/:id", auth, h.ListByOwner)
	r.Put("/jobs/like/:id", auth, h.Like)
	r.Put("/jobs/apply/:id", auth, h.Apply)
	r.Get("/jobs/:id", auth, h.Get)
	r.Delete("/jobs/:id", auth, h.Delete)
}

func (h *JobsHandler) Create(c fiber.Ctx) error {
	actor := middleware.ActorFromCtx(c)
	if actor.IsZero() {
		return mapJobUsecaseError(job.ErrUnauthenticated)
	}

	if err := validation.CreateJob(c.Body()); err != nil {
		return mapJobUsecaseError(err)
	}

	var req dto.CreateJobRequest
	if err := c.Bind().JSON(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid request payload", nil, err)
	}
	fields, err := req.Fields()
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid request payload", nil, err)
	}

	created, err := h.uc.Create(c.Context(), actor, fields)
	if err != nil {
		return mapJobUsecaseError(err)
	}
	return response.Success(c, fiber.StatusCreated, response.MessageCreated, dto.NewJobResponse(created))
}

func (h *JobsHandler) List(c fiber.Ctx) error {
	views, err := h.uc.List(c.Context())
	if err != nil {
		return mapJobUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, toJobResponses(views))
}

func (h *JobsHandler) Search(c fiber.Ctx) error {
	criteria := search.ParseCriteria(c.Query("title"), c.Query("location"), c.Query("tags"))

	views, err := h.uc.Search(c.Context(), criteria)
	if err != nil {
		return mapJobUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, toJobResponses(views))
}

func (h *JobsHandler) ListByOwner(c fiber.Ctx) error {
	views, err := h.uc.ListByOwner(c.Context(), job.ActorID(c.Params("id")))
	if err != nil {
		return mapJobUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, toJobResponses(views))
}

func (h *JobsHandler) Get(c fiber.Ctx) error {
	id, err := parseJobID(c)
	if err != nil {
		return mapJobUsecaseError(err)
	}

	view, err := h.uc.GetByID(c.Context(), id)
	if err != nil {
		return mapJobUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewEnrichedJobResponse(view.Job, view.Owner))
}

func (h *JobsHandler) Like(c fiber.Ctx) error {
	id, err := parseJobID(c)
	if err != nil {
		return mapJobUsecaseError(err)
	}

	updated, err := h.uc.Like(c.Context(), middleware.ActorFromCtx(c), id)
	if err != nil {
		return mapJobUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewJobResponse(updated))
}

func (h *JobsHandler) Apply(c fiber.Ctx) error {
	id, err := parseJobID(c)
	if err != nil {
		return mapJobUsecaseError(err)
	}

	updated, err := h.uc.Apply(c.Context(), middleware.ActorFromCtx(c), id)
	if err != nil {
		return mapJobUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewJobResponse(updated))
}

func (h *JobsHandler) Delete(c fiber.Ctx) error {
	id, err := parseJobID(c)
	if err != nil {
		return mapJobUsecaseError(err)
	}

	if err := h.uc.Delete(c.Context(), middleware.ActorFromCtx(c), id); err != nil {
		return mapJobUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, "Job deleted", nil)
}

// parseJobID treats a malformed id like an unknown one.
func parseJobID(c fiber.Ctx) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return uuid.Nil, job.ErrNotFound
	}
	return id, nil
}

func toJobResponses(views []usecase.JobView) []dto.JobResponse {
	out := make([]dto.JobResponse, 0, len(views))
	for _, v := range views {
		out = append(out, dto.NewEnrichedJobResponse(v.Job, v.Owner))
	}
	return out
}

func mapJobUsecaseError(err error) error {
	if err == nil {
		return nil
	}

	var verr *job.ValidationError
	switch {
	case errors.As(err, &verr):
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid job fields", verr.Fields, err)
	case errors.Is(err, job.ErrValidation):
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid job fields", nil, err)
	case errors.Is(err, job.ErrUnauthenticated):
		return middleware.NewAppError(fiber.StatusUnauthorized, "Not authorized", nil, err)
	case errors.Is(err, job.ErrForbidden):
		return middleware.NewAppError(fiber.StatusForbidden, "Not authorized", nil, err)
	case errors.Is(err, job.ErrNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Job not found", nil, err)
	case errors.Is(err, job.ErrAlreadyApplied):
		return middleware.NewAppError(fiber.StatusBadRequest, "Already applied", nil, err)
	case errors.Is(err, job.ErrStorage):
		return middleware.NewAppError(fiber.StatusServiceUnavailable, "Storage unavailable, retry later", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
