package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
	"github.com/quizmaster/quizmaster-backend/internal/middleware"
	"github.com/quizmaster/quizmaster-backend/internal/policy"
	"github.com/quizmaster/quizmaster-backend/internal/response"
	"github.com/quizmaster/quizmaster-backend/internal/service"
)

// ResultHandler handles result browsing and deletion.
type ResultHandler struct {
	resultService *service.ResultService
}

// NewResultHandler creates a new ResultHandler.
func NewResultHandler(resultService *service.ResultService) *ResultHandler {
	return &ResultHandler{resultService: resultService}
}

// List godoc
// GET /api/v1/results?page=&per_page=
// Lists all results. Teacher only.
func (h *ResultHandler) List(c *gin.Context) {
	page, perPage := pageParams(c)

	results, pagination, err := h.resultService.List(c.Request.Context(), page, perPage)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.SuccessWithPagination(c, http.StatusOK, gin.H{"results": results}, pagination)
}

// ListByStudent godoc
// GET /api/v1/results/user/:id
// Lists a student's results. Accessible to teachers and the student.
func (h *ResultHandler) ListByStudent(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	claims := middleware.GetClaims(c)
	if !policy.CanAccessOwned(claims.Role, claims.UserID, id) {
		response.Fail(c, http.StatusForbidden, response.ErrForbidden)
		return
	}

	results, err := h.resultService.ListByStudent(c.Request.Context(), id)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"results": results})
}

// ListByExam godoc
// GET /api/v1/results/exam/:id
// Lists the results of every quiz started from an exam. Teacher only.
func (h *ResultHandler) ListByExam(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	results, err := h.resultService.ListByExam(c.Request.Context(), id)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"results": results})
}

// Delete godoc
// DELETE /api/v1/results/:id
// Removes a result. Teacher only.
func (h *ResultHandler) Delete(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.resultService.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			response.Fail(c, http.StatusNotFound, response.ErrNotFound)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{})
}
