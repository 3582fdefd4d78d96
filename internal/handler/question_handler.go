package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
	"github.com/quizmaster/quizmaster-backend/internal/middleware"
	"github.com/quizmaster/quizmaster-backend/internal/model"
	"github.com/quizmaster/quizmaster-backend/internal/response"
	"github.com/quizmaster/quizmaster-backend/internal/service"
	"github.com/quizmaster/quizmaster-backend/internal/validator"
)

// QuestionHandler handles question pool endpoints. All routes are teacher only.
type QuestionHandler struct {
	questionService *service.QuestionService
}

// NewQuestionHandler creates a new QuestionHandler.
func NewQuestionHandler(questionService *service.QuestionService) *QuestionHandler {
	return &QuestionHandler{questionService: questionService}
}

// List godoc
// GET /api/v1/questions?category=&page=&per_page=
func (h *QuestionHandler) List(c *gin.Context) {
	page, perPage := pageParams(c)

	questions, pagination, err := h.questionService.List(c.Request.Context(), c.Query("category"), page, perPage)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.SuccessWithPagination(c, http.StatusOK, gin.H{"questions": questions}, pagination)
}

// Get godoc
// GET /api/v1/questions/:id
func (h *QuestionHandler) Get(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	question, err := h.questionService.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			response.Fail(c, http.StatusNotFound, response.ErrNotFound)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"question": question})
}

// Create godoc
// POST /api/v1/questions
func (h *QuestionHandler) Create(c *gin.Context) {
	var req model.CreateQuestionRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}
	if req.CorrectOption >= len(req.Options) {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, map[string]string{
			"correct_option": "correct_option must index into options",
		})
		return
	}

	claims := middleware.GetClaims(c)
	question := &model.Question{
		Text:          req.Text,
		Options:       req.Options,
		CorrectOption: req.CorrectOption,
		Category:      req.Category,
		Difficulty:    req.Difficulty,
		CreatedBy:     claims.UserID,
	}

	if err := h.questionService.Create(c.Request.Context(), question); err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"question": question})
}

// Update godoc
// PUT /api/v1/questions/:id
// Replaces the question's content. In-flight quizzes keep their snapshot.
func (h *QuestionHandler) Update(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var req model.UpdateQuestionRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}
	if req.CorrectOption >= len(req.Options) {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, map[string]string{
			"correct_option": "correct_option must index into options",
		})
		return
	}

	question := &model.Question{
		ID:            id,
		Text:          req.Text,
		Options:       req.Options,
		CorrectOption: req.CorrectOption,
		Category:      req.Category,
		Difficulty:    req.Difficulty,
	}

	if err := h.questionService.Update(c.Request.Context(), question); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			response.Fail(c, http.StatusNotFound, response.ErrNotFound)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"question": question})
}

// Delete godoc
// DELETE /api/v1/questions/:id
func (h *QuestionHandler) Delete(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.questionService.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			response.Fail(c, http.StatusNotFound, response.ErrNotFound)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{})
}
