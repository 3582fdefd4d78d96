package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
	"github.com/quizmaster/quizmaster-backend/internal/middleware"
	"github.com/quizmaster/quizmaster-backend/internal/model"
	"github.com/quizmaster/quizmaster-backend/internal/policy"
	"github.com/quizmaster/quizmaster-backend/internal/response"
	"github.com/quizmaster/quizmaster-backend/internal/service"
	"github.com/quizmaster/quizmaster-backend/internal/validator"
)

const (
	defaultQuizSize = 10
	maxQuizSize     = 50
)

// QuizHandler handles the quiz lifecycle endpoints.
type QuizHandler struct {
	quizService *service.QuizService
}

// NewQuizHandler creates a new QuizHandler.
func NewQuizHandler(quizService *service.QuizService) *QuizHandler {
	return &QuizHandler{quizService: quizService}
}

// CreateRandom godoc
// POST /api/v1/quizzes/random?count=N
// Starts a quiz from a random sample of the question pool.
func (h *QuizHandler) CreateRandom(c *gin.Context) {
	count, err := strconv.Atoi(c.DefaultQuery("count", strconv.Itoa(defaultQuizSize)))
	if err != nil || count < 1 {
		count = defaultQuizSize
	}
	if count > maxQuizSize {
		count = maxQuizSize
	}

	claims := middleware.GetClaims(c)
	quiz, err := h.quizService.CreateRandom(c.Request.Context(), claims.UserID, count)
	if err != nil {
		if errors.Is(err, service.ErrNoQuestions) {
			response.Fail(c, http.StatusBadRequest, response.ErrNoQuestions)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"quiz": quiz.ForStudent()})
}

// Get godoc
// GET /api/v1/quizzes/:id
// Returns a quiz. While in progress the owner sees it without the answer
// key; once completed (or for teachers) the full review is returned.
func (h *QuizHandler) Get(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	quiz, err := h.quizService.GetQuiz(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			response.Fail(c, http.StatusNotFound, response.ErrNotFound)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	claims := middleware.GetClaims(c)
	if !policy.CanAccessOwned(claims.Role, claims.UserID, quiz.StudentID) {
		response.Fail(c, http.StatusForbidden, response.ErrForbidden)
		return
	}

	if claims.Role == model.RoleTeacher || quiz.Completed {
		response.Success(c, http.StatusOK, gin.H{"quiz": quiz.ForReview()})
		return
	}
	response.Success(c, http.StatusOK, gin.H{"quiz": quiz.ForStudent()})
}

// Submit godoc
// POST /api/v1/quizzes/:id/submit
// Records the student's answers and returns the scored result. A quiz can
// be submitted exactly once.
func (h *QuizHandler) Submit(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var req model.SubmitQuizRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	claims := middleware.GetClaims(c)
	result, err := h.quizService.Submit(c.Request.Context(), id, claims.UserID, req.Answers)
	if err != nil {
		switch {
		case errors.Is(err, pgx.ErrNoRows):
			response.Fail(c, http.StatusNotFound, response.ErrNotFound)
		case errors.Is(err, service.ErrNotQuizOwner):
			response.Fail(c, http.StatusForbidden, response.ErrNotQuizOwner)
		case errors.Is(err, service.ErrQuizCompleted):
			response.Fail(c, http.StatusConflict, response.ErrQuizCompleted)
		case errors.Is(err, service.ErrAnswerNotInQuiz):
			response.Fail(c, http.StatusBadRequest, response.ErrQuestionNotInQuiz)
		default:
			response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{"result": result})
}

// GetResult godoc
// GET /api/v1/quizzes/:id/result
// Returns the result of a completed quiz. Owner or teacher only.
func (h *QuizHandler) GetResult(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	result, err := h.quizService.GetResult(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			response.Fail(c, http.StatusNotFound, response.ErrNotFound)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	claims := middleware.GetClaims(c)
	if !policy.CanAccessOwned(claims.Role, claims.UserID, result.StudentID) {
		response.Fail(c, http.StatusForbidden, response.ErrForbidden)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"result": result})
}

// MyResults godoc
// GET /api/v1/quizzes/my-results
// Returns the authenticated student's results, newest first.
func (h *QuizHandler) MyResults(c *gin.Context) {
	claims := middleware.GetClaims(c)

	results, err := h.quizService.StudentResults(c.Request.Context(), claims.UserID)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"results": results})
}
