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

// ExamHandler handles exam management and the student exam entry point.
type ExamHandler struct {
	examService *service.ExamService
	quizService *service.QuizService
}

// NewExamHandler creates a new ExamHandler.
func NewExamHandler(examService *service.ExamService, quizService *service.QuizService) *ExamHandler {
	return &ExamHandler{
		examService: examService,
		quizService: quizService,
	}
}

// List godoc
// GET /api/v1/exams?page=&per_page=
func (h *ExamHandler) List(c *gin.Context) {
	page, perPage := pageParams(c)

	exams, pagination, err := h.examService.List(c.Request.Context(), page, perPage)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.SuccessWithPagination(c, http.StatusOK, gin.H{"exams": exams}, pagination)
}

// Get godoc
// GET /api/v1/exams/:id
// Returns the exam metadata with its question references.
func (h *ExamHandler) Get(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	exam, err := h.examService.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			response.Fail(c, http.StatusNotFound, response.ErrNotFound)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"exam": exam})
}

// Questions godoc
// GET /api/v1/exams/:id/questions
// Returns the exam paper. The answer key is included for teachers only.
func (h *ExamHandler) Questions(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	claims := middleware.GetClaims(c)
	includeAnswers := claims != nil && claims.Role == model.RoleTeacher

	paper, err := h.examService.GetWithQuestions(c.Request.Context(), id, includeAnswers)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			response.Fail(c, http.StatusNotFound, response.ErrNotFound)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"exam": paper})
}

// Create godoc
// POST /api/v1/exams
func (h *ExamHandler) Create(c *gin.Context) {
	var req model.CreateExamRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	claims := middleware.GetClaims(c)
	exam := &model.Exam{
		Name:             req.Name,
		QuestionIDs:      req.QuestionIDs,
		TimeLimitMinutes: req.TimeLimitMinutes,
		CreatedBy:        claims.UserID,
	}

	if err := h.examService.Create(c.Request.Context(), exam); err != nil {
		if errors.Is(err, service.ErrQuestionNotFound) {
			response.Fail(c, http.StatusBadRequest, response.ErrQuestionNotFound)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"exam": exam})
}

// Update godoc
// PUT /api/v1/exams/:id
// Updates name and time limit; when question_ids is present the exam's
// question set is replaced wholesale.
func (h *ExamHandler) Update(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var req model.UpdateExamRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	exam, err := h.examService.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			response.Fail(c, http.StatusNotFound, response.ErrNotFound)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	if req.Name != "" {
		exam.Name = req.Name
	}
	if req.TimeLimitMinutes != 0 {
		exam.TimeLimitMinutes = req.TimeLimitMinutes
	}
	replaceQuestions := req.QuestionIDs != nil
	if replaceQuestions {
		exam.QuestionIDs = req.QuestionIDs
	}

	if err := h.examService.Update(c.Request.Context(), exam, replaceQuestions); err != nil {
		switch {
		case errors.Is(err, service.ErrQuestionNotFound):
			response.Fail(c, http.StatusBadRequest, response.ErrQuestionNotFound)
		case errors.Is(err, pgx.ErrNoRows):
			response.Fail(c, http.StatusNotFound, response.ErrNotFound)
		default:
			response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{"exam": exam})
}

// Delete godoc
// DELETE /api/v1/exams/:id
func (h *ExamHandler) Delete(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.examService.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			response.Fail(c, http.StatusNotFound, response.ErrNotFound)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{})
}

// AddQuestions godoc
// POST /api/v1/exams/:id/questions
// Attaches existing pool questions to the exam.
func (h *ExamHandler) AddQuestions(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var req model.AddExamQuestionsRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	if err := h.examService.AddQuestions(c.Request.Context(), id, req.QuestionIDs); err != nil {
		switch {
		case errors.Is(err, service.ErrQuestionNotFound):
			response.Fail(c, http.StatusBadRequest, response.ErrQuestionNotFound)
		case errors.Is(err, pgx.ErrNoRows):
			response.Fail(c, http.StatusNotFound, response.ErrNotFound)
		default:
			response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{})
}

// RemoveQuestion godoc
// DELETE /api/v1/exams/:id/questions/:questionId
func (h *ExamHandler) RemoveQuestion(c *gin.Context) {
	examID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}
	questionID, ok := parseUUIDParam(c, "questionId")
	if !ok {
		return
	}

	if err := h.examService.RemoveQuestion(c.Request.Context(), examID, questionID); err != nil {
		switch {
		case errors.Is(err, service.ErrQuestionNotInExam):
			response.Fail(c, http.StatusBadRequest, response.ErrQuestionNotInExam)
		case errors.Is(err, pgx.ErrNoRows):
			response.Fail(c, http.StatusNotFound, response.ErrNotFound)
		default:
			response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{})
}

// Start godoc
// POST /api/v1/exams/:id/start
// Starts a quiz from the exam's question set for the authenticated student.
func (h *ExamHandler) Start(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	claims := middleware.GetClaims(c)
	quiz, err := h.quizService.CreateFromExam(c.Request.Context(), claims.UserID, id)
	if err != nil {
		switch {
		case errors.Is(err, pgx.ErrNoRows):
			response.Fail(c, http.StatusNotFound, response.ErrNotFound)
		case errors.Is(err, service.ErrNoQuestions):
			response.Fail(c, http.StatusBadRequest, response.ErrNoQuestions)
		default:
			response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		}
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"quiz": quiz.ForStudent()})
}
