package model

import (
	"time"

	"github.com/google/uuid"
)

// Exam is a teacher-authored, reusable named set of question references
// with a time limit.
type Exam struct {
	ID               uuid.UUID   `json:"id"`
	Name             string      `json:"name"`
	QuestionIDs      []uuid.UUID `json:"question_ids"`
	TimeLimitMinutes int         `json:"time_limit_minutes"`
	CreatedBy        uuid.UUID   `json:"created_by"`
	CreatedAt        time.Time   `json:"created_at"`
	UpdatedAt        time.Time   `json:"updated_at"`
}

// CreateExamRequest is the payload for creating a new exam.
type CreateExamRequest struct {
	Name             string      `json:"name" binding:"required,min=1,max=255"`
	QuestionIDs      []uuid.UUID `json:"question_ids" binding:"omitempty"`
	TimeLimitMinutes int         `json:"time_limit_minutes" binding:"required,min=1,max=480"`
}

// UpdateExamRequest is the payload for updating an existing exam.
// Nil/zero fields are left unchanged.
type UpdateExamRequest struct {
	Name             string      `json:"name" binding:"omitempty,min=1,max=255"`
	QuestionIDs      []uuid.UUID `json:"question_ids" binding:"omitempty"`
	TimeLimitMinutes int         `json:"time_limit_minutes" binding:"omitempty,min=1,max=480"`
}

// AddExamQuestionsRequest attaches existing questions to an exam.
type AddExamQuestionsRequest struct {
	QuestionIDs []uuid.UUID `json:"question_ids" binding:"required,min=1"`
}

// ExamQuestion is a question as exposed under an exam. CorrectOption is
// omitted from serialization unless explicitly included for teachers.
type ExamQuestion struct {
	ID            uuid.UUID `json:"id"`
	Text          string    `json:"text"`
	Options       []string  `json:"options"`
	CorrectOption *int      `json:"correct_option,omitempty"`
	Category      string    `json:"category"`
	Difficulty    int       `json:"difficulty"`
}

// ExamWithQuestions is the full exam paper.
type ExamWithQuestions struct {
	ExamID           uuid.UUID      `json:"exam_id"`
	Name             string         `json:"name"`
	TimeLimitMinutes int            `json:"time_limit_minutes"`
	Questions        []ExamQuestion `json:"questions"`
}
