package model

import (
	"time"

	"github.com/google/uuid"
)

// Quiz is a per-student snapshot instantiation of sampled questions.
// Once Completed is true the quiz is terminal and its answers immutable.
type Quiz struct {
	ID          uuid.UUID      `json:"id"`
	StudentID   uuid.UUID      `json:"student_id"`
	ExamID      *uuid.UUID     `json:"exam_id,omitempty"`
	Questions   []QuizQuestion `json:"questions"`
	Completed   bool           `json:"completed"`
	CreatedAt   time.Time      `json:"created_at"`
	CompletedAt *time.Time     `json:"completed_at,omitempty"`
}

// QuizQuestion is a snapshot of a pool question embedded in a quiz.
// Copying text/options/correct option at creation time means later edits
// to the source question do not affect an in-flight quiz.
type QuizQuestion struct {
	ID            uuid.UUID `json:"id"`
	QuestionID    uuid.UUID `json:"question_id"`
	Text          string    `json:"text"`
	Options       []string  `json:"options"`
	CorrectOption int       `json:"-"`
	StudentAnswer *int      `json:"student_answer,omitempty"`
	OrderNum      int       `json:"order_num"`
}

// QuizForStudent is a quiz as returned to its owner while in progress,
// with correct answers stripped.
type QuizForStudent struct {
	ID          uuid.UUID             `json:"id"`
	StudentID   uuid.UUID             `json:"student_id"`
	ExamID      *uuid.UUID            `json:"exam_id,omitempty"`
	Questions   []QuizQuestionPreview `json:"questions"`
	Completed   bool                  `json:"completed"`
	CreatedAt   time.Time             `json:"created_at"`
	CompletedAt *time.Time            `json:"completed_at,omitempty"`
}

// QuizQuestionPreview is a quiz question without its answer key.
type QuizQuestionPreview struct {
	QuestionID    uuid.UUID `json:"question_id"`
	Text          string    `json:"text"`
	Options       []string  `json:"options"`
	StudentAnswer *int      `json:"student_answer,omitempty"`
	OrderNum      int       `json:"order_num"`
}

// ForStudent strips the answer key from a quiz.
func (q *Quiz) ForStudent() QuizForStudent {
	questions := make([]QuizQuestionPreview, len(q.Questions))
	for i, qq := range q.Questions {
		questions[i] = QuizQuestionPreview{
			QuestionID:    qq.QuestionID,
			Text:          qq.Text,
			Options:       qq.Options,
			StudentAnswer: qq.StudentAnswer,
			OrderNum:      qq.OrderNum,
		}
	}
	return QuizForStudent{
		ID:          q.ID,
		StudentID:   q.StudentID,
		ExamID:      q.ExamID,
		Questions:   questions,
		Completed:   q.Completed,
		CreatedAt:   q.CreatedAt,
		CompletedAt: q.CompletedAt,
	}
}

// QuizReview is a quiz with its answer key, shown to teachers and to
// owners once the quiz is completed.
type QuizReview struct {
	ID          uuid.UUID            `json:"id"`
	StudentID   uuid.UUID            `json:"student_id"`
	ExamID      *uuid.UUID           `json:"exam_id,omitempty"`
	Questions   []QuizQuestionReview `json:"questions"`
	Completed   bool                 `json:"completed"`
	CreatedAt   time.Time            `json:"created_at"`
	CompletedAt *time.Time           `json:"completed_at,omitempty"`
}

// QuizQuestionReview is a quiz question with its answer key.
type QuizQuestionReview struct {
	QuestionID    uuid.UUID `json:"question_id"`
	Text          string    `json:"text"`
	Options       []string  `json:"options"`
	CorrectOption int       `json:"correct_option"`
	StudentAnswer *int      `json:"student_answer,omitempty"`
	OrderNum      int       `json:"order_num"`
}

// ForReview exposes the answer key alongside the recorded answers.
func (q *Quiz) ForReview() QuizReview {
	questions := make([]QuizQuestionReview, len(q.Questions))
	for i, qq := range q.Questions {
		questions[i] = QuizQuestionReview{
			QuestionID:    qq.QuestionID,
			Text:          qq.Text,
			Options:       qq.Options,
			CorrectOption: qq.CorrectOption,
			StudentAnswer: qq.StudentAnswer,
			OrderNum:      qq.OrderNum,
		}
	}
	return QuizReview{
		ID:          q.ID,
		StudentID:   q.StudentID,
		ExamID:      q.ExamID,
		Questions:   questions,
		Completed:   q.Completed,
		CreatedAt:   q.CreatedAt,
		CompletedAt: q.CompletedAt,
	}
}

// SubmitQuizRequest carries a student's answers keyed by source question id.
// Values are option indexes.
type SubmitQuizRequest struct {
	Answers map[uuid.UUID]int `json:"answers" binding:"required"`
}
