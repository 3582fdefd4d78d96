package model

import (
	"time"

	"github.com/google/uuid"
)

// QuizResult is the scored outcome of a quiz submission. Exactly one exists
// per quiz. ExamID is set when the quiz was started from an exam;
// CorrectAnswers doubles as the integer exam score.
type QuizResult struct {
	ID             uuid.UUID  `json:"id"`
	QuizID         uuid.UUID  `json:"quiz_id"`
	StudentID      uuid.UUID  `json:"student_id"`
	ExamID         *uuid.UUID `json:"exam_id,omitempty"`
	TotalQuestions int        `json:"total_questions"`
	CorrectAnswers int        `json:"correct_answers"`
	Score          float64    `json:"score"`
	CompletedAt    time.Time  `json:"completed_at"`
}
