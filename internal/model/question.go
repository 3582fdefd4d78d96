package model

import (
	"time"

	"github.com/google/uuid"
)

// Question is a pool question authored by a teacher. CorrectOption is an
// index into Options.
type Question struct {
	ID            uuid.UUID `json:"id"`
	Text          string    `json:"text"`
	Options       []string  `json:"options"`
	CorrectOption int       `json:"correct_option"`
	Category      string    `json:"category"`
	Difficulty    int       `json:"difficulty"`
	CreatedBy     uuid.UUID `json:"created_by"`
	CreatedAt     time.Time `json:"created_at"`
}

// CreateQuestionRequest is the payload for authoring a question.
type CreateQuestionRequest struct {
	Text          string   `json:"text" binding:"required,min=1,max=2000"`
	Options       []string `json:"options" binding:"required,min=2,max=10,dive,required,max=500"`
	CorrectOption int      `json:"correct_option" binding:"min=0"`
	Category      string   `json:"category" binding:"omitempty,max=100"`
	Difficulty    int      `json:"difficulty" binding:"min=0,max=5"`
}

// UpdateQuestionRequest is the payload for editing a question. The full
// shape is replaced, matching the create payload.
type UpdateQuestionRequest = CreateQuestionRequest
