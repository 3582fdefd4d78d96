package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/quizmaster/quizmaster-backend/internal/model"
	"github.com/quizmaster/quizmaster-backend/internal/repository"
	"github.com/quizmaster/quizmaster-backend/internal/response"
)

// QuestionService handles question pool business logic.
type QuestionService struct {
	questionRepo *repository.QuestionRepository
}

// NewQuestionService creates a new QuestionService.
func NewQuestionService(questionRepo *repository.QuestionRepository) *QuestionService {
	return &QuestionService{questionRepo: questionRepo}
}

// List retrieves questions with pagination and an optional category filter.
func (s *QuestionService) List(ctx context.Context, category string, page, perPage int) ([]model.Question, *response.Pagination, error) {
	page, perPage = clampPage(page, perPage)

	questions, total, err := s.questionRepo.ListPaginated(ctx, category, perPage, (page-1)*perPage)
	if err != nil {
		return nil, nil, err
	}
	if questions == nil {
		questions = []model.Question{}
	}
	return questions, buildPagination(page, perPage, total), nil
}

// GetByID retrieves a question.
func (s *QuestionService) GetByID(ctx context.Context, id uuid.UUID) (*model.Question, error) {
	return s.questionRepo.GetByID(ctx, id)
}

// Create stores a new question.
func (s *QuestionService) Create(ctx context.Context, q *model.Question) error {
	return s.questionRepo.Create(ctx, q)
}

// Update replaces a question's content.
func (s *QuestionService) Update(ctx context.Context, q *model.Question) error {
	return s.questionRepo.Update(ctx, q)
}

// Delete removes a question.
func (s *QuestionService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.questionRepo.Delete(ctx, id)
}
