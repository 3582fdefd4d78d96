package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/quizmaster/quizmaster-backend/internal/model"
	"github.com/quizmaster/quizmaster-backend/internal/repository"
	"github.com/quizmaster/quizmaster-backend/internal/response"
)

// ResultService handles result reads and deletion.
type ResultService struct {
	resultRepo *repository.ResultRepository
}

// NewResultService creates a new ResultService.
func NewResultService(resultRepo *repository.ResultRepository) *ResultService {
	return &ResultService{resultRepo: resultRepo}
}

// List retrieves all results with pagination.
func (s *ResultService) List(ctx context.Context, page, perPage int) ([]model.QuizResult, *response.Pagination, error) {
	page, perPage = clampPage(page, perPage)

	results, total, err := s.resultRepo.ListPaginated(ctx, perPage, (page-1)*perPage)
	if err != nil {
		return nil, nil, err
	}
	if results == nil {
		results = []model.QuizResult{}
	}
	return results, buildPagination(page, perPage, total), nil
}

// GetByQuizID retrieves the result for a quiz.
func (s *ResultService) GetByQuizID(ctx context.Context, quizID uuid.UUID) (*model.QuizResult, error) {
	return s.resultRepo.GetByQuizID(ctx, quizID)
}

// ListByStudent retrieves a student's results, newest first.
func (s *ResultService) ListByStudent(ctx context.Context, studentID uuid.UUID) ([]model.QuizResult, error) {
	results, err := s.resultRepo.ListByStudent(ctx, studentID)
	if err != nil {
		return nil, err
	}
	if results == nil {
		results = []model.QuizResult{}
	}
	return results, nil
}

// ListByExam retrieves the results of every quiz started from an exam.
func (s *ResultService) ListByExam(ctx context.Context, examID uuid.UUID) ([]model.QuizResult, error) {
	results, err := s.resultRepo.ListByExam(ctx, examID)
	if err != nil {
		return nil, err
	}
	if results == nil {
		results = []model.QuizResult{}
	}
	return results, nil
}

// Delete removes a result.
func (s *ResultService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.resultRepo.Delete(ctx, id)
}
