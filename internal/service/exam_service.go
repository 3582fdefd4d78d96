package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/quizmaster/quizmaster-backend/internal/model"
	"github.com/quizmaster/quizmaster-backend/internal/repository"
	"github.com/quizmaster/quizmaster-backend/internal/response"
	"github.com/rs/zerolog"
)

// Domain errors.
var (
	ErrQuestionNotFound  = errors.New("referenced question does not exist")
	ErrQuestionNotInExam = errors.New("question is not part of this exam")
)

// ExamService handles exam business logic. Every question reference is
// validated against the pool before it is attached.
type ExamService struct {
	examRepo     *repository.ExamRepository
	questionRepo *repository.QuestionRepository
	log          zerolog.Logger
}

// NewExamService creates a new ExamService.
func NewExamService(examRepo *repository.ExamRepository, questionRepo *repository.QuestionRepository, log zerolog.Logger) *ExamService {
	return &ExamService{
		examRepo:     examRepo,
		questionRepo: questionRepo,
		log:          log.With().Str("component", "exam_service").Logger(),
	}
}

// List retrieves exams with pagination.
func (s *ExamService) List(ctx context.Context, page, perPage int) ([]model.Exam, *response.Pagination, error) {
	page, perPage = clampPage(page, perPage)

	exams, total, err := s.examRepo.ListPaginated(ctx, perPage, (page-1)*perPage)
	if err != nil {
		return nil, nil, err
	}
	if exams == nil {
		exams = []model.Exam{}
	}
	return exams, buildPagination(page, perPage, total), nil
}

// GetByID retrieves an exam with its question references.
func (s *ExamService) GetByID(ctx context.Context, id uuid.UUID) (*model.Exam, error) {
	return s.examRepo.GetByID(ctx, id)
}

// GetWithQuestions retrieves the full exam paper. The answer key is only
// included when includeAnswers is set (teacher callers).
func (s *ExamService) GetWithQuestions(ctx context.Context, id uuid.UUID, includeAnswers bool) (*model.ExamWithQuestions, error) {
	exam, err := s.examRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	questions, err := s.examRepo.ListQuestions(ctx, id)
	if err != nil {
		return nil, err
	}

	paper := &model.ExamWithQuestions{
		ExamID:           exam.ID,
		Name:             exam.Name,
		TimeLimitMinutes: exam.TimeLimitMinutes,
		Questions:        make([]model.ExamQuestion, len(questions)),
	}
	for i, q := range questions {
		eq := model.ExamQuestion{
			ID:         q.ID,
			Text:       q.Text,
			Options:    q.Options,
			Category:   q.Category,
			Difficulty: q.Difficulty,
		}
		if includeAnswers {
			correct := q.CorrectOption
			eq.CorrectOption = &correct
		}
		paper.Questions[i] = eq
	}
	return paper, nil
}

// Create inserts a new exam after validating its question references.
func (s *ExamService) Create(ctx context.Context, exam *model.Exam) error {
	if err := s.validateQuestionRefs(ctx, exam.QuestionIDs); err != nil {
		return err
	}
	if err := s.examRepo.Create(ctx, exam); err != nil {
		return err
	}
	s.log.Info().Str("exam_id", exam.ID.String()).Int("questions", len(exam.QuestionIDs)).Msg("Exam created")
	return nil
}

// Update modifies an existing exam. When question references are provided
// they are validated and replace the existing set.
func (s *ExamService) Update(ctx context.Context, exam *model.Exam, replaceQuestions bool) error {
	if replaceQuestions {
		if err := s.validateQuestionRefs(ctx, exam.QuestionIDs); err != nil {
			return err
		}
	}
	return s.examRepo.Update(ctx, exam, replaceQuestions)
}

// Delete removes an exam.
func (s *ExamService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.examRepo.Delete(ctx, id)
}

// AddQuestions attaches existing questions to an exam. Already-attached
// questions are skipped.
func (s *ExamService) AddQuestions(ctx context.Context, examID uuid.UUID, questionIDs []uuid.UUID) error {
	if err := s.validateQuestionRefs(ctx, questionIDs); err != nil {
		return err
	}
	if _, err := s.examRepo.GetByID(ctx, examID); err != nil {
		return err
	}
	return s.examRepo.AddQuestions(ctx, examID, questionIDs)
}

// RemoveQuestion detaches a question from an exam.
func (s *ExamService) RemoveQuestion(ctx context.Context, examID, questionID uuid.UUID) error {
	if _, err := s.examRepo.GetByID(ctx, examID); err != nil {
		return err
	}
	if err := s.examRepo.RemoveQuestion(ctx, examID, questionID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrQuestionNotInExam
		}
		return err
	}
	return nil
}

// validateQuestionRefs verifies that every referenced question exists.
func (s *ExamService) validateQuestionRefs(ctx context.Context, ids []uuid.UUID) error {
	if len(ids) == 0 {
		return nil
	}

	found, err := s.questionRepo.GetByIDs(ctx, ids)
	if err != nil {
		return err
	}

	existing := make(map[uuid.UUID]struct{}, len(found))
	for _, q := range found {
		existing[q.ID] = struct{}{}
	}
	for _, id := range ids {
		if _, ok := existing[id]; !ok {
			return fmt.Errorf("%w: %s", ErrQuestionNotFound, id)
		}
	}
	return nil
}
