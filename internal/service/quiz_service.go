package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/quizmaster/quizmaster-backend/internal/model"
	"github.com/quizmaster/quizmaster-backend/internal/repository"
	"github.com/rs/zerolog"
)

// Quiz domain errors.
var (
	ErrNotQuizOwner    = errors.New("quiz belongs to another student")
	ErrQuizCompleted   = errors.New("quiz already completed")
	ErrAnswerNotInQuiz = errors.New("answer references a question not in this quiz")
	ErrNoQuestions     = errors.New("no questions available")
)

// QuizService handles the quiz lifecycle: instantiation from the random
// pool or from an exam, single-shot submission with scoring, and reads.
type QuizService struct {
	quizRepo     *repository.QuizRepository
	questionRepo *repository.QuestionRepository
	examRepo     *repository.ExamRepository
	resultRepo   *repository.ResultRepository
	log          zerolog.Logger
}

// NewQuizService creates a new QuizService.
func NewQuizService(
	quizRepo *repository.QuizRepository,
	questionRepo *repository.QuestionRepository,
	examRepo *repository.ExamRepository,
	resultRepo *repository.ResultRepository,
	log zerolog.Logger,
) *QuizService {
	return &QuizService{
		quizRepo:     quizRepo,
		questionRepo: questionRepo,
		examRepo:     examRepo,
		resultRepo:   resultRepo,
		log:          log.With().Str("component", "quiz_service").Logger(),
	}
}

// CreateRandom starts a quiz from a random sample of the question pool.
func (s *QuizService) CreateRandom(ctx context.Context, studentID uuid.UUID, count int) (*model.Quiz, error) {
	questions, err := s.questionRepo.SampleRandom(ctx, count)
	if err != nil {
		return nil, err
	}
	if len(questions) == 0 {
		return nil, ErrNoQuestions
	}

	quiz := &model.Quiz{
		StudentID: studentID,
		Questions: snapshotQuestions(questions),
	}
	if err := s.quizRepo.Create(ctx, quiz); err != nil {
		return nil, err
	}

	s.log.Info().
		Str("quiz_id", quiz.ID.String()).
		Str("student_id", studentID.String()).
		Int("questions", len(quiz.Questions)).
		Msg("Random quiz started")
	return quiz, nil
}

// CreateFromExam starts a quiz whose questions are the exam's question set
// in its defined order.
func (s *QuizService) CreateFromExam(ctx context.Context, studentID, examID uuid.UUID) (*model.Quiz, error) {
	exam, err := s.examRepo.GetByID(ctx, examID)
	if err != nil {
		return nil, err
	}

	questions, err := s.examRepo.ListQuestions(ctx, examID)
	if err != nil {
		return nil, err
	}
	if len(questions) == 0 {
		return nil, ErrNoQuestions
	}

	quiz := &model.Quiz{
		StudentID: studentID,
		ExamID:    &exam.ID,
		Questions: snapshotQuestions(questions),
	}
	if err := s.quizRepo.Create(ctx, quiz); err != nil {
		return nil, err
	}

	s.log.Info().
		Str("quiz_id", quiz.ID.String()).
		Str("exam_id", examID.String()).
		Str("student_id", studentID.String()).
		Msg("Exam quiz started")
	return quiz, nil
}

// Submit records a student's answers, scores the quiz, and persists the
// result. A quiz can be submitted exactly once; only its owner may submit.
func (s *QuizService) Submit(ctx context.Context, quizID, studentID uuid.UUID, answers map[uuid.UUID]int) (*model.QuizResult, error) {
	quiz, err := s.quizRepo.GetByID(ctx, quizID)
	if err != nil {
		return nil, err
	}
	if quiz.StudentID != studentID {
		return nil, ErrNotQuizOwner
	}
	if quiz.Completed {
		return nil, ErrQuizCompleted
	}

	if err := applyAnswers(quiz, answers); err != nil {
		return nil, err
	}

	correct, score := scoreQuiz(quiz)
	result := &model.QuizResult{
		QuizID:         quiz.ID,
		StudentID:      quiz.StudentID,
		ExamID:         quiz.ExamID,
		TotalQuestions: len(quiz.Questions),
		CorrectAnswers: correct,
		Score:          score,
	}

	if err := s.quizRepo.Complete(ctx, quiz, result); err != nil {
		if errors.Is(err, repository.ErrAlreadyCompleted) {
			return nil, ErrQuizCompleted
		}
		return nil, err
	}

	s.log.Info().
		Str("quiz_id", quiz.ID.String()).
		Int("correct", correct).
		Float64("score", score).
		Msg("Quiz submitted")
	return result, nil
}

// GetQuiz retrieves a quiz for its owner or a teacher.
func (s *QuizService) GetQuiz(ctx context.Context, quizID uuid.UUID) (*model.Quiz, error) {
	return s.quizRepo.GetByID(ctx, quizID)
}

// GetResult retrieves the result for a quiz.
func (s *QuizService) GetResult(ctx context.Context, quizID uuid.UUID) (*model.QuizResult, error) {
	return s.resultRepo.GetByQuizID(ctx, quizID)
}

// StudentResults retrieves all results owned by a student, newest first.
func (s *QuizService) StudentResults(ctx context.Context, studentID uuid.UUID) ([]model.QuizResult, error) {
	results, err := s.resultRepo.ListByStudent(ctx, studentID)
	if err != nil {
		return nil, err
	}
	if results == nil {
		results = []model.QuizResult{}
	}
	return results, nil
}

// snapshotQuestions copies pool questions into quiz snapshots so later
// edits to the pool do not affect an in-flight quiz.
func snapshotQuestions(questions []model.Question) []model.QuizQuestion {
	snapshots := make([]model.QuizQuestion, len(questions))
	for i, q := range questions {
		snapshots[i] = model.QuizQuestion{
			QuestionID:    q.ID,
			Text:          q.Text,
			Options:       q.Options,
			CorrectOption: q.CorrectOption,
			OrderNum:      i,
		}
	}
	return snapshots
}

// applyAnswers writes submitted answers onto the quiz's question snapshots.
// Every answer must reference a question in the quiz and a valid option
// index; questions without an answer stay unanswered and score as wrong.
func applyAnswers(quiz *model.Quiz, answers map[uuid.UUID]int) error {
	byQuestion := make(map[uuid.UUID]*model.QuizQuestion, len(quiz.Questions))
	for i := range quiz.Questions {
		byQuestion[quiz.Questions[i].QuestionID] = &quiz.Questions[i]
	}

	for questionID, answer := range answers {
		qq, ok := byQuestion[questionID]
		if !ok {
			return fmt.Errorf("%w: %s", ErrAnswerNotInQuiz, questionID)
		}
		if answer < 0 || answer >= len(qq.Options) {
			return fmt.Errorf("%w: option %d out of range for question %s", ErrAnswerNotInQuiz, answer, questionID)
		}
		a := answer
		qq.StudentAnswer = &a
	}
	return nil
}

// scoreQuiz counts correct answers and computes the percentage score.
func scoreQuiz(quiz *model.Quiz) (int, float64) {
	total := len(quiz.Questions)
	if total == 0 {
		return 0, 0
	}

	correct := 0
	for i := range quiz.Questions {
		qq := &quiz.Questions[i]
		if qq.StudentAnswer != nil && *qq.StudentAnswer == qq.CorrectOption {
			correct++
		}
	}
	return correct, float64(correct) / float64(total) * 100
}
