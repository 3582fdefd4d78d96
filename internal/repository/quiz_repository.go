package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/quizmaster/quizmaster-backend/internal/model"
)

// ErrAlreadyCompleted is returned when the conditional completion update
// matches no row because the quiz was already submitted.
var ErrAlreadyCompleted = errors.New("quiz already completed")

// QuizRepository handles quiz and quiz question data access.
type QuizRepository struct {
	pool *pgxpool.Pool
}

// NewQuizRepository creates a new QuizRepository.
func NewQuizRepository(pool *pgxpool.Pool) *QuizRepository {
	return &QuizRepository{pool: pool}
}

// Create inserts a quiz together with its embedded question snapshots.
func (r *QuizRepository) Create(ctx context.Context, quiz *model.Quiz) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	err = tx.QueryRow(ctx,
		`INSERT INTO quizzes (student_id, exam_id)
		 VALUES ($1, $2)
		 RETURNING id, created_at`,
		quiz.StudentID, quiz.ExamID,
	).Scan(&quiz.ID, &quiz.CreatedAt)
	if err != nil {
		return err
	}

	for i := range quiz.Questions {
		qq := &quiz.Questions[i]
		err = tx.QueryRow(ctx,
			`INSERT INTO quiz_questions (quiz_id, question_id, text, options, correct_option, order_num)
			 VALUES ($1, $2, $3, $4, $5, $6)
			 RETURNING id`,
			quiz.ID, qq.QuestionID, qq.Text, qq.Options, qq.CorrectOption, qq.OrderNum,
		).Scan(&qq.ID)
		if err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}

// GetByID retrieves a quiz with its embedded questions.
func (r *QuizRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Quiz, error) {
	quiz := &model.Quiz{}
	err := r.pool.QueryRow(ctx,
		`SELECT id, student_id, exam_id, completed, created_at, completed_at
		 FROM quizzes WHERE id = $1`, id,
	).Scan(&quiz.ID, &quiz.StudentID, &quiz.ExamID, &quiz.Completed, &quiz.CreatedAt, &quiz.CompletedAt)
	if err != nil {
		return nil, err
	}

	rows, err := r.pool.Query(ctx,
		`SELECT id, question_id, text, options, correct_option, student_answer, order_num
		 FROM quiz_questions WHERE quiz_id = $1
		 ORDER BY order_num`, id,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var qq model.QuizQuestion
		if err := rows.Scan(&qq.ID, &qq.QuestionID, &qq.Text, &qq.Options, &qq.CorrectOption, &qq.StudentAnswer, &qq.OrderNum); err != nil {
			return nil, err
		}
		quiz.Questions = append(quiz.Questions, qq)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return quiz, nil
}

// Complete persists a quiz submission exactly once. The completion flag is
// flipped with a conditional update so a concurrent submission observes
// zero affected rows and fails with ErrAlreadyCompleted instead of
// producing a duplicate result. Answers and the result row ride in the
// same transaction.
func (r *QuizRepository) Complete(ctx context.Context, quiz *model.Quiz, result *model.QuizResult) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	now := time.Now()
	tag, err := tx.Exec(ctx,
		`UPDATE quizzes SET completed = TRUE, completed_at = $2
		 WHERE id = $1 AND completed = FALSE`,
		quiz.ID, now,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrAlreadyCompleted
	}

	for i := range quiz.Questions {
		qq := &quiz.Questions[i]
		if qq.StudentAnswer == nil {
			continue
		}
		if _, err := tx.Exec(ctx,
			`UPDATE quiz_questions SET student_answer = $1 WHERE id = $2`,
			*qq.StudentAnswer, qq.ID,
		); err != nil {
			return err
		}
	}

	result.CompletedAt = now
	err = tx.QueryRow(ctx,
		`INSERT INTO quiz_results (quiz_id, student_id, exam_id, total_questions, correct_answers, score, completed_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING id`,
		result.QuizID, result.StudentID, result.ExamID,
		result.TotalQuestions, result.CorrectAnswers, result.Score, result.CompletedAt,
	).Scan(&result.ID)
	if err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return err
	}

	quiz.Completed = true
	quiz.CompletedAt = &now
	return nil
}

// ListByStudent retrieves all quizzes owned by a student, newest first,
// without embedded questions.
func (r *QuizRepository) ListByStudent(ctx context.Context, studentID uuid.UUID) ([]model.Quiz, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, student_id, exam_id, completed, created_at, completed_at
		 FROM quizzes WHERE student_id = $1
		 ORDER BY created_at DESC`, studentID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var quizzes []model.Quiz
	for rows.Next() {
		var q model.Quiz
		if err := rows.Scan(&q.ID, &q.StudentID, &q.ExamID, &q.Completed, &q.CreatedAt, &q.CompletedAt); err != nil {
			return nil, err
		}
		quizzes = append(quizzes, q)
	}
	return quizzes, rows.Err()
}
