package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/quizmaster/quizmaster-backend/internal/model"
)

// ResultRepository handles quiz result reads and deletion. Result rows are
// inserted by QuizRepository.Complete as part of the submission transaction.
type ResultRepository struct {
	pool *pgxpool.Pool
}

// NewResultRepository creates a new ResultRepository.
func NewResultRepository(pool *pgxpool.Pool) *ResultRepository {
	return &ResultRepository{pool: pool}
}

// GetByQuizID retrieves the result for a given quiz.
func (r *ResultRepository) GetByQuizID(ctx context.Context, quizID uuid.UUID) (*model.QuizResult, error) {
	res := &model.QuizResult{}
	err := r.pool.QueryRow(ctx,
		`SELECT id, quiz_id, student_id, exam_id, total_questions, correct_answers, score, completed_at
		 FROM quiz_results WHERE quiz_id = $1`, quizID,
	).Scan(&res.ID, &res.QuizID, &res.StudentID, &res.ExamID,
		&res.TotalQuestions, &res.CorrectAnswers, &res.Score, &res.CompletedAt)
	if err != nil {
		return nil, err
	}
	return res, nil
}

// ListByStudent retrieves all results for a student, newest first.
func (r *ResultRepository) ListByStudent(ctx context.Context, studentID uuid.UUID) ([]model.QuizResult, error) {
	return r.list(ctx,
		`SELECT id, quiz_id, student_id, exam_id, total_questions, correct_answers, score, completed_at
		 FROM quiz_results WHERE student_id = $1
		 ORDER BY completed_at DESC`, studentID)
}

// ListByExam retrieves all results for quizzes started from an exam.
func (r *ResultRepository) ListByExam(ctx context.Context, examID uuid.UUID) ([]model.QuizResult, error) {
	return r.list(ctx,
		`SELECT id, quiz_id, student_id, exam_id, total_questions, correct_answers, score, completed_at
		 FROM quiz_results WHERE exam_id = $1
		 ORDER BY completed_at DESC`, examID)
}

// ListPaginated retrieves all results, newest first.
func (r *ResultRepository) ListPaginated(ctx context.Context, limit, offset int) ([]model.QuizResult, int, error) {
	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM quiz_results`).Scan(&total); err != nil {
		return nil, 0, err
	}

	results, err := r.list(ctx,
		`SELECT id, quiz_id, student_id, exam_id, total_questions, correct_answers, score, completed_at
		 FROM quiz_results ORDER BY completed_at DESC LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	return results, total, nil
}

// Delete removes a result by ID.
func (r *ResultRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM quiz_results WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *ResultRepository) list(ctx context.Context, query string, args ...interface{}) ([]model.QuizResult, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []model.QuizResult
	for rows.Next() {
		var res model.QuizResult
		if err := rows.Scan(&res.ID, &res.QuizID, &res.StudentID, &res.ExamID,
			&res.TotalQuestions, &res.CorrectAnswers, &res.Score, &res.CompletedAt); err != nil {
			return nil, err
		}
		results = append(results, res)
	}
	return results, rows.Err()
}
