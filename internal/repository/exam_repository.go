package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/quizmaster/quizmaster-backend/internal/model"
)

// ExamRepository handles exam data access.
type ExamRepository struct {
	pool *pgxpool.Pool
}

// NewExamRepository creates a new ExamRepository.
func NewExamRepository(pool *pgxpool.Pool) *ExamRepository {
	return &ExamRepository{pool: pool}
}

// GetByID retrieves an exam with its ordered question references.
func (r *ExamRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Exam, error) {
	e := &model.Exam{}
	err := r.pool.QueryRow(ctx,
		`SELECT id, name, time_limit_minutes, created_by, created_at, updated_at
		 FROM exams WHERE id = $1`, id,
	).Scan(&e.ID, &e.Name, &e.TimeLimitMinutes, &e.CreatedBy, &e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		return nil, err
	}

	e.QuestionIDs, err = r.listQuestionIDs(ctx, id)
	if err != nil {
		return nil, err
	}
	return e, nil
}

// ListPaginated retrieves exams ordered by creation time.
func (r *ExamRepository) ListPaginated(ctx context.Context, limit, offset int) ([]model.Exam, int, error) {
	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM exams`).Scan(&total); err != nil {
		return nil, 0, err
	}

	rows, err := r.pool.Query(ctx,
		`SELECT id, name, time_limit_minutes, created_by, created_at, updated_at
		 FROM exams ORDER BY created_at DESC LIMIT $1 OFFSET $2`, limit, offset,
	)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var exams []model.Exam
	for rows.Next() {
		var e model.Exam
		if err := rows.Scan(&e.ID, &e.Name, &e.TimeLimitMinutes, &e.CreatedBy, &e.CreatedAt, &e.UpdatedAt); err != nil {
			return nil, 0, err
		}
		exams = append(exams, e)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	for i := range exams {
		ids, err := r.listQuestionIDs(ctx, exams[i].ID)
		if err != nil {
			return nil, 0, err
		}
		exams[i].QuestionIDs = ids
	}
	return exams, total, nil
}

// Create inserts a new exam together with its question links.
func (r *ExamRepository) Create(ctx context.Context, e *model.Exam) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	err = tx.QueryRow(ctx,
		`INSERT INTO exams (name, time_limit_minutes, created_by)
		 VALUES ($1, $2, $3)
		 RETURNING id, created_at, updated_at`,
		e.Name, e.TimeLimitMinutes, e.CreatedBy,
	).Scan(&e.ID, &e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		return err
	}

	if err := insertExamQuestions(ctx, tx, e.ID, e.QuestionIDs, 0); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

// Update modifies an exam's fields. When replaceQuestions is set the
// question links are replaced wholesale.
func (r *ExamRepository) Update(ctx context.Context, e *model.Exam, replaceQuestions bool) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	tag, err := tx.Exec(ctx,
		`UPDATE exams SET name = $1, time_limit_minutes = $2, updated_at = NOW() WHERE id = $3`,
		e.Name, e.TimeLimitMinutes, e.ID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}

	if replaceQuestions {
		if _, err := tx.Exec(ctx, `DELETE FROM exam_questions WHERE exam_id = $1`, e.ID); err != nil {
			return err
		}
		if err := insertExamQuestions(ctx, tx, e.ID, e.QuestionIDs, 0); err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}

// Delete removes an exam; question links cascade.
func (r *ExamRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM exams WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

// AddQuestions appends question links to an exam, skipping ones already
// attached.
func (r *ExamRepository) AddQuestions(ctx context.Context, examID uuid.UUID, questionIDs []uuid.UUID) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	var next int
	err = tx.QueryRow(ctx,
		`SELECT COALESCE(MAX(position), -1) + 1 FROM exam_questions WHERE exam_id = $1`, examID,
	).Scan(&next)
	if err != nil {
		return err
	}

	if err := insertExamQuestions(ctx, tx, examID, questionIDs, next); err != nil {
		return err
	}

	if _, err := tx.Exec(ctx, `UPDATE exams SET updated_at = NOW() WHERE id = $1`, examID); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

// RemoveQuestion detaches a question from an exam. Returns pgx.ErrNoRows if
// the question was not part of the exam.
func (r *ExamRepository) RemoveQuestion(ctx context.Context, examID, questionID uuid.UUID) error {
	tag, err := r.pool.Exec(ctx,
		`DELETE FROM exam_questions WHERE exam_id = $1 AND question_id = $2`,
		examID, questionID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

// ListQuestions retrieves the full questions attached to an exam, in
// attachment order.
func (r *ExamRepository) ListQuestions(ctx context.Context, examID uuid.UUID) ([]model.Question, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT q.id, q.text, q.options, q.correct_option, q.category, q.difficulty, q.created_by, q.created_at
		 FROM exam_questions eq
		 JOIN questions q ON q.id = eq.question_id
		 WHERE eq.exam_id = $1
		 ORDER BY eq.position`, examID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanQuestions(rows)
}

func (r *ExamRepository) listQuestionIDs(ctx context.Context, examID uuid.UUID) ([]uuid.UUID, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT question_id FROM exam_questions WHERE exam_id = $1 ORDER BY position`, examID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []uuid.UUID
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

func insertExamQuestions(ctx context.Context, tx pgx.Tx, examID uuid.UUID, questionIDs []uuid.UUID, startPos int) error {
	for i, qid := range questionIDs {
		_, err := tx.Exec(ctx,
			`INSERT INTO exam_questions (exam_id, question_id, position)
			 VALUES ($1, $2, $3)
			 ON CONFLICT (exam_id, question_id) DO NOTHING`,
			examID, qid, startPos+i,
		)
		if err != nil {
			return fmt.Errorf("link question %s: %w", qid, err)
		}
	}
	return nil
}
