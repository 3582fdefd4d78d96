package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/quizmaster/quizmaster-backend/internal/model"
)

// QuestionRepository handles question data access.
type QuestionRepository struct {
	pool *pgxpool.Pool
}

// NewQuestionRepository creates a new QuestionRepository.
func NewQuestionRepository(pool *pgxpool.Pool) *QuestionRepository {
	return &QuestionRepository{pool: pool}
}

// GetByID retrieves a question by its UUID.
func (r *QuestionRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Question, error) {
	q := &model.Question{}
	err := r.pool.QueryRow(ctx,
		`SELECT id, text, options, correct_option, category, difficulty, created_by, created_at
		 FROM questions WHERE id = $1`, id,
	).Scan(&q.ID, &q.Text, &q.Options, &q.CorrectOption, &q.Category, &q.Difficulty, &q.CreatedBy, &q.CreatedAt)
	if err != nil {
		return nil, err
	}
	return q, nil
}

// ListPaginated retrieves questions with pagination and an optional
// category filter.
func (r *QuestionRepository) ListPaginated(ctx context.Context, category string, limit, offset int) ([]model.Question, int, error) {
	countQuery := `SELECT COUNT(*) FROM questions`
	query := `SELECT id, text, options, correct_option, category, difficulty, created_by, created_at
	          FROM questions`
	var args []interface{}

	if category != "" {
		countQuery += ` WHERE category = $1`
		query += ` WHERE category = $1`
		args = append(args, category)
	}

	var total int
	if err := r.pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query += ` ORDER BY created_at DESC`
	if category != "" {
		query += ` LIMIT $2 OFFSET $3`
	} else {
		query += ` LIMIT $1 OFFSET $2`
	}
	args = append(args, limit, offset)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	questions, err := scanQuestions(rows)
	if err != nil {
		return nil, 0, err
	}
	return questions, total, nil
}

// Create inserts a new question.
func (r *QuestionRepository) Create(ctx context.Context, q *model.Question) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO questions (text, options, correct_option, category, difficulty, created_by)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id, created_at`,
		q.Text, q.Options, q.CorrectOption, q.Category, q.Difficulty, q.CreatedBy,
	).Scan(&q.ID, &q.CreatedAt)
}

// Update replaces a question's content.
func (r *QuestionRepository) Update(ctx context.Context, q *model.Question) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE questions
		 SET text = $1, options = $2, correct_option = $3, category = $4, difficulty = $5
		 WHERE id = $6`,
		q.Text, q.Options, q.CorrectOption, q.Category, q.Difficulty, q.ID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

// Delete removes a question by ID.
func (r *QuestionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM questions WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

// SampleRandom returns up to n questions in random order. Fewer than n
// questions in the pool yields a shorter sample.
func (r *QuestionRepository) SampleRandom(ctx context.Context, n int) ([]model.Question, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, text, options, correct_option, category, difficulty, created_by, created_at
		 FROM questions ORDER BY random() LIMIT $1`, n,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanQuestions(rows)
}

// GetByIDs retrieves the questions matching the given ids. Missing ids are
// simply absent from the result; callers compare lengths to detect them.
func (r *QuestionRepository) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]model.Question, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, text, options, correct_option, category, difficulty, created_by, created_at
		 FROM questions WHERE id = ANY($1)`, ids,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanQuestions(rows)
}

func scanQuestions(rows pgx.Rows) ([]model.Question, error) {
	var questions []model.Question
	for rows.Next() {
		var q model.Question
		if err := rows.Scan(&q.ID, &q.Text, &q.Options, &q.CorrectOption, &q.Category, &q.Difficulty, &q.CreatedBy, &q.CreatedAt); err != nil {
			return nil, err
		}
		questions = append(questions, q)
	}
	return questions, rows.Err()
}
