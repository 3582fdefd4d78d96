package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/quizmaster/quizmaster-backend/internal/model"
	"github.com/quizmaster/quizmaster-backend/internal/repository"
	"github.com/quizmaster/quizmaster-backend/internal/response"
)

// UserService handles account business logic.
type UserService struct {
	userRepo *repository.UserRepository
}

// NewUserService creates a new UserService.
func NewUserService(userRepo *repository.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

// GetByID retrieves a user by ID.
func (s *UserService) GetByID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	return s.userRepo.GetByID(ctx, id)
}

// GetByEmail retrieves a user by email.
func (s *UserService) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	return s.userRepo.GetByEmail(ctx, email)
}

// List retrieves users with pagination.
func (s *UserService) List(ctx context.Context, page, perPage int) ([]model.User, *response.Pagination, error) {
	page, perPage = clampPage(page, perPage)

	users, total, err := s.userRepo.ListPaginated(ctx, perPage, (page-1)*perPage)
	if err != nil {
		return nil, nil, err
	}
	if users == nil {
		users = []model.User{}
	}
	return users, buildPagination(page, perPage, total), nil
}

// Create stores a new account.
func (s *UserService) Create(ctx context.Context, u *model.User) error {
	return s.userRepo.Create(ctx, u)
}

// Update modifies an account's profile fields.
func (s *UserService) Update(ctx context.Context, u *model.User) error {
	return s.userRepo.Update(ctx, u)
}

// UpdatePassword replaces an account's password hash.
func (s *UserService) UpdatePassword(ctx context.Context, id uuid.UUID, hash string) error {
	return s.userRepo.UpdatePassword(ctx, id, hash)
}

// Delete removes an account.
func (s *UserService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.userRepo.Delete(ctx, id)
}

// clampPage normalizes pagination inputs.
func clampPage(page, perPage int) (int, int) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = 10
	}
	if perPage > 100 {
		perPage = 100
	}
	return page, perPage
}

func buildPagination(page, perPage, total int) *response.Pagination {
	return &response.Pagination{
		Page:       page,
		PerPage:    perPage,
		TotalItems: total,
		TotalPages: (total + perPage - 1) / perPage,
	}
}
