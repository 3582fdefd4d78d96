package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
	"github.com/quizmaster/quizmaster-backend/internal/middleware"
	"github.com/quizmaster/quizmaster-backend/internal/model"
	"github.com/quizmaster/quizmaster-backend/internal/policy"
	"github.com/quizmaster/quizmaster-backend/internal/repository"
	"github.com/quizmaster/quizmaster-backend/internal/response"
	"github.com/quizmaster/quizmaster-backend/internal/service"
	"github.com/quizmaster/quizmaster-backend/internal/validator"
)

// UserHandler handles account management endpoints.
type UserHandler struct {
	userService *service.UserService
	authService *service.AuthService
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(userService *service.UserService, authService *service.AuthService) *UserHandler {
	return &UserHandler{
		userService: userService,
		authService: authService,
	}
}

// List godoc
// GET /api/v1/users?page=&per_page=
// Lists accounts. Teacher only.
func (h *UserHandler) List(c *gin.Context) {
	page, perPage := pageParams(c)

	users, pagination, err := h.userService.List(c.Request.Context(), page, perPage)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.SuccessWithPagination(c, http.StatusOK, gin.H{"users": users}, pagination)
}

// Get godoc
// GET /api/v1/users/:id
// Returns an account. Accessible to teachers and the account owner.
func (h *UserHandler) Get(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	claims := middleware.GetClaims(c)
	if !policy.CanAccessOwned(claims.Role, claims.UserID, id) {
		response.Fail(c, http.StatusForbidden, response.ErrForbidden)
		return
	}

	user, err := h.userService.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			response.Fail(c, http.StatusNotFound, response.ErrNotFound)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"user": user})
}

// Update godoc
// PUT /api/v1/users/:id
// Updates an account. Owners may edit their profile; only teachers may
// change roles.
func (h *UserHandler) Update(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	claims := middleware.GetClaims(c)
	if !policy.CanAccessOwned(claims.Role, claims.UserID, id) {
		response.Fail(c, http.StatusForbidden, response.ErrForbidden)
		return
	}

	var req model.UpdateUserRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	if req.Role != "" && !policy.CanChangeRole(claims.Role) {
		response.Fail(c, http.StatusForbidden, response.ErrTeacherAccessOnly)
		return
	}

	user, err := h.userService.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			response.Fail(c, http.StatusNotFound, response.ErrNotFound)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	if req.Name != "" {
		user.Name = req.Name
	}
	if req.Email != "" {
		user.Email = req.Email
	}
	if req.Role != "" {
		user.Role = model.Role(req.Role)
	}

	if err := h.userService.Update(c.Request.Context(), user); err != nil {
		switch {
		case errors.Is(err, repository.ErrDuplicateEmail):
			response.Fail(c, http.StatusConflict, response.ErrEmailTaken)
		case errors.Is(err, pgx.ErrNoRows):
			response.Fail(c, http.StatusNotFound, response.ErrNotFound)
		default:
			response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		}
		return
	}

	if req.Password != "" {
		hash, err := h.authService.HashPassword(req.Password)
		if err != nil {
			response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
			return
		}
		if err := h.userService.UpdatePassword(c.Request.Context(), id, hash); err != nil {
			response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
			return
		}
	}

	response.Success(c, http.StatusOK, gin.H{"user": user})
}

// Delete godoc
// DELETE /api/v1/users/:id
// Removes an account. Teacher only.
func (h *UserHandler) Delete(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.userService.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			response.Fail(c, http.StatusNotFound, response.ErrNotFound)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{})
}
