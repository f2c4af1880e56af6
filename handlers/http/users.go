package httpHandler

import (
	"errors"
	"log/slog"
	"strconv"

	"krapi/entities"
	"krapi/response"
	"krapi/usecases"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	useCase *usecases.UserUseCase
}

func NewUserHandler(useCase *usecases.UserUseCase) *UserHandler {
	return &UserHandler{useCase: useCase}
}

// serverError logs the raw error locally and sends the opaque envelope.
// Backend error text never reaches the client.
func serverError(c *gin.Context, err error) {
	slog.Error("request failed",
		"request_id", c.GetString("request_id"),
		"path", c.FullPath(),
		"error", err,
	)
	response.ServerError().Msg("Something went wrong").Send(c)
}

// CreateUser handles POST /create-user.
func (h *UserHandler) CreateUser(c *gin.Context) {
	var input usecases.CreateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.InvalidInput().Msg(err.Error()).Send(c)
		return
	}

	user, err := h.useCase.CreateUser(input)
	switch {
	case errors.Is(err, usecases.ErrAlreadyExists):
		response.AlreadyExists().Msg("Username or email already exists").Send(c)
	case err != nil:
		serverError(c, err)
	default:
		response.Success().Data(user.Public()).Send(c)
	}
}

// GetUsers handles GET /get-users.
func (h *UserHandler) GetUsers(c *gin.Context) {
	users, err := h.useCase.GetAllUsers()
	if err != nil {
		serverError(c, err)
		return
	}

	views := make([]entities.UserView, 0, len(users))
	for i := range users {
		views = append(views, users[i].Public())
	}
	response.Success().Data(views).Send(c)
}

// GetUser handles GET /get-user/:id.
func (h *UserHandler) GetUser(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.InvalidInput().Msg("id must be a number").Send(c)
		return
	}

	user, err := h.useCase.GetUser(uint(id))
	switch {
	case errors.Is(err, usecases.ErrNotFound):
		response.NotFound().Send(c)
	case err != nil:
		serverError(c, err)
	default:
		response.Success().Data(user.Public()).Send(c)
	}
}

type matchUserRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// MatchUser handles POST /match-user. The response for an unknown
// username is identical to the one for a wrong password.
func (h *UserHandler) MatchUser(c *gin.Context) {
	var req matchUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.InvalidInput().Msg(err.Error()).Send(c)
		return
	}

	err := h.useCase.MatchUser(req.Username, req.Password)
	switch {
	case errors.Is(err, usecases.ErrIncorrectPassword):
		response.IncorrectPassword().Msg("Username or password is incorrect").Send(c)
	case err != nil:
		serverError(c, err)
	default:
		response.Success().Msg("Login successful").Send(c)
	}
}

type updatePasswordRequest struct {
	Username    string `json:"username" binding:"required"`
	Password    string `json:"password" binding:"required"`
	NewPassword string `json:"new_password" binding:"required"`
}

// UpdatePassword handles POST /update-password.
func (h *UserHandler) UpdatePassword(c *gin.Context) {
	var req updatePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.InvalidInput().Msg(err.Error()).Send(c)
		return
	}

	err := h.useCase.UpdatePassword(req.Username, req.Password, req.NewPassword)
	switch {
	case errors.Is(err, usecases.ErrNotFound):
		response.NotFound().Msg("User not found").Send(c)
	case errors.Is(err, usecases.ErrIncorrectPassword):
		response.IncorrectPassword().Msg("Username or password is incorrect").Send(c)
	case err != nil:
		serverError(c, err)
	default:
		response.Success().Msg("Password updated successful").Send(c)
	}
}

// UpdateUser handles POST /update-user.
func (h *UserHandler) UpdateUser(c *gin.Context) {
	var input usecases.UpdateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.InvalidInput().Msg(err.Error()).Send(c)
		return
	}

	err := h.useCase.UpdateUser(input)
	switch {
	case errors.Is(err, usecases.ErrNotFound):
		response.NotFound().Msg("User not found").Send(c)
	case err != nil:
		serverError(c, err)
	default:
		response.Success().Send(c)
	}
}
