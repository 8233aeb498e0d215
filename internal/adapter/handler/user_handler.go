package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/marcos-nsantos/users-api/internal/adapter/handler/dto/request"
	"github.com/marcos-nsantos/users-api/internal/adapter/handler/dto/response"
	"github.com/marcos-nsantos/users-api/internal/domain"
	"github.com/marcos-nsantos/users-api/internal/pkg/httputil"
	"github.com/marcos-nsantos/users-api/internal/usecase/user"
)

const (
	msgInvalidID     = "invalid user id"
	msgInvalidBody   = "invalid request body"
	msgUserNotFound  = "User not found"
	msgUserDeleted   = "User deleted"
	msgFetchUsersErr = "Failed to fetch users"
	msgFetchUserErr  = "Error fetching user"
	msgInsertUserErr = "Failed to insert user"
	msgUpdateUserErr = "Failed to update user"
	msgDeleteUserErr = "Failed to delete user"
)

type UserHandler struct {
	userSvc UserService
}

func NewUserHandler(userSvc UserService) *UserHandler {
	return &UserHandler{userSvc: userSvc}
}

func (h *UserHandler) List(c *gin.Context) {
	users, err := h.userSvc.List(c.Request.Context())
	if err != nil {
		httputil.InternalError(c, err, msgFetchUsersErr)
		return
	}

	httputil.OK(c, response.UsersFromEntities(users))
}

func (h *UserHandler) Get(c *gin.Context) {
	id, ok := bindUserID(c)
	if !ok {
		return
	}

	u, err := h.userSvc.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			httputil.NotFound(c, msgUserNotFound)
			return
		}
		httputil.InternalError(c, err, msgFetchUserErr)
		return
	}

	httputil.OK(c, response.UserFromEntity(u))
}

func (h *UserHandler) Create(c *gin.Context) {
	var req request.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(err)
		httputil.BadRequest(c, msgInvalidBody)
		return
	}

	u, err := h.userSvc.Create(c.Request.Context(), user.CreateInput{
		Name:  *req.Name,
		Email: *req.Email,
	})
	if err != nil {
		httputil.InternalError(c, err, msgInsertUserErr)
		return
	}

	httputil.Created(c, response.UserFromEntity(u))
}

func (h *UserHandler) Update(c *gin.Context) {
	id, ok := bindUserID(c)
	if !ok {
		return
	}

	var req request.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(err)
		httputil.BadRequest(c, msgInvalidBody)
		return
	}

	u, err := h.userSvc.Update(c.Request.Context(), id, user.UpdateInput{
		Name:  req.Name,
		Email: req.Email,
	})
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			httputil.NotFound(c, msgUserNotFound)
			return
		}
		httputil.InternalError(c, err, msgUpdateUserErr)
		return
	}

	httputil.OK(c, response.UserFromEntity(u))
}

func (h *UserHandler) Delete(c *gin.Context) {
	id, ok := bindUserID(c)
	if !ok {
		return
	}

	if err := h.userSvc.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			httputil.NotFound(c, msgUserNotFound)
			return
		}
		httputil.InternalError(c, err, msgDeleteUserErr)
		return
	}

	httputil.Text(c, http.StatusOK, msgUserDeleted)
}

// bindUserID parses the :id path parameter and answers 400 when it is not a UUID.
func bindUserID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.BadRequest(c, msgInvalidID)
		return uuid.Nil, false
	}
	return id, true
}
