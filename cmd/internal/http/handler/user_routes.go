package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/Svathna/KG-ALL-backend/cmd/internal/contract"
	"github.com/Svathna/KG-ALL-backend/cmd/internal/domain/entity"
	"github.com/Svathna/KG-ALL-backend/cmd/internal/service"
	"github.com/Svathna/KG-ALL-backend/cmd/internal/utils"
	"github.com/Svathna/KG-ALL-backend/cmd/internal/utils/apierror"
)

type UserService interface {
	GetUsers() ([]*entity.User, apierror.ErrorResponse)
	GetUser(id int64) (*entity.User, apierror.ErrorResponse)
	Login(req *contract.LoginRequest) (*service.LoginResult, apierror.ErrorResponse)
	AdminLogin(req *contract.LoginRequest) (*service.LoginResult, apierror.ErrorResponse)
	CreateUser(req *contract.CreateUserRequest) (*service.LoginResult, apierror.ErrorResponse)
	UpdateUser(id int64, req *contract.UpdateUserRequest) (*entity.User, apierror.ErrorResponse)
	ChangePassword(actor *entity.User, targetID int64, req *contract.ChangePasswordRequest) (*entity.User, apierror.ErrorResponse)
	DeleteUser(id int64) apierror.ErrorResponse
}

type DefaultUserRoute struct {
	UserService UserService
}

func NewUserRoute(userService UserService) *DefaultUserRoute {
	return &DefaultUserRoute{UserService: userService}
}

func (r *DefaultUserRoute) GetUsers(c echo.Context) error {
	users, apierr := r.UserService.GetUsers()
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "users": users})
}

func (r *DefaultUserRoute) GetUser(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, apierror.InvalidIDError)
	}

	user, apierr := r.UserService.GetUser(id)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "user": user})
}

// GetCurrentUser returns the authenticated principal with its company
// preloaded by the auth gate.
func (r *DefaultUserRoute) GetCurrentUser(c echo.Context) error {
	user, cerr := utils.GetUserFromContext(c)
	if cerr != nil {
		return c.JSON(cerr.Code(), cerr)
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "user": user})
}

// GetCurrentUserSafe exposes only the display identity of the
// principal, for screens that must not leak the rest of the record.
func (r *DefaultUserRoute) GetCurrentUserSafe(c echo.Context) error {
	user, cerr := utils.GetUserFromContext(c)
	if cerr != nil {
		return c.JSON(cerr.Code(), cerr)
	}

	safe := &contract.UserSafeResponse{
		FullName: user.FullName,
		UserName: user.UserName,
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "user": safe})
}

func (r *DefaultUserRoute) Login(c echo.Context) error {
	var req contract.LoginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}

	result, apierr := r.UserService.Login(&req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "user": result.User, "token": result.Token})
}

func (r *DefaultUserRoute) AdminLogin(c echo.Context) error {
	var req contract.LoginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}

	result, apierr := r.UserService.AdminLogin(&req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "user": result.User, "token": result.Token})
}

func (r *DefaultUserRoute) CreateUser(c echo.Context) error {
	var req contract.CreateUserRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}

	result, apierr := r.UserService.CreateUser(&req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "user": result.User, "token": result.Token})
}

func (r *DefaultUserRoute) UpdateUser(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, apierror.InvalidIDError)
	}

	var req contract.UpdateUserRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}

	user, apierr := r.UserService.UpdateUser(id, &req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "user": user})
}

func (r *DefaultUserRoute) ChangePassword(c echo.Context) error {
	actor, cerr := utils.GetUserFromContext(c)
	if cerr != nil {
		return c.JSON(cerr.Code(), cerr)
	}

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, apierror.InvalidIDError)
	}

	var req contract.ChangePasswordRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}

	user, apierr := r.UserService.ChangePassword(actor, id, &req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "user": user})
}

func (r *DefaultUserRoute) DeleteUser(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, apierror.InvalidIDError)
	}

	if apierr := r.UserService.DeleteUser(id); apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "message": "User deleted"})
}
