package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/Svathna/KG-ALL-backend/cmd/internal/contract"
	"github.com/Svathna/KG-ALL-backend/cmd/internal/domain/entity"
	"github.com/Svathna/KG-ALL-backend/cmd/internal/utils"
	"github.com/Svathna/KG-ALL-backend/cmd/internal/utils/apierror"
)

type RequestService interface {
	GetPendingRequests() ([]*entity.Request, apierror.ErrorResponse)
	GetRequest(id int64) (*entity.Request, apierror.ErrorResponse)
	GetPendingByCompany(companyID int64) ([]*entity.Request, apierror.ErrorResponse)
	CreateRequest(req *contract.CreateRequestRequest) (*entity.Request, apierror.ErrorResponse)
	UpdateStatus(actor *entity.User, id int64, req *contract.UpdateRequestStatusRequest) (*entity.Request, apierror.ErrorResponse)
	DeleteRequest(actor *entity.User, id int64) apierror.ErrorResponse
}

type DefaultRequestRoute struct {
	RequestService RequestService
}

func NewRequestRoute(requestService RequestService) *DefaultRequestRoute {
	return &DefaultRequestRoute{RequestService: requestService}
}

func (r *DefaultRequestRoute) GetPendingRequests(c echo.Context) error {
	requests, apierr := r.RequestService.GetPendingRequests()
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "requests": requests})
}

func (r *DefaultRequestRoute) GetRequest(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, apierror.InvalidIDError)
	}

	request, apierr := r.RequestService.GetRequest(id)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "request": request})
}

func (r *DefaultRequestRoute) GetPendingByCompany(c echo.Context) error {
	companyID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, apierror.InvalidIDError)
	}

	requests, apierr := r.RequestService.GetPendingByCompany(companyID)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "requests": requests})
}

func (r *DefaultRequestRoute) CreateRequest(c echo.Context) error {
	var req contract.CreateRequestRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}

	request, apierr := r.RequestService.CreateRequest(&req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "request": request})
}

func (r *DefaultRequestRoute) UpdateStatus(c echo.Context) error {
	actor, cerr := utils.GetUserFromContext(c)
	if cerr != nil {
		return c.JSON(cerr.Code(), cerr)
	}

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, apierror.InvalidIDError)
	}

	var req contract.UpdateRequestStatusRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}

	request, apierr := r.RequestService.UpdateStatus(actor, id, &req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "request": request})
}

func (r *DefaultRequestRoute) DeleteRequest(c echo.Context) error {
	actor, cerr := utils.GetUserFromContext(c)
	if cerr != nil {
		return c.JSON(cerr.Code(), cerr)
	}

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, apierror.InvalidIDError)
	}

	if apierr := r.RequestService.DeleteRequest(actor, id); apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "message": "Request deleted"})
}
