package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/Svathna/KG-ALL-backend/cmd/internal/contract"
	"github.com/Svathna/KG-ALL-backend/cmd/internal/domain/entity"
	"github.com/Svathna/KG-ALL-backend/cmd/internal/utils/apierror"
)

type DotService interface {
	GetDot(id int64) (*entity.Dot, apierror.ErrorResponse)
	CreateDot(req *contract.CreateDotRequest) (*entity.Dot, apierror.ErrorResponse)
	UpdateDot(id int64, req *contract.UpdateDotRequest) (*entity.Dot, apierror.ErrorResponse)
}

type DefaultDotRoute struct {
	DotService DotService
}

func NewDotRoute(dotService DotService) *DefaultDotRoute {
	return &DefaultDotRoute{DotService: dotService}
}

func (r *DefaultDotRoute) GetDot(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, apierror.InvalidIDError)
	}

	dot, apierr := r.DotService.GetDot(id)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "dot": dot})
}

func (r *DefaultDotRoute) CreateDot(c echo.Context) error {
	var req contract.CreateDotRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}

	dot, apierr := r.DotService.CreateDot(&req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "dot": dot})
}

func (r *DefaultDotRoute) UpdateDot(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, apierror.InvalidIDError)
	}

	var req contract.UpdateDotRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}

	dot, apierr := r.DotService.UpdateDot(id, &req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "dot": dot})
}
