package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/Svathna/KG-ALL-backend/cmd/internal/contract"
	"github.com/Svathna/KG-ALL-backend/cmd/internal/domain/entity"
	"github.com/Svathna/KG-ALL-backend/cmd/internal/utils/apierror"
)

type MocService interface {
	GetMoc(id int64) (*entity.Moc, apierror.ErrorResponse)
	CreateMoc(req *contract.CreateMocRequest) (*entity.Moc, apierror.ErrorResponse)
	UpdateMoc(id int64, req *contract.UpdateMocRequest) (*entity.Moc, apierror.ErrorResponse)
}

type DefaultMocRoute struct {
	MocService MocService
}

func NewMocRoute(mocService MocService) *DefaultMocRoute {
	return &DefaultMocRoute{MocService: mocService}
}

func (r *DefaultMocRoute) GetMoc(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, apierror.InvalidIDError)
	}

	moc, apierr := r.MocService.GetMoc(id)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "moc": moc})
}

func (r *DefaultMocRoute) CreateMoc(c echo.Context) error {
	var req contract.CreateMocRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}

	moc, apierr := r.MocService.CreateMoc(&req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "moc": moc})
}

func (r *DefaultMocRoute) UpdateMoc(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, apierror.InvalidIDError)
	}

	var req contract.UpdateMocRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}

	moc, apierr := r.MocService.UpdateMoc(id, &req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "moc": moc})
}
