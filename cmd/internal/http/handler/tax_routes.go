package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/Svathna/KG-ALL-backend/cmd/internal/contract"
	"github.com/Svathna/KG-ALL-backend/cmd/internal/domain/entity"
	"github.com/Svathna/KG-ALL-backend/cmd/internal/utils/apierror"
)

type TaxService interface {
	GetTaxHistory(id int64) (*entity.TaxHistory, apierror.ErrorResponse)
	CreateTaxHistory(req *contract.CreateTaxHistoryRequest) (*entity.TaxHistory, apierror.ErrorResponse)
	UpdateTaxHistory(id int64, req *contract.UpdateTaxHistoryRequest) (*entity.TaxHistory, apierror.ErrorResponse)
	UpsertMonth(req *contract.UpsertMonthRequest) (*entity.TaxHistory, apierror.ErrorResponse)
	ReplaceYears(req *contract.ReplaceYearsRequest) (*entity.TaxHistory, apierror.ErrorResponse)
	RemoveMonth(historyID int64, year, month int) (*entity.TaxHistory, apierror.ErrorResponse)
}

type DefaultTaxRoute struct {
	TaxService TaxService
}

func NewTaxRoute(taxService TaxService) *DefaultTaxRoute {
	return &DefaultTaxRoute{TaxService: taxService}
}

func (r *DefaultTaxRoute) GetTaxHistory(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, apierror.InvalidIDError)
	}

	history, apierr := r.TaxService.GetTaxHistory(id)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "taxHistory": history})
}

func (r *DefaultTaxRoute) CreateTaxHistory(c echo.Context) error {
	var req contract.CreateTaxHistoryRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}

	history, apierr := r.TaxService.CreateTaxHistory(&req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "taxHistory": history})
}

func (r *DefaultTaxRoute) UpdateTaxHistory(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, apierror.InvalidIDError)
	}

	var req contract.UpdateTaxHistoryRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}

	history, apierr := r.TaxService.UpdateTaxHistory(id, &req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "taxHistory": history})
}

// UpsertMonth records one month of a company's ledger, replacing any
// entry already present for the same period.
func (r *DefaultTaxRoute) UpsertMonth(c echo.Context) error {
	var req contract.UpsertMonthRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}

	history, apierr := r.TaxService.UpsertMonth(&req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "taxHistory": history})
}

func (r *DefaultTaxRoute) ReplaceYears(c echo.Context) error {
	var req contract.ReplaceYearsRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}

	history, apierr := r.TaxService.ReplaceYears(&req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "taxHistory": history})
}

func (r *DefaultTaxRoute) RemoveMonth(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, apierror.InvalidIDError)
	}

	year, err := strconv.Atoi(c.Param("year"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, apierror.InvalidIDError)
	}

	month, err := strconv.Atoi(c.Param("month"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, apierror.InvalidIDError)
	}

	history, apierr := r.TaxService.RemoveMonth(id, year, month)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "taxHistory": history})
}
