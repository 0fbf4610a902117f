package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/Svathna/KG-ALL-backend/cmd/internal/contract"
	"github.com/Svathna/KG-ALL-backend/cmd/internal/domain/entity"
	"github.com/Svathna/KG-ALL-backend/cmd/internal/utils/apierror"
)

type ServicePlanService interface {
	GetCurrentPlan() (*entity.ServicePlan, apierror.ErrorResponse)
	GetPlan(id int64) (*entity.ServicePlan, apierror.ErrorResponse)
	CreatePlan(req *contract.CreateServicePlanRequest) (*entity.ServicePlan, apierror.ErrorResponse)
}

type DefaultServicePlanRoute struct {
	PlanService ServicePlanService
}

func NewServicePlanRoute(planService ServicePlanService) *DefaultServicePlanRoute {
	return &DefaultServicePlanRoute{PlanService: planService}
}

func (r *DefaultServicePlanRoute) GetCurrentPlan(c echo.Context) error {
	plan, apierr := r.PlanService.GetCurrentPlan()
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "service": plan})
}

func (r *DefaultServicePlanRoute) GetPlan(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, apierror.InvalidIDError)
	}

	plan, apierr := r.PlanService.GetPlan(id)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "service": plan})
}

func (r *DefaultServicePlanRoute) CreatePlan(c echo.Context) error {
	var req contract.CreateServicePlanRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}

	plan, apierr := r.PlanService.CreatePlan(&req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "service": plan})
}
