package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/Svathna/KG-ALL-backend/cmd/internal/contract"
	"github.com/Svathna/KG-ALL-backend/cmd/internal/domain/entity"
	"github.com/Svathna/KG-ALL-backend/cmd/internal/utils/apierror"
)

type CompanyService interface {
	GetCompanies() ([]*entity.Company, apierror.ErrorResponse)
	GetCompany(id int64) (*entity.Company, apierror.ErrorResponse)
	CreateCompany(req *contract.CreateCompanyRequest) (*entity.Company, apierror.ErrorResponse)
	UpdateCompany(id int64, req *contract.UpdateCompanyRequest) (*entity.Company, apierror.ErrorResponse)
	DeleteCompany(id int64) apierror.ErrorResponse
}

type DefaultCompanyRoute struct {
	CompanyService CompanyService
}

func NewCompanyRoute(companyService CompanyService) *DefaultCompanyRoute {
	return &DefaultCompanyRoute{CompanyService: companyService}
}

func (r *DefaultCompanyRoute) GetCompanies(c echo.Context) error {
	companies, apierr := r.CompanyService.GetCompanies()
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "companies": companies})
}

func (r *DefaultCompanyRoute) GetCompany(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, apierror.InvalidIDError)
	}

	company, apierr := r.CompanyService.GetCompany(id)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "company": company})
}

func (r *DefaultCompanyRoute) CreateCompany(c echo.Context) error {
	var req contract.CreateCompanyRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}

	company, apierr := r.CompanyService.CreateCompany(&req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "company": company})
}

func (r *DefaultCompanyRoute) UpdateCompany(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, apierror.InvalidIDError)
	}

	var req contract.UpdateCompanyRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}

	company, apierr := r.CompanyService.UpdateCompany(id, &req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "company": company})
}

func (r *DefaultCompanyRoute) DeleteCompany(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, apierror.InvalidIDError)
	}

	if apierr := r.CompanyService.DeleteCompany(id); apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "message": "Company deleted"})
}
