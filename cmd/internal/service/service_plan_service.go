package service

import (
	"github.com/go-playground/validator/v10"
	"github.com/labstack/gommon/log"

	"github.com/Svathna/KG-ALL-backend/cmd/internal/contract"
	"github.com/Svathna/KG-ALL-backend/cmd/internal/domain/entity"
	"github.com/Svathna/KG-ALL-backend/cmd/internal/utils"
	"github.com/Svathna/KG-ALL-backend/cmd/internal/utils/apierror"
	"github.com/Svathna/KG-ALL-backend/cmd/internal/utils/uid"
)

type ServicePlanRepository interface {
	FindLatestActive() (*entity.ServicePlan, error)
	FindActiveByID(id int64) (*entity.ServicePlan, error)
	Save(plan *entity.ServicePlan) error
}

type ServicePlanService struct {
	PlanRepo ServicePlanRepository
	Validate *validator.Validate
}

func NewServicePlanService(planRepo ServicePlanRepository, validate *validator.Validate) *ServicePlanService {
	return &ServicePlanService{
		PlanRepo: planRepo,
		Validate: validate,
	}
}

// GetCurrentPlan returns the most recently published price sheet.
func (s *ServicePlanService) GetCurrentPlan() (*entity.ServicePlan, apierror.ErrorResponse) {
	plan, err := s.PlanRepo.FindLatestActive()
	if err != nil {
		log.Errorf("failed to fetch current service plan: %v", err)
		return nil, apierror.NewInternal(err)
	}

	if plan == nil {
		return nil, apierror.InvalidInputError
	}
	return plan, nil
}

func (s *ServicePlanService) GetPlan(id int64) (*entity.ServicePlan, apierror.ErrorResponse) {
	plan, err := s.PlanRepo.FindActiveByID(id)
	if err != nil {
		log.Errorf("failed to fetch service plan %d: %v", id, err)
		return nil, apierror.NewInternal(err)
	}

	if plan == nil {
		return nil, apierror.InvalidInputError
	}
	return plan, nil
}

// CreatePlan publishes a new price sheet. Older sheets stay around for
// history; readers only ever see the latest one.
func (s *ServicePlanService) CreatePlan(req *contract.CreateServicePlanRequest) (*entity.ServicePlan, apierror.ErrorResponse) {
	utils.Sanitize(req)
	if valerr := s.Validate.Struct(req); valerr != nil {
		return nil, apierror.FromValidationError(valerr)
	}

	now := utils.NowUTC()
	plan := &entity.ServicePlan{
		ID:                     uid.Generate(),
		Threshold:              req.Threshold,
		MoreThanThresholdPrice: req.MoreThanThresholdPrice,
		LessThanThresholdPrice: req.LessThanThresholdPrice,
		SalaryTaxPrice:         req.SalaryTaxPrice,
		PatentTaxPrice:         req.PatentTaxPrice,
		TrademarkTaxPrice:      req.TrademarkTaxPrice,
		PropertyTaxPrice:       req.PropertyTaxPrice,
		TransportationTaxPrice: req.TransportationTaxPrice,
		DocURL:                 req.DocURL,
		CreatedAt:              now,
		UpdatedAt:              now,
	}

	if err := s.PlanRepo.Save(plan); err != nil {
		log.Errorf("failed to create service plan: %v", err)
		return nil, apierror.NewInternal(err)
	}
	return plan, nil
}
