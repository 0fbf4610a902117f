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

type CompanyRepository interface {
	FindAllActive() ([]*entity.Company, error)
	FindActiveByID(id int64) (*entity.Company, error)
	FindByID(id int64) (*entity.Company, error)
	ExistsActiveByName(name string) (bool, error)
	Save(company *entity.Company) error
}

type CompanyService struct {
	CompanyRepo CompanyRepository
	Validate    *validator.Validate
}

func NewCompanyService(companyRepo CompanyRepository, validate *validator.Validate) *CompanyService {
	return &CompanyService{
		CompanyRepo: companyRepo,
		Validate:    validate,
	}
}

func (s *CompanyService) GetCompanies() ([]*entity.Company, apierror.ErrorResponse) {
	companies, err := s.CompanyRepo.FindAllActive()
	if err != nil {
		log.Errorf("failed to fetch companies: %v", err)
		return nil, apierror.NewInternal(err)
	}
	return companies, nil
}

func (s *CompanyService) GetCompany(id int64) (*entity.Company, apierror.ErrorResponse) {
	company, err := s.CompanyRepo.FindActiveByID(id)
	if err != nil {
		log.Errorf("failed to fetch company %d: %v", id, err)
		return nil, apierror.NewInternal(err)
	}

	if company == nil {
		return nil, apierror.CompanyNotFoundError
	}
	return company, nil
}

func (s *CompanyService) CreateCompany(req *contract.CreateCompanyRequest) (*entity.Company, apierror.ErrorResponse) {
	utils.Sanitize(req)
	if valerr := s.Validate.Struct(req); valerr != nil {
		return nil, apierror.FromValidationError(valerr)
	}

	exists, err := s.CompanyRepo.ExistsActiveByName(req.Name)
	if err != nil {
		log.Errorf("failed to check company name %q: %v", req.Name, err)
		return nil, apierror.NewInternal(err)
	}

	if exists {
		return nil, apierror.NameInUseError
	}

	now := utils.NowUTC()
	company := &entity.Company{
		ID:          uid.Generate(),
		Name:        req.Name,
		NameInKhmer: req.NameInKhmer,
		Description: req.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.CompanyRepo.Save(company); err != nil {
		log.Errorf("failed to create company: %v", err)
		return nil, apierror.NewInternal(err)
	}
	return company, nil
}

// UpdateCompany overwrites only the fields that are present and differ
// from the stored value.
func (s *CompanyService) UpdateCompany(id int64, req *contract.UpdateCompanyRequest) (*entity.Company, apierror.ErrorResponse) {
	if valerr := s.Validate.Struct(req); valerr != nil {
		return nil, apierror.FromValidationError(valerr)
	}

	company, err := s.CompanyRepo.FindActiveByID(id)
	if err != nil {
		log.Errorf("failed to fetch company %d: %v", id, err)
		return nil, apierror.NewInternal(err)
	}

	if company == nil {
		return nil, apierror.CompanyNotFoundError
	}

	dirty := false
	dirty = apply(req.Name, &company.Name) || dirty
	dirty = apply(req.NameInKhmer, &company.NameInKhmer) || dirty
	dirty = apply(req.Description, &company.Description) || dirty

	if dirty {
		company.UpdatedAt = utils.NowUTC()
		if err := s.CompanyRepo.Save(company); err != nil {
			log.Errorf("failed to update company %d: %v", id, err)
			return nil, apierror.NewInternal(err)
		}
	}
	return company, nil
}

func (s *CompanyService) DeleteCompany(id int64) apierror.ErrorResponse {
	company, err := s.CompanyRepo.FindActiveByID(id)
	if err != nil {
		log.Errorf("failed to fetch company %d: %v", id, err)
		return apierror.NewInternal(err)
	}

	if company == nil {
		return apierror.CompanyNotFoundError
	}

	company.Deleted = true
	company.UpdatedAt = utils.NowUTC()
	if err := s.CompanyRepo.Save(company); err != nil {
		log.Errorf("failed to delete company %d: %v", id, err)
		return apierror.NewInternal(err)
	}
	return nil
}
