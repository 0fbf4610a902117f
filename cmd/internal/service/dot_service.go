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

type DotRepository interface {
	FindActiveByID(id int64) (*entity.Dot, error)
	FindByID(id int64) (*entity.Dot, error)
	Save(dot *entity.Dot) error
}

type DotService struct {
	DotRepo     DotRepository
	CompanyRepo CompanyRepository
	Validate    *validator.Validate
}

func NewDotService(dotRepo DotRepository, companyRepo CompanyRepository, validate *validator.Validate) *DotService {
	return &DotService{
		DotRepo:     dotRepo,
		CompanyRepo: companyRepo,
		Validate:    validate,
	}
}

func (d *DotService) GetDot(id int64) (*entity.Dot, apierror.ErrorResponse) {
	dot, err := d.DotRepo.FindActiveByID(id)
	if err != nil {
		log.Errorf("failed to fetch DOT %d: %v", id, err)
		return nil, apierror.NewInternal(err)
	}

	if dot == nil {
		return nil, apierror.InvalidInputError
	}
	return dot, nil
}

// CreateDot stores a Department of Taxation registration and links it
// to the company.
func (d *DotService) CreateDot(req *contract.CreateDotRequest) (*entity.Dot, apierror.ErrorResponse) {
	utils.Sanitize(req)
	if valerr := d.Validate.Struct(req); valerr != nil {
		return nil, apierror.FromValidationError(valerr)
	}

	company, err := d.CompanyRepo.FindActiveByID(req.CompanyID)
	if err != nil {
		log.Errorf("failed to fetch company %d: %v", req.CompanyID, err)
		return nil, apierror.NewInternal(err)
	}

	if company == nil {
		return nil, apierror.InvalidInputError
	}

	now := utils.NowUTC()
	dot := &entity.Dot{
		ID:                 uid.Generate(),
		DotNumber:          req.DotNumber,
		NotedDate:          req.NotedDate,
		DotBranch:          req.DotBranch,
		Address:            req.Address,
		BankName:           req.BankName,
		BankAccountName:    req.BankAccountName,
		BankAccountNumber:  req.BankAccountNumber,
		TaxationCardNumber: req.TaxationCardNumber,
		PhoneNumber:        req.PhoneNumber,
		CreatedAt:          now,
		UpdatedAt:          now,
	}

	if err := d.DotRepo.Save(dot); err != nil {
		log.Errorf("failed to create DOT: %v", err)
		return nil, apierror.NewInternal(err)
	}

	company.DotID = &dot.ID
	company.UpdatedAt = now
	if err := d.CompanyRepo.Save(company); err != nil {
		log.Errorf("failed to link DOT to company %d: %v", company.ID, err)
		return nil, apierror.NewInternal(err)
	}
	return dot, nil
}

func (d *DotService) UpdateDot(id int64, req *contract.UpdateDotRequest) (*entity.Dot, apierror.ErrorResponse) {
	if valerr := d.Validate.Struct(req); valerr != nil {
		return nil, apierror.FromValidationError(valerr)
	}

	dot, err := d.DotRepo.FindByID(id)
	if err != nil {
		log.Errorf("failed to fetch DOT %d: %v", id, err)
		return nil, apierror.NewInternal(err)
	}

	if dot == nil {
		return nil, apierror.InvalidInputError
	}

	dirty := false
	dirty = apply(req.DotNumber, &dot.DotNumber) || dirty
	dirty = apply(req.NotedDate, &dot.NotedDate) || dirty
	dirty = apply(req.DotBranch, &dot.DotBranch) || dirty
	dirty = apply(req.Address, &dot.Address) || dirty
	dirty = apply(req.BankName, &dot.BankName) || dirty
	dirty = apply(req.BankAccountName, &dot.BankAccountName) || dirty
	dirty = apply(req.BankAccountNumber, &dot.BankAccountNumber) || dirty
	dirty = apply(req.TaxationCardNumber, &dot.TaxationCardNumber) || dirty
	dirty = apply(req.PhoneNumber, &dot.PhoneNumber) || dirty

	if dirty {
		dot.UpdatedAt = utils.NowUTC()
		if err := d.DotRepo.Save(dot); err != nil {
			log.Errorf("failed to update DOT %d: %v", id, err)
			return nil, apierror.NewInternal(err)
		}
	}
	return dot, nil
}
