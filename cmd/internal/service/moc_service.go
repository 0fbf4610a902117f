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

type MocRepository interface {
	FindActiveByID(id int64) (*entity.Moc, error)
	FindByID(id int64) (*entity.Moc, error)
	Save(moc *entity.Moc) error
}

type MocService struct {
	MocRepo     MocRepository
	CompanyRepo CompanyRepository
	Validate    *validator.Validate
}

func NewMocService(mocRepo MocRepository, companyRepo CompanyRepository, validate *validator.Validate) *MocService {
	return &MocService{
		MocRepo:     mocRepo,
		CompanyRepo: companyRepo,
		Validate:    validate,
	}
}

func (m *MocService) GetMoc(id int64) (*entity.Moc, apierror.ErrorResponse) {
	moc, err := m.MocRepo.FindActiveByID(id)
	if err != nil {
		log.Errorf("failed to fetch MOC %d: %v", id, err)
		return nil, apierror.NewInternal(err)
	}

	if moc == nil {
		return nil, apierror.InvalidInputError
	}
	return moc, nil
}

// CreateMoc stores a Ministry of Commerce registration and links it to
// the company.
func (m *MocService) CreateMoc(req *contract.CreateMocRequest) (*entity.Moc, apierror.ErrorResponse) {
	utils.Sanitize(req)
	if valerr := m.Validate.Struct(req); valerr != nil {
		return nil, apierror.FromValidationError(valerr)
	}

	company, err := m.CompanyRepo.FindActiveByID(req.CompanyID)
	if err != nil {
		log.Errorf("failed to fetch company %d: %v", req.CompanyID, err)
		return nil, apierror.NewInternal(err)
	}

	if company == nil {
		return nil, apierror.InvalidInputError
	}

	now := utils.NowUTC()
	moc := &entity.Moc{
		ID:               uid.Generate(),
		MocNumber:        req.MocNumber,
		NotedDate:        req.NotedDate,
		Capital:          req.Capital,
		DateOfBTV:        req.DateOfBTV,
		CompanyType:      entity.CompanyType(req.CompanyType),
		MocUsernameLogin: req.MocUsernameLogin,
		MocPasswordLogin: req.MocPasswordLogin,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	if err := m.MocRepo.Save(moc); err != nil {
		log.Errorf("failed to create MOC: %v", err)
		return nil, apierror.NewInternal(err)
	}

	company.MocID = &moc.ID
	company.UpdatedAt = now
	if err := m.CompanyRepo.Save(company); err != nil {
		log.Errorf("failed to link MOC to company %d: %v", company.ID, err)
		return nil, apierror.NewInternal(err)
	}
	return moc, nil
}

func (m *MocService) UpdateMoc(id int64, req *contract.UpdateMocRequest) (*entity.Moc, apierror.ErrorResponse) {
	if valerr := m.Validate.Struct(req); valerr != nil {
		return nil, apierror.FromValidationError(valerr)
	}

	moc, err := m.MocRepo.FindByID(id)
	if err != nil {
		log.Errorf("failed to fetch MOC %d: %v", id, err)
		return nil, apierror.NewInternal(err)
	}

	if moc == nil {
		return nil, apierror.InvalidInputError
	}

	dirty := false
	dirty = apply(req.MocNumber, &moc.MocNumber) || dirty
	dirty = apply(req.NotedDate, &moc.NotedDate) || dirty
	dirty = applyDecimal(req.Capital, &moc.Capital) || dirty
	dirty = apply(req.DateOfBTV, &moc.DateOfBTV) || dirty
	dirty = apply(req.MocUsernameLogin, &moc.MocUsernameLogin) || dirty
	dirty = apply(req.MocPasswordLogin, &moc.MocPasswordLogin) || dirty

	if req.CompanyType != nil {
		ct := entity.CompanyType(*req.CompanyType)
		if ct != moc.CompanyType {
			moc.CompanyType = ct
			dirty = true
		}
	}

	if dirty {
		moc.UpdatedAt = utils.NowUTC()
		if err := m.MocRepo.Save(moc); err != nil {
			log.Errorf("failed to update MOC %d: %v", id, err)
			return nil, apierror.NewInternal(err)
		}
	}
	return moc, nil
}
