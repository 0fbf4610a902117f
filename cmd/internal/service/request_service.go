package service

import (
	"github.com/go-playground/validator/v10"
	"github.com/labstack/gommon/log"

	"github.com/Svathna/KG-ALL-backend/cmd/internal/contract"
	"github.com/Svathna/KG-ALL-backend/cmd/internal/domain/entity"
	"github.com/Svathna/KG-ALL-backend/cmd/internal/domain/policy"
	"github.com/Svathna/KG-ALL-backend/cmd/internal/utils"
	"github.com/Svathna/KG-ALL-backend/cmd/internal/utils/apierror"
	"github.com/Svathna/KG-ALL-backend/cmd/internal/utils/uid"
)

type RequestRepository interface {
	FindPending() ([]*entity.Request, error)
	FindPendingByCompany(companyID int64) ([]*entity.Request, error)
	FindActiveByID(id int64) (*entity.Request, error)
	FindByID(id int64) (*entity.Request, error)
	Save(request *entity.Request) error
}

// RequestService runs the lifecycle of a company's document requests:
// created pending, resolved by an administrator, removed by tombstone.
type RequestService struct {
	RequestRepo RequestRepository
	CompanyRepo CompanyRepository
	Policy      *policy.RequestPolicy
	Validate    *validator.Validate
}

func NewRequestService(requestRepo RequestRepository, companyRepo CompanyRepository, requestPolicy *policy.RequestPolicy, validate *validator.Validate) *RequestService {
	return &RequestService{
		RequestRepo: requestRepo,
		CompanyRepo: companyRepo,
		Policy:      requestPolicy,
		Validate:    validate,
	}
}

// GetPendingRequests lists every open request, most recent first.
func (s *RequestService) GetPendingRequests() ([]*entity.Request, apierror.ErrorResponse) {
	requests, err := s.RequestRepo.FindPending()
	if err != nil {
		log.Errorf("failed to fetch pending requests: %v", err)
		return nil, apierror.NewInternal(err)
	}
	return requests, nil
}

// GetRequest returns the record whatever its status; resolved and
// tombstoned requests stay addressable by id.
func (s *RequestService) GetRequest(id int64) (*entity.Request, apierror.ErrorResponse) {
	request, err := s.RequestRepo.FindByID(id)
	if err != nil {
		log.Errorf("failed to fetch request %d: %v", id, err)
		return nil, apierror.NewInternal(err)
	}

	if request == nil {
		return nil, apierror.RequestNotFoundError
	}
	return request, nil
}

func (s *RequestService) GetPendingByCompany(companyID int64) ([]*entity.Request, apierror.ErrorResponse) {
	company, err := s.CompanyRepo.FindActiveByID(companyID)
	if err != nil {
		log.Errorf("failed to fetch company %d: %v", companyID, err)
		return nil, apierror.NewInternal(err)
	}

	if company == nil {
		return nil, apierror.CompanyNotFoundError
	}

	requests, err := s.RequestRepo.FindPendingByCompany(companyID)
	if err != nil {
		log.Errorf("failed to fetch requests of company %d: %v", companyID, err)
		return nil, apierror.NewInternal(err)
	}
	return requests, nil
}

// CreateRequest opens a pending request for a non-deleted company.
func (s *RequestService) CreateRequest(req *contract.CreateRequestRequest) (*entity.Request, apierror.ErrorResponse) {
	utils.Sanitize(req)
	if valerr := s.Validate.Struct(req); valerr != nil {
		return nil, apierror.FromValidationError(valerr)
	}

	company, err := s.CompanyRepo.FindActiveByID(req.CompanyID)
	if err != nil {
		log.Errorf("failed to fetch company %d: %v", req.CompanyID, err)
		return nil, apierror.NewInternal(err)
	}

	if company == nil {
		return nil, apierror.InvalidInputError
	}

	reqType := entity.RequestType(req.Type)
	if req.Type == 0 {
		reqType = entity.RequestTypeDocument
	}

	now := utils.NowUTC()
	request := &entity.Request{
		ID:          uid.Generate(),
		Description: req.Description,
		Status:      entity.RequestStatusPending,
		Type:        reqType,
		CompanyID:   req.CompanyID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.RequestRepo.Save(request); err != nil {
		log.Errorf("failed to create request: %v", err)
		return nil, apierror.NewInternal(err)
	}
	return request, nil
}

// UpdateStatus moves a request to the supplied state. There is no
// terminal-state lock: an accepted request can be reopened, which
// matches how the back office has always operated.
func (s *RequestService) UpdateStatus(actor *entity.User, id int64, req *contract.UpdateRequestStatusRequest) (*entity.Request, apierror.ErrorResponse) {
	if perr := s.Policy.CanTransition(actor); perr != nil {
		return nil, perr
	}

	if valerr := s.Validate.Struct(req); valerr != nil {
		return nil, apierror.FromValidationError(valerr)
	}

	request, err := s.RequestRepo.FindByID(id)
	if err != nil {
		log.Errorf("failed to fetch request %d: %v", id, err)
		return nil, apierror.NewInternal(err)
	}

	if request == nil {
		return nil, apierror.InvalidInputError
	}

	status := entity.RequestStatus(req.Status)
	if !entity.ValidRequestStatus(status) {
		return nil, apierror.InvalidInputError
	}

	request.Status = status
	request.UpdatedAt = utils.NowUTC()
	if err := s.RequestRepo.Save(request); err != nil {
		log.Errorf("failed to update request %d: %v", id, err)
		return nil, apierror.NewInternal(err)
	}
	return request, nil
}

// DeleteRequest tombstones a request; allowed for administrators and
// members of the owning company.
func (s *RequestService) DeleteRequest(actor *entity.User, id int64) apierror.ErrorResponse {
	request, err := s.RequestRepo.FindActiveByID(id)
	if err != nil {
		log.Errorf("failed to fetch request %d: %v", id, err)
		return apierror.NewInternal(err)
	}

	if request == nil {
		return apierror.RequestNotFoundError
	}

	if perr := s.Policy.CanDelete(actor, request); perr != nil {
		return perr
	}

	request.Deleted = true
	request.UpdatedAt = utils.NowUTC()
	if err := s.RequestRepo.Save(request); err != nil {
		log.Errorf("failed to delete request %d: %v", id, err)
		return apierror.NewInternal(err)
	}
	return nil
}
