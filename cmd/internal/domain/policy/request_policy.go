package policy

import (
	"github.com/Svathna/KG-ALL-backend/cmd/internal/domain/entity"
	"github.com/Svathna/KG-ALL-backend/cmd/internal/utils/apierror"
)

// RequestPolicy encapsulates who may act on a company's document requests.
// It returns apierror.ErrorResponse directly for seamless integration with handlers.
type RequestPolicy struct{}

func NewRequestPolicy() *RequestPolicy {
	return &RequestPolicy{}
}

// CanDelete allows administrators and members of the owning company.
func (p *RequestPolicy) CanDelete(actor *entity.User, request *entity.Request) apierror.ErrorResponse {
	if actor.IsAdmin() {
		return nil
	}

	if actor.CompanyID != nil && *actor.CompanyID == request.CompanyID {
		return nil
	}
	return apierror.NoPermissionError
}

// CanTransition gates status changes; only administrators resolve requests.
func (p *RequestPolicy) CanTransition(actor *entity.User) apierror.ErrorResponse {
	if !actor.IsAdmin() {
		return apierror.NoPermissionError
	}
	return nil
}
