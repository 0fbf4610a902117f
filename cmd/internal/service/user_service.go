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

type UserRepository interface {
	FindAllActiveNormal() ([]*entity.User, error)
	FindActiveByID(id int64) (*entity.User, error)
	FindByID(id int64) (*entity.User, error)
	FindActiveByUserName(userName string) (*entity.User, error)
	ExistsActiveByUserName(userName string) (bool, error)
	Save(user *entity.User) error
}

// LoginResult bundles what a successful login returns to the client.
type LoginResult struct {
	User  *entity.User
	Token string
}

type UserService struct {
	UserRepo    UserRepository
	CompanyRepo CompanyRepository
	Validate    *validator.Validate
}

func NewUserService(userRepo UserRepository, companyRepo CompanyRepository, validate *validator.Validate) *UserService {
	return &UserService{
		UserRepo:    userRepo,
		CompanyRepo: companyRepo,
		Validate:    validate,
	}
}

// GetUsers lists active normal accounts; administrators are not shown.
func (u *UserService) GetUsers() ([]*entity.User, apierror.ErrorResponse) {
	users, err := u.UserRepo.FindAllActiveNormal()
	if err != nil {
		log.Errorf("failed to fetch users: %v", err)
		return nil, apierror.NewInternal(err)
	}
	return users, nil
}

func (u *UserService) GetUser(id int64) (*entity.User, apierror.ErrorResponse) {
	user, err := u.UserRepo.FindActiveByID(id)
	if err != nil {
		log.Errorf("failed to fetch user %d: %v", id, err)
		return nil, apierror.NewInternal(err)
	}

	if user == nil {
		return nil, apierror.UserNotFoundError
	}
	return user, nil
}

// Login verifies credentials against the stored hash; the comparison
// only ever answers yes or no. A device registration token, when sent,
// is unioned into the user's set.
func (u *UserService) Login(req *contract.LoginRequest) (*LoginResult, apierror.ErrorResponse) {
	utils.Sanitize(req)
	if valerr := u.Validate.Struct(req); valerr != nil {
		return nil, apierror.FromValidationError(valerr)
	}

	user, err := u.UserRepo.FindActiveByUserName(req.UserName)
	if err != nil {
		log.Errorf("failed to fetch user %q: %v", req.UserName, err)
		return nil, apierror.NewInternal(err)
	}

	if user == nil {
		return nil, apierror.UserNameNotFoundError
	}
	return u.finishLogin(user, req)
}

// AdminLogin is Login restricted to administrator accounts.
func (u *UserService) AdminLogin(req *contract.LoginRequest) (*LoginResult, apierror.ErrorResponse) {
	utils.Sanitize(req)
	if valerr := u.Validate.Struct(req); valerr != nil {
		return nil, apierror.FromValidationError(valerr)
	}

	user, err := u.UserRepo.FindActiveByUserName(req.UserName)
	if err != nil {
		log.Errorf("failed to fetch user %q: %v", req.UserName, err)
		return nil, apierror.NewInternal(err)
	}

	if user == nil {
		return nil, apierror.UserNameNotFoundError
	}

	if !user.IsAdmin() {
		return nil, apierror.NoPermissionError
	}
	return u.finishLogin(user, req)
}

func (u *UserService) finishLogin(user *entity.User, req *contract.LoginRequest) (*LoginResult, apierror.ErrorResponse) {
	if !utils.CheckPassword(user.Password, req.Password) {
		return nil, apierror.CredentialsError
	}

	if user.AddRegistrationToken(req.RegistrationToken) {
		user.UpdatedAt = utils.NowUTC()
		if err := u.UserRepo.Save(user); err != nil {
			log.Errorf("failed to store registration token for user %d: %v", user.ID, err)
			return nil, apierror.NewInternal(err)
		}
	}

	token, err := utils.GenerateToken(user.ID)
	if err != nil {
		log.Errorf("failed to issue token for user %d: %v", user.ID, err)
		return nil, apierror.NewInternal(err)
	}

	return &LoginResult{User: user, Token: token}, nil
}

// CreateUser registers a normal account bound to a company. The
// plaintext password is hashed before anything is stored.
func (u *UserService) CreateUser(req *contract.CreateUserRequest) (*LoginResult, apierror.ErrorResponse) {
	utils.Sanitize(req)
	if valerr := u.Validate.Struct(req); valerr != nil {
		return nil, apierror.FromValidationError(valerr)
	}

	exists, err := u.UserRepo.ExistsActiveByUserName(req.UserName)
	if err != nil {
		log.Errorf("failed to check username %q: %v", req.UserName, err)
		return nil, apierror.NewInternal(err)
	}

	if exists {
		return nil, apierror.UserNameInUseError
	}

	company, err := u.CompanyRepo.FindActiveByID(req.CompanyID)
	if err != nil {
		log.Errorf("failed to fetch company %d: %v", req.CompanyID, err)
		return nil, apierror.NewInternal(err)
	}

	if company == nil {
		return nil, apierror.CompanyNotFoundError
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		log.Errorf("failed to hash password: %v", err)
		return nil, apierror.NewInternal(err)
	}

	now := utils.NowUTC()
	user := &entity.User{
		ID:          uid.Generate(),
		FullName:    req.FullName,
		UserName:    req.UserName,
		Password:    hash,
		Type:        entity.UserTypeNormalUser,
		PhoneNumber: req.PhoneNumber,
		CompanyID:   &req.CompanyID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := u.UserRepo.Save(user); err != nil {
		log.Errorf("failed to create user: %v", err)
		return nil, apierror.NewInternal(err)
	}

	token, err := utils.GenerateToken(user.ID)
	if err != nil {
		log.Errorf("failed to issue token for user %d: %v", user.ID, err)
		return nil, apierror.NewInternal(err)
	}
	return &LoginResult{User: user, Token: token}, nil
}

// UpdateUser overwrites profile fields that are present and differ; a
// supplied password is rehashed.
func (u *UserService) UpdateUser(id int64, req *contract.UpdateUserRequest) (*entity.User, apierror.ErrorResponse) {
	if valerr := u.Validate.Struct(req); valerr != nil {
		return nil, apierror.FromValidationError(valerr)
	}

	user, err := u.UserRepo.FindActiveByID(id)
	if err != nil {
		log.Errorf("failed to fetch user %d: %v", id, err)
		return nil, apierror.NewInternal(err)
	}

	if user == nil {
		return nil, apierror.UserNotFoundError
	}

	dirty := false
	dirty = apply(req.FullName, &user.FullName) || dirty
	dirty = apply(req.UserName, &user.UserName) || dirty
	dirty = apply(req.PhoneNumber, &user.PhoneNumber) || dirty

	if req.Password != nil {
		hash, herr := utils.HashPassword(*req.Password)
		if herr != nil {
			log.Errorf("failed to hash password: %v", herr)
			return nil, apierror.NewInternal(herr)
		}
		user.Password = hash
		dirty = true
	}

	if dirty {
		user.UpdatedAt = utils.NowUTC()
		if err := u.UserRepo.Save(user); err != nil {
			log.Errorf("failed to update user %d: %v", id, err)
			return nil, apierror.NewInternal(err)
		}
	}
	return user, nil
}

// ChangePassword lets a user rotate their own password after proving
// they know the current one.
func (u *UserService) ChangePassword(actor *entity.User, targetID int64, req *contract.ChangePasswordRequest) (*entity.User, apierror.ErrorResponse) {
	if valerr := u.Validate.Struct(req); valerr != nil {
		return nil, apierror.FromValidationError(valerr)
	}

	user, err := u.UserRepo.FindActiveByID(targetID)
	if err != nil {
		log.Errorf("failed to fetch user %d: %v", targetID, err)
		return nil, apierror.NewInternal(err)
	}

	if user == nil {
		return nil, apierror.UserNotFoundError
	}

	if actor.ID != targetID {
		return nil, apierror.NotOwnAccountError
	}

	if !utils.CheckPassword(user.Password, req.OldPassword) {
		return nil, apierror.OldPasswordError
	}

	hash, err := utils.HashPassword(req.NewPassword)
	if err != nil {
		log.Errorf("failed to hash password: %v", err)
		return nil, apierror.NewInternal(err)
	}

	user.Password = hash
	user.UpdatedAt = utils.NowUTC()
	if err := u.UserRepo.Save(user); err != nil {
		log.Errorf("failed to change password of user %d: %v", targetID, err)
		return nil, apierror.NewInternal(err)
	}
	return user, nil
}

func (u *UserService) DeleteUser(id int64) apierror.ErrorResponse {
	user, err := u.UserRepo.FindActiveByID(id)
	if err != nil {
		log.Errorf("failed to fetch user %d: %v", id, err)
		return apierror.NewInternal(err)
	}

	if user == nil {
		return apierror.UserNotFoundError
	}

	user.Deleted = true
	user.UpdatedAt = utils.NowUTC()
	if err := u.UserRepo.Save(user); err != nil {
		log.Errorf("failed to delete user %d: %v", id, err)
		return apierror.NewInternal(err)
	}
	return nil
}
