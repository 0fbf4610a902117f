package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Svathna/KG-ALL-backend/cmd/internal/contract"
	"github.com/Svathna/KG-ALL-backend/cmd/internal/domain/entity"
	"github.com/Svathna/KG-ALL-backend/cmd/internal/utils"
	"github.com/Svathna/KG-ALL-backend/cmd/internal/utils/apierror"
)

func newUserFixture(t *testing.T) (*UserService, *entity.Company, *fakeUserRepo) {
	t.Helper()

	company := &entity.Company{ID: 30, Name: "Acme", NameInKhmer: "Acme KH"}
	userRepo := newFakeUserRepo()
	companyRepo := newFakeCompanyRepo(company)

	return NewUserService(userRepo, companyRepo, newTestValidator()), company, userRepo
}

func seedUser(t *testing.T, repo *fakeUserRepo, id int64, userName, password string, userType entity.UserType) *entity.User {
	t.Helper()

	hash, err := utils.HashPassword(password)
	require.NoError(t, err)

	user := &entity.User{
		ID:       id,
		FullName: "Some One",
		UserName: userName,
		Password: hash,
		Type:     userType,
	}
	require.NoError(t, repo.Save(user))
	return user
}

func TestLoginSuccess(t *testing.T) {
	svc, _, userRepo := newUserFixture(t)
	seedUser(t, userRepo, 1, "chan", "Secret1pass", entity.UserTypeNormalUser)

	result, apierr := svc.Login(&contract.LoginRequest{UserName: "chan", Password: "Secret1pass"})
	require.Nil(t, apierr)

	assert.NotEmpty(t, result.Token)
	assert.Equal(t, "chan", result.User.UserName)
}

// A username stored trimmed must still match when sent with stray
// whitespace around it.
func TestLoginTrimsUserName(t *testing.T) {
	svc, _, userRepo := newUserFixture(t)
	seedUser(t, userRepo, 1, "chan", "Secret1pass", entity.UserTypeNormalUser)

	result, apierr := svc.Login(&contract.LoginRequest{UserName: "  chan  ", Password: "Secret1pass"})
	require.Nil(t, apierr)
	assert.Equal(t, "chan", result.User.UserName)
}

func TestLoginWrongPassword(t *testing.T) {
	svc, _, userRepo := newUserFixture(t)
	seedUser(t, userRepo, 1, "chan", "Secret1pass", entity.UserTypeNormalUser)

	_, apierr := svc.Login(&contract.LoginRequest{UserName: "chan", Password: "nope"})
	assert.Equal(t, apierror.CredentialsError, apierr)
}

func TestLoginUnknownUserName(t *testing.T) {
	svc, _, _ := newUserFixture(t)

	_, apierr := svc.Login(&contract.LoginRequest{UserName: "ghost", Password: "whatever"})
	assert.Equal(t, apierror.UserNameNotFoundError, apierr)
}

func TestLoginUnionsRegistrationToken(t *testing.T) {
	svc, _, userRepo := newUserFixture(t)
	seedUser(t, userRepo, 1, "chan", "Secret1pass", entity.UserTypeNormalUser)

	login := func(token string) *entity.User {
		result, apierr := svc.Login(&contract.LoginRequest{
			UserName:          "chan",
			Password:          "Secret1pass",
			RegistrationToken: token,
		})
		require.Nil(t, apierr)
		return result.User
	}

	user := login("device-a")
	assert.Equal(t, []string{"device-a"}, user.RegistrationTokenSet())

	// Same token again must not duplicate.
	user = login("device-a")
	assert.Equal(t, []string{"device-a"}, user.RegistrationTokenSet())

	user = login("device-b")
	assert.Equal(t, []string{"device-a", "device-b"}, user.RegistrationTokenSet())
}

func TestAdminLoginRejectsNormalUser(t *testing.T) {
	svc, _, userRepo := newUserFixture(t)
	seedUser(t, userRepo, 1, "chan", "Secret1pass", entity.UserTypeNormalUser)

	_, apierr := svc.AdminLogin(&contract.LoginRequest{UserName: "chan", Password: "Secret1pass"})
	assert.Equal(t, apierror.NoPermissionError, apierr)
}

func TestAdminLoginSuccess(t *testing.T) {
	svc, _, userRepo := newUserFixture(t)
	seedUser(t, userRepo, 1, "boss", "Secret1pass", entity.UserTypeAdmin)

	result, apierr := svc.AdminLogin(&contract.LoginRequest{UserName: "boss", Password: "Secret1pass"})
	require.Nil(t, apierr)
	assert.True(t, result.User.IsAdmin())
}

func TestCreateUserHashesPassword(t *testing.T) {
	svc, company, _ := newUserFixture(t)

	result, apierr := svc.CreateUser(&contract.CreateUserRequest{
		FullName:  "New Person",
		UserName:  "newperson",
		Password:  "Secret1pass",
		CompanyID: company.ID,
	})
	require.Nil(t, apierr)

	assert.NotEqual(t, "Secret1pass", result.User.Password)
	assert.True(t, utils.CheckPassword(result.User.Password, "Secret1pass"))
	assert.Equal(t, entity.UserTypeNormalUser, result.User.Type)
	assert.NotEmpty(t, result.Token)
}

func TestCreateUserDuplicateUserName(t *testing.T) {
	svc, company, userRepo := newUserFixture(t)
	seedUser(t, userRepo, 1, "taken", "Secret1pass", entity.UserTypeNormalUser)

	_, apierr := svc.CreateUser(&contract.CreateUserRequest{
		FullName:  "New Person",
		UserName:  "taken",
		Password:  "Secret1pass",
		CompanyID: company.ID,
	})
	assert.Equal(t, apierror.UserNameInUseError, apierr)
}

func TestCreateUserWeakPasswordRejected(t *testing.T) {
	svc, company, _ := newUserFixture(t)

	_, apierr := svc.CreateUser(&contract.CreateUserRequest{
		FullName:  "New Person",
		UserName:  "newperson",
		Password:  "alllowercase1",
		CompanyID: company.ID,
	})
	require.NotNil(t, apierr)
	assert.Equal(t, 422, apierr.Code())
}

func TestChangePasswordSelfOnly(t *testing.T) {
	svc, _, userRepo := newUserFixture(t)
	target := seedUser(t, userRepo, 1, "chan", "Secret1pass", entity.UserTypeNormalUser)
	other := seedUser(t, userRepo, 2, "other", "Secret1pass", entity.UserTypeNormalUser)

	req := &contract.ChangePasswordRequest{OldPassword: "Secret1pass", NewPassword: "Newsecret1X"}

	_, apierr := svc.ChangePassword(other, target.ID, req)
	assert.Equal(t, apierror.NotOwnAccountError, apierr)

	updated, apierr := svc.ChangePassword(target, target.ID, req)
	require.Nil(t, apierr)
	assert.True(t, utils.CheckPassword(updated.Password, "Newsecret1X"))
}

func TestChangePasswordWrongOldPassword(t *testing.T) {
	svc, _, userRepo := newUserFixture(t)
	target := seedUser(t, userRepo, 1, "chan", "Secret1pass", entity.UserTypeNormalUser)

	_, apierr := svc.ChangePassword(target, target.ID, &contract.ChangePasswordRequest{
		OldPassword: "wrong",
		NewPassword: "Newsecret1X",
	})
	assert.Equal(t, apierror.OldPasswordError, apierr)
}

func TestGetUsersHidesAdminsAndDeleted(t *testing.T) {
	svc, _, userRepo := newUserFixture(t)
	seedUser(t, userRepo, 1, "boss", "Secret1pass", entity.UserTypeAdmin)
	seedUser(t, userRepo, 2, "chan", "Secret1pass", entity.UserTypeNormalUser)
	gone := seedUser(t, userRepo, 3, "gone", "Secret1pass", entity.UserTypeNormalUser)
	gone.Deleted = true

	users, apierr := svc.GetUsers()
	require.Nil(t, apierr)
	require.Len(t, users, 1)
	assert.Equal(t, "chan", users[0].UserName)
}

func TestDeleteUserTombstones(t *testing.T) {
	svc, _, userRepo := newUserFixture(t)
	user := seedUser(t, userRepo, 1, "chan", "Secret1pass", entity.UserTypeNormalUser)

	require.Nil(t, svc.DeleteUser(user.ID))

	_, apierr := svc.GetUser(user.ID)
	assert.Equal(t, apierror.UserNotFoundError, apierr)

	// The row itself still exists.
	raw, err := userRepo.FindByID(user.ID)
	require.NoError(t, err)
	assert.True(t, raw.Deleted)
}

func TestUpdateUserPatchesPresentFields(t *testing.T) {
	svc, _, userRepo := newUserFixture(t)
	user := seedUser(t, userRepo, 1, "chan", "Secret1pass", entity.UserTypeNormalUser)

	newName := "Chan Dara"
	updated, apierr := svc.UpdateUser(user.ID, &contract.UpdateUserRequest{FullName: &newName})
	require.Nil(t, apierr)

	assert.Equal(t, "Chan Dara", updated.FullName)
	assert.Equal(t, "chan", updated.UserName)
}
