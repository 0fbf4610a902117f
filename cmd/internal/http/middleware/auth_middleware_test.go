package middleware

import (
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Svathna/KG-ALL-backend/cmd/internal/domain/entity"
	"github.com/Svathna/KG-ALL-backend/cmd/internal/utils"
)

func TestMain(m *testing.M) {
	if err := utils.InitSigner("test-secret"); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

type fakeUserRepo struct {
	users map[int64]*entity.User
}

func (f *fakeUserRepo) FindActiveByID(id int64) (*entity.User, error) {
	u, ok := f.users[id]
	if !ok || u.Deleted {
		return nil, nil
	}
	return u, nil
}

func run(t *testing.T, mw echo.MiddlewareFunc, header string) (*httptest.ResponseRecorder, echo.Context) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if header != "" {
		req.Header.Set(echo.HeaderAuthorization, header)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := mw(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	require.NoError(t, handler(c))
	return rec, c
}

func tokenHeader(t *testing.T, userID int64) string {
	t.Helper()

	token, err := utils.GenerateToken(userID)
	require.NoError(t, err)
	return utils.AuthScheme + " " + token
}

func TestAuthMiddlewareAttachesUser(t *testing.T) {
	repo := &fakeUserRepo{users: map[int64]*entity.User{
		1: {ID: 1, UserName: "chan", Type: entity.UserTypeNormalUser},
	}}
	mw := NewAuthMiddleware(&AuthMiddlewareConfig{UserRepo: repo})

	rec, c := run(t, mw, tokenHeader(t, 1))

	assert.Equal(t, http.StatusOK, rec.Code)
	user, ok := c.Get("user").(*entity.User)
	require.True(t, ok)
	assert.Equal(t, int64(1), user.ID)
}

func TestAuthMiddlewareMissingHeader(t *testing.T) {
	mw := NewAuthMiddleware(&AuthMiddlewareConfig{UserRepo: &fakeUserRepo{}})

	rec, _ := run(t, mw, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "No Token Found")
}

func TestAuthMiddlewareWrongScheme(t *testing.T) {
	repo := &fakeUserRepo{users: map[int64]*entity.User{
		1: {ID: 1, Type: entity.UserTypeNormalUser},
	}}
	mw := NewAuthMiddleware(&AuthMiddlewareConfig{UserRepo: repo})

	token, err := utils.GenerateToken(1)
	require.NoError(t, err)

	rec, _ := run(t, mw, "Bearer "+token)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddlewareDeletedUser(t *testing.T) {
	repo := &fakeUserRepo{users: map[int64]*entity.User{
		1: {ID: 1, Deleted: true},
	}}
	mw := NewAuthMiddleware(&AuthMiddlewareConfig{UserRepo: repo})

	rec, _ := run(t, mw, tokenHeader(t, 1))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAdminMiddlewareRejectsNormalUser(t *testing.T) {
	repo := &fakeUserRepo{users: map[int64]*entity.User{
		1: {ID: 1, Type: entity.UserTypeNormalUser},
	}}
	mw := NewAdminMiddleware(&AuthMiddlewareConfig{UserRepo: repo})

	rec, _ := run(t, mw, tokenHeader(t, 1))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "No permission to access")
}

func TestAdminMiddlewareAllowsAdmin(t *testing.T) {
	repo := &fakeUserRepo{users: map[int64]*entity.User{
		1: {ID: 1, Type: entity.UserTypeAdmin},
	}}
	mw := NewAdminMiddleware(&AuthMiddlewareConfig{UserRepo: repo})

	rec, _ := run(t, mw, tokenHeader(t, 1))
	assert.Equal(t, http.StatusOK, rec.Code)
}
