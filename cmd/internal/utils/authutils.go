package utils

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

// TokenValidity is how long an issued credential stays usable.
const TokenValidity = 30 * 24 * time.Hour

// AuthScheme is the authorization header prefix the API accepts.
const AuthScheme = "Token"

var signingSecret []byte

var (
	ErrNoToken      = errors.New("no token found")
	ErrInvalidToken = errors.New("invalid token")
)

func InitSigner(secret string) error {
	if strings.TrimSpace(secret) == "" {
		return errors.New("JWT_SECRET is empty")
	}
	signingSecret = []byte(secret)
	return nil
}

type TokenData struct {
	UserID int64
	Exp    int64
}

// tokenClaims types the id claim as an int64. Snowflake ids do not fit
// in float64's 53 mantissa bits, so decoding them through MapClaims
// would silently change the id.
type tokenClaims struct {
	ID int64 `json:"id"`
	jwt.RegisteredClaims
}

// GenerateToken issues a signed credential binding the user's id,
// valid for TokenValidity from now.
func GenerateToken(userID int64) (string, error) {
	if signingSecret == nil {
		return "", errors.New("token signer not initialized")
	}

	now := time.Now().UTC()
	claims := &tokenClaims{
		ID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(TokenValidity)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(signingSecret)
}

// ValidateToken parses AND validates the signature locally.
// It returns the data if the token is authentic and unexpired.
func ValidateToken(tokenString string) (*TokenData, error) {
	if signingSecret == nil {
		return nil, errors.New("token signer not initialized")
	}

	var claims tokenClaims
	token, err := jwt.ParseWithClaims(tokenString, &claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return signingSecret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	if claims.ID <= 0 {
		return nil, ErrInvalidToken
	}

	data := &TokenData{UserID: claims.ID}
	if claims.ExpiresAt != nil {
		data.Exp = claims.ExpiresAt.Unix()
	}
	return data, nil
}

// ParseTokenDataCtx extracts and validates the credential from the
// request's authorization header, which must be of the form
// "Token <value>".
func ParseTokenDataCtx(ctx echo.Context) (*TokenData, error) {
	header := ctx.Request().Header.Get(echo.HeaderAuthorization)
	if header == "" {
		return nil, ErrNoToken
	}

	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || parts[0] != AuthScheme {
		return nil, ErrNoToken
	}
	return ValidateToken(strings.TrimSpace(parts[1]))
}
