package apierror

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ErrorResponse abstracts all API error responses to the user.
//
// This interface does not implement `error`, since its only purpose
// is to be used for API responses and not for logging circumstances.
//
// In general, the whole ErrorResponse can be sent for serialization.
type ErrorResponse interface {
	// Code is the HTTP status code to be returned.
	Code() int
}

// APIError serializes to the standard {success:false, message} envelope.
type APIError struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Status  int    `json:"-"`
}

func (a *APIError) Code() int {
	return a.Status
}

type StructuredError struct {
	Success bool                `json:"success"`
	Errors  map[string][]string `json:"errors"`
	Status  int                 `json:"-"`
}

func (s *StructuredError) Code() int {
	return s.Status
}

func (s *StructuredError) Add(field, problem string) {
	s.Errors[field] = append(s.Errors[field], problem)
}

var (
	MalformedBodyError  = NewSimple(400, "Malformed JSON body")
	InternalServerError = NewSimple(500, "Internal server error")
	InvalidIDError      = NewSimple(400, "The provided ID is invalid, IDs are usually int64 > 0")

	/*
	 * Used for authentications
	 */
	NoTokenError          = NewSimple(401, "No Token Found")
	InvalidTokenError     = NewSimple(401, "Invalid Token")
	NoPermissionError     = NewSimple(401, "No permission to access")
	UserNameNotFoundError = NewSimple(400, "User Name not found")
	CredentialsError      = NewSimple(400, "Not match User Name/password")
	OldPasswordError      = NewSimple(400, "Old Password is incorrect")
	NotOwnAccountError    = NewSimple(400, "Do not have permission")

	/*
	 * Entity lookups / uniqueness
	 */
	CompanyNotFoundError    = NewSimple(400, "Company not found")
	UserNotFoundError       = NewSimple(400, "User not found")
	RequestNotFoundError    = NewSimple(400, "Request not found")
	DocNotFoundError        = NewSimple(400, "Doc not found")
	TaxHistoryNotFoundError = NewSimple(400, "TaxHistory do not exist in the Database")
	InvalidInputError       = NewSimple(400, "Invalid input")
	NameInUseError          = NewSimple(400, "Name is in use")
	UserNameInUseError      = NewSimple(400, "User Name is in use")

	/*
	 * Document uploads
	 */
	MissingDocFileError = NewSimple(400, "A file is required at the 'file' form field")
)

func FromValidationError(err error) *StructuredError {
	var ve validator.ValidationErrors
	ok := errors.As(err, &ve)
	if !ok {
		return nil
	}

	problems := map[string][]string{}
	for _, fe := range ve {
		field := strings.ToLower(fe.Field())

		switch fe.Tag() {
		case "required":
			problems[field] = append(problems[field], "This field is required")
		case "min":
			problems[field] = append(problems[field], "Value is too short, min: "+fe.Param())
		case "max":
			problems[field] = append(problems[field], "Value is too long, max: "+fe.Param())
		case "oneof":
			problems[field] = append(problems[field], "Value must be one of: "+fe.Param())
		case "hasupper":
			problems[field] = append(problems[field], "Value must have at least one uppercase character")
		case "haslower":
			problems[field] = append(problems[field], "Value must have at least one lowercase character")
		case "hasdigit":
			problems[field] = append(problems[field], "Value must have at least one number")
		case "hasspecial":
			problems[field] = append(problems[field], "Value must have at least one special character")
		case "nospaces":
			problems[field] = append(problems[field], "Value cannot contain whitespace")

		default:
			problems[field] = append(problems[field], "Invalid value provided")
		}
	}

	return &StructuredError{
		Errors: problems,
		Status: http.StatusUnprocessableEntity,
	}
}

func NewSimple(status int, msg string, args ...any) *APIError {
	if len(args) > 0 {
		msg = fmt.Sprintf(msg, args...)
	}
	return &APIError{Status: status, Message: msg}
}

func NewStructured(code int) *StructuredError {
	return &StructuredError{
		Errors: make(map[string][]string),
		Status: code,
	}
}

// NewInternal surfaces the underlying error text verbatim, mirroring the
// behavior of the admin tool this API serves.
func NewInternal(err error) *APIError {
	return NewSimple(http.StatusInternalServerError, err.Error())
}

func NewInvalidParamTypeError(name, dataType string) *APIError {
	return NewSimple(http.StatusBadRequest, "Parameter '%s' has invalid type, expected: %s", name, dataType)
}

func NewMissingParamError(name string) *APIError {
	return NewSimple(http.StatusBadRequest, "Parameter '%s' is required", name)
}
