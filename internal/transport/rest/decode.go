package rest

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/heartmarshall/twitter-backend/internal/domain"
	"github.com/heartmarshall/twitter-backend/internal/policy"
)

const maxBodyBytes = 1 << 20

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// authorize answers a caller outside tiers with the generic rejection and
// returns false. Handlers call it before reading the body.
func authorize(w http.ResponseWriter, r *http.Request, tiers ...domain.Tier) bool {
	if _, err := policy.RequireTier(r.Context(), tiers...); err != nil {
		writeError(w, http.StatusBadRequest, msgBadRequest)
		return false
	}
	return true
}

// decodeJSON reads the request body into dst and runs struct validation.
// On failure it writes the error response and returns false.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(dst); err != nil {
		writeError(w, http.StatusBadRequest, msgInvalidBody)
		return false
	}

	if reflect.Indirect(reflect.ValueOf(dst)).Kind() != reflect.Struct {
		return true
	}
	if err := validate.Struct(dst); err != nil {
		writeError(w, http.StatusBadRequest, validationError(err).Message())
		return false
	}
	return true
}

// validationError converts validator output into a domain validation error.
func validationError(err error) *domain.ValidationError {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return domain.NewValidationError("body", msgInvalidBody)
	}

	out := make([]domain.FieldError, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		out = append(out, domain.FieldError{Field: fe.Field(), Message: fieldMessage(fe)})
	}
	return domain.NewValidationErrors(out)
}

func fieldMessage(fe validator.FieldError) string {
	name := fe.Field()
	if name == "" {
		name = "body"
	}

	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required.", name)
	case "email":
		return fmt.Sprintf("%s must be a valid email address.", name)
	case "max":
		return fmt.Sprintf("%s must be at most %s characters.", name, fe.Param())
	default:
		return fmt.Sprintf("%s is invalid.", name)
	}
}

// pathID parses a positive integer URL parameter. An unparsable value is
// answered as a missing user, the only kind of id carried in paths.
func pathID(w http.ResponseWriter, r *http.Request, name string) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	if err != nil || id <= 0 {
		writeError(w, http.StatusNotFound, domain.NotFound("user").Error())
		return 0, false
	}
	return id, true
}
