// Package validation holds the input rules shared by the Garden client and
// server. The client validates before sending a request so the user gets
// immediate feedback; the server validates again before touching the store.
// Both sides call the same functions, so the rules cannot drift apart.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/dmitrijs2005/garden/internal/common"
	"github.com/go-playground/validator/v10"
)

// SeedInput is the payload of a create-seed request.
type SeedInput struct {
	Text string `json:"text" validate:"required,min=10,max=340"`
}

// AuthorWhere restricts a garden query to one author.
type AuthorWhere struct {
	Name string `json:"name" validate:"required,max=64"`
}

// Where is the optional garden filter.
type Where struct {
	Author *AuthorWhere `json:"author" validate:"omitempty"`
}

// GardenQuery is the input of a feed page request. Limit 0 means "not set".
type GardenQuery struct {
	Limit  int    `json:"limit" validate:"gte=1,lte=100"`
	Cursor string `json:"cursor" validate:"omitempty,uuid"`
	Where  *Where `json:"where" validate:"omitempty"`
}

// SeedRef names an existing seed in like/unlike requests.
type SeedRef struct {
	SeedID string `json:"seed_id" validate:"required,uuid"`
}

// Account carries the name a user registers or logs in with.
type Account struct {
	Username string `json:"username" validate:"required,min=3,max=64,alphanum"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// report json names ("text", "where.author.name") instead of Go field names
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "" || name == "-" {
			return fld.Name
		}
		return name
	})

	return v
}

// Seed validates new seed text.
func Seed(text string) error {
	return Struct(SeedInput{Text: text})
}

// SeedID validates a seed reference.
func SeedID(id string) error {
	return Struct(SeedRef{SeedID: id})
}

// Username validates an account name.
func Username(name string) error {
	return Struct(Account{Username: name})
}

// Garden applies the default page size and validates the query in place.
func Garden(q *GardenQuery) error {
	if q.Limit == 0 {
		q.Limit = common.DefaultPageSize
	}
	return Struct(q)
}

// Struct validates any tagged struct and converts the first violation into a
// *common.ValidationError.
func Struct(s any) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return err
	}

	return toValidationError(fieldErrs[0])
}

func toValidationError(e validator.FieldError) *common.ValidationError {
	field := fieldPath(e.Namespace())

	switch e.Tag() {
	case "required":
		return common.NewValidationError(field, common.RuleRequired,
			fmt.Sprintf("%s is required", field))
	case "min":
		return common.NewValidationError(field, common.RuleTooShort,
			fmt.Sprintf("%s is too short: must be at least %s characters", field, e.Param()))
	case "max":
		return common.NewValidationError(field, common.RuleTooLong,
			fmt.Sprintf("%s is too long: must be at most %s characters", field, e.Param()))
	case "gte":
		return common.NewValidationError(field, common.RuleRange,
			fmt.Sprintf("%s must be at least %s", field, e.Param()))
	case "lte":
		return common.NewValidationError(field, common.RuleRange,
			fmt.Sprintf("%s must be at most %s", field, e.Param()))
	case "alphanum":
		return common.NewValidationError(field, common.RuleFormat,
			fmt.Sprintf("%s must contain only letters and digits", field))
	case "uuid":
		return common.NewValidationError(field, common.RuleFormat,
			fmt.Sprintf("%s must be a seed id", field))
	default:
		return common.NewValidationError(field, common.RuleFormat,
			fmt.Sprintf("%s is invalid", field))
	}
}

// fieldPath drops the root struct name from a validator namespace:
// "GardenQuery.where.author.name" -> "where.author.name".
func fieldPath(namespace string) string {
	_, path, found := strings.Cut(namespace, ".")
	if !found {
		return namespace
	}
	return path
}
