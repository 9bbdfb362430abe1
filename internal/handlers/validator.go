package handlers

import (
	stderrors "errors"
	"fmt"
	"strings"

	"banking-ledger/internal/errors"
	"banking-ledger/internal/validation"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// RequestValidator runs the validation tags of request DTOs and reports the
// first failing rule as a ledger validation error.
type RequestValidator struct {
	validator *validation.Validator
}

func NewValidator() echo.Validator {
	return &RequestValidator{validator: validation.GetValidator()}
}

func (rv *RequestValidator) Validate(i interface{}) error {
	err := rv.validator.Struct(i)
	if err == nil {
		return nil
	}

	var fields validator.ValidationErrors
	if !stderrors.As(err, &fields) || len(fields) == 0 {
		return errors.Validation("http.validate", errors.ValidationGeneral, err)
	}

	problems := make([]string, 0, len(fields))
	for _, fe := range fields {
		problems = append(problems, fmt.Sprintf("%s %s", fe.Field(), ruleMessage(fe)))
	}
	return errors.Validation("http.validate", ruleCode(fields[0].Tag()), stderrors.New(strings.Join(problems, "; ")))
}

func ruleCode(tag string) errors.ErrorCode {
	switch tag {
	case "required":
		return errors.ValidationRequiredField
	case "money", "money_nonnegative":
		return errors.ValidationPrecision
	case "uuid", "numeric", "account_number", "transaction_type":
		return errors.ValidationInvalidFormat
	case "min", "max", "gte", "lte", "oneof":
		return errors.ValidationOutOfRange
	default:
		return errors.ValidationGeneral
	}
}

func ruleMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "money":
		return "must be a positive amount with at most two decimal places"
	case "money_nonnegative":
		return "must be a non-negative amount with at most two decimal places"
	case "uuid":
		return "must be an account ID"
	case "account_number":
		return "must look like XXX-XXX-XXX-XXX"
	case "transaction_type":
		return "is not a known transaction type"
	case "numeric":
		return "must be a number"
	case "min", "gte":
		return "must be at least " + fe.Param()
	case "max", "lte":
		return "must be at most " + fe.Param()
	default:
		return "fails " + fe.Tag()
	}
}
