package serverutils

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"chem-synthesis-be/pkg/synthesis"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// cas_number: hyphen-delimited registry number, \d{2,7}-\d{2}-\d
	_ = v.RegisterValidation("cas_number", func(fl validator.FieldLevel) bool {
		return synthesis.IsValidCASNumber(fl.Field().String())
	})
	return v
}

// ValidateRequest runs struct-tag validation and flattens failures into a
// single readable error.
func ValidateRequest(req interface{}) error {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}

	var errs validator.ValidationErrors
	if !errors.As(err, &errs) {
		return err
	}

	messages := make([]string, 0, len(errs))
	for _, fe := range errs {
		messages = append(messages, fmt.Sprintf("%s failed on '%s'", fe.Field(), fe.Tag()))
	}
	return errors.New(strings.Join(messages, "; "))
}
