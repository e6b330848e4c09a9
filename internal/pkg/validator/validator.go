package validator

import (
	"strings"

	"github.com/go-playground/validator/v10"

	apperrors "github.com/twincities-service/internal/pkg/errors"
)

var validate *validator.Validate

func init() {
	validate = validator.New(validator.WithRequiredStructEnabled())
}

// Validate runs struct-tag validation and converts failures into a 400
// AppError listing the offending fields.
func Validate(s interface{}) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return apperrors.ErrValidation
	}

	fields := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, strings.ToLower(fe.Field()))
	}

	return apperrors.ErrValidation.WithDetails(map[string]interface{}{
		"fields": fields,
	})
}

func GetValidator() *validator.Validate {
	return validate
}
