// file: internals/helpers/validate.go
package helper

import "github.com/go-playground/validator/v10"

// Validator dipakai bersama oleh semua controller.
var Validate = validator.New()

// ValidationErrorMap ubah validator.ValidationErrors → map field → tags.
func ValidationErrorMap(err error) map[string][]string {
	out := map[string][]string{}
	if ve, ok := err.(validator.ValidationErrors); ok {
		for _, fe := range ve {
			out[fe.Field()] = append(out[fe.Field()], fe.Tag())
		}
	}
	return out
}
