package helper

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ValidationMap converts validator errors into the field → failed-tags map
// that JsonValidationError answers with. Non-validator errors collapse into
// a single "_body" entry so the caller never loses the failure.
func ValidationMap(err error) map[string][]string {
	out := map[string][]string{}
	if err == nil {
		return out
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		out["_body"] = []string{err.Error()}
		return out
	}

	for _, fe := range fieldErrs {
		field := strings.ToLower(fe.Field())
		tag := fe.Tag()
		if fe.Param() != "" {
			tag += "=" + fe.Param()
		}
		out[field] = append(out[field], tag)
	}
	return out
}
