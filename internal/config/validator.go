package config

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/alexisbeaulieu97/miever/internal/box"
	mieverrors "github.com/alexisbeaulieu97/miever/pkg/errors"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	boxNamePattern  = regexp.MustCompile(`^[a-z0-9][a-z0-9_-]*$`)
	cssClassPattern = regexp.MustCompile(`^-?[_a-zA-Z][_a-zA-Z0-9-]*( -?[_a-zA-Z][_a-zA-Z0-9-]*)*$`)
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		_ = v.RegisterValidation("box_name", func(fl validator.FieldLevel) bool {
			return boxNamePattern.MatchString(fl.Field().String())
		})

		_ = v.RegisterValidation("css_class", func(fl validator.FieldLevel) bool {
			return cssClassPattern.MatchString(fl.Field().String())
		})

		validateInst = v
	})

	return validateInst
}

// ValidateDocument performs schema validation and checks that box names are unique.
func ValidateDocument(doc *Document) error {
	if doc == nil {
		return mieverrors.NewValidationError("document", "document is nil", nil)
	}

	if err := validatorInstance().Struct(doc); err != nil {
		return convertValidationError(err)
	}

	seen := make(map[string]struct{})
	var dup string
	for i := range doc.Boxes {
		doc.Boxes[i].Walk(func(node *box.Box, _ int) {
			if node.Name == "" || dup != "" {
				return
			}
			if _, exists := seen[node.Name]; exists {
				dup = node.Name
				return
			}
			seen[node.Name] = struct{}{}
		})
	}
	if dup != "" {
		return mieverrors.NewValidationError("boxes", fmt.Sprintf("duplicate box name %q", dup), nil)
	}

	return nil
}

func convertValidationError(err error) error {
	if err == nil {
		return nil
	}

	var ves validator.ValidationErrors
	if errors.As(err, &ves) && len(ves) > 0 {
		ve := ves[0]
		field := yamlishFieldName(ve)
		msg := fmt.Sprintf("%s failed validation for tag '%s'", field, ve.Tag())
		return mieverrors.NewValidationError(field, msg, err)
	}

	return mieverrors.NewValidationError("document", err.Error(), err)
}

func yamlishFieldName(fe validator.FieldError) string {
	parts := strings.Split(fe.StructNamespace(), ".")
	if len(parts) > 1 {
		parts = parts[1:]
	}
	for i, part := range parts {
		parts[i] = strings.ToLower(part)
	}
	return strings.Join(parts, ".")
}
