package tokens

import (
	"fmt"
	"os"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	mieverrors "github.com/alexisbeaulieu97/miever/pkg/errors"
)

var (
	yamlLineRegex    = regexp.MustCompile(`line (\d+)`)
	tokenNamePattern = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9_.-]*$`)

	validatorOnce sync.Once
	validateInst  *validator.Validate
)

// document is the on-disk layout of a token file.
type document struct {
	Spacing []Entry `yaml:"spacing" validate:"required,min=1,dive"`
}

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()
		_ = v.RegisterValidation("token_name", func(fl validator.FieldLevel) bool {
			return tokenNamePattern.MatchString(fl.Field().String())
		})
		validateInst = v
	})
	return validateInst
}

// Load reads and validates a YAML token file.
func Load(path string) (Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Table{}, mieverrors.NewParseError(path, 0, err)
	}
	return Parse(data, path)
}

// Parse decodes a YAML token document. source is only used in error messages.
//
//	spacing:
//	  - name: sm
//	    value: 8px
func Parse(data []byte, source string) (Table, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return Table{}, mieverrors.NewParseError(source, extractLine(err), err)
	}

	if err := validatorInstance().Struct(doc); err != nil {
		return Table{}, convertValidationError(err)
	}

	return NewTable(doc.Spacing...)
}

func convertValidationError(err error) error {
	verrs, ok := err.(validator.ValidationErrors)
	if !ok || len(verrs) == 0 {
		return mieverrors.NewValidationError("", err.Error(), err)
	}

	first := verrs[0]
	field := strings.TrimPrefix(first.Namespace(), "document.")
	if field != "" {
		field = strings.ToLower(field[:1]) + field[1:]
	}

	var message string
	switch first.Tag() {
	case "required":
		message = "field is required"
	case "min":
		message = "at least one token must be declared"
	case "token_name":
		message = fmt.Sprintf("invalid token name %q", first.Value())
	default:
		message = fmt.Sprintf("failed %s validation", first.Tag())
	}
	return mieverrors.NewValidationError(field, message, err)
}

func extractLine(err error) int {
	if err == nil {
		return 0
	}

	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}

	var line int
	if _, scanErr := fmt.Sscanf(matches[1], "%d", &line); scanErr != nil {
		return 0
	}
	return line
}
