package style

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/alexisbeaulieu97/miever/pkg/tokens"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("yaml"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
		validateInst = v
	})
	return validateInst
}

// Issue describes a prop the resolver will pass through but a style engine is likely to reject.
type Issue struct {
	Field   string
	Value   string
	Message string
}

func (i Issue) String() string {
	return fmt.Sprintf("%s=%q: %s", i.Field, i.Value, i.Message)
}

// Check reports suspicious props in req. It never affects Resolve.
func Check(req Request, table tokens.Table) []Issue {
	var issues []Issue

	if err := validatorInstance().Struct(req); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			for _, fe := range verrs {
				issues = append(issues, Issue{
					Field:   fe.Field(),
					Value:   fmt.Sprint(fe.Value()),
					Message: fmt.Sprintf("unknown keyword, expected one of: %s", strings.ReplaceAll(fe.Param(), " ", ", ")),
				})
			}
		}
	}

	for _, l := range req.lengths() {
		if n, ok := l.value.Pixels(); ok && n < 0 {
			issues = append(issues, Issue{Field: l.field, Value: l.value.String(), Message: "negative length"})
		}
		if l.value.Kind() != LengthToken {
			continue
		}
		if !l.spacing {
			issues = append(issues, Issue{Field: l.field, Value: l.value.String(), Message: "spacing tokens are only resolved for padding props"})
			continue
		}
		if !table.Has(l.value.String()) {
			issues = append(issues, Issue{Field: l.field, Value: l.value.String(), Message: "unknown spacing token"})
		}
	}

	return issues
}
