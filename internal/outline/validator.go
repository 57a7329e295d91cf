package outline

import (
	"fmt"
	"regexp"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	versionPattern = regexp.MustCompile(`^\d+(\.\d+)?$`)
)

// validatorInstance configures and returns the shared validator used across
// the outline package.
func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		_ = v.RegisterValidation("outline_version", func(fl validator.FieldLevel) bool {
			return versionPattern.MatchString(fl.Field().String())
		})

		v.RegisterStructValidation(blockPayloadValidation, Block{})

		validateInst = v
	})
	return validateInst
}

// blockPayloadValidation enforces kind/payload coherence: list blocks carry
// items, every other kind carries text only. An empty items slice on a list
// block is valid (it renders zero entries).
func blockPayloadValidation(sl validator.StructLevel) {
	block := sl.Current().Interface().(Block)

	switch block.Kind {
	case "list":
		if block.Text != "" {
			sl.ReportError(block.Text, "text", "Text", "list_no_text", "")
		}
	case "title", "header", "paragraph":
		if len(block.Items) > 0 {
			sl.ReportError(block.Items, "items", "Items", "text_no_items", "")
		}
	}
}

// Validate runs struct validation over a parsed outline and converts the
// first failure into a *ValidationError.
func Validate(o *Outline) error {
	if err := validatorInstance().Struct(o); err != nil {
		if fieldErrs, ok := err.(validator.ValidationErrors); ok && len(fieldErrs) > 0 {
			fe := fieldErrs[0]
			return NewValidationError(
				fe.Namespace(),
				fmt.Sprintf("failed on rule '%s'", fe.Tag()),
				err,
			)
		}
		return NewValidationError("", err.Error(), err)
	}
	return nil
}
