package contact

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/verte-zerg/termfolio/internal/model"
)

var validate = validator.New()

// ValidationError lists the fields that blocked a submission.
type ValidationError struct {
	Fields []string
	msgs   []string
}

func (e *ValidationError) Error() string {
	return strings.Join(e.msgs, "; ")
}

// Normalize trims surrounding whitespace from every field.
func Normalize(form model.ContactForm) model.ContactForm {
	return model.ContactForm{
		Name:    strings.TrimSpace(form.Name),
		Email:   strings.TrimSpace(form.Email),
		Message: strings.TrimSpace(form.Message),
	}
}

// Validate normalizes form and checks that every field is set and the
// email is well-formed.
func Validate(form model.ContactForm) (model.ContactForm, error) {
	form = Normalize(form)
	err := validate.Struct(form)
	if err == nil {
		return form, nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return form, fmt.Errorf("failed to validate form: %w", err)
	}
	verr := &ValidationError{}
	for _, fe := range fieldErrs {
		field := strings.ToLower(fe.Field())
		verr.Fields = append(verr.Fields, field)
		switch fe.Tag() {
		case "required":
			verr.msgs = append(verr.msgs, field+" is required")
		case "email":
			verr.msgs = append(verr.msgs, field+" must be a valid email address")
		default:
			verr.msgs = append(verr.msgs, field+" is invalid")
		}
	}
	return form, verr
}
