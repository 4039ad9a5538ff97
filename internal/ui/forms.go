package ui

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/me/jobdesk/pkg/jobportal"
)

// Form DTOs mirror the portal's write endpoints. Validation runs
// client-side here so obviously bad input never leaves the house;
// the portal's own field errors still surface when it disagrees.

type loginForm struct {
	Email    string `validate:"required,email"`
	Password string `validate:"required"`
}

type registerForm struct {
	Email    string `validate:"required,email"`
	Username string `validate:"required,min=3,max=150"`
	Password string `validate:"required,min=8"`
	Role     string `validate:"required,oneof=EMPLOYEE EMPLOYER"`
}

type jobForm struct {
	Title        string `validate:"required,max=200"`
	Description  string `validate:"required"`
	Requirements string `validate:"omitempty"`
	SalaryRange  string `validate:"omitempty,max=100"`
	Location     string `validate:"required,max=200"`
	JobType      string `validate:"required,oneof=FULL_TIME PART_TIME CONTRACT INTERNSHIP"`
	Deadline     string `validate:"omitempty,datetime=2006-01-02"`
}

type applyForm struct {
	CoverLetter string `validate:"required,min=20"`
}

type employeeProfileForm struct {
	Degree     string `validate:"omitempty,max=200"`
	Skills     string `validate:"omitempty"`
	Experience string `validate:"omitempty"`
	Phone      string `validate:"omitempty,max=30"`
}

type companyProfileForm struct {
	CompanyName        string `validate:"required,max=200"`
	CompanyDescription string `validate:"omitempty"`
	Industry           string `validate:"omitempty,max=100"`
	CompanySize        string `validate:"omitempty,max=50"`
	Location           string `validate:"omitempty,max=200"`
}

// checkForm validates a DTO and flattens the failures into a
// field -> message map the templates can show inline.
func (ui *UI) checkForm(form any) map[string]string {
	err := ui.validate.Struct(form)
	if err == nil {
		return nil
	}

	errs, ok := err.(validator.ValidationErrors)
	if !ok {
		ui.logger.Error("form validation failed", "error", err)
		return map[string]string{"form": "invalid input"}
	}

	fields := make(map[string]string, len(errs))
	for _, fe := range errs {
		fields[strings.ToLower(fe.Field())] = fieldErrorMessage(fe)
	}
	return fields
}

func fieldErrorMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required"
	case "email":
		return "Enter a valid email address"
	case "min":
		if fe.Kind().String() == "string" {
			return fmt.Sprintf("Must be at least %s characters", fe.Param())
		}
		return fmt.Sprintf("Must be at least %s", fe.Param())
	case "max":
		return fmt.Sprintf("Must be at most %s characters", fe.Param())
	case "oneof":
		return fmt.Sprintf("Must be one of: %s", strings.ReplaceAll(fe.Param(), " ", ", "))
	case "datetime":
		return "Use the YYYY-MM-DD format"
	default:
		return "Invalid value"
	}
}

func formValue(r *http.Request, name string) string {
	return strings.TrimSpace(r.FormValue(name))
}

// portalFields flattens the portal's per-field error lists down to the
// first message per field, matching the shape checkForm produces.
func portalFields(err error) map[string]string {
	raw := jobportal.FieldErrors(err)
	if len(raw) == 0 {
		return nil
	}
	fields := make(map[string]string, len(raw))
	for name, msgs := range raw {
		if len(msgs) > 0 {
			fields[name] = msgs[0]
		}
	}
	return fields
}
