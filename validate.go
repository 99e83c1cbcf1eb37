package visionkit

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type titleForm struct {
	Title string `form:"title" validate:"max=120"`
}

type templateForm struct {
	Template string `form:"template" validate:"required,oneof=grid freeform"`
}

type layoutForm struct {
	Layout string `form:"layout" validate:"required,oneof=classic modern collage"`
}

type captionForm struct {
	Text string `form:"text" validate:"max=200"`
}

type signupForm struct {
	Email string `form:"email" validate:"required,email,max=254"`
}

// formValidator adapts validator/v10 to echo.Validator.
type formValidator struct {
	v *validator.Validate
}

func newFormValidator() *formValidator {
	return &formValidator{v: validator.New(validator.WithRequiredStructEnabled())}
}

func (fv *formValidator) Validate(i any) error {
	err := fv.v.Struct(i)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fieldMessage(fe))
	}
	return echo.NewHTTPError(http.StatusBadRequest, strings.Join(msgs, "; "))
}

func fieldMessage(fe validator.FieldError) string {
	field := strings.ToLower(fe.Field())
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", field, fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, fe.Param())
	case "email":
		return field + " must be a valid email address"
	}
	return field + " is invalid"
}

// bindForm binds and validates a POSTed form into dst.
func bindForm(c echo.Context, dst any) error {
	if err := c.Bind(dst); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid form")
	}
	return c.Validate(dst)
}
