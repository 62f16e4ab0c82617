package validator

import (
	"encoding/json"
	stderrors "errors"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/tourism-portal/internal/pkg/errors"
)

var validate *validator.Validate

var slugPattern = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

func init() {
	validate = validator.New()

	// В деталях ошибок используем имена полей из json-тегов
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})

	_ = validate.RegisterValidation("slug", func(fl validator.FieldLevel) bool {
		return slugPattern.MatchString(fl.Field().String())
	})

	// json_string_list - строка должна быть JSON-массивом строк
	_ = validate.RegisterValidation("json_string_list", func(fl validator.FieldLevel) bool {
		raw := strings.TrimSpace(fl.Field().String())
		if raw == "" {
			return true
		}
		var list []string
		return json.Unmarshal([]byte(raw), &list) == nil
	})

	_ = validate.RegisterValidation("difficulty", func(fl validator.FieldLevel) bool {
		switch fl.Field().String() {
		case "", "easy", "moderate", "challenging":
			return true
		}
		return false
	})

	_ = validate.RegisterValidation("media_type", func(fl validator.FieldLevel) bool {
		switch fl.Field().String() {
		case "photo", "video", "vr":
			return true
		}
		return false
	})
}

// Validate - валидация структуры. Ошибки валидации возвращаются как AppError с деталями по полям.
func Validate(s interface{}) error {
	if err := validate.Struct(s); err != nil {
		return ToAppError(err)
	}
	return nil
}

// ToAppError конвертирует ошибки validator в INVALID_REQUEST с перечнем полей
func ToAppError(err error) error {
	var verrs validator.ValidationErrors
	if !stderrors.As(err, &verrs) {
		return errors.ErrInvalidRequest.WithMessage(err.Error())
	}

	fields := make(map[string]interface{}, len(verrs))
	for _, fe := range verrs {
		fields[fe.Field()] = describe(fe)
	}

	return errors.ErrInvalidRequest.WithDetails(map[string]interface{}{
		"fields": fields,
	})
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min":
		return "must be at least " + fe.Param()
	case "max":
		return "must be at most " + fe.Param()
	case "oneof":
		return "must be one of: " + fe.Param()
	case "email":
		return "must be a valid email"
	case "url":
		return "must be a valid URL"
	case "slug":
		return "must contain lowercase letters, digits and single dashes"
	case "json_string_list":
		return "must be a JSON array of strings"
	case "difficulty":
		return "must be one of: easy, moderate, challenging"
	case "media_type":
		return "must be one of: photo, video, vr"
	default:
		return "failed '" + fe.Tag() + "' validation"
	}
}

// GetValidator - получить валидатор для кастомной конфигурации
func GetValidator() *validator.Validate {
	return validate
}
