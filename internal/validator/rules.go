package validator

import (
	"log"
	"reflect"
	"regexp"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

var calendlyPattern = regexp.MustCompile(`^https://(calendly\.com|www\.calendly\.com)/.+`)

// IsCalendlyLink проверяет, что ссылка ведет на calendly.com
func IsCalendlyLink(link string) bool {
	return calendlyPattern.MatchString(link)
}

func registerCustomRules(v *validator.Validate) {
	mustRegister := func(tag string, fn validator.Func) {
		if err := v.RegisterValidation(tag, fn); err != nil {
			log.Fatalf("failed to register custom validation tag '%s': %v", tag, err)
		}
	}

	// 'notblank': строка не пустая после обрезки пробелов
	mustRegister("notblank", validateNotBlank)

	// 'calendly': ссылка на calendly.com
	mustRegister("calendly", validateCalendly)

	// 'nonnegint': строка с целым числом >= 0
	mustRegister("nonnegint", validateNonNegInt)
}

func validateNotBlank(fl validator.FieldLevel) bool {
	field := fl.Field()
	for field.Kind() == reflect.Ptr {
		if field.IsNil() {
			return false
		}
		field = field.Elem()
	}
	return strings.TrimSpace(field.String()) != ""
}

func validateCalendly(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true // пустое значение проверяет 'required'
	}
	return IsCalendlyLink(value)
}

// ParseNonNegInt разбирает целое число >= 0, пробелы по краям допускаются
func ParseNonNegInt(value string) (int, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil || n < 0 {
		return 0, false
	}
	return n, true
}

func validateNonNegInt(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true // пустое значение проверяет 'required'
	}
	_, ok := ParseNonNegInt(value)
	return ok
}
