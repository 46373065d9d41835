package validation

import (
	"reflect"
	"regexp"
	"strings"
	"sync"
	"time"
	"unicode"

	"github.com/go-playground/validator/v10"
)

// DateLayout is the calendar date format accepted in payloads and
// rendered in responses.
const DateLayout = "2006-01-02"

// Regex patterns
var (
	// Allow letters, numbers, spaces, and common professional punctuation: . ' - / & ( ) ,
	nameRegex = regexp.MustCompile(`^[\p{L}0-9 .'/&(),-]+$`)

	isoDateRegex = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
)

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

// Validator returns a shared validator with the custom tags registered.
// validator.Validate is safe for concurrent use and caches struct metadata.
func Validator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New()
		validate.RegisterTagNameFunc(FieldName)
		RegisterValidators(validate)
	})
	return validate
}

// FieldName reports fields by their json (or form) name so errors match the
// payload the client sent. Untagged fields keep their Go name.
func FieldName(fld reflect.StructField) string {
	for _, tag := range []string{"json", "form"} {
		name, _, _ := strings.Cut(fld.Tag.Get(tag), ",")
		if name != "" && name != "-" {
			return name
		}
	}
	return ""
}

// RegisterValidators registers custom validators to the validator instance
func RegisterValidators(v *validator.Validate) {
	_ = v.RegisterValidation("valid_name", ValidName)
	_ = v.RegisterValidation("no_emoji", NoEmoji)
	_ = v.RegisterValidation("iso_date", ISODate)
}

// ValidName validates that a string contains only valid name characters
func ValidName(fl validator.FieldLevel) bool {
	val := fl.Field().String()
	if val == "" {
		return true // Optional, use required if needed
	}
	return nameRegex.MatchString(val)
}

// NoEmoji validates that a string does not contain emoji characters
func NoEmoji(fl validator.FieldLevel) bool {
	val := fl.Field().String()
	for _, r := range val {
		if r > 0x1F000 {
			return false // Supplementary characters (mostly emoji/symbols)
		}
		if unicode.In(r, unicode.So, unicode.Sk) {
			return false
		}
	}
	return true
}

// ISODate accepts YYYY-MM-DD strings naming a real calendar day.
// Empty strings pass; combine with required when needed.
func ISODate(fl validator.FieldLevel) bool {
	val := fl.Field().String()
	if val == "" {
		return true
	}
	if !isoDateRegex.MatchString(val) {
		return false
	}
	_, err := time.Parse(DateLayout, val)
	return err == nil
}
