package validation

import (
	"regexp"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var clockPattern = regexp.MustCompile(`^([01]\d|2[0-3]):[0-5]\d$`)

var registerOnce sync.Once

// Register adds the custom rules to gin's binding validator. Safe to call
// more than once.
func Register() {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		_ = v.RegisterValidation("clock", Clock)
	})
}

// Clock accepts a 24-hour "HH:MM" wall-clock time.
func Clock(fl validator.FieldLevel) bool {
	return clockPattern.MatchString(fl.Field().String())
}

// IsClock reports whether s is a 24-hour "HH:MM" time.
func IsClock(s string) bool {
	return clockPattern.MatchString(s)
}
