package logfactory

import (
	"fmt"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate
var once sync.Once

func validateConfig(cfg *Config) error {
	once.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
	})

	// The required tag does not catch whitespace-only names.
	if strings.TrimSpace(cfg.Name) == emptyString {
		return fmt.Errorf("%w: %s", ErrInvalidConfiguration, errMsgBlankName)
	}

	if err := validate.Struct(cfg); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrInvalidConfiguration, errMsgConfigInvalid, err)
	}

	return nil
}
