package http

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/thataway61/YazWho-MusicJam-Empire-Dashboard/internal/musicjam/domain"
)

// RegisterValidations installs the jam session field validators on gin's
// binding engine. Call once before serving requests.
func RegisterValidations() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return nil
	}
	return v.RegisterValidation("jamgenre", func(fl validator.FieldLevel) bool {
		return domain.IsKnownGenre(fl.Field().String())
	})
}
