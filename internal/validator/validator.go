// Package validator provides custom validation functions for Gin's binding engine.
package validator

import (
	"regexp"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"spreadscan/internal/models"
	"spreadscan/internal/scanner"
	"spreadscan/internal/services"
)

var tickerRegex = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9.\-]{0,9}$`)

// Register registers all custom validators with the Gin binding engine.
func Register() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		RegisterOn(v)
	}
}

// New returns a standalone validator that reads the binding tags, for
// ingestion paths that do not go through Gin.
func New() *validator.Validate {
	v := validator.New()
	v.SetTagName("binding")
	RegisterOn(v)
	return v
}

// RegisterOn registers the custom tags on v.
func RegisterOn(v *validator.Validate) {
	_ = v.RegisterValidation("spread_type", validateSpreadType)
	_ = v.RegisterValidation("spread_type_or_all", validateSpreadTypeOrAll)
	_ = v.RegisterValidation("sort_key", validateSortKey)
	_ = v.RegisterValidation("ticker", validateTicker)
	_ = v.RegisterValidation("metric", validateMetric)
}

func validateSpreadType(fl validator.FieldLevel) bool {
	return models.SpreadType(fl.Field().String()).Valid()
}

func validateSpreadTypeOrAll(fl validator.FieldLevel) bool {
	t := models.SpreadType(fl.Field().String())
	return t == scanner.SpreadTypeAll || t.Valid()
}

func validateSortKey(fl validator.FieldLevel) bool {
	return services.IsValidSortKey(fl.Field().String())
}

func validateTicker(fl validator.FieldLevel) bool {
	return tickerRegex.MatchString(fl.Field().String())
}

func validateMetric(fl validator.FieldLevel) bool {
	return scanner.Metric(fl.Field().String()).Valid()
}
