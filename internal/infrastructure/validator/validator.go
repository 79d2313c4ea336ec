package validator

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/melodix-app/melodix-backend/internal/domain/entity"
)

// RegisterCustomValidators registers custom validation functions with the
// Gin binding validator.
func RegisterCustomValidators() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterValidation("targettype", isEngagementTargetType)
		v.RegisterValidation("searchtype", isSearchType)
	}
}

// isEngagementTargetType accepts the types a like or comment may target.
func isEngagementTargetType(fl validator.FieldLevel) bool {
	return entity.ContentType(fl.Field().String()).IsEngagementTarget()
}

// isSearchType accepts an empty filter or one of the searchable types.
func isSearchType(fl validator.FieldLevel) bool {
	s := fl.Field().String()
	return s == "" || entity.ContentType(s).IsSearchable()
}
