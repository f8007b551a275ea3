package validators

import (
	"time"

	"driveline/cmd/internal/domain/entity"
	"github.com/go-playground/validator/v10"
)

// IsBookDate accepts calendar dates the way the schedule form submits them,
// e.g. "2025-06-18".
func IsBookDate(fl validator.FieldLevel) bool {
	_, err := time.Parse("2006-01-02", fl.Field().String())
	return err == nil
}

// IsTimeSlot accepts only the fixed set of bookable times.
func IsTimeSlot(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	for _, slot := range entity.TimeSlots {
		if value == slot {
			return true
		}
	}
	return false
}
