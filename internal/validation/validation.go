package validation

import (
	"fmt"
	"sync"

	"codeberg.org/reclaim/server/reclaim/items"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var (
	registerOnce sync.Once
	registerErr  error
)

// registers the domain validators on gin's binding engine; safe to call more than once
func Register() error {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			registerErr = fmt.Errorf("unexpected binding engine %T", binding.Validator.Engine())
			return
		}

		if err := v.RegisterValidation("item_kind", validateItemKind); err != nil {
			registerErr = err
			return
		}

		registerErr = v.RegisterValidation("item_status", validateItemStatus)
	})

	return registerErr
}

func validateItemKind(fl validator.FieldLevel) bool {
	_, err := items.ParseKind(fl.Field().String())
	return err == nil
}

// accepts any status of either kind; handlers narrow it to the item's own kind
func validateItemStatus(fl validator.FieldLevel) bool {
	status := fl.Field().String()
	return items.KindLost.ValidStatus(status) || items.KindFound.ValidStatus(status)
}

// reports a missing half of a coordinate pair
func CoordinatePair(lat, lon *float64) error {
	if (lat == nil) != (lon == nil) {
		return fmt.Errorf("latitude and longitude must be provided together")
	}

	return nil
}
