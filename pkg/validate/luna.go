package validate

import (
	"strings"

	"github.com/ShiraazMoollatjie/goluhn"
)

// IsCardNumber reports whether s is a Luhn-valid card number of plausible
// length. Spaces and dashes between digit groups are ignored.
func IsCardNumber(s string) bool {
	digits := strings.NewReplacer(" ", "", "-", "").Replace(s)
	if len(digits) < 12 || len(digits) > 19 {
		return false
	}
	return goluhn.Validate(digits) == nil
}
