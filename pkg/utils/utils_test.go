package utils

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateBillNumberFormat(t *testing.T) {
	pattern := regexp.MustCompile(`^BILL-\d{14}-[A-Z0-9]{3}$`)
	for i := 0; i < 50; i++ {
		number := GenerateBillNumber()
		assert.Regexp(t, pattern, number)
	}
}

func TestConvertUnit(t *testing.T) {
	assert.Equal(t, 1.5, ConvertUnit(1500, "g", "kg"))
	assert.Equal(t, 2000.0, ConvertUnit(2, "kg", "g"))
	assert.Equal(t, 0.75, ConvertUnit(750, "ml", "litre"))
	assert.Equal(t, 500.0, ConvertUnit(0.5, "litre", "ml"))
	assert.Equal(t, 3.0, ConvertUnit(3, "pcs", "pcs"))
	// Unknown pairs pass through unchanged.
	assert.Equal(t, 3.0, ConvertUnit(3, "pcs", "kg"))
}
