package validate

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestIsCardNumber(t *testing.T) {
	tests := []struct {
		number string
		valid  bool
	}{
		{"4242424242424242", true},
		{"4242 4242 4242 4242", true},
		{"5555-5555-5555-4444", true},
		{"378282246310005", true},
		{"4242424242424241", false},
		{"42424242", false},
		{"4242abcd42424242", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.number, func(t *testing.T) {
			assert.Equal(t, tt.valid, IsCardNumber(tt.number))
		})
	}
}

func TestCardBrand(t *testing.T) {
	assert.Equal(t, "visa", CardBrand("4242 4242 4242 4242"))
	assert.Equal(t, "mastercard", CardBrand("5555555555554444"))
	assert.Equal(t, "mastercard", CardBrand("2223003122003222"))
	assert.Equal(t, "amex", CardBrand("378282246310005"))
	assert.Equal(t, "unknown", CardBrand("6011111111111117"))
}

func TestIsCardExpired(t *testing.T) {
	now := time.Date(2024, time.March, 15, 10, 0, 0, 0, time.UTC)

	assert.False(t, IsCardExpired(3, 2024, now))
	assert.False(t, IsCardExpired(12, 2030, now))
	assert.True(t, IsCardExpired(2, 2024, now))
	assert.True(t, IsCardExpired(13, 2030, now))
	assert.True(t, IsCardExpired(0, 2030, now))
	assert.True(t, IsCardExpired(3, 2024, time.Date(2024, time.April, 1, 0, 0, 0, 0, time.UTC)))
}
