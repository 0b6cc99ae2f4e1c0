package utils_test

import (
	"testing"

	"vizagaggregates/utils"

	"github.com/stretchr/testify/assert"
)

func TestNumberToWords(t *testing.T) {
	cases := []struct {
		in   int
		want string
	}{
		{0, ""},
		{7, "Seven"},
		{19, "Nineteen"},
		{20, "Twenty"},
		{42, "Forty Two"},
		{100, "One Hundred"},
		{215, "Two Hundred Fifteen"},
		{1000, "One Thousand"},
		{2860, "Two Thousand Eight Hundred Sixty"},
		{100000, "One Lakh"},
		{250000, "Two Lakh Fifty Thousand"},
		{10000000, "One Crore"},
		{12345678, "One Crore Twenty Three Lakh Forty Five Thousand Six Hundred Seventy Eight"},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, utils.NumberToWords(c.in), "input %d", c.in)
	}
}

func TestNumberToCurrencyWords(t *testing.T) {
	assert.Equal(t, "Zero Rupees Only", utils.NumberToCurrencyWords(0))
	assert.Equal(t, "Two Thousand Eight Hundred Sixty Rupees Only", utils.NumberToCurrencyWords(2860))
	assert.Equal(t, "Fifty Paise Only", utils.NumberToCurrencyWords(0.5))
	assert.Equal(t, "One Hundred Rupees and Twenty Five Paise Only", utils.NumberToCurrencyWords(100.25))
}
