package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatVND(t *testing.T) {
	tests := []struct {
		amount   float64
		expected string
	}{
		{0, "0 ₫"},
		{100, "100 ₫"},
		{1000, "1.000 ₫"},
		{1000000, "1.000.000 ₫"},
		{123456789, "123.456.789 ₫"},
		{99.6, "100 ₫"},
		{-25000, "-25.000 ₫"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatVND(tt.amount))
		})
	}
}

func TestPtrHelpers(t *testing.T) {
	t.Run("Ptr", func(t *testing.T) {
		p := Ptr(3)
		assert.Equal(t, 3, *p)
		assert.Equal(t, "x", *Ptr("x"))
	})

	t.Run("PtrString", func(t *testing.T) {
		str := "test"
		assert.Equal(t, "test", PtrString(&str))
		assert.Equal(t, "", PtrString(nil))
	})
}
