package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHashPassword(t *testing.T) {
	hashService := &HashService{}

	tests := []struct {
		name        string
		code        string
		expectError bool
	}{
		{
			name:        "Valid Code",
			code:        "042",
			expectError: false,
		},
		{
			name:        "Empty Code",
			code:        "",
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hashed, err := hashService.HashPassword(tt.code)

			if tt.expectError {
				assert.Error(t, err)
				assert.Empty(t, hashed)
			} else {
				assert.NoError(t, err)
				assert.NotEmpty(t, hashed)
			}
		})
	}
}

func TestComparePassword(t *testing.T) {
	hashService := &HashService{}

	tests := []struct {
		name        string
		code        string
		setup       func() string
		expectMatch bool
	}{
		{
			name: "Matching Code",
			code: "042",
			setup: func() string {
				hashed, _ := hashService.HashPassword("042")
				return hashed
			},
			expectMatch: true,
		},
		{
			name: "Non-Matching Code",
			code: "043",
			setup: func() string {
				hashed, _ := hashService.HashPassword("042")
				return hashed
			},
			expectMatch: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hashed := tt.setup()

			match := hashService.ComparePassword(hashed, tt.code)
			assert.Equal(t, tt.expectMatch, match)
		})
	}
}
