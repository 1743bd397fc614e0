package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGetEnvBool(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		def      bool
		expected bool
	}{
		{"unset uses default", "", true, true},
		{"true", "true", false, true},
		{"numeric true", "1", false, true},
		{"false", "FALSE", true, false},
		{"invalid uses default", "yes", true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("TEST_BOOL", tt.value)
			assert.Equal(t, tt.expected, GetEnvBool("TEST_BOOL", tt.def))
		})
	}
}

func TestGetEnvInt(t *testing.T) {
	t.Setenv("TEST_INT", "42")
	assert.Equal(t, 42, GetEnvInt("TEST_INT", 7))

	t.Setenv("TEST_INT", "forty-two")
	assert.Equal(t, 7, GetEnvInt("TEST_INT", 7))
}

func TestGetEnvDuration(t *testing.T) {
	t.Setenv("TEST_DURATION", "1m30s")
	assert.Equal(t, 90*time.Second, GetEnvDuration("TEST_DURATION", time.Second))

	t.Setenv("TEST_DURATION", "later")
	assert.Equal(t, time.Second, GetEnvDuration("TEST_DURATION", time.Second))
}

func TestValidateDurationRange(t *testing.T) {
	assert.NoError(t, ValidateDurationRange(time.Second, time.Second, time.Minute))
	assert.NoError(t, ValidateDurationRange(time.Minute, time.Second, time.Minute))
	assert.Error(t, ValidateDurationRange(time.Millisecond, time.Second, time.Minute))
	assert.Error(t, ValidateDurationRange(time.Hour, time.Second, time.Minute))
	assert.Error(t, ValidateDurationRange(time.Second, time.Minute, time.Second))
}
