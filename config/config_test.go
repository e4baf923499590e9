package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetString(t *testing.T) {
	c := map[string]string{"KEY": "value", "EMPTY": ""}

	assert.Equal(t, "value", GetString(c, "KEY", "fallback"))
	assert.Equal(t, "", GetString(c, "EMPTY", "fallback"), "present but empty wins over the default")
	assert.Equal(t, "fallback", GetString(c, "MISSING", "fallback"))
	assert.Equal(t, "fallback", GetString(nil, "KEY", "fallback"))
}

func TestGetStrings(t *testing.T) {
	fallback := []string{"*"}

	t.Run("splits on commas and trims whitespace", func(t *testing.T) {
		c := map[string]string{"ORIGINS": "https://a.test, https://b.test ,https://c.test"}
		assert.Equal(t, []string{"https://a.test", "https://b.test", "https://c.test"}, GetStrings(c, "ORIGINS", fallback))
	})

	t.Run("missing or empty falls back", func(t *testing.T) {
		assert.Equal(t, fallback, GetStrings(map[string]string{}, "ORIGINS", fallback))
		assert.Equal(t, fallback, GetStrings(map[string]string{"ORIGINS": " , ,"}, "ORIGINS", fallback))
	})
}

func TestGetInt(t *testing.T) {
	c := map[string]string{"N": "42", "BAD": "forty-two"}

	assert.Equal(t, 42, GetInt(c, "N", 7))
	assert.Equal(t, 7, GetInt(c, "BAD", 7))
	assert.Equal(t, 7, GetInt(c, "MISSING", 7))
}
