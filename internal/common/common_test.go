package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSnakeCase(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"TestEnum", "test_enum"},
		{"Shape", "shape"},
		{"HTTPStatus", "http_status"},
		{"U8Or16", "u8_or16"},
		{"already_snake", "already_snake"},
		{"ID", "id"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, SnakeCase(tt.in))
		})
	}
}

func TestLowerFirst(t *testing.T) {
	assert.Equal(t, "testEnum", LowerFirst("TestEnum"))
	assert.Equal(t, "", LowerFirst(""))
	assert.Equal(t, "x", LowerFirst("X"))
}

func TestIsInRange(t *testing.T) {
	assert.True(t, IsInRange(1, 1, 16))
	assert.True(t, IsInRange(1, 16, 16))
	assert.False(t, IsInRange(1, 0, 16))
	assert.False(t, IsInRange(1, 17, 16))
}

func TestIsEmpty(t *testing.T) {
	assert.True(t, IsEmpty([]int{}))
	assert.True(t, IsEmpty([]string(nil)))
	assert.False(t, IsEmpty([]int{1}))
}
