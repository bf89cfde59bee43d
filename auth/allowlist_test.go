package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAllowListCaseInsensitive(t *testing.T) {
	list := NewAllowList("owner@sartor.lk", "Manager@Sartor.lk")

	assert.True(t, list.IsAdmin("owner@sartor.lk"))
	assert.True(t, list.IsAdmin("OWNER@SARTOR.LK"))
	assert.True(t, list.IsAdmin("manager@sartor.lk"))
	assert.True(t, list.IsAdmin("  owner@sartor.lk "))

	assert.False(t, list.IsAdmin("customer@example.com"))
	assert.False(t, list.IsAdmin(""))
}

func TestAllowListIgnoresBlankEntries(t *testing.T) {
	list := NewAllowList("", "  ", "owner@sartor.lk")
	assert.False(t, list.IsAdmin(""))
	assert.True(t, list.IsAdmin("owner@sartor.lk"))
}
