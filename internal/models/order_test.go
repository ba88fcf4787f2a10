package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseOrderStatus(t *testing.T) {
	for _, s := range []string{"Pending", "Shipping", "Completed", "Rejected"} {
		status, err := ParseOrderStatus(s)
		require.NoError(t, err, s)
		assert.Equal(t, OrderStatus(s), status)
	}
}

func TestParseOrderStatusRejectsUnknown(t *testing.T) {
	for _, s := range []string{"", "bogus", "pending", "PENDING", "Shipped", "Completed "} {
		_, err := ParseOrderStatus(s)
		assert.Error(t, err, "%q should not parse", s)
	}
}

func TestParseRole(t *testing.T) {
	role, err := ParseRole("admin")
	require.NoError(t, err)
	assert.Equal(t, RoleAdmin, role)

	role, err = ParseRole("user")
	require.NoError(t, err)
	assert.Equal(t, RoleUser, role)

	for _, s := range []string{"", "superuser", "Admin", "root"} {
		_, err := ParseRole(s)
		assert.Error(t, err, "%q should not parse", s)
	}
}
