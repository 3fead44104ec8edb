package models_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Abdouxone/KFP/models"
)

func TestParseRole_DefaultsToUser(t *testing.T) {
	assert.Equal(t, models.RoleUser, models.ParseRole(""))
	assert.Equal(t, models.RoleUser, models.ParseRole("superuser"))
	assert.Equal(t, models.RoleSeller, models.ParseRole("SELLER"))
	assert.Equal(t, models.RoleAdmin, models.ParseRole("ADMIN"))
}

func TestRole_Capabilities(t *testing.T) {
	assert.False(t, models.RoleUser.CanSell())
	assert.False(t, models.RoleUser.CanAdminister())
	assert.True(t, models.RoleSeller.CanSell())
	assert.False(t, models.RoleSeller.CanAdminister())
	assert.False(t, models.RoleAdmin.CanSell())
	assert.True(t, models.RoleAdmin.CanAdminister())
}

func TestSize_DiscountedPrice(t *testing.T) {
	assert.Equal(t, 90.0, models.Size{Price: 100, Discount: 10}.DiscountedPrice())
	assert.Equal(t, 100.0, models.Size{Price: 100}.DiscountedPrice())
	assert.Equal(t, 0.0, models.Size{Price: 100, Discount: 100}.DiscountedPrice())
}
