package app

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/guttosm/recipe-cost-service/config"
)

func TestInitializeServices(t *testing.T) {
	db := &DatabaseComponents{}
	cfg := config.AuthConfig{
		JWTSecretKey:   "test-secret",
		AccessTokenTTL: 15 * time.Minute,
		Issuer:         "recipe-cost-service",
	}

	components := InitializeServices(db, cfg)

	assert.NotNil(t, components.Calculator)
	assert.NotNil(t, components.Ingredients)
	assert.NotNil(t, components.Recipes)
	assert.NotNil(t, components.Associations)
	assert.NotNil(t, components.Auth)
}

func TestInitializeServices_AuthTokenTTL(t *testing.T) {
	db := &DatabaseComponents{}
	cfg := config.AuthConfig{
		JWTSecretKey:   "test-secret",
		AccessTokenTTL: time.Hour,
	}

	components := InitializeServices(db, cfg)

	assert.Equal(t, time.Hour, components.Auth.TokenTTL())
}
