package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromViper_Defaults(t *testing.T) {
	v := viper.New()
	v.Set("JWT_SECRET", "super-secret")

	cfg, err := FromViper(v)
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.ServerPort)
	assert.Equal(t, ":8080", cfg.Addr())
	assert.Equal(t, 30, cfg.SlotMinutes)
	assert.Equal(t, 5*time.Minute, cfg.AnalyticsCacheTTL)
	assert.Equal(t, []string{"admin", "service_role"}, cfg.AdminRoles)
	assert.Equal(t, 25_000_000, cfg.PhotoMaxPixels)
	assert.False(t, cfg.S3.Enabled())
	assert.False(t, cfg.IsDev())
}

func TestFromViper_SecretRequiredUnlessDevelopment(t *testing.T) {
	_, err := FromViper(viper.New())
	assert.Error(t, err)

	v := viper.New()
	v.Set("ENV", "development")
	cfg, err := FromViper(v)
	require.NoError(t, err)
	assert.True(t, cfg.IsDev())
	assert.Equal(t, "changeme", cfg.JWTSecret)
}

func TestFromViper_Overrides(t *testing.T) {
	v := viper.New()
	v.Set("ENV", "production")
	v.Set("JWT_SECRET", "super-secret")
	v.Set("CORS_ORIGINS", "https://clinic.example, https://admin.example ,")
	v.Set("SLOT_MINUTES", 45)
	v.Set("S3_BUCKET", "photos")
	v.Set("S3_ACCESS_KEY", "key")
	v.Set("S3_SECRET_KEY", "secret")
	v.Set("S3_PUBLIC_URL", "https://cdn.example/photos/")

	cfg, err := FromViper(v)
	require.NoError(t, err)

	assert.False(t, cfg.IsDev())
	assert.Equal(t, []string{"https://clinic.example", "https://admin.example"}, cfg.CORSOrigins)
	assert.Equal(t, 45, cfg.SlotMinutes)
	assert.True(t, cfg.S3.Enabled())
	assert.Equal(t, "https://cdn.example/photos", cfg.S3.PublicURL)
}

func TestFromViper_RequiresSecretInProduction(t *testing.T) {
	v := viper.New()
	v.Set("ENV", "production")

	_, err := FromViper(v)
	assert.Error(t, err)
}

func TestFromViper_RejectsInvalidSlot(t *testing.T) {
	v := viper.New()
	v.Set("SLOT_MINUTES", 0)

	_, err := FromViper(v)
	assert.Error(t, err)
}
