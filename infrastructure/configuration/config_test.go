package configuration

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestConfiguration_DefaultsApplied(t *testing.T) {
	t.Run("mongo_defaults", func(t *testing.T) {
		require.NotEmpty(t, C.Database.Mongo.Name, "Mongo database name should default")
		require.NotEmpty(t, C.Database.Mongo.Host, "Mongo host should default")
		require.NotEmpty(t, C.Database.Mongo.Port, "Mongo port should default")
	})

	t.Run("redis_defaults", func(t *testing.T) {
		require.NotEmpty(t, C.RedisClient.Port, "Redis port should default")
	})

	t.Run("app_defaults", func(t *testing.T) {
		require.NotZero(t, C.App.Port, "App port should default")
	})

	t.Run("media_defaults", func(t *testing.T) {
		require.NotEmpty(t, C.Media.Bucket, "Media bucket should default")
	})
}
