// Package cache provides Redis-backed caching with JSON serialization.
package cache

import (
	"fmt"
	"time"

	"github.com/hakwonlab/acadpanel/logger"

	json "github.com/goccy/go-json"
)

// Default TTL values
const (
	TTLSettings    = 5 * time.Minute
	TTLSetting     = 10 * time.Minute
	TTLPermissions = 1 * time.Minute
)

// Cache keys
const (
	KeySettingsAll       = "settings:all"
	KeySettingPrefix     = "setting:"
	KeyPermissionsPrefix = "permissions:org:"
)

// GetJSON retrieves a value from cache and unmarshals it as JSON.
func GetJSON(key string, dest any) error {
	val, err := Get(key)
	if err != nil {
		// redis.Nil means the key is absent, which is expected
		if err.Error() == "redis: nil" {
			return fmt.Errorf("key not found: %s", key)
		}
		return err
	}
	if val == "" {
		return fmt.Errorf("empty value for key: %s", key)
	}
	return json.Unmarshal([]byte(val), dest)
}

// SetJSON marshals a value as JSON and stores it in cache.
func SetJSON(key string, value any, expiration time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal value: %w", err)
	}
	return Set(key, string(data), expiration)
}

// GetOrSet retrieves a value from cache, or computes it using fn if not found.
func GetOrSet(key string, dest any, expiration time.Duration, fn func() (any, error)) error {
	err := GetJSON(key, dest)
	if err == nil {
		logger.Debugf("Cache hit for key: %s", key)
		return nil
	}

	logger.Debugf("Cache miss for key: %s", key)
	value, err := fn()
	if err != nil {
		return err
	}

	if err := SetJSON(key, value, expiration); err != nil {
		logger.Warningf("Failed to set cache for key %s: %v", key, err)
	}

	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, dest)
}

// InvalidatePermissions drops the cached permission table of one organization.
func InvalidatePermissions(orgId int) error {
	return Delete(fmt.Sprintf("%s%d", KeyPermissionsPrefix, orgId))
}

// InvalidateSetting invalidates a specific setting cache.
func InvalidateSetting(key string) error {
	return Delete(KeySettingPrefix + key)
}

// InvalidateAllSettings invalidates all settings cache.
func InvalidateAllSettings() error {
	if err := Delete(KeySettingsAll); err != nil {
		return err
	}
	return DeletePattern(KeySettingPrefix + "*")
}
