package configs

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadReadsEnvironment(t *testing.T) {
	t.Setenv("VIDEOGEN_API_KEY", "key-from-env")
	t.Setenv("VIDEOGEN_API_URL", "https://provider.example.com/generate")

	cfg := Load()

	assert.Equal(t, "key-from-env", cfg.APIKey)
	assert.Equal(t, "https://provider.example.com/generate", cfg.APIEndpoint)
}

func TestLoadMissingValuesStayEmpty(t *testing.T) {
	t.Setenv("VIDEOGEN_API_KEY", "")
	t.Setenv("VIDEOGEN_API_URL", "")

	cfg := Load()

	// The endpoint default lives in the client; an absent key is surfaced
	// there as a configuration error before any call goes out.
	assert.Empty(t, cfg.APIKey)
	assert.Empty(t, cfg.APIEndpoint)
}

func TestGetLoadsOnFirstUse(t *testing.T) {
	t.Setenv("VIDEOGEN_API_KEY", "lazy-key")

	globalConfig = nil
	assert.Equal(t, "lazy-key", Get().APIKey)

	// Subsequent reads return the already-loaded config.
	t.Setenv("VIDEOGEN_API_KEY", "changed-after-load")
	assert.Equal(t, "lazy-key", Get().APIKey)
}
