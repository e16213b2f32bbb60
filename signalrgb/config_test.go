package signalrgb

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig()

	assert.Equal(t, "localhost", config.Host)
	assert.Equal(t, 16038, config.Port)
	assert.Equal(t, 10*time.Second, config.Timeout)
	assert.Equal(t, "http://localhost:16038", config.BaseURL())
}

func TestConfigBuilders(t *testing.T) {
	config := DefaultConfig().
		WithHost("192.168.1.50").
		WithPort(8080).
		WithTimeout(5 * time.Second).
		WithHeader("Authorization", "Bearer token")

	assert.Equal(t, "http://192.168.1.50:8080", config.BaseURL())
	assert.Equal(t, 5*time.Second, config.Timeout)
	assert.Equal(t, "Bearer token", config.Headers["Authorization"])
}

func TestConfigValidate_FillsDefaults(t *testing.T) {
	config := &Config{}
	require.NoError(t, config.Validate())

	assert.Equal(t, DefaultHost, config.Host)
	assert.Equal(t, DefaultPort, config.Port)
	assert.Equal(t, DefaultTimeout, config.Timeout)
	assert.NotNil(t, config.Observer)
}

func TestConfigValidate_RejectsBadPort(t *testing.T) {
	for _, port := range []int{-1, 65536} {
		config := DefaultConfig().WithPort(port)
		err := config.Validate()
		assert.ErrorIs(t, err, ErrInvalidConfig, "port %d", port)
	}
}

func TestNewClient_InvalidConfig(t *testing.T) {
	_, err := NewClient(DefaultConfig().WithPort(-1))
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestNewClient_NilConfigUsesDefaults(t *testing.T) {
	client, err := NewClient(nil)
	require.NoError(t, err)
	assert.NoError(t, client.Close())
}
