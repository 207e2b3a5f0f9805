package di

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kilometers.ai/featuremodel/internal/infrastructure/config"
)

func envOf(values map[string]string) *config.EnvLoader {
	return config.NewEnvLoaderWithLookup(func(key string) (string, bool) {
		v, ok := values[key]
		return v, ok
	})
}

func TestNewContainerWith(t *testing.T) {
	var logs bytes.Buffer

	container, err := NewContainerWith(envOf(nil), &logs)
	require.NoError(t, err)

	assert.Equal(t, config.DefaultConfig(), container.Config)
	require.NotNil(t, container.GetCLIContainer())
	assert.Same(t, &container.Config, container.GetCLIContainer().Config)
	assert.Empty(t, logs.String(), "Logger should be silent unless debug is enabled")
}

func TestNewContainerWith_DebugFromEnvironment(t *testing.T) {
	var logs bytes.Buffer

	container, err := NewContainerWith(envOf(map[string]string{config.EnvDebug: "true"}), &logs)
	require.NoError(t, err)

	assert.True(t, container.Config.Debug)
	assert.Contains(t, logs.String(), "[fm] ")
	assert.Contains(t, logs.String(), "Container initialized (output=text)")
}

func TestNewContainerWith_InvalidEnvironment(t *testing.T) {
	_, err := NewContainerWith(envOf(map[string]string{config.EnvOutput: "xml"}), nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to initialize components")
}

func TestApplyOutputOverride(t *testing.T) {
	tests := []struct {
		name          string
		output        string
		expectError   bool
		expectedError string
	}{
		{
			name:        "plain override",
			output:      config.OutputPlain,
			expectError: false,
		},
		{
			name:          "empty output should fail",
			output:        "",
			expectError:   true,
			expectedError: "output mode cannot be empty",
		},
		{
			name:          "unknown output should fail",
			output:        "json",
			expectError:   true,
			expectedError: "unsupported output mode: json",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			container, err := NewContainerWith(envOf(nil), nil)
			require.NoError(t, err)

			err = container.ApplyOutputOverride(tt.output)

			if tt.expectError {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.expectedError)
				assert.Equal(t, config.OutputText, container.Config.Output, "Failed override should keep the previous mode")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.output, container.Config.Output)
		})
	}
}

func TestApplyDebugOverride(t *testing.T) {
	var logs bytes.Buffer

	container, err := NewContainerWith(envOf(nil), &logs)
	require.NoError(t, err)

	container.ApplyDebugOverride(true)
	assert.True(t, container.Config.Debug)
	assert.Contains(t, logs.String(), "Debug override applied: true")

	logs.Reset()
	container.ApplyDebugOverride(false)
	assert.False(t, container.Config.Debug)
	assert.Empty(t, logs.String())
}
