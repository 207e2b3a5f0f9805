package cli

import (
	"bytes"
	"errors"
	"io"
	"log"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kilometers.ai/featuremodel/internal/core/feature"
	"kilometers.ai/featuremodel/internal/infrastructure/config"
)

func newTestContainer(output string) *CLIContainer {
	return &CLIContainer{
		Config: &config.Config{Output: output},
		Logger: log.New(io.Discard, "", 0),
	}
}

func executeCommand(container *CLIContainer, args ...string) (string, error) {
	var out bytes.Buffer
	root := NewRootCommand(container)
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

type fakeOverrider struct {
	debug     *bool
	output    string
	outputErr error
}

func (f *fakeOverrider) ApplyDebugOverride(debug bool) { f.debug = &debug }

func (f *fakeOverrider) ApplyOutputOverride(output string) error {
	if f.outputErr != nil {
		return f.outputErr
	}
	f.output = output
	return nil
}

func TestConfigCommand_PlainConfiguration(t *testing.T) {
	out, err := executeCommand(newTestContainer(config.OutputPlain),
		"config", "--pid", "com.example.Foo",
		"--set", "port=8080", "--set", "ratio=0.5", "--set", "enabled=true",
		"--set", "label=hello", "--list", "levels=info,warn")
	require.NoError(t, err)

	expected := feature.NewConfigurationBuilder("com.example.Foo").
		AddValue("port", int64(8080)).
		AddValue("ratio", 0.5).
		AddValue("enabled", true).
		AddValue("label", "hello").
		AddValue("levels", []string{"info", "warn"}).
		MustBuild()

	assert.Equal(t, strings.Join([]string{
		"Configuration",
		"pid: com.example.Foo",
		"hash: " + formatHash(expected.Hash()),
		"Values",
		"enabled: true",
		`label: "hello"`,
		`levels: ["info", "warn"]`,
		"port: 8080",
		"ratio: 0.5",
		"",
	}, "\n"), out)
}

func TestConfigCommand_FactoryConfiguration(t *testing.T) {
	out, err := executeCommand(newTestContainer(config.OutputPlain),
		"config", "--factory-pid", "com.example.Logger", "--name", "audit")
	require.NoError(t, err)

	assert.Contains(t, out, "pid: com.example.Logger~audit\n")
	assert.Contains(t, out, "factory-pid: com.example.Logger\n")
	assert.Contains(t, out, "name: audit\n")
}

func TestConfigCommand_Errors(t *testing.T) {
	tests := []struct {
		name        string
		args        []string
		expectedErr string
		sentinel    error
	}{
		{
			name:        "missing pid",
			args:        []string{"config"},
			expectedErr: "either --pid or --factory-pid is required",
		},
		{
			name:        "pid with separator",
			args:        []string{"config", "--pid", "a~b"},
			expectedErr: "invalid configuration",
			sentinel:    feature.ErrInvalidIdentifier,
		},
		{
			name:        "factory without name",
			args:        []string{"config", "--factory-pid", "com.example.Logger"},
			expectedErr: "invalid configuration",
			sentinel:    feature.ErrMissingName,
		},
		{
			name:        "malformed property",
			args:        []string{"config", "--pid", "com.example.Foo", "--set", "novalue"},
			expectedErr: `property "novalue" must have the form key=value`,
		},
		{
			name:        "invalid key",
			args:        []string{"config", "--pid", "com.example.Foo", "--set", "=1"},
			expectedErr: "invalid configuration",
			sentinel:    feature.ErrInvalidKey,
		},
		{
			name:        "pid and factory pid together",
			args:        []string{"config", "--pid", "a", "--factory-pid", "b", "--name", "c"},
			expectedErr: "none of the others can be",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := executeCommand(newTestContainer(config.OutputPlain), tt.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.expectedErr)
			if tt.sentinel != nil {
				assert.ErrorIs(t, err, tt.sentinel)
				assert.ErrorIs(t, err, feature.ErrValidation)
			}
		})
	}
}

func TestInferValue(t *testing.T) {
	tests := []struct {
		raw      string
		expected any
	}{
		{raw: "42", expected: int64(42)},
		{raw: "-7", expected: int64(-7)},
		{raw: "1.25", expected: 1.25},
		{raw: "true", expected: true},
		{raw: "false", expected: false},
		{raw: "True", expected: "True"},
		{raw: "NaN", expected: "NaN"},
		{raw: "inf", expected: "inf"},
		{raw: "", expected: ""},
		{raw: "hello", expected: "hello"},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			assert.Equal(t, tt.expected, inferValue(tt.raw))
		})
	}
}

func TestArtifactCommand(t *testing.T) {
	args := []string{"artifact",
		"org.example:b:2.0.0",
		"org.example:a:1.10.0",
		"org.example:a:1.2.0",
		"org.example:b:2.0.0",
	}

	out, err := executeCommand(newTestContainer(config.OutputPlain), append(args, "--distinct", "--sort")...)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "Artifacts", lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "org.example:a:1.2.0 "))
	assert.True(t, strings.HasPrefix(lines[2], "org.example:a:1.10.0 "), "Versions should compare semantically")
	assert.True(t, strings.HasPrefix(lines[3], "org.example:b:2.0.0 "))

	hash := feature.NewArtifact(feature.MustParseArtifactID("org.example:b:2.0.0")).Hash()
	assert.Equal(t, "org.example:b:2.0.0 "+formatHash(hash), lines[3])

	out, err = executeCommand(newTestContainer(config.OutputPlain), args...)
	require.NoError(t, err)
	assert.Len(t, strings.Split(strings.TrimSpace(out), "\n"), 5, "Without flags input order and repeats are kept")
}

func TestArtifactCommand_InvalidCoordinate(t *testing.T) {
	_, err := executeCommand(newTestContainer(config.OutputPlain), "artifact", "org.example:only-two")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `invalid artifact "org.example:only-two"`)
}

func TestFeatureCommand(t *testing.T) {
	out, err := executeCommand(newTestContainer(config.OutputPlain),
		"feature", "org.example:app:1.0.0:slingosgifeature",
		"--title", "App",
		"--bundle", "org.example:api:1.0.0",
		"--bundle", "org.example:impl:1.0.0",
		"--bundle", "org.example:api:1.0.0",
		"--config", "com.example.Logger~audit",
		"--config", "com.example.Foo")
	require.NoError(t, err)

	expected := feature.NewFeatureBuilder(feature.MustParseArtifactID("org.example:app:1.0.0:slingosgifeature")).
		WithTitle("App").
		AddBundles(
			feature.NewArtifact(feature.MustParseArtifactID("org.example:api:1.0.0")),
			feature.NewArtifact(feature.MustParseArtifactID("org.example:impl:1.0.0")),
		).
		AddConfigurations(
			feature.NewFactoryConfigurationBuilder("com.example.Logger", "audit").MustBuild(),
			feature.NewConfigurationBuilder("com.example.Foo").MustBuild(),
		).
		MustBuild()

	assert.Equal(t, strings.Join([]string{
		"Feature",
		"id: org.example:app:1.0.0:slingosgifeature",
		"title: App",
		"hash: " + formatHash(expected.Hash()),
		"Bundles",
		"org.example:api:1.0.0",
		"org.example:impl:1.0.0",
		"Configurations",
		"com.example.Foo",
		"com.example.Logger~audit",
		"",
	}, "\n"), out)
}

func TestFeatureCommand_Errors(t *testing.T) {
	tests := []struct {
		name        string
		args        []string
		expectedErr string
	}{
		{
			name:        "invalid id",
			args:        []string{"feature", "not-a-coordinate"},
			expectedErr: `invalid feature id "not-a-coordinate"`,
		},
		{
			name:        "invalid bundle",
			args:        []string{"feature", "org.example:app:1.0.0", "--bundle", "bad"},
			expectedErr: `invalid artifact "bad"`,
		},
		{
			name:        "empty factory name",
			args:        []string{"feature", "org.example:app:1.0.0", "--config", "com.example.Logger~"},
			expectedErr: `invalid configuration "com.example.Logger~"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := executeCommand(newTestContainer(config.OutputPlain), tt.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.expectedErr)
		})
	}
}

func TestTextOutput_ContainsFields(t *testing.T) {
	out, err := executeCommand(newTestContainer(config.OutputText), "config", "--pid", "com.example.Foo", "--set", "port=1")
	require.NoError(t, err)

	assert.Contains(t, out, "Configuration")
	assert.Contains(t, out, "pid:")
	assert.Contains(t, out, "com.example.Foo")
	assert.Contains(t, out, "port:")
}

func TestVersionCommand(t *testing.T) {
	out, err := executeCommand(newTestContainer(config.OutputPlain), "version")
	require.NoError(t, err)

	assert.Contains(t, out, "fm "+Version+"\n")
	assert.Contains(t, out, "build time: "+BuildTime+"\n")
	assert.Contains(t, out, "platform: ")
}

func TestRootCommand_AppliesFlagOverrides(t *testing.T) {
	overrider := &fakeOverrider{}
	container := newTestContainer(config.OutputText)
	container.MainContainer = overrider

	_, err := executeCommand(container, "--debug", "--output", "plain", "version")
	require.NoError(t, err)

	require.NotNil(t, overrider.debug)
	assert.True(t, *overrider.debug)
	assert.Equal(t, "plain", overrider.output)
}

func TestRootCommand_UnsetFlagsDoNotOverride(t *testing.T) {
	overrider := &fakeOverrider{}
	container := newTestContainer(config.OutputText)
	container.MainContainer = overrider

	_, err := executeCommand(container, "version")
	require.NoError(t, err)

	assert.Nil(t, overrider.debug)
	assert.Empty(t, overrider.output)
}

func TestRootCommand_OverrideError(t *testing.T) {
	container := newTestContainer(config.OutputText)
	container.MainContainer = &fakeOverrider{outputErr: errors.New("unsupported output mode: json")}

	_, err := executeCommand(container, "--output", "json", "version")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to override output mode")
}
