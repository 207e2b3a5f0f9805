package testfixtures

import (
	"kilometers.ai/featuremodel/internal/core/feature"
)

// ConfigurationFixture provides a builder pattern for test configurations
type ConfigurationFixture struct {
	pid        string
	factoryPID string
	name       string
	values     map[string]any
}

// NewConfigurationFixture creates a ConfigurationFixture with sensible defaults
func NewConfigurationFixture() *ConfigurationFixture {
	return &ConfigurationFixture{
		pid: "com.example.Fixture",
		values: map[string]any{
			"enabled": true,
		},
	}
}

// WithPID sets a plain pid and clears any factory scope
func (b *ConfigurationFixture) WithPID(pid string) *ConfigurationFixture {
	b.pid = pid
	b.factoryPID = ""
	b.name = ""
	return b
}

// WithFactory makes the fixture a factory configuration
func (b *ConfigurationFixture) WithFactory(factoryPID, name string) *ConfigurationFixture {
	b.factoryPID = factoryPID
	b.name = name
	return b
}

// WithValue sets a property value
func (b *ConfigurationFixture) WithValue(key string, value any) *ConfigurationFixture {
	b.values[key] = value
	return b
}

// WithoutValues drops the default properties
func (b *ConfigurationFixture) WithoutValues() *ConfigurationFixture {
	b.values = map[string]any{}
	return b
}

// Builder returns the configured ConfigurationBuilder without building it
func (b *ConfigurationFixture) Builder() *feature.ConfigurationBuilder {
	var cb *feature.ConfigurationBuilder
	if b.factoryPID != "" {
		cb = feature.NewFactoryConfigurationBuilder(b.factoryPID, b.name)
	} else {
		cb = feature.NewConfigurationBuilder(b.pid)
	}
	return cb.AddValues(b.values)
}

// Build creates the configuration
func (b *ConfigurationFixture) Build() (feature.Configuration, error) {
	return b.Builder().Build()
}

// MustBuild creates the configuration and panics on error (for test convenience)
func (b *ConfigurationFixture) MustBuild() feature.Configuration {
	return b.Builder().MustBuild()
}

// FeatureFixture provides a builder pattern for test features
type FeatureFixture struct {
	id             string
	title          string
	bundles        []string
	configurations []feature.Configuration
}

// NewFeatureFixture creates a FeatureFixture with one bundle and one configuration
func NewFeatureFixture() *FeatureFixture {
	return &FeatureFixture{
		id:             "org.example:fixture-feature:1.0.0:slingosgifeature",
		title:          "Fixture Feature",
		bundles:        []string{"org.example:fixture-bundle:1.0.0"},
		configurations: []feature.Configuration{NewConfigurationFixture().MustBuild()},
	}
}

// WithID sets the feature coordinate
func (b *FeatureFixture) WithID(coordinate string) *FeatureFixture {
	b.id = coordinate
	return b
}

// WithTitle sets the feature title
func (b *FeatureFixture) WithTitle(title string) *FeatureFixture {
	b.title = title
	return b
}

// WithBundle appends a bundle coordinate
func (b *FeatureFixture) WithBundle(coordinate string) *FeatureFixture {
	b.bundles = append(b.bundles, coordinate)
	return b
}

// WithConfiguration appends a configuration
func (b *FeatureFixture) WithConfiguration(c feature.Configuration) *FeatureFixture {
	b.configurations = append(b.configurations, c)
	return b
}

// Build creates the feature
func (b *FeatureFixture) Build() (feature.Feature, error) {
	id, err := feature.ParseArtifactID(b.id)
	if err != nil {
		return feature.Feature{}, err
	}

	fb := feature.NewFeatureBuilder(id).WithTitle(b.title)
	for _, coordinate := range b.bundles {
		bundleID, err := feature.ParseArtifactID(coordinate)
		if err != nil {
			return feature.Feature{}, err
		}
		fb.AddBundles(feature.NewArtifact(bundleID))
	}
	return fb.AddConfigurations(b.configurations...).Build()
}

// MustBuild creates the feature and panics on error (for test convenience)
func (b *FeatureFixture) MustBuild() feature.Feature {
	f, err := b.Build()
	if err != nil {
		panic(err)
	}
	return f
}

// Common test data

// ValidPIDs returns pids every builder accepts
func ValidPIDs() []string {
	return []string{
		"com.example.Foo",
		"org.apache.sling.commons.log.LogManager",
		"my-service",
		"a",
	}
}

// InvalidPIDs returns pids every builder rejects
func InvalidPIDs() []string {
	return []string{
		"",                // empty
		"com.example~bar", // separator
		"com example",     // whitespace
		"tab\tpid",        // control character
	}
}

// SampleArtifacts returns a few artifacts including a duplicate
func SampleArtifacts() []feature.Artifact {
	return []feature.Artifact{
		feature.NewArtifact(feature.MustParseArtifactID("org.example:api:1.10.0")),
		feature.NewArtifact(feature.MustParseArtifactID("org.example:api:1.9.0")),
		feature.NewArtifact(feature.MustParseArtifactID("org.example:impl:2.0.0:zip")),
		feature.NewArtifact(feature.MustParseArtifactID("org.example:api:1.10.0")),
	}
}
