package feature

import (
	"maps"
	"slices"
)

// Feature groups the bundles and configurations provisioned together under
// one artifact id.
type Feature struct {
	id             ArtifactID
	title          string
	description    string
	bundles        []Artifact
	configurations map[string]Configuration
	canon          canonicalForm
}

func (f Feature) ID() ArtifactID      { return f.id }
func (f Feature) Title() string       { return f.title }
func (f Feature) Description() string { return f.description }

// Bundles returns the distinct bundles in insertion order.
func (f Feature) Bundles() []Artifact {
	return slices.Clone(f.bundles)
}

// Configurations returns the configurations ordered by pid.
func (f Feature) Configurations() []Configuration {
	out := make([]Configuration, 0, len(f.configurations))
	for _, pid := range slices.Sorted(maps.Keys(f.configurations)) {
		out = append(out, f.configurations[pid])
	}
	return out
}

// Configuration looks up a configuration by its effective pid.
func (f Feature) Configuration(pid string) (Configuration, bool) {
	c, ok := f.configurations[pid]
	return c, ok
}

// Equal compares every field, including bundle order.
func (f Feature) Equal(other Feature) bool {
	return f.canon.bytes == other.canon.bytes
}

// Hash is consistent with Equal.
func (f Feature) Hash() uint64 {
	return f.canon.hash
}

func (f Feature) String() string {
	return "Feature [id=" + f.id.String() + "]"
}

// FeatureBuilder assembles a Feature. Like ConfigurationBuilder it is not
// safe for concurrent use and may build repeatedly.
type FeatureBuilder struct {
	id             ArtifactID
	title          string
	description    string
	bundles        []Artifact
	configurations map[string]Configuration
	errs           []error
}

// NewFeatureBuilder starts a feature identified by id.
func NewFeatureBuilder(id ArtifactID) *FeatureBuilder {
	b := &FeatureBuilder{
		id:             id,
		configurations: make(map[string]Configuration),
	}
	if id.IsZero() {
		b.errs = append(b.errs, &InvalidIdentifierError{Field: "feature id", Reason: "cannot be empty"})
	}
	return b
}

func (b *FeatureBuilder) WithTitle(title string) *FeatureBuilder {
	b.title = title
	return b
}

func (b *FeatureBuilder) WithDescription(description string) *FeatureBuilder {
	b.description = description
	return b
}

// AddBundles appends bundles; repeats are dropped at build time.
func (b *FeatureBuilder) AddBundles(bundles ...Artifact) *FeatureBuilder {
	for _, a := range bundles {
		if a.ID().IsZero() {
			b.errs = append(b.errs, &InvalidIdentifierError{Field: "bundle id", Reason: "cannot be empty"})
			continue
		}
		b.bundles = append(b.bundles, a)
	}
	return b
}

// AddConfigurations adds configurations keyed by pid; a later configuration
// with the same pid replaces the earlier one.
func (b *FeatureBuilder) AddConfigurations(configurations ...Configuration) *FeatureBuilder {
	for _, c := range configurations {
		if c.PID() == "" {
			b.errs = append(b.errs, &InvalidIdentifierError{Field: "pid", Reason: "configuration was not built"})
			continue
		}
		b.configurations[c.PID()] = c
	}
	return b
}

// Err returns the validation errors recorded so far, joined.
func (b *FeatureBuilder) Err() error {
	return joinErrors(b.errs)
}

// Build freezes the current state into a Feature.
func (b *FeatureBuilder) Build() (Feature, error) {
	if err := b.Err(); err != nil {
		return Feature{}, err
	}

	f := Feature{
		id:             b.id,
		title:          b.title,
		description:    b.description,
		bundles:        DistinctArtifacts(b.bundles),
		configurations: maps.Clone(b.configurations),
	}

	id := featureIdentity{
		ID:          f.id.String(),
		Title:       f.title,
		Description: f.description,
	}
	for _, a := range f.bundles {
		id.Bundles = append(id.Bundles, a.ID().String())
	}
	for _, c := range f.Configurations() {
		id.Configurations = append(id.Configurations, []byte(c.canon.bytes))
	}

	canon, err := encodeCanonical(id)
	if err != nil {
		return Feature{}, err
	}
	f.canon = canon
	return f, nil
}

// MustBuild is Build for fixtures and tests; it panics on error.
func (b *FeatureBuilder) MustBuild() Feature {
	f, err := b.Build()
	if err != nil {
		panic(err)
	}
	return f
}
