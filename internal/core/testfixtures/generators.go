package testfixtures

import (
	"pgregory.net/rapid"

	"kilometers.ai/featuremodel/internal/core/feature"
)

// Generators for property-based tests using rapid

// CoordinateParts draws a single valid coordinate segment
func CoordinateParts() *rapid.Generator[string] {
	return rapid.StringMatching(`[a-z][a-z0-9.\-]{0,12}`)
}

// ArtifactIDs draws valid artifact ids, sometimes with a type and classifier
func ArtifactIDs() *rapid.Generator[feature.ArtifactID] {
	return rapid.Custom(func(t *rapid.T) feature.ArtifactID {
		id, err := feature.NewArtifactID(
			CoordinateParts().Draw(t, "group"),
			CoordinateParts().Draw(t, "artifact"),
			rapid.StringMatching(`[0-9]{1,2}\.[0-9]{1,2}\.[0-9]{1,2}`).Draw(t, "version"),
		)
		if err != nil {
			t.Fatalf("generated invalid id: %v", err)
		}
		if rapid.Bool().Draw(t, "hasType") {
			id, err = id.WithType(CoordinateParts().Draw(t, "type"))
			if err != nil {
				t.Fatalf("generated invalid type: %v", err)
			}
			if rapid.Bool().Draw(t, "hasClassifier") {
				id, err = id.WithClassifier(CoordinateParts().Draw(t, "classifier"))
				if err != nil {
					t.Fatalf("generated invalid classifier: %v", err)
				}
			}
		}
		return id
	})
}

// PIDs draws valid pids, factory pids and instance names
func PIDs() *rapid.Generator[string] {
	return rapid.StringMatching(`[a-z][a-zA-Z0-9.\-]{0,20}`)
}

// PropertyKeys draws valid property keys
func PropertyKeys() *rapid.Generator[string] {
	return rapid.StringMatching(`[a-z_][a-z0-9_.\-]{0,10}`)
}

// PropertyValues draws values from every accepted kind. Floats stay finite so
// results can be compared with assert.Equal.
func PropertyValues() *rapid.Generator[any] {
	return rapid.OneOf(
		rapid.Map(rapid.String(), func(v string) any { return v }),
		rapid.Map(rapid.Bool(), func(v bool) any { return v }),
		rapid.Map(rapid.Int64(), func(v int64) any { return v }),
		rapid.Map(rapid.Float64Range(-1e6, 1e6), func(v float64) any { return v }),
		rapid.Map(rapid.SliceOfN(rapid.String(), 0, 4), func(v []string) any { return v }),
		rapid.Map(rapid.SliceOfN(rapid.Int(), 0, 4), func(v []int) any { return v }),
	)
}

// PropertyMaps draws property maps of up to maxLen entries
func PropertyMaps(maxLen int) *rapid.Generator[map[string]any] {
	return rapid.MapOfN(PropertyKeys(), PropertyValues(), 0, maxLen)
}
