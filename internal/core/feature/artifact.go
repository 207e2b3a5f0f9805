package feature

import (
	"slices"

	"github.com/cespare/xxhash/v2"
)

// Artifact describes a single provisioning unit by its id. It is a comparable
// value: two artifacts are == exactly when their ids are.
type Artifact struct {
	id ArtifactID
}

// NewArtifact wraps an already validated id. No validation happens here; use
// ParseArtifactID or NewArtifactID to obtain a well-formed id.
func NewArtifact(id ArtifactID) Artifact {
	return Artifact{id: id}
}

// ID returns the id exactly as supplied.
func (a Artifact) ID() ArtifactID {
	return a.id
}

// Equal reports whether both artifacts carry the same id.
func (a Artifact) Equal(other Artifact) bool {
	return a.id == other.id
}

// Hash is derived solely from the id.
func (a Artifact) Hash() uint64 {
	d := xxhash.New()
	for _, part := range []string{a.id.group, a.id.artifact, a.id.version, a.id.typ, a.id.classifier} {
		_, _ = d.WriteString(part)
		_, _ = d.Write([]byte{0})
	}
	return d.Sum64()
}

func (a Artifact) String() string {
	return "Artifact [id=" + a.id.String() + "]"
}

// DistinctArtifacts drops repeated artifacts, keeping the first occurrence
// and the original order.
func DistinctArtifacts(artifacts []Artifact) []Artifact {
	seen := make(map[Artifact]struct{}, len(artifacts))
	out := make([]Artifact, 0, len(artifacts))
	for _, a := range artifacts {
		if _, ok := seen[a]; ok {
			continue
		}
		seen[a] = struct{}{}
		out = append(out, a)
	}
	return out
}

// SortArtifacts returns a sorted copy ordered by CompareArtifactIDs.
func SortArtifacts(artifacts []Artifact) []Artifact {
	out := slices.Clone(artifacts)
	slices.SortStableFunc(out, func(a, b Artifact) int {
		return CompareArtifactIDs(a.id, b.id)
	})
	return out
}
