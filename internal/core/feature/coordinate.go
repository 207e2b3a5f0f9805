package feature

import (
	"cmp"
	"strings"
	"unicode"

	"github.com/Masterminds/semver/v3"
)

// DefaultArtifactType is assumed when a coordinate names no type.
const DefaultArtifactType = "jar"

// ArtifactID is a value object identifying an artifact by its coordinate
// group:artifact:version[:type[:classifier]].
type ArtifactID struct {
	group      string
	artifact   string
	version    string
	typ        string
	classifier string
}

// NewArtifactID creates an ArtifactID with validation. The type defaults to
// DefaultArtifactType.
func NewArtifactID(group, artifact, version string) (ArtifactID, error) {
	for _, part := range []struct{ field, value string }{
		{"group", group},
		{"artifact", artifact},
		{"version", version},
	} {
		if err := validateCoordinatePart(part.field, part.value); err != nil {
			return ArtifactID{}, err
		}
	}
	return ArtifactID{
		group:    group,
		artifact: artifact,
		version:  version,
		typ:      DefaultArtifactType,
	}, nil
}

// ParseArtifactID parses group:artifact:version[:type[:classifier]].
func ParseArtifactID(coordinate string) (ArtifactID, error) {
	parts := strings.Split(coordinate, ":")
	if len(parts) < 3 || len(parts) > 5 {
		return ArtifactID{}, &InvalidIdentifierError{
			Field:  "coordinate",
			Value:  coordinate,
			Reason: "expected group:artifact:version[:type[:classifier]]",
		}
	}

	id, err := NewArtifactID(parts[0], parts[1], parts[2])
	if err != nil {
		return ArtifactID{}, err
	}
	if len(parts) > 3 {
		if id, err = id.WithType(parts[3]); err != nil {
			return ArtifactID{}, err
		}
	}
	if len(parts) > 4 {
		if id, err = id.WithClassifier(parts[4]); err != nil {
			return ArtifactID{}, err
		}
	}
	return id, nil
}

// MustParseArtifactID is ParseArtifactID for constant coordinates; it panics
// on error.
func MustParseArtifactID(coordinate string) ArtifactID {
	id, err := ParseArtifactID(coordinate)
	if err != nil {
		panic(err)
	}
	return id
}

// WithType returns a copy of the id with the given type.
func (a ArtifactID) WithType(typ string) (ArtifactID, error) {
	if err := validateCoordinatePart("type", typ); err != nil {
		return ArtifactID{}, err
	}
	a.typ = typ
	return a, nil
}

// WithClassifier returns a copy of the id with the given classifier.
func (a ArtifactID) WithClassifier(classifier string) (ArtifactID, error) {
	if err := validateCoordinatePart("classifier", classifier); err != nil {
		return ArtifactID{}, err
	}
	a.classifier = classifier
	return a, nil
}

func (a ArtifactID) Group() string      { return a.group }
func (a ArtifactID) Artifact() string   { return a.artifact }
func (a ArtifactID) Version() string    { return a.version }
func (a ArtifactID) Type() string       { return a.typ }
func (a ArtifactID) Classifier() string { return a.classifier }

// IsZero reports whether the id was never initialised.
func (a ArtifactID) IsZero() bool {
	return a == ArtifactID{}
}

// String renders the canonical coordinate. The type is omitted when it is the
// default and there is no classifier, so ParseArtifactID(id.String()) == id.
func (a ArtifactID) String() string {
	if a.IsZero() {
		return ""
	}
	var b strings.Builder
	b.WriteString(a.group)
	b.WriteByte(':')
	b.WriteString(a.artifact)
	b.WriteByte(':')
	b.WriteString(a.version)
	if a.classifier != "" || a.typ != DefaultArtifactType {
		b.WriteByte(':')
		b.WriteString(a.typ)
	}
	if a.classifier != "" {
		b.WriteByte(':')
		b.WriteString(a.classifier)
	}
	return b.String()
}

// SemVer parses the version as a semantic version. Coordinates frequently
// carry versions that are not semver, so callers must handle the error.
func (a ArtifactID) SemVer() (*semver.Version, error) {
	return semver.NewVersion(a.version)
}

// CompareVersion orders the versions of two ids. When both parse as semantic
// versions they are compared by precedence, otherwise lexically.
func (a ArtifactID) CompareVersion(other ArtifactID) int {
	left, lerr := a.SemVer()
	right, rerr := other.SemVer()
	if lerr == nil && rerr == nil {
		if c := left.Compare(right); c != 0 {
			return c
		}
	}
	return cmp.Compare(a.version, other.version)
}

// CompareArtifactIDs orders ids by group, artifact, version, type and
// classifier. It is suitable for slices.SortFunc.
func CompareArtifactIDs(a, b ArtifactID) int {
	if c := cmp.Compare(a.group, b.group); c != 0 {
		return c
	}
	if c := cmp.Compare(a.artifact, b.artifact); c != 0 {
		return c
	}
	if c := a.CompareVersion(b); c != 0 {
		return c
	}
	if c := cmp.Compare(a.typ, b.typ); c != 0 {
		return c
	}
	return cmp.Compare(a.classifier, b.classifier)
}

func validateCoordinatePart(field, value string) error {
	if value == "" {
		return &InvalidIdentifierError{Field: field, Value: value, Reason: "cannot be empty"}
	}
	if strings.IndexFunc(value, func(r rune) bool {
		return r == ':' || unicode.IsSpace(r) || unicode.IsControl(r)
	}) >= 0 {
		return &InvalidIdentifierError{Field: field, Value: value, Reason: "must not contain ':' or whitespace"}
	}
	return nil
}
