package feature

import (
	"github.com/cespare/xxhash/v2"
	"github.com/fxamacker/cbor/v2"
)

// canonicalMode encodes with Core Deterministic Encoding (RFC 8949 §4.2):
// sorted map keys and shortest integer and float forms, so equal descriptors
// always produce identical bytes. Values compare by their encoded form:
// int(1) and int64(1) are equal, int(1) and float64(1) are not.
var canonicalMode cbor.EncMode

func init() {
	var err error
	canonicalMode, err = cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		panic("feature: CBOR encoder initialization failed: " + err.Error())
	}
}

// canonicalForm is the encoded identity of a descriptor together with its
// hash code.
type canonicalForm struct {
	bytes string
	hash  uint64
}

func encodeCanonical(v any) (canonicalForm, error) {
	b, err := canonicalMode.Marshal(v)
	if err != nil {
		return canonicalForm{}, err
	}
	return canonicalForm{bytes: string(b), hash: xxhash.Sum64(b)}, nil
}

// configurationIdentity is the encoded triple (factory pid, pid, values).
// Array encoding keeps field order fixed without relying on field names.
type configurationIdentity struct {
	_          struct{} `cbor:",toarray"`
	FactoryPID *string
	PID        string
	Values     map[string]any
}

type featureIdentity struct {
	_              struct{} `cbor:",toarray"`
	ID             string
	Title          string
	Description    string
	Bundles        []string
	Configurations [][]byte
}
