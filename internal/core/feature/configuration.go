package feature

import (
	"iter"
	"maps"
	"slices"
)

// Configuration is an immutable property bag identified by a pid, optionally
// scoped under a factory pid. The zero value is not a valid configuration; use
// a ConfigurationBuilder.
//
// Values are copied when the configuration is built and again whenever they
// are read, so a Configuration is safe to share between goroutines.
type Configuration struct {
	pid        string
	factoryPID string
	name       string
	values     map[string]any
	canon      canonicalForm
}

// PID returns the effective pid. For a factory configuration this is
// factoryPid~name.
func (c Configuration) PID() string {
	return c.pid
}

// FactoryPID returns the factory pid and whether the configuration is
// factory-scoped.
func (c Configuration) FactoryPID() (string, bool) {
	return c.factoryPID, c.factoryPID != ""
}

// Name returns the instance name of a factory configuration.
func (c Configuration) Name() (string, bool) {
	return c.name, c.factoryPID != ""
}

// IsFactory reports whether the configuration is factory-scoped.
func (c Configuration) IsFactory() bool {
	return c.factoryPID != ""
}

// Values returns a copy of the property map.
func (c Configuration) Values() map[string]any {
	return copyValues(c.values)
}

// Get returns a copy of a single value.
func (c Configuration) Get(key string) (any, bool) {
	v, ok := c.values[key]
	if !ok {
		return nil, false
	}
	return copyValue(v), true
}

// Keys returns the property keys in sorted order.
func (c Configuration) Keys() []string {
	return slices.Sorted(maps.Keys(c.values))
}

// Len returns the number of properties.
func (c Configuration) Len() int {
	return len(c.values)
}

// All iterates over the properties in key order.
func (c Configuration) All() iter.Seq2[string, any] {
	return func(yield func(string, any) bool) {
		for _, k := range c.Keys() {
			if !yield(k, copyValue(c.values[k])) {
				return
			}
		}
	}
}

// Equal compares factory pid, pid and values.
func (c Configuration) Equal(other Configuration) bool {
	return c.canon.bytes == other.canon.bytes
}

// Hash is consistent with Equal.
func (c Configuration) Hash() uint64 {
	return c.canon.hash
}

func (c Configuration) String() string {
	return "Configuration [pid=" + c.pid + "]"
}

// ConfigurationBuilder accumulates properties and produces Configuration
// snapshots. A builder is not safe for concurrent use.
//
// Invalid keys and values are rejected when they are added; the errors are
// kept and returned by Build.
type ConfigurationBuilder struct {
	p      string
	name   string
	values map[string]any
	errs   []error
}

// NewConfigurationBuilder starts a non-factory configuration.
func NewConfigurationBuilder(pid string) *ConfigurationBuilder {
	b := newConfigurationBuilder(pid, "")
	if err := validatePID("pid", pid); err != nil {
		b.errs = append(b.errs, err)
	}
	return b
}

// NewFactoryConfigurationBuilder starts a factory configuration whose pid
// will be factoryPid~name.
func NewFactoryConfigurationBuilder(factoryPID, name string) *ConfigurationBuilder {
	b := newConfigurationBuilder(factoryPID, name)
	if err := validatePID("factory pid", factoryPID); err != nil {
		b.errs = append(b.errs, err)
	}
	if name == "" {
		b.errs = append(b.errs, &MissingNameError{FactoryPID: factoryPID})
	} else if err := validatePID("name", name); err != nil {
		b.errs = append(b.errs, err)
	}
	return b
}

// NewConfigurationBuilderFrom starts a builder holding a copy of c's values.
// Factory configurations cannot be cloned this way: the builder records
// ErrFactoryClone and Build fails. Use NewFactoryConfigurationBuilderFrom.
func NewConfigurationBuilderFrom(c Configuration) *ConfigurationBuilder {
	if c.IsFactory() {
		b := newConfigurationBuilder("", "")
		b.errs = append(b.errs, ErrFactoryClone)
		return b.AddValues(c.values)
	}
	return NewConfigurationBuilder(c.pid).AddValues(c.values)
}

// NewFactoryConfigurationBuilderFrom clones a configuration into a factory
// builder. factoryPID must match the factory pid of c when c is
// factory-scoped; name may differ, which yields a sibling instance.
func NewFactoryConfigurationBuilderFrom(c Configuration, factoryPID, name string) *ConfigurationBuilder {
	b := NewFactoryConfigurationBuilder(factoryPID, name)
	if source, ok := c.FactoryPID(); ok && source != factoryPID {
		b.errs = append(b.errs, &InvalidIdentifierError{
			Field:  "factory pid",
			Value:  factoryPID,
			Reason: "does not match source factory pid " + source,
		})
	}
	return b.AddValues(c.values)
}

func newConfigurationBuilder(p, name string) *ConfigurationBuilder {
	return &ConfigurationBuilder{
		p:      p,
		name:   name,
		values: make(map[string]any),
	}
}

// AddValue sets key to value, replacing any previous value.
func (b *ConfigurationBuilder) AddValue(key string, value any) *ConfigurationBuilder {
	if err := validateKey(key); err != nil {
		b.errs = append(b.errs, err)
		return b
	}
	if err := checkValue(key, value); err != nil {
		b.errs = append(b.errs, err)
		return b
	}
	b.values[key] = copyValue(value)
	return b
}

// AddValues merges values into the builder; incoming values win. Keys are
// applied in sorted order so recorded errors are deterministic.
func (b *ConfigurationBuilder) AddValues(values map[string]any) *ConfigurationBuilder {
	for _, k := range slices.Sorted(maps.Keys(values)) {
		b.AddValue(k, values[k])
	}
	return b
}

// Err returns the validation errors recorded so far, joined.
func (b *ConfigurationBuilder) Err() error {
	return joinErrors(b.errs)
}

// Build freezes the current state. It may be called repeatedly; every call
// returns an independent snapshot.
func (b *ConfigurationBuilder) Build() (Configuration, error) {
	if err := b.Err(); err != nil {
		return Configuration{}, err
	}

	c := Configuration{
		pid:    b.p,
		values: copyValues(b.values),
	}
	id := configurationIdentity{PID: c.pid, Values: c.values}
	if b.name != "" {
		c.pid = JoinFactoryPID(b.p, b.name)
		c.factoryPID = b.p
		c.name = b.name
		id.PID = c.pid
		id.FactoryPID = &c.factoryPID
	}

	canon, err := encodeCanonical(id)
	if err != nil {
		return Configuration{}, err
	}
	c.canon = canon
	return c, nil
}

// MustBuild is Build for fixtures and tests; it panics on error.
func (b *ConfigurationBuilder) MustBuild() Configuration {
	c, err := b.Build()
	if err != nil {
		panic(err)
	}
	return c
}
