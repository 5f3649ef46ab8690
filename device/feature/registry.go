package feature

import (
	"sync"

	"github.com/signalkit/biosig-dsp/bioerr"
)

// HandlerSet is the static, compile-time handler table a device type
// registers for one feature. IsAvailable is required; IsEnabled and
// Perform are optional.
type HandlerSet struct {
	// IsAvailable reports whether the feature exists on a device
	// instance at all (hardware/firmware capability).
	IsAvailable func() bool

	// IsEnabled reports whether an available feature is currently
	// usable. When nil, IsAvailable's result stands in for it (spec
	// §4.7: "a feature with no distinct enabled predicate is enabled
	// whenever it is available").
	IsEnabled func() bool

	// Perform executes the feature's action, returning whether it
	// completed. When nil, Perform on the feature always reports false.
	Perform func(param any) bool
}

// Registry is the per-device-type feature table described in spec §4.7
// and mandated by §9's redesign flag: a static registry built at
// device-type registration time, resolved by canonical name without
// runtime introspection. A device type may declare itself a subtype of
// another; subtype instances inherit the supertype's feature handlers
// unless they declare their own under the same canonical name.
type Registry struct {
	mu sync.RWMutex

	parents  map[string]string
	declared map[string]map[string]HandlerSet
	cache    map[string]map[string]HandlerSet
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		parents:  make(map[string]string),
		declared: make(map[string]map[string]HandlerSet),
		cache:    make(map[string]map[string]HandlerSet),
	}
}

// RegisterDeviceType declares deviceType, optionally as a subtype of
// parent ("" for a root type). Must be called before RegisterFeature or
// any lookup for deviceType.
func (r *Registry) RegisterDeviceType(deviceType, parent string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.parents[deviceType] = parent

	if _, ok := r.declared[deviceType]; !ok {
		r.declared[deviceType] = make(map[string]HandlerSet)
	}
}

// RegisterFeature attaches handlers for f to deviceType. f must be
// associated with deviceType itself or one of its ancestors; otherwise
// RegisterFeature fails with an Arguments error (spec §4.7: "F may be
// associated only with its own device type or a supertype, otherwise
// association fails").
func (r *Registry) RegisterFeature(deviceType string, f Feature, handlers HandlerSet) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.isSubtypeOfLocked(deviceType, f.DeviceType) {
		return bioerr.Arguments(0, "feature: %q is not associated with device type %q or a supertype", f.Name, deviceType)
	}

	if _, ok := r.declared[deviceType]; !ok {
		r.declared[deviceType] = make(map[string]HandlerSet)
	}

	r.declared[deviceType][f.Canonical()] = handlers
	clear(r.cache) // subtypes' cached tables include this type's handlers

	return nil
}

// isSubtypeOfLocked reports whether deviceType equals ancestor or
// descends from it through the parent chain. Callers hold r.mu.
func (r *Registry) isSubtypeOfLocked(deviceType, ancestor string) bool {
	for t, ok := deviceType, true; ok; t, ok = r.parents[t] {
		if t == ancestor {
			return true
		}

		if t == "" {
			return false
		}
	}

	return false
}

// resolved returns the flattened, inheritance-applied handler table for
// deviceType, computing and caching it on first use.
func (r *Registry) resolved(deviceType string) map[string]HandlerSet {
	r.mu.RLock()
	if m, ok := r.cache[deviceType]; ok {
		r.mu.RUnlock()
		return m
	}
	r.mu.RUnlock()

	r.mu.Lock()
	defer r.mu.Unlock()

	if m, ok := r.cache[deviceType]; ok {
		return m
	}

	var chain []string
	for t, ok := deviceType, true; ok && t != ""; t, ok = r.parents[t] {
		chain = append(chain, t)
	}

	m := make(map[string]HandlerSet)
	for i := len(chain) - 1; i >= 0; i-- {
		for name, h := range r.declared[chain[i]] {
			m[name] = h
		}
	}

	r.cache[deviceType] = m

	return m
}

// IsAvailable reports whether deviceType supports f.
func (r *Registry) IsAvailable(deviceType string, f Feature) bool {
	h, ok := r.resolved(deviceType)[f.Canonical()]

	return ok && h.IsAvailable != nil && h.IsAvailable()
}

// IsEnabled reports whether deviceType supports f and f is currently
// usable. It falls back to IsAvailable when the handler set declares no
// distinct enabled predicate.
func (r *Registry) IsEnabled(deviceType string, f Feature) bool {
	h, ok := r.resolved(deviceType)[f.Canonical()]
	if !ok || h.IsAvailable == nil || !h.IsAvailable() {
		return false
	}

	if h.IsEnabled == nil {
		return true
	}

	return h.IsEnabled()
}

// IsAvailableAndEnabled reports both predicates, but unlike IsEnabled
// treats an absent enabled predicate as false rather than falling back
// to availability (spec §4.7's combined query is stricter than the
// plain is_enabled() shorthand).
func (r *Registry) IsAvailableAndEnabled(deviceType string, f Feature) bool {
	h, ok := r.resolved(deviceType)[f.Canonical()]

	return ok && h.IsAvailable != nil && h.IsAvailable() && h.IsEnabled != nil && h.IsEnabled()
}

// Perform executes f's action on deviceType, returning false if the
// feature is unregistered or declares no Perform handler.
func (r *Registry) Perform(deviceType string, f Feature, param any) bool {
	h, ok := r.resolved(deviceType)[f.Canonical()]

	return ok && h.Perform != nil && h.Perform(param)
}
