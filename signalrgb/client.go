package signalrgb

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"sync"
)

// API path roots, owned by the SignalRGB service.
const (
	lightingV1 = "/api/v1/lighting"
	scenesV1   = "/api/v1/scenes"
)

// Client is the context-aware SignalRGB client. Every operation takes a
// context and can be cancelled mid-flight; cancellation aborts the
// underlying HTTP request. Operations issue at most one request at a time,
// never in parallel, and errors from the transport are propagated
// unchanged.
//
// Effects are served through a per-client read-through cache: the effect
// list is fetched once and reused until RefreshEffects is called. Applying
// an effect does not invalidate the cache, since the cache holds effect
// metadata rather than current-state.
//
// All methods are safe for concurrent use.
//
//	client, err := signalrgb.NewClient(nil)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer client.Close()
//
//	effect, err := client.ApplyEffectByName(ctx, "Rainbow Wave")
type Client interface {
	// ListEffects returns the cached effect list, fetching it on first
	// access.
	ListEffects(ctx context.Context) ([]Effect, error)

	// RefreshEffects discards the cached effect list and reloads it,
	// returning the fresh list.
	RefreshEffects(ctx context.Context) ([]Effect, error)

	// GetEffect returns the effect with the given ID. The cached list is
	// consulted first; on a miss the effect is fetched by ID.
	GetEffect(ctx context.Context, id string) (Effect, error)

	// GetEffectByName returns the first cached effect with the given
	// name, in the order the service returned the list. Names are not
	// unique; the ID is the stable key.
	GetEffectByName(ctx context.Context, name string) (Effect, error)

	// ApplyEffect activates the effect with the given ID and returns it.
	ApplyEffect(ctx context.Context, id string) (Effect, error)

	// ApplyEffectByName resolves a name against the cached list and
	// applies the match. If no effect has the name, no mutating request
	// is issued.
	ApplyEffectByName(ctx context.Context, name string) (Effect, error)

	// GetCurrentState returns the active effect reference together with
	// the canvas state (enabled flag, brightness).
	GetCurrentState(ctx context.Context) (CurrentState, error)

	// GetCurrentEffect returns the currently active effect.
	GetCurrentEffect(ctx context.Context) (Effect, error)

	// ApplyNextEffect applies the effect after the current one in cached
	// list order, wrapping around at the end.
	ApplyNextEffect(ctx context.Context) (Effect, error)

	// ApplyPreviousEffect applies the effect before the current one in
	// cached list order, wrapping around at the start.
	ApplyPreviousEffect(ctx context.Context) (Effect, error)

	// ApplyRandomEffect applies an effect chosen uniformly from the
	// whole cached list.
	ApplyRandomEffect(ctx context.Context) (Effect, error)

	// GetEffectPresets lists the presets of one effect. Preset IDs are
	// only unique within their effect.
	GetEffectPresets(ctx context.Context, effectID string) ([]EffectPreset, error)

	// ApplyEffectPreset applies a preset to its effect.
	ApplyEffectPreset(ctx context.Context, effectID, presetID string) error

	// GetLayouts lists the available layouts.
	GetLayouts(ctx context.Context) ([]Layout, error)

	// GetCurrentLayout returns the active layout.
	GetCurrentLayout(ctx context.Context) (Layout, error)

	// SetCurrentLayout activates a layout and returns it as echoed by
	// the service.
	SetCurrentLayout(ctx context.Context, id string) (Layout, error)

	// GetBrightness returns the global brightness (0-100).
	GetBrightness(ctx context.Context) (int, error)

	// SetBrightness sets the global brightness. Values outside 0-100 are
	// rejected with a ValidationError before any request is issued.
	SetBrightness(ctx context.Context, value int) error

	// GetEnabled returns whether the canvas is enabled.
	GetEnabled(ctx context.Context) (bool, error)

	// SetEnabled enables or disables the canvas.
	SetEnabled(ctx context.Context, value bool) error

	// Close releases the client's connection resources. It is safe to
	// call multiple times; operations after Close fail with
	// ErrClientClosed.
	Close() error
}

// client is the concrete Client implementation.
type client struct {
	transport *transport
	config    *Config
	cache     *effectCache

	mu     sync.RWMutex
	closed bool
}

var _ Client = (*client)(nil)

// NewClient creates a Client from the given configuration. A nil config
// uses the defaults (localhost:16038, 10s timeout).
func NewClient(config *Config) (Client, error) {
	if config == nil {
		config = DefaultConfig()
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}

	transport, err := newTransport(config)
	if err != nil {
		return nil, fmt.Errorf("failed to create transport: %w", err)
	}

	c := &client{
		transport: transport,
		config:    config,
	}
	c.cache = newEffectCache(c.fetchEffects, config.Observer)
	return c, nil
}

func (c *client) checkClosed() error {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.closed {
		return ErrClientClosed
	}
	return nil
}

func (c *client) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return nil
	}
	c.closed = true
	c.transport.close()
	return nil
}

// fetchEffects is the cache loader.
func (c *client) fetchEffects(ctx context.Context) ([]Effect, error) {
	env, err := c.transport.get(ctx, lightingV1+"/effects")
	if err != nil {
		return nil, err
	}
	var list effectList
	if err := decodeData(env, &list); err != nil {
		return nil, err
	}
	return list.Items, nil
}

func (c *client) ListEffects(ctx context.Context) ([]Effect, error) {
	if err := c.checkClosed(); err != nil {
		return nil, err
	}
	return c.cache.effects(ctx)
}

func (c *client) RefreshEffects(ctx context.Context) ([]Effect, error) {
	if err := c.checkClosed(); err != nil {
		return nil, err
	}
	return c.cache.refresh(ctx)
}

func (c *client) GetEffect(ctx context.Context, id string) (Effect, error) {
	if err := c.checkClosed(); err != nil {
		return Effect{}, err
	}
	effect, ok, err := c.cache.findByID(ctx, id)
	if err != nil {
		return Effect{}, err
	}
	if ok {
		return effect, nil
	}
	// Not in the snapshot; the cache may be stale, so ask the service.
	return c.fetchEffect(ctx, id)
}

func (c *client) fetchEffect(ctx context.Context, id string) (Effect, error) {
	env, err := c.transport.get(ctx, buildPath(lightingV1+"/effects/{0}", id))
	if err != nil {
		return Effect{}, renameNotFound(err, effectResource(id))
	}
	var effect Effect
	if err := decodeData(env, &effect); err != nil {
		return Effect{}, err
	}
	return effect, nil
}

func (c *client) GetEffectByName(ctx context.Context, name string) (Effect, error) {
	if err := c.checkClosed(); err != nil {
		return Effect{}, err
	}
	return c.cache.findByName(ctx, name)
}

func (c *client) ApplyEffect(ctx context.Context, id string) (Effect, error) {
	effect, err := c.GetEffect(ctx, id)
	if err != nil {
		return Effect{}, err
	}
	return effect, c.applyResolved(ctx, effect)
}

func (c *client) ApplyEffectByName(ctx context.Context, name string) (Effect, error) {
	effect, err := c.GetEffectByName(ctx, name)
	if err != nil {
		return Effect{}, err
	}
	return effect, c.applyResolved(ctx, effect)
}

// applyResolved issues the mutating call for an already-resolved effect,
// preferring the effect's own apply link.
func (c *client) applyResolved(ctx context.Context, effect Effect) error {
	path := effect.Links.Apply
	if path == "" {
		path = buildPath(lightingV1+"/effects/{0}/apply", effect.ID)
	}
	_, err := c.transport.post(ctx, path, nil)
	return renameNotFound(err, effectResource(effect.ID))
}

func (c *client) GetCurrentState(ctx context.Context) (CurrentState, error) {
	if err := c.checkClosed(); err != nil {
		return CurrentState{}, err
	}
	env, err := c.transport.get(ctx, lightingV1)
	if err != nil {
		return CurrentState{}, err
	}
	var state CurrentState
	if err := decodeData(env, &state); err != nil {
		return CurrentState{}, err
	}
	return state, nil
}

func (c *client) GetCurrentEffect(ctx context.Context) (Effect, error) {
	state, err := c.GetCurrentState(ctx)
	if err != nil {
		return Effect{}, err
	}
	return c.GetEffect(ctx, state.ID)
}

func (c *client) ApplyNextEffect(ctx context.Context) (Effect, error) {
	return c.applyNeighbor(ctx, 1)
}

func (c *client) ApplyPreviousEffect(ctx context.Context) (Effect, error) {
	return c.applyNeighbor(ctx, -1)
}

// applyNeighbor applies the effect at the given offset from the current
// one in cached list order, with wraparound. A current effect missing from
// the snapshot falls back to the list boundary in the travel direction.
func (c *client) applyNeighbor(ctx context.Context, offset int) (Effect, error) {
	state, err := c.GetCurrentState(ctx)
	if err != nil {
		return Effect{}, err
	}
	effects, err := c.ListEffects(ctx)
	if err != nil {
		return Effect{}, err
	}
	if len(effects) == 0 {
		return Effect{}, &NotFoundError{Resource: "effects"}
	}

	idx := -1
	for i, effect := range effects {
		if effect.ID == state.ID {
			idx = i
			break
		}
	}

	n := len(effects)
	var target Effect
	if idx < 0 {
		if offset > 0 {
			target = effects[0]
		} else {
			target = effects[n-1]
		}
	} else {
		target = effects[((idx+offset)%n+n)%n]
	}
	return target, c.applyResolved(ctx, target)
}

func (c *client) ApplyRandomEffect(ctx context.Context) (Effect, error) {
	effects, err := c.ListEffects(ctx)
	if err != nil {
		return Effect{}, err
	}
	if len(effects) == 0 {
		return Effect{}, &NotFoundError{Resource: "effects"}
	}
	target := effects[rand.IntN(len(effects))]
	return target, c.applyResolved(ctx, target)
}

func (c *client) GetEffectPresets(ctx context.Context, effectID string) ([]EffectPreset, error) {
	if err := c.checkClosed(); err != nil {
		return nil, err
	}
	env, err := c.transport.get(ctx, buildPath(lightingV1+"/effects/{0}/presets", effectID))
	if err != nil {
		return nil, renameNotFound(err, effectResource(effectID))
	}
	var list presetList
	if err := decodeData(env, &list); err != nil {
		return nil, err
	}
	return list.Items, nil
}

func (c *client) ApplyEffectPreset(ctx context.Context, effectID, presetID string) error {
	if err := c.checkClosed(); err != nil {
		return err
	}
	path := buildPath(lightingV1+"/effects/{0}/presets", effectID)
	_, err := c.transport.patch(ctx, path, map[string]string{"preset": presetID})
	return renameNotFound(err,
		fmt.Sprintf("effect %q or preset %q", effectID, presetID))
}

func (c *client) GetLayouts(ctx context.Context) ([]Layout, error) {
	if err := c.checkClosed(); err != nil {
		return nil, err
	}
	env, err := c.transport.get(ctx, scenesV1+"/layouts")
	if err != nil {
		return nil, err
	}
	var list layoutList
	if err := decodeData(env, &list); err != nil {
		return nil, err
	}
	return list.Items, nil
}

func (c *client) GetCurrentLayout(ctx context.Context) (Layout, error) {
	if err := c.checkClosed(); err != nil {
		return Layout{}, err
	}
	env, err := c.transport.get(ctx, scenesV1+"/current_layout")
	if err != nil {
		return Layout{}, err
	}
	var holder currentLayoutHolder
	if err := decodeData(env, &holder); err != nil {
		return Layout{}, err
	}
	if holder.CurrentLayout == nil {
		return Layout{}, &APIError{Message: "malformed response: missing current layout"}
	}
	return *holder.CurrentLayout, nil
}

func (c *client) SetCurrentLayout(ctx context.Context, id string) (Layout, error) {
	if err := c.checkClosed(); err != nil {
		return Layout{}, err
	}
	env, err := c.transport.patch(ctx, scenesV1+"/current_layout", map[string]string{"layout": id})
	if err != nil {
		return Layout{}, renameNotFound(err, fmt.Sprintf("layout %q", id))
	}
	var holder currentLayoutHolder
	if err := decodeData(env, &holder); err != nil {
		return Layout{}, err
	}
	if holder.CurrentLayout == nil || holder.CurrentLayout.ID != id {
		return Layout{}, &APIError{Message: fmt.Sprintf("failed to set layout to %q", id)}
	}
	return *holder.CurrentLayout, nil
}

func (c *client) GetBrightness(ctx context.Context) (int, error) {
	state, err := c.GetCurrentState(ctx)
	if err != nil {
		return 0, err
	}
	return state.Attributes.GlobalBrightness, nil
}

func (c *client) SetBrightness(ctx context.Context, value int) error {
	if err := c.checkClosed(); err != nil {
		return err
	}
	if value < 0 || value > 100 {
		return &ValidationError{
			Field:   "brightness",
			Message: fmt.Sprintf("%d is outside the range 0-100", value),
		}
	}
	_, err := c.transport.patch(ctx, lightingV1+"/global_brightness",
		map[string]int{"global_brightness": value})
	return err
}

func (c *client) GetEnabled(ctx context.Context) (bool, error) {
	state, err := c.GetCurrentState(ctx)
	if err != nil {
		return false, err
	}
	return state.Attributes.Enabled, nil
}

func (c *client) SetEnabled(ctx context.Context, value bool) error {
	if err := c.checkClosed(); err != nil {
		return err
	}
	_, err := c.transport.patch(ctx, lightingV1+"/enabled", map[string]bool{"enabled": value})
	return err
}

func effectResource(id string) string {
	return fmt.Sprintf("effect %q", id)
}

// renameNotFound replaces a transport-level NotFoundError's generic
// resource label with a caller-supplied one. The error type and server
// detail entries are preserved.
func renameNotFound(err error, resource string) error {
	if err == nil {
		return nil
	}
	var nf *NotFoundError
	if errors.As(err, &nf) {
		return &NotFoundError{Resource: resource, Errors: nf.Errors}
	}
	return err
}
