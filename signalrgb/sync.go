package signalrgb

import (
	"context"
	"time"
)

// SyncClient is the blocking façade over the same operation set as Client.
// Each call derives its own timeout context from the configured request
// timeout and drives the context client to completion, so concurrent calls
// from multiple goroutines are independent. Inputs, results, and error
// types are identical to the context client's.
//
// Use Client directly when you need cancellation or deadlines that span
// several operations.
type SyncClient struct {
	inner   Client
	timeout time.Duration
}

// NewSyncClient creates a blocking client from the given configuration.
// A nil config uses the defaults.
func NewSyncClient(config *Config) (*SyncClient, error) {
	if config == nil {
		config = DefaultConfig()
	}
	inner, err := NewClient(config)
	if err != nil {
		return nil, err
	}
	return &SyncClient{inner: inner, timeout: config.Timeout}, nil
}

// newContext derives the per-call context.
func (s *SyncClient) newContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), s.timeout)
}

// Close releases the underlying connection resources. Safe to call
// multiple times.
func (s *SyncClient) Close() error {
	return s.inner.Close()
}

// ListEffects returns the cached effect list, fetching it on first access.
func (s *SyncClient) ListEffects() ([]Effect, error) {
	ctx, cancel := s.newContext()
	defer cancel()
	return s.inner.ListEffects(ctx)
}

// RefreshEffects discards and reloads the cached effect list.
func (s *SyncClient) RefreshEffects() ([]Effect, error) {
	ctx, cancel := s.newContext()
	defer cancel()
	return s.inner.RefreshEffects(ctx)
}

// GetEffect returns the effect with the given ID.
func (s *SyncClient) GetEffect(id string) (Effect, error) {
	ctx, cancel := s.newContext()
	defer cancel()
	return s.inner.GetEffect(ctx, id)
}

// GetEffectByName returns the first effect with the given name.
func (s *SyncClient) GetEffectByName(name string) (Effect, error) {
	ctx, cancel := s.newContext()
	defer cancel()
	return s.inner.GetEffectByName(ctx, name)
}

// ApplyEffect activates the effect with the given ID and returns it.
func (s *SyncClient) ApplyEffect(id string) (Effect, error) {
	ctx, cancel := s.newContext()
	defer cancel()
	return s.inner.ApplyEffect(ctx, id)
}

// ApplyEffectByName resolves a name and applies the matching effect.
func (s *SyncClient) ApplyEffectByName(name string) (Effect, error) {
	ctx, cancel := s.newContext()
	defer cancel()
	return s.inner.ApplyEffectByName(ctx, name)
}

// GetCurrentState returns the active effect reference and canvas state.
func (s *SyncClient) GetCurrentState() (CurrentState, error) {
	ctx, cancel := s.newContext()
	defer cancel()
	return s.inner.GetCurrentState(ctx)
}

// GetCurrentEffect returns the currently active effect.
func (s *SyncClient) GetCurrentEffect() (Effect, error) {
	ctx, cancel := s.newContext()
	defer cancel()
	return s.inner.GetCurrentEffect(ctx)
}

// ApplyNextEffect applies the next effect in cached list order.
func (s *SyncClient) ApplyNextEffect() (Effect, error) {
	ctx, cancel := s.newContext()
	defer cancel()
	return s.inner.ApplyNextEffect(ctx)
}

// ApplyPreviousEffect applies the previous effect in cached list order.
func (s *SyncClient) ApplyPreviousEffect() (Effect, error) {
	ctx, cancel := s.newContext()
	defer cancel()
	return s.inner.ApplyPreviousEffect(ctx)
}

// ApplyRandomEffect applies an effect chosen uniformly from the cached
// list.
func (s *SyncClient) ApplyRandomEffect() (Effect, error) {
	ctx, cancel := s.newContext()
	defer cancel()
	return s.inner.ApplyRandomEffect(ctx)
}

// GetEffectPresets lists the presets of one effect.
func (s *SyncClient) GetEffectPresets(effectID string) ([]EffectPreset, error) {
	ctx, cancel := s.newContext()
	defer cancel()
	return s.inner.GetEffectPresets(ctx, effectID)
}

// ApplyEffectPreset applies a preset to its effect.
func (s *SyncClient) ApplyEffectPreset(effectID, presetID string) error {
	ctx, cancel := s.newContext()
	defer cancel()
	return s.inner.ApplyEffectPreset(ctx, effectID, presetID)
}

// GetLayouts lists the available layouts.
func (s *SyncClient) GetLayouts() ([]Layout, error) {
	ctx, cancel := s.newContext()
	defer cancel()
	return s.inner.GetLayouts(ctx)
}

// GetCurrentLayout returns the active layout.
func (s *SyncClient) GetCurrentLayout() (Layout, error) {
	ctx, cancel := s.newContext()
	defer cancel()
	return s.inner.GetCurrentLayout(ctx)
}

// SetCurrentLayout activates a layout.
func (s *SyncClient) SetCurrentLayout(id string) (Layout, error) {
	ctx, cancel := s.newContext()
	defer cancel()
	return s.inner.SetCurrentLayout(ctx, id)
}

// GetBrightness returns the global brightness (0-100).
func (s *SyncClient) GetBrightness() (int, error) {
	ctx, cancel := s.newContext()
	defer cancel()
	return s.inner.GetBrightness(ctx)
}

// SetBrightness sets the global brightness (0-100).
func (s *SyncClient) SetBrightness(value int) error {
	ctx, cancel := s.newContext()
	defer cancel()
	return s.inner.SetBrightness(ctx, value)
}

// GetEnabled returns whether the canvas is enabled.
func (s *SyncClient) GetEnabled() (bool, error) {
	ctx, cancel := s.newContext()
	defer cancel()
	return s.inner.GetEnabled(ctx)
}

// SetEnabled enables or disables the canvas.
func (s *SyncClient) SetEnabled(value bool) error {
	ctx, cancel := s.newContext()
	defer cancel()
	return s.inner.SetEnabled(ctx, value)
}
