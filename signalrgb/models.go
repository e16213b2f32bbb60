package signalrgb

import (
	"encoding/json"
)

// Attributes describes an effect as reported by the SignalRGB service.
//
// Parameters is an open-ended mapping whose value shapes are owned by the
// effect author, not this client. Values are kept as raw JSON so unknown
// structures round-trip without loss.
type Attributes struct {
	// Name is the display name of the effect. Names are not guaranteed
	// unique; the effect ID is the stable key.
	Name string `json:"name"`
	// Description is an optional human-readable description.
	Description string `json:"description,omitempty"`
	// Publisher is the effect's author or vendor, if reported.
	Publisher string `json:"publisher,omitempty"`
	// Image is a URL or path to the effect's preview image.
	Image string `json:"image,omitempty"`
	// DeveloperEffect marks effects installed through developer mode.
	DeveloperEffect bool `json:"developer_effect,omitempty"`
	// Parameters holds effect-specific settings verbatim.
	Parameters map[string]json.RawMessage `json:"parameters,omitempty"`
	// Capability flags.
	UsesAudio  bool `json:"uses_audio,omitempty"`
	UsesInput  bool `json:"uses_input,omitempty"`
	UsesMeters bool `json:"uses_meters,omitempty"`
	UsesVideo  bool `json:"uses_video,omitempty"`
}

// Links holds the relation URLs the service attaches to a resource.
type Links struct {
	// Apply is the URL that activates the resource, when present.
	Apply string `json:"apply,omitempty"`
	// Self is the canonical URL of the resource itself.
	Self string `json:"self,omitempty"`
}

// Effect is a named lighting program the service can activate.
// Effects are constructed only by decoding server responses and are never
// mutated; a cache refresh replaces them wholesale.
type Effect struct {
	ID         string     `json:"id"`
	Type       string     `json:"type"`
	Links      Links      `json:"links"`
	Attributes Attributes `json:"attributes"`
}

// Name returns the effect's display name.
func (e Effect) Name() string {
	return e.Attributes.Name
}

// EffectPreset is a saved parameter configuration scoped to one effect.
// Preset IDs are unique only within their parent effect.
type EffectPreset struct {
	ID   string `json:"id"`
	Type string `json:"type"`
}

// Layout is a named device arrangement selectable as a unit. The display
// name doubles as the identifier.
type Layout struct {
	ID   string `json:"id"`
	Type string `json:"type"`
}

// CanvasState are the canvas-wide attributes reported with the current
// state: the active effect's name, whether output is enabled, and the
// global brightness (0-100).
type CanvasState struct {
	Name             string `json:"name,omitempty"`
	Enabled          bool   `json:"enabled"`
	GlobalBrightness int    `json:"global_brightness"`
}

// CurrentState wraps the presently active effect reference together with
// the canvas-wide state.
type CurrentState struct {
	ID         string      `json:"id"`
	Type       string      `json:"type"`
	Links      Links       `json:"links"`
	Attributes CanvasState `json:"attributes"`
}

// APIErrorDetail is one entry of the error envelope the service returns
// alongside non-OK responses.
type APIErrorDetail struct {
	Code   string `json:"code,omitempty"`
	Title  string `json:"title,omitempty"`
	Detail string `json:"detail,omitempty"`
}

// Message returns the most specific text available for the entry.
func (d APIErrorDetail) Message() string {
	if d.Detail != "" {
		return d.Detail
	}
	return d.Title
}

// response is the uniform envelope every endpoint returns. Data is kept
// raw and decoded by the caller into the expected resource shape.
type response struct {
	APIVersion string                     `json:"api_version"`
	ID         int                        `json:"id"`
	Method     string                     `json:"method"`
	Params     map[string]json.RawMessage `json:"params,omitempty"`
	Status     string                     `json:"status"`
	Errors     []APIErrorDetail           `json:"errors,omitempty"`
	Data       json.RawMessage            `json:"data,omitempty"`
}

// effectList is the data payload of the effect listing endpoint.
type effectList struct {
	Items []Effect `json:"items"`
}

// layoutList is the data payload of the layout listing endpoint.
type layoutList struct {
	Items []Layout `json:"items"`
}

// presetList is the data payload of the per-effect preset listing endpoint.
type presetList struct {
	ID    string         `json:"id"`
	Items []EffectPreset `json:"items"`
}

// currentLayoutHolder wraps the current layout endpoint's payload.
type currentLayoutHolder struct {
	CurrentLayout *Layout `json:"current_layout"`
}
