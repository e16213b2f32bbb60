package signalrgb

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"testing"
)

// fakeService is an in-memory stand-in for a SignalRGB instance, speaking
// the same envelope format over httptest. Every request is recorded so
// tests can assert which calls reached the wire.
type fakeService struct {
	mu            sync.Mutex
	effects       []Effect
	presets       map[string][]EffectPreset
	layouts       []Layout
	currentLayout string
	currentID     string
	enabled       bool
	brightness    int
	requests      []string
}

func defaultFixture() *fakeService {
	return &fakeService{
		effects: []Effect{
			{
				ID:   "effect-1",
				Type: "lighting",
				Links: Links{
					Apply: "/api/v1/lighting/effects/effect-1/apply",
					Self:  "/api/v1/lighting/effects/effect-1",
				},
				Attributes: Attributes{
					Name:      "Rainbow Wave",
					Publisher: "WhirlwindFX",
					Parameters: map[string]json.RawMessage{
						"speed":  json.RawMessage(`50`),
						"colors": json.RawMessage(`["#ff0000","#00ff00"]`),
					},
					UsesAudio: false,
				},
			},
			{
				// No apply link: exercises the canonical-path fallback.
				ID:   "effect-2",
				Type: "lighting",
				Attributes: Attributes{
					Name:        "Solar Flare",
					Description: "A burning sun",
					UsesAudio:   true,
				},
			},
			{
				ID:   "effect-3",
				Type: "lighting",
				Links: Links{
					Apply: "/api/v1/lighting/effects/effect-3/apply",
				},
				Attributes: Attributes{Name: "Electric Space"},
			},
		},
		presets: map[string][]EffectPreset{
			"effect-1": {
				{ID: "Calm Preset", Type: "preset"},
				{ID: "Party Preset", Type: "preset"},
			},
		},
		layouts: []Layout{
			{ID: "Default", Type: "layout"},
			{ID: "Battlestation", Type: "layout"},
		},
		currentLayout: "Default",
		currentID:     "effect-1",
		enabled:       true,
		brightness:    50,
	}
}

func (f *fakeService) record(r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.requests = append(f.requests, r.Method+" "+r.URL.Path)
}

// requestCount returns how many recorded requests start with the given
// "METHOD /path" prefix.
func (f *fakeService) requestCount(prefix string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	count := 0
	for _, req := range f.requests {
		if strings.HasPrefix(req, prefix) {
			count++
		}
	}
	return count
}

func (f *fakeService) findEffect(id string) (Effect, bool) {
	for _, effect := range f.effects {
		if effect.ID == id {
			return effect, true
		}
	}
	return Effect{}, false
}

func (f *fakeService) currentState() CurrentState {
	state := CurrentState{
		ID:   f.currentID,
		Type: "lighting",
		Attributes: CanvasState{
			Enabled:          f.enabled,
			GlobalBrightness: f.brightness,
		},
	}
	if effect, ok := f.findEffect(f.currentID); ok {
		state.Attributes.Name = effect.Name()
		state.Links = effect.Links
	}
	return state
}

func (f *fakeService) handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /api/v1/lighting", func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		state := f.currentState()
		f.mu.Unlock()
		writeOK(w, state)
	})

	mux.HandleFunc("GET /api/v1/lighting/effects", func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		items := append([]Effect(nil), f.effects...)
		f.mu.Unlock()
		writeOK(w, map[string]interface{}{"items": items})
	})

	mux.HandleFunc("GET /api/v1/lighting/effects/{id}", func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		effect, ok := f.findEffect(r.PathValue("id"))
		f.mu.Unlock()
		if !ok {
			writeNotFound(w, "effect not found")
			return
		}
		writeOK(w, effect)
	})

	mux.HandleFunc("POST /api/v1/lighting/effects/{id}/apply", func(w http.ResponseWriter, r *http.Request) {
		id := r.PathValue("id")
		f.mu.Lock()
		_, ok := f.findEffect(id)
		if ok {
			f.currentID = id
		}
		f.mu.Unlock()
		if !ok {
			writeNotFound(w, "effect not found")
			return
		}
		writeOK(w, nil)
	})

	mux.HandleFunc("GET /api/v1/lighting/effects/{id}/presets", func(w http.ResponseWriter, r *http.Request) {
		id := r.PathValue("id")
		f.mu.Lock()
		_, ok := f.findEffect(id)
		presets := f.presets[id]
		f.mu.Unlock()
		if !ok {
			writeNotFound(w, "effect not found")
			return
		}
		writeOK(w, map[string]interface{}{"id": id, "items": presets})
	})

	mux.HandleFunc("PATCH /api/v1/lighting/effects/{id}/presets", func(w http.ResponseWriter, r *http.Request) {
		id := r.PathValue("id")
		var body struct {
			Preset string `json:"preset"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		f.mu.Lock()
		found := false
		for _, preset := range f.presets[id] {
			if preset.ID == body.Preset {
				found = true
				break
			}
		}
		f.mu.Unlock()
		if !found {
			writeNotFound(w, "preset not found")
			return
		}
		writeOK(w, EffectPreset{ID: body.Preset, Type: "preset"})
	})

	mux.HandleFunc("PATCH /api/v1/lighting/global_brightness", func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			GlobalBrightness int `json:"global_brightness"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		f.mu.Lock()
		f.brightness = body.GlobalBrightness
		f.mu.Unlock()
		writeOK(w, nil)
	})

	mux.HandleFunc("PATCH /api/v1/lighting/enabled", func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Enabled bool `json:"enabled"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		f.mu.Lock()
		f.enabled = body.Enabled
		f.mu.Unlock()
		writeOK(w, nil)
	})

	mux.HandleFunc("GET /api/v1/scenes/layouts", func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		items := append([]Layout(nil), f.layouts...)
		f.mu.Unlock()
		writeOK(w, map[string]interface{}{"items": items})
	})

	mux.HandleFunc("GET /api/v1/scenes/current_layout", func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		current := f.currentLayout
		f.mu.Unlock()
		writeOK(w, map[string]interface{}{
			"current_layout": Layout{ID: current, Type: "layout"},
		})
	})

	mux.HandleFunc("PATCH /api/v1/scenes/current_layout", func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Layout string `json:"layout"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		f.mu.Lock()
		found := false
		for _, layout := range f.layouts {
			if layout.ID == body.Layout {
				found = true
				f.currentLayout = body.Layout
				break
			}
		}
		f.mu.Unlock()
		if !found {
			writeNotFound(w, "layout not found")
			return
		}
		writeOK(w, map[string]interface{}{
			"current_layout": Layout{ID: body.Layout, Type: "layout"},
		})
	})

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		f.record(r)
		mux.ServeHTTP(w, r)
	})
}

// start serves the fake and returns a Config pointing at it.
func (f *fakeService) start(t *testing.T) *Config {
	t.Helper()
	server := httptest.NewServer(f.handler())
	t.Cleanup(server.Close)
	return configFor(t, server.URL)
}

func configFor(t *testing.T, serverURL string) *Config {
	t.Helper()
	u, err := url.Parse(serverURL)
	if err != nil {
		t.Fatalf("failed to parse server URL: %v", err)
	}
	port, err := strconv.Atoi(u.Port())
	if err != nil {
		t.Fatalf("failed to parse server port: %v", err)
	}
	return DefaultConfig().WithHost(u.Hostname()).WithPort(port)
}

func writeOK(w http.ResponseWriter, data interface{}) {
	writeEnvelope(w, http.StatusOK, map[string]interface{}{
		"api_version": "1.0",
		"id":          1,
		"method":      "GET",
		"status":      "ok",
		"data":        data,
	})
}

func writeNotFound(w http.ResponseWriter, detail string) {
	writeEnvelope(w, http.StatusNotFound, map[string]interface{}{
		"api_version": "1.0",
		"id":          1,
		"method":      "GET",
		"status":      "error",
		"errors": []APIErrorDetail{
			{Code: "not_found", Title: "Not Found", Detail: detail},
		},
	})
}

func writeEnvelope(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
