package main

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	currentID  string
	enabled    bool
	brightness int
	layout     string
}

func (f *fixture) ok(w http.ResponseWriter, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"api_version": "1.0",
		"status":      "ok",
		"data":        data,
	})
}

func (f *fixture) notFound(w http.ResponseWriter, detail string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusNotFound)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"api_version": "1.0",
		"status":      "error",
		"errors": []map[string]string{
			{"code": "not_found", "title": "Not Found", "detail": detail},
		},
	})
}

func (f *fixture) effect(id, name string) map[string]interface{} {
	return map[string]interface{}{
		"id":   id,
		"type": "lighting",
		"attributes": map[string]interface{}{
			"name":      name,
			"publisher": "WhirlwindFX",
		},
	}
}

func (f *fixture) effects() []map[string]interface{} {
	return []map[string]interface{}{
		f.effect("effect-1", "Rainbow Wave"),
		f.effect("effect-2", "Solar Flare"),
	}
}

func (f *fixture) handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /api/v1/lighting", func(w http.ResponseWriter, r *http.Request) {
		name := ""
		for _, e := range f.effects() {
			if e["id"] == f.currentID {
				name = e["attributes"].(map[string]interface{})["name"].(string)
			}
		}
		f.ok(w, map[string]interface{}{
			"id":   f.currentID,
			"type": "lighting",
			"attributes": map[string]interface{}{
				"name":              name,
				"enabled":           f.enabled,
				"global_brightness": f.brightness,
			},
		})
	})

	mux.HandleFunc("GET /api/v1/lighting/effects", func(w http.ResponseWriter, r *http.Request) {
		f.ok(w, map[string]interface{}{"items": f.effects()})
	})

	mux.HandleFunc("GET /api/v1/lighting/effects/{id}", func(w http.ResponseWriter, r *http.Request) {
		for _, e := range f.effects() {
			if e["id"] == r.PathValue("id") {
				f.ok(w, e)
				return
			}
		}
		f.notFound(w, "effect not found")
	})

	mux.HandleFunc("POST /api/v1/lighting/effects/{id}/apply", func(w http.ResponseWriter, r *http.Request) {
		f.currentID = r.PathValue("id")
		f.ok(w, nil)
	})

	mux.HandleFunc("GET /api/v1/lighting/effects/{id}/presets", func(w http.ResponseWriter, r *http.Request) {
		f.ok(w, map[string]interface{}{
			"id": r.PathValue("id"),
			"items": []map[string]string{
				{"id": "Calm Preset", "type": "preset"},
			},
		})
	})

	mux.HandleFunc("PATCH /api/v1/lighting/effects/{id}/presets", func(w http.ResponseWriter, r *http.Request) {
		f.ok(w, nil)
	})

	mux.HandleFunc("PATCH /api/v1/lighting/global_brightness", func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			GlobalBrightness int `json:"global_brightness"`
		}
		json.NewDecoder(r.Body).Decode(&body)
		f.brightness = body.GlobalBrightness
		f.ok(w, nil)
	})

	mux.HandleFunc("PATCH /api/v1/lighting/enabled", func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Enabled bool `json:"enabled"`
		}
		json.NewDecoder(r.Body).Decode(&body)
		f.enabled = body.Enabled
		f.ok(w, nil)
	})

	mux.HandleFunc("GET /api/v1/scenes/layouts", func(w http.ResponseWriter, r *http.Request) {
		f.ok(w, map[string]interface{}{
			"items": []map[string]string{
				{"id": "Default", "type": "layout"},
				{"id": "Battlestation", "type": "layout"},
			},
		})
	})

	mux.HandleFunc("GET /api/v1/scenes/current_layout", func(w http.ResponseWriter, r *http.Request) {
		f.ok(w, map[string]interface{}{
			"current_layout": map[string]string{"id": f.layout, "type": "layout"},
		})
	})

	mux.HandleFunc("PATCH /api/v1/scenes/current_layout", func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Layout string `json:"layout"`
		}
		json.NewDecoder(r.Body).Decode(&body)
		f.layout = body.Layout
		f.ok(w, map[string]interface{}{
			"current_layout": map[string]string{"id": body.Layout, "type": "layout"},
		})
	})

	return mux
}

// runCommand executes the CLI against a fake service and returns stdout.
func runCommand(t *testing.T, f *fixture, args ...string) (string, error) {
	t.Helper()
	server := httptest.NewServer(f.handler())
	t.Cleanup(server.Close)

	u, err := url.Parse(server.URL)
	require.NoError(t, err)

	var out bytes.Buffer
	cmd := newRootCmd(&out)
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append(args, "--host", u.Hostname(), "--port", u.Port(), "--no-color"))
	err = cmd.Execute()
	return out.String(), err
}

func newFixture() *fixture {
	return &fixture{
		currentID:  "effect-1",
		enabled:    true,
		brightness: 50,
		layout:     "Default",
	}
}

func TestEffectList(t *testing.T) {
	out, err := runCommand(t, newFixture(), "effect", "list")
	require.NoError(t, err)

	assert.Contains(t, out, "Rainbow Wave")
	assert.Contains(t, out, "Solar Flare")
	assert.Contains(t, out, "Total effects: 2")
}

func TestEffectList_Filter(t *testing.T) {
	out, err := runCommand(t, newFixture(), "effect", "list", "--filter", "solar")
	require.NoError(t, err)

	assert.Contains(t, out, "Solar Flare")
	assert.NotContains(t, out, "Rainbow Wave")
	assert.Contains(t, out, "Total effects: 1")
}

func TestEffectList_SortReverse(t *testing.T) {
	out, err := runCommand(t, newFixture(), "effect", "list", "--reverse")
	require.NoError(t, err)

	solar := bytes.Index([]byte(out), []byte("Solar Flare"))
	rainbow := bytes.Index([]byte(out), []byte("Rainbow Wave"))
	require.GreaterOrEqual(t, solar, 0)
	require.GreaterOrEqual(t, rainbow, 0)
	assert.Less(t, solar, rainbow, "reverse name order lists Solar Flare first")
}

func TestEffectShow(t *testing.T) {
	out, err := runCommand(t, newFixture(), "effect", "Rainbow Wave")
	require.NoError(t, err)

	assert.Contains(t, out, "effect-1")
	assert.Contains(t, out, "Rainbow Wave")
	assert.Contains(t, out, "WhirlwindFX")
}

func TestEffectShow_UnknownName(t *testing.T) {
	_, err := runCommand(t, newFixture(), "effect", "No Such Effect")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestEffectApply(t *testing.T) {
	f := newFixture()
	out, err := runCommand(t, f, "effect", "apply", "Solar Flare")
	require.NoError(t, err)

	assert.Contains(t, out, "Applied effect: Solar Flare")
	assert.Equal(t, "effect-2", f.currentID)
}

func TestEffectCurrent(t *testing.T) {
	out, err := runCommand(t, newFixture(), "effect", "current")
	require.NoError(t, err)
	assert.Contains(t, out, "Rainbow Wave")
}

func TestEffectNext(t *testing.T) {
	f := newFixture()
	out, err := runCommand(t, f, "effect", "next")
	require.NoError(t, err)

	assert.Contains(t, out, "Applied effect: Solar Flare")
	assert.Equal(t, "effect-2", f.currentID)
}

func TestPresetList(t *testing.T) {
	out, err := runCommand(t, newFixture(), "preset", "list", "Rainbow Wave")
	require.NoError(t, err)
	assert.Contains(t, out, "Calm Preset")
}

func TestLayoutSet(t *testing.T) {
	f := newFixture()
	out, err := runCommand(t, f, "layout", "set", "Battlestation")
	require.NoError(t, err)

	assert.Contains(t, out, "Battlestation")
	assert.Equal(t, "Battlestation", f.layout)
}

func TestCanvasStatus(t *testing.T) {
	out, err := runCommand(t, newFixture(), "canvas", "status")
	require.NoError(t, err)

	assert.Contains(t, out, "Canvas: enabled")
	assert.Contains(t, out, "Brightness: 50")
	assert.Contains(t, out, "Effect: Rainbow Wave")
}

func TestCanvasBrightness(t *testing.T) {
	f := newFixture()
	out, err := runCommand(t, f, "canvas", "brightness", "75")
	require.NoError(t, err)

	assert.Contains(t, out, "Brightness set to: 75")
	assert.Equal(t, 75, f.brightness)

	out, err = runCommand(t, f, "canvas", "brightness")
	require.NoError(t, err)
	assert.Contains(t, out, "Current brightness: 75")
}

func TestCanvasBrightness_RejectsNonInteger(t *testing.T) {
	_, err := runCommand(t, newFixture(), "canvas", "brightness", "bright")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "expected an integer")
}

func TestCanvasToggle(t *testing.T) {
	f := newFixture()
	out, err := runCommand(t, f, "canvas", "toggle")
	require.NoError(t, err)

	assert.Contains(t, out, "Canvas disabled")
	assert.False(t, f.enabled)
}

func TestVersionCommand(t *testing.T) {
	var out bytes.Buffer
	cmd := newRootCmd(&out)
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"version"})
	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), Version)
}
