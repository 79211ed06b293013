package rooms

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"path/filepath"
	"strings"

	"roomstager/internal/catalog"
	"roomstager/internal/generate"
	"roomstager/internal/media"
	"roomstager/internal/prompt"
	"roomstager/internal/vision"
)

// Generator abstracts the provider fallback chain for the handlers.
type Generator interface {
	Generate(ctx context.Context, req generate.Request) (generate.Result, error)
}

// Handler bundles dependencies for the room staging endpoints.
type Handler struct {
	Catalog   catalog.Store
	Analyzer  vision.Analyzer
	Generator Generator
	Saver     media.Saver
}

type upload struct {
	data     []byte
	filename string
	mimeType string
}

// Items handles GET /api/items?room=&range=. A miss returns an empty list,
// never an error.
func (h Handler) Items(w http.ResponseWriter, r *http.Request) {
	roomType := strings.TrimSpace(r.URL.Query().Get("room"))
	costRange := canonicalCostRange(r.URL.Query().Get("range"))

	items, err := h.Catalog.ItemsFor(r.Context(), roomType, costRange)
	if err != nil {
		log.Printf("rooms: catalog lookup failed: %v", err)
		items = []catalog.Item{}
	}

	writeJSON(w, http.StatusOK, items)
}

// Analyze handles POST /api/rooms/analyze. The response always carries a
// description: the analyzer's text or the fixed fallback.
func (h Handler) Analyze(w http.ResponseWriter, r *http.Request) {
	up, err := parseUpload(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	description := vision.Describe(r.Context(), h.Analyzer, up.data, up.mimeType)

	writeJSON(w, http.StatusOK, map[string]any{
		"success":     true,
		"description": description,
	})
}

// Generate handles POST /api/rooms/generate: catalog lookup, prompt build,
// provider fallback chain, persistence, then the raw image response.
func (h Handler) Generate(w http.ResponseWriter, r *http.Request) {
	roomType, costRange, preference := formFields(r)

	up, err := parseUpload(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	names := h.furnitureNames(r.Context(), roomType, costRange)

	// Image-conditioned providers see the photo directly, so the prompt
	// skips the room description here.
	generationPrompt := prompt.Build("", roomType, costRange, preference, names)
	log.Printf("rooms: generation prompt (%d chars): %s", len(generationPrompt), generationPrompt)

	result, err := h.Generator.Generate(r.Context(), generate.Request{
		Prompt:   generationPrompt,
		RoomType: roomType,
		Image:    up.data,
	})
	if err != nil {
		if errors.Is(err, generate.ErrExhausted) {
			writeError(w, http.StatusServiceUnavailable,
				"Image generation failed. Please try again in a few minutes. The free service may be busy.")
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	outputName := fmt.Sprintf("generated_%s.png", baseName(up.filename))
	saved, err := h.Saver.Save(r.Context(), media.SaveInput{
		Filename:    outputName,
		ContentType: "image/png",
		Body:        bytes.NewReader(result.Image),
		Size:        int64(len(result.Image)),
	})
	if err != nil {
		log.Printf("rooms: persist generated image: %v", err)
		writeError(w, http.StatusInternalServerError, fmt.Sprintf("could not store image: %v", err))
		return
	}
	log.Printf("rooms: image saved to %s (provider %s)", saved.Key, result.Provider)

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("X-Provider", result.Provider)
	_, _ = w.Write(result.Image)
}

// Preview handles POST /api/rooms/preview: analysis plus a deterministic
// Pollinations link, without invoking the fallback chain.
func (h Handler) Preview(w http.ResponseWriter, r *http.Request) {
	roomType, costRange, preference := formFields(r)

	up, err := parseUpload(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	description := vision.Describe(r.Context(), h.Analyzer, up.data, up.mimeType)
	names := h.furnitureNames(r.Context(), roomType, costRange)
	generationPrompt := prompt.Build(description, roomType, costRange, preference, names)

	writeJSON(w, http.StatusOK, map[string]any{
		"success":           true,
		"room_analysis":     description,
		"furniture_items":   names,
		"generation_prompt": generationPrompt,
		"image_url":         generate.PreviewURL(generationPrompt, 1024, 1024),
	})
}

// furnitureNames runs the catalog lookup; failures degrade to an empty list
// so the prompt builder falls back to its defaults.
func (h Handler) furnitureNames(ctx context.Context, roomType, costRange string) []string {
	names, err := h.Catalog.NamesFor(ctx, roomType, costRange, catalog.MaxPromptItems)
	if err != nil {
		log.Printf("rooms: furniture lookup failed: %v", err)
		return []string{}
	}
	return names
}

func formFields(r *http.Request) (roomType, costRange, preference string) {
	roomType = strings.TrimSpace(r.FormValue("room_type"))
	if roomType == "" {
		roomType = "Living Room"
	}
	costRange = canonicalCostRange(r.FormValue("cost_range"))
	if costRange == "" {
		costRange = "Medium"
	}
	preference = r.FormValue("prompt")
	return roomType, costRange, preference
}

// canonicalCostRange normalizes the budget tier to title case so lookups
// stay exact-match against canonical seed data.
func canonicalCostRange(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "low":
		return "Low"
	case "medium":
		return "Medium"
	case "high":
		return "High"
	default:
		return strings.TrimSpace(raw)
	}
}

func parseUpload(r *http.Request) (upload, error) {
	if err := r.ParseMultipartForm(vision.MaxImageBytes + (1 << 20)); err != nil {
		return upload{}, fmt.Errorf("could not parse form: %v", err)
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		return upload{}, errors.New("no image uploaded")
	}
	defer file.Close()

	if strings.TrimSpace(header.Filename) == "" {
		return upload{}, errors.New("no file selected")
	}

	data, err := io.ReadAll(io.LimitReader(file, vision.MaxImageBytes+1))
	if err != nil {
		return upload{}, errors.New("could not read file")
	}
	if len(data) == 0 {
		return upload{}, errors.New("empty file")
	}
	if len(data) > vision.MaxImageBytes {
		return upload{}, fmt.Errorf("file exceeds %d bytes", vision.MaxImageBytes)
	}

	return upload{
		data:     data,
		filename: header.Filename,
		mimeType: header.Header.Get("Content-Type"),
	}, nil
}

func baseName(filename string) string {
	name := filepath.Base(filename)
	return strings.TrimSuffix(name, filepath.Ext(name))
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Printf("rooms: encode response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
