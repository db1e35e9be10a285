package ui

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
	"github.com/rs/zerolog/log"

	"scenesense/internal/groq"
	"scenesense/internal/scene"
)

const (
	// minSceneChars mirrors the input hint on the form; anything shorter is
	// refused before the model is called.
	minSceneChars = 30
	// maxScriptBytes caps batch uploads.
	maxScriptBytes = 1 << 20
)

type pageData struct {
	Mode      string
	SceneText string

	Error    string
	RawReply string

	Result   *scene.Analysis
	ResultID string
	Elapsed  string

	Batch   []scene.BatchRow
	BatchID string
}

func (ui *UI) handleHome(w http.ResponseWriter, r *http.Request) {
	ui.render(w, http.StatusOK, pageData{Mode: string(scene.ModeDirector)})
}

func (ui *UI) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Failed to parse form", http.StatusBadRequest)
		return
	}

	mode, err := scene.ParseMode(r.FormValue("mode"))
	if err != nil {
		ui.render(w, http.StatusBadRequest, pageData{
			Mode:      string(scene.ModeDirector),
			SceneText: r.FormValue("scene_text"),
			Error:     "Pick either director or writer mode.",
		})
		return
	}

	text := strings.TrimSpace(r.FormValue("scene_text"))
	if len(text) < minSceneChars {
		ui.render(w, http.StatusBadRequest, pageData{
			Mode:      string(mode),
			SceneText: r.FormValue("scene_text"),
			Error:     fmt.Sprintf("Please paste a longer scene (at least %d characters).", minSceneChars),
		})
		return
	}

	start := time.Now()
	analysis, err := ui.svc.Analyze(r.Context(), scene.Request{Text: text, Mode: mode})
	if err != nil {
		msg, raw := userMessage(err)
		ui.render(w, statusFor(err), pageData{
			Mode:      string(mode),
			SceneText: text,
			Error:     msg,
			RawReply:  raw,
		})
		return
	}

	id := uuid.New().String()
	ui.results.Set(id, analysis, cache.DefaultExpiration)

	ui.render(w, http.StatusOK, pageData{
		Mode:      string(mode),
		SceneText: text,
		Result:    analysis,
		ResultID:  id,
		Elapsed:   fmt.Sprintf("%.2fs", time.Since(start).Seconds()),
	})
}

func (ui *UI) handleBatch(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxScriptBytes); err != nil {
		http.Error(w, "Failed to parse upload", http.StatusBadRequest)
		return
	}

	mode := scene.ModeDirector
	if m, err := scene.ParseMode(r.FormValue("mode")); err == nil {
		mode = m
	}

	file, _, err := r.FormFile("script")
	if err != nil {
		ui.render(w, http.StatusBadRequest, pageData{
			Mode:  string(mode),
			Error: "Please upload a .txt script first.",
		})
		return
	}
	defer file.Close()

	script, err := io.ReadAll(io.LimitReader(file, maxScriptBytes))
	if err != nil {
		http.Error(w, "Failed to read upload", http.StatusInternalServerError)
		return
	}

	rows := ui.svc.AnalyzeScript(r.Context(), string(script), mode)
	if len(rows) == 0 {
		ui.render(w, http.StatusBadRequest, pageData{
			Mode:  string(mode),
			Error: "No scenes detected. Ensure the script has content.",
		})
		return
	}

	id := uuid.New().String()
	ui.results.Set(id, rows, cache.DefaultExpiration)

	ui.render(w, http.StatusOK, pageData{
		Mode:    string(mode),
		Batch:   rows,
		BatchID: id,
	})
}

func (ui *UI) handleExportJSON(w http.ResponseWriter, r *http.Request) {
	analysis, ok := ui.lookupAnalysis(chi.URLParam(r, "id"))
	if !ok {
		http.Error(w, "Result not found or expired", http.StatusNotFound)
		return
	}
	out, err := scene.ExportJSON(analysis)
	if err != nil {
		http.Error(w, "Failed to encode analysis", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Disposition", "attachment; filename=scenesense_scene.json")
	w.Write(out)
}

func (ui *UI) handleExportShotList(w http.ResponseWriter, r *http.Request) {
	analysis, ok := ui.lookupAnalysis(chi.URLParam(r, "id"))
	if !ok {
		http.Error(w, "Result not found or expired", http.StatusNotFound)
		return
	}
	out, err := scene.ExportShotListCSV(analysis)
	if err != nil {
		http.Error(w, "Failed to encode shot list", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", "attachment; filename=scenesense_shotlist.csv")
	w.Write(out)
}

func (ui *UI) handleExportBatch(w http.ResponseWriter, r *http.Request) {
	v, found := ui.results.Get(chi.URLParam(r, "id"))
	if !found {
		http.Error(w, "Result not found or expired", http.StatusNotFound)
		return
	}
	rows, ok := v.([]scene.BatchRow)
	if !ok {
		http.Error(w, "Result is not a batch summary", http.StatusNotFound)
		return
	}
	out, err := scene.ExportBatchCSV(rows)
	if err != nil {
		http.Error(w, "Failed to encode batch summary", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", "attachment; filename=scenesense_batch_summary.csv")
	w.Write(out)
}

func handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{
		"status": "ok",
	})
}

func (ui *UI) lookupAnalysis(id string) (*scene.Analysis, bool) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, false
	}
	v, found := ui.results.Get(id)
	if !found {
		return nil, false
	}
	analysis, ok := v.(*scene.Analysis)
	return analysis, ok
}

func (ui *UI) render(w http.ResponseWriter, status int, data pageData) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := ui.tmpl.ExecuteTemplate(w, "index.html", data); err != nil {
		log.Error().Err(err).Msg("template execution failed")
	}
}

// userMessage maps pipeline failures to the actionable text the page shows.
// Parse failures also hand back the raw reply for inspection.
func userMessage(err error) (msg, raw string) {
	var parseErr *scene.ParseError
	if errors.As(err, &parseErr) {
		return "The model returned output that was not valid analysis JSON. " +
			"Try again, reduce the temperature, or use a longer scene.", parseErr.Raw
	}

	var reqErr *groq.RequestError
	if errors.As(err, &reqErr) {
		switch reqErr.Kind {
		case groq.KindAuth:
			return "The completion endpoint rejected the API key. Check GROQ_API_KEY and restart.", ""
		case groq.KindRateLimited:
			return "The completion endpoint is rate limiting requests. Wait a moment and resubmit.", ""
		case groq.KindBadReply:
			return "The completion endpoint returned an empty reply. Try again.", ""
		default:
			return "Could not reach the completion endpoint. Check your connection and resubmit.", ""
		}
	}

	if errors.Is(err, scene.ErrEmptyScene) {
		return "Please paste a scene before analyzing.", ""
	}
	return "Analysis failed: " + err.Error(), ""
}

func statusFor(err error) int {
	if errors.Is(err, scene.ErrEmptyScene) {
		return http.StatusBadRequest
	}
	var reqErr *groq.RequestError
	if errors.As(err, &reqErr) {
		return http.StatusBadGateway
	}
	var parseErr *scene.ParseError
	if errors.As(err, &parseErr) {
		return http.StatusBadGateway
	}
	return http.StatusInternalServerError
}
