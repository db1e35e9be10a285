package scene

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
)

// maxBatchScenes caps how many scenes one script upload may analyze.
const maxBatchScenes = 12

// Completer performs one blocking completion call and returns the raw reply
// text. internal/groq provides the real implementation; tests stub it.
type Completer interface {
	Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}

// Service runs the analyze pipeline: validate input, build the prompt, call
// the completion endpoint once, interpret the reply. Each call is an
// independent, stateless attempt.
type Service struct {
	completer Completer
}

func NewService(c Completer) *Service {
	return &Service{completer: c}
}

// Analyze handles one scene submission. The prompt builder rejects blank
// text before any network traffic happens.
func (s *Service) Analyze(ctx context.Context, req Request) (*Analysis, error) {
	prompt, err := BuildPrompt(req.Text, req.Mode)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	raw, err := s.completer.Complete(ctx, SystemPrompt, prompt)
	if err != nil {
		return nil, err
	}

	analysis, err := ParseAnalysis(raw)
	if err != nil {
		return nil, err
	}

	log.Debug().
		Str("mode", string(req.Mode)).
		Dur("elapsed", time.Since(start)).
		Int("scene_bytes", len(req.Text)).
		Float64("confidence", analysis.Confidence).
		Msg("scene analyzed")
	return analysis, nil
}

// AnalyzeScript splits a script into scenes and analyzes each one in order.
// A scene that fails keeps its summary row with the error recorded, so one
// bad reply does not lose the rest of the batch.
func (s *Service) AnalyzeScript(ctx context.Context, script string, mode Mode) []BatchRow {
	scenes := SplitScript(script)
	if len(scenes) > maxBatchScenes {
		scenes = scenes[:maxBatchScenes]
	}

	rows := make([]BatchRow, 0, len(scenes))
	for i, sc := range scenes {
		row := BatchRow{SceneIndex: i + 1}

		analysis, err := s.Analyze(ctx, Request{Text: strings.TrimSpace(sc), Mode: mode})
		if err != nil {
			if ctx.Err() != nil {
				row.Error = "analysis canceled"
				rows = append(rows, row)
				return rows
			}
			row.Error = err.Error()
			rows = append(rows, row)
			continue
		}

		row.Emotion = analysis.Emotion
		row.Genre = analysis.Genre
		row.Tone = analysis.Tone
		row.Intensity = analysis.Intensity
		row.Confidence = analysis.Confidence
		rows = append(rows, row)
	}
	return rows
}
