package scene

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
)

var (
	fenceRe         = regexp.MustCompile("(?i)```(json)?")
	jsonObjectRe    = regexp.MustCompile(`(?s)\{.*\}`)
	trailingCommaRe = regexp.MustCompile(`,(\s*[}\]])`)
	hexColorRe      = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)
	hexShortRe      = regexp.MustCompile(`^#[0-9a-fA-F]{3}$`)
)

// analysisWire mirrors Analysis with pointers on the range-checked numeric
// fields so a missing value is distinguishable from a zero.
type analysisWire struct {
	Mode              string         `json:"mode"`
	Emotion           string         `json:"emotion"`
	Genre             string         `json:"genre"`
	Tone              string         `json:"tone"`
	Intensity         *int           `json:"intensity"`
	NarrativePurpose  string         `json:"narrative_purpose"`
	VisualMood        string         `json:"visual_mood"`
	CameraStyle       string         `json:"camera_style"`
	ColorPalette      []PaletteColor `json:"color_palette"`
	ShotList          []Shot         `json:"shot_list"`
	StoryboardPrompts []string       `json:"storyboard_prompts"`
	WriterNotes       WriterNotes    `json:"writer_notes"`
	Confidence        *float64       `json:"confidence"`
}

// ParseAnalysis interprets a raw model reply as an Analysis. Extraction is
// forgiving about the packaging (code fences, surrounding prose, trailing
// commas); validation is not: out-of-range or missing values fail with a
// ParseError instead of being clamped or defaulted. The raw reply rides
// along on the error for user inspection.
func ParseAnalysis(raw string) (*Analysis, error) {
	blob, err := extractJSON(raw)
	if err != nil {
		return nil, &ParseError{Reason: "no JSON object in reply", Raw: raw, Err: err}
	}

	var w analysisWire
	if err := json.Unmarshal(blob, &w); err != nil {
		return nil, &ParseError{Reason: "malformed analysis object", Raw: raw, Err: err}
	}

	a, err := w.validate()
	if err != nil {
		return nil, &ParseError{Reason: err.Error(), Raw: raw}
	}
	return a, nil
}

// extractJSON recovers a JSON object from replies that wrap it in code
// fences or extra text. Tries the cleaned text directly, then the first
// {...} block, then the same block with trailing commas stripped.
func extractJSON(raw string) ([]byte, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, fmt.Errorf("empty reply")
	}
	text := fenceRe.ReplaceAllString(raw, "")
	text = strings.Trim(text, "` \n\t")

	if json.Valid([]byte(text)) && strings.HasPrefix(strings.TrimSpace(text), "{") {
		return []byte(text), nil
	}

	blob := jsonObjectRe.FindString(text)
	if blob == "" {
		return nil, fmt.Errorf("no object braces found")
	}
	if json.Valid([]byte(blob)) {
		return []byte(blob), nil
	}

	fixed := trailingCommaRe.ReplaceAllString(blob, "$1")
	if json.Valid([]byte(fixed)) {
		return []byte(fixed), nil
	}
	return nil, fmt.Errorf("object is not valid JSON")
}

func (w *analysisWire) validate() (*Analysis, error) {
	for _, f := range []struct{ name, value string }{
		{"emotion", w.Emotion},
		{"genre", w.Genre},
		{"tone", w.Tone},
		{"narrative_purpose", w.NarrativePurpose},
		{"visual_mood", w.VisualMood},
		{"camera_style", w.CameraStyle},
	} {
		if strings.TrimSpace(f.value) == "" {
			return nil, fmt.Errorf("missing required field %q", f.name)
		}
	}
	if w.Intensity == nil {
		return nil, fmt.Errorf("missing required field %q", "intensity")
	}
	if *w.Intensity < 1 || *w.Intensity > 10 {
		return nil, fmt.Errorf("intensity %d out of range [1,10]", *w.Intensity)
	}
	if w.Confidence == nil {
		return nil, fmt.Errorf("missing required field %q", "confidence")
	}
	if *w.Confidence < 0 || *w.Confidence > 1 {
		return nil, fmt.Errorf("confidence %v out of range [0,1]", *w.Confidence)
	}
	if len(w.ColorPalette) == 0 {
		return nil, fmt.Errorf("missing required field %q", "color_palette")
	}
	if len(w.ShotList) == 0 {
		return nil, fmt.Errorf("missing required field %q", "shot_list")
	}

	palette := make([]PaletteColor, len(w.ColorPalette))
	for i, p := range w.ColorPalette {
		hex, err := normalizeHex(p.Hex)
		if err != nil {
			return nil, fmt.Errorf("color_palette[%d]: %w", i, err)
		}
		p.Hex = hex
		palette[i] = p
	}

	return &Analysis{
		Mode:              w.Mode,
		Emotion:           w.Emotion,
		Genre:             w.Genre,
		Tone:              w.Tone,
		Intensity:         *w.Intensity,
		NarrativePurpose:  w.NarrativePurpose,
		VisualMood:        w.VisualMood,
		CameraStyle:       w.CameraStyle,
		ColorPalette:      palette,
		ShotList:          w.ShotList,
		StoryboardPrompts: w.StoryboardPrompts,
		WriterNotes:       w.WriterNotes,
		Confidence:        *w.Confidence,
	}, nil
}

// normalizeHex accepts #RRGGBB, bare RRGGBB, and shorthand #RGB (expanded
// losslessly). Anything else is rejected.
func normalizeHex(h string) (string, error) {
	h = strings.TrimSpace(h)
	if h == "" {
		return "", fmt.Errorf("empty hex color")
	}
	if !strings.HasPrefix(h, "#") {
		h = "#" + h
	}
	if hexShortRe.MatchString(h) {
		var b strings.Builder
		b.WriteByte('#')
		for _, c := range h[1:] {
			b.WriteRune(c)
			b.WriteRune(c)
		}
		h = b.String()
	}
	if !hexColorRe.MatchString(h) {
		return "", fmt.Errorf("invalid hex color %q", h)
	}
	return h, nil
}
