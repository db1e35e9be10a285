package scene

import "fmt"

// Mode selects the analysis perspective.
type Mode string

const (
	ModeDirector Mode = "director"
	ModeWriter   Mode = "writer"
)

// ParseMode validates a user-supplied mode string. Anything other than the
// two known modes is rejected rather than silently mapped.
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case ModeDirector, ModeWriter:
		return Mode(s), nil
	}
	return "", fmt.Errorf("unknown mode %q", s)
}

// Request is one scene submission. It lives for a single round trip and is
// never persisted.
type Request struct {
	Text string
	Mode Mode
}

// PaletteColor is one entry of the cinematic color palette.
type PaletteColor struct {
	Name  string `json:"name"`
	Hex   string `json:"hex"`
	Usage string `json:"usage"`
}

// Shot is one entry of the production shot list.
type Shot struct {
	ShotNumber     int    `json:"shot_number"`
	ShotType       string `json:"shot_type"`
	CameraMovement string `json:"camera_movement"`
	Framing        string `json:"framing"`
	Lighting       string `json:"lighting"`
	Purpose        string `json:"purpose"`
}

// WriterNotes carries the writer-oriented portion of the analysis.
type WriterNotes struct {
	EmotionalBeat       string   `json:"emotional_beat"`
	Subtext             string   `json:"subtext"`
	DialogueSuggestions []string `json:"dialogue_suggestions"`
}

// Analysis is the structured result the model returns for one scene.
type Analysis struct {
	Mode              string         `json:"mode"`
	Emotion           string         `json:"emotion"`
	Genre             string         `json:"genre"`
	Tone              string         `json:"tone"`
	Intensity         int            `json:"intensity"`
	NarrativePurpose  string         `json:"narrative_purpose"`
	VisualMood        string         `json:"visual_mood"`
	CameraStyle       string         `json:"camera_style"`
	ColorPalette      []PaletteColor `json:"color_palette"`
	ShotList          []Shot         `json:"shot_list"`
	StoryboardPrompts []string       `json:"storyboard_prompts"`
	WriterNotes       WriterNotes    `json:"writer_notes"`
	Confidence        float64        `json:"confidence"`
}

// BatchRow is the per-scene summary produced in batch mode. A failed scene
// keeps its row with the error message instead of aborting the whole script.
type BatchRow struct {
	SceneIndex int     `json:"scene_index"`
	Emotion    string  `json:"emotion"`
	Genre      string  `json:"genre"`
	Tone       string  `json:"tone"`
	Intensity  int     `json:"intensity"`
	Confidence float64 `json:"confidence"`
	Error      string  `json:"error,omitempty"`
}
