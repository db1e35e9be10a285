package scene

import (
	"fmt"
	"strings"
)

// SystemPrompt pins the model to structured output. Sent as the system
// message on every completion call.
const SystemPrompt = "You return strict JSON only."

// schemaContract restates the target JSON shape as a textual contract. The
// field names here are the ones the response interpreter requires, so the
// two must stay in sync.
const schemaContract = `{
  "mode": "director|writer",
  "emotion": "string",
  "genre": "string",
  "tone": "string",
  "intensity": "integer 1-10",
  "narrative_purpose": "string",
  "visual_mood": "string",
  "camera_style": "string",
  "color_palette": [
    {"name": "string", "hex": "#RRGGBB", "usage": "string"}
  ],
  "shot_list": [
    {
      "shot_number": "int",
      "shot_type": "string (Wide/Medium/Close-up/OTS/POV etc.)",
      "camera_movement": "string",
      "framing": "string",
      "lighting": "string",
      "purpose": "string"
    }
  ],
  "storyboard_prompts": ["string", "string", "string"],
  "writer_notes": {
    "emotional_beat": "string",
    "subtext": "string",
    "dialogue_suggestions": ["string"]
  },
  "confidence": "float 0-1"
}`

// BuildPrompt assembles the instruction string for one scene. It is
// deterministic for identical inputs and performs no I/O. Blank scene text
// is refused so the caller never reaches the network with an empty request.
func BuildPrompt(sceneText string, mode Mode) (string, error) {
	if strings.TrimSpace(sceneText) == "" {
		return "", ErrEmptyScene
	}
	if mode != ModeWriter {
		mode = ModeDirector
	}

	shotReq := "Provide 5 to 8 shots in shot_list."
	writerReq := "Include writer_notes but keep it brief."
	if mode == ModeWriter {
		shotReq = "Provide 3 to 5 shots in shot_list."
		writerReq = "Include writer_notes with rich content."
	}

	var b strings.Builder
	b.WriteString("You are SceneSense AI. Analyze the screenplay scene and return ONLY valid JSON.\n")
	b.WriteString("No markdown, no code fences, no extra commentary.\n\n")
	fmt.Fprintf(&b, "Mode: %s\n\n", mode)
	b.WriteString("Required behavior:\n")
	b.WriteString("- emotion: concise (e.g., tense, intimate, hopeful, eerie)\n")
	b.WriteString("- narrative_purpose: one strong sentence\n")
	b.WriteString("- visual_mood: lighting + atmosphere in one sentence\n")
	b.WriteString("- camera_style: movement/framing guidance in one sentence\n")
	b.WriteString("- genre, tone, intensity(1-10) must be present\n")
	b.WriteString("- color_palette: exactly 3 items with valid HEX\n")
	b.WriteString("- storyboard_prompts: exactly 3 cinematic prompts\n")
	fmt.Fprintf(&b, "- %s\n", shotReq)
	b.WriteString("- confidence: 0-1\n")
	fmt.Fprintf(&b, "- %s\n\n", writerReq)
	b.WriteString("JSON schema (types guidance):\n")
	b.WriteString(schemaContract)
	b.WriteString("\n\nScene:\n")
	b.WriteString(sceneText)

	return b.String(), nil
}
