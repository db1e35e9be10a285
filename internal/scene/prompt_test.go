package scene

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testScene = `INT. ABANDONED WAREHOUSE - NIGHT

The metal door creaks open. Riya steps inside, holding her phone like a torch.`

func TestBuildPrompt_ContainsSceneAndSchema(t *testing.T) {
	prompt, err := BuildPrompt(testScene, ModeDirector)
	require.NoError(t, err)

	assert.Contains(t, prompt, testScene, "scene text must appear verbatim")
	assert.Contains(t, prompt, "Mode: director")

	for _, field := range []string{
		"emotion", "genre", "tone", "intensity",
		"narrative_purpose", "visual_mood", "camera_style",
		"color_palette", "shot_list", "storyboard_prompts",
		"writer_notes", "confidence",
	} {
		assert.Contains(t, prompt, field, "schema field %q must be restated", field)
	}
}

func TestBuildPrompt_EmptySceneRejected(t *testing.T) {
	for _, text := range []string{"", "   ", "\n\t"} {
		_, err := BuildPrompt(text, ModeDirector)
		assert.ErrorIs(t, err, ErrEmptyScene)
	}
}

func TestBuildPrompt_ModeShapesContract(t *testing.T) {
	director, err := BuildPrompt(testScene, ModeDirector)
	require.NoError(t, err)
	writer, err := BuildPrompt(testScene, ModeWriter)
	require.NoError(t, err)

	assert.Contains(t, director, "Provide 5 to 8 shots in shot_list.")
	assert.Contains(t, director, "keep it brief")

	assert.Contains(t, writer, "Mode: writer")
	assert.Contains(t, writer, "Provide 3 to 5 shots in shot_list.")
	assert.Contains(t, writer, "rich content")
}

func TestBuildPrompt_Deterministic(t *testing.T) {
	a, err := BuildPrompt(testScene, ModeWriter)
	require.NoError(t, err)
	b, err := BuildPrompt(testScene, ModeWriter)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestParseMode(t *testing.T) {
	mode, err := ParseMode("director")
	require.NoError(t, err)
	assert.Equal(t, ModeDirector, mode)

	mode, err = ParseMode("writer")
	require.NoError(t, err)
	assert.Equal(t, ModeWriter, mode)

	_, err = ParseMode("producer")
	assert.Error(t, err)

	_, err = ParseMode("")
	assert.Error(t, err)
}
