package scene

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testScript = `INT. ABANDONED WAREHOUSE - NIGHT

The metal door creaks open. Riya steps inside, holding her phone like a torch.
Water drips from the ceiling. Somewhere deep in the dark, a faint CLICK.

EXT. MARKET STREET - NIGHT

A motorbike roars through crowded stalls. People scream and jump aside.
Ravi grips the handlebar, dodging carts and neon signs.

INT/EXT. MOVING CAR - CONTINUOUS

Headlights sweep across his face as the city blurs past the windows behind him.
`

func TestSplitScript_SplitsOnHeadings(t *testing.T) {
	scenes := SplitScript(testScript)
	require.Len(t, scenes, 3)

	assert.True(t, strings.HasPrefix(scenes[0], "INT. ABANDONED WAREHOUSE"))
	assert.True(t, strings.HasPrefix(scenes[1], "EXT. MARKET STREET"))
	assert.True(t, strings.HasPrefix(scenes[2], "INT/EXT. MOVING CAR"))
}

func TestSplitScript_NoHeadingsReturnsWholeText(t *testing.T) {
	text := "A long paragraph of prose describing a single moment in enough detail to analyze."
	scenes := SplitScript(text)
	require.Len(t, scenes, 1)
	assert.Equal(t, text, scenes[0])
}

func TestSplitScript_TooShortYieldsNothing(t *testing.T) {
	assert.Nil(t, SplitScript(""))
	assert.Nil(t, SplitScript("INT. ROOM"))
	assert.Nil(t, SplitScript("   \n\t  "))
}

func TestSplitScript_DropsFragmentScenes(t *testing.T) {
	// The second heading has almost no body, so only the first survives the
	// minimum-length filter.
	script := "INT. KITCHEN - DAY\n\n" + strings.Repeat("She stirs the pot slowly. ", 4) +
		"\n\nEXT. YARD - DAY\n\nShort."
	scenes := SplitScript(script)
	require.Len(t, scenes, 1)
	assert.True(t, strings.HasPrefix(scenes[0], "INT. KITCHEN"))
}

func TestSplitScript_NormalizesLineEndings(t *testing.T) {
	script := "INT. A - DAY\r\n\r\n" + strings.Repeat("Action beat here. ", 5) +
		"\r\nEXT. B - DAY\r\n\r\n" + strings.Repeat("Another action beat. ", 5)
	scenes := SplitScript(script)
	assert.Len(t, scenes, 2)
}
