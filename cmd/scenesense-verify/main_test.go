package main

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scenesense/internal/scene"
)

type fixedCompleter struct {
	reply string
	err   error
}

func (f fixedCompleter) Complete(context.Context, string, string) (string, error) {
	return f.reply, f.err
}

const goodReply = `{"mode":"director","emotion":"tense","genre":"thriller","tone":"ominous",
"intensity":7,"narrative_purpose":"p","visual_mood":"v","camera_style":"c",
"color_palette":[{"name":"n","hex":"#112233","usage":"u"}],
"shot_list":[{"shot_number":1,"shot_type":"Wide","camera_movement":"Static","framing":"f","lighting":"l","purpose":"p"}],
"storyboard_prompts":["a","b","c"],
"writer_notes":{"emotional_beat":"e","subtext":"s","dialogue_suggestions":[]},
"confidence":0.9}`

func TestVerify_OK(t *testing.T) {
	svc := scene.NewService(fixedCompleter{reply: goodReply})

	rep, err := verify(context.Background(), svc)
	require.NoError(t, err)
	assert.Equal(t, "ok", rep.Status)
	assert.Equal(t, 1, rep.Shots)
	assert.Equal(t, 1, rep.Palette)
	assert.InDelta(t, 0.9, rep.Confidence, 1e-9)
}

func TestVerify_EndpointFailure(t *testing.T) {
	svc := scene.NewService(fixedCompleter{err: errors.New("connection refused")})

	_, err := verify(context.Background(), svc)
	assert.Error(t, err)
}

func TestVerify_NonJSONReply(t *testing.T) {
	svc := scene.NewService(fixedCompleter{reply: "I cannot help with that."})

	_, err := verify(context.Background(), svc)
	var parseErr *scene.ParseError
	assert.ErrorAs(t, err, &parseErr)
}
