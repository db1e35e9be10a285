package scene

import (
	"regexp"
	"strings"
)

const (
	// minScriptLen is the shortest script worth splitting at all.
	minScriptLen = 30
	// minSceneLen filters heading fragments and stray slug lines out of the
	// split result.
	minSceneLen = 60
)

var sceneHeadingRe = regexp.MustCompile(`(?m)^(?:INT\.|EXT\.|INT/EXT\.|I/E\.)`)

// SplitScript breaks a screenplay into scenes on INT./EXT. style headings.
// Scripts without headings come back as a single scene; scripts shorter than
// minScriptLen yield nothing.
func SplitScript(script string) []string {
	if len(strings.TrimSpace(script)) < minScriptLen {
		return nil
	}

	t := strings.ReplaceAll(script, "\r\n", "\n")
	t = strings.ReplaceAll(t, "\r", "\n")

	locs := sceneHeadingRe.FindAllStringIndex(t, -1)
	if len(locs) == 0 {
		return []string{strings.TrimSpace(t)}
	}

	// Cut at each heading, keeping any preamble before the first one.
	var parts []string
	prev := 0
	for _, loc := range locs {
		if loc[0] > prev {
			parts = append(parts, t[prev:loc[0]])
		}
		prev = loc[0]
	}
	parts = append(parts, t[prev:])

	var scenes []string
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if len(p) >= minSceneLen {
			scenes = append(scenes, p)
		}
	}
	if len(scenes) == 0 {
		return []string{strings.TrimSpace(t)}
	}
	return scenes
}
