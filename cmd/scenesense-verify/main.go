// Command scenesense-verify performs a minimal call against the completion
// endpoint to validate credentials and connectivity before running the UI.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"

	"scenesense/internal/config"
	"scenesense/internal/groq"
	"scenesense/internal/scene"
)

// verifyScene is a fixed known-good input; analysis quality is not graded,
// only that the endpoint answers with a parseable structure.
const verifyScene = `INT. ABANDONED WAREHOUSE - NIGHT

The metal door creaks open. Riya steps inside, holding her phone like a torch.
Water drips from the ceiling. Somewhere deep in the dark — a faint CLICK.

She freezes.
`

type report struct {
	Status     string  `json:"status"`
	Model      string  `json:"model,omitempty"`
	Shots      int     `json:"shots,omitempty"`
	Palette    int     `json:"palette,omitempty"`
	Confidence float64 `json:"confidence,omitempty"`
	Error      string  `json:"error,omitempty"`
}

func main() {
	model := flag.String("model", "", "override the model to verify (defaults to GROQ_MODEL)")
	timeout := flag.Duration("timeout", 60*time.Second, "per-call timeout")
	flag.Parse()

	// .env is optional, same as for the server.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fail(err)
	}
	if *model != "" {
		cfg.Model = *model
	}

	client := groq.NewClient(groq.Options{
		APIKey:  cfg.GroqAPIKey,
		BaseURL: cfg.GroqBaseURL,
		Model:   cfg.Model,
		// Low temperature keeps the verification output predictable.
		Temperature: 0.1,
		MaxTokens:   1000,
		Timeout:     *timeout,
	})

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	rep, err := verify(ctx, scene.NewService(client))
	if err != nil {
		fail(err)
	}
	rep.Model = cfg.Model
	printJSON(rep)
}

// verify runs one director-mode analysis of the fixed scene and summarizes
// what came back.
func verify(ctx context.Context, svc *scene.Service) (report, error) {
	analysis, err := svc.Analyze(ctx, scene.Request{Text: verifyScene, Mode: scene.ModeDirector})
	if err != nil {
		return report{}, err
	}
	return report{
		Status:     "ok",
		Shots:      len(analysis.ShotList),
		Palette:    len(analysis.ColorPalette),
		Confidence: analysis.Confidence,
	}, nil
}

func fail(err error) {
	printJSON(report{Status: "error", Error: err.Error()})
	os.Exit(1)
}

func printJSON(rep report) {
	out, err := json.Marshal(rep)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	fmt.Println(string(out))
}
