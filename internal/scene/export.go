package scene

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"strconv"
)

// ExportJSON renders an analysis as indented JSON, matching the download
// format of the UI's export button.
func ExportJSON(a *Analysis) ([]byte, error) {
	out, err := json.MarshalIndent(a, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("export analysis json: %w", err)
	}
	return out, nil
}

// ExportShotListCSV renders the shot list as CSV with one row per shot.
func ExportShotListCSV(a *Analysis) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	header := []string{"shot_number", "shot_type", "camera_movement", "framing", "lighting", "purpose"}
	if err := w.Write(header); err != nil {
		return nil, fmt.Errorf("export shot list csv: %w", err)
	}
	for _, s := range a.ShotList {
		row := []string{
			strconv.Itoa(s.ShotNumber),
			s.ShotType,
			s.CameraMovement,
			s.Framing,
			s.Lighting,
			s.Purpose,
		}
		if err := w.Write(row); err != nil {
			return nil, fmt.Errorf("export shot list csv: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("export shot list csv: %w", err)
	}
	return buf.Bytes(), nil
}

// ExportBatchCSV renders the batch summary rows as CSV. Failed scenes keep
// their row with the error column filled and the numeric columns blank.
func ExportBatchCSV(rows []BatchRow) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	header := []string{"scene_index", "emotion", "genre", "tone", "intensity", "confidence", "error"}
	if err := w.Write(header); err != nil {
		return nil, fmt.Errorf("export batch csv: %w", err)
	}
	for _, r := range rows {
		intensity, confidence := "", ""
		if r.Error == "" {
			intensity = strconv.Itoa(r.Intensity)
			confidence = strconv.FormatFloat(r.Confidence, 'f', -1, 64)
		}
		row := []string{
			strconv.Itoa(r.SceneIndex),
			r.Emotion,
			r.Genre,
			r.Tone,
			intensity,
			confidence,
			r.Error,
		}
		if err := w.Write(row); err != nil {
			return nil, fmt.Errorf("export batch csv: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("export batch csv: %w", err)
	}
	return buf.Bytes(), nil
}
