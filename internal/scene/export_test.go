package scene

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testAnalysis(t *testing.T) *Analysis {
	t.Helper()
	a, err := ParseAnalysis(mustJSON(t, validPayload()))
	require.NoError(t, err)
	return a
}

func TestExportJSON_RoundTrips(t *testing.T) {
	a := testAnalysis(t)

	out, err := ExportJSON(a)
	require.NoError(t, err)

	var back Analysis
	require.NoError(t, json.Unmarshal(out, &back))
	assert.Equal(t, *a, back)
}

func TestExportShotListCSV(t *testing.T) {
	out, err := ExportShotListCSV(testAnalysis(t))
	require.NoError(t, err)

	records, err := csv.NewReader(bytes.NewReader(out)).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3, "header plus two shots")
	assert.Equal(t, []string{"shot_number", "shot_type", "camera_movement", "framing", "lighting", "purpose"}, records[0])
	assert.Equal(t, "1", records[1][0])
	assert.Equal(t, "Wide", records[1][1])
	assert.Equal(t, "Hold on her fear", records[2][5])
}

func TestExportBatchCSV(t *testing.T) {
	rows := []BatchRow{
		{SceneIndex: 1, Emotion: "tense", Genre: "thriller", Tone: "ominous", Intensity: 7, Confidence: 0.82},
		{SceneIndex: 2, Error: "parse analysis: no JSON object in reply"},
	}

	out, err := ExportBatchCSV(rows)
	require.NoError(t, err)

	records, err := csv.NewReader(bytes.NewReader(out)).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, "0.82", records[1][5])
	assert.Empty(t, records[2][4], "failed rows leave numeric columns blank")
	assert.Empty(t, records[2][5])
	assert.Contains(t, records[2][6], "no JSON object")
}
