package export

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/The-Africa-Channel/Sentence-Segmentation-Aligner/pkg/models"
)

func TestExportJSON(t *testing.T) {
	outputDir := t.TempDir()
	exporter := NewResultExporter(outputDir)

	records := []models.ResultRecord{
		{Speaker: "- [Speaker 1]", Start: 0.0, End: 1.25, Text: "Guten Morgen."},
		{Speaker: "- [Speaker 2]", Start: 2.0, End: 3.0, Text: "Hallo zusammen."},
	}

	outputFile, err := exporter.ExportJSON(records, "interview.json")
	assert.NoError(t, err)
	assert.Equal(t, filepath.Join(outputDir, "interview_segments.json"), outputFile)

	// 写出的文件可以读回原始记录
	data, err := os.ReadFile(outputFile)
	assert.NoError(t, err)

	var loaded []models.ResultRecord
	assert.NoError(t, json.Unmarshal(data, &loaded))
	assert.Equal(t, records, loaded)
}
