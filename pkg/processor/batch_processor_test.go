package processor

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/The-Africa-Channel/Sentence-Segmentation-Aligner/pkg/models"
	"github.com/The-Africa-Channel/Sentence-Segmentation-Aligner/pkg/utils"
)

const validTranscription = `{
	"language_code": "en",
	"words": [
		{"text": "Hello", "start": 0.0, "end": 0.4, "speaker_id": "speaker_0"},
		{"text": "there.", "start": 0.5, "end": 0.9, "speaker_id": "speaker_0"},
		{"text": "Good", "start": 2.5, "end": 2.9, "speaker_id": "speaker_1"},
		{"text": "morning.", "start": 3.0, "end": 3.5, "speaker_id": "speaker_1"}
	]
}`

func testBatchConfig(t *testing.T) *models.Config {
	config := models.NewDefaultConfig()
	config.TranscriptFolder = t.TempDir()
	config.OutputFolder = t.TempDir()
	config.MaxRetries = 1
	config.RetryDelay = 0.01
	config.ShowProgress = false
	return config
}

func writeTranscript(t *testing.T, dir, name, content string) string {
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("创建测试转写文件失败: %v", err)
	}
	return path
}

func TestProcessFile(t *testing.T) {
	utils.InitLogger(utils.LogLevelQuiet, "")
	config := testBatchConfig(t)

	filePath := writeTranscript(t, config.TranscriptFolder, "interview.json", validTranscription)
	processor := NewBatchProcessor(config.TranscriptFolder, config.OutputFolder, nil, config)

	result := processor.ProcessFile(filePath)
	assert.True(t, result.Success)
	assert.NoError(t, result.Error)
	assert.Equal(t, 2, result.SegmentCount)
	assert.Len(t, result.OutputFiles, 1)

	// 验证SRT文件内容
	data, err := os.ReadFile(result.OutputFiles[0])
	assert.NoError(t, err)
	content := string(data)
	assert.Contains(t, content, "-->")
	assert.Contains(t, content, "- [Speaker 1] Hello there.")
	assert.Contains(t, content, "- [Speaker 2] Good morning.")
}

func TestProcessFileInvalidInput(t *testing.T) {
	utils.InitLogger(utils.LogLevelQuiet, "")
	config := testBatchConfig(t)

	filePath := writeTranscript(t, config.TranscriptFolder, "broken.json", `{"words": [{"text": "a"}]}`)
	processor := NewBatchProcessor(config.TranscriptFolder, config.OutputFolder, nil, config)

	result := processor.ProcessFile(filePath)
	assert.False(t, result.Success)
	assert.Error(t, result.Error)
	assert.Empty(t, result.OutputFiles)
}

func TestProcessTranscriptFiles(t *testing.T) {
	utils.InitLogger(utils.LogLevelQuiet, "")
	config := testBatchConfig(t)
	config.ExportJSON = true
	config.MaxWorkers = 1 // 串行处理，回调计数无需加锁

	writeTranscript(t, config.TranscriptFolder, "a.json", validTranscription)
	writeTranscript(t, config.TranscriptFolder, "b.json", validTranscription)
	writeTranscript(t, config.TranscriptFolder, "broken.json", `not json`)

	var callbacks int
	callback := func(current, total int, filename string, result *BatchResult) {
		if result != nil {
			callbacks++
		}
	}

	processor := NewBatchProcessor(config.TranscriptFolder, config.OutputFolder, callback, config)
	results, err := processor.ProcessTranscriptFiles()
	assert.NoError(t, err)
	assert.Len(t, results, 3)
	assert.Equal(t, 3, callbacks)

	succeeded := 0
	for _, result := range results {
		if result.Success {
			succeeded++
			// SRT和JSON各导出一个文件
			assert.Len(t, result.OutputFiles, 2)
		}
	}
	assert.Equal(t, 2, succeeded)

	// 验证输出文件确实落盘
	assert.FileExists(t, filepath.Join(config.OutputFolder, "a.srt"))
	assert.FileExists(t, filepath.Join(config.OutputFolder, "a_segments.json"))
	assert.FileExists(t, filepath.Join(config.OutputFolder, "b.srt"))
}

func TestProcessTranscriptFilesEmptyDir(t *testing.T) {
	utils.InitLogger(utils.LogLevelQuiet, "")
	config := testBatchConfig(t)

	processor := NewBatchProcessor(config.TranscriptFolder, config.OutputFolder, nil, config)
	results, err := processor.ProcessTranscriptFiles()
	assert.NoError(t, err)
	assert.Empty(t, results)
}

func TestProcessFileSegmentTiming(t *testing.T) {
	utils.InitLogger(utils.LogLevelQuiet, "")
	config := testBatchConfig(t)

	filePath := writeTranscript(t, config.TranscriptFolder, "timing.json", validTranscription)
	processor := NewBatchProcessor(config.TranscriptFolder, config.OutputFolder, nil, config)

	result := processor.ProcessFile(filePath)
	assert.True(t, result.Success)

	data, err := os.ReadFile(filepath.Join(config.OutputFolder, "timing.srt"))
	assert.NoError(t, err)

	// 段落时间来自词的原始时间戳
	lines := strings.Split(string(data), "\n")
	assert.Equal(t, "00:00:00,000 --> 00:00:00,900", lines[1])
}
