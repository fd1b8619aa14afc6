package scanner

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

// 创建测试目录和测试文件
func setupTestDirectory(t *testing.T) string {
	tempDir := t.TempDir()

	testFiles := []string{
		"interview1.json",  // 转写文件
		"interview2.JSON",  // 大写扩展名也算
		"notes.txt",        // 非转写文件
		".hidden.json",     // 隐藏文件
		"subfolder/a.json", // 子文件夹中的文件（非递归扫描不包含）
	}

	if err := os.MkdirAll(filepath.Join(tempDir, "subfolder"), 0755); err != nil {
		t.Fatalf("创建子文件夹失败: %v", err)
	}

	for _, fileName := range testFiles {
		filePath := filepath.Join(tempDir, fileName)
		if err := os.WriteFile(filePath, []byte("{}"), 0644); err != nil {
			t.Fatalf("创建测试文件失败 %s: %v", fileName, err)
		}
	}

	return tempDir
}

func TestScanDirectory(t *testing.T) {
	testDir := setupTestDirectory(t)

	scanner := NewTranscriptScanner()
	files, err := scanner.ScanDirectory(testDir)
	assert.NoError(t, err)

	// 只包含顶层的非隐藏json文件
	assert.Len(t, files, 2)

	names := make(map[string]bool)
	for _, file := range files {
		names[file.Name] = true
		assert.Equal(t, ".json", file.Ext)
		assert.Equal(t, int64(2), file.Size)
	}
	assert.True(t, names["interview1.json"])
	assert.True(t, names["interview2.JSON"])
}

func TestScanDirectoryNotExist(t *testing.T) {
	scanner := NewTranscriptScanner()
	_, err := scanner.ScanDirectory("/nonexistent/path")
	assert.Error(t, err)
}

func TestScanDirectoryEmpty(t *testing.T) {
	scanner := NewTranscriptScanner()
	files, err := scanner.ScanDirectory(t.TempDir())
	assert.NoError(t, err)
	assert.Empty(t, files)
}
