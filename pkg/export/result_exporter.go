package export

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/The-Africa-Channel/Sentence-Segmentation-Aligner/pkg/models"
	"github.com/The-Africa-Channel/Sentence-Segmentation-Aligner/pkg/utils"
)

// ResultExporter 负责将扁平化的段落记录导出为JSON文件
type ResultExporter struct {
	OutputFolder string
}

// NewResultExporter 创建一个新的结果导出器
func NewResultExporter(outputFolder string) *ResultExporter {
	return &ResultExporter{
		OutputFolder: outputFolder,
	}
}

// ExportJSON 将记录序列写入 <文件名>_segments.json
func (e *ResultExporter) ExportJSON(records []models.ResultRecord, filename string) (string, error) {
	if err := os.MkdirAll(e.OutputFolder, 0755); err != nil {
		return "", fmt.Errorf("创建输出目录失败: %w", err)
	}

	baseName := filepath.Base(filename)
	baseName = strings.TrimSuffix(baseName, filepath.Ext(baseName))
	outputFile := filepath.Join(e.OutputFolder, fmt.Sprintf("%s_segments.json", baseName))

	if err := utils.SaveJSONFile(outputFile, records); err != nil {
		return "", err
	}

	utils.Info("已导出JSON段落文件: %s", outputFile)
	return outputFile, nil
}
