package export

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/The-Africa-Channel/Sentence-Segmentation-Aligner/pkg/align"
	"github.com/The-Africa-Channel/Sentence-Segmentation-Aligner/pkg/models"
	"github.com/The-Africa-Channel/Sentence-Segmentation-Aligner/pkg/utils"
)

var collapseSpaceRe = regexp.MustCompile(`\s+`)

// SRTExporter 负责将分段结果导出为SRT字幕文件
type SRTExporter struct {
	OutputFolder      string
	SpeakerBrackets   bool              // 说话人标签使用 "- [Speaker]" 前缀
	NormalizeSpeakers bool              // 按排序归一化说话人标识
	SpeakerMap        map[string]string // 显式说话人映射，优先于自动归一化
}

// NewSRTExporter 创建一个新的SRT导出器
func NewSRTExporter(outputFolder string) *SRTExporter {
	return &SRTExporter{
		OutputFolder:      outputFolder,
		SpeakerBrackets:   true,
		NormalizeSpeakers: true,
	}
}

// FormatSRTTime 将秒数格式化为SRT时间格式 (HH:MM:SS,mmm)，亚秒部分截断不四舍五入
func (e *SRTExporter) FormatSRTTime(seconds float64) string {
	hours := int(seconds / 3600)
	minutes := int(math.Mod(seconds, 3600) / 60)
	secs := int(seconds) % 60
	milliseconds := int((seconds - float64(int(seconds))) * 1000)

	return fmt.Sprintf("%02d:%02d:%02d,%03d", hours, minutes, secs, milliseconds)
}

// GenerateSRTContent 生成SRT格式内容字符串。
// 条目从1开始连续编号，文本去除NUL字符并压缩内部空白，清理后为空的段落跳过。
func (e *SRTExporter) GenerateSRTContent(segments []models.Segment) string {
	speakerMap := e.SpeakerMap
	if speakerMap == nil && e.NormalizeSpeakers {
		speakerMap = align.SpeakerMapForSegments(segments)
	}

	var srtLines []string
	index := 1

	for _, segment := range segments {
		text := cleanSRTText(segment.Text())
		if text == "" {
			continue
		}

		speaker := segment.Speaker()
		if label, ok := speakerMap[speaker]; ok {
			speaker = label
		} else if e.NormalizeSpeakers {
			// 显式映射未覆盖的说话人退回单个标识归一化
			speaker = align.NormalizeSpeakerID(speaker)
		}

		var label string
		if e.SpeakerBrackets {
			label = fmt.Sprintf("- [%s] ", speaker)
		} else {
			label = fmt.Sprintf("[%s] ", speaker)
		}

		srtLines = append(srtLines, fmt.Sprintf("%d", index))
		srtLines = append(srtLines, fmt.Sprintf("%s --> %s",
			e.FormatSRTTime(segment.Start()), e.FormatSRTTime(segment.End())))
		srtLines = append(srtLines, label+text)
		srtLines = append(srtLines, "") // 空行分隔
		index++
	}

	return strings.Join(srtLines, "\n")
}

// ExportSRT 将SRT内容写入文件，是GenerateSRTContent之上的薄封装
func (e *SRTExporter) ExportSRT(segments []models.Segment, filename string) (string, error) {
	// 创建输出文件夹
	if err := os.MkdirAll(e.OutputFolder, 0755); err != nil {
		return "", fmt.Errorf("创建输出目录失败: %w", err)
	}

	// 构建文件名
	baseName := filepath.Base(filename)
	baseName = strings.TrimSuffix(baseName, filepath.Ext(baseName))
	outputFile := filepath.Join(e.OutputFolder, fmt.Sprintf("%s.srt", baseName))

	// 生成SRT内容并一次性写入
	srtContent := e.GenerateSRTContent(segments)
	if err := os.WriteFile(outputFile, []byte(srtContent), 0644); err != nil {
		return "", fmt.Errorf("写入SRT文件失败: %w", err)
	}

	utils.Info("已导出SRT字幕: %s", outputFile)
	return outputFile, nil
}

// cleanSRTText 去除NUL字符、压缩内部空白并修剪首尾空白
func cleanSRTText(text string) string {
	text = strings.ReplaceAll(text, "\x00", "")
	text = collapseSpaceRe.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}
