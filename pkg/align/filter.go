package align

import (
	"regexp"
	"strings"

	"github.com/The-Africa-Channel/Sentence-Segmentation-Aligner/pkg/models"
	"github.com/The-Africa-Channel/Sentence-Segmentation-Aligner/pkg/utils"
)

var (
	speakerTagRe  = regexp.MustCompile(`-\s*\[[^\]]+\]\s*`)
	bracketTagRe  = regexp.MustCompile(`\[[^\]]+\]\s*`)
	parenthesisRe = regexp.MustCompile(`\([^)]*\)`)
	htmlTagRe     = regexp.MustCompile(`<[^>]*>`)
	meaningfulRe  = regexp.MustCompile(`\b\w*[a-zA-Z0-9]\w*\b`)

	// 只含填充符号的文本模式
	fillerPatterns = []*regexp.Regexp{
		regexp.MustCompile(`^\.+$`),       // 只有句点
		regexp.MustCompile(`^-+$`),        // 只有连字符
		regexp.MustCompile(`^\*+$`),       // 只有星号
		regexp.MustCompile(`^_+$`),        // 只有下划线
		regexp.MustCompile(`^[,.;:!?]+$`), // 只有标点
		regexp.MustCompile(`^[^\w\s]+$`),  // 只有非词非空白字符
	}
)

// ContainsMeaningfulWords 判断文本去掉说话人标签、括号内容和HTML标签后
// 是否仍含有实际词汇
func ContainsMeaningfulWords(text string) bool {
	if text == "" {
		return false
	}

	// 先去掉说话人标签、括号内容和HTML标签
	cleaned := speakerTagRe.ReplaceAllString(text, "")
	cleaned = bracketTagRe.ReplaceAllString(cleaned, "")
	cleaned = parenthesisRe.ReplaceAllString(cleaned, "")
	cleaned = htmlTagRe.ReplaceAllString(cleaned, "")

	if len(meaningfulRe.FindAllString(cleaned, -1)) == 0 {
		utils.Debug("文本不含有效词汇: '%s'", text)
		return false
	}

	lowered := strings.TrimSpace(strings.ToLower(cleaned))
	for _, pattern := range fillerPatterns {
		if pattern.MatchString(lowered) {
			utils.Debug("文本匹配填充模式 %s: '%s'", pattern.String(), text)
			return false
		}
	}

	return true
}

// FilterMeaningfulRecords 过滤掉没有实际内容的输出记录
func FilterMeaningfulRecords(records []models.ResultRecord) []models.ResultRecord {
	if len(records) == 0 {
		return records
	}

	filtered := make([]models.ResultRecord, 0, len(records))
	removed := 0

	for i, record := range records {
		if record.Text == "" {
			utils.Debug("第%d条记录没有文本内容，移除", i)
			removed++
			continue
		}
		if !ContainsMeaningfulWords(record.Text) {
			utils.Info("移除无实际内容的记录 %d: '%s'", i, record.Text)
			removed++
			continue
		}
		filtered = append(filtered, record)
	}

	if removed > 0 {
		utils.Info("已过滤 %d 条无实际内容的记录，剩余 %d/%d", removed, len(filtered), len(records))
	}

	return filtered
}
