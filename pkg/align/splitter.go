package align

import (
	"strings"

	"github.com/The-Africa-Channel/Sentence-Segmentation-Aligner/pkg/models"
	"github.com/The-Africa-Channel/Sentence-Segmentation-Aligner/pkg/utils"
)

// SplitLongSegments 将时长超过 maxDuration 的段落在句子边界处再切分。
// 时长是软限制：段落只有一个句子、找不到内部边界时整段保留，允许超长。
func SplitLongSegments(segments []models.Segment, maxDuration float64, language string, tokenizer SentenceTokenizer) []models.Segment {
	var result []models.Segment
	for _, segment := range segments {
		if segment.Duration() <= maxDuration {
			result = append(result, segment)
			continue
		}
		result = append(result, splitAtSentenceBoundaries(segment, language, tokenizer, false)...)
	}
	return result
}

// splitAtSentenceBoundaries 把段落的词按切分出的句子重新分组。
// 逐词累积文本（纯标点词前不加空格），保护后的累积文本与下一个句子
// 完全相等时收束为一个输出段落。分词器输出与词文本对不上时走软降级：
// 剩余的词合并为最后一段，不向调用方报错。
func splitAtSentenceBoundaries(segment models.Segment, language string, tokenizer SentenceTokenizer, withAbbreviations bool) []models.Segment {
	protect := func(text string) string {
		text = protectAcronyms(text)
		if withAbbreviations {
			text = protectAbbreviations(text, language)
		}
		return text
	}

	protected := protect(segment.Text())
	sentences := tokenizer.Tokenize(protected, language)
	if len(sentences) <= 1 {
		return []models.Segment{segment}
	}

	var result []models.Segment
	var current []models.Word
	currentText := ""
	sentenceIdx := 0

	for _, word := range segment.Words {
		if currentText != "" && !models.IsPunctuation(word.Text) {
			currentText += " "
		}
		currentText += word.Text
		current = append(current, word)

		if sentenceIdx < len(sentences) &&
			protect(strings.TrimSpace(currentText)) == strings.TrimSpace(sentences[sentenceIdx]) {
			result = append(result, models.Segment{Words: current})
			current = nil
			currentText = ""
			sentenceIdx++
		}
	}

	// 剩余的词（不完整的末句或分词器对齐偏差）仍作为一段输出
	if len(current) > 0 {
		if sentenceIdx < len(sentences) {
			utils.Debug("句子边界与词文本未完全对齐，剩余 %d 个词合并为一段", len(current))
		}
		result = append(result, models.Segment{Words: current})
	}

	return result
}
