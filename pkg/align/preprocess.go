package align

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/The-Africa-Channel/Sentence-Segmentation-Aligner/pkg/models"
)

var (
	// 2个及以上连续大写字母的全大写词，如 NASA
	allCapsRe = regexp.MustCompile(`\b[A-Z]{2,}\b`)
	// 字母与数字粘连，如 meinem1er
	letterDigitRe = regexp.MustCompile(`([a-zA-ZäöüßÄÖÜ])(\d)`)
	digitLetterRe = regexp.MustCompile(`(\d)([a-zA-ZäöüßÄÖÜ])`)
	multiSpaceRe  = regexp.MustCompile(`\s+`)
)

// ExpandAcronyms 将全大写缩略词展开为带句点形式（NASA -> N.A.S.A.），
// 已含句点的词不受影响
func ExpandAcronyms(text string) string {
	return allCapsRe.ReplaceAllStringFunc(text, func(m string) string {
		var b strings.Builder
		for _, r := range m {
			b.WriteRune(r)
			b.WriteByte('.')
		}
		return b.String()
	})
}

// FixWordSpacing 修复转写API常见的词间距问题（meinem1er -> meinem 1er）
func FixWordSpacing(text string) string {
	text = letterDigitRe.ReplaceAllString(text, "$1 $2")
	text = digitLetterRe.ReplaceAllString(text, "$1 $2")
	text = multiSpaceRe.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}

// CleanWords 对输入词序列做预处理，返回新的词序列，不修改调用方数据：
// 去除NUL字符、展开全大写缩略词、修复词间距问题，并把0基的 speaker_N
// 标识转为1基。清理后文本为空的词被丢弃。
func CleanWords(words []models.Word) []models.Word {
	cleaned := make([]models.Word, 0, len(words))
	for _, w := range words {
		text := strings.ReplaceAll(w.Text, "\x00", "")
		text = ExpandAcronyms(text)
		text = FixWordSpacing(text)
		if text == "" {
			continue
		}

		cleaned = append(cleaned, models.Word{
			Text:      text,
			Start:     w.Start,
			End:       w.End,
			SpeakerID: rebaseSpeakerID(w.SpeakerID),
		})
	}
	return cleaned
}

// rebaseSpeakerID 将 speaker_0、speaker_1 这类0基标识转为1基（speaker_1、speaker_2）
func rebaseSpeakerID(speakerID string) string {
	idx := strings.Index(speakerID, "_")
	if idx < 0 {
		return speakerID
	}
	num, err := strconv.Atoi(speakerID[idx+1:])
	if err != nil {
		return speakerID
	}
	return fmt.Sprintf("%s_%d", speakerID[:idx], num+1)
}
