package align

import (
	"strings"

	"github.com/The-Africa-Channel/Sentence-Segmentation-Aligner/pkg/models"
)

// MergePunctuationOnlySegments 将纯标点段落的词追加到前一个输出段落末尾，
// 而不是直接丢弃。没有前一段时（位于首位）原样保留，避免静默丢失数据。
// 对自身输出再次调用是无操作。
func MergePunctuationOnlySegments(segments []models.Segment) []models.Segment {
	var cleaned []models.Segment
	for _, segment := range segments {
		var b strings.Builder
		for _, w := range segment.Words {
			b.WriteString(w.Text)
		}
		if models.IsPunctuation(b.String()) && len(cleaned) > 0 {
			last := len(cleaned) - 1
			cleaned[last].Words = append(cleaned[last].Words, segment.Words...)
			continue
		}
		cleaned = append(cleaned, segment)
	}
	return cleaned
}
