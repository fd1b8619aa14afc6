package align

import (
	"github.com/The-Africa-Channel/Sentence-Segmentation-Aligner/pkg/models"
)

// MergeOnSentenceBoundary 在各段内部按句子边界再切分，使每个输出段落约为一句。
// 每个输入段落独立处理，输出段落永远是单个输入段落词序列的子区间，
// 绝不跨越 InitialGrouping 建立的停顿/说话人边界合并词。
// 除缩略词外还保护当前语言的头衔/缩写词（Mr.、Dr. 等）。
func MergeOnSentenceBoundary(segments []models.Segment, language string, tokenizer SentenceTokenizer) []models.Segment {
	var result []models.Segment
	for _, segment := range segments {
		result = append(result, splitAtSentenceBoundaries(segment, language, tokenizer, true)...)
	}
	return result
}
