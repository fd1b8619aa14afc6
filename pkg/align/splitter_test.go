package align

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/The-Africa-Channel/Sentence-Segmentation-Aligner/pkg/models"
)

func TestSplitLongSegments(t *testing.T) {
	// 两个句子、总时长超过上限的段落应在句子边界处切开
	segment := models.Segment{Words: []models.Word{
		word("Hello", 0.0, 1.0, "s1"),
		word("there.", 1.0, 2.0, "s1"),
		word("How", 2.0, 11.0, "s1"),
		word("are", 11.0, 12.0, "s1"),
		word("you?", 12.0, 13.0, "s1"),
	}}

	result := SplitLongSegments([]models.Segment{segment}, 10.0, "eng", RegexSentenceTokenizer{})
	assert.Len(t, result, 2)
	assert.Equal(t, "Hello there.", result[0].Text())
	assert.Equal(t, "How are you?", result[1].Text())
	// 词的时间戳原样保留
	assert.Equal(t, 0.0, result[0].Start())
	assert.Equal(t, 2.0, result[0].End())
	assert.Equal(t, 2.0, result[1].Start())
}

func TestSplitLongSegmentsUnderLimit(t *testing.T) {
	// 未超过上限的段落原样通过，即使含有多个句子
	segment := models.Segment{Words: []models.Word{
		word("Hi.", 0.0, 1.0, "s1"),
		word("Bye.", 1.0, 2.0, "s1"),
	}}

	result := SplitLongSegments([]models.Segment{segment}, 10.0, "eng", RegexSentenceTokenizer{})
	assert.Len(t, result, 1)
	assert.Equal(t, "Hi. Bye.", result[0].Text())
}

func TestSplitLongSegmentsSingleSentenceOverflow(t *testing.T) {
	// 时长是软限制：只有一个句子时找不到切分点，整段保留
	segment := models.Segment{Words: []models.Word{
		word("This", 0.0, 5.0, "s1"),
		word("goes", 5.0, 10.0, "s1"),
		word("on", 10.0, 15.0, "s1"),
		word("forever", 15.0, 20.0, "s1"),
	}}

	result := SplitLongSegments([]models.Segment{segment}, 10.0, "eng", RegexSentenceTokenizer{})
	assert.Len(t, result, 1)
	assert.Equal(t, 20.0, result[0].Duration())
}

func TestSplitLongSegmentsProtectsAcronyms(t *testing.T) {
	// 缩略词内部的句点不是句子边界
	segment := models.Segment{Words: []models.Word{
		word("I", 0.0, 1.0, "s1"),
		word("visited", 1.0, 2.0, "s1"),
		word("N.A.S.A.", 2.0, 3.0, "s1"),
		word("last", 3.0, 10.0, "s1"),
		word("year.", 10.0, 11.0, "s1"),
		word("It", 11.0, 12.0, "s1"),
		word("was", 12.0, 13.0, "s1"),
		word("fun.", 13.0, 14.0, "s1"),
	}}

	result := SplitLongSegments([]models.Segment{segment}, 10.0, "eng", RegexSentenceTokenizer{})
	assert.Len(t, result, 2)
	assert.Equal(t, "I visited N.A.S.A. last year.", result[0].Text())
	assert.Equal(t, "It was fun.", result[1].Text())
}

func TestSplitLongSegmentsConservesWords(t *testing.T) {
	// 切分前后词的总数和顺序不变
	segment := models.Segment{Words: []models.Word{
		word("One.", 0.0, 4.0, "s1"),
		word("Two.", 4.0, 8.0, "s1"),
		word("Three.", 8.0, 12.0, "s1"),
	}}

	result := SplitLongSegments([]models.Segment{segment}, 5.0, "eng", RegexSentenceTokenizer{})

	var flattened []models.Word
	for _, s := range result {
		flattened = append(flattened, s.Words...)
	}
	assert.Equal(t, segment.Words, flattened)
}
