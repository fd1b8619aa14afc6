package align

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/The-Africa-Channel/Sentence-Segmentation-Aligner/pkg/models"
)

func TestMergeOnSentenceBoundary(t *testing.T) {
	// 一个段落包含两个句子，应切成两个段落
	segments := []models.Segment{{Words: []models.Word{
		word("Good", 0.0, 0.3, "s1"),
		word("morning.", 0.4, 0.8, "s1"),
		word("Nice", 0.9, 1.2, "s1"),
		word("weather.", 1.3, 1.7, "s1"),
	}}}

	result := MergeOnSentenceBoundary(segments, "eng", RegexSentenceTokenizer{})
	assert.Len(t, result, 2)
	assert.Equal(t, "Good morning.", result[0].Text())
	assert.Equal(t, "Nice weather.", result[1].Text())
}

func TestMergeOnSentenceBoundaryProtectsAbbreviations(t *testing.T) {
	// Dr. 尾部的句点不是句子边界
	segments := []models.Segment{{Words: []models.Word{
		word("Dr.", 0.0, 0.3, "s1"),
		word("Smith", 0.4, 0.8, "s1"),
		word("arrived.", 0.9, 1.3, "s1"),
		word("He", 1.4, 1.6, "s1"),
		word("sat", 1.7, 1.9, "s1"),
		word("down.", 2.0, 2.3, "s1"),
	}}}

	result := MergeOnSentenceBoundary(segments, "eng", RegexSentenceTokenizer{})
	assert.Len(t, result, 2)
	assert.Equal(t, "Dr. Smith arrived.", result[0].Text())
	assert.Equal(t, "He sat down.", result[1].Text())
}

func TestMergeOnSentenceBoundaryNeverCrossesSegments(t *testing.T) {
	// 句子跨越两个输入段落时不合并，每个输出段落只来自一个输入段落
	segments := []models.Segment{
		{Words: []models.Word{
			word("I", 0.0, 0.3, "speaker_0"),
			word("think", 0.4, 0.8, "speaker_0"),
		}},
		{Words: []models.Word{
			word("so", 0.9, 1.2, "speaker_1"),
			word("too.", 1.3, 1.7, "speaker_1"),
		}},
	}

	result := MergeOnSentenceBoundary(segments, "eng", RegexSentenceTokenizer{})
	assert.Len(t, result, 2)
	assert.Equal(t, "I think", result[0].Text())
	assert.Equal(t, "so too.", result[1].Text())
	assert.Equal(t, "speaker_0", result[0].Speaker())
	assert.Equal(t, "speaker_1", result[1].Speaker())
}

func TestMergeOnSentenceBoundaryPunctuationWord(t *testing.T) {
	// 句末标点作为独立的词时仍能对齐到句子边界
	segments := []models.Segment{{Words: []models.Word{
		word("Hello", 0.0, 0.4, "s1"),
		word(".", 0.4, 0.4, "s1"),
		word("Bye", 0.5, 0.9, "s1"),
		word(".", 0.9, 0.9, "s1"),
	}}}

	result := MergeOnSentenceBoundary(segments, "eng", RegexSentenceTokenizer{})
	assert.Len(t, result, 2)
	assert.Equal(t, "Hello.", result[0].Text())
	assert.Equal(t, "Bye.", result[1].Text())
}
