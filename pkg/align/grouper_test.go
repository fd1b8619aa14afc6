package align

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/The-Africa-Channel/Sentence-Segmentation-Aligner/pkg/models"
)

func word(text string, start, end float64, speakerID string) models.Word {
	return models.Word{Text: text, Start: start, End: end, SpeakerID: speakerID}
}

func TestInitialGrouping(t *testing.T) {
	// 同一说话人先说两个词，停顿2秒后继续，然后换人
	words := []models.Word{
		word("Hello", 0.0, 0.4, "speaker_0"),
		word("there.", 0.5, 0.9, "speaker_0"),
		word("How", 3.0, 3.3, "speaker_0"), // 停顿2.1秒，超过阈值
		word("are", 3.4, 3.6, "speaker_0"),
		word("you?", 3.7, 4.0, "speaker_0"),
		word("Fine,", 4.1, 4.5, "speaker_1"), // 说话人变化
		word("thanks.", 4.6, 5.0, "speaker_1"),
	}

	segments := InitialGrouping(words, 1.0, 2)
	assert.Len(t, segments, 3)
	assert.Equal(t, "Hello there.", segments[0].Text())
	assert.Equal(t, "How are you?", segments[1].Text())
	assert.Equal(t, "Fine, thanks.", segments[2].Text())
}

func TestInitialGroupingSpeakerChangeIgnoresPause(t *testing.T) {
	// 说话人变化无条件开启新段落，即使词在时间上紧挨着
	words := []models.Word{
		word("Yes", 0.0, 0.3, "speaker_0"),
		word("indeed", 0.4, 0.8, "speaker_0"),
		word("No", 0.85, 1.1, "speaker_1"),
		word("way", 1.2, 1.5, "speaker_1"),
	}

	segments := InitialGrouping(words, 1.0, 2)
	assert.Len(t, segments, 2)
	assert.Equal(t, "speaker_0", segments[0].Speaker())
	assert.Equal(t, "speaker_1", segments[1].Speaker())
}

func TestInitialGroupingShortTailMerge(t *testing.T) {
	// 末段只有一个词且说话人相同时并回前一段
	words := []models.Word{
		word("I", 0.0, 0.2, "speaker_0"),
		word("know.", 0.3, 0.6, "speaker_0"),
		word("Right.", 2.0, 2.4, "speaker_0"), // 停顿触发新段落，只有一个词
	}

	segments := InitialGrouping(words, 1.0, 2)
	assert.Len(t, segments, 1)
	assert.Equal(t, "I know. Right.", segments[0].Text())
}

func TestInitialGroupingShortTailKeepsCrossSpeaker(t *testing.T) {
	// 末段说话人不同，即使过短也保持独立，不污染前一段的说话人
	words := []models.Word{
		word("I", 0.0, 0.2, "speaker_0"),
		word("know.", 0.3, 0.6, "speaker_0"),
		word("Right.", 0.7, 1.0, "speaker_1"),
	}

	segments := InitialGrouping(words, 1.0, 2)
	assert.Len(t, segments, 2)
	assert.Equal(t, "speaker_0", segments[0].Speaker())
	assert.Equal(t, "speaker_1", segments[1].Speaker())
	assert.Equal(t, "Right.", segments[1].Text())
}

func TestInitialGroupingBoundaryPause(t *testing.T) {
	// 恰好等于阈值的停顿不触发切分，必须严格大于
	words := []models.Word{
		word("a", 0.0, 0.5, "s1"),
		word("b", 1.5, 2.0, "s1"), // 间隔恰好1.0
	}
	segments := InitialGrouping(words, 1.0, 1)
	assert.Len(t, segments, 1)

	words[1].Start = 1.51 // 间隔1.01
	segments = InitialGrouping(words, 1.0, 1)
	assert.Len(t, segments, 2)
}

func TestInitialGroupingEmptyAndSingle(t *testing.T) {
	assert.Empty(t, InitialGrouping(nil, 1.0, 2))

	// 单个词输入仍然产出一个段落，不会被最短词数规则丢弃
	segments := InitialGrouping([]models.Word{word("Hi.", 0.0, 0.3, "s1")}, 1.0, 2)
	assert.Len(t, segments, 1)
	assert.Equal(t, "Hi.", segments[0].Text())
}
