package align

import (
	"github.com/The-Africa-Channel/Sentence-Segmentation-Aligner/pkg/models"
)

// InitialGrouping 按停顿和说话人变化将词序列切分为段落。
// 说话人变化无条件开启新段落，与停顿阈值无关；
// 两词之间的间隔超过 bigPauseSeconds 同样开启新段落。
// 末段词数少于 minWordsInSegment 时并回前一段，但只在说话人相同时合并。
func InitialGrouping(words []models.Word, bigPauseSeconds float64, minWordsInSegment int) []models.Segment {
	var segments []models.Segment
	if len(words) == 0 {
		return segments
	}

	current := []models.Word{words[0]}
	for _, word := range words[1:] {
		last := current[len(current)-1]
		if word.SpeakerID != last.SpeakerID || word.Start-last.End > bigPauseSeconds {
			segments = append(segments, models.Segment{Words: current})
			current = []models.Word{word}
			continue
		}
		current = append(current, word)
	}
	segments = append(segments, models.Segment{Words: current})

	// 末段过短时并回前一段，跨说话人时保持独立以维持说话人纯度
	if n := len(segments); n > 1 && len(segments[n-1].Words) < minWordsInSegment {
		lastSeg := segments[n-1]
		if segments[n-2].Speaker() == lastSeg.Speaker() {
			segments[n-2].Words = append(segments[n-2].Words, lastSeg.Words...)
			segments = segments[:n-1]
		}
	}

	return segments
}
