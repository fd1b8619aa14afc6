package align

import (
	"fmt"

	"github.com/The-Africa-Channel/Sentence-Segmentation-Aligner/pkg/models"
	"github.com/The-Africa-Channel/Sentence-Segmentation-Aligner/pkg/utils"
)

// Aligner 驱动完整的分段流水线：
// 初始分组 -> 超长切分 -> 句子边界切分 -> 纯标点段落合并。
// 各阶段是对不可变词序列的纯函数，同一个Aligner可被并发使用。
type Aligner struct {
	Config    *models.Config
	Tokenizer SentenceTokenizer
}

// NewAligner 创建使用默认正则句子切分器的对齐器
func NewAligner(config *models.Config) *Aligner {
	return &Aligner{
		Config:    config,
		Tokenizer: RegexSentenceTokenizer{},
	}
}

// GroupedSegments 对词序列运行完整的分段流水线
func (a *Aligner) GroupedSegments(words []models.Word, languageCode string) []models.Segment {
	language := NormalizeLanguageCode(languageCode)

	segments := InitialGrouping(words, a.Config.BigPauseSeconds, a.Config.MinWordsInSegment)
	segments = SplitLongSegments(segments, a.Config.MaxDuration, language, a.Tokenizer)
	segments = MergeOnSentenceBoundary(segments, language, a.Tokenizer)
	if a.Config.SkipPunctuationOnly {
		segments = MergePunctuationOnlySegments(segments)
	}

	utils.Debug("分段流水线完成: %d 个词 -> %d 个段落", len(words), len(segments))
	return segments
}

// AlignTranscription 校验转写数据并运行分段流水线。
// 校验在任何阶段运行之前完成；配置中的语言代码优先于转写内嵌的语言。
func (a *Aligner) AlignTranscription(t *models.Transcription) ([]models.Segment, error) {
	if t == nil {
		return nil, fmt.Errorf("转写数据为空")
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}

	words := t.Words
	if a.Config.CleanInputText {
		words = CleanWords(words)
	}

	return a.GroupedSegments(words, a.resolveLanguage(t)), nil
}

// SegmentTranscription 校验转写数据、运行分段流水线并扁平化为输出记录
func (a *Aligner) SegmentTranscription(t *models.Transcription) ([]models.ResultRecord, error) {
	segments, err := a.AlignTranscription(t)
	if err != nil {
		return nil, err
	}

	records := a.ResultRecords(segments)
	if a.Config.FilterMeaningless {
		records = FilterMeaningfulRecords(records)
	}
	return records, nil
}

// ResultRecords 把段落序列映射为扁平输出记录。
// 说话人标签按优先级取：显式映射 > 排序归一化映射 > 原始标识；
// 启用speaker_brackets时标签渲染为 "- [<标签>]"。
func (a *Aligner) ResultRecords(segments []models.Segment) []models.ResultRecord {
	speakerMap := a.Config.SpeakerMap
	if speakerMap == nil && a.Config.NormalizeSpeakers {
		speakerMap = SpeakerMapForSegments(segments)
	}

	records := make([]models.ResultRecord, 0, len(segments))
	for _, segment := range segments {
		speaker := segment.Speaker()
		if label, ok := speakerMap[speaker]; ok {
			speaker = label
		} else if a.Config.NormalizeSpeakers {
			// 显式映射未覆盖的说话人退回单个标识归一化
			speaker = NormalizeSpeakerID(speaker)
		}
		if a.Config.SpeakerBrackets {
			speaker = fmt.Sprintf("- [%s]", speaker)
		}

		records = append(records, models.ResultRecord{
			Speaker: speaker,
			Start:   segment.Start(),
			End:     segment.End(),
			Text:    segment.Text(),
		})
	}
	return records
}

// resolveLanguage 配置的语言代码覆盖转写内嵌的语言，两者都缺失时用默认语言
func (a *Aligner) resolveLanguage(t *models.Transcription) string {
	if a.Config.LanguageCode != "" {
		return a.Config.LanguageCode
	}
	if t.LanguageCode != "" {
		return t.LanguageCode
	}
	return DefaultLanguage
}
