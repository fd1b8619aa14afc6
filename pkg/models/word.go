package models

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// 与Python string.punctuation 一致的标点字符集
const punctuationChars = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"

// IsPunctuation 判断文本是否完全由标点字符组成（空串视为标点）
func IsPunctuation(text string) bool {
	for _, r := range text {
		if !strings.ContainsRune(punctuationChars, r) {
			return false
		}
	}
	return true
}

// Word 表示一个带时间戳与说话人标识的识别词
type Word struct {
	Text      string  `json:"text"`       // 词文本
	Start     float64 `json:"start"`      // 开始时间（秒）
	End       float64 `json:"end"`        // 结束时间（秒）
	SpeakerID string  `json:"speaker_id"` // 原始说话人标识
}

// Segment 表示将作为同一条字幕展示的连续词序列。
// 流水线各阶段只对词做重新分组，从不修改词的时间戳。
type Segment struct {
	Words []Word
}

// Start 段落开始时间，取第一个词的开始时间
func (s Segment) Start() float64 {
	return s.Words[0].Start
}

// End 段落结束时间，取最后一个词的结束时间
func (s Segment) End() float64 {
	return s.Words[len(s.Words)-1].End
}

// Speaker 段落说话人，取第一个词的说话人标识
func (s Segment) Speaker() string {
	return s.Words[0].SpeakerID
}

// Duration 段落时长（秒）
func (s Segment) Duration() float64 {
	return s.End() - s.Start()
}

// Text 用单个空格连接词文本，纯标点词前不加空格
func (s Segment) Text() string {
	var b strings.Builder
	for _, w := range s.Words {
		if b.Len() > 0 && !IsPunctuation(w.Text) {
			b.WriteByte(' ')
		}
		b.WriteString(w.Text)
	}
	return b.String()
}

// ResultRecord 表示一个段落的扁平化输出形式
type ResultRecord struct {
	Speaker string  `json:"speaker"` // 说话人标签
	Start   float64 `json:"start"`   // 开始时间（秒）
	End     float64 `json:"end"`     // 结束时间（秒）
	Text    string  `json:"text"`    // 段落文本
}

// Transcription 表示输入的转写结果
type Transcription struct {
	LanguageCode string `json:"language_code"` // 语言代码，缺失时默认为eng
	Words        []Word `json:"words"`         // 词序列
}

// 解码用的中间结构，使用指针以区分字段未提供和零值
type transcriptionJSON struct {
	LanguageCode *string    `json:"language_code"`
	Words        []wordJSON `json:"words"`
}

type wordJSON struct {
	Text      *string  `json:"text"`
	Start     *float64 `json:"start"`
	End       *float64 `json:"end"`
	SpeakerID *string  `json:"speaker_id"`
}

// ParseTranscription 解析并校验转写JSON数据。
// 校验在任何流水线阶段运行之前完成，任一词缺少必需字段即整体失败。
func ParseTranscription(data []byte) (*Transcription, error) {
	var raw transcriptionJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("解析转写JSON失败: %w", err)
	}

	if raw.Words == nil {
		return nil, fmt.Errorf("转写数据缺少必需的words列表")
	}

	t := &Transcription{Words: make([]Word, 0, len(raw.Words))}
	if raw.LanguageCode != nil {
		t.LanguageCode = *raw.LanguageCode
	}

	for i, w := range raw.Words {
		if w.Text == nil || w.Start == nil || w.End == nil || w.SpeakerID == nil {
			return nil, fmt.Errorf("第%d个词缺少必需字段，每个词必须包含text、start、end和speaker_id", i+1)
		}
		t.Words = append(t.Words, Word{
			Text:      *w.Text,
			Start:     *w.Start,
			End:       *w.End,
			SpeakerID: *w.SpeakerID,
		})
	}

	return t, nil
}

// LoadTranscription 从文件加载转写结果
func LoadTranscription(path string) (*Transcription, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("读取转写文件失败: %w", err)
	}
	return ParseTranscription(data)
}

// Validate 校验已构造的转写结果是否可以进入流水线
func (t *Transcription) Validate() error {
	if t.Words == nil {
		return fmt.Errorf("转写数据缺少必需的words列表")
	}
	for i, w := range t.Words {
		if w.End < w.Start {
			return fmt.Errorf("第%d个词的结束时间早于开始时间", i+1)
		}
	}
	return nil
}
