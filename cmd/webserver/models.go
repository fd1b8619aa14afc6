package main

import (
	"encoding/json"

	"github.com/The-Africa-Channel/Sentence-Segmentation-Aligner/pkg/models"
)

// --- 请求结构体 ---

// AlignRequest 对齐请求。选项字段使用指针以区分未提供和零值，
// 未提供的选项使用服务端默认配置。
type AlignRequest struct {
	Transcription       json.RawMessage   `json:"transcription"`
	Format              string            `json:"format"` // srt 或 json，默认 srt
	BigPauseSeconds     *float64          `json:"big_pause_seconds"`
	MinWordsInSegment   *int              `json:"min_words_in_segment"`
	MaxDuration         *float64          `json:"max_duration"`
	LanguageCode        *string           `json:"language_code"`
	SpeakerBrackets     *bool             `json:"speaker_brackets"`
	SkipPunctuationOnly *bool             `json:"skip_punctuation_only"`
	NormalizeSpeakers   *bool             `json:"normalize_speakers"`
	CleanInputText      *bool             `json:"clean_input_text"`
	SpeakerMap          map[string]string `json:"speaker_map"`
}

type DeleteTaskRequest struct {
	TaskID string `json:"task_id"`
}

// --- 响应结构体 ---

type BaseResponse struct {
	Code int    `json:"code"`
	Msg  string `json:"msg,omitempty"` // omitempty 表示如果为空则不包含在 JSON 中
}

type AlignTaskResponse struct {
	BaseResponse
	Data *struct {
		TaskID string `json:"task_id"`
	} `json:"data,omitempty"`
}

type TaskStatusResponse struct {
	BaseResponse
	Data *TaskStatusData `json:"data,omitempty"`
}

type TaskStatusData struct {
	Status string      `json:"status"` // PENDING, RUNNING, SUCCESS, FAILED
	Result *TaskResult `json:"result,omitempty"`
}

type TaskResult struct {
	Format       string                `json:"format"`
	SegmentCount int                   `json:"segment_count"`
	SRT          string                `json:"srt,omitempty"`
	Records      []models.ResultRecord `json:"records,omitempty"`
}
