package main

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/The-Africa-Channel/Sentence-Segmentation-Aligner/pkg/align"
	"github.com/The-Africa-Channel/Sentence-Segmentation-Aligner/pkg/export"
	"github.com/The-Africa-Channel/Sentence-Segmentation-Aligner/pkg/models"
)

// 设置CORS响应头
func setCORSHeaders(w http.ResponseWriter) {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
	w.Header().Set("Access-Control-Allow-Methods", "POST, GET, OPTIONS")
}

// writeJSON 以JSON形式写出响应
func writeJSON(w http.ResponseWriter, statusCode int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(payload)
}

// writeError 写出错误响应
func writeError(w http.ResponseWriter, statusCode int, format string, args ...interface{}) {
	writeJSON(w, statusCode, BaseResponse{Code: statusCode, Msg: fmt.Sprintf(format, args...)})
}

// requestConfig 由服务端默认配置和请求中显式提供的选项合成本次请求的配置
func requestConfig(req *AlignRequest) *models.Config {
	config := models.NewDefaultConfig()

	if req.BigPauseSeconds != nil {
		config.BigPauseSeconds = *req.BigPauseSeconds
	}
	if req.MinWordsInSegment != nil {
		config.MinWordsInSegment = *req.MinWordsInSegment
	}
	if req.MaxDuration != nil {
		config.MaxDuration = *req.MaxDuration
	}
	if req.LanguageCode != nil {
		config.LanguageCode = *req.LanguageCode
	}
	if req.SpeakerBrackets != nil {
		config.SpeakerBrackets = *req.SpeakerBrackets
	}
	if req.SkipPunctuationOnly != nil {
		config.SkipPunctuationOnly = *req.SkipPunctuationOnly
	}
	if req.NormalizeSpeakers != nil {
		config.NormalizeSpeakers = *req.NormalizeSpeakers
	}
	if req.CleanInputText != nil {
		config.CleanInputText = *req.CleanInputText
	}
	if req.SpeakerMap != nil {
		config.SpeakerMap = req.SpeakerMap
	}

	return config
}

// runAlignment 执行对齐并根据请求格式生成结果
func runAlignment(req *AlignRequest) (*TaskResult, error) {
	if len(req.Transcription) == 0 {
		return nil, fmt.Errorf("请求缺少transcription字段")
	}

	transcription, err := models.ParseTranscription(req.Transcription)
	if err != nil {
		return nil, err
	}

	config := requestConfig(req)
	aligner := align.NewAligner(config)

	segments, err := aligner.AlignTranscription(transcription)
	if err != nil {
		return nil, err
	}

	result := &TaskResult{SegmentCount: len(segments)}

	if req.Format == "json" {
		result.Format = "json"
		records := aligner.ResultRecords(segments)
		if config.FilterMeaningless {
			records = align.FilterMeaningfulRecords(records)
		}
		result.Records = records
		return result, nil
	}

	result.Format = "srt"
	srtExporter := export.NewSRTExporter("")
	srtExporter.SpeakerBrackets = config.SpeakerBrackets
	srtExporter.NormalizeSpeakers = config.NormalizeSpeakers
	srtExporter.SpeakerMap = config.SpeakerMap
	result.SRT = srtExporter.GenerateSRTContent(segments)
	return result, nil
}

// handleAlign 同步对齐：请求内联转写数据，立即返回结果
func handleAlign(w http.ResponseWriter, r *http.Request) {
	setCORSHeaders(w)

	if r.Method == http.MethodOptions {
		w.WriteHeader(http.StatusOK)
		return
	}
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "仅支持POST请求")
		return
	}

	var req AlignRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "解析请求失败: %v", err)
		return
	}

	result, err := runAlignment(&req)
	if err != nil {
		// 输入数据问题归为客户端错误
		writeError(w, http.StatusBadRequest, "校验错误: %v", err)
		return
	}

	if result.Format == "srt" {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		fmt.Fprint(w, result.SRT)
		return
	}

	writeJSON(w, http.StatusOK, result.Records)
}
