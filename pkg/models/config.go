package models

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
)

// Config 表示应用程序的配置
type Config struct {
	TranscriptFolder    string            `json:"transcript_folder"`     // 转写JSON文件所在文件夹
	OutputFolder        string            `json:"output_folder"`         // 输出结果文件夹
	BigPauseSeconds     float64           `json:"big_pause_seconds"`     // 触发新段落的停顿阈值（秒）
	MinWordsInSegment   int               `json:"min_words_in_segment"`  // 段落最少词数
	MaxDuration         float64           `json:"max_duration"`          // 段落最大时长（秒），超出时在句子边界切分
	LanguageCode        string            `json:"language_code"`         // 语言代码，为空时使用转写内嵌的语言
	SpeakerBrackets     bool              `json:"speaker_brackets"`      // 说话人标签使用 "- [Speaker]" 格式
	SkipPunctuationOnly bool              `json:"skip_punctuation_only"` // 将纯标点段落并入前一段
	NormalizeSpeakers   bool              `json:"normalize_speakers"`    // 将说话人标识归一化为 "Speaker N"
	SpeakerMap          map[string]string `json:"speaker_map"`           // 显式说话人映射，优先于自动归一化
	CleanInputText      bool              `json:"clean_input_text"`      // 预处理输入文本（去除NUL、展开缩略词等）
	FilterMeaningless   bool              `json:"filter_meaningless"`    // 过滤无实际内容的输出段落
	ExportSRT           bool              `json:"export_srt"`            // 是否导出SRT字幕文件
	ExportJSON          bool              `json:"export_json"`           // 是否导出JSON段落文件
	WatchMode           bool              `json:"watch_mode"`            // 是否启用监听模式
	ShowProgress        bool              `json:"show_progress"`         // 显示进度条
	MaxWorkers          int               `json:"max_workers"`           // 批处理并发数
	MaxRetries          int               `json:"max_retries"`           // 批处理最大重试次数
	RetryDelay          float64           `json:"retry_delay"`           // 重试延迟（秒）
	LogLevel            string            `json:"log_level"`             // 日志级别
	LogFile             string            `json:"log_file"`              // 日志文件
}

// ConfigValidationError 表示配置验证错误
type ConfigValidationError struct {
	Field   string
	Message string
}

func (e *ConfigValidationError) Error() string {
	msg := fmt.Sprintf("配置验证错误: %s - %s", e.Field, e.Message)
	logrus.Error(msg)
	return msg
}

// NewDefaultConfig 创建默认配置。
// 分段阈值采用生产环境的配置档（big_pause_seconds=1.0, max_duration=15.0）。
func NewDefaultConfig() *Config {
	return &Config{
		TranscriptFolder:    "./transcripts",
		OutputFolder:        "./output",
		BigPauseSeconds:     1.0,
		MinWordsInSegment:   2,
		MaxDuration:         15.0,
		LanguageCode:        "",
		SpeakerBrackets:     true,
		SkipPunctuationOnly: true,
		NormalizeSpeakers:   true,
		SpeakerMap:          nil,
		CleanInputText:      true,
		FilterMeaningless:   true,
		ExportSRT:           true,
		ExportJSON:          false,
		WatchMode:           false,
		ShowProgress:        true,
		MaxWorkers:          4,
		MaxRetries:          3,
		RetryDelay:          1.0,
		LogLevel:            "INFO",
		LogFile:             "",
	}
}

// Validate 验证配置是否有效
func (c *Config) Validate() error {
	// 验证文件夹路径
	if err := ensureDirExists(c.TranscriptFolder); err != nil {
		return &ConfigValidationError{"TranscriptFolder", err.Error()}
	}

	if err := ensureDirExists(c.OutputFolder); err != nil {
		return &ConfigValidationError{"OutputFolder", err.Error()}
	}

	// 验证数值范围
	if c.BigPauseSeconds < 0.1 || c.BigPauseSeconds > 10.0 {
		return &ConfigValidationError{"BigPauseSeconds", "必须在0.1-10.0秒之间"}
	}

	if c.MinWordsInSegment < 1 || c.MinWordsInSegment > 10 {
		return &ConfigValidationError{"MinWordsInSegment", "必须在1-10之间"}
	}

	if c.MaxDuration < 1.0 || c.MaxDuration > 300.0 {
		return &ConfigValidationError{"MaxDuration", "必须在1-300秒之间"}
	}

	if c.MaxWorkers < 1 || c.MaxWorkers > 16 {
		return &ConfigValidationError{"MaxWorkers", "必须在1-16之间"}
	}

	if c.MaxRetries < 1 || c.MaxRetries > 10 {
		return &ConfigValidationError{"MaxRetries", "必须在1-10之间"}
	}

	if c.RetryDelay < 0.1 || c.RetryDelay > 10.0 {
		return &ConfigValidationError{"RetryDelay", "必须在0.1-10.0秒之间"}
	}

	return nil
}

// LoadFromFile 从文件加载配置
func (c *Config) LoadFromFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		logrus.Errorf("读取配置文件失败: %v", err)
		return err
	}

	err = json.Unmarshal(data, c)
	if err != nil {
		logrus.Errorf("解析配置文件失败: %v", err)
		return err
	}

	if err := c.Validate(); err != nil {
		logrus.Errorf("配置验证失败: %v", err)
		return err
	}

	return nil
}

// SaveToFile 保存配置到文件
func (c *Config) SaveToFile(path string) error {
	// 确保目录存在
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		logrus.Errorf("创建目录失败: %v", err)
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		logrus.Errorf("序列化配置失败: %v", err)
		return err
	}

	err = os.WriteFile(path, data, 0644)
	if err != nil {
		logrus.Errorf("写入配置文件失败: %v", err)
		return err
	}

	return nil
}

// Update 批量更新配置
func (c *Config) Update(updates map[string]interface{}) error {
	// 创建临时配置并保存当前配置（用于回滚）
	tempConfig := *c

	// 将更新序列化为JSON再反序列化到结构体中
	// 这种方式处理map到struct的转换较为方便
	updateBytes, err := json.Marshal(updates)
	if err != nil {
		logrus.Errorf("序列化更新数据失败: %v", err)
		return err
	}

	err = json.Unmarshal(updateBytes, c)
	if err != nil {
		// 回滚配置
		*c = tempConfig
		logrus.Errorf("应用配置更新失败: %v", err)
		return err
	}

	// 验证配置
	if err := c.Validate(); err != nil {
		// 回滚配置
		*c = tempConfig
		logrus.Errorf("配置验证失败: %v", err)
		return err
	}

	return nil
}

// Reset 重置为默认配置
func (c *Config) Reset() {
	defaultConfig := NewDefaultConfig()
	*c = *defaultConfig
}

// PrintConfig 打印当前配置
func (c *Config) PrintConfig() {
	logrus.Info("\n当前配置:")
	bytes, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		logrus.Errorf("序列化配置失败: %v", err)
		return
	}
	logrus.Info(string(bytes))
}

// 确保目录存在，如果不存在则创建
func ensureDirExists(path string) error {
	if path == "" {
		return nil // 空路径视为可选
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return os.MkdirAll(path, 0755)
	}

	return nil
}
