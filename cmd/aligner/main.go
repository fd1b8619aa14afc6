package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/fatih/color"
	"github.com/sirupsen/logrus"

	"github.com/The-Africa-Channel/Sentence-Segmentation-Aligner/internal/ui"
	"github.com/The-Africa-Channel/Sentence-Segmentation-Aligner/internal/watcher"
	"github.com/The-Africa-Channel/Sentence-Segmentation-Aligner/pkg/align"
	"github.com/The-Africa-Channel/Sentence-Segmentation-Aligner/pkg/export"
	"github.com/The-Africa-Channel/Sentence-Segmentation-Aligner/pkg/models"
	"github.com/The-Africa-Channel/Sentence-Segmentation-Aligner/pkg/processor"
	"github.com/The-Africa-Channel/Sentence-Segmentation-Aligner/pkg/utils"
)

var (
	configFile        = flag.String("config", "", "配置文件路径")
	transcriptDir     = flag.String("transcript-dir", "./transcripts", "转写文件目录（批处理/监听模式）")
	outputDir         = flag.String("output", "./output", "输出目录")
	bigPauseSeconds   = flag.Float64("big-pause-seconds", 1.0, "触发新段落的停顿阈值（秒）")
	minWordsInSegment = flag.Int("min-words-in-segment", 2, "段落最少词数")
	maxDuration       = flag.Float64("max-duration", 15.0, "段落最大时长（秒），超出时在句子边界切分")
	languageCode      = flag.String("language-code", "", "语言代码，覆盖转写内嵌的语言")
	speakerBrackets   = flag.Bool("speaker-brackets", true, "说话人标签使用 '- [Speaker]' 格式")
	fixPunctuation    = flag.Bool("fix-orphaned-punctuation", true, "将纯标点段落并入前一段")
	normalizeSpeakers = flag.Bool("normalize-speakers", true, "将说话人标识归一化为 'Speaker N'")
	speakerMapSpec    = flag.String("speaker-map", "", "显式说话人映射，格式 id=名字,id=名字")
	cleanInput        = flag.Bool("clean-input", true, "预处理输入文本（去除NUL、展开缩略词等）")
	filterMeaningless = flag.Bool("filter-meaningless", true, "过滤只含标点或填充符的输出段落")
	exportSRT         = flag.Bool("srt", false, "导出SRT字幕文件而不是打印段落")
	exportJSON        = flag.Bool("json", false, "导出JSON段落文件")
	batchMode         = flag.Bool("batch", false, "批处理转写目录下的所有文件")
	watchMode         = flag.Bool("watch", false, "监听转写目录，自动处理新文件")
	logLevel          = flag.String("log-level", "INFO", "日志级别 (VERBOSE, INFO, WARN)")
	logFile           = flag.String("log-file", "", "日志文件路径")
)

func main() {
	flag.Parse()

	if err := utils.InitLogger(*logLevel, *logFile); err != nil {
		fmt.Fprintf(os.Stderr, "初始化日志失败: %v\n", err)
		os.Exit(1)
	}

	printWelcome()

	config := loadConfig()

	switch {
	case *watchMode:
		runWatchMode(config)
	case *batchMode:
		runBatchMode(config)
	default:
		runSingleFile(config)
	}
}

func printWelcome() {
	fmt.Println()
	color.Cyan("================================")
	color.Cyan("     句子分段对齐工具")
	color.Cyan("================================")
	fmt.Println()
}

func loadConfig() *models.Config {
	config := models.NewDefaultConfig()

	// 如果指定了配置文件，先加载
	if *configFile != "" {
		if err := config.LoadFromFile(*configFile); err != nil {
			color.Yellow("警告: 加载配置文件失败: %v", err)
			logrus.Warnf("配置加载失败: %v，将使用默认配置", err)
		}
	}

	// 命令行显式指定的参数覆盖配置文件
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "transcript-dir":
			config.TranscriptFolder = *transcriptDir
		case "output":
			config.OutputFolder = *outputDir
		case "big-pause-seconds":
			config.BigPauseSeconds = *bigPauseSeconds
		case "min-words-in-segment":
			config.MinWordsInSegment = *minWordsInSegment
		case "max-duration":
			config.MaxDuration = *maxDuration
		case "language-code":
			config.LanguageCode = *languageCode
		case "speaker-brackets":
			config.SpeakerBrackets = *speakerBrackets
		case "fix-orphaned-punctuation":
			config.SkipPunctuationOnly = *fixPunctuation
		case "normalize-speakers":
			config.NormalizeSpeakers = *normalizeSpeakers
		case "speaker-map":
			speakerMap, err := parseSpeakerMap(*speakerMapSpec)
			if err != nil {
				logrus.Fatalf("说话人映射无效: %v", err)
			}
			config.SpeakerMap = speakerMap
		case "clean-input":
			config.CleanInputText = *cleanInput
		case "filter-meaningless":
			config.FilterMeaningless = *filterMeaningless
		case "srt":
			config.ExportSRT = *exportSRT
		case "json":
			config.ExportJSON = *exportJSON
		}
	})

	if err := config.Validate(); err != nil {
		logrus.Fatalf("配置无效: %v", err)
	}

	return config
}

// parseSpeakerMap 解析 "id=名字,id=名字" 形式的说话人映射
func parseSpeakerMap(value string) (map[string]string, error) {
	speakerMap := make(map[string]string)
	for _, pair := range strings.Split(value, ",") {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}
		key, value, ok := strings.Cut(pair, "=")
		key = strings.TrimSpace(key)
		value = strings.TrimSpace(value)
		if !ok || key == "" || value == "" {
			return nil, fmt.Errorf("无法解析映射项 %q，期望 id=名字 格式", pair)
		}
		speakerMap[key] = value
	}
	return speakerMap, nil
}

// runSingleFile 处理单个转写文件：默认打印段落，按参数导出SRT/JSON
func runSingleFile(config *models.Config) {
	transcriptPath := flag.Arg(0)
	if transcriptPath == "" {
		transcriptPath = "transcription.json"
	}

	if !utils.CheckFileExists(transcriptPath) {
		logrus.Fatalf("转写文件不存在: %s", transcriptPath)
	}

	transcription, err := models.LoadTranscription(transcriptPath)
	if err != nil {
		logrus.Fatalf("加载转写文件失败: %v", err)
	}

	startTime := time.Now()

	aligner := align.NewAligner(config)
	segments, err := aligner.AlignTranscription(transcription)
	if err != nil {
		logrus.Fatalf("转写数据无效: %v", err)
	}

	fmt.Printf("共 %d 个词，分为 %d 个段落\n\n", len(transcription.Words), len(segments))

	if *exportSRT || *exportJSON {
		if *exportSRT {
			srtExporter := export.NewSRTExporter(config.OutputFolder)
			srtExporter.SpeakerBrackets = config.SpeakerBrackets
			srtExporter.NormalizeSpeakers = config.NormalizeSpeakers
			srtExporter.SpeakerMap = config.SpeakerMap

			outputFile, err := srtExporter.ExportSRT(segments, transcriptPath)
			if err != nil {
				logrus.Fatalf("导出SRT失败: %v", err)
			}
			color.Green("SRT字幕已保存: %s", outputFile)
		}

		if *exportJSON {
			records := aligner.ResultRecords(segments)
			if config.FilterMeaningless {
				records = align.FilterMeaningfulRecords(records)
			}

			resultExporter := export.NewResultExporter(config.OutputFolder)
			outputFile, err := resultExporter.ExportJSON(records, transcriptPath)
			if err != nil {
				logrus.Fatalf("导出JSON失败: %v", err)
			}
			color.Green("JSON段落已保存: %s", outputFile)
		}
	} else {
		printSegments(segments, config)
	}

	fmt.Printf("处理用时: %s\n", utils.FormatTimeDuration(time.Since(startTime).Seconds()))
}

// printSegments 按 "Segment N: 标签 (开始-结束)" 格式打印段落
func printSegments(segments []models.Segment, config *models.Config) {
	speakerMap := config.SpeakerMap
	if speakerMap == nil && config.NormalizeSpeakers {
		speakerMap = align.SpeakerMapForSegments(segments)
	}

	for i, segment := range segments {
		speaker := segment.Speaker()
		if label, ok := speakerMap[speaker]; ok {
			speaker = label
		} else if config.NormalizeSpeakers {
			speaker = align.NormalizeSpeakerID(speaker)
		}

		var label string
		if config.SpeakerBrackets {
			label = fmt.Sprintf("- [%s]", speaker)
		} else {
			label = speaker
		}

		color.Green("Segment %d: %s (%.2f-%.2f)", i+1, label, segment.Start(), segment.End())
		fmt.Printf("%s\n\n", segment.Text())
	}
}

// runBatchMode 批处理转写目录下的所有文件
func runBatchMode(config *models.Config) {
	fmt.Printf("开始批处理: %s\n", utils.GetCurrentTimeString())

	progressManager := ui.NewProgressManager(config.ShowProgress)
	if config.ShowProgress {
		utils.EnableTerminalProgress()
		defer utils.DisableTerminalProgress()
	}

	batchProcessor := processor.NewBatchProcessor(
		config.TranscriptFolder, config.OutputFolder, nil, config)
	batchProcessor.SetProgressManager(progressManager)

	results, err := batchProcessor.ProcessTranscriptFiles()
	if err != nil {
		logrus.Fatalf("批处理失败: %v", err)
	}

	if len(results) == 0 {
		fmt.Println("没有找到转写文件")
		return
	}

	// 汇总结果
	succeeded := 0
	for _, result := range results {
		if result.Success {
			succeeded++
		} else {
			color.Red("失败: %s: %v", result.FilePath, result.Error)
		}
	}
	fmt.Printf("\n批处理完成: %d/%d 个文件成功\n", succeeded, len(results))

	batchProcessor.ErrorHandler.PrintErrorStats()

	if succeeded < len(results) {
		os.Exit(1)
	}
}

// runWatchMode 监听转写目录，自动处理新出现的文件
func runWatchMode(config *models.Config) {
	batchProcessor := processor.NewBatchProcessor(
		config.TranscriptFolder, config.OutputFolder, nil, config)

	stop, err := watcher.StartTranscriptMonitoring(config.TranscriptFolder, batchProcessor)
	if err != nil {
		logrus.Fatalf("启动监听失败: %v", err)
	}
	defer stop()

	fmt.Printf("正在监听 %s，按 Ctrl+C 退出\n", config.TranscriptFolder)

	// 等待退出信号
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan

	fmt.Println("\n收到退出信号，停止监听")
}
