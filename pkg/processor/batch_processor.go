package processor

import (
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/The-Africa-Channel/Sentence-Segmentation-Aligner/internal/ui"
	"github.com/The-Africa-Channel/Sentence-Segmentation-Aligner/pkg/align"
	"github.com/The-Africa-Channel/Sentence-Segmentation-Aligner/pkg/export"
	"github.com/The-Africa-Channel/Sentence-Segmentation-Aligner/pkg/models"
	"github.com/The-Africa-Channel/Sentence-Segmentation-Aligner/pkg/scanner"
	"github.com/The-Africa-Channel/Sentence-Segmentation-Aligner/pkg/utils"
)

// BatchResult 存储单个转写文件的处理结果
type BatchResult struct {
	FilePath     string
	Success      bool
	OutputFiles  []string
	SegmentCount int
	Error        error
	ProcessTime  time.Duration
}

// BatchProgressCallback 批处理进度回调
type BatchProgressCallback func(current, total int, filename string, result *BatchResult)

// BatchProcessor 批量对齐转写文件并导出结果
type BatchProcessor struct {
	TranscriptDir    string
	OutputDir        string
	MaxConcurrency   int
	Aligner          *align.Aligner
	Scanner          *scanner.TranscriptScanner
	SRTExporter      *export.SRTExporter
	ResultExporter   *export.ResultExporter
	ErrorHandler     *utils.ErrorHandler
	Config           *models.Config
	ProgressCallback BatchProgressCallback
	ProgressManager  *ui.ProgressManager
}

// NewBatchProcessor 创建批处理器
func NewBatchProcessor(transcriptDir, outputDir string, callback BatchProgressCallback, config *models.Config) *BatchProcessor {
	// 确保目录存在
	utils.EnsureDirExists(outputDir)

	srtExporter := export.NewSRTExporter(outputDir)
	srtExporter.SpeakerBrackets = config.SpeakerBrackets
	srtExporter.NormalizeSpeakers = config.NormalizeSpeakers
	srtExporter.SpeakerMap = config.SpeakerMap

	return &BatchProcessor{
		TranscriptDir:    transcriptDir,
		OutputDir:        outputDir,
		MaxConcurrency:   config.MaxWorkers,
		Aligner:          align.NewAligner(config),
		Scanner:          scanner.NewTranscriptScanner(),
		SRTExporter:      srtExporter,
		ResultExporter:   export.NewResultExporter(outputDir),
		ErrorHandler:     utils.NewErrorHandler(config.MaxRetries, config.RetryDelay),
		Config:           config,
		ProgressCallback: callback,
	}
}

// SetProgressManager 设置进度管理器
func (p *BatchProcessor) SetProgressManager(manager *ui.ProgressManager) {
	p.ProgressManager = manager
}

// ProcessTranscriptFiles 并发处理目录下的所有转写文件
func (p *BatchProcessor) ProcessTranscriptFiles() ([]BatchResult, error) {
	files, err := p.Scanner.ScanDirectory(p.TranscriptDir)
	if err != nil {
		return nil, err
	}

	if len(files) == 0 {
		return []BatchResult{}, nil
	}

	// 创建总进度条
	if p.ProgressManager != nil {
		p.ProgressManager.CreateProgressBar("batch_overall", len(files),
			"总体进度", fmt.Sprintf("0/%d 文件已处理", len(files)))
	}

	// 创建结果通道
	results := make(chan BatchResult, len(files))

	// 使用协程池处理文件
	var wg sync.WaitGroup
	sem := make(chan struct{}, p.MaxConcurrency) // 信号量限制并发

	for i, file := range files {
		wg.Add(1)
		sem <- struct{}{} // 获取信号量

		go func(index int, path string) {
			defer wg.Done()
			defer func() { <-sem }() // 释放信号量

			filename := filepath.Base(path)
			startTime := time.Now()

			// 通知处理开始
			if p.ProgressCallback != nil {
				p.ProgressCallback(index+1, len(files), filename, nil)
			}

			// 处理单个文件
			result := p.processSingleFile(path)
			result.ProcessTime = time.Since(startTime)

			// 通知处理结束
			if p.ProgressCallback != nil {
				p.ProgressCallback(index+1, len(files), filename, &result)
			}

			// 更新总进度条
			if p.ProgressManager != nil {
				p.ProgressManager.UpdateProgressBar("batch_overall", index+1,
					fmt.Sprintf("%d/%d 文件已处理", index+1, len(files)))
			}

			results <- result
		}(i, file.Path)
	}

	// 等待所有文件处理完成
	wg.Wait()
	close(results)

	// 完成总进度条
	if p.ProgressManager != nil {
		p.ProgressManager.CompleteProgressBar("batch_overall", "所有文件处理完成")
	}

	// 收集所有结果
	allResults := make([]BatchResult, 0, len(files))
	for result := range results {
		allResults = append(allResults, result)
	}

	return allResults, nil
}

// ProcessFile 对齐单个转写文件并按配置导出，返回处理结果
func (p *BatchProcessor) ProcessFile(filePath string) BatchResult {
	return p.processSingleFile(filePath)
}

// 处理单个文件
func (p *BatchProcessor) processSingleFile(filePath string) BatchResult {
	result := BatchResult{
		FilePath: filePath,
		Success:  false,
	}

	filename := filepath.Base(filePath)
	fileID := filename[:len(filename)-len(filepath.Ext(filename))]

	// 创建文件进度条
	if p.ProgressManager != nil {
		p.ProgressManager.CreateProgressBar("file_"+fileID, 100,
			fmt.Sprintf("处理 %s", filename), "准备中")
	}

	// 读取并校验转写文件，I/O失败时按配置重试
	var transcription *models.Transcription
	err := p.ErrorHandler.Retry("加载转写文件 "+filename, func() error {
		var loadErr error
		transcription, loadErr = models.LoadTranscription(filePath)
		return loadErr
	})
	if err != nil {
		if p.ProgressManager != nil {
			p.ProgressManager.CompleteProgressBar("file_"+fileID, fmt.Sprintf("失败: %v", err))
		}
		result.Error = err
		return result
	}

	if p.ProgressManager != nil {
		p.ProgressManager.UpdateProgressBar("file_"+fileID, 30, "分段中")
	}

	// 运行分段流水线
	segments, err := p.Aligner.AlignTranscription(transcription)
	if err != nil {
		if p.ProgressManager != nil {
			p.ProgressManager.CompleteProgressBar("file_"+fileID, fmt.Sprintf("失败: %v", err))
		}
		result.Error = fmt.Errorf("转写数据无效: %w", err)
		return result
	}

	result.SegmentCount = len(segments)
	logrus.Infof("[%s] 分段完成: %d 个词 -> %d 个段落",
		filename, len(transcription.Words), len(segments))

	if p.ProgressManager != nil {
		p.ProgressManager.UpdateProgressBar("file_"+fileID, 70, "导出中")
	}

	// 按配置导出
	if p.Config.ExportSRT {
		outputFile, err := p.SRTExporter.ExportSRT(segments, filename)
		if err != nil {
			if p.ProgressManager != nil {
				p.ProgressManager.CompleteProgressBar("file_"+fileID, fmt.Sprintf("失败: %v", err))
			}
			result.Error = err
			return result
		}
		result.OutputFiles = append(result.OutputFiles, outputFile)
	}

	if p.Config.ExportJSON {
		records := p.Aligner.ResultRecords(segments)
		if p.Config.FilterMeaningless {
			records = align.FilterMeaningfulRecords(records)
		}
		outputFile, err := p.ResultExporter.ExportJSON(records, filename)
		if err != nil {
			if p.ProgressManager != nil {
				p.ProgressManager.CompleteProgressBar("file_"+fileID, fmt.Sprintf("失败: %v", err))
			}
			result.Error = err
			return result
		}
		result.OutputFiles = append(result.OutputFiles, outputFile)
	}

	if p.ProgressManager != nil {
		p.ProgressManager.CompleteProgressBar("file_"+fileID,
			fmt.Sprintf("完成，%d 个段落", len(segments)))
	}

	result.Success = true
	return result
}
