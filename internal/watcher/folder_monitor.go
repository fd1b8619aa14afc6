package watcher

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/The-Africa-Channel/Sentence-Segmentation-Aligner/pkg/processor"
	"github.com/The-Africa-Channel/Sentence-Segmentation-Aligner/pkg/utils"
)

// FileEventHandler 是处理文件事件的接口
type FileEventHandler interface {
	OnFileCreated(filePath string)
}

// FolderMonitor 监控文件夹变化，写入事件经过防抖后才触发处理，
// 避免文件尚未写完就被读取
type FolderMonitor struct {
	watcher        *fsnotify.Watcher
	folderPath     string
	fileExtensions []string
	handler        FileEventHandler
	debounceTime   time.Duration
	pendingFiles   map[string]*time.Timer
	mutex          sync.Mutex
	stopChan       chan struct{}
}

// NewFolderMonitor 创建新的文件夹监控器
func NewFolderMonitor(folderPath string, extensions []string, handler FileEventHandler, debounceTime time.Duration) (*FolderMonitor, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("创建文件监控器失败: %w", err)
	}

	monitor := &FolderMonitor{
		watcher:        watcher,
		folderPath:     folderPath,
		fileExtensions: extensions,
		handler:        handler,
		debounceTime:   debounceTime,
		pendingFiles:   make(map[string]*time.Timer),
		stopChan:       make(chan struct{}),
	}

	return monitor, nil
}

// Start 开始监控文件夹
func (m *FolderMonitor) Start() error {
	// 确保文件夹存在
	if err := os.MkdirAll(m.folderPath, 0755); err != nil {
		return fmt.Errorf("创建文件夹失败: %w", err)
	}

	// 添加要监控的文件夹
	if err := m.watcher.Add(m.folderPath); err != nil {
		return fmt.Errorf("添加监控文件夹失败: %w", err)
	}

	// 启动监控协程
	go m.watchLoop()

	utils.Info("开始监控文件夹: %s", m.folderPath)
	return nil
}

// Stop 停止监控
func (m *FolderMonitor) Stop() {
	close(m.stopChan)
	m.watcher.Close()
	utils.Info("停止监控文件夹: %s", m.folderPath)

	// 取消所有待处理的文件定时器
	m.mutex.Lock()
	defer m.mutex.Unlock()
	for _, timer := range m.pendingFiles {
		timer.Stop()
	}
}

// watchLoop 监控循环
func (m *FolderMonitor) watchLoop() {
	for {
		select {
		case <-m.stopChan:
			return
		case event, ok := <-m.watcher.Events:
			if !ok {
				return
			}
			m.handleFileEvent(event)
		case err, ok := <-m.watcher.Errors:
			if !ok {
				return
			}
			utils.Error("监控文件夹时出错: %v", err)
		}
	}
}

// 处理文件事件
func (m *FolderMonitor) handleFileEvent(event fsnotify.Event) {
	// 只处理创建和修改事件
	if event.Op&(fsnotify.Create|fsnotify.Write) == 0 {
		return
	}

	filePath := event.Name
	if !m.isTargetFile(filePath) {
		return
	}

	m.mutex.Lock()
	defer m.mutex.Unlock()

	// 取消已存在的定时器
	if timer, exists := m.pendingFiles[filePath]; exists {
		timer.Stop()
	}

	// 创建新的定时器
	m.pendingFiles[filePath] = time.AfterFunc(m.debounceTime, func() {
		m.processFile(filePath)
	})

	utils.Debug("检测到文件变化: %s", filePath)
}

// 判断是否为目标文件类型
func (m *FolderMonitor) isTargetFile(filePath string) bool {
	// 检查是否为常规文件
	fileInfo, err := os.Stat(filePath)
	if err != nil || fileInfo.IsDir() {
		return false
	}

	// 检查扩展名
	ext := strings.ToLower(filepath.Ext(filePath))
	for _, targetExt := range m.fileExtensions {
		if ext == targetExt {
			return true
		}
	}
	return false
}

// 处理文件
func (m *FolderMonitor) processFile(filePath string) {
	m.mutex.Lock()
	delete(m.pendingFiles, filePath)
	m.mutex.Unlock()

	// 检查文件是否仍然存在
	if _, err := os.Stat(filePath); os.IsNotExist(err) {
		return
	}

	utils.Info("准备处理文件: %s", filePath)
	if m.handler != nil {
		m.handler.OnFileCreated(filePath)
	}
}

// TranscriptHandler 把新出现的转写文件交给批处理器对齐导出
type TranscriptHandler struct {
	processor      *processor.BatchProcessor
	processedFiles map[string]bool
	mutex          sync.Mutex
}

// NewTranscriptHandler 创建转写文件处理器
func NewTranscriptHandler(batchProcessor *processor.BatchProcessor) *TranscriptHandler {
	return &TranscriptHandler{
		processor:      batchProcessor,
		processedFiles: make(map[string]bool),
	}
}

// OnFileCreated 处理文件创建事件
func (h *TranscriptHandler) OnFileCreated(filePath string) {
	h.mutex.Lock()
	if h.processedFiles[filePath] {
		h.mutex.Unlock()
		return
	}
	h.processedFiles[filePath] = true
	h.mutex.Unlock()

	result := h.processor.ProcessFile(filePath)
	if result.Error != nil {
		utils.Error("处理转写文件失败 %s: %v", filePath, result.Error)

		// 处理失败的文件允许重新投递
		h.mutex.Lock()
		delete(h.processedFiles, filePath)
		h.mutex.Unlock()
		return
	}

	utils.Info("转写文件处理完成: %s (%d 个段落)", filePath, result.SegmentCount)
}

// StartTranscriptMonitoring 开始监控转写文件夹，返回停止函数
func StartTranscriptMonitoring(folder string, batchProcessor *processor.BatchProcessor) (func(), error) {
	handler := NewTranscriptHandler(batchProcessor)

	monitor, err := NewFolderMonitor(folder, []string{".json"}, handler, 2*time.Second)
	if err != nil {
		return nil, err
	}

	if err := monitor.Start(); err != nil {
		return nil, err
	}

	return func() {
		monitor.Stop()
	}, nil
}
