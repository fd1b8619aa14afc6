package ui

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/fatih/color"
)

// ProgressBar 终端进度条
type ProgressBar struct {
	Total     int       // 总步数
	Current   int       // 当前进度
	Prefix    string    // 前缀
	Suffix    string    // 后缀
	Width     int       // 进度条宽度
	StartTime time.Time // 开始时间
}

// NewProgressBar 创建新的进度条
func NewProgressBar(total int, prefix string, suffix string) *ProgressBar {
	return &ProgressBar{
		Total:     total,
		Current:   0,
		Prefix:    prefix,
		Suffix:    suffix,
		Width:     30,
		StartTime: time.Now(),
	}
}

// Update 更新进度
func (p *ProgressBar) Update(current int, suffix string) {
	if current < 0 {
		return
	}
	if current > p.Total {
		current = p.Total
	}

	p.Current = current
	if suffix != "" {
		p.Suffix = suffix
	}
	p.draw()
}

// Complete 完成进度条
func (p *ProgressBar) Complete(suffix string) {
	p.Update(p.Total, suffix)
	fmt.Println() // 添加换行
}

// 绘制进度条
func (p *ProgressBar) draw() {
	percent := float64(p.Current) / float64(p.Total)
	filled := int(percent * float64(p.Width))
	if filled > p.Width {
		filled = p.Width
	}

	bar := strings.Repeat("█", filled) + strings.Repeat("░", p.Width-filled)

	// 估计剩余时间
	elapsed := time.Since(p.StartTime)
	var remaining time.Duration
	if p.Current > 0 {
		remaining = time.Duration(float64(elapsed) / percent * (1 - percent))
	}

	progressLine := fmt.Sprintf("\r%s [%s] %3.0f%% | %d/%d | %s<%s | %s",
		p.Prefix, bar, percent*100, p.Current, p.Total,
		formatDuration(elapsed), formatDuration(remaining), p.Suffix)

	fmt.Print(color.CyanString(progressLine))
}

// 格式化持续时间为 MM:SS 格式
func formatDuration(d time.Duration) string {
	minutes := int(d.Minutes())
	seconds := int(d.Seconds()) % 60
	return fmt.Sprintf("%02d:%02d", minutes, seconds)
}

// ProgressManager 管理多个进度条
type ProgressManager struct {
	progressBars map[string]*ProgressBar
	mutex        sync.Mutex
	enabled      bool
}

// NewProgressManager 创建新的进度管理器
func NewProgressManager(enabled bool) *ProgressManager {
	return &ProgressManager{
		progressBars: make(map[string]*ProgressBar),
		enabled:      enabled,
	}
}

// CreateProgressBar 创建并注册一个新的进度条
func (pm *ProgressManager) CreateProgressBar(id string, total int, prefix string, suffix string) *ProgressBar {
	pm.mutex.Lock()
	defer pm.mutex.Unlock()

	// 如果已经存在同名进度条，先完成它
	if bar, exists := pm.progressBars[id]; exists {
		bar.Complete("已被替换")
	}

	if !pm.enabled {
		return nil
	}

	bar := NewProgressBar(total, prefix, suffix)
	pm.progressBars[id] = bar
	return bar
}

// UpdateProgressBar 更新进度条
func (pm *ProgressManager) UpdateProgressBar(id string, current int, suffix string) {
	if !pm.enabled {
		return
	}

	pm.mutex.Lock()
	bar, exists := pm.progressBars[id]
	pm.mutex.Unlock()

	if exists {
		bar.Update(current, suffix)
	}
}

// CompleteProgressBar 完成进度条并将其移除
func (pm *ProgressManager) CompleteProgressBar(id string, suffix string) {
	if !pm.enabled {
		return
	}

	pm.mutex.Lock()
	bar, exists := pm.progressBars[id]
	if exists {
		delete(pm.progressBars, id)
	}
	pm.mutex.Unlock()

	if exists {
		bar.Complete(suffix)
	}
}
