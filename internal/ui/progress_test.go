package ui

import (
	"bytes"
	"io"
	"os"
	"strings"
	"testing"
)

// 捕获标准输出的辅助函数
func captureOutput(f func()) string {
	old := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w

	outC := make(chan string)
	go func() {
		var buf bytes.Buffer
		io.Copy(&buf, r)
		outC <- buf.String()
	}()

	f()

	w.Close()
	os.Stdout = old
	return <-outC
}

func TestNewProgressBar(t *testing.T) {
	bar := NewProgressBar(100, "测试", "初始状态")

	if bar.Total != 100 {
		t.Errorf("进度条总数不匹配: 期望 100, 实际 %d", bar.Total)
	}
	if bar.Current != 0 {
		t.Errorf("进度条当前值不匹配: 期望 0, 实际 %d", bar.Current)
	}
	if bar.Prefix != "测试" {
		t.Errorf("进度条前缀不匹配: 期望 '测试', 实际 '%s'", bar.Prefix)
	}
	if bar.Suffix != "初始状态" {
		t.Errorf("进度条后缀不匹配: 期望 '初始状态', 实际 '%s'", bar.Suffix)
	}
}

func TestUpdate(t *testing.T) {
	bar := NewProgressBar(100, "测试", "")

	output := captureOutput(func() {
		bar.Update(50, "半程")
	})

	if bar.Current != 50 {
		t.Errorf("更新后进度不匹配: 期望 50, 实际 %d", bar.Current)
	}
	if bar.Suffix != "半程" {
		t.Errorf("更新后后缀不匹配: 期望 '半程', 实际 '%s'", bar.Suffix)
	}
	if !strings.Contains(output, "50%") {
		t.Errorf("输出中应包含百分比: %s", output)
	}

	// 超过总数时截断到总数
	captureOutput(func() {
		bar.Update(200, "")
	})
	if bar.Current != 100 {
		t.Errorf("超出总数时应截断: 期望 100, 实际 %d", bar.Current)
	}
}

func TestProgressManager(t *testing.T) {
	manager := NewProgressManager(true)

	captureOutput(func() {
		bar := manager.CreateProgressBar("task1", 10, "任务1", "")
		if bar == nil {
			t.Fatal("启用状态下应返回进度条")
		}

		manager.UpdateProgressBar("task1", 5, "进行中")
		if bar.Current != 5 {
			t.Errorf("管理器更新失败: 期望 5, 实际 %d", bar.Current)
		}

		manager.CompleteProgressBar("task1", "完成")
		if bar.Current != 10 {
			t.Errorf("完成后进度应为总数: 实际 %d", bar.Current)
		}
	})

	// 更新不存在的进度条不应panic
	manager.UpdateProgressBar("missing", 1, "")
	manager.CompleteProgressBar("missing", "")
}

func TestProgressManagerDisabled(t *testing.T) {
	manager := NewProgressManager(false)

	bar := manager.CreateProgressBar("task1", 10, "任务1", "")
	if bar != nil {
		t.Error("禁用状态下不应创建进度条")
	}

	// 禁用状态下的操作都是无操作
	manager.UpdateProgressBar("task1", 5, "")
	manager.CompleteProgressBar("task1", "")
}
