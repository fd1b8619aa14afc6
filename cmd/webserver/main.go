package main

import (
	"flag"
	"fmt"
	"net/http"
	"strings"

	"github.com/The-Africa-Channel/Sentence-Segmentation-Aligner/pkg/utils"
)

var (
	listenAddr = flag.String("addr", ":8080", "HTTP监听地址")
	logLevel   = flag.String("log-level", "INFO", "日志级别 (VERBOSE, INFO, WARN)")
	logFile    = flag.String("log-file", "", "日志文件路径")
)

func apiHandler(w http.ResponseWriter, r *http.Request) {
	utils.Info("接收到 API 请求: %s %s", r.Method, r.URL.Path)

	// 移除 /api/ 前缀，方便匹配
	trimmedPath := strings.TrimPrefix(r.URL.Path, "/api/")

	// 根据路径分发到不同的处理器
	switch {
	case trimmedPath == "align":
		handleAlign(w, r)
	case trimmedPath == "align_task":
		handleCreateAlignTask(w, r)
	// 注意：task_status 后面跟着 task_id
	case strings.HasPrefix(trimmedPath, "task_status/"):
		handleGetTaskStatus(w, r)
	case trimmedPath == "delete_task":
		handleDeleteTask(w, r)
	default:
		// 如果没有匹配的 API 路径，返回 404
		http.NotFound(w, r)
		utils.Warn("未找到 API 处理器: %s", r.URL.Path)
	}
}

func main() {
	flag.Parse()

	if err := utils.InitLogger(*logLevel, *logFile); err != nil {
		fmt.Printf("初始化日志失败: %v\n", err)
		return
	}

	http.HandleFunc("/api/", apiHandler)

	utils.Info("对齐服务启动，监听地址: %s", *listenAddr)
	if err := http.ListenAndServe(*listenAddr, nil); err != nil {
		utils.Fatal("HTTP服务启动失败: %v", err)
	}
}
