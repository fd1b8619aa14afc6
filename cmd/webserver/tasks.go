package main

import (
	"encoding/json"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/The-Africa-Channel/Sentence-Segmentation-Aligner/pkg/utils"
)

// 任务状态常量
const (
	TaskStatusPending = "PENDING"
	TaskStatusRunning = "RUNNING"
	TaskStatusSuccess = "SUCCESS"
	TaskStatusFailed  = "FAILED"
)

// Task 异步对齐任务的内部表示
type Task struct {
	ID        string
	Status    string
	Result    *TaskResult
	Error     string
	CreatedAt time.Time
}

// taskRegistry 管理进行中和已完成的任务
type taskRegistry struct {
	tasks map[string]*Task
	mutex sync.RWMutex
}

var registry = &taskRegistry{tasks: make(map[string]*Task)}

// createTask 注册新任务并在后台执行对齐
func (tr *taskRegistry) createTask(req *AlignRequest) string {
	taskID := uuid.New().String()

	task := &Task{
		ID:        taskID,
		Status:    TaskStatusPending,
		CreatedAt: time.Now(),
	}

	tr.mutex.Lock()
	tr.tasks[taskID] = task
	tr.mutex.Unlock()

	go tr.runTask(task, req)
	return taskID
}

// runTask 在后台协程中执行对齐任务
func (tr *taskRegistry) runTask(task *Task, req *AlignRequest) {
	tr.setStatus(task.ID, TaskStatusRunning, nil, "")

	result, err := runAlignment(req)
	if err != nil {
		utils.Error("任务 %s 失败: %v", task.ID, err)
		tr.setStatus(task.ID, TaskStatusFailed, nil, err.Error())
		return
	}

	utils.Info("任务 %s 完成: %d 个段落", task.ID, result.SegmentCount)
	tr.setStatus(task.ID, TaskStatusSuccess, result, "")
}

func (tr *taskRegistry) setStatus(taskID, status string, result *TaskResult, errMsg string) {
	tr.mutex.Lock()
	defer tr.mutex.Unlock()

	if task, ok := tr.tasks[taskID]; ok {
		task.Status = status
		task.Result = result
		task.Error = errMsg
	}
}

// get 返回任务状态的快照，后台协程可能仍在更新原任务
func (tr *taskRegistry) get(taskID string) (Task, bool) {
	tr.mutex.RLock()
	defer tr.mutex.RUnlock()

	task, ok := tr.tasks[taskID]
	if !ok {
		return Task{}, false
	}
	return *task, true
}

func (tr *taskRegistry) delete(taskID string) bool {
	tr.mutex.Lock()
	defer tr.mutex.Unlock()

	if _, ok := tr.tasks[taskID]; !ok {
		return false
	}
	delete(tr.tasks, taskID)
	return true
}

// handleCreateAlignTask 创建异步对齐任务，立即返回任务ID
func handleCreateAlignTask(w http.ResponseWriter, r *http.Request) {
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
	if len(req.Transcription) == 0 {
		writeError(w, http.StatusBadRequest, "请求缺少transcription字段")
		return
	}

	taskID := registry.createTask(&req)

	resp := AlignTaskResponse{BaseResponse: BaseResponse{Code: 0}}
	resp.Data = &struct {
		TaskID string `json:"task_id"`
	}{TaskID: taskID}
	writeJSON(w, http.StatusOK, resp)
}

// handleGetTaskStatus 查询异步任务状态
func handleGetTaskStatus(w http.ResponseWriter, r *http.Request) {
	setCORSHeaders(w)

	taskID := strings.TrimPrefix(r.URL.Path, "/api/task_status/")
	if taskID == "" {
		writeError(w, http.StatusBadRequest, "缺少任务ID")
		return
	}

	task, ok := registry.get(taskID)
	if !ok {
		writeError(w, http.StatusNotFound, "任务不存在: %s", taskID)
		return
	}

	resp := TaskStatusResponse{BaseResponse: BaseResponse{Code: 0}}
	resp.Data = &TaskStatusData{Status: task.Status, Result: task.Result}
	if task.Error != "" {
		resp.Msg = task.Error
	}
	writeJSON(w, http.StatusOK, resp)
}

// handleDeleteTask 删除任务记录
func handleDeleteTask(w http.ResponseWriter, r *http.Request) {
	setCORSHeaders(w)

	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "仅支持POST请求")
		return
	}

	var req DeleteTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "解析请求失败: %v", err)
		return
	}

	if !registry.delete(req.TaskID) {
		writeError(w, http.StatusNotFound, "任务不存在: %s", req.TaskID)
		return
	}

	writeJSON(w, http.StatusOK, BaseResponse{Code: 0, Msg: "已删除"})
}
