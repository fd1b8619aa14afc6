package scanner

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/The-Africa-Channel/Sentence-Segmentation-Aligner/pkg/utils"
)

// TranscriptFile 表示一个转写JSON文件
type TranscriptFile struct {
	Path    string    // 文件路径
	Name    string    // 文件名
	Ext     string    // 文件扩展名
	Size    int64     // 文件大小（字节）
	ModTime time.Time // 修改时间
}

// TranscriptScanner 用于扫描转写文件
type TranscriptScanner struct {
	Extensions []string
}

// NewTranscriptScanner 创建新的转写文件扫描器
func NewTranscriptScanner() *TranscriptScanner {
	return &TranscriptScanner{
		Extensions: []string{".json"},
	}
}

// ScanDirectory 扫描指定目录中的转写文件（非递归，跳过隐藏文件）
func (s *TranscriptScanner) ScanDirectory(dir string) ([]TranscriptFile, error) {
	var transcriptFiles []TranscriptFile

	logrus.Infof("开始扫描目录: %s", dir)

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	for _, entry := range entries {
		// 跳过目录和隐藏文件
		if entry.IsDir() || strings.HasPrefix(entry.Name(), ".") {
			continue
		}

		info, err := entry.Info()
		if err != nil {
			logrus.Warnf("获取文件信息失败: %v", err)
			continue
		}

		path := filepath.Join(dir, entry.Name())
		ext := strings.ToLower(filepath.Ext(path))

		matched := false
		for _, targetExt := range s.Extensions {
			if ext == targetExt {
				matched = true
				break
			}
		}
		if !matched {
			continue
		}

		logrus.Debugf("发现转写文件: %s (%s)", entry.Name(), utils.FormatFileSize(info.Size()))
		transcriptFiles = append(transcriptFiles, TranscriptFile{
			Path:    path,
			Name:    entry.Name(),
			Ext:     ext,
			Size:    info.Size(),
			ModTime: info.ModTime(),
		})
	}

	logrus.Infof("扫描完成，找到 %d 个转写文件", len(transcriptFiles))
	return transcriptFiles, nil
}
