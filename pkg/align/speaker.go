package align

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/The-Africa-Channel/Sentence-Segmentation-Aligner/pkg/models"
)

var digitRunRe = regexp.MustCompile(`\d+`)

// NormalizeSpeakerID 将原始说话人标识归一化为 "Speaker N" 格式。
// 去掉常见前缀后提取第一段数字；speaker_N 形式采用0基编号，显示时转为1基，
// 其余形式按原数字使用（0映射为1）。找不到数字时回退为 "Speaker 1"。
func NormalizeSpeakerID(raw string) string {
	if raw == "" {
		return "Speaker 1"
	}

	cleaned := strings.ToLower(raw)
	for _, prefix := range []string{"speaker_", "spk_", "speaker", "spk"} {
		if strings.HasPrefix(cleaned, prefix) {
			cleaned = cleaned[len(prefix):]
			break
		}
	}

	match := digitRunRe.FindString(cleaned)
	if match == "" {
		return "Speaker 1"
	}
	num, err := strconv.Atoi(match)
	if err != nil {
		return "Speaker 1"
	}

	if strings.HasPrefix(strings.ToLower(raw), "speaker_") {
		// speaker_0、speaker_1 为0基编号，显示时转为1基
		num++
	} else if num == 0 {
		num = 1
	}

	return fmt.Sprintf("Speaker %d", num)
}

// BuildSpeakerMap 为一次输出构建统一的说话人映射：
// 去重后的原始标识按字典序排序，依次编号为 "Speaker 1"、"Speaker 2"……
// 同一组标识总是产生相同的映射，且不同标识映射到不同标签。
func BuildSpeakerMap(rawIDs []string) map[string]string {
	seen := make(map[string]bool, len(rawIDs))
	var distinct []string
	for _, id := range rawIDs {
		if !seen[id] {
			seen[id] = true
			distinct = append(distinct, id)
		}
	}
	sort.Strings(distinct)

	speakerMap := make(map[string]string, len(distinct))
	for i, id := range distinct {
		speakerMap[id] = fmt.Sprintf("Speaker %d", i+1)
	}
	return speakerMap
}

// SpeakerMapForSegments 收集段落序列中出现的所有说话人并构建统一映射
func SpeakerMapForSegments(segments []models.Segment) map[string]string {
	ids := make([]string, 0, len(segments))
	for _, segment := range segments {
		ids = append(ids, segment.Speaker())
	}
	return BuildSpeakerMap(ids)
}
