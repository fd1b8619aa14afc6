package align

import "strings"

// DefaultLanguage 是无法识别语言时的回退语言代码（ISO 639-3）
const DefaultLanguage = "eng"

// ISO 639-1 两字母代码到 ISO 639-3 三字母代码的映射
var iso1ToIso3 = map[string]string{
	"en": "eng",
	"es": "spa",
	"pt": "por",
	"fr": "fra",
	"de": "deu",
	"it": "ita",
	"nl": "nld",
	"zh": "cmn",
	"ko": "kor",
	"ar": "ara",
	"hi": "hin",
	"bn": "ben",
	"ta": "tam",
	"te": "tel",
	"mr": "mar",
	"gu": "guj",
	"kn": "kan",
	"pa": "pan",
	"ml": "mal",
	"ur": "urd",
}

// 各语言的头衔/缩写词表，句子切分前保护这些词尾部的句点。
// 进程启动时构造，之后只读。
var abbreviationsByLanguage = map[string][]string{
	"eng": {
		"Mr", "Mrs", "Ms", "Dr", "Prof", "Sr", "Jr", "St",
		"vs", "etc", "approx", "Capt", "Col", "Gen", "Lt", "Rev", "Hon",
	},
	"spa": {"Sr", "Sra", "Srta", "Dr", "Dra", "Prof", "Gral", "Av"},
	"por": {"Sr", "Sra", "Srta", "Dr", "Dra", "Prof", "Av", "Exmo"},
	"fra": {"M", "Mme", "Mlle", "Dr", "Prof", "St", "Ste", "av"},
	"deu": {"Hr", "Fr", "Dr", "Prof", "St", "Nr", "ca", "bzw", "usw"},
	"ita": {"Sig", "Sigra", "Dott", "Prof", "Ing", "Avv", "ecc"},
}

// NormalizeLanguageCode 将语言代码归一化为 ISO 639-3 格式。
// 接受两字母（ISO 639-1）或三字母（ISO 639-3）代码，无法识别时返回 eng。
func NormalizeLanguageCode(code string) string {
	if code == "" {
		return DefaultLanguage
	}
	code = strings.ToLower(code)
	if len(code) == 2 {
		if iso3, ok := iso1ToIso3[code]; ok {
			return iso3
		}
		return DefaultLanguage
	}
	return code
}
