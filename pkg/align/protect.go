package align

import (
	"regexp"
	"strings"
)

// 句子切分前用占位符屏蔽缩略词/缩写词内部的句点，防止被误判为句子结尾
const (
	acronymPlaceholder = "__ACRONYM__"
	abbrevPlaceholder  = "__ABBREV__"
)

// 多字母缩略词，如 B.M.W.、A.B.S.
var acronymRe = regexp.MustCompile(`(?:[A-ZÄÖÜ]\.){2,}`)

// 按语言预构建的缩写词匹配正则，进程启动时构造，之后只读
var abbrevPatterns = buildAbbrevPatterns()

func buildAbbrevPatterns() map[string]*regexp.Regexp {
	patterns := make(map[string]*regexp.Regexp, len(abbreviationsByLanguage))
	for language, abbrevs := range abbreviationsByLanguage {
		quoted := make([]string, len(abbrevs))
		for i, a := range abbrevs {
			quoted[i] = regexp.QuoteMeta(a)
		}
		patterns[language] = regexp.MustCompile(`\b(` + strings.Join(quoted, "|") + `)\.`)
	}
	return patterns
}

// protectAcronyms 用占位符替换缩略词内部的句点
func protectAcronyms(text string) string {
	return acronymRe.ReplaceAllStringFunc(text, func(m string) string {
		return strings.ReplaceAll(m, ".", acronymPlaceholder)
	})
}

// restoreAcronyms 还原被屏蔽的缩略词句点
func restoreAcronyms(text string) string {
	return strings.ReplaceAll(text, acronymPlaceholder, ".")
}

// protectAbbreviations 用占位符替换已识别缩写词（Mr.、Dr. 等）尾部的句点
func protectAbbreviations(text string, language string) string {
	pattern, ok := abbrevPatterns[language]
	if !ok {
		pattern = abbrevPatterns[DefaultLanguage]
	}
	return pattern.ReplaceAllString(text, "${1}"+abbrevPlaceholder)
}

// restoreAbbreviations 还原被屏蔽的缩写词句点
func restoreAbbreviations(text string) string {
	return strings.ReplaceAll(text, abbrevPlaceholder, ".")
}
