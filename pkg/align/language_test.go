package align

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeLanguageCode(t *testing.T) {
	// 两字母代码映射到三字母
	assert.Equal(t, "eng", NormalizeLanguageCode("en"))
	assert.Equal(t, "deu", NormalizeLanguageCode("de"))
	assert.Equal(t, "cmn", NormalizeLanguageCode("zh"))
	assert.Equal(t, "spa", NormalizeLanguageCode("ES"))

	// 三字母代码原样通过
	assert.Equal(t, "eng", NormalizeLanguageCode("eng"))
	assert.Equal(t, "fra", NormalizeLanguageCode("FRA"))

	// 空串和未知的两字母代码回退为默认语言
	assert.Equal(t, "eng", NormalizeLanguageCode(""))
	assert.Equal(t, "eng", NormalizeLanguageCode("xx"))
}

func TestAbbreviationsByLanguage(t *testing.T) {
	// 已收录语言各有自己的词表
	assert.Contains(t, abbreviationsByLanguage["eng"], "Mr")
	assert.Contains(t, abbreviationsByLanguage["deu"], "Hr")
	assert.Contains(t, abbreviationsByLanguage["fra"], "Mme")

	// 每个词表都编译出对应的匹配正则
	for language := range abbreviationsByLanguage {
		assert.Contains(t, abbrevPatterns, language)
	}

	// 未收录的语言回退到英语词表屏蔽缩写词
	assert.Equal(t, protectAbbreviations("Dr. Smith", "eng"),
		protectAbbreviations("Dr. Smith", "cmn"))
}
