package align

import (
	"regexp"
	"strings"
)

// SentenceTokenizer 句子切分能力接口。
// 输出句子按顺序拼接（补回切分处的空白）应等于输入文本，
// 具体实现可替换为正则、词典或第三方NLP库。
type SentenceTokenizer interface {
	Tokenize(text string, language string) []string
}

// RegexSentenceTokenizer 基于正则的轻量级句子切分器
type RegexSentenceTokenizer struct{}

// 句子终止符后跟空白即视为句子边界
var sentenceBoundaryRe = regexp.MustCompile(`([.!?。！？])\s+`)

// Tokenize 将文本切分为句子，去除首尾空白并丢弃空句
func (RegexSentenceTokenizer) Tokenize(text string, language string) []string {
	var sentences []string
	last := 0
	for _, loc := range sentenceBoundaryRe.FindAllStringSubmatchIndex(text, -1) {
		// loc[3] 是终止符分组的结束位置，句子在终止符后结束
		s := strings.TrimSpace(text[last:loc[3]])
		if s != "" {
			sentences = append(sentences, s)
		}
		last = loc[1]
	}
	if tail := strings.TrimSpace(text[last:]); tail != "" {
		sentences = append(sentences, tail)
	}
	return sentences
}
