package game

import (
	_ "embed"
	"math/rand/v2"
	"strings"
)

// 内置词库，每行一个词
//
//go:embed words.txt
var rawWords string

var dictionary = loadDictionary()

func loadDictionary() []string {
	lines := strings.Split(rawWords, "\n")
	words := make([]string, 0, len(lines))

	for _, line := range lines {
		word := strings.TrimSpace(line)
		if word == "" {
			continue
		}

		words = append(words, word)
	}

	if len(words) < BOARD_SIZE {
		panic("内置词库不足 25 个词")
	}

	return words
}

// 从词库里随机抽取 n 个不重复的词
func RandomWords(n int, rng *rand.Rand) []string {
	picked := rng.Perm(len(dictionary))[:n]

	words := make([]string, 0, n)
	for _, i := range picked {
		words = append(words, dictionary[i])
	}

	return words
}

// 随机生成 "词-词" 形式的对局名
func RandomGameName(rng *rand.Rand) string {
	pair := RandomWords(2, rng)
	return strings.ToLower(pair[0] + "-" + pair[1])
}
