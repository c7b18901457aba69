package test

import (
	"math/rand"
	"strings"
	"sync"
	"time"
)

const (
	lowerLetters = "abcdefghijklmnopqrstuvwxyz"
	digits       = "0123456789"
)

var (
	rngMu sync.Mutex
	rng   = rand.New(rand.NewSource(time.Now().UnixNano()))
)

// RandomName returns a capitalized name of minLen to maxLen letters, suitable
// for the firstname and lastname constraints.
func RandomName(minLen, maxLen int) string {
	word := randomWord(lowerLetters, minLen, maxLen)
	return strings.ToUpper(word[:1]) + word[1:]
}

// RandomEmail returns a syntactically valid, practically unique address.
func RandomEmail() string {
	return randomWord(lowerLetters, 6, 10) + "." + randomWord(digits, 4, 4) + "@example.com"
}

func randomWord(alphabet string, minLen, maxLen int) string {
	if minLen <= 0 {
		minLen = 1
	}
	if maxLen < minLen {
		maxLen = minLen
	}
	length := minLen
	if maxLen > minLen {
		length += randomIntn(maxLen - minLen + 1)
	}
	buf := make([]byte, length)
	for i := range buf {
		buf[i] = alphabet[randomIntn(len(alphabet))]
	}
	return string(buf)
}

func randomIntn(n int) int {
	rngMu.Lock()
	defer rngMu.Unlock()
	return rng.Intn(n)
}
