package mockapi

import (
	"math/rand/v2"
	"strings"
	"sync"
)

var loremWords = []string{
	"lorem", "ipsum", "dolor", "sit", "amet", "consectetur", "adipiscing", "elit",
	"sed", "do", "eiusmod", "tempor", "incididunt", "ut", "labore", "et", "dolore",
	"magna", "aliqua", "enim", "ad", "minim", "veniam", "quis", "nostrud",
	"exercitation", "ullamco", "laboris", "nisi", "aliquip", "ex", "ea", "commodo",
	"consequat", "duis", "aute", "irure", "in", "reprehenderit", "voluptate",
	"velit", "esse", "cillum", "fugiat", "nulla", "pariatur",
}

// sentenceSource produces lorem ipsum sentences of 6 to 12 words.
type sentenceSource struct {
	mu  sync.Mutex
	rng *rand.Rand
}

func newSentenceSource(seed uint64) *sentenceSource {
	return &sentenceSource{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

func (s *sentenceSource) Sentence() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := 6 + s.rng.IntN(7)
	words := make([]string, n)
	for i := range words {
		words[i] = loremWords[s.rng.IntN(len(loremWords))]
	}
	words[0] = strings.ToUpper(words[0][:1]) + words[0][1:]
	return strings.Join(words, " ") + "."
}
