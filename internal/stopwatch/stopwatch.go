// Package stopwatch is a bucketed wall-clock timer for profiling solver
// phases.
package stopwatch

import (
	"fmt"
	"sort"
	"sync"
	"time"
)

type Stopwatch struct {
	mu           sync.Mutex
	buckets      map[string]int64
	bucketStarts map[string]int64
}

func New() *Stopwatch {
	return &Stopwatch{
		buckets:      make(map[string]int64),
		bucketStarts: make(map[string]int64),
	}
}

func (s *Stopwatch) Start(b string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.bucketStarts[b] = time.Now().UnixNano()
	if _, ok := s.buckets[b]; !ok {
		s.buckets[b] = 0
	}
}

func (s *Stopwatch) Stop(b string) {
	end := time.Now().UnixNano()
	s.mu.Lock()
	defer s.mu.Unlock()
	start, ok := s.bucketStarts[b]
	if !ok {
		return
	}
	s.buckets[b] += end - start
	delete(s.bucketStarts, b)
}

func (s *Stopwatch) Results() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	keys := make([]string, 0, len(s.buckets))
	for k := range s.buckets {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	out := ""
	for _, k := range keys {
		out += fmt.Sprintf("%s: %.4f\n", k, float64(s.buckets[k])/1000000000.0)
	}
	return out
}
