package source

import "iter"

type memorySource struct {
	lines []string
}

// Strings returns a Source over lines already held in memory.
func Strings(lines ...string) Source {
	return &memorySource{lines: lines}
}

func (s *memorySource) Lines() iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		for _, line := range s.lines {
			if !yield(line, nil) {
				return
			}
		}
	}
}

func (s *memorySource) Close() error { return nil }
