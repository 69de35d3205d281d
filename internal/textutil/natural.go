package textutil

import (
	"strconv"
	"strings"
)

// NaturalLess reports whether a sorts before b when digit runs are compared
// numerically and the remaining text case-insensitively.
func NaturalLess(a, b string) bool {
	ka, kb := naturalKey(a), naturalKey(b)
	for i := 0; i < len(ka) && i < len(kb); i++ {
		x, y := ka[i], kb[i]
		if x.numeric && y.numeric {
			if x.number != y.number {
				return x.number < y.number
			}
			continue
		}
		if x.numeric != y.numeric {
			// digits sort before letters, as they do byte-wise
			return x.numeric
		}
		if x.text != y.text {
			return x.text < y.text
		}
	}
	if len(ka) != len(kb) {
		return len(ka) < len(kb)
	}
	return a < b
}

type naturalChunk struct {
	text    string
	number  uint64
	numeric bool
}

func naturalKey(s string) []naturalChunk {
	var chunks []naturalChunk
	for len(s) > 0 {
		end := 1
		digit := isDigit(s[0])
		for end < len(s) && isDigit(s[end]) == digit {
			end++
		}
		part := s[:end]
		s = s[end:]
		if digit {
			n, err := strconv.ParseUint(part, 10, 64)
			if err == nil {
				chunks = append(chunks, naturalChunk{text: part, number: n, numeric: true})
				continue
			}
		}
		chunks = append(chunks, naturalChunk{text: strings.ToLower(part)})
	}
	return chunks
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }
