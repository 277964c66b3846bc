package nlp

import (
	"math"

	"faqbot/internal/domain"
)

// Vectorize builds an L2-normalized term-frequency vector from tokens.
// An empty token slice yields an empty vector.
func Vectorize(tokens []string) domain.TermVector {
	tf := make(domain.TermVector, len(tokens))
	for _, tok := range tokens {
		tf[tok]++
	}
	norm := 0.0
	for _, v := range tf {
		norm += v * v
	}
	norm = math.Sqrt(norm)
	if norm > 0 {
		for k := range tf {
			tf[k] /= norm
		}
	}
	return tf
}

// Cosine returns the cosine similarity of two normalized sparse vectors.
// Both inputs are unit length (or empty), so the sparse dot product over the
// smaller map is the similarity directly. Vectors sharing no terms score 0.
func Cosine(a, b domain.TermVector) float64 {
	small, large := a, b
	if len(b) < len(a) {
		small, large = b, a
	}
	sum := 0.0
	for k, v := range small {
		if w, ok := large[k]; ok {
			sum += v * w
		}
	}
	return sum
}
