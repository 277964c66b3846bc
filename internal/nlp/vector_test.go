package nlp

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"faqbot/internal/domain"
)

const tolerance = 1e-9

func norm(v domain.TermVector) float64 {
	sum := 0.0
	for _, w := range v {
		sum += w * w
	}
	return math.Sqrt(sum)
}

func TestVectorize_UnitNorm(t *testing.T) {
	v := Vectorize([]string{"your", "name"})
	assert.InDelta(t, 1.0, norm(v), tolerance)
	assert.InDelta(t, 1/math.Sqrt2, v["your"], tolerance)
	assert.InDelta(t, 1/math.Sqrt2, v["name"], tolerance)
}

func TestVectorize_CountsFrequencies(t *testing.T) {
	v := Vectorize([]string{"go", "go", "fast"})
	// raw counts 2 and 1, norm sqrt(5)
	assert.InDelta(t, 2/math.Sqrt(5), v["go"], tolerance)
	assert.InDelta(t, 1/math.Sqrt(5), v["fast"], tolerance)
	assert.InDelta(t, 1.0, norm(v), tolerance)
}

func TestVectorize_EmptyTokens(t *testing.T) {
	assert.Empty(t, Vectorize(nil))
	assert.Empty(t, Vectorize([]string{}))
}

func TestCosine_SelfSimilarity(t *testing.T) {
	v := Vectorize([]string{"alpha", "beta", "beta"})
	assert.InDelta(t, 1.0, Cosine(v, v), tolerance)
}

func TestCosine_Symmetry(t *testing.T) {
	a := Vectorize([]string{"alpha", "beta"})
	b := Vectorize([]string{"beta", "gamma", "delta"})
	assert.InDelta(t, Cosine(a, b), Cosine(b, a), tolerance)
}

func TestCosine_DisjointOrEmpty(t *testing.T) {
	a := Vectorize([]string{"alpha"})
	b := Vectorize([]string{"beta"})
	assert.Zero(t, Cosine(a, b))
	assert.Zero(t, Cosine(a, domain.TermVector{}))
	assert.Zero(t, Cosine(domain.TermVector{}, domain.TermVector{}))
}

func TestCosine_PartialOverlap(t *testing.T) {
	a := Vectorize([]string{"save", "file"})
	b := Vectorize([]string{"can", "save", "knowledge"})
	// single shared term: (1/sqrt(2)) * (1/sqrt(3))
	assert.InDelta(t, 1/math.Sqrt(6), Cosine(a, b), tolerance)
}
