package embedding

import (
	"context"
	"errors"
	"math"
)

// ErrModelUnavailable marks embedding failures caused by the model backend
// being unreachable or rejecting the request. Index builds check for it and
// keep serving the previous snapshot in degraded mode.
var ErrModelUnavailable = errors.New("embedding model unavailable")

// Provider generates a fixed-length embedding vector for a piece of text.
type Provider interface {
	Embed(ctx context.Context, text string) ([]float32, error)
}

// NormalizeVector scales a vector to unit length so cosine similarity
// reduces to a dot product. Zero vectors pass through unchanged.
func NormalizeVector(vec []float32) []float32 {
	var magnitude float64
	for _, v := range vec {
		magnitude += float64(v) * float64(v)
	}
	magnitude = math.Sqrt(magnitude)
	if magnitude == 0 {
		return vec
	}

	normalized := make([]float32, len(vec))
	for i, v := range vec {
		normalized[i] = float32(float64(v) / magnitude)
	}
	return normalized
}
