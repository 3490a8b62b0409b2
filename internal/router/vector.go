package router

// normalizeVector pads a vector with zeros or truncates it from the tail so
// its length is exactly dim. Callers always receive a fixed dimension
// regardless of which provider served the call.
func normalizeVector(v []float64, dim int) []float64 {
	switch {
	case len(v) == dim:
		return v
	case len(v) > dim:
		return v[:dim]
	default:
		padded := make([]float64, dim)
		copy(padded, v)
		return padded
	}
}

// normalizeVectors applies normalizeVector to every vector.
func normalizeVectors(vectors [][]float64, dim int) [][]float64 {
	out := make([][]float64, len(vectors))
	for i, v := range vectors {
		out[i] = normalizeVector(v, dim)
	}
	return out
}
