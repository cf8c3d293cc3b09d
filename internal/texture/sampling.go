package texture

// IsPowerOfTwo reports whether v is 1, 2, 4, 8, ...
// Zero is rejected even though v&(v-1) == 0 holds for it.
func IsPowerOfTwo(v int) bool {
	return v > 0 && v&(v-1) == 0
}

// Sampling describes how a texture of a given size is filtered and wrapped.
type Sampling struct {
	// Mipmap is set when a full mipmap chain should be generated.
	Mipmap bool
	// ClampToEdge clamps both wrap axes and uses a linear, non-mipmapped
	// minification filter.
	ClampToEdge bool
}

// SamplingFor picks mipmapping for power-of-two images and edge clamping otherwise.
func SamplingFor(width, height int) Sampling {
	if IsPowerOfTwo(width) && IsPowerOfTwo(height) {
		return Sampling{Mipmap: true}
	}
	return Sampling{ClampToEdge: true}
}
