//go:build !amd64 && !arm64

package simd

func init() {
	// Other architectures run the scalar forms only.
	currentLevel = DispatchScalar
}
