package benchmark

// discardWriter is a no-op writer for benchmarking
type discardWriter struct{}

func (w discardWriter) Write(p []byte) (int, error) {
	return len(p), nil
}
