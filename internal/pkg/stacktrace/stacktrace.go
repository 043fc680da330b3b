// Package stacktrace reduces raw goroutine stacks to the frames that belong
// to this repository, so panic logs stay readable.
package stacktrace

import "strings"

// InternalPaths extracts "internal/...go:line" locations from a stack dump
// produced by runtime/debug.Stack. Frames outside internal/ (runtime, third
// party) are dropped.
func InternalPaths(stack []byte) []string {
	var paths []string
	for _, line := range strings.Split(string(stack), "\n") {
		line = strings.TrimSpace(line)
		at := strings.Index(line, "/internal/")
		if at == -1 || !strings.Contains(line, ".go:") {
			continue
		}
		frame := line[at+1:]
		if sp := strings.IndexByte(frame, ' '); sp != -1 {
			frame = frame[:sp]
		}
		paths = append(paths, frame)
	}
	return paths
}
