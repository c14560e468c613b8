// Package buffer provides fixed-capacity float32 storage for per-channel bar
// output. A [Grid] is sized once per configuration and hands out one row per
// channel backed by a single allocation, so frame processing never allocates.
package buffer
