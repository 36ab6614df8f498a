package service

import "context"

// ReportStorage writes exported report files.
type ReportStorage interface {
	// Write stores data under key and returns the stored object key.
	Write(ctx context.Context, key, contentType string, data []byte) (string, error)
}
