package downloader

import (
	"context"
	"fmt"
)

type progressWriter struct {
	fileName       string
	total          int64
	written        int64
	downloadStatus func(string, string, string, float64)
	ctx            context.Context
}

func (pw *progressWriter) Write(p []byte) (n int, err error) {
	// Check for cancellation before writing
	if pw.ctx != nil {
		select {
		case <-pw.ctx.Done():
			return 0, pw.ctx.Err()
		default:
		}
	}

	n = len(p)
	pw.written += int64(n)

	if pw.total > 0 && pw.downloadStatus != nil {
		percentage := float64(pw.written) / float64(pw.total) * 100
		pw.downloadStatus(pw.fileName, formatBytes(pw.written), formatBytes(pw.total), percentage)
	}

	return
}

func formatBytes(bytes int64) string {
	const unit = 1024
	if bytes < unit {
		return fmt.Sprintf("%d B", bytes)
	}
	div, exp := int64(unit), 0
	for n := bytes / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(bytes)/float64(div), "KMGTPE"[exp])
}
