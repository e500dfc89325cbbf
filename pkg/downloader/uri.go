package downloader

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"
)

// DownloadFile fetches url into filePath, reporting progress through
// downloadStatus (fileName, written, total, percentage). A file that is
// already present is not downloaded again.
func DownloadFile(ctx context.Context, url, filePath string, downloadStatus func(string, string, string, float64)) error {
	// Check if the file already exists
	_, err := os.Stat(filePath)
	if err == nil {
		log.Debug().Msgf("File %q already exists. Skipping download", filePath)
		return nil
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("failed to check file %q existence: %v", filePath, err)
	}

	log.Info().Msgf("Downloading %q", url)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to download file %q: %v", filePath, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return fmt.Errorf("failed to download url %q, invalid status code %d", url, resp.StatusCode)
	}

	if err := os.MkdirAll(filepath.Dir(filePath), 0750); err != nil {
		return fmt.Errorf("failed to create parent directory for file %q: %v", filePath, err)
	}

	// Download to a temporary path first so a partial download never shows
	// up under the final name.
	tmpPath := filePath + ".partial"
	outFile, err := os.Create(tmpPath)
	if err != nil {
		return fmt.Errorf("failed to create file %q: %v", tmpPath, err)
	}

	progress := &progressWriter{
		fileName:       filePath,
		total:          resp.ContentLength,
		downloadStatus: downloadStatus,
		ctx:            ctx,
	}

	_, err = io.Copy(io.MultiWriter(outFile, progress), resp.Body)
	outFile.Close()
	if err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to write file %q: %v", filePath, err)
	}

	if err := os.Rename(tmpPath, filePath); err != nil {
		return fmt.Errorf("failed to rename %q to %q: %v", tmpPath, filePath, err)
	}

	log.Info().Msgf("File %q downloaded", filePath)
	return nil
}
