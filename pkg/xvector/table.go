package xvector

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/mholt/archiver/v3"

	"github.com/mudler/echoscribe/pkg/downloader"
)

const tableDirName = "spkrec-xvect"

// EnsureTable makes sure the x-vector table is present under dir,
// downloading and extracting the archive from url when it is not. It
// returns the path of the directory holding the vector files.
func EnsureTable(ctx context.Context, dir, url string, downloadStatus func(string, string, string, float64)) (string, error) {
	dataPath := filepath.Join(dir, tableDirName)
	if _, err := os.Stat(dataPath); err == nil {
		return dataPath, nil
	}

	if err := os.MkdirAll(dir, 0750); err != nil {
		return "", fmt.Errorf("failed to create embeddings directory %q: %w", dir, err)
	}

	zipPath := filepath.Join(dir, tableDirName+".zip")
	if err := downloader.DownloadFile(ctx, url, zipPath, downloadStatus); err != nil {
		return "", err
	}

	if err := archiver.Unarchive(zipPath, dir); err != nil {
		return "", fmt.Errorf("failed to extract x-vector table: %w", err)
	}
	os.Remove(zipPath)

	if _, err := os.Stat(dataPath); err != nil {
		return "", fmt.Errorf("x-vector table archive did not contain %q: %w", tableDirName, err)
	}
	return dataPath, nil
}

// LoadEmbedding loads the index-th vector of the table, with entries
// ordered by file name as the table ships them.
func LoadEmbedding(dataPath string, index int) ([]float32, error) {
	entries, err := os.ReadDir(dataPath)
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), ".npy") {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)

	if index < 0 || index >= len(names) {
		return nil, fmt.Errorf("x-vector index %d out of range, table has %d entries", index, len(names))
	}

	vec, err := readNPYVector(filepath.Join(dataPath, names[index]))
	if err != nil {
		return nil, err
	}
	if len(vec) == 0 {
		return nil, fmt.Errorf("x-vector %q is empty", names[index])
	}
	return vec, nil
}
