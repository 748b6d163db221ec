// Package merge builds content and property merge summaries for conflicts.
package merge

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/iudanet/vcresolve/internal/client/redundancy"
	"github.com/iudanet/vcresolve/internal/models"
)

//go:generate moq -out downloader_mock.go . Downloader

// Downloader скачивает версию файла с сервера по download URL
type Downloader interface {
	DownloadFile(ctx context.Context, url, dest string) error
}

// Engine runs a three-way merge of the local file against base and their versions.
type Engine struct {
	downloader Downloader
	fs         redundancy.FileSystem
	merger     ThreeWayMerger
	logger     *slog.Logger
	tempDir    string
}

// NewEngine creates a merge engine. Temporary files go to tempDir or os.TempDir().
func NewEngine(downloader Downloader, fs redundancy.FileSystem, merger ThreeWayMerger, tempDir string, logger *slog.Logger) *Engine {
	if tempDir == "" {
		tempDir = os.TempDir()
	}
	return &Engine{
		downloader: downloader,
		fs:         fs,
		merger:     merger,
		logger:     logger,
		tempDir:    tempDir,
	}
}

// MergeContent downloads base and their content, merges it with the local file
// and stores the summary and merged file name in the conflict session.
func (e *Engine) MergeContent(ctx context.Context, c *models.Conflict) error {
	if c.Base.DownloadURL == "" {
		return ErrNoBaseContent
	}

	local := c.LocalPath()
	if local == "" || !e.fs.Exists(local) {
		return fmt.Errorf("%w: %s", ErrNoLocalFile, local)
	}

	id := uuid.NewString()
	basePath := filepath.Join(e.tempDir, id+".base")
	theirPath := filepath.Join(e.tempDir, id+".their")
	outputPath := filepath.Join(e.tempDir, id+"-"+c.FileName())

	defer e.remove(basePath)
	defer e.remove(theirPath)

	if err := e.downloader.DownloadFile(ctx, c.Base.DownloadURL, basePath); err != nil {
		return fmt.Errorf("failed to download base content: %w", err)
	}
	if err := e.downloadTheirs(ctx, c, theirPath); err != nil {
		return err
	}

	mtime, err := e.fs.ModTime(local)
	if err != nil {
		return fmt.Errorf("failed to stat local file: %w", err)
	}

	summary, err := e.merger.Merge(ctx, basePath, local, theirPath, outputPath)
	if err != nil {
		e.remove(outputPath)
		return fmt.Errorf("failed to merge content: %w", err)
	}

	state := c.State()
	if state.MergedFileName != "" {
		e.remove(state.MergedFileName)
	}
	c.SetMergedFileName(outputPath)
	state.ContentMergeSummary = summary
	state.ContentSummaryModTime = mtime

	e.logger.Debug("Merged content", "conflict_id", c.ID,
		"local_changed", summary.LocalChanged,
		"latest_changed", summary.LatestChanged,
		"common_changed", summary.CommonChanged,
		"conflicting", summary.Conflicting)
	return nil
}

// downloadTheirs создает пустой файл, если их сторона удалила содержимое
func (e *Engine) downloadTheirs(ctx context.Context, c *models.Conflict, dest string) error {
	if c.Their.DownloadURL == "" {
		if err := os.WriteFile(dest, nil, 0o600); err != nil {
			return fmt.Errorf("failed to create their content: %w", err)
		}
		return nil
	}
	if err := e.downloader.DownloadFile(ctx, c.Their.DownloadURL, dest); err != nil {
		return fmt.Errorf("failed to download their content: %w", err)
	}
	return nil
}

func (e *Engine) remove(path string) {
	if err := e.fs.Remove(path); err != nil {
		e.logger.Debug("Failed to remove temporary file", "path", path, "error", err)
	}
}
