package merge

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"

	"github.com/pmezard/go-difflib/difflib"

	"github.com/iudanet/vcresolve/internal/models"
)

//go:generate moq -out threeway_mock.go . ThreeWayMerger

// ThreeWayMerger сливает три версии файла и записывает результат в outputPath.
type ThreeWayMerger interface {
	Merge(ctx context.Context, basePath, yourPath, theirPath, outputPath string) (*models.MergeSummary, error)
}

// maxConflictExitCode git ограничивает число конфликтов в коде возврата
const maxConflictExitCode = 127

// GitMerger runs `git merge-file` and counts changed blocks with difflib.
type GitMerger struct {
	// GitPath путь к git, по умолчанию ищется в PATH
	GitPath string
}

func NewGitMerger(gitPath string) *GitMerger {
	if gitPath == "" {
		gitPath = "git"
	}
	return &GitMerger{GitPath: gitPath}
}

// Merge writes the merged content (with diff3 markers for conflicts) to outputPath.
// Exit codes 1..127 report the number of conflicts, larger codes are git errors.
func (g *GitMerger) Merge(ctx context.Context, basePath, yourPath, theirPath, outputPath string) (*models.MergeSummary, error) {
	cmd := exec.CommandContext(ctx, g.GitPath, "merge-file", "--diff3", "-p", yourPath, basePath, theirPath)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	gitConflicts := 0
	if err := cmd.Run(); err != nil {
		var ee *exec.ExitError
		if !errors.As(err, &ee) || ee.ExitCode() <= 0 || ee.ExitCode() > maxConflictExitCode {
			msg := stderr.String()
			if msg == "" {
				msg = err.Error()
			}
			return nil, fmt.Errorf("git merge-file failed: %s", msg)
		}
		gitConflicts = ee.ExitCode()
	}

	summary, err := summarize(basePath, yourPath, theirPath)
	if err != nil {
		return nil, err
	}
	summary.Conflicting = conflictCount(gitConflicts, stdout.Bytes())

	if err := os.WriteFile(outputPath, stdout.Bytes(), 0o600); err != nil {
		return nil, fmt.Errorf("failed to write merged file: %w", err)
	}

	return summary, nil
}

// conflictCount берет число конфликтов из кода возврата git. Маркеры
// считаются только когда код достиг предела и число могло быть обрезано;
// файл, в котором уже есть строки "<<<<<<<", не должен ломать слияние.
func conflictCount(gitConflicts int, merged []byte) int {
	if gitConflicts < maxConflictExitCode {
		return gitConflicts
	}
	counted, err := countConflicts(merged)
	if err != nil || counted < gitConflicts {
		return gitConflicts
	}
	return counted
}

// hunk изменение относительно base: строки base [i1, i2) заменены на lines
type hunk struct {
	i1, i2 int
	lines  []string
}

func (h hunk) overlaps(o hunk) bool {
	if h.i1 == h.i2 || o.i1 == o.i2 {
		// Вставки конфликтуют с изменениями, которые их касаются
		return h.i1 <= o.i2 && o.i1 <= h.i2
	}
	return h.i1 < o.i2 && o.i1 < h.i2
}

func (h hunk) equal(o hunk) bool {
	if h.i1 != o.i1 || h.i2 != o.i2 || len(h.lines) != len(o.lines) {
		return false
	}
	for i := range h.lines {
		if h.lines[i] != o.lines[i] {
			return false
		}
	}
	return true
}

func diffHunks(base, changed []string) (hunks []hunk, common int) {
	matcher := difflib.NewMatcher(base, changed)
	for _, op := range matcher.GetOpCodes() {
		if op.Tag == 'e' {
			common++
			continue
		}
		hunks = append(hunks, hunk{i1: op.I1, i2: op.I2, lines: changed[op.J1:op.J2]})
	}
	return hunks, common
}

func readLines(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return nil, nil
	}
	return difflib.SplitLines(string(data)), nil
}

// summarize counts blocks changed by one side only, by both sides identically
// and by both sides differently. Overlapping different changes count for both sides.
func summarize(basePath, yourPath, theirPath string) (*models.MergeSummary, error) {
	base, err := readLines(basePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read base: %w", err)
	}
	yours, err := readLines(yourPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read yours: %w", err)
	}
	theirs, err := readLines(theirPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read theirs: %w", err)
	}

	yourHunks, common := diffHunks(base, yours)
	theirHunks, _ := diffHunks(base, theirs)

	summary := &models.MergeSummary{Common: common}
	matchedTheirs := make([]bool, len(theirHunks))

	for _, y := range yourHunks {
		overlapped, identical := false, false
		for j, th := range theirHunks {
			if !y.overlaps(th) {
				continue
			}
			overlapped = true
			matchedTheirs[j] = true
			if y.equal(th) {
				identical = true
			}
		}

		switch {
		case !overlapped:
			summary.LocalChanged++
		case identical:
			summary.CommonChanged++
		default:
			summary.LocalChanged++
			summary.LatestChanged++
		}
	}

	for j := range theirHunks {
		if !matchedTheirs[j] {
			summary.LatestChanged++
		}
	}

	return summary, nil
}
