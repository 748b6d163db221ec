package merge

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const baseText = "1\n2\n3\n4\n5\n"

func writeVersions(t *testing.T, base, yours, theirs string) (string, string, string) {
	t.Helper()
	dir := t.TempDir()
	paths := []string{
		filepath.Join(dir, "base.txt"),
		filepath.Join(dir, "yours.txt"),
		filepath.Join(dir, "theirs.txt"),
	}
	for i, content := range []string{base, yours, theirs} {
		require.NoError(t, os.WriteFile(paths[i], []byte(content), 0o600))
	}
	return paths[0], paths[1], paths[2]
}

func TestSummarize(t *testing.T) {
	tests := []struct {
		name          string
		yours, theirs string
		local, latest int
		common        int
	}{
		{name: "no changes", yours: baseText, theirs: baseText},
		{name: "local only", yours: "one\n2\n3\n4\n5\n", theirs: baseText, local: 1},
		{name: "server only", yours: baseText, theirs: "1\n2\n3\n4\nfive\n", latest: 1},
		{name: "both sides, different lines", yours: "one\n2\n3\n4\n5\n", theirs: "1\n2\n3\n4\nfive\n", local: 1, latest: 1},
		{name: "same change on both sides", yours: "1\n2\nx\n4\n5\n", theirs: "1\n2\nx\n4\n5\n", common: 1},
		{name: "overlapping different changes", yours: "1\n2\ny\n4\n5\n", theirs: "1\n2\nt\n4\n5\n", local: 1, latest: 1},
		{name: "local delete", yours: "1\n2\n4\n5\n", theirs: baseText, local: 1},
		{name: "server insert", yours: baseText, theirs: "1\n2\n3\nnew\n4\n5\n", latest: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			base, yours, theirs := writeVersions(t, baseText, tt.yours, tt.theirs)

			summary, err := summarize(base, yours, theirs)
			require.NoError(t, err)
			assert.Equal(t, tt.local, summary.LocalChanged, "local changed")
			assert.Equal(t, tt.latest, summary.LatestChanged, "latest changed")
			assert.Equal(t, tt.common, summary.CommonChanged, "common changed")
			assert.Positive(t, summary.Common)
		})
	}
}

func TestSummarize_MissingFile(t *testing.T) {
	base, yours, _ := writeVersions(t, baseText, baseText, baseText)

	_, err := summarize(base, yours, filepath.Join(t.TempDir(), "missing"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read theirs")
}

func requireGit(t *testing.T) {
	t.Helper()
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not found in PATH")
	}
}

func TestGitMerger_Merge(t *testing.T) {
	requireGit(t)

	tests := []struct {
		name          string
		yours, theirs string
		conflicting   int
		wantOutput    string
	}{
		{
			name:       "clean merge",
			yours:      "one\n2\n3\n4\n5\n",
			theirs:     "1\n2\n3\n4\nfive\n",
			wantOutput: "one\n2\n3\n4\nfive\n",
		},
		{
			name:        "conflict",
			yours:       "1\n2\ny\n4\n5\n",
			theirs:      "1\n2\nt\n4\n5\n",
			conflicting: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			base, yours, theirs := writeVersions(t, baseText, tt.yours, tt.theirs)
			output := filepath.Join(t.TempDir(), "merged.txt")

			summary, err := NewGitMerger("").Merge(context.Background(), base, yours, theirs, output)
			require.NoError(t, err)
			assert.Equal(t, tt.conflicting, summary.Conflicting)

			merged, err := os.ReadFile(output)
			require.NoError(t, err)
			if tt.wantOutput != "" {
				assert.Equal(t, tt.wantOutput, string(merged))
			} else {
				assert.Contains(t, string(merged), "<<<<<<<")
				assert.Contains(t, string(merged), "|||||||")
			}

			// Исходный локальный файл не меняется
			local, err := os.ReadFile(yours)
			require.NoError(t, err)
			assert.Equal(t, tt.yours, string(local))
		})
	}
}

func TestGitMerger_MissingInput(t *testing.T) {
	requireGit(t)

	base, yours, _ := writeVersions(t, baseText, baseText, baseText)
	output := filepath.Join(t.TempDir(), "merged.txt")

	_, err := NewGitMerger("").Merge(context.Background(), base, yours, filepath.Join(t.TempDir(), "missing"), output)
	require.Error(t, err)
	assert.NoFileExists(t, output)
}

func TestGitMerger_BadBinary(t *testing.T) {
	base, yours, theirs := writeVersions(t, baseText, baseText, baseText)

	_, err := NewGitMerger(filepath.Join(t.TempDir(), "no-git")).Merge(context.Background(), base, yours, theirs, filepath.Join(t.TempDir(), "out"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "git merge-file failed")
}

func TestConflictCount(t *testing.T) {
	conflict := "<<<<<<< y\na\n||||||| b\nb\n=======\nc\n>>>>>>> t\n"
	many := ""
	for range 130 {
		many += conflict
	}

	tests := []struct {
		name   string
		git    int
		merged string
		want   int
	}{
		{name: "clean merge", git: 0, merged: "1\n2\n", want: 0},
		{name: "stray marker in clean merge", git: 0, merged: "<<<<<<< docs\n2\n", want: 0},
		{name: "exit code below limit", git: 2, merged: conflict + "<<<<<<< docs\n", want: 2},
		{name: "limit reached, markers counted", git: maxConflictExitCode, merged: many, want: 130},
		{name: "limit reached, markers broken", git: maxConflictExitCode, merged: many + "<<<<<<< docs\n", want: maxConflictExitCode},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, conflictCount(tt.git, []byte(tt.merged)))
		})
	}
}

// Файл с документацией по маркерам сливается как обычный текст
func TestGitMerger_MarkersInContent(t *testing.T) {
	requireGit(t)

	base := "1\n<<<<<<< example\n3\n4\n5\n"
	yours := "one\n<<<<<<< example\n3\n4\n5\n"
	theirs := "1\n<<<<<<< example\n3\n4\nfive\n"
	basePath, yourPath, theirPath := writeVersions(t, base, yours, theirs)
	output := filepath.Join(t.TempDir(), "merged.txt")

	summary, err := NewGitMerger("").Merge(context.Background(), basePath, yourPath, theirPath, output)
	require.NoError(t, err)
	assert.Equal(t, 0, summary.Conflicting)
	assert.Equal(t, 1, summary.LocalChanged)
	assert.Equal(t, 1, summary.LatestChanged)

	merged, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Equal(t, "one\n<<<<<<< example\n3\n4\nfive\n", string(merged))
}
