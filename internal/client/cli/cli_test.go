package cli

import (
	"context"
	"crypto/md5"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/vcresolve/internal/client/filetype"
	"github.com/iudanet/vcresolve/internal/client/iocli"
	"github.com/iudanet/vcresolve/internal/client/merge"
	"github.com/iudanet/vcresolve/internal/client/redundancy"
	"github.com/iudanet/vcresolve/internal/client/resolve"
	"github.com/iudanet/vcresolve/internal/client/storage/boltdb"
	"github.com/iudanet/vcresolve/internal/models"
	"github.com/iudanet/vcresolve/pkg/api"
)

const localContent = "hello\nworld\n"

type testEnv struct {
	cli     *Cli
	out     *strings.Builder
	io      *iocli.IOMock
	server  *ServerMock
	content *resolve.ContentMergerMock
	store   *boltdb.Storage
	dir     string
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	ctx := context.Background()
	dir := t.TempDir()

	store, err := boltdb.New(ctx, filepath.Join(dir, "client.db"))
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = store.Close()
	})

	registry, err := filetype.NewRegistry(store, 0)
	require.NoError(t, err)

	out := &strings.Builder{}
	ioMock := &iocli.IOMock{
		PrintlnFunc: func(a ...any) {
			fmt.Fprintln(out, a...)
		},
		PrintfFunc: func(format string, a ...any) {
			fmt.Fprintf(out, format, a...)
		},
		ConfirmFunc: func(prompt string) (bool, error) {
			return false, nil
		},
	}

	server := &ServerMock{
		ServiceLevelFunc: func(ctx context.Context) (models.ServiceLevel, error) {
			return models.ServiceLevelTFS2012, nil
		},
		ResolveConflictsFunc: func(ctx context.Context, conflicts []*models.Conflict, silent bool) error {
			for _, c := range conflicts {
				c.Resolved = true
			}
			return nil
		},
	}

	// Слияние содержимого всегда дает конфликт: автоматически проходит только избыточное
	content := &resolve.ContentMergerMock{
		MergeContentFunc: func(ctx context.Context, c *models.Conflict) error {
			c.State().ContentMergeSummary = &models.MergeSummary{Conflicting: 1}
			return nil
		},
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	fs := redundancy.NewOSFileSystem()
	properties := &redundancy.PropertySourceMock{}

	c := New(Deps{
		IO:          ioMock,
		Server:      server,
		Metadata:    store,
		Registry:    registry,
		Detector:    redundancy.NewDetector(fs, properties, merge.NewPropertyMerger(), logger),
		Content:     content,
		FileSystem:  fs,
		Logger:      logger,
		User:        "alice",
		Concurrency: 2,
	})

	return &testEnv{cli: c, out: out, io: ioMock, server: server, content: content, store: store, dir: dir}
}

// wireEdit get-конфликт, в котором обе стороны отредактировали localPath
func wireEdit(id int, localPath string, theirHash []byte) api.Conflict {
	return api.Conflict{
		ID:                id,
		Type:              "Get",
		YourServerItem:    fmt.Sprintf("$/proj/file%d.txt", id),
		TheirServerItem:   fmt.Sprintf("$/proj/file%d.txt", id),
		BaseServerItem:    fmt.Sprintf("$/proj/file%d.txt", id),
		TargetLocalItem:   localPath,
		YourItemType:      "File",
		TheirItemType:     "File",
		BaseItemType:      "File",
		YourChangeType:    []string{"Edit"},
		BaseChangeType:    []string{"Edit"},
		TheirChangeTypeEx: int32(models.ChangeTypeEdit >> 1),
		YourEncoding:      65001,
		TheirEncoding:     65001,
		BaseEncoding:      65001,
		YourVersion:       4,
		TheirVersion:      6,
		BaseVersion:       4,
		TheirHashValue:    theirHash,
		BaseDownloadURL:   "download/4",
		TheirDownloadURL:  "download/6",
	}
}

// writeConflicts создает два файла рабочего пространства и JSON с конфликтами:
// #1 совпадает с сервером, #2 отличается
func (e *testEnv) writeConflicts(t *testing.T) string {
	t.Helper()
	same := filepath.Join(e.dir, "file1.txt")
	other := filepath.Join(e.dir, "file2.txt")
	require.NoError(t, os.WriteFile(same, []byte(localContent), 0600))
	require.NoError(t, os.WriteFile(other, []byte(localContent), 0600))

	sum := md5.Sum([]byte(localContent))
	conflicts := []api.Conflict{
		wireEdit(2, other, []byte{1, 2, 3}),
		wireEdit(1, same, sum[:]),
	}

	data, err := json.Marshal(conflicts)
	require.NoError(t, err)

	path := filepath.Join(e.dir, "conflicts.json")
	require.NoError(t, os.WriteFile(path, data, 0600))
	return path
}

func TestRun_UnknownCommand(t *testing.T) {
	env := newTestEnv(t)

	err := env.cli.Run(context.Background(), []string{"frobnicate"})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownCommand)

	require.Error(t, env.cli.Run(context.Background(), nil))
}

func TestClassify(t *testing.T) {
	env := newTestEnv(t)
	path := env.writeConflicts(t)

	require.NoError(t, env.cli.Run(context.Background(), []string{"classify", path}))

	out := env.out.String()
	assert.Contains(t, out, "#1 Get")
	assert.Contains(t, out, "#2 Get")
	// Конфликты выводятся в порядке сортировки, а не в порядке файла
	assert.Less(t, strings.Index(out, "#1 "), strings.Index(out, "#2 "))
	assert.Contains(t, out, "valid for auto merge:")
	assert.Contains(t, out, "Total: 2 conflict(s)")
}

func TestClassify_Errors(t *testing.T) {
	env := newTestEnv(t)

	require.Error(t, env.cli.Run(context.Background(), []string{"classify"}))

	err := env.cli.Run(context.Background(), []string{"classify", filepath.Join(env.dir, "missing.json")})
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)

	broken := filepath.Join(env.dir, "broken.json")
	require.NoError(t, os.WriteFile(broken, []byte("{not json"), 0600))
	require.Error(t, env.cli.Run(context.Background(), []string{"classify", broken}))
}

func TestRedundant(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{name: "full", args: nil, want: "1 of 2 conflict(s) are redundant"},
		// С --quick локальный хэш не считается, поэтому ничего не избыточно
		{name: "quick", args: []string{"--quick"}, want: "0 of 2 conflict(s) are redundant"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t)
			path := env.writeConflicts(t)

			args := append([]string{"redundant"}, tt.args...)
			require.NoError(t, env.cli.Run(context.Background(), append(args, path)))
			assert.Contains(t, env.out.String(), tt.want)
		})
	}
}

func TestRedundant_OldServer(t *testing.T) {
	env := newTestEnv(t)
	path := env.writeConflicts(t)
	require.NoError(t, env.store.SaveServiceLevel(context.Background(), models.ServiceLevelPreTFS2010))

	require.NoError(t, env.cli.Run(context.Background(), []string{"redundant", path}))

	assert.Contains(t, env.out.String(), "0 of 2 conflict(s) are redundant")
	// Кэшированный уровень не запрашивается повторно
	assert.Empty(t, env.server.ServiceLevelCalls())
}

func TestAutoResolve_DryRun(t *testing.T) {
	env := newTestEnv(t)
	path := env.writeConflicts(t)

	require.NoError(t, env.cli.Run(context.Background(), []string{"autoresolve", "--options", "redundant,allcontent", path}))

	out := env.out.String()
	assert.Contains(t, out, "=== Auto-resolve plan ===")
	assert.Contains(t, out, "Resolved (1):")
	assert.Contains(t, out, "#1 AcceptTheirs")
	assert.Contains(t, out, "Unresolved (1):")
	assert.Empty(t, env.server.ResolveConflictsCalls())
	assert.Empty(t, env.io.ConfirmCalls())
	// Для не избыточного конфликта было выполнено слияние содержимого
	require.Len(t, env.content.MergeContentCalls(), 1)
	assert.Equal(t, 2, env.content.MergeContentCalls()[0].C.ID)
}

func TestAutoResolve_DryRunRemovesMergedFile(t *testing.T) {
	env := newTestEnv(t)
	path := env.writeConflicts(t)
	merged := filepath.Join(env.dir, "file2.txt.merged")

	// Меняется только серверная сторона, слияние проходит без конфликтов
	env.content.MergeContentFunc = func(ctx context.Context, c *models.Conflict) error {
		if err := os.WriteFile(merged, []byte(localContent), 0600); err != nil {
			return err
		}
		c.State().ContentMergeSummary = &models.MergeSummary{LatestChanged: 1}
		c.SetMergedFileName(merged)
		return nil
	}

	require.NoError(t, env.cli.Run(context.Background(), []string{"autoresolve", "--options", "redundant,allcontent", path}))

	assert.Contains(t, env.out.String(), "Resolved (2):")
	assert.Contains(t, env.out.String(), "#2 AcceptMerge")
	require.Len(t, env.content.MergeContentCalls(), 1)
	_, err := os.Stat(merged)
	assert.ErrorIs(t, err, os.ErrNotExist)
	assert.Empty(t, env.server.ResolveConflictsCalls())
}

func TestShelvesetDisplay(t *testing.T) {
	env := newTestEnv(t)

	own := wireEdit(1, filepath.Join(env.dir, "file1.txt"), nil)
	own.IsShelvesetConflict = true
	own.TheirShelvesetName = "mine"
	own.TheirShelvesetOwner = "Alice"
	foreign := wireEdit(2, filepath.Join(env.dir, "file2.txt"), nil)
	foreign.IsShelvesetConflict = true
	foreign.TheirShelvesetName = "fix"
	foreign.TheirShelvesetOwner = "bob"

	data, err := json.Marshal([]api.Conflict{own, foreign})
	require.NoError(t, err)
	path := filepath.Join(env.dir, "shelve.json")
	require.NoError(t, os.WriteFile(path, data, 0600))

	require.NoError(t, env.cli.Run(context.Background(), []string{"classify", path}))
	out := env.out.String()
	// Владелец не указывается, если это текущий пользователь
	assert.Contains(t, out, "shelveset: mine\n")
	assert.Contains(t, out, "shelveset: fix;bob\n")

	env.out.Reset()
	require.NoError(t, env.cli.Run(context.Background(), []string{"autoresolve", "--options", "allcontent", path}))
	assert.Contains(t, env.out.String(), "Unresolved (2):")
	assert.Contains(t, env.out.String(), "shelveset: fix;bob\n")
}

func TestAutoResolve_Submit(t *testing.T) {
	env := newTestEnv(t)
	path := env.writeConflicts(t)

	require.NoError(t, env.cli.Run(context.Background(), []string{"autoresolve", "--submit", "--yes", path}))

	calls := env.server.ResolveConflictsCalls()
	require.Len(t, calls, 1)
	require.Len(t, calls[0].Conflicts, 1)
	assert.Equal(t, 1, calls[0].Conflicts[0].ID)
	assert.Equal(t, models.ResolutionAcceptTheirs, calls[0].Conflicts[0].State().Resolution)
	assert.Contains(t, env.out.String(), "=== Auto-resolve ===")
}

func TestAutoResolve_SubmitNotConfirmed(t *testing.T) {
	env := newTestEnv(t)
	path := env.writeConflicts(t)

	err := env.cli.Run(context.Background(), []string{"autoresolve", "--submit", path})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotConfirmed)
	assert.Len(t, env.io.ConfirmCalls(), 1)
	assert.Empty(t, env.server.ResolveConflictsCalls())
}

func TestAutoResolve_FromServer(t *testing.T) {
	env := newTestEnv(t)
	env.server.ConflictsFunc = func(ctx context.Context) ([]*models.Conflict, error) {
		return nil, errors.New("connection refused")
	}

	err := env.cli.Run(context.Background(), []string{"autoresolve"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "connection refused")
}

func TestAutoResolve_ServiceLevelUnavailable(t *testing.T) {
	env := newTestEnv(t)
	path := env.writeConflicts(t)
	env.server.ServiceLevelFunc = func(ctx context.Context) (models.ServiceLevel, error) {
		return models.ServiceLevelUnknown, errors.New("timeout")
	}

	require.NoError(t, env.cli.Run(context.Background(), []string{"autoresolve", "--options", "redundant", path}))

	// Без уровня сервера избыточность не определяется
	assert.Contains(t, env.out.String(), "Resolved (0):")
	assert.Contains(t, env.out.String(), "Unresolved (2):")
}

func TestAutoResolve_BadOptions(t *testing.T) {
	env := newTestEnv(t)

	err := env.cli.Run(context.Background(), []string{"autoresolve", "--options", "everything"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "everything")
}

func TestFileType(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	require.NoError(t, env.cli.Run(ctx, []string{"filetype", "list"}))
	assert.Contains(t, env.out.String(), "No file types registered.")

	require.NoError(t, env.cli.Run(ctx, []string{"filetype", "set", "--name", "Binary", ".DLL", "false"}))
	require.NoError(t, env.cli.Run(ctx, []string{"filetype", "set", "txt", "true"}))

	fileType, err := env.cli.registry.FileType(ctx, "dll")
	require.NoError(t, err)
	require.NotNil(t, fileType)
	assert.Equal(t, "Binary", fileType.Name)
	assert.False(t, fileType.AllowMultipleCheckout)

	env.out.Reset()
	require.NoError(t, env.cli.Run(ctx, []string{"filetype", "list"}))
	assert.Contains(t, env.out.String(), "Binary")
	assert.Contains(t, env.out.String(), "txt")

	require.NoError(t, env.cli.Run(ctx, []string{"filetype", "delete", "Binary"}))
	fileType, err = env.cli.registry.FileType(ctx, "dll")
	require.NoError(t, err)
	assert.Nil(t, fileType)
}

func TestFileType_Errors(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	tests := []struct {
		name string
		args []string
	}{
		{name: "no subcommand", args: []string{"filetype"}},
		{name: "unknown subcommand", args: []string{"filetype", "rename"}},
		{name: "bad flag value", args: []string{"filetype", "set", "txt", "maybe"}},
		{name: "bad extension", args: []string{"filetype", "set", "a/b", "true"}},
		{name: "missing value", args: []string{"filetype", "set", "txt"}},
		{name: "delete without name", args: []string{"filetype", "delete"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Error(t, env.cli.Run(ctx, tt.args))
		})
	}
}

func TestFileType_Sync(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	require.NoError(t, env.cli.Run(ctx, []string{"filetype", "set", "bmp", "true"}))

	env.server.FileTypesFunc = func(ctx context.Context) ([]models.FileType, error) {
		return []models.FileType{
			{Name: "Binary", Extensions: []string{"dll", "exe"}},
			{Name: "Text", Extensions: []string{"txt"}, AllowMultipleCheckout: true},
		}, nil
	}

	require.NoError(t, env.cli.Run(ctx, []string{"filetype", "sync"}))
	assert.Contains(t, env.out.String(), "Synchronized 2 file type(s)")

	// Локальные записи заменяются серверным реестром
	fileTypes, err := env.cli.registry.List(ctx)
	require.NoError(t, err)
	require.Len(t, fileTypes, 2)
	assert.Equal(t, "Binary", fileTypes[0].Name)

	fileType, err := env.cli.registry.FileType(ctx, "bmp")
	require.NoError(t, err)
	assert.Nil(t, fileType)
}

func TestHash(t *testing.T) {
	env := newTestEnv(t)
	path := filepath.Join(env.dir, "a.txt")
	require.NoError(t, os.WriteFile(path, []byte(localContent), 0600))

	require.NoError(t, env.cli.Run(context.Background(), []string{"hash", path}))

	sum := md5.Sum([]byte(localContent))
	assert.Contains(t, env.out.String(), fmt.Sprintf("%x", sum))

	require.Error(t, env.cli.Run(context.Background(), []string{"hash", filepath.Join(env.dir, "missing")}))
}

func TestServiceLevel(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	require.NoError(t, env.cli.Run(ctx, []string{"servicelevel"}))
	require.NoError(t, env.cli.Run(ctx, []string{"servicelevel"}))
	assert.Len(t, env.server.ServiceLevelCalls(), 1)
	assert.Contains(t, env.out.String(), "Service level: TFS2012")
	assert.Contains(t, env.out.String(), "Redundancy detection: yes")

	require.NoError(t, env.cli.Run(ctx, []string{"servicelevel", "--refresh"}))
	assert.Len(t, env.server.ServiceLevelCalls(), 2)

	level, err := env.store.GetServiceLevel(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.ServiceLevelTFS2012, level)
}
