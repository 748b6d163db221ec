package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/iudanet/vcresolve/internal/client/api"
	"github.com/iudanet/vcresolve/internal/client/filetype"
	"github.com/iudanet/vcresolve/internal/client/iocli"
	"github.com/iudanet/vcresolve/internal/client/redundancy"
	"github.com/iudanet/vcresolve/internal/client/resolve"
	"github.com/iudanet/vcresolve/internal/client/storage"
	"github.com/iudanet/vcresolve/internal/models"
)

//go:generate moq -out server_mock.go . Server

// Server операции сервера, которые нужны командам
type Server interface {
	Conflicts(ctx context.Context) ([]*models.Conflict, error)
	ServiceLevel(ctx context.Context) (models.ServiceLevel, error)
	FileTypes(ctx context.Context) ([]models.FileType, error)
	ResolveConflicts(ctx context.Context, conflicts []*models.Conflict, silent bool) error
}

// Deps зависимости CLI, собираются в cmd/client
type Deps struct {
	IO          iocli.IO
	Server      Server
	Metadata    storage.MetadataStorage
	Registry    *filetype.Registry
	Detector    redundancy.Detector
	Content     resolve.ContentMerger
	FileSystem  redundancy.FileSystem
	Logger      *slog.Logger
	// User текущий пользователь, от него зависит отображение имен shelveset
	User        string
	Concurrency int
}

type Cli struct {
	io          iocli.IO
	server      Server
	metadata    storage.MetadataStorage
	registry    *filetype.Registry
	detector    redundancy.Detector
	content     resolve.ContentMerger
	fs          redundancy.FileSystem
	logger      *slog.Logger
	user        string
	concurrency int
}

func New(deps Deps) *Cli {
	return &Cli{
		io:          deps.IO,
		server:      deps.Server,
		metadata:    deps.Metadata,
		registry:    deps.Registry,
		detector:    deps.Detector,
		content:     deps.Content,
		fs:          deps.FileSystem,
		logger:      deps.Logger,
		user:        deps.User,
		concurrency: deps.Concurrency,
	}
}

// ErrUnknownCommand неизвестная команда
var ErrUnknownCommand = errors.New("unknown command")

// Run выполняет команду args[0] с аргументами args[1:]
func (c *Cli) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("missing command")
	}

	command, rest := args[0], args[1:]
	switch command {
	case "classify":
		return c.runClassify(ctx, rest)
	case "redundant":
		return c.runRedundant(ctx, rest)
	case "autoresolve":
		return c.runAutoResolve(ctx, rest)
	case "filetype":
		return c.runFileType(ctx, rest)
	case "hash":
		return c.runHash(ctx, rest)
	case "servicelevel":
		return c.runServiceLevel(ctx, rest)
	default:
		return fmt.Errorf("%w: %s", ErrUnknownCommand, command)
	}
}

// loadConflicts читает конфликты из JSON-файла и сортирует их сверху вниз
func loadConflicts(path string) ([]*models.Conflict, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open conflicts file: %w", err)
	}
	defer func() {
		_ = f.Close()
	}()

	conflicts, err := api.DecodeConflicts(f)
	if err != nil {
		return nil, err
	}
	models.SortConflicts(conflicts)
	return conflicts, nil
}

// serviceLevel берет уровень из локального кэша, при отсутствии спрашивает сервер
func (c *Cli) serviceLevel(ctx context.Context, refresh bool) (models.ServiceLevel, error) {
	if !refresh {
		level, err := c.metadata.GetServiceLevel(ctx)
		if err == nil {
			return level, nil
		}
		if !errors.Is(err, storage.ErrServiceLevelNotFound) {
			return models.ServiceLevelUnknown, err
		}
	}

	level, err := c.server.ServiceLevel(ctx)
	if err != nil {
		return models.ServiceLevelUnknown, err
	}
	if err := c.metadata.SaveServiceLevel(ctx, level); err != nil {
		c.logger.Warn("Failed to cache service level", "error", err)
	}
	return level, nil
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

func PrintUsage() {
	fmt.Println("vcresolve - conflict auto-resolution client")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  vcresolve [OPTIONS] COMMAND")
	fmt.Println()
	fmt.Println("Options:")
	fmt.Println("  --version              Show version information")
	fmt.Println("  --server URL           Server URL (default: http://localhost:8080, env VCRESOLVE_SERVER)")
	fmt.Println("  --db PATH              Path to local database (default: vcresolve-client.db, env VCRESOLVE_DB)")
	fmt.Println("  --log-level LEVEL      debug, info, warn, error (env VCRESOLVE_LOG_LEVEL)")
	fmt.Println("  --git PATH             git binary used for content merges (env VCRESOLVE_GIT)")
	fmt.Println("  --temp-dir DIR         Directory for merge temporary files (env VCRESOLVE_TEMP_DIR)")
	fmt.Println("  --concurrency N        Conflicts triaged in parallel (env VCRESOLVE_CONCURRENCY)")
	fmt.Println("  --user NAME            Current user for shelveset owners (default: $USER, env VCRESOLVE_USER)")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  classify FILE                          Show how each conflict can be resolved")
	fmt.Println("  redundant [--quick] FILE               Report conflicts where both sides made the same change")
	fmt.Println("  autoresolve [--options LIST] [--submit] [--yes] [FILE]")
	fmt.Println("                                         Resolve conflicts that need no decision")
	fmt.Println("  filetype set [--name N] EXT true|false Allow or forbid merging files with extension EXT")
	fmt.Println("  filetype list                          List the local file type registry")
	fmt.Println("  filetype sync                          Replace local file types with the server registry")
	fmt.Println("  filetype delete NAME                   Remove a file type")
	fmt.Println("  hash PATH                              Print the MD5 of a local file")
	fmt.Println("  servicelevel [--refresh]               Show the server service level")
	fmt.Println()
	fmt.Println("FILE is a JSON array of conflicts as returned by the server.")
	fmt.Println("Auto-resolve options: onlylocaltarget, onlyserversource, bothlocalandsource,")
	fmt.Println("incomingrename, redundant, silent, allcontent, all (comma separated).")
	fmt.Println()
	fmt.Println("Examples:")
	fmt.Println("  vcresolve classify conflicts.json")
	fmt.Println("  vcresolve autoresolve --options redundant,allcontent conflicts.json")
	fmt.Println("  vcresolve --server https://tfs.example.com autoresolve --submit --yes")
	fmt.Println("  vcresolve filetype set --name Binary dll false")
}
