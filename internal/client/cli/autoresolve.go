package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"

	"github.com/iudanet/vcresolve/internal/client/resolve"
	"github.com/iudanet/vcresolve/internal/models"
)

// ErrNotConfirmed пользователь не подтвердил отправку разрешений
var ErrNotConfirmed = errors.New("resolution not confirmed, use --yes to skip the prompt")

// dryRunResolver помечает конфликты разрешенными без обращения к серверу
type dryRunResolver struct{}

func (dryRunResolver) ResolveConflicts(_ context.Context, conflicts []*models.Conflict, _ bool) error {
	for _, c := range conflicts {
		c.Resolved = true
	}
	return nil
}

func (c *Cli) runAutoResolve(ctx context.Context, args []string) error {
	fset := flag.NewFlagSet("autoresolve", flag.ContinueOnError)
	fset.SetOutput(io.Discard)
	optionList := fset.String("options", "all", "Comma separated auto-resolve options")
	submit := fset.Bool("submit", false, "Send resolutions to the server")
	yes := fset.Bool("yes", false, "Do not ask for confirmation")
	if err := fset.Parse(args); err != nil {
		return fmt.Errorf("failed to parse flags: %w", err)
	}

	opts, err := models.ParseAutoResolveOptions(*optionList)
	if err != nil {
		return err
	}

	var conflicts []*models.Conflict
	switch fset.NArg() {
	case 0:
		conflicts, err = c.server.Conflicts(ctx)
		if err != nil {
			return fmt.Errorf("failed to get conflicts: %w", err)
		}
		models.SortConflicts(conflicts)
	case 1:
		conflicts, err = loadConflicts(fset.Arg(0))
		if err != nil {
			return err
		}
	default:
		return fmt.Errorf("too many arguments. Usage: vcresolve autoresolve [--options LIST] [--submit] [--yes] [FILE]")
	}

	if *submit && !*yes {
		ok, err := c.io.Confirm(fmt.Sprintf("Resolve up to %d conflict(s) on the server?", len(conflicts)))
		if err != nil {
			return fmt.Errorf("failed to read confirmation: %w", err)
		}
		if !ok {
			return ErrNotConfirmed
		}
	}

	// Без уровня сервера проверка избыточности просто не срабатывает
	level, err := c.serviceLevel(ctx, false)
	if err != nil {
		c.logger.Warn("Could not determine server service level", "error", err)
		level = models.ServiceLevelUnknown
	}

	var resolver resolve.ConflictResolver = dryRunResolver{}
	if *submit {
		resolver = c.server
	}
	service := resolve.NewService(c.detector, c.registry, c.content, resolver, c.fs, c.concurrency, c.logger)
	result := service.AutoResolve(ctx, conflicts, opts, level)

	title := "=== Auto-resolve plan ==="
	if *submit {
		title = "=== Auto-resolve ==="
	}
	c.io.Println(title)
	c.io.Println()

	c.io.Printf("Resolved (%d):\n", len(result.Resolved))
	for _, conflict := range result.Resolved {
		state := conflict.State()
		c.io.Printf("  #%d %-14s %s\n", conflict.ID, state.Resolution, conflict.DetailedMessage(false))
		if state.Options.NewPath != "" {
			c.io.Printf("      new path: %s\n", state.Options.NewPath)
		}
		c.printShelveset(conflict)
	}

	c.io.Printf("Unresolved (%d):\n", len(result.Unresolved))
	for _, conflict := range result.Unresolved {
		c.io.Printf("  #%d %s\n", conflict.ID, conflict.DetailedMessage(true))
		c.printShelveset(conflict)
	}

	// В пробном режиме результаты слияния никуда не применяются
	if !*submit {
		for _, conflict := range result.Resolved {
			c.detector.CleanUpMergedFile(conflict)
		}
	}

	if result.Err != nil && !opts.Contains(models.AutoResolveSilent) {
		c.io.Println()
		c.io.Printf("Warnings:\n%v\n", result.Err)
	}
	return nil
}
