package cli

import (
	"context"
	"flag"
	"fmt"
	"io"

	"github.com/iudanet/vcresolve/internal/client/classifier"
	"github.com/iudanet/vcresolve/internal/models"
)

func (c *Cli) runClassify(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("missing conflicts file. Usage: vcresolve classify FILE")
	}

	conflicts, err := loadConflicts(args[0])
	if err != nil {
		return err
	}

	c.io.Println("=== Conflicts ===")
	c.io.Println()
	for _, conflict := range conflicts {
		if err := c.printClassification(ctx, conflict); err != nil {
			return err
		}
	}
	c.io.Printf("Total: %d conflict(s)\n", len(conflicts))
	return nil
}

func (c *Cli) printClassification(ctx context.Context, conflict *models.Conflict) error {
	basic, err := classifier.IsBasicMergeAllowed(ctx, conflict, c.registry)
	if err != nil {
		return fmt.Errorf("conflict %d: %w", conflict.ID, err)
	}
	auto, err := classifier.IsValidForAutoMerge(ctx, conflict, c.registry)
	if err != nil {
		return fmt.Errorf("conflict %d: %w", conflict.ID, err)
	}

	c.io.Printf("#%d %s: %s\n", conflict.ID, conflict.Type, conflict.DetailedMessage(true))
	c.printShelveset(conflict)
	rows := []struct {
		label string
		value bool
	}{
		{"can merge content", classifier.CanMergeContent(conflict)},
		{"basic merge allowed", basic},
		{"valid for auto merge", auto},
		{"requires explicit accept merge", classifier.RequiresExplicitAcceptMerge(conflict)},
		{"property conflict", classifier.IsPropertyConflict(conflict)},
		{"name changed", classifier.IsNameChanged(conflict)},
		{"encoding changed", classifier.IsEncodingChanged(conflict)},
		{"baseless", classifier.IsBaseless(conflict)},
		{"binary", classifier.IsBinary(conflict)},
	}
	for _, row := range rows {
		c.io.Printf("  %-32s %s\n", row.label+":", yesNo(row.value))
	}
	c.io.Println()
	return nil
}

func (c *Cli) runRedundant(ctx context.Context, args []string) error {
	fset := flag.NewFlagSet("redundant", flag.ContinueOnError)
	fset.SetOutput(io.Discard)
	quick := fset.Bool("quick", false, "Use cached hashes only, do not hash local files")
	if err := fset.Parse(args); err != nil {
		return fmt.Errorf("failed to parse flags: %w", err)
	}
	if fset.NArg() != 1 {
		return fmt.Errorf("missing conflicts file. Usage: vcresolve redundant [--quick] FILE")
	}

	conflicts, err := loadConflicts(fset.Arg(0))
	if err != nil {
		return err
	}

	level, err := c.serviceLevel(ctx, false)
	if err != nil {
		return fmt.Errorf("failed to get service level: %w", err)
	}

	redundant := 0
	for _, conflict := range conflicts {
		ok, err := c.detector.IsRedundant(ctx, conflict, *quick, level)
		if err != nil {
			return fmt.Errorf("conflict %d: %w", conflict.ID, err)
		}
		mark := "-"
		if ok {
			mark = "="
			redundant++
		}
		c.io.Printf("%s #%d %s\n", mark, conflict.ID, conflict.DetailedMessage(true))
	}

	c.io.Println()
	c.io.Printf("%d of %d conflict(s) are redundant\n", redundant, len(conflicts))
	return nil
}

// printShelveset выводит shelveset, из которого пришли "their" изменения
func (c *Cli) printShelveset(conflict *models.Conflict) {
	if name := conflict.TheirShelvesetDisplayName(c.user); name != "" {
		c.io.Printf("      shelveset: %s\n", name)
	}
}
