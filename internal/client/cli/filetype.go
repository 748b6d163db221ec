package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/iudanet/vcresolve/internal/models"
	"github.com/iudanet/vcresolve/internal/validation"
)

func (c *Cli) runFileType(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("missing subcommand. Usage: vcresolve filetype <set|list|sync|delete>")
	}

	switch args[0] {
	case "set":
		return c.runFileTypeSet(ctx, args[1:])
	case "list":
		return c.runFileTypeList(ctx)
	case "sync":
		return c.runFileTypeSync(ctx)
	case "delete":
		if len(args) != 2 {
			return fmt.Errorf("missing name. Usage: vcresolve filetype delete NAME")
		}
		if err := c.registry.Delete(ctx, args[1]); err != nil {
			return fmt.Errorf("failed to delete file type: %w", err)
		}
		c.io.Printf("✓ File type %s deleted\n", args[1])
		return nil
	default:
		return fmt.Errorf("unknown filetype subcommand: %s. Use: set, list, sync or delete", args[0])
	}
}

func (c *Cli) runFileTypeSet(ctx context.Context, args []string) error {
	fset := flag.NewFlagSet("filetype set", flag.ContinueOnError)
	fset.SetOutput(io.Discard)
	name := fset.String("name", "", "File type name (default: the extension)")
	if err := fset.Parse(args); err != nil {
		return fmt.Errorf("failed to parse flags: %w", err)
	}
	if fset.NArg() != 2 {
		return fmt.Errorf("usage: vcresolve filetype set [--name NAME] EXT true|false")
	}

	ext := strings.ToLower(strings.TrimPrefix(fset.Arg(0), "."))
	if err := validation.ValidateExtension(ext); err != nil {
		return fmt.Errorf("invalid extension: %w", err)
	}

	allow, err := strconv.ParseBool(fset.Arg(1))
	if err != nil {
		return fmt.Errorf("invalid merge flag %q: use true or false", fset.Arg(1))
	}

	if *name == "" {
		*name = ext
	}

	fileType := &models.FileType{Name: *name, Extensions: []string{ext}, AllowMultipleCheckout: allow}
	if err := c.registry.Set(ctx, fileType); err != nil {
		return fmt.Errorf("failed to save file type: %w", err)
	}

	c.io.Printf("✓ .%s (%s): merge %s\n", ext, *name, allowedText(allow))
	return nil
}

func (c *Cli) runFileTypeList(ctx context.Context) error {
	fileTypes, err := c.registry.List(ctx)
	if err != nil {
		return fmt.Errorf("failed to list file types: %w", err)
	}

	c.io.Println("=== File Types ===")
	c.io.Println()

	if len(fileTypes) == 0 {
		c.io.Println("No file types registered.")
		c.io.Println()
		c.io.Println("Use 'vcresolve filetype set EXT true|false' or 'vcresolve filetype sync'.")
		return nil
	}

	for _, ft := range fileTypes {
		c.io.Printf("%-20s merge %-9s %s\n", ft.Name, allowedText(ft.AllowMultipleCheckout), strings.Join(ft.Extensions, ", "))
	}
	return nil
}

func (c *Cli) runFileTypeSync(ctx context.Context) error {
	fileTypes, err := c.server.FileTypes(ctx)
	if err != nil {
		return fmt.Errorf("failed to get file types: %w", err)
	}

	existing, err := c.registry.List(ctx)
	if err != nil {
		return fmt.Errorf("failed to list file types: %w", err)
	}
	for _, ft := range existing {
		if err := c.registry.Delete(ctx, ft.Name); err != nil {
			return fmt.Errorf("failed to delete file type %s: %w", ft.Name, err)
		}
	}

	for i := range fileTypes {
		if err := c.registry.Set(ctx, &fileTypes[i]); err != nil {
			return fmt.Errorf("failed to save file type %s: %w", fileTypes[i].Name, err)
		}
	}

	c.io.Printf("✓ Synchronized %d file type(s)\n", len(fileTypes))
	return nil
}

func allowedText(allow bool) string {
	if allow {
		return "allowed"
	}
	return "forbidden"
}
