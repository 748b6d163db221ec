package cli

import (
	"context"
	"flag"
	"fmt"
	"io"

	"github.com/iudanet/vcresolve/internal/models"
)

func (c *Cli) runServiceLevel(ctx context.Context, args []string) error {
	fset := flag.NewFlagSet("servicelevel", flag.ContinueOnError)
	fset.SetOutput(io.Discard)
	refresh := fset.Bool("refresh", false, "Ask the server even if a cached value exists")
	if err := fset.Parse(args); err != nil {
		return fmt.Errorf("failed to parse flags: %w", err)
	}

	level, err := c.serviceLevel(ctx, *refresh)
	if err != nil {
		return fmt.Errorf("failed to get service level: %w", err)
	}

	c.io.Printf("Service level: %s\n", level)
	c.io.Printf("Redundancy detection: %s\n", yesNo(level >= models.ServiceLevelRedundancyMetadata))
	return nil
}
