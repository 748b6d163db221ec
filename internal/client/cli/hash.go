package cli

import (
	"context"
	"encoding/hex"
	"fmt"

	"github.com/iudanet/vcresolve/internal/crypto"
)

func (c *Cli) runHash(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("missing path. Usage: vcresolve hash PATH")
	}

	sum, err := crypto.HashFile(ctx, args[0])
	if err != nil {
		return fmt.Errorf("failed to hash %s: %w", args[0], err)
	}

	c.io.Printf("%s  %s\n", hex.EncodeToString(sum), args[0])
	return nil
}
