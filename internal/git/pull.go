package git

import (
	"context"
	"fmt"
)

// FastForwardPull runs `git pull --ff-only` in dir. A pull that would
// require a merge is a hard error.
func FastForwardPull(ctx context.Context, dir string) error {
	_, err := run(ctx, dir, "pull", "--ff-only")
	if err != nil {
		return fmt.Errorf("%w: %v", ErrWouldNotFastForward, err)
	}
	return nil
}
