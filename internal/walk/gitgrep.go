// Package walk discovers the candidate files a multi-file search scans.
package walk

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os/exec"
)

// ErrGitGrep reports a git grep invocation that failed for a reason other
// than "no matches".
var ErrGitGrep = errors.New("git grep failed")

// GitGrepOptions mirror the matching flags so git's prior search agrees
// with the engine's.
type GitGrepOptions struct {
	Regex      bool
	WholeWord  bool
	IgnoreCase bool
	// Pathspec limits the search, usually the tree to search in.
	Pathspec string
}

// GitGrep runs `git grep --files-with-matches` and returns the files
// containing at least one match. Exit status 1 (no matches) yields an
// empty list and no error.
func GitGrep(ctx context.Context, pattern string, opts GitGrepOptions) ([]string, error) {
	args := []string{"grep", "--files-with-matches"}
	if opts.IgnoreCase {
		args = append(args, "--ignore-case")
	}
	if !opts.Regex {
		args = append(args, "--fixed-strings")
	}
	if opts.WholeWord {
		args = append(args, "--word-regexp")
	}
	args = append(args, "-e", pattern, "--", opts.Pathspec)

	cmd := exec.CommandContext(ctx, "git", args...)
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, fmt.Errorf("%w: stdout pipe: %v", ErrGitGrep, err)
	}
	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrGitGrep, err)
	}

	var files []string
	scanner := bufio.NewScanner(stdout)
	for scanner.Scan() {
		if path := scanner.Text(); path != "" {
			files = append(files, path)
		}
	}
	scanErr := scanner.Err()

	if err := cmd.Wait(); err != nil {
		var exitErr *exec.ExitError
		// git grep exits 1 when nothing matched; that is not a failure.
		if errors.As(err, &exitErr) && exitErr.ExitCode() == 1 {
			return files, nil
		}
		return nil, fmt.Errorf("%w: %v", ErrGitGrep, err)
	}
	if scanErr != nil {
		return nil, fmt.Errorf("%w: %v", ErrGitGrep, scanErr)
	}
	return files, nil
}
