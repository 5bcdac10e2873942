// Package shellrc adds and removes the supgit alias block in a shell
// startup file.
//
// The block is delimited by marker comments so that it can be found and
// removed again without touching anything the user wrote:
//
//	# >>> supgit alias >>>
//	alias git='supgit'
//	# <<< supgit alias <<<
package shellrc

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

const (
	StartMarker = "# >>> supgit alias >>>"
	EndMarker   = "# <<< supgit alias <<<"
	AliasLine   = "alias git='supgit'"
)

// Block is the text appended by Install.
const Block = "\n" + StartMarker + "\n" + AliasLine + "\n" + EndMarker + "\n"

// Result reports what Install or Uninstall did.
type Result int

const (
	Installed Result = iota
	AlreadyInstalled
	Removed
	NotInstalled
)

func (r Result) String() string {
	switch r {
	case Installed:
		return "installed"
	case AlreadyInstalled:
		return "already installed"
	case Removed:
		return "removed"
	case NotInstalled:
		return "not installed"
	default:
		return fmt.Sprintf("Result(%d)", int(r))
	}
}

// ErrMalformedBlock is returned by Uninstall when the start marker has no
// end marker after it.
var ErrMalformedBlock = errors.New("alias block has a start marker but no end marker")

// Install appends the alias block to the file at path unless a start
// marker is already present. A missing file is created.
func Install(path string) (Result, error) {
	content, err := os.ReadFile(path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return 0, fmt.Errorf("read %s: %w", path, err)
	}
	if strings.Contains(string(content), StartMarker) {
		return AlreadyInstalled, nil
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return 0, fmt.Errorf("open %s: %w", path, err)
	}
	if _, err := f.WriteString(Block); err != nil {
		f.Close()
		return 0, fmt.Errorf("write %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return 0, fmt.Errorf("write %s: %w", path, err)
	}
	return Installed, nil
}

// Uninstall removes the alias block from the file at path, including the
// newline before it, and trims trailing whitespace from the result.
func Uninstall(path string) (Result, error) {
	info, err := os.Stat(path)
	if err != nil {
		return 0, fmt.Errorf("read %s: %w", path, err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("read %s: %w", path, err)
	}

	updated, found, err := RemoveBlock(string(data))
	if err != nil {
		return 0, fmt.Errorf("%s: %w", path, err)
	}
	if !found {
		return NotInstalled, nil
	}

	if err := os.WriteFile(path, []byte(updated), info.Mode().Perm()); err != nil {
		return 0, fmt.Errorf("write %s: %w", path, err)
	}
	return Removed, nil
}

// RemoveBlock returns content without the first alias block. found is
// false when content has no start marker.
func RemoveBlock(content string) (updated string, found bool, err error) {
	start := strings.Index(content, StartMarker)
	if start < 0 {
		return content, false, nil
	}

	rel := strings.Index(content[start:], EndMarker)
	if rel < 0 {
		return "", true, ErrMalformedBlock
	}
	end := start + rel + len(EndMarker)

	if start > 0 && content[start-1] == '\n' {
		start--
	}
	updated = content[:start] + content[end:]
	return strings.TrimRight(updated, " \t\r\n"), true, nil
}

// ConfigPath returns the startup file for shell in home: .zshrc when the
// shell path mentions zsh, .bashrc otherwise.
func ConfigPath(home, shell string) string {
	if strings.Contains(shell, "zsh") {
		return filepath.Join(home, ".zshrc")
	}
	return filepath.Join(home, ".bashrc")
}

// Resolve returns override when set, else the file chosen by ConfigPath
// for the user's home directory and $SHELL.
func Resolve(override string) (string, error) {
	if override != "" {
		return override, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not determine home directory: %w", err)
	}
	return ConfigPath(home, os.Getenv("SHELL")), nil
}
