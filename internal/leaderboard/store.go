// Package leaderboard keeps the top scores in a plain text file, one
// integer per line, highest first.
package leaderboard

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"
	"sync"
)

// DefaultSize is the number of scores kept when no size is configured.
const DefaultSize = 5

// ErrNegativeScore is returned by Record for scores below zero.
var ErrNegativeScore = errors.New("leaderboard: negative score")

// Store reads and rewrites the leaderboard file. It is safe for concurrent
// use so SSH sessions can share one store.
type Store struct {
	mu   sync.Mutex
	path string
	size int
}

// New creates a store for the file at path. A leading ~ is expanded to the
// home directory. The file is not touched until the first Load or Record.
func New(path string, size int) (*Store, error) {
	if path == "" {
		return nil, errors.New("leaderboard: empty path")
	}
	if path[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("leaderboard: cannot expand home directory: %w", err)
		}
		path = filepath.Join(home, path[1:])
	}
	if size <= 0 {
		size = DefaultSize
	}
	return &Store{path: path, size: size}, nil
}

// Path returns the resolved file path.
func (s *Store) Path() string { return s.path }

// Size returns the number of scores kept.
func (s *Store) Size() int { return s.size }

// Load returns the stored scores, descending. It never fails: a missing
// file is created empty, and an unreadable one reads as empty.
func (s *Store) Load() []int {
	s.mu.Lock()
	defer s.mu.Unlock()

	scores, err := s.read()
	if errors.Is(err, os.ErrNotExist) {
		s.create() //nolint:errcheck // Best-effort, the next Record reports write errors
		return []int{}
	}
	if err != nil {
		return []int{}
	}
	return scores
}

// Record merges score into the board and rewrites the whole file.
// Returns the updated board.
func (s *Store) Record(score int) ([]int, error) {
	if score < 0 {
		return nil, ErrNegativeScore
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	current, err := s.read()
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("leaderboard: cannot read %s: %w", s.path, err)
	}

	updated := Merge(current, score, s.size)
	if err := s.write(updated); err != nil {
		return nil, err
	}
	return updated, nil
}

func (s *Store) read() ([]int, error) {
	f, err := os.Open(s.path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Parse(f, s.size), nil
}

func (s *Store) create() error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return err
	}
	f, err := os.OpenFile(s.path, os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	return f.Close()
}

// write replaces the file through a temp file in the same directory, so a
// reader never sees a half-written board.
func (s *Store) write(scores []int) error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("leaderboard: cannot create directory %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, ".leaderboard-*")
	if err != nil {
		return fmt.Errorf("leaderboard: cannot write %s: %w", s.path, err)
	}
	defer os.Remove(tmp.Name()) //nolint:errcheck // Gone after a successful rename

	if _, err := tmp.Write(Format(scores)); err != nil {
		tmp.Close()
		return fmt.Errorf("leaderboard: cannot write %s: %w", s.path, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("leaderboard: cannot write %s: %w", s.path, err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("leaderboard: cannot replace %s: %w", s.path, err)
	}
	return nil
}

// Parse reads one integer per line. Blank, non-numeric and negative lines
// are skipped. The result is sorted descending and truncated to size.
func Parse(r io.Reader, size int) []int {
	scores := []int{}
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		n, err := strconv.Atoi(line)
		if err != nil || n < 0 {
			continue
		}
		scores = append(scores, n)
	}
	sortDesc(scores)
	return truncate(scores, size)
}

// Merge returns a new board with score added, sorted descending and
// truncated to size. The input is not modified.
func Merge(scores []int, score, size int) []int {
	out := make([]int, 0, len(scores)+1)
	out = append(out, scores...)
	out = append(out, score)
	sortDesc(out)
	return truncate(out, size)
}

// Format renders the board as file content.
func Format(scores []int) []byte {
	var buf bytes.Buffer
	for _, v := range scores {
		buf.WriteString(strconv.Itoa(v))
		buf.WriteByte('\n')
	}
	return buf.Bytes()
}

func sortDesc(s []int) {
	slices.SortFunc(s, func(a, b int) int { return b - a })
}

func truncate(s []int, size int) []int {
	if size > 0 && len(s) > size {
		return s[:size]
	}
	return s
}
