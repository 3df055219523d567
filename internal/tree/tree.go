// Package tree renders a directory tree with box-drawing connectors,
// name-pattern exclusion, and depth limiting.
package tree

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
)

// ErrNotDirectory는 루트 경로가 디렉토리가 아닐 때의 sentinel error다.
var ErrNotDirectory = errors.New("디렉토리가 아님")

// Options는 렌더링 옵션이다. MaxDepth 0은 제한 없음을 의미하고,
// Excludes는 filepath.Match 패턴으로 항목 이름과 비교된다.
type Options struct {
	MaxDepth int
	Excludes []string
	DirsOnly bool
}

// Stats는 렌더링된 디렉토리/파일 개수다. 루트는 세지 않는다.
type Stats struct {
	Dirs  int
	Files int
}

// Render는 root 아래의 트리를 w에 출력하고 요약 라인을 덧붙인다.
// 읽을 수 없는 하위 디렉토리는 주석으로 표시하고 계속 진행한다.
func Render(w io.Writer, root string, opts Options) (*Stats, error) {
	for _, pat := range opts.Excludes {
		if _, err := filepath.Match(pat, "x"); err != nil {
			return nil, fmt.Errorf("tree.Render: 잘못된 패턴 %q: %w", pat, err)
		}
	}

	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("tree.Render: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("tree.Render: %s: %w", root, ErrNotDirectory)
	}

	if _, err := fmt.Fprintln(w, root); err != nil {
		return nil, fmt.Errorf("tree.Render: %w", err)
	}

	st := &Stats{}
	if err := walk(w, root, "", 1, opts, st); err != nil {
		return nil, err
	}

	if _, err := fmt.Fprintf(w, "\n%d directories, %d files\n", st.Dirs, st.Files); err != nil {
		return nil, fmt.Errorf("tree.Render: %w", err)
	}
	return st, nil
}

func walk(w io.Writer, dir, prefix string, depth int, opts Options, st *Stats) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("tree.Render: %w", err)
	}
	entries = filter(entries, opts)

	for i, e := range entries {
		connector, childPrefix := "├── ", prefix+"│   "
		if i == len(entries)-1 {
			connector, childPrefix = "└── ", prefix+"    "
		}

		if _, err := fmt.Fprintf(w, "%s%s%s\n", prefix, connector, e.Name()); err != nil {
			return fmt.Errorf("tree.Render: %w", err)
		}

		if !e.IsDir() {
			st.Files++
			continue
		}
		st.Dirs++

		if opts.MaxDepth > 0 && depth >= opts.MaxDepth {
			continue
		}
		if err := walk(w, filepath.Join(dir, e.Name()), childPrefix, depth+1, opts, st); err != nil {
			// 하위 디렉토리를 열 수 없으면 표시만 하고 계속 간다
			fmt.Fprintf(w, "%s└── [열 수 없음]\n", childPrefix)
		}
	}
	return nil
}

func filter(entries []fs.DirEntry, opts Options) []fs.DirEntry {
	kept := entries[:0]
	for _, e := range entries {
		if opts.DirsOnly && !e.IsDir() {
			continue
		}
		if excluded(e.Name(), opts.Excludes) {
			continue
		}
		kept = append(kept, e)
	}
	return kept
}

func excluded(name string, patterns []string) bool {
	for _, pat := range patterns {
		if ok, _ := filepath.Match(pat, name); ok {
			return true
		}
	}
	return false
}
