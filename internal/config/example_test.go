package config_test

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/hbjs97/shu/internal/config"
)

func ExampleLoad() {
	dir, _ := os.MkdirTemp("", "shu-example")
	defer os.RemoveAll(dir)

	path := filepath.Join(dir, "config.toml")
	content := `version = 1

[tree]
exclude = [".git"]
max_depth = 5
`
	_ = os.WriteFile(path, []byte(content), 0600)

	cfg, err := config.Load(path)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println(cfg.Version)
	fmt.Println(cfg.Tree.Exclude[0])
	fmt.Println(cfg.Tree.MaxDepth)
	// Output:
	// 1
	// .git
	// 5
}

func ExampleLoad_missingFile() {
	cfg, err := config.Load("/nonexistent/config.toml")
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	// Missing file falls back to defaults.
	fmt.Println(cfg.Version)
	fmt.Println(len(cfg.Tree.Exclude))
	// Output:
	// 1
	// 0
}
