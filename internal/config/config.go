package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// ErrConfig는 설정 파일 오류를 나타내는 sentinel error다.
var ErrConfig = errors.New("설정 파일 오류")

// Config는 shu 설정 파일의 최상위 구조체다.
type Config struct {
	Version int          `toml:"version"`
	Chunk   ChunkConfig  `toml:"chunk"`
	Tree    TreeConfig   `toml:"tree"`
	Concat  ConcatConfig `toml:"concat"`
}

// ChunkConfig는 chunk 명령의 기본값이다.
type ChunkConfig struct {
	// DestDir는 --dest 미지정 시 사용할 출력 디렉토리다. 비어있으면 원본 위치.
	DestDir string `toml:"dest_dir"`
}

// TreeConfig는 tree 명령의 기본값이다.
type TreeConfig struct {
	Exclude  []string `toml:"exclude"`
	MaxDepth int      `toml:"max_depth"`
}

// ConcatConfig는 concat 명령의 기본값이다.
type ConcatConfig struct {
	Label bool `toml:"label"`
}

// Default는 기본 설정을 반환한다.
func Default() *Config {
	return &Config{Version: 1}
}

// Load는 config.toml을 파싱하여 Config를 반환한다.
// 파일이 없으면 기본 설정을 반환한다 (설정 파일은 선택 사항).
func Load(path string) (*Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return Default(), nil
	}
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("config.Load: %v: %w", err, ErrConfig)
	}
	cfg.applyDefaults()
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Save는 설정을 TOML 파일로 저장한다 (0600 권한).
func Save(path string, cfg *Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("config.Save: %w", err)
	}
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return fmt.Errorf("config.Save: %w", err)
	}
	if err := toml.NewEncoder(f).Encode(cfg); err != nil {
		f.Close()
		return fmt.Errorf("config.Save: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("config.Save: %w", err)
	}
	return nil
}

func (c *Config) applyDefaults() {
	if c.Version == 0 {
		c.Version = 1
	}
}

func (c *Config) validate() error {
	if c.Tree.MaxDepth < 0 {
		return fmt.Errorf("config.Load: tree.max_depth는 음수일 수 없습니다 (got %d): %w", c.Tree.MaxDepth, ErrConfig)
	}
	for _, pat := range c.Tree.Exclude {
		if _, err := filepath.Match(pat, "x"); err != nil {
			return fmt.Errorf("config.Load: tree.exclude 패턴 %q: %w", pat, ErrConfig)
		}
	}
	return nil
}
