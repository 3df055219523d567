package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/hbjs97/shu/internal/setup"
	"github.com/spf13/cobra"
)

// setupTemplate는 shu setup이 생성하는 기본 config.toml 내용이다.
const setupTemplate = `# shu configuration file
# See: https://github.com/hbjs97/shu

version = 1

[chunk]
# dest_dir = "/tmp/chunks"

[tree]
exclude = [".git", "node_modules", "__pycache__"]
# max_depth = 0

[concat]
# label = false
`

func (a *App) newSetupCmd() *cobra.Command {
	var interactive bool

	cmd := &cobra.Command{
		Use:   "setup",
		Short: "shu 초기 설정을 시작한다",
		RunE: func(cmd *cobra.Command, args []string) error {
			if interactive {
				r := &setup.Runner{CfgPath: a.CfgPath, FormRunner: &setup.HuhFormRunner{}}
				return r.Run()
			}
			return a.runSetup()
		},
	}
	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "폼 기반 interactive 설정")
	return cmd
}

// runSetup는 설정 파일 템플릿을 생성한다.
func (a *App) runSetup() error {
	if _, err := os.Stat(a.CfgPath); err == nil {
		return fmt.Errorf("cli.setup: 설정 파일이 이미 존재합니다: %s", a.CfgPath)
	}

	dir := filepath.Dir(a.CfgPath)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("cli.setup: 디렉토리 생성 실패: %w", err)
	}

	if err := os.WriteFile(a.CfgPath, []byte(setupTemplate), 0600); err != nil {
		return fmt.Errorf("cli.setup: 설정 파일 생성 실패: %w", err)
	}

	fmt.Printf("설정 파일이 생성되었습니다: %s\n", a.CfgPath)
	fmt.Println("기본값을 수정하려면 shu setup --interactive를 실행하세요.")
	return nil
}
