package setup

import (
	"fmt"
	"os"

	"github.com/hbjs97/shu/internal/config"
)

// Runner는 interactive setup의 진입점이다.
type Runner struct {
	CfgPath    string
	FormRunner FormRunner
}

// Run은 setup 플로우를 실행한다. 설정 파일이 이미 있으면 덮어쓸지 확인한다.
func (r *Runner) Run() error {
	var defaults *Input

	if _, err := os.Stat(r.CfgPath); err == nil {
		ok, err := r.FormRunner.RunConfirm(fmt.Sprintf("설정 파일이 이미 존재합니다 (%s). 덮어쓸까요?", r.CfgPath))
		if err != nil {
			return err
		}
		if !ok {
			fmt.Println("설정을 변경하지 않았습니다.")
			return nil
		}
		if cfg, err := config.Load(r.CfgPath); err == nil {
			defaults = &Input{
				ChunkDestDir: cfg.Chunk.DestDir,
				TreeExcludes: cfg.Tree.Exclude,
				ConcatLabel:  cfg.Concat.Label,
			}
		}
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("setup.Run: %w", err)
	}

	input, err := r.FormRunner.RunDefaultsForm(defaults)
	if err != nil {
		return err
	}

	cfg := config.Default()
	cfg.Chunk.DestDir = input.ChunkDestDir
	cfg.Tree.Exclude = input.TreeExcludes
	cfg.Concat.Label = input.ConcatLabel

	if err := config.Save(r.CfgPath, cfg); err != nil {
		return err
	}

	fmt.Printf("설정 파일이 저장되었습니다: %s\n", r.CfgPath)
	return nil
}
