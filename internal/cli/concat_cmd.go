package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/hbjs97/shu/internal/concat"
	"github.com/hbjs97/shu/internal/config"
	"github.com/spf13/cobra"
)

func (a *App) newConcatCmd() *cobra.Command {
	var (
		output string
		label  bool
	)

	cmd := &cobra.Command{
		Use:   "concat <files...>",
		Short: "여러 파일을 순서대로 하나로 결합한다",
		Long: `여러 파일을 인자 순서대로 하나로 결합한다.

chunk로 분할한 파일은 인덱스가 0으로 채워져 있어 셸 글롭 순서가 곧
시퀀스 순서다: shu concat base_size_part*.bin -o base.bin`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runConcat(cmd, args, output, label)
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "출력 파일 (기본: 표준 출력)")
	cmd.Flags().BoolVar(&label, "label", false, "각 파일 앞에 이름 배너 출력")
	return cmd
}

func (a *App) runConcat(cmd *cobra.Command, paths []string, output string, label bool) error {
	cfg, err := config.Load(a.CfgPath)
	if err != nil {
		return err
	}
	if !cmd.Flags().Changed("label") {
		label = cfg.Concat.Label
	}

	var w io.Writer = cmd.OutOrStdout()
	var out *os.File
	if output != "" {
		out, err = os.Create(output)
		if err != nil {
			return fmt.Errorf("cli.concat: %w", err)
		}
		w = out
	}

	total, err := concat.Run(w, paths, label)
	if out != nil {
		if cerr := out.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("cli.concat: %w", cerr)
		}
	}
	if err != nil {
		return err
	}

	if output != "" {
		fmt.Fprintf(cmd.OutOrStdout(), "결합 완료: %d개 파일 → %s (%d 바이트)\n",
			len(paths), output, total)
	}
	return nil
}
