package cli

import (
	"github.com/hbjs97/shu/internal/config"
	"github.com/hbjs97/shu/internal/tree"
	"github.com/spf13/cobra"
)

func (a *App) newTreeCmd() *cobra.Command {
	var (
		depth    int
		excludes []string
		dirsOnly bool
	)

	cmd := &cobra.Command{
		Use:   "tree [dir]",
		Short: "디렉토리 트리를 출력한다",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			root := "."
			if len(args) == 1 {
				root = args[0]
			}
			return a.runTree(cmd, root, depth, excludes, dirsOnly)
		},
	}
	cmd.Flags().IntVar(&depth, "depth", 0, "최대 깊이 (0 = 제한 없음)")
	cmd.Flags().StringArrayVar(&excludes, "exclude", nil, "제외할 이름 패턴 (반복 지정 가능)")
	cmd.Flags().BoolVar(&dirsOnly, "dirs-only", false, "디렉토리만 출력")
	return cmd
}

func (a *App) runTree(cmd *cobra.Command, root string, depth int, excludes []string, dirsOnly bool) error {
	cfg, err := config.Load(a.CfgPath)
	if err != nil {
		return err
	}
	if !cmd.Flags().Changed("depth") && cfg.Tree.MaxDepth > 0 {
		depth = cfg.Tree.MaxDepth
	}
	// 설정의 제외 패턴에 플래그 패턴을 더한다
	excludes = append(append([]string{}, cfg.Tree.Exclude...), excludes...)

	_, err = tree.Render(cmd.OutOrStdout(), root, tree.Options{
		MaxDepth: depth,
		Excludes: excludes,
		DirsOnly: dirsOnly,
	})
	return err
}
