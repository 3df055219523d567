package cli

import (
	"fmt"
	"path/filepath"

	"github.com/hbjs97/shu/internal/chunk"
	"github.com/hbjs97/shu/internal/config"
	"github.com/spf13/cobra"
)

func (a *App) newChunkCmd() *cobra.Command {
	var (
		destDir   string
		baseName  string
		chunkSize string
		partCount int64
		charCount int64
	)

	cmd := &cobra.Command{
		Use:   "chunk <file>",
		Short: "파일을 여러 조각으로 분할한다",
		Long: `파일을 여러 조각으로 분할한다.

--chunk-size, --part-count, --char-count 중 정확히 하나를 지정해야 한다.
--part-count는 조각 크기를 ceil(전체/개수)로 올림 계산하므로, 크기가 나누어
떨어지지 않으면 실제 조각 수가 요청보다 적을 수 있다 (마지막 나머지가
마지막 조각에 흡수됨).`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runChunk(cmd, args[0], destDir, baseName, chunkSize, partCount, charCount)
		},
	}
	cmd.Flags().StringVar(&destDir, "dest", "", "출력 디렉토리 (기본: 원본 파일 위치)")
	cmd.Flags().StringVar(&baseName, "base-name", "", "출력 파일 기본 이름 (기본: 확장자를 뺀 원본 이름)")
	cmd.Flags().StringVar(&chunkSize, "chunk-size", "", "조각당 바이트 수 (KB/MB/GB 접미사 가능)")
	cmd.Flags().Int64Var(&partCount, "part-count", 0, "조각 개수")
	cmd.Flags().Int64Var(&charCount, "char-count", 0, "조각당 문자 수 (UTF-8)")
	return cmd
}

func (a *App) runChunk(cmd *cobra.Command, path, destDir, baseName, chunkSize string, partCount, charCount int64) error {
	plan, err := buildPlan(chunkSize, partCount, charCount)
	if err != nil {
		return err
	}

	cfg, err := config.Load(a.CfgPath)
	if err != nil {
		return err
	}
	if destDir == "" {
		destDir = cfg.Chunk.DestDir
	}

	result, err := chunk.Split(chunk.Options{
		Path:     path,
		DestDir:  destDir,
		BaseName: baseName,
		Plan:     plan,
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "분할 완료: %s → %d개 조각 (%s)\n",
		filepath.Base(path), result.Count(), result.DestDir)
	if a.Verbose {
		for _, d := range result.Chunks {
			fmt.Fprintf(cmd.OutOrStdout(), "  %s (%d 바이트)\n", filepath.Base(d.Path), d.Size)
		}
	}
	return nil
}

// buildPlan은 전략 플래그의 상호 배타 검증을 수행한다.
// 정확히 하나만 지정되어야 하며, 위반 시 ErrInvalidInput이다.
func buildPlan(chunkSize string, partCount, charCount int64) (chunk.Plan, error) {
	selected := 0
	if chunkSize != "" {
		selected++
	}
	if partCount != 0 {
		selected++
	}
	if charCount != 0 {
		selected++
	}
	if selected != 1 {
		return chunk.Plan{}, fmt.Errorf(
			"cli.chunk: --chunk-size, --part-count, --char-count 중 하나만 지정해야 합니다: %w",
			chunk.ErrInvalidInput)
	}

	switch {
	case chunkSize != "":
		n, err := chunk.ParseSize(chunkSize)
		if err != nil {
			return chunk.Plan{}, err
		}
		return chunk.Plan{Strategy: chunk.ByByteSize, Param: n}, nil
	case partCount != 0:
		return chunk.Plan{Strategy: chunk.ByPartCount, Param: partCount}, nil
	default:
		return chunk.Plan{Strategy: chunk.ByCharCount, Param: charCount}, nil
	}
}
