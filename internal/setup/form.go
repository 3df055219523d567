package setup

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/huh"
)

// HuhFormRunner는 charmbracelet/huh 기반의 FormRunner 구현이다.
type HuhFormRunner struct{}

var _ FormRunner = (*HuhFormRunner)(nil)

// RunDefaultsForm은 기본값 입력 폼을 실행한다.
func (h *HuhFormRunner) RunDefaultsForm(defaults *Input) (*Input, error) {
	input := &Input{}
	if defaults != nil {
		*input = *defaults
	}

	destValidate := func(s string) error {
		if s == "" {
			return nil // 비어있으면 원본 파일 위치 사용
		}
		info, err := os.Stat(s)
		if err != nil {
			return fmt.Errorf("존재하지 않는 경로입니다")
		}
		if !info.IsDir() {
			return fmt.Errorf("디렉토리가 아닙니다")
		}
		return nil
	}

	excludes := strings.Join(input.TreeExcludes, ", ")

	form := huh.NewForm(huh.NewGroup(
		huh.NewInput().
			Title("chunk 기본 출력 디렉토리").
			Description("비워두면 원본 파일과 같은 위치에 조각을 만듭니다").
			Value(&input.ChunkDestDir).
			Validate(destValidate),
		huh.NewInput().
			Title("tree 기본 제외 패턴").
			Description("쉼표로 구분 (예: .git, node_modules)").
			Value(&excludes),
		huh.NewConfirm().
			Title("concat 시 파일 이름 배너를 출력할까요?").
			Value(&input.ConcatLabel),
	))
	if err := form.Run(); err != nil {
		return nil, fmt.Errorf("setup.RunDefaultsForm: %w", err)
	}

	input.TreeExcludes = splitPatterns(excludes)
	return input, nil
}

// RunConfirm은 확인 프롬프트를 표시한다.
func (h *HuhFormRunner) RunConfirm(message string) (bool, error) {
	var ok bool
	form := huh.NewForm(huh.NewGroup(
		huh.NewConfirm().Title(message).Value(&ok),
	))
	if err := form.Run(); err != nil {
		return false, fmt.Errorf("setup.RunConfirm: %w", err)
	}
	return ok, nil
}

func splitPatterns(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
