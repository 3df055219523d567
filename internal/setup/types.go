package setup

// Input은 interactive setup에서 수집하는 기본값이다.
type Input struct {
	// ChunkDestDir는 chunk 명령의 기본 출력 디렉토리다. 비어있으면 원본 위치.
	ChunkDestDir string
	// TreeExcludes는 tree 명령이 기본으로 제외할 이름 패턴이다.
	TreeExcludes []string
	// ConcatLabel은 concat 명령의 배너 출력 기본값이다.
	ConcatLabel bool
}

// FormRunner는 TUI 폼 실행을 추상화하는 interface다.
// 프로덕션에서는 huh 기반 구현, 테스트에서는 mock을 사용한다.
type FormRunner interface {
	// RunDefaultsForm은 기본값 입력 폼을 실행한다.
	// defaults가 nil이 아니면 기존 값을 기본값으로 표시한다.
	RunDefaultsForm(defaults *Input) (*Input, error)

	// RunConfirm은 확인 프롬프트를 표시한다.
	RunConfirm(message string) (bool, error)
}
