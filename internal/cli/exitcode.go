package cli

import (
	"errors"
	"io/fs"
	"os"
)

// ExitCode는 shu의 종료 코드다.
type ExitCode int

const (
	// ExitSuccess는 정상 종료다.
	ExitSuccess ExitCode = 0
	// ExitGeneral는 일반 에러다 (읽기/쓰기 I/O 실패 포함).
	ExitGeneral ExitCode = 1
	// ExitInvalidInput은 잘못된 경로/파라미터 조합이다.
	ExitInvalidInput ExitCode = 2
	// ExitNotFound는 원본 파일 없음이다.
	ExitNotFound ExitCode = 3
	// ExitConfigError는 설정 파일 오류다.
	ExitConfigError ExitCode = 4
)

// MapExitCode는 sentinel error를 기반으로 적절한 종료 코드를 반환한다.
func MapExitCode(err error) ExitCode {
	if err == nil {
		return ExitSuccess
	}
	switch {
	case errors.Is(err, ErrConfig):
		return ExitConfigError
	case errors.Is(err, ErrNotFound), errors.Is(err, fs.ErrNotExist):
		return ExitNotFound
	case errors.Is(err, ErrInvalidInput), errors.Is(err, ErrNoInput),
		errors.Is(err, ErrNotDirectory), errors.Is(err, os.ErrInvalid):
		return ExitInvalidInput
	default:
		return ExitGeneral
	}
}
