package cli

import (
	"github.com/hbjs97/shu/internal/chunk"
	"github.com/hbjs97/shu/internal/concat"
	"github.com/hbjs97/shu/internal/config"
	"github.com/hbjs97/shu/internal/tree"
)

// 각 도메인 패키지의 sentinel error를 CLI 레이어에서 편의상 re-export한다.
var (
	// ErrInvalidInput은 잘못된 경로나 파라미터 조합의 sentinel error다.
	ErrInvalidInput = chunk.ErrInvalidInput
	// ErrNotFound는 원본 파일이 존재하지 않을 때의 sentinel error다.
	ErrNotFound = chunk.ErrNotFound
	// ErrNoInput은 concat 입력 파일이 없을 때의 sentinel error다.
	ErrNoInput = concat.ErrNoInput
	// ErrNotDirectory는 tree 루트가 디렉토리가 아닐 때의 sentinel error다.
	ErrNotDirectory = tree.ErrNotDirectory
	// ErrConfig는 설정 파일 오류를 나타내는 sentinel error다.
	ErrConfig = config.ErrConfig
)
