// Package chunk implements the file splitting engine.
// One source file is split into an ordered sequence of smaller files by one of
// three strategies: fixed byte size, fixed part count, or fixed character count.
package chunk

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"
)

// ErrInvalidInput은 잘못된 경로, 파라미터 조합, 존재하지 않는 출력 디렉토리에 대한 sentinel error다.
var ErrInvalidInput = errors.New("잘못된 입력")

// ErrNotFound는 원본 파일이 존재하지 않을 때의 sentinel error다.
var ErrNotFound = errors.New("원본 파일 없음")

// Strategy는 분할 전략이다.
type Strategy int

const (
	// ByByteSize는 고정 바이트 크기 분할이다.
	ByByteSize Strategy = iota + 1
	// ByPartCount는 고정 조각 개수 분할이다. 조각 크기는 ceil(전체/개수)로 계산된다.
	ByPartCount
	// ByCharCount는 고정 문자 수 분할이다 (UTF-8 기준, 멀티바이트 문자를 경계에서 자르지 않음).
	ByCharCount
)

// label은 출력 파일 이름에 들어가는 전략 식별자다.
func (s Strategy) label() string {
	switch s {
	case ByByteSize:
		return "size"
	case ByPartCount:
		return "part"
	case ByCharCount:
		return "char"
	default:
		return ""
	}
}

// Plan은 선택된 분할 전략과 그 파라미터다. 파라미터는 전략에 따라
// 조각당 바이트 수, 조각 개수, 조각당 문자 수 중 하나를 의미한다.
type Plan struct {
	Strategy Strategy
	Param    int64
}

// Validate는 Plan의 정합성을 검사한다.
func (p Plan) Validate() error {
	switch p.Strategy {
	case ByByteSize, ByPartCount, ByCharCount:
	default:
		return fmt.Errorf("chunk.Plan: 알 수 없는 전략: %w", ErrInvalidInput)
	}
	if p.Param <= 0 {
		return fmt.Errorf("chunk.Plan: 파라미터는 0보다 커야 합니다 (got %d): %w", p.Param, ErrInvalidInput)
	}
	return nil
}

// Options는 Split 호출 옵션이다. DestDir가 비어있으면 원본 파일의 디렉토리,
// BaseName이 비어있으면 확장자를 뺀 원본 파일 이름이 사용된다.
type Options struct {
	Path     string
	DestDir  string
	BaseName string
	Plan     Plan
}

// Descriptor는 기록된 조각 하나의 정보다. Index는 1부터 시작한다.
type Descriptor struct {
	Path  string
	Index int
	Size  int64
}

// Result는 분할 결과다. Chunks는 기록 순서(= 시퀀스 순서)로 정렬되어 있다.
type Result struct {
	Chunks  []Descriptor
	DestDir string
}

// Count는 생성된 조각 개수를 반환한다.
func (r *Result) Count() int {
	return len(r.Chunks)
}

// Split은 원본 파일을 Plan에 따라 분할한다. 모든 검증은 I/O 부수효과가
// 발생하기 전에 끝나며, 쓰기 도중 실패하면 이미 기록된 조각은 남는다 (롤백 없음).
func Split(opts Options) (*Result, error) {
	if err := opts.Plan.Validate(); err != nil {
		return nil, err
	}

	info, err := os.Stat(opts.Path)
	if os.IsNotExist(err) {
		return nil, fmt.Errorf("chunk.Split: %s: %w", opts.Path, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("chunk.Split: %w", err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("chunk.Split: %s은 디렉토리입니다: %w", opts.Path, ErrInvalidInput)
	}

	destDir := opts.DestDir
	if destDir == "" {
		destDir = filepath.Dir(opts.Path)
	} else {
		di, err := os.Stat(destDir)
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("chunk.Split: 출력 디렉토리 없음: %s: %w", destDir, ErrInvalidInput)
		}
		if err != nil {
			return nil, fmt.Errorf("chunk.Split: %w", err)
		}
		if !di.IsDir() {
			return nil, fmt.Errorf("chunk.Split: %s은 디렉토리가 아닙니다: %w", destDir, ErrInvalidInput)
		}
	}

	ext := filepath.Ext(opts.Path)
	base := opts.BaseName
	if base == "" {
		base = strings.TrimSuffix(filepath.Base(opts.Path), ext)
	}
	name := func(index int) string {
		return filepath.Join(destDir, fmt.Sprintf("%s_%s_part%04d%s", base, opts.Plan.Strategy.label(), index, ext))
	}

	src, err := os.Open(opts.Path)
	if err != nil {
		return nil, fmt.Errorf("chunk.Split: %w", err)
	}
	defer src.Close()

	var chunks []Descriptor
	switch opts.Plan.Strategy {
	case ByByteSize, ByPartCount:
		size := opts.Plan.Param
		if opts.Plan.Strategy == ByPartCount {
			total := info.Size()
			if total == 0 {
				break // 빈 파일은 조각 0개
			}
			size = (total + opts.Plan.Param - 1) / opts.Plan.Param
		}
		chunks, err = splitBytes(src, size, name)
	case ByCharCount:
		chunks, err = splitChars(src, opts.Plan.Param, name)
	}
	if err != nil {
		return nil, err
	}

	return &Result{Chunks: chunks, DestDir: destDir}, nil
}

// splitBytes는 바이트 기준 분할 루프다. 읽은 만큼만 쓰고, 0바이트를 읽으면 종료한다.
// 마지막 조각은 size보다 작을 수 있다.
func splitBytes(r io.Reader, size int64, name func(int) string) ([]Descriptor, error) {
	buf := make([]byte, size)
	var chunks []Descriptor

	for index := 1; ; index++ {
		n, err := io.ReadFull(r, buf)
		if n > 0 {
			path := name(index)
			if werr := writeChunk(path, buf[:n]); werr != nil {
				return nil, werr
			}
			chunks = append(chunks, Descriptor{Path: path, Index: index, Size: int64(n)})
		}
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			return chunks, nil
		}
		if err != nil {
			return nil, fmt.Errorf("chunk.splitBytes: %w", err)
		}
	}
}

// splitChars는 문자 기준 분할 루프다. UTF-8 rune 단위로 최대 count개씩 읽어
// 원본 바이트 그대로 기록하므로 멀티바이트 문자가 경계에서 잘리지 않는다.
func splitChars(r io.Reader, count int64, name func(int) string) ([]Descriptor, error) {
	br := bufio.NewReader(r)
	var chunks []Descriptor

	for index := 1; ; index++ {
		data, err := readRunes(br, count)
		if len(data) > 0 {
			path := name(index)
			if werr := writeChunk(path, data); werr != nil {
				return nil, werr
			}
			chunks = append(chunks, Descriptor{Path: path, Index: index, Size: int64(len(data))})
		}
		if err == io.EOF {
			return chunks, nil
		}
		if err != nil {
			return nil, fmt.Errorf("chunk.splitChars: %w", err)
		}
	}
}

// readRunes는 최대 count개의 rune을 디코딩해 원본 바이트 그대로 반환한다.
// UTF-8로 해석되지 않는 바이트는 변형 없이 통과시킨다.
func readRunes(br *bufio.Reader, count int64) ([]byte, error) {
	var out []byte
	for i := int64(0); i < count; i++ {
		r, size, err := br.ReadRune()
		if err != nil {
			return out, err
		}
		if r == utf8.RuneError && size == 1 {
			// 잘못된 UTF-8: 디코딩 결과 대신 원본 바이트를 보존한다
			if err := br.UnreadRune(); err != nil {
				return out, err
			}
			b, err := br.ReadByte()
			if err != nil {
				return out, err
			}
			out = append(out, b)
			continue
		}
		out = utf8.AppendRune(out, r)
	}
	return out, nil
}

// writeChunk는 조각 하나를 기록한다. 다음 조각으로 넘어가기 전에 항상 닫는다.
func writeChunk(path string, data []byte) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("chunk.writeChunk: %w", err)
	}
	if _, err := f.Write(data); err != nil {
		f.Close()
		return fmt.Errorf("chunk.writeChunk: %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("chunk.writeChunk: %s: %w", path, err)
	}
	return nil
}
