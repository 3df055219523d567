// Package concat streams multiple input files into one output in argument order.
// Zero-padded chunk indices make shell glob order equal to sequence order, so
// `shu concat base_size_part*.bin -o base.bin` reconstructs a chunked file.
package concat

import (
	"errors"
	"fmt"
	"io"
	"os"
)

// ErrNoInput은 입력 파일이 하나도 지정되지 않았을 때의 sentinel error다.
var ErrNoInput = errors.New("입력 파일 없음")

// Run은 paths의 파일들을 지정한 순서대로 w에 이어 쓴다. label이 true면
// 각 파일 앞에 head(1) 스타일의 "==> name <==" 배너를 붙인다.
// 기록된 총 바이트 수를 반환한다 (배너 제외).
func Run(w io.Writer, paths []string, label bool) (int64, error) {
	if len(paths) == 0 {
		return 0, fmt.Errorf("concat.Run: %w", ErrNoInput)
	}

	var total int64
	for i, path := range paths {
		n, err := copyFile(w, path, label, i > 0)
		total += n
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

func copyFile(w io.Writer, path string, label, separate bool) (int64, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("concat.Run: %w", err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return 0, fmt.Errorf("concat.Run: %w", err)
	}
	if info.IsDir() {
		return 0, fmt.Errorf("concat.Run: %s은 디렉토리입니다: %w", path, os.ErrInvalid)
	}

	if label {
		sep := ""
		if separate {
			sep = "\n"
		}
		if _, err := fmt.Fprintf(w, "%s==> %s <==\n", sep, path); err != nil {
			return 0, fmt.Errorf("concat.Run: %w", err)
		}
	}

	n, err := io.Copy(w, f)
	if err != nil {
		return n, fmt.Errorf("concat.Run: %s: %w", path, err)
	}
	return n, nil
}
