package chunk

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ParseSize는 바이트 수 문자열을 파싱한다. "4096", "64KB", "4MB", "1GB" 형식을
// 지원하며 접미사는 1024 기반 이진 단위다. 대소문자는 구분하지 않는다.
func ParseSize(s string) (int64, error) {
	t := strings.ToUpper(strings.TrimSpace(s))
	mult := int64(1)
	switch {
	case strings.HasSuffix(t, "GB"):
		mult, t = 1<<30, strings.TrimSuffix(t, "GB")
	case strings.HasSuffix(t, "MB"):
		mult, t = 1<<20, strings.TrimSuffix(t, "MB")
	case strings.HasSuffix(t, "KB"):
		mult, t = 1<<10, strings.TrimSuffix(t, "KB")
	case strings.HasSuffix(t, "B"):
		t = strings.TrimSuffix(t, "B")
	}

	n, err := strconv.ParseInt(strings.TrimSpace(t), 10, 64)
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("chunk.ParseSize: 잘못된 크기 %q: %w", s, ErrInvalidInput)
	}
	if n > math.MaxInt64/mult {
		return 0, fmt.Errorf("chunk.ParseSize: 크기 범위 초과 %q: %w", s, ErrInvalidInput)
	}
	return n * mult, nil
}
