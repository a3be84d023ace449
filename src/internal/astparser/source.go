package astparser

import (
	"fmt"
	"strconv"
	"strings"
)

// SourceLocation 解析后的 src 字段："offset:length:fileIndex"
type SourceLocation struct {
	Offset    int
	Length    int
	FileIndex int
}

// ParseSourceLocation 解析 src；fileIndex 可省略（记为 -1）
func ParseSourceLocation(src string) (SourceLocation, error) {
	parts := strings.Split(src, ":")
	if len(parts) < 2 || len(parts) > 3 {
		return SourceLocation{}, fmt.Errorf("invalid src %q: want offset:length[:file]", src)
	}
	offset, err := strconv.Atoi(parts[0])
	if err != nil {
		return SourceLocation{}, fmt.Errorf("invalid src offset %q: %w", src, err)
	}
	length, err := strconv.Atoi(parts[1])
	if err != nil {
		return SourceLocation{}, fmt.Errorf("invalid src length %q: %w", src, err)
	}
	loc := SourceLocation{Offset: offset, Length: length, FileIndex: -1}
	if len(parts) == 3 {
		if loc.FileIndex, err = strconv.Atoi(parts[2]); err != nil {
			return SourceLocation{}, fmt.Errorf("invalid src file index %q: %w", src, err)
		}
	}
	return loc, nil
}

// Slice 截取对应源码片段，越界返回空串
func (l SourceLocation) Slice(source string) string {
	if l.Offset < 0 || l.Length < 0 || l.Offset >= len(source) || l.Length > len(source)-l.Offset {
		return ""
	}
	return source[l.Offset : l.Offset+l.Length]
}

func (l SourceLocation) String() string {
	return fmt.Sprintf("%d:%d:%d", l.Offset, l.Length, l.FileIndex)
}
