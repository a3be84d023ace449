package astparser

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"runtime"
	"strings"

	"golang.org/x/sync/errgroup"
)

// CompactSource solc --ast-compact-json 输出中的一段
type CompactSource struct {
	Path string
	JSON []byte
}

const (
	headerPrefix = "======= "
	headerSuffix = " ======="
)

// SplitCompactOutput 按 "======= path =======" 分隔 solc 的标准输出。
// 没有分隔行时，从第一个 '{' 开始视为单个文档（Path 为空）。
func SplitCompactOutput(output []byte) ([]CompactSource, error) {
	var (
		out     []CompactSource
		current *CompactSource
		buf     bytes.Buffer
	)
	flush := func() {
		if current != nil {
			current.JSON = bytes.TrimSpace(append([]byte(nil), buf.Bytes()...))
			out = append(out, *current)
		}
		buf.Reset()
	}

	sc := bufio.NewScanner(bytes.NewReader(output))
	sc.Buffer(make([]byte, 0, 64*1024), len(output)+1)
	for sc.Scan() {
		line := sc.Text()
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, headerPrefix) && strings.HasSuffix(trimmed, headerSuffix) && len(trimmed) > len(headerPrefix)+len(headerSuffix) {
			flush()
			path := strings.TrimSuffix(strings.TrimPrefix(trimmed, headerPrefix), headerSuffix)
			current = &CompactSource{Path: strings.TrimSpace(path)}
			continue
		}
		if current != nil {
			buf.WriteString(line)
			buf.WriteByte('\n')
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("scan solc output: %w", err)
	}
	flush()

	if len(out) == 0 {
		start := bytes.IndexByte(output, '{')
		if start == -1 {
			return nil, fmt.Errorf("no JSON found in solc output")
		}
		return []CompactSource{{JSON: bytes.TrimSpace(output[start:])}}, nil
	}
	for _, src := range out {
		if len(src.JSON) == 0 {
			return nil, fmt.Errorf("empty AST for %s", src.Path)
		}
	}
	return out, nil
}

// DecodeCompactOutput 拆分并并发解码所有源文件，结果顺序与输出一致
func DecodeCompactOutput(ctx context.Context, output []byte, opts ...Option) ([]*SourceUnit, error) {
	sources, err := SplitCompactOutput(output)
	if err != nil {
		return nil, err
	}

	units := make([]*SourceUnit, len(sources))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, src := range sources {
		i, src := i, src
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			su, err := DecodeSourceUnit(src.JSON, opts...)
			if err != nil {
				if src.Path != "" {
					return fmt.Errorf("%s: %w", src.Path, err)
				}
				return err
			}
			units[i] = su
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return units, nil
}
