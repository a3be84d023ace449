package astparser

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrSyntax          = errors.New("malformed JSON")
	ErrMissingTag      = errors.New("missing nodeType")
	ErrMissingField    = errors.New("missing required field")
	ErrFieldShape      = errors.New("unexpected field shape")
	ErrInvalidEnum     = errors.New("invalid enum value")
	ErrMissingFallback = errors.New("unrecognized nodeType without id and child list")
	ErrPosition        = errors.New("node kind not allowed here")
	ErrTooDeep         = errors.New("maximum nesting depth exceeded")
)

// DecodeError 解码失败时的上下文：JSON 路径，以及已经读到的 nodeType / id
type DecodeError struct {
	Path  string
	Tag   string
	ID    int
	HasID bool
	Err   error
}

func (e *DecodeError) Error() string {
	var sb strings.Builder
	sb.WriteString("decode ")
	sb.WriteString(e.Path)
	if e.Tag != "" || e.HasID {
		sb.WriteString(" (")
		if e.Tag != "" {
			sb.WriteString(e.Tag)
		}
		if e.HasID {
			if e.Tag != "" {
				sb.WriteString(" ")
			}
			fmt.Fprintf(&sb, "id=%d", e.ID)
		}
		sb.WriteString(")")
	}
	sb.WriteString(": ")
	sb.WriteString(e.Err.Error())
	return sb.String()
}

func (e *DecodeError) Unwrap() error { return e.Err }

func truncateRaw(data []byte) string {
	const max = 40
	s := string(data)
	if len(s) > max {
		return s[:max-3] + "..."
	}
	return s
}
