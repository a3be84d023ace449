package ui

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/VectorBits/solast/src/internal/config"
)

// Spinner 在长时间运行的外部操作期间显示一个转动的指示符。
// 与 AST 模型无关，只负责终端输出。
type Spinner struct {
	w        io.Writer
	msg      string
	frames   []string
	interval time.Duration
	color    bool

	mu      sync.Mutex
	stop    chan string
	done    chan struct{}
	started bool
	stopped bool
}

type SpinnerOption func(*Spinner)

func WithFrames(frames ...string) SpinnerOption {
	return func(s *Spinner) {
		if len(frames) > 0 {
			s.frames = frames
		}
	}
}

func WithInterval(d time.Duration) SpinnerOption {
	return func(s *Spinner) {
		if d > 0 {
			s.interval = d
		}
	}
}

// WithColor 是否输出 ANSI 颜色
func WithColor(on bool) SpinnerOption {
	return func(s *Spinner) { s.color = on }
}

// WithConfig 使用 settings.yaml 的 spinner 段
func WithConfig(cfg config.SpinnerConfig) SpinnerOption {
	return func(s *Spinner) {
		WithFrames(cfg.Frames...)(s)
		WithInterval(cfg.Interval())(s)
	}
}

func NewSpinner(w io.Writer, msg string, opts ...SpinnerOption) *Spinner {
	s := &Spinner{
		w:        w,
		msg:      msg,
		frames:   []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"},
		interval: 100 * time.Millisecond,
		color:    true,
		stop:     make(chan string, 1),
		done:     make(chan struct{}),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Start 启动后台刷新；重复调用无效
func (s *Spinner) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.started || s.stopped {
		return
	}
	s.started = true
	go s.run()
}

func (s *Spinner) run() {
	defer close(s.done)
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	i := 0
	for {
		s.render(s.frames[i%len(s.frames)])
		i++
		select {
		case final := <-s.stop:
			fmt.Fprint(s.w, clearLine)
			if final != "" {
				fmt.Fprintln(s.w, final)
			}
			return
		case <-ticker.C:
		}
	}
}

func (s *Spinner) render(frame string) {
	if s.color {
		fmt.Fprintf(s.w, clearLine+Cyan+"%s %s"+Reset, frame, s.msg)
		return
	}
	fmt.Fprintf(s.w, clearLine+"%s %s", frame, s.msg)
}

// Stop 停止刷新并等待后台 goroutine 退出；final 非空时单独输出一行。
// 可以重复调用，也可以在 Start 之前调用。
func (s *Spinner) Stop(final string) {
	s.mu.Lock()
	if s.stopped {
		s.mu.Unlock()
		return
	}
	s.stopped = true
	started := s.started
	s.mu.Unlock()

	if !started {
		if final != "" {
			fmt.Fprintln(s.w, final)
		}
		return
	}
	s.stop <- final
	<-s.done
}

// Run 在 fn 执行期间显示 spinner，结束后输出成功或失败信息
func Run(w io.Writer, msg string, fn func() error, opts ...SpinnerOption) error {
	s := NewSpinner(w, msg, opts...)
	s.Start()
	err := fn()
	if err != nil {
		s.Stop(s.paint(Red, "✗ "+msg+": "+err.Error()))
		return err
	}
	s.Stop(s.paint(Green, "✓ "+msg))
	return nil
}

func (s *Spinner) paint(color, text string) string {
	if !s.color {
		return text
	}
	return color + text + Reset
}
