package logger

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/VectorBits/solast/src/internal/config"
)

var (
	fileLogger  *log.Logger
	logFile     *os.File
	initialized bool
	consoleMu   sync.Mutex
	console     io.Writer = os.Stdout
)

// InitLogger 在 dir 下创建带时间戳的日志文件；之后 Debug 只写文件
func InitLogger(dir string) error {
	if dir == "" {
		dir = "logs"
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create logs directory: %w", err)
	}

	timestamp := time.Now().Format("2006-01-02_15-04-05")
	logPath := filepath.Join(dir, fmt.Sprintf("decode_%s.log", timestamp))

	f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}

	consoleMu.Lock()
	if logFile != nil {
		logFile.Close()
	}
	logFile = f
	fileLogger = log.New(f, "", log.Ldate|log.Ltime|log.Lmicroseconds|log.Lshortfile)
	initialized = true
	consoleMu.Unlock()

	Info("Log file created: %s", logPath)
	return nil
}

// InitFromConfig 按 settings.yaml 的 log 段创建日志文件
func InitFromConfig(cfg config.LogConfig) error {
	return InitLogger(cfg.Dir)
}

// SetOutput 替换控制台输出，返回原来的 writer
func SetOutput(w io.Writer) io.Writer {
	consoleMu.Lock()
	defer consoleMu.Unlock()
	prev := console
	console = w
	return prev
}

func Close() {
	consoleMu.Lock()
	defer consoleMu.Unlock()
	if logFile != nil {
		logFile.Close()
		logFile = nil
	}
	fileLogger = nil
	initialized = false
}

func format(level, f string, v ...interface{}) string {
	msg := fmt.Sprintf(f, v...)
	if len(msg) == 0 || msg[len(msg)-1] != '\n' {
		msg += "\n"
	}
	return "[" + level + "] " + msg
}

func emit(level string, toConsole bool, f string, v ...interface{}) {
	consoleMu.Lock()
	defer consoleMu.Unlock()

	msg := format(level, f, v...)
	if initialized {
		fileLogger.Output(3, msg)
	}
	if toConsole {
		fmt.Fprint(console, msg)
	}
}

func Info(format string, v ...interface{}) {
	emit("INFO", true, format, v...)
}

// Debug 只写入日志文件；未初始化时丢弃
func Debug(format string, v ...interface{}) {
	emit("DEBUG", false, format, v...)
}

func Warn(format string, v ...interface{}) {
	emit("WARN", true, format, v...)
}

func Error(format string, v ...interface{}) {
	emit("ERROR", true, format, v...)
}
