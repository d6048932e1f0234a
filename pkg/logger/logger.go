package logger

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
)

// TimeFormat 日志文件中的时间格式
const TimeFormat = "2006-01-02 15:04:05"

var Logger *zerolog.Logger

// ParseLevel 解析日志级别，无法识别时返回 info
func ParseLevel(level string) zerolog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

// NewWriter 返回 "时间 - 级别 - 消息" 格式的无颜色输出
func NewWriter(out io.Writer) zerolog.ConsoleWriter {
	return zerolog.ConsoleWriter{
		Out:        out,
		NoColor:    true,
		TimeFormat: TimeFormat,
		PartsOrder: []string{
			zerolog.TimestampFieldName,
			zerolog.LevelFieldName,
			zerolog.MessageFieldName,
		},
		FormatLevel: func(i interface{}) string {
			level, ok := i.(string)
			if !ok {
				return "- ??? -"
			}
			return fmt.Sprintf("- %s -", strings.ToUpper(level))
		},
	}
}

// New 创建写入 file 的日志实例，文件以追加模式打开
// 返回的 Closer 负责关闭日志文件
func New(level string, file string) (zerolog.Logger, io.Closer, error) {
	f, err := os.OpenFile(file, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return zerolog.Nop(), nil, fmt.Errorf("打开日志文件失败: %w", err)
	}

	logger := zerolog.New(NewWriter(f)).
		Level(ParseLevel(level)).
		With().
		Timestamp().
		Logger()

	return logger, f, nil
}

// Init 初始化进程级默认日志，输出到标准错误
func Init(level string) {
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"}).
		Level(ParseLevel(level)).
		With().
		Timestamp().
		Logger()
	Logger = &logger
}

// Get 返回全局 logger 实例
// 如果 logger 未初始化，返回一个默认的 logger（输出到 /dev/null）
func Get() *zerolog.Logger {
	if Logger == nil {
		logger := zerolog.New(io.Discard)
		Logger = &logger
	}
	return Logger
}
