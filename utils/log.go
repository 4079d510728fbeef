package utils

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	rotatelogs "github.com/lestrrat-go/file-rotatelogs"
	"github.com/sirupsen/logrus"
	"github.com/topfreegames/pitaya/v3/pkg/logger/interfaces"
	logruswrapper "github.com/topfreegames/pitaya/v3/pkg/logger/logrus"
)

const (
	logMaxAge   = 7 * 24 * time.Hour
	logRotation = 24 * time.Hour
)

// Formatter 单行紧凑格式: 时间 [级别] 文件:行 函数 消息
type Formatter struct{}

func (f *Formatter) Format(entry *logrus.Entry) ([]byte, error) {
	timestamp := entry.Time.Format(time.DateTime)
	level := strings.ToLower(entry.Level.String())

	fileName, line, funcName := "?", 0, "?"
	if entry.Caller != nil {
		fileName = filepath.Base(entry.Caller.File)
		line = entry.Caller.Line
		parts := strings.Split(entry.Caller.Function, ".")
		funcName = parts[len(parts)-1]
	}
	return []byte(fmt.Sprintf("%s [%s] %s:%d %s %s\n", timestamp, level, fileName, line, funcName, entry.Message)), nil
}

// Logger 建一个按天轮转的文件日志器, 包成pitaya接口
// 宿主进程可将其装为logger.Log, 引擎内的结算日志即落盘
func Logger(level logrus.Level) interfaces.Logger {
	return LoggerTo("./logs", level)
}

func LoggerTo(dir string, level logrus.Level) interfaces.Logger {
	l := logrus.New()
	if writer, err := newWriter(dir); err != nil {
		logrus.Fatalf("create log writer: %v", err)
	} else {
		l.SetOutput(writer)
	}
	l.SetReportCaller(true)
	l.Formatter = &Formatter{}
	l.SetLevel(level)
	return logruswrapper.NewWithFieldLogger(l)
}

func newWriter(dir string) (*SafeRotateLogs, error) {
	programName := filepath.Base(os.Args[0])
	logFile := filepath.Join(dir, fmt.Sprintf("%s-%%Y%%m%%d.log", programName))
	if err := os.MkdirAll(dir, os.ModePerm); err != nil {
		return nil, err
	}

	writer, err := rotatelogs.New(
		logFile,
		rotatelogs.WithMaxAge(logMaxAge),
		rotatelogs.WithRotationTime(logRotation),
	)
	if err != nil {
		return nil, err
	}
	return &SafeRotateLogs{RotateLogs: writer, logPattern: logFile}, nil
}

// SafeRotateLogs 日志文件被外部清理后自动重建
type SafeRotateLogs struct {
	*rotatelogs.RotateLogs
	logPattern string
}

func (s *SafeRotateLogs) Write(p []byte) (n int, err error) {
	current := s.RotateLogs.CurrentFileName()
	if _, err := os.Stat(current); os.IsNotExist(err) {
		writer, err := rotatelogs.New(
			s.logPattern,
			rotatelogs.WithMaxAge(logMaxAge),
			rotatelogs.WithRotationTime(logRotation),
		)
		if err != nil {
			return 0, fmt.Errorf("recreate log writer: %v", err)
		}
		s.RotateLogs = writer
	}
	return s.RotateLogs.Write(p)
}
