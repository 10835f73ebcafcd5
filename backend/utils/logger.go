package utils

import (
	"log"
	"os"
)

// LoggerConfig 로거 설정
type LoggerConfig struct {
	// 출력 대상 (기본값 os.Stdout)
	Output *os.File
	// 콘솔 색상 사용 여부
	EnableColors bool
}

// InitLogger 로거를 초기화하고 반환
func InitLogger(config ...LoggerConfig) *log.Logger {
	var cfg LoggerConfig
	if len(config) > 0 {
		cfg = config[0]
	}

	if cfg.Output == nil {
		cfg.Output = os.Stdout
	}

	prefix := "[Hakwon] "
	if cfg.EnableColors {
		prefix = "\033[36m" + prefix + "\033[0m"
	}

	return log.New(cfg.Output, prefix, log.LstdFlags|log.LUTC)
}

// StatusColor 상태 코드별 콘솔 색상
func StatusColor(status int) string {
	switch {
	case status >= 500:
		return "\033[31m"
	case status >= 400:
		return "\033[33m"
	case status >= 300:
		return "\033[36m"
	case status >= 200:
		return "\033[32m"
	default:
		return "\033[37m"
	}
}
