package configslog

import (
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Log uygulama genelinde kullanılan yapısal logger.
// SLog ise printf tarzı loglama için sugared versiyonudur.
var (
	Log  *zap.Logger
	SLog *zap.SugaredLogger
)

func init() {
	// Paket import edildiği anda güvenli bir varsayılanla başla.
	// main.go daha sonra Init ile ortam ayarlarını uygular.
	if Log == nil {
		Init()
	}
}

// Init logger'ı ortam değişkenlerine göre kurar.
// LOG_LEVEL: debug|info|warn|error (varsayılan info)
// APP_ENV: "production" ise JSON, aksi halde konsol formatı kullanılır.
func Init() {
	level := zapcore.InfoLevel
	switch strings.ToLower(os.Getenv("LOG_LEVEL")) {
	case "debug":
		level = zapcore.DebugLevel
	case "warn":
		level = zapcore.WarnLevel
	case "error":
		level = zapcore.ErrorLevel
	}

	var cfg zap.Config
	if os.Getenv("APP_ENV") == "production" {
		cfg = zap.NewProductionConfig()
	} else {
		cfg = zap.NewDevelopmentConfig()
	}
	cfg.Level = zap.NewAtomicLevelAt(level)

	logger, err := cfg.Build(zap.AddCallerSkip(0))
	if err != nil {
		// Logger kurulamazsa uygulamanın devam etmesinin anlamı yok.
		panic("logger kurulamadı: " + err.Error())
	}

	Log = logger
	SLog = logger.Sugar()
}

// Sync tamponlanmış log kayıtlarını diske yazar. Kapanışta çağrılmalı.
func Sync() {
	if Log != nil {
		_ = Log.Sync()
	}
}
