package configsdatabase

import (
	"fmt"
	"os"
	"sync"
	"time"

	"kartoteka.link/configs/configslog"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

var (
	db   *gorm.DB
	once sync.Once
)

// Connect veritabanı bağlantısını kurar. Uygulama başlangıcında bir kez çağrılır.
func Connect() (*gorm.DB, error) {
	var connErr error
	once.Do(func() {
		dsn := buildDSN()

		gormCfg := &gorm.Config{
			Logger: gormlogger.Default.LogMode(gormlogger.Warn),
		}

		conn, err := gorm.Open(postgres.Open(dsn), gormCfg)
		if err != nil {
			connErr = fmt.Errorf("veritabanına bağlanılamadı: %w", err)
			return
		}

		sqlDB, err := conn.DB()
		if err != nil {
			connErr = fmt.Errorf("sql.DB alınamadı: %w", err)
			return
		}
		sqlDB.SetMaxOpenConns(25)
		sqlDB.SetMaxIdleConns(5)
		sqlDB.SetConnMaxLifetime(30 * time.Minute)

		db = conn
		configslog.SLog.Info("Veritabanı bağlantısı kuruldu.")
	})
	return db, connErr
}

// GetDB mevcut bağlantıyı döndürür. Connect çağrılmadıysa Fatal ile sonlanır;
// bağlantısız devam etmenin bir anlamı yok.
func GetDB() *gorm.DB {
	if db == nil {
		if _, err := Connect(); err != nil {
			configslog.Log.Fatal("Veritabanı bağlantısı yok", zap.Error(err))
		}
	}
	return db
}

// CloseDB bağlantı havuzunu kapatır. Komut satırı araçlarının çıkışında çağrılır.
func CloseDB() {
	if db == nil {
		return
	}
	sqlDB, err := db.DB()
	if err != nil {
		configslog.Log.Warn("CloseDB: sql.DB alınamadı", zap.Error(err))
		return
	}
	if err := sqlDB.Close(); err != nil {
		configslog.Log.Warn("CloseDB: bağlantı kapatılamadı", zap.Error(err))
	}
}

// SetDB test ortamında bağlantıyı değiştirmek için kullanılır.
func SetDB(conn *gorm.DB) {
	db = conn
}

func buildDSN() string {
	host := envOrDefault("DB_HOST", "localhost")
	port := envOrDefault("DB_PORT", "5432")
	user := envOrDefault("DB_USER", "postgres")
	pass := os.Getenv("DB_PASSWORD")
	name := envOrDefault("DB_NAME", "kartoteka")
	sslMode := envOrDefault("DB_SSLMODE", "disable")
	tz := envOrDefault("DB_TIMEZONE", "Europe/Istanbul")

	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s TimeZone=%s",
		host, port, user, pass, name, sslMode, tz,
	)
}

func envOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
