package configs

import (
	"os"
	"strconv"

	"kartoteka.link/configs/configsdatabase"
	"kartoteka.link/configs/configslog"

	"github.com/joho/godotenv"
	"gorm.io/gorm"
)

// LoadEnv .env dosyasını yükler. Dosya yoksa sessizce devam edilir
// (production ortamında değişkenler dışarıdan verilir).
func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		configslog.SLog.Debug(".env dosyası bulunamadı, ortam değişkenleri kullanılacak.")
	}
}

// GetDB veritabanı bağlantısına kısa erişim sağlar.
func GetDB() *gorm.DB {
	return configsdatabase.GetDB()
}

// GetEnv string bir ortam değişkenini varsayılan değerle okur.
func GetEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// GetEnvInt sayısal bir ortam değişkenini varsayılan değerle okur.
func GetEnvInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		configslog.SLog.Warnf("Ortam değişkeni %s sayıya çevrilemedi (%q), varsayılan %d kullanılıyor.", key, v, def)
		return def
	}
	return n
}

// GetEnvBool boolean bir ortam değişkenini varsayılan değerle okur.
func GetEnvBool(key string, def bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return def
	}
	return b
}
