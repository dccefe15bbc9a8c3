package models

// User uygulamaya giriş yapabilen bir hesaptır.
type User struct {
	BaseModel
	Name         string `gorm:"type:varchar(100);not null"`
	Email        string `gorm:"type:varchar(100);uniqueIndex;not null"`
	PasswordHash string `gorm:"type:varchar(100);not null"`
	IsSystem     bool   `gorm:"default:false"` // Sistem (admin) kullanıcısı mı?
	IsEnabled    bool   `gorm:"default:true;index"`

	// Kullanılmayan kart önerilerinin deterministik karıştırılması için tohum.
	// Kullanıcı "yeniden karıştır" dedikçe değişir.
	UnusedCardsSeed int64 `gorm:"default:0"`
}
