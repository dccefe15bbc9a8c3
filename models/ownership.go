package models

import "time"

// UserOwnedCard bir kullanıcının belirli bir dil baskısından kaç adet
// fiziksel kart sahibi olduğunu tutar. Adet sıfıra inince kayıt silinir;
// sıfır adetlik satır tutulmaz.
type UserOwnedCard struct {
	BaseModel
	CardLocalisationID uint `gorm:"index:idx_owned,unique;not null"`
	OwnerID            uint `gorm:"index:idx_owned,unique;not null"`
	Count              int  `gorm:"not null"`

	// GORM İlişkileri
	CardLocalisation CardLocalisation `gorm:"foreignKey:CardLocalisationID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	Owner            User             `gorm:"foreignKey:OwnerID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}

// UserCardChange sahiplik adedindeki her değişikliğin kaydıdır.
type UserCardChange struct {
	BaseModel
	CardLocalisationID uint      `gorm:"index;not null"`
	OwnerID            uint      `gorm:"index;not null"`
	Difference         int       `gorm:"not null"` // pozitif: eklendi, negatif: çıkarıldı
	Date               time.Time `gorm:"index;not null"`

	// GORM İlişkileri
	CardLocalisation CardLocalisation `gorm:"foreignKey:CardLocalisationID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	Owner            User             `gorm:"foreignKey:OwnerID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}
