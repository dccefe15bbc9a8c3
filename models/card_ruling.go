package models

import "time"

// CardRuling bir kart hakkında yayınlanmış resmi bir karardır.
type CardRuling struct {
	BaseModel
	CardID uint      `gorm:"index:idx_ruling,unique;not null"`
	Date   time.Time `gorm:"index:idx_ruling,unique;not null"`
	Text   string    `gorm:"type:varchar(4000);index:idx_ruling,unique;not null"`

	Card Card `gorm:"foreignKey:CardID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}
