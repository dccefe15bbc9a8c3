package models

import "strings"

// Kart yerleşim (layout) türleri. Görünüm katmanı bunlara göre döndürme
// ve çift yüz davranışı seçer.
const (
	LayoutNormal    = "normal"
	LayoutSplit     = "split"
	LayoutFlip      = "flip"
	LayoutTransform = "transform"
	LayoutMeld      = "meld"
	LayoutAftermath = "aftermath"
	LayoutAdventure = "adventure"
	LayoutModalDFC  = "modal_dfc"
	LayoutPlanar    = "planar"
	LayoutToken     = "token"
	LayoutEmblem    = "emblem"
)

// Card benzersiz bir kartın (baskıdan bağımsız) ana kaydıdır.
type Card struct {
	BaseModel
	ScryfallOracleID string  `gorm:"type:varchar(36);uniqueIndex;not null"`
	Name             string  `gorm:"type:varchar(200);index;not null"`
	Layout           string  `gorm:"type:varchar(50);not null;default:'normal'"`
	ManaValue        float64 `gorm:"not null;default:0"`
	ColourIdentity   string  `gorm:"type:varchar(10)"` // WUBRG alt kümesi
	IsToken          bool    `gorm:"default:false;index"`
	IsReserved       bool    `gorm:"default:false"`

	// GORM İlişkileri
	Faces     []CardFace     `gorm:"foreignKey:CardID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	Printings []CardPrinting `gorm:"foreignKey:CardID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	Rulings   []CardRuling   `gorm:"foreignKey:CardID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}

// IsWide planar gibi yatay kartlar için true döner.
func (c Card) IsWide() bool {
	return c.Layout == LayoutPlanar
}

// IsDoubleFaced kartın arka yüzü olup olmadığını döndürür.
func (c Card) IsDoubleFaced() bool {
	switch c.Layout {
	case LayoutTransform, LayoutMeld, LayoutModalDFC:
		return true
	}
	return false
}

// HasOtherHalf kartın ikinci bir yarısı (flip, split vb.) olup olmadığını döndürür.
func (c Card) HasOtherHalf() bool {
	switch c.Layout {
	case LayoutFlip, LayoutSplit, LayoutTransform, LayoutMeld,
		LayoutAftermath, LayoutAdventure, LayoutModalDFC:
		return true
	}
	return false
}

// DisplayName split kartlarda yüz adlarını "//" ile birleştirir,
// diğerlerinde kart adını döndürür.
func (c Card) DisplayName() string {
	if c.Layout != LayoutSplit || len(c.Faces) == 0 {
		return c.Name
	}
	names := make([]string, 0, len(c.Faces))
	for _, face := range c.Faces {
		names = append(names, face.Name)
	}
	return strings.Join(names, " // ")
}

// FirstFace ilk (ön) yüzü döndürür; yüz kaydı yoksa boş yüz döner.
func (c Card) FirstFace() CardFace {
	if len(c.Faces) == 0 {
		return CardFace{Name: c.Name}
	}
	return c.Faces[0]
}

// IsLand herhangi bir yüzü Land tipinde mi bakar. onlyLand true ise
// tüm yüzlerin Land olması gerekir.
func (c Card) IsLand(onlyLand bool) bool {
	if len(c.Faces) == 0 {
		return false
	}
	for _, face := range c.Faces {
		isLand := strings.Contains(face.TypeLine, "Land")
		if onlyLand && !isLand {
			return false
		}
		if !onlyLand && isLand {
			return true
		}
	}
	return onlyLand
}

// CardFace bir kartın tek bir yüzüdür. Çoğu kartın tek yüzü vardır;
// flip/split/transform kartlarında iki (veya daha fazla) olur.
type CardFace struct {
	BaseModel
	CardID uint   `gorm:"index:idx_card_face,unique;not null"`
	Side   string `gorm:"type:varchar(1);index:idx_card_face,unique"` // a, b, ...

	Name      string  `gorm:"type:varchar(200);not null"`
	ManaCost  string  `gorm:"type:varchar(50)"`
	ManaValue float64 `gorm:"not null;default:0"`

	TypeLine  string `gorm:"type:varchar(200)"`
	RulesText string `gorm:"type:varchar(1500)"`

	Power     string `gorm:"type:varchar(20)"`
	Toughness string `gorm:"type:varchar(20)"`
	Loyalty   string `gorm:"type:varchar(20)"`
}
