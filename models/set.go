package models

import "time"

// Set bir kart setini (baskı grubu) temsil eder.
type Set struct {
	BaseModel
	Code        string     `gorm:"type:varchar(10);uniqueIndex;not null"`
	Name        string     `gorm:"type:varchar(200);uniqueIndex;not null"`
	Type        string     `gorm:"type:varchar(50)"`
	ReleaseDate *time.Time `gorm:"index"`

	// Set sembolü fontu (keyrune) için kod.
	KeyruneCode string `gorm:"type:varchar(10)"`

	// Promo/token alt setleri ana sete bağlanır; set listesi ağaç olarak çizilir.
	ParentSetID *uint `gorm:"index"`
	ParentSet   *Set  `gorm:"foreignKey:ParentSetID"`
	ChildSets   []Set `gorm:"foreignKey:ParentSetID"`

	TotalSetSize int `gorm:"default:0"`

	Printings []CardPrinting `gorm:"foreignKey:SetID"`
}

// Rarity kart nadirlik seviyesidir (seed ile doldurulur).
type Rarity struct {
	BaseModel
	Symbol       string `gorm:"type:varchar(5);uniqueIndex;not null"`
	Name         string `gorm:"type:varchar(30);uniqueIndex;not null"`
	DisplayOrder int    `gorm:"uniqueIndex;not null"`
}

const (
	RaritySymbolCommon   = "C"
	RaritySymbolUncommon = "U"
	RaritySymbolRare     = "R"
	RaritySymbolMythic   = "M"
)
