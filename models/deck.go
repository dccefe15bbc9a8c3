package models

import (
	"fmt"
	"time"
)

// Deste tahtaları: ana deste, yan deste, belki listesi, alınacaklar.
const (
	BoardMain    = "main"
	BoardSide    = "side"
	BoardMaybe   = "maybe"
	BoardAcquire = "acquire"
)

// DeckBoards geçerli tahta adlarını sabit sırayla döndürür.
func DeckBoards() []string {
	return []string{BoardMain, BoardSide, BoardMaybe, BoardAcquire}
}

// Desteklenen deste formatlarından sık kullanılanlar. Tam liste
// DeckFormatChoices içindedir; serbest metin de kabul edilir.
const (
	FormatStandard   = "standard"
	FormatModern     = "modern"
	FormatLegacy     = "legacy"
	FormatVintage    = "vintage"
	FormatPauper     = "pauper"
	FormatEDH        = "edh"
	FormatBrawl      = "brawl"
	FormatHighlander = "highlander"
	FormatCasual     = "casual"
	FormatUnknown    = "unknown"
)

// DeckFormatChoices form seçenekleri için format kodu -> görünen ad eşlemesi.
func DeckFormatChoices() map[string]string {
	return map[string]string{
		FormatStandard:   "Standard",
		FormatModern:     "Modern",
		FormatLegacy:     "Legacy",
		FormatVintage:    "Vintage",
		FormatPauper:     "Pauper",
		FormatEDH:        "Commander / EDH",
		FormatBrawl:      "Brawl",
		FormatHighlander: "Highlander",
		FormatCasual:     "Casual",
		FormatUnknown:    "Bilinmiyor",
	}
}

// Deck bir kullanıcının destesidir.
type Deck struct {
	BaseModel
	OwnerID     uint      `gorm:"index;not null"`
	Name        string    `gorm:"type:varchar(200);not null"`
	Subtitle    string    `gorm:"type:varchar(200)"`
	Description string    `gorm:"type:text"`
	Format      string    `gorm:"type:varchar(50);not null;default:'unknown'"`
	DateCreated time.Time `gorm:"index;not null"`
	IsPrototype bool      `gorm:"default:false;index"`
	IsPrivate   bool      `gorm:"default:false"`

	// GORM İlişkileri
	Owner User       `gorm:"foreignKey:OwnerID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	Cards []DeckCard `gorm:"foreignKey:DeckID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}

// FormatDisplay formatın görünen adını döndürür.
func (d Deck) FormatDisplay() string {
	if name, ok := DeckFormatChoices()[d.Format]; ok {
		return name
	}
	return d.Format
}

// BoardCards verilen tahtadaki kartları döndürür (Cards preload edilmiş olmalı).
func (d Deck) BoardCards(board string) []DeckCard {
	var cards []DeckCard
	for _, deckCard := range d.Cards {
		if deckCard.Board == board {
			cards = append(cards, deckCard)
		}
	}
	return cards
}

// CardCount verilen tahtadaki toplam kart adedini döndürür.
// board boşsa tüm tahtalar sayılır.
func (d Deck) CardCount(board string) int {
	total := 0
	for _, deckCard := range d.Cards {
		if board == "" || deckCard.Board == board {
			total += deckCard.Count
		}
	}
	return total
}

// Commanders komutan olarak işaretli kartları döndürür.
func (d Deck) Commanders() []DeckCard {
	var commanders []DeckCard
	for _, deckCard := range d.Cards {
		if deckCard.IsCommander {
			commanders = append(commanders, deckCard)
		}
	}
	return commanders
}

// DeckCard bir destedeki tek bir kart satırıdır.
type DeckCard struct {
	BaseModel
	DeckID      uint   `gorm:"index;not null"`
	CardID      uint   `gorm:"index;not null"`
	Count       int    `gorm:"not null"`
	Board       string `gorm:"type:varchar(20);not null;default:'main';index"`
	IsCommander bool   `gorm:"default:false"`

	// GORM İlişkileri
	Deck Deck `gorm:"foreignKey:DeckID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	Card Card `gorm:"foreignKey:CardID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}

// AsDeckText satırın deste listesindeki metin halini üretir
// ("2x Lightning Bolt", komutanlar "*CMDR*" ekiyle).
func (dc DeckCard) AsDeckText() string {
	result := fmt.Sprintf("%dx %s", dc.Count, dc.Card.DisplayName())
	if dc.IsCommander {
		result += " *CMDR*"
	}
	return result
}
