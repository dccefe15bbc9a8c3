package models

// CardPrinting bir kartın belirli bir setteki baskısıdır.
type CardPrinting struct {
	BaseModel
	ScryfallID string `gorm:"type:varchar(36);uniqueIndex;not null"`

	CardID   uint `gorm:"index;not null"`
	SetID    uint `gorm:"index;not null"`
	RarityID uint `gorm:"index;not null"`

	// Koleksiyon numarası ("127", "58b" gibi) ve sıralama için sayısal hali.
	Number          string `gorm:"type:varchar(10)"`
	NumericalNumber int    `gorm:"index"`

	FrameVersion string `gorm:"type:varchar(50)"`

	HasFoil    bool `gorm:"default:true"`
	HasNonFoil bool `gorm:"default:true"`
	IsStarter  bool `gorm:"default:false"`
	IsPromo    bool `gorm:"default:false"`
	IsFullArt  bool `gorm:"default:false"`
	IsReprint  bool `gorm:"default:false"`
	IsTimeshifted bool `gorm:"default:false"`

	// GORM İlişkileri
	Card          Card               `gorm:"foreignKey:CardID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	Set           Set                `gorm:"foreignKey:SetID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	Rarity        Rarity             `gorm:"foreignKey:RarityID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;"`
	Localisations []CardLocalisation `gorm:"foreignKey:CardPrintingID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	Prices        []CardPrice        `gorm:"foreignKey:CardPrintingID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}

// KeyruneCode baskının set sembolü kodunu döndürür.
func (p CardPrinting) KeyruneCode() string {
	return p.Set.KeyruneCode
}

// EnglishLocalisation İngilizce baskıyı döndürür; yoksa nil.
// Localisations'ın preload edilmiş olması beklenir.
func (p CardPrinting) EnglishLocalisation() *CardLocalisation {
	for i := range p.Localisations {
		if p.Localisations[i].Language.Name == LanguageNameEnglish {
			return &p.Localisations[i]
		}
	}
	return nil
}

// ImageURL baskının gösterilecek görsel adresini döndürür.
// Öncelik İngilizce baskıdadır; yoksa ilk dil kullanılır.
func (p CardPrinting) ImageURL() string {
	if loc := p.EnglishLocalisation(); loc != nil && loc.ImageURL != "" {
		return loc.ImageURL
	}
	for _, loc := range p.Localisations {
		if loc.ImageURL != "" {
			return loc.ImageURL
		}
	}
	return ""
}

// CardLocalisation bir baskının belirli bir dildeki halidir.
type CardLocalisation struct {
	BaseModel
	CardPrintingID uint `gorm:"index:idx_localisation,unique;not null"`
	LanguageID     uint `gorm:"index:idx_localisation,unique;not null"`

	CardName string `gorm:"type:varchar(200);not null"`

	// Wizards'ın Gatherer kimliği; her baskıda bulunmaz.
	MultiverseID *int `gorm:"index"`

	ImageURL string `gorm:"type:varchar(500)"`

	// GORM İlişkileri
	CardPrinting CardPrinting `gorm:"foreignKey:CardPrintingID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	Language     Language     `gorm:"foreignKey:LanguageID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;"`
	Ownerships   []UserOwnedCard `gorm:"foreignKey:CardLocalisationID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}
