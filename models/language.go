package models

import (
	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

// Language bir kartın basılabileceği dildir (seed ile doldurulur).
type Language struct {
	BaseModel
	Name string `gorm:"type:varchar(50);uniqueIndex;not null"`
	Code string `gorm:"type:varchar(10)"` // BCP 47 kodu (en, tr, ja ...)
}

// LanguageNameEnglish varsayılan dilin kayıt adıdır; birçok sorguda
// İngilizce baskı önceliklidir.
const LanguageNameEnglish = "English"

// DisplayName dilin İngilizce görünen adını BCP 47 kodundan üretir.
// Kod çözülemezse kayıttaki ad kullanılır.
func (l Language) DisplayName() string {
	if l.Code == "" {
		return l.Name
	}
	tag, err := language.Parse(l.Code)
	if err != nil {
		return l.Name
	}
	if name := display.English.Tags().Name(tag); name != "" {
		return name
	}
	return l.Name
}
