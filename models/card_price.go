package models

import (
	"fmt"
	"time"
)

// CardPrice bir baskının belirli bir tarihteki fiyat kaydıdır.
// Değer alanları nullable'dır; her baskının her pazarda fiyatı olmaz.
type CardPrice struct {
	BaseModel
	CardPrintingID uint      `gorm:"index:idx_price,unique;not null"`
	Date           time.Time `gorm:"index:idx_price,unique;not null"`

	PaperValue     *float64 `gorm:"type:decimal(10,2)"`
	PaperFoilValue *float64 `gorm:"type:decimal(10,2)"`
	MtgoValue      *float64 `gorm:"type:decimal(10,2)"`
	MtgoFoilValue  *float64 `gorm:"type:decimal(10,2)"`

	CardPrinting CardPrinting `gorm:"foreignKey:CardPrintingID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}

// formatPrice nullable fiyat değerini görüntülenecek metne çevirir.
func formatPrice(value *float64) string {
	if value == nil {
		return ""
	}
	return fmt.Sprintf("$%.2f", *value)
}

// PaperDisplay kağıt fiyatının metin hali; değer yoksa boş döner.
func (p CardPrice) PaperDisplay() string {
	return formatPrice(p.PaperValue)
}

// PaperFoilDisplay foil kağıt fiyatının metin hali.
func (p CardPrice) PaperFoilDisplay() string {
	return formatPrice(p.PaperFoilValue)
}
