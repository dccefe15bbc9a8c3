package models

import (
	"context"
	"time"

	"gorm.io/gorm"
)

type contextKey string

// ContextUserIDKey işlemi yapan kullanıcının ID'sini context üzerinden
// taşımak için kullanılır. BaseModel hook'ları bu değeri okur.
const ContextUserIDKey contextKey = "user_id"

// ContextWithUserID context'e işlemi yapan kullanıcıyı ekler.
func ContextWithUserID(ctx context.Context, userID uint) context.Context {
	return context.WithValue(ctx, ContextUserIDKey, userID)
}

// UserIDFromContext context'teki kullanıcı ID'sini döndürür.
func UserIDFromContext(ctx context.Context) (uint, bool) {
	id, ok := ctx.Value(ContextUserIDKey).(uint)
	return id, ok
}

// BaseModel tüm tablolarda ortak olan kimlik, zaman ve denetim alanlarını içerir.
type BaseModel struct {
	ID        uint           `gorm:"primarykey"`
	CreatedAt time.Time      `gorm:"index"`
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`

	// Denetim alanları; context'teki kullanıcı ID'sinden doldurulur.
	CreatedBy uint  `gorm:"index"`
	UpdatedBy uint
	DeletedBy *uint
}

// BeforeCreate kaydı oluşturan kullanıcıyı context'ten alır.
func (m *BaseModel) BeforeCreate(tx *gorm.DB) error {
	if userID, ok := UserIDFromContext(tx.Statement.Context); ok {
		m.CreatedBy = userID
		m.UpdatedBy = userID
	}
	return nil
}

// BeforeUpdate kaydı güncelleyen kullanıcıyı context'ten alır.
func (m *BaseModel) BeforeUpdate(tx *gorm.DB) error {
	if userID, ok := UserIDFromContext(tx.Statement.Context); ok {
		m.UpdatedBy = userID
	}
	return nil
}
