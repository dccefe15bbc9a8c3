package utils

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
)

// Oturumda tutulan anahtarlar.
const (
	SessionKeyUserID   = "user_id"
	SessionKeyUserName = "user_name"
	SessionKeyIsSystem = "is_system"
)

var (
	ErrSessionStoreMissing = errors.New("session store locals içinde bulunamadı")
	ErrUserIDMissing       = errors.New("oturumda kullanıcı ID yok")
)

// SessionStart isteğe bağlı oturumu başlatır. Store, router kurulumunda
// locals'a konmuş olmalıdır.
func SessionStart(c *fiber.Ctx) (*session.Session, error) {
	store, ok := c.Locals("session_store").(*session.Store)
	if !ok || store == nil {
		return nil, ErrSessionStoreMissing
	}
	return store.Get(c)
}

// SetUserSession giriş sonrası kullanıcı bilgilerini oturuma yazar.
func SetUserSession(c *fiber.Ctx, userID uint, userName string, isSystem bool) error {
	sess, err := SessionStart(c)
	if err != nil {
		return err
	}
	sess.Set(SessionKeyUserID, userID)
	sess.Set(SessionKeyUserName, userName)
	sess.Set(SessionKeyIsSystem, isSystem)
	return sess.Save()
}

// GetUserIDFromSession oturumdaki kullanıcı ID'sini döndürür.
func GetUserIDFromSession(sess *session.Session) (uint, error) {
	userID, ok := sess.Get(SessionKeyUserID).(uint)
	if !ok || userID == 0 {
		return 0, ErrUserIDMissing
	}
	return userID, nil
}

// GetIsSystemFromSession oturumdaki sistem kullanıcısı bayrağını döndürür.
func GetIsSystemFromSession(sess *session.Session) (bool, error) {
	isSystem, ok := sess.Get(SessionKeyIsSystem).(bool)
	if !ok {
		return false, errors.New("oturumda is_system bayrağı yok")
	}
	return isSystem, nil
}

// DestroySession çıkışta oturumu tamamen siler.
func DestroySession(c *fiber.Ctx) error {
	sess, err := SessionStart(c)
	if err != nil {
		return err
	}
	return sess.Destroy()
}
