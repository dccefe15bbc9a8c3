package flashmessages

import (
	"encoding/json"

	"kartoteka.link/configs/configslog"
	"kartoteka.link/utils"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Flash mesaj anahtarları. Mesajlar oturumda bir istek boyunca yaşar;
// okunduklarında silinirler.
const (
	FlashSuccessKey  = "flash_success"
	FlashErrorKey    = "flash_error"
	FlashFormDataKey = "flash_form_data"
)

// SetFlashMessage verilen anahtara tek kullanımlık bir mesaj yazar.
func SetFlashMessage(c *fiber.Ctx, key, message string) error {
	sess, err := utils.SessionStart(c)
	if err != nil {
		return err
	}
	sess.Set(key, message)
	if err := sess.Save(); err != nil {
		configslog.Log.Warn("Flash mesajı kaydedilemedi", zap.String("key", key), zap.Error(err))
		return err
	}
	return nil
}

// GetFlashMessage mesajı okur ve oturumdan siler.
func GetFlashMessage(c *fiber.Ctx, key string) string {
	sess, err := utils.SessionStart(c)
	if err != nil {
		return ""
	}
	message, _ := sess.Get(key).(string)
	if message != "" {
		sess.Delete(key)
		_ = sess.Save()
	}
	return message
}

// SetFlashFormData hata sonrası formu yeniden doldurmak için form verisini
// JSON olarak oturuma yazar.
func SetFlashFormData(c *fiber.Ctx, data interface{}) error {
	sess, err := utils.SessionStart(c)
	if err != nil {
		return err
	}
	encoded, err := json.Marshal(data)
	if err != nil {
		return err
	}
	sess.Set(FlashFormDataKey, string(encoded))
	return sess.Save()
}

// GetFlashFormData kaydedilmiş form verisini okur ve siler.
// Veri yoksa boş map döner; şablonlar nil kontrolü yapmak zorunda kalmaz.
func GetFlashFormData(c *fiber.Ctx) map[string]interface{} {
	result := map[string]interface{}{}
	sess, err := utils.SessionStart(c)
	if err != nil {
		return result
	}
	encoded, _ := sess.Get(FlashFormDataKey).(string)
	if encoded == "" {
		return result
	}
	sess.Delete(FlashFormDataKey)
	_ = sess.Save()
	if err := json.Unmarshal([]byte(encoded), &result); err != nil {
		configslog.SLog.Debugf("Flash form verisi çözülemedi: %v", err)
	}
	return result
}
