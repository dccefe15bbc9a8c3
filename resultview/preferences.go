package resultview

import (
	"net/http"
	"net/url"
	"time"
)

// SelectedTabCookie sekme tercihini taşıyan çerezin adı.
const SelectedTabCookie = "selected_tab"

// Preferences sekme tercihinin saklandığı yer. Tercih kullanıcı
// geneline aittir, sonuç başına değil.
type Preferences interface {
	SelectedTab() (Tab, bool)
	SetSelectedTab(Tab)
}

// MemoryPreferences bellek içi tercih deposu. Testlerde ve tercih
// kalıcılığı istenmeyen yerlerde kullanılır.
type MemoryPreferences struct {
	tab    Tab
	hasTab bool
}

func (p *MemoryPreferences) SelectedTab() (Tab, bool) {
	return p.tab, p.hasTab
}

func (p *MemoryPreferences) SetSelectedTab(tab Tab) {
	p.tab = tab
	p.hasTab = true
}

// CookiePreferences tercihi bir çerez kavanozunda saklar. Sunucuyla
// aynı kavanozu paylaşan bir istemcide tercih istekler arasında korunur.
type CookiePreferences struct {
	Jar http.CookieJar
	URL *url.URL
}

func (p *CookiePreferences) SelectedTab() (Tab, bool) {
	for _, cookie := range p.Jar.Cookies(p.URL) {
		if cookie.Name == SelectedTabCookie {
			tab := Tab(cookie.Value)
			if tab.Valid() {
				return tab, true
			}
		}
	}
	return "", false
}

func (p *CookiePreferences) SetSelectedTab(tab Tab) {
	p.Jar.SetCookies(p.URL, []*http.Cookie{{
		Name:    SelectedTabCookie,
		Value:   string(tab),
		Path:    "/",
		Expires: time.Now().AddDate(1, 0, 0),
	}})
}

var (
	_ Preferences = (*MemoryPreferences)(nil)
	_ Preferences = (*CookiePreferences)(nil)
)
