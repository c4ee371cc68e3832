package api

import (
	"net"
	"net/http"
	"regexp"
	"strings"

	crerr "github.com/cockroachdb/errors"
)

// User-facing messages. Server-supplied messages pass through untouched;
// everything else maps onto this fixed set.
const (
	MsgOffline      = "İnternet bağlantınız yok. Lütfen bağlantınızı kontrol edin ve tekrar deneyin."
	MsgNetwork      = "Sunucuya bağlanılamıyor. API servisi çalışmıyor olabilir. Lütfen daha sonra tekrar deneyin."
	MsgTimeout      = "İstek zaman aşımına uğradı. Sunucu yanıt vermiyor. Lütfen tekrar deneyin."
	MsgNotFound     = "İstenen kaynak bulunamadı. API adresi değişmiş olabilir."
	MsgServerError  = "Sunucu hatası oluştu. Teknik ekip bilgilendirildi, lütfen daha sonra tekrar deneyin."
	MsgForbidden    = "Bu kaynağa erişim iznin yok."
	MsgUnauthorized = "Yetkilendirme hatası. Lütfen tekrar giriş yapın."
	MsgCrossOrigin  = "Sunucu yapılandırma sorunu. Lütfen yöneticiye başvurun."
	MsgFallback     = "Veriler yüklenirken beklenmeyen bir sorun oluştu. Lütfen sayfayı yenileyin veya daha sonra tekrar deneyin."
)

// Messages containing Turkish characters came from the API and are already
// user-facing; they pass through the classifier untouched.
var localizedRegex = regexp.MustCompile(`[çğıöşüÇĞIİÖŞÜ]`)

// Classifier maps raw transport errors to user-facing messages. Typed
// errors are inspected first; raw text matching remains as a fallback for
// errors that arrive unwrapped.
type Classifier struct {
	online func() bool
}

// NewClassifier creates a classifier using the default connectivity probe
func NewClassifier() *Classifier {
	return &Classifier{online: probeOnline}
}

// NewClassifierWithProbe creates a classifier with a custom connectivity probe
func NewClassifierWithProbe(online func() bool) *Classifier {
	return &Classifier{online: online}
}

// Classify returns the user-facing message for err.
// Precedence, first match wins: offline, localized pass-through, network,
// timeout, 404, 500, 403, 401, cross-origin, fallback.
func (c *Classifier) Classify(err error) string {
	if err == nil {
		return ""
	}

	if c.online != nil && !c.online() {
		return MsgOffline
	}

	msg := err.Error()
	if localizedRegex.MatchString(msg) {
		return msg
	}

	var netErr *NetworkError
	if crerr.As(err, &netErr) {
		return MsgNetwork
	}

	var timeoutErr *TimeoutError
	if crerr.As(err, &timeoutErr) {
		return MsgTimeout
	}

	var srvErr *ServerError
	if crerr.As(err, &srvErr) {
		switch srvErr.Status {
		case http.StatusNotFound:
			return MsgNotFound
		case http.StatusInternalServerError:
			return MsgServerError
		case http.StatusForbidden:
			return MsgForbidden
		case http.StatusUnauthorized:
			return MsgUnauthorized
		}
	}

	switch {
	case containsAny(msg, "fetch", "Failed to fetch", "NetworkError", "ERR_NETWORK", "connection refused", "no such host"):
		return MsgNetwork
	case containsAny(msg, "timeout", "TIMEOUT", "deadline exceeded"):
		return MsgTimeout
	case containsAny(msg, "404", "Not Found"):
		return MsgNotFound
	case containsAny(msg, "500", "Internal Server Error"):
		return MsgServerError
	case containsAny(msg, "403", "Forbidden"):
		return MsgForbidden
	case containsAny(msg, "401", "Unauthorized"):
		return MsgUnauthorized
	case containsAny(msg, "CORS", "Cross-Origin"):
		return MsgCrossOrigin
	default:
		return MsgFallback
	}
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

// probeOnline reports whether any non-loopback interface is up with an
// address assigned. Mirrors the browser's navigator.onLine signal: a best
// effort hint, not proof of reachability.
func probeOnline() bool {
	ifaces, err := net.Interfaces()
	if err != nil {
		return true // assume online when the probe itself fails
	}
	for _, iface := range ifaces {
		if iface.Flags&net.FlagUp == 0 || iface.Flags&net.FlagLoopback != 0 {
			continue
		}
		addrs, err := iface.Addrs()
		if err == nil && len(addrs) > 0 {
			return true
		}
	}
	return false
}
