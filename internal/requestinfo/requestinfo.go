// internal/requestinfo/requestinfo.go
//
// Per-request metadata: user-agent fingerprint, client IP, and
// best-effort geolocation.  The structs are inert — no database handles
// or large buffers — so they are safe to log or JSON-encode.
package requestinfo

import (
	"context"
	"net"
	"net/url"
	"time"

	"github.com/oschwald/geoip2-golang"

	"github.com/amchibidi13/artful-data-folio-sub000/internal/ua"
)

// Geo holds IP-based geolocation hints.  Best-effort; fields stay empty
// when the database has no match or is not configured.
type Geo struct {
	IP         net.IP
	CountryISO string
	City       string
}

// RequestInfo is stored in the request context by the Enrich middleware
// and read back by the visit recorder.
type RequestInfo struct {
	UA        ua.Info
	Geo       Geo
	URL       *url.URL
	Timestamp time.Time
}

// geoReader is a shared MaxMind handle; safe for concurrent reads,
// which is all we ever perform.  nil when geo is not configured.
var geoReader *geoip2.Reader

// InitGeo opens the GeoLite2-City database.  Call it once at startup;
// skipping it leaves geo fields empty, which is a supported mode.
func InitGeo(dbPath string) error {
	r, err := geoip2.Open(dbPath)
	if err != nil {
		return err
	}
	geoReader = r
	return nil
}

type ctxKey struct{}

// FromContext returns the pointer stored by Enrich, or nil if the
// middleware has not run.
func FromContext(ctx context.Context) *RequestInfo {
	v, _ := ctx.Value(ctxKey{}).(*RequestInfo)
	return v
}

// lookupGeo returns best-effort Geo data using the shared reader.
func lookupGeo(ip net.IP) Geo {
	if geoReader == nil || ip == nil {
		return Geo{IP: ip}
	}
	rec, err := geoReader.City(ip)
	if err != nil {
		return Geo{IP: ip}
	}
	return Geo{
		IP:         ip,
		CountryISO: rec.Country.IsoCode,
		City:       rec.City.Names["en"],
	}
}
