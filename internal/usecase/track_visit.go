package usecase

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/tikaramspirits/tikaram-api/internal/entity"
	"github.com/tikaramspirits/tikaram-api/internal/infra/integration/geoip"
)

// mobileTokens is a heuristic, not a guarantee. Anything that matches none
// of these is classified desktop.
var mobileTokens = []string{
	"android", "webos", "iphone", "ipad", "ipod", "blackberry", "iemobile", "opera mini",
}

type TrackVisitUseCase struct {
	Geo     GeoLookupInterface
	Traffic TrafficLogRepositoryInterface
	guard   *sessionGuard
}

func NewTrackVisitUseCase(geo GeoLookupInterface, traffic TrafficLogRepositoryInterface) *TrackVisitUseCase {
	return &TrackVisitUseCase{
		Geo:     geo,
		Traffic: traffic,
		guard:   newSessionGuard(30 * time.Minute),
	}
}

// Execute never fails: the browser always gets a location tuple back, real
// or fallback, whatever breaks underneath. At most one outbound geo lookup
// is fired per session; later calls in the same session get the cached
// tuple without touching the upstream service.
func (uc *TrackVisitUseCase) Execute(ctx context.Context, input TrackVisitInput) TrackVisitOutput {
	if input.SessionID != "" {
		cached, proceed := uc.guard.begin(input.SessionID)
		if !proceed {
			if cached == (geoip.Location{}) {
				cached = geoip.Fallback()
			}
			return TrackVisitOutput{ZipCode: cached.Postal, City: cached.City}
		}
	}

	loc := geoip.Fallback()
	defer func() {
		if input.SessionID != "" {
			uc.guard.finish(input.SessionID, loc)
		}
	}()

	if found, err := uc.Geo.Lookup(ctx); err != nil {
		reportBestEffort("geo_lookup", err)
	} else {
		loc = found
	}

	logRow := &entity.TrafficLog{
		City:       loc.City,
		Country:    loc.CountryCode,
		ZipCode:    loc.Postal,
		Path:       input.Path,
		DeviceType: classifyDevice(input.UserAgent),
	}
	if err := uc.Traffic.Create(ctx, logRow); err != nil {
		reportBestEffort("traffic_log_insert", err)
	}

	return TrackVisitOutput{ZipCode: loc.Postal, City: loc.City}
}

func classifyDevice(userAgent string) string {
	ua := strings.ToLower(userAgent)
	for _, token := range mobileTokens {
		if strings.Contains(ua, token) {
			return entity.DeviceMobile
		}
	}
	return entity.DeviceDesktop
}

// sessionGuard deduplicates tracking per browsing session. It replaces the
// frontend's old window-level flag with state owned by the component that
// issues the lookup.
type sessionGuard struct {
	mu       sync.Mutex
	sessions map[string]*sessionState
	ttl      time.Duration
}

type sessionState struct {
	inFlight bool
	logged   bool
	loc      geoip.Location
	touched  time.Time
}

func newSessionGuard(ttl time.Duration) *sessionGuard {
	g := &sessionGuard{
		sessions: make(map[string]*sessionState),
		ttl:      ttl,
	}

	go g.cleanup()
	return g
}

// begin reports whether the caller should perform the lookup. When it
// returns false, the session is either already logged or another request for
// it is in flight, and the cached location (possibly zero) is returned.
func (g *sessionGuard) begin(sessionID string) (geoip.Location, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()

	s, exists := g.sessions[sessionID]
	now := time.Now()

	if exists && (s.logged || s.inFlight) {
		s.touched = now
		return s.loc, false
	}

	if !exists {
		s = &sessionState{}
		g.sessions[sessionID] = s
	}
	s.inFlight = true
	s.touched = now
	return geoip.Location{}, true
}

// finish releases the in-flight flag on every path and records the session
// as logged with its resolved location.
func (g *sessionGuard) finish(sessionID string, loc geoip.Location) {
	g.mu.Lock()
	defer g.mu.Unlock()

	s, exists := g.sessions[sessionID]
	if !exists {
		return
	}

	s.inFlight = false
	s.logged = true
	s.loc = loc
	s.touched = time.Now()
}

func (g *sessionGuard) cleanup() {
	ticker := time.NewTicker(10 * time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		g.mu.Lock()
		now := time.Now()
		for id, s := range g.sessions {
			if now.Sub(s.touched) > g.ttl {
				delete(g.sessions, id)
			}
		}
		g.mu.Unlock()
	}
}
