// internals/features/attendance/location/location.go
package location

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"
)

// Location adalah snapshot koordinat saat check-in/check-out.
// Address masih berupa koordinat terformat, belum reverse-geocode.
type Location struct {
	Lat     float64 `json:"lat"`
	Lng     float64 `json:"lng"`
	Address string  `json:"address"`
}

var (
	ErrUnsupported = errors.New("geolocation tidak tersedia")
	ErrDenied      = errors.New("geolocation ditolak atau koordinat invalid")
	ErrTimeout     = errors.New("geolocation timeout")
)

const (
	// DefaultTimeout mengikuti budget 10 detik di klien browser.
	DefaultTimeout = 10 * time.Second
	// DefaultMaxAge mengikuti maximumAge 5 menit di klien browser.
	DefaultMaxAge = 5 * time.Minute
)

// Provider menyelesaikan satu permintaan lokasi.
type Provider interface {
	Current(ctx context.Context) (Location, error)
}

// FromCoordinates membentuk Location dengan address "lat, lng" (6 desimal).
func FromCoordinates(lat, lng float64) Location {
	return Location{
		Lat:     lat,
		Lng:     lng,
		Address: fmt.Sprintf("%.6f, %.6f", lat, lng),
	}
}

// RequestProvider memakai koordinat yang dikirim klien (browser geolocation).
// Koordinat nil berarti device tidak mendukung/menolak geolocation.
type RequestProvider struct {
	Lat *float64
	Lng *float64
}

func (p RequestProvider) Current(ctx context.Context) (Location, error) {
	if err := ctx.Err(); err != nil {
		return Location{}, ErrTimeout
	}
	if p.Lat == nil || p.Lng == nil {
		return Location{}, ErrUnsupported
	}
	lat, lng := *p.Lat, *p.Lng
	if lat < -90 || lat > 90 || lng < -180 || lng > 180 {
		return Location{}, ErrDenied
	}
	return FromCoordinates(lat, lng), nil
}

// WithTimeout membatasi resolusi lokasi pada durasi d.
func WithTimeout(p Provider, d time.Duration) Provider {
	return timeoutProvider{inner: p, d: d}
}

type timeoutProvider struct {
	inner Provider
	d     time.Duration
}

func (t timeoutProvider) Current(ctx context.Context) (Location, error) {
	ctx, cancel := context.WithTimeout(ctx, t.d)
	defer cancel()

	type result struct {
		loc Location
		err error
	}
	ch := make(chan result, 1)
	go func() {
		loc, err := t.inner.Current(ctx)
		ch <- result{loc, err}
	}()

	select {
	case r := <-ch:
		return r.loc, r.err
	case <-ctx.Done():
		return Location{}, ErrTimeout
	}
}

// Cached menyimpan fix terakhir selama maxAge (meniru maximumAge browser).
func Cached(p Provider, maxAge time.Duration) Provider {
	return &cachedProvider{inner: p, maxAge: maxAge}
}

type cachedProvider struct {
	inner  Provider
	maxAge time.Duration

	mu      sync.Mutex
	last    Location
	fixedAt time.Time
}

func (c *cachedProvider) Current(ctx context.Context) (Location, error) {
	c.mu.Lock()
	if !c.fixedAt.IsZero() && time.Since(c.fixedAt) <= c.maxAge {
		loc := c.last
		c.mu.Unlock()
		return loc, nil
	}
	c.mu.Unlock()

	loc, err := c.inner.Current(ctx)
	if err != nil {
		return Location{}, err
	}

	c.mu.Lock()
	c.last = loc
	c.fixedAt = time.Now()
	c.mu.Unlock()
	return loc, nil
}
