package location

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestFromCoordinates_AddressFormat(t *testing.T) {
	t.Parallel()

	loc := FromCoordinates(-6.208763, 106.845599)
	if loc.Address != "-6.208763, 106.845599" {
		t.Fatalf("address = %q", loc.Address)
	}
	if loc.Lat != -6.208763 || loc.Lng != 106.845599 {
		t.Fatalf("koordinat berubah: %+v", loc)
	}
}

func TestRequestProvider_MissingCoordinates(t *testing.T) {
	t.Parallel()

	if _, err := (RequestProvider{}).Current(context.Background()); !errors.Is(err, ErrUnsupported) {
		t.Fatalf("err = %v, want ErrUnsupported", err)
	}

	lat := 1.0
	if _, err := (RequestProvider{Lat: &lat}).Current(context.Background()); !errors.Is(err, ErrUnsupported) {
		t.Fatalf("err = %v, want ErrUnsupported (lng kosong)", err)
	}
}

func TestRequestProvider_OutOfRangeCoordinates(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		lat, lng float64
	}{
		{"lat too high", 91, 0},
		{"lat too low", -91, 0},
		{"lng too high", 0, 181},
		{"lng too low", 0, -181},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := RequestProvider{Lat: &tt.lat, Lng: &tt.lng}
			if _, err := p.Current(context.Background()); !errors.Is(err, ErrDenied) {
				t.Fatalf("err = %v, want ErrDenied", err)
			}
		})
	}
}

func TestRequestProvider_ValidCoordinates(t *testing.T) {
	t.Parallel()

	lat, lng := -6.2, 106.8
	loc, err := (RequestProvider{Lat: &lat, Lng: &lng}).Current(context.Background())
	if err != nil {
		t.Fatalf("Current: %v", err)
	}
	if loc.Lat != lat || loc.Lng != lng {
		t.Fatalf("loc = %+v", loc)
	}
}

type slowProvider struct {
	delay time.Duration
	loc   Location
}

func (p slowProvider) Current(ctx context.Context) (Location, error) {
	select {
	case <-time.After(p.delay):
		return p.loc, nil
	case <-ctx.Done():
		return Location{}, ErrTimeout
	}
}

func TestWithTimeout_SlowProviderTimesOut(t *testing.T) {
	t.Parallel()

	p := WithTimeout(slowProvider{delay: 200 * time.Millisecond}, 20*time.Millisecond)
	if _, err := p.Current(context.Background()); !errors.Is(err, ErrTimeout) {
		t.Fatalf("err = %v, want ErrTimeout", err)
	}
}

func TestWithTimeout_FastProviderPasses(t *testing.T) {
	t.Parallel()

	want := FromCoordinates(1, 2)
	p := WithTimeout(slowProvider{delay: time.Millisecond, loc: want}, time.Second)
	loc, err := p.Current(context.Background())
	if err != nil {
		t.Fatalf("Current: %v", err)
	}
	if loc != want {
		t.Fatalf("loc = %+v, want %+v", loc, want)
	}
}

type countingProvider struct {
	calls int
	loc   Location
	err   error
}

func (p *countingProvider) Current(ctx context.Context) (Location, error) {
	p.calls++
	return p.loc, p.err
}

func TestCached_ReusesFreshFix(t *testing.T) {
	t.Parallel()

	inner := &countingProvider{loc: FromCoordinates(1, 2)}
	p := Cached(inner, time.Minute)

	for i := 0; i < 3; i++ {
		loc, err := p.Current(context.Background())
		if err != nil {
			t.Fatalf("Current #%d: %v", i, err)
		}
		if loc != inner.loc {
			t.Fatalf("loc = %+v", loc)
		}
	}
	if inner.calls != 1 {
		t.Fatalf("inner dipanggil %d kali, want 1", inner.calls)
	}
}

func TestCached_ErrorNotCached(t *testing.T) {
	t.Parallel()

	inner := &countingProvider{err: ErrDenied}
	p := Cached(inner, time.Minute)

	for i := 0; i < 2; i++ {
		if _, err := p.Current(context.Background()); !errors.Is(err, ErrDenied) {
			t.Fatalf("err = %v, want ErrDenied", err)
		}
	}
	if inner.calls != 2 {
		t.Fatalf("inner dipanggil %d kali, want 2 (error tidak di-cache)", inner.calls)
	}
}
