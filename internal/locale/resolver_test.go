package locale

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/lucasferrer/freshkeep-backend/internal/settings"
	"github.com/lucasferrer/freshkeep-backend/pkg/logger"
)

type staticLanguage struct {
	code string
}

func (s staticLanguage) Language(ctx context.Context) settings.LanguageSetting {
	return settings.LanguageSetting{Code: s.code}
}

type fakeGeo struct {
	country string
	err     error
	calls   int
}

func (f *fakeGeo) CountryCode(ctx context.Context) (string, error) {
	f.calls++
	if f.err != nil {
		return "", f.err
	}
	return f.country, nil
}

func testLogger() *logger.Logger {
	return logger.New(logger.Options{ServiceName: "locale-test", Output: io.Discard})
}

func newResolverWith(prefs LanguageReader, geo GeoSource) Resolver {
	r, err := NewResolver(prefs, geo, testLogger())
	if err != nil {
		panic(err)
	}
	return r
}

func TestResolver_ExplicitPreferenceSkipsGeo(t *testing.T) {
	geo := &fakeGeo{country: "CN"}
	r := newResolverWith(staticLanguage{code: "zh"}, geo)

	if got := r.Resolve(context.Background()); got != "zh" {
		t.Fatalf("expected stored preference, got %q", got)
	}
	if geo.calls != 0 {
		t.Fatal("explicit preference should not trigger a geo lookup")
	}
}

func TestResolver_AutoUsesCountryTable(t *testing.T) {
	cases := []struct {
		country string
		want    string
	}{
		{"CN", "zh"},
		{"TW", "zh"},
		{"DE", "en"},
		{"US", "en"},
	}
	for _, tc := range cases {
		r := newResolverWith(staticLanguage{code: settings.LanguageAuto}, &fakeGeo{country: tc.country})
		if got := r.Resolve(context.Background()); got != tc.want {
			t.Fatalf("country %s: expected %q, got %q", tc.country, tc.want, got)
		}
	}
}

func TestResolver_GeoFailureFallsBack(t *testing.T) {
	geo := &fakeGeo{err: errors.New("timeout")}
	r := newResolverWith(staticLanguage{code: settings.LanguageAuto}, geo)

	if got := r.Resolve(context.Background()); got != DefaultLanguage {
		t.Fatalf("expected fallback language, got %q", got)
	}
}

func TestResolver_NilGeoFallsBack(t *testing.T) {
	r := newResolverWith(staticLanguage{code: settings.LanguageAuto}, nil)

	if got := r.Resolve(context.Background()); got != DefaultLanguage {
		t.Fatalf("expected fallback language, got %q", got)
	}
}
