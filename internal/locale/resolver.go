package locale

import (
	"context"

	"github.com/lucasferrer/freshkeep-backend/internal/settings"
	pkgerrors "github.com/lucasferrer/freshkeep-backend/pkg/errors"
	"github.com/lucasferrer/freshkeep-backend/pkg/logger"
)

// DefaultLanguage is used whenever no better choice can be made.
const DefaultLanguage = "en"

// Spoken content ships in English and Chinese only, so the table just
// names the regions that should default to Chinese.
var languageByCountry = map[string]string{
	"CN": "zh",
	"TW": "zh",
	"HK": "zh",
	"MO": "zh",
	"SG": "zh",
}

// GeoSource reports the caller's country.
type GeoSource interface {
	CountryCode(ctx context.Context) (string, error)
}

// LanguageReader exposes the stored language preference.
type LanguageReader interface {
	Language(ctx context.Context) settings.LanguageSetting
}

// Resolver turns the stored language preference into an effective language,
// consulting geolocation when the preference is "auto".
type Resolver interface {
	Resolve(ctx context.Context) string
}

type resolver struct {
	prefs LanguageReader
	geo   GeoSource
	logg  *logger.Logger
}

// NewResolver wires the locale resolver dependencies.
func NewResolver(prefs LanguageReader, geo GeoSource, logg *logger.Logger) (Resolver, error) {
	if prefs == nil {
		return nil, pkgerrors.New(pkgerrors.CodeDependency, "language reader required")
	}
	if logg == nil {
		return nil, pkgerrors.New(pkgerrors.CodeDependency, "logger required")
	}
	return &resolver{prefs: prefs, geo: geo, logg: logg}, nil
}

// Resolve never fails; geolocation trouble degrades to the default language.
// The resolved value is returned to the caller but never written back to
// storage, so the preference stays "auto".
func (r *resolver) Resolve(ctx context.Context) string {
	code := r.prefs.Language(ctx).Code
	if code != "" && code != settings.LanguageAuto {
		return code
	}

	if r.geo == nil {
		return DefaultLanguage
	}

	country, err := r.geo.CountryCode(ctx)
	if err != nil {
		r.logg.Warn(r.logg.WithField(ctx, "error", err.Error()), "geolocation lookup failed; using default language")
		return DefaultLanguage
	}
	return LanguageForCountry(country)
}

// LanguageForCountry maps an ISO country code to a supported language.
func LanguageForCountry(country string) string {
	if lang, ok := languageByCountry[country]; ok {
		return lang
	}
	return DefaultLanguage
}
