/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package routes

import (
	"net/http"
	"time"

	"github.com/flamego/csrf"
	"github.com/flamego/flamego"
	"github.com/flamego/template"

	"github.com/humaidq/clinicalc/gate"
	"github.com/humaidq/clinicalc/reference"
)

// Settings are the calculator defaults shared by every handler.
type Settings struct {
	// BannerDelay is how long a validation banner stays visible.
	BannerDelay time.Duration
	// Gender selects sex-specific reference ranges when a form omits it.
	Gender reference.Gender
}

// DefaultSettings returns the settings used when none are configured.
func DefaultSettings() Settings {
	return Settings{
		BannerDelay: gate.DefaultDismissDelay,
		Gender:      reference.GenderUnisex,
	}
}

// gender returns the form value when it names a gender, else the default.
func (s Settings) gender(formValue string) reference.Gender {
	if formValue == "" {
		return s.Gender
	}

	return reference.ParseGender(formValue)
}

// CSRFInjector automatically injects CSRF token into template data for all routes
func CSRFInjector() flamego.Handler {
	return func(x csrf.CSRF, data template.Data) {
		data["csrf_token"] = x.Token()
	}
}

// SettingsInjector maps settings for handlers and exposes the banner delay
// to templates.
func SettingsInjector(settings Settings) flamego.Handler {
	return func(c flamego.Context, data template.Data) {
		c.Map(settings)

		data["BannerDelayMS"] = settings.BannerDelay.Milliseconds()
		data["DefaultGender"] = string(settings.Gender)
	}
}

// NoCacheHeaders disables caching for all page responses and blocks indexing.
func NoCacheHeaders() flamego.Handler {
	return func(c flamego.Context) {
		header := c.ResponseWriter().Header()
		header.Set("X-Robots-Tag", "noindex, nofollow, noarchive, nosnippet")

		if c.Request().Method == http.MethodGet || c.Request().Method == http.MethodHead {
			header.Set("Cache-Control", "no-store, max-age=0")
			header.Set("Pragma", "no-cache")
			header.Set("Expires", "0")
		}

		c.Next()
	}
}
