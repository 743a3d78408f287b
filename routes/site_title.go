/*
 * Copyright 2026 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package routes

import (
	"os"
	"strings"

	"github.com/flamego/flamego"
	"github.com/flamego/template"
)

const (
	defaultSiteTitle      = "Clinical Calculator"
	publicSiteTitleEnvVar = "PUBLIC_SITE_TITLE"
)

// SiteTitle exposes the site title to templates. A non-empty title wins
// over PUBLIC_SITE_TITLE.
func SiteTitle(title string) flamego.Handler {
	return func(data template.Data) {
		setPublicSiteTitle(data, title)
	}
}

func setPublicSiteTitle(data template.Data, title string) {
	title = strings.TrimSpace(title)
	if title == "" {
		title = strings.TrimSpace(os.Getenv(publicSiteTitleEnvVar))
	}

	if title == "" {
		title = defaultSiteTitle
	}

	data["SiteTitle"] = title
}
