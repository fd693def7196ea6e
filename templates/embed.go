// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package templates embeds the server-rendered HTML pages.
package templates

import "embed"

//go:embed *.html
var FS embed.FS
