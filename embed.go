package folio

import "embed"

// EmbeddedAssets contains static assets shipped with the site:
// folio.js (scroll/clipboard driver) and folio.css.
//
//go:embed embedded/*
var EmbeddedAssets embed.FS
