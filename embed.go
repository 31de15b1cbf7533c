package showcase

import "embed"

// EmbeddedAssets holds the assets shipped with the site: site.css.
//
//go:embed embedded/*
var EmbeddedAssets embed.FS
