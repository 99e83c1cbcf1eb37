package visionkit

import "embed"

// EmbeddedAssets contains the static files shipped with visionkit:
// visionkit.css, builder.js and favicon.svg.
//
//go:embed embedded/*
var EmbeddedAssets embed.FS
