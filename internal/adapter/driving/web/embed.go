package web

import "embed"

// StaticFS holds the embedded static assets (stylesheet, countdown script).
//
//go:embed static/*
var StaticFS embed.FS

// TemplatesFS holds the embedded HTML templates.
//
//go:embed templates/*.html
var TemplatesFS embed.FS
