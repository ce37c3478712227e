// Package api содержит HTTP-слой: обработчики, middleware и шаблоны страниц
package api

import "embed"

// Templates встроенные html/template шаблоны страниц
//
//go:embed templates/layout.html templates/pages/*.html
var Templates embed.FS
