package handlers

import (
	"net/http"

	"examplegen/internal/catalog"
)

type styleResponse struct {
	Key      string `json:"key"`
	Category string `json:"category"`
	Title    string `json:"title"`
	StyleTag string `json:"style_tag"`
}

// Styles serves GET /v1/styles with every catalog key in sorted order.
func (a *App) Styles(w http.ResponseWriter, r *http.Request) {
	keys := catalog.Keys()
	items := make([]styleResponse, 0, len(keys))
	for _, key := range keys {
		d := catalog.Display(key)
		items = append(items, styleResponse{
			Key:      key,
			Category: catalog.Category(key),
			Title:    d.Title,
			StyleTag: d.StyleTag,
		})
	}
	a.json(w, http.StatusOK, map[string]any{"items": items})
}
