package handlers

import (
	"bytes"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"path"
	"strings"

	"github.com/protap/TAP-LandingService/internal/api/middleware"
	"github.com/protap/TAP-LandingService/internal/domain"
)

// PageData данные, доступные каждому шаблону
type PageData struct {
	Title   string
	User    *domain.User
	Flashes []Flash
	Data    interface{}
}

// Page собирает PageData страницы: текущий пользователь из контекста
// и накопленные flash-сообщения из сессии
func Page(w http.ResponseWriter, r *http.Request, session *Session, title string, data interface{}) *PageData {
	return &PageData{
		Title:   title,
		User:    middleware.UserFromContext(r.Context()),
		Flashes: session.Flashes(w, r),
		Data:    data,
	}
}

// Renderer рендерит html/template страницы поверх общего layout
type Renderer struct {
	pages map[string]*template.Template
}

// NewRenderer парсит layout и все страницы из каталога templates.
// Имя страницы - имя файла без расширения
func NewRenderer(fsys fs.FS) (*Renderer, error) {
	names, err := fs.Glob(fsys, "templates/pages/*.html")
	if err != nil {
		return nil, fmt.Errorf("handlers: failed to glob templates: %w", err)
	}

	funcs := template.FuncMap{
		"safeHTML": func(s string) template.HTML { return template.HTML(s) },
		"money": func(p *float64) string {
			if p == nil {
				return "—"
			}
			return fmt.Sprintf("%.2f €", *p)
		},
	}

	pages := make(map[string]*template.Template, len(names))
	for _, name := range names {
		tmpl, err := template.New("layout.html").Funcs(funcs).
			ParseFS(fsys, "templates/layout.html", name)
		if err != nil {
			return nil, fmt.Errorf("handlers: failed to parse template %s: %w", name, err)
		}
		key := strings.TrimSuffix(path.Base(name), ".html")
		pages[key] = tmpl
	}

	return &Renderer{pages: pages}, nil
}

// Render отправляет страницу с указанным статусом.
// Страница рендерится в буфер: полуотданный ответ при ошибке невозможен
func (r *Renderer) Render(w http.ResponseWriter, status int, page string, data *PageData) error {
	tmpl, ok := r.pages[page]
	if !ok {
		return fmt.Errorf("handlers: unknown template %q", page)
	}
	if data == nil {
		data = &PageData{}
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "layout.html", data); err != nil {
		return fmt.Errorf("handlers: failed to execute template %q: %w", page, err)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
	return nil
}

// Error отправляет страницу ошибки с указанным статусом
func (r *Renderer) Error(w http.ResponseWriter, req *http.Request, session *Session, code int, message string) {
	data := Page(w, req, session, fmt.Sprintf("%d", code), map[string]interface{}{
		"Code":    code,
		"Message": message,
	})
	if err := r.Render(w, code, "error", data); err != nil {
		http.Error(w, message, code)
	}
}
