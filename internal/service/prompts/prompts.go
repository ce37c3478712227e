// Package prompts собирает текст промпта для генерации лендинга
// из секторных шаблонов sectors/<sector>/prompt.txt
package prompts

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/protap/TAP-LandingService/internal/domain"
	"github.com/protap/TAP-LandingService/pkg/ptr"
)

const noDescription = "Sin descripción"

// Builder подставляет данные заявки в секторный шаблон
type Builder struct {
	templatesDir string
}

// NewBuilder создает новый сборщик промптов
func NewBuilder(templatesDir string) *Builder {
	return &Builder{templatesDir: templatesDir}
}

// Build возвращает промпт для заявки по шаблону её сектора.
// Отсутствующий шаблон не ошибка: возвращается пустая строка, лендинг
// сохраняется без промпта
func (b *Builder) Build(landing *domain.LandingRequest, services []*domain.LandingService) string {
	raw, err := os.ReadFile(filepath.Join(b.templatesDir, landing.Sector, "prompt.txt"))
	if err != nil {
		return ""
	}

	nombre := landing.BusinessName
	if nombre == "" {
		nombre = ptr.Deref(landing.ContactName, "")
	}

	descripcion := b.describeServices(services)
	if descripcion == "" {
		descripcion = landing.Description
	}

	ubicacion := landing.Location
	if ubicacion == "" {
		ubicacion = ptr.Deref(landing.Website, "")
	}

	return strings.NewReplacer(
		"{nombre}", nombre,
		"{descripcion}", descripcion,
		"{ubicacion}", ubicacion,
	).Replace(string(raw))
}

func (b *Builder) describeServices(services []*domain.LandingService) string {
	if len(services) == 0 {
		return ""
	}

	lines := make([]string, 0, len(services))
	for _, svc := range services {
		desc := ptr.Deref(svc.Description, "")
		if desc == "" {
			desc = noDescription
		}
		lines = append(lines, "- "+svc.Title+": "+desc)
	}
	return "Servicios ofrecidos:\n" + strings.Join(lines, "\n")
}
