package create_landing

import (
	"strings"

	"github.com/protap/TAP-LandingService/internal/domain"
)

// validateRequest проверяет форму: известный сектор, имя контакта,
// хотя бы одна услуга с непустым названием
func validateRequest(req *Request) error {
	if !domain.IsValidSector(req.Sector) {
		return ErrInvalidSector
	}

	if strings.TrimSpace(req.ContactName) == "" {
		return ErrNameRequired
	}

	for _, svc := range req.Services {
		if strings.TrimSpace(svc.Title) != "" {
			return nil
		}
	}
	return ErrServiceRequired
}

// collectServices отбирает пары с непустым названием; Order сохраняет
// позицию пары в форме, а не порядковый номер сохранённой услуги
func collectServices(inputs []ServiceInput) []*domain.LandingService {
	if len(inputs) > domain.MaxLandingServices {
		inputs = inputs[:domain.MaxLandingServices]
	}

	services := make([]*domain.LandingService, 0, len(inputs))
	for i, svc := range inputs {
		title := strings.TrimSpace(svc.Title)
		if title == "" {
			continue
		}

		var desc *string
		if d := strings.TrimSpace(svc.Description); d != "" {
			desc = &d
		}
		services = append(services, &domain.LandingService{
			Title:       title,
			Description: desc,
			Order:       i,
		})
	}
	return services
}
