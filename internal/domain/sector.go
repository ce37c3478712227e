package domain

// SectorTheme оформление публичной страницы по сектору
type SectorTheme struct {
	Label         string
	Primary       string
	Background    string
	IconBg        string
	Icon          string
	Community     string
	CommunityDesc string
}

// SectorThemes темы всех поддерживаемых секторов
var SectorThemes = map[string]SectorTheme{
	"abogatap": {
		Label:         "Abogados",
		Primary:       "#1e3a5f",
		Background:    "#f0f2f5",
		IconBg:        "#e8edf3",
		Icon:          "⚖️",
		Community:     "AbogaTAP",
		CommunityDesc: "Conecta con otros profesionales del derecho, comparte casos de éxito y accede a recursos exclusivos.",
	},
	"segurotap": {
		Label:         "Seguros",
		Primary:       "#0d6e3f",
		Background:    "#f0f7f4",
		IconBg:        "#e6f4ed",
		Icon:          "\U0001f6e1️",
		Community:     "SeguroTAP",
		CommunityDesc: "Únete a la red de agentes de seguros, comparte estrategias y haz crecer tu cartera.",
	},
	"inmotap": {
		Label:         "Inmobiliaria",
		Primary:       "#7c5c2e",
		Background:    "#f7f4f0",
		IconBg:        "#f0ebe3",
		Icon:          "\U0001f3e0",
		Community:     "InmoTAP",
		CommunityDesc: "Conecta con agentes inmobiliarios, comparte propiedades y cierra más operaciones.",
	},
	"consultortap": {
		Label:         "Consultoría",
		Primary:       "#4f46e5",
		Background:    "#f5f3ff",
		IconBg:        "#ede9fe",
		Icon:          "\U0001f4bc",
		Community:     "ConsultorTAP",
		CommunityDesc: "Conecta con consultores y asesores, comparte metodologías y amplía tu red de clientes.",
	},
	"saludtap": {
		Label:         "Salud",
		Primary:       "#0e7490",
		Background:    "#f0f9ff",
		IconBg:        "#e0f2fe",
		Icon:          "\U0001fa7a",
		Community:     "SaludTAP",
		CommunityDesc: "Conecta con profesionales de la salud y haz crecer tu consulta.",
	},
}

// DefaultSector сектор по умолчанию для неизвестных значений
const DefaultSector = "abogatap"

// IsValidSector возвращает true для поддерживаемого сектора
func IsValidSector(sector string) bool {
	_, ok := SectorThemes[sector]
	return ok
}

// ThemeForSector возвращает тему сектора или тему по умолчанию
func ThemeForSector(sector string) SectorTheme {
	if theme, ok := SectorThemes[sector]; ok {
		return theme
	}
	return SectorThemes[DefaultSector]
}
