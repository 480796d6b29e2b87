package scoring

import "project/backend/models"

// maxToolsPerCategory caps how many tools a single category suggests.
const maxToolsPerCategory = 2

// improvementTools is keyed by the canonical English category name. Entries
// are ranked; only the first maxToolsPerCategory are suggested.
var improvementTools = map[string][]string{
	"Access Control":                  {"Keycloak", "Duo Security", "CyberArk"},
	"Data Protection":                 {"VeraCrypt", "BitLocker"},
	"Employee Awareness and Training": {"KnowBe4", "Gophish"},
	"Governance and Policies":         {"Eramba", "OneTrust"},
	"Incident Response and Recovery":  {"TheHive", "Velociraptor", "GRR Rapid Response"},
	"Network Security":                {"Snort", "Wireshark", "Zeek"},
	"Third-Party Risk Management":     {"SecurityScorecard", "BitSight"},
}

// categoryNamesPt maps canonical English category names to their Portuguese
// display names. The reverse direction is derived below so the two tables
// cannot drift apart.
var categoryNamesPt = map[string]string{
	"Access Control":                  "Controle de Acesso",
	"Data Protection":                 "Proteção de Dados",
	"Employee Awareness and Training": "Conscientização e Treinamento de Funcionários",
	"Governance and Policies":         "Governança e Políticas",
	"Incident Response and Recovery":  "Resposta a Incidentes e Recuperação",
	"Network Security":                "Segurança de Rede",
	"Third-Party Risk Management":     "Gestão de Riscos de Terceiros",
}

var categoryNamesFromPt = func() map[string]string {
	m := make(map[string]string, len(categoryNamesPt))
	for en, pt := range categoryNamesPt {
		m[pt] = en
	}
	return m
}()

// CanonicalCategory maps a localized display category name back to the
// canonical English key used by the tool table. English names pass through;
// an unknown name is returned unchanged (and will simply miss the table).
func CanonicalCategory(name string, lang models.Language) string {
	if lang == models.Portuguese {
		if en, ok := categoryNamesFromPt[name]; ok {
			return en
		}
	}
	return name
}

// SuggestTools returns ranked improvement tools for each weak category, in
// the same order as weakCategories. Category names are display names in
// lang; categories with no table entry are omitted.
func SuggestTools(weakCategories []string, lang models.Language) []models.ToolSuggestion {
	var out []models.ToolSuggestion
	for _, name := range weakCategories {
		tools := improvementTools[CanonicalCategory(name, lang)]
		if len(tools) == 0 {
			continue
		}
		if len(tools) > maxToolsPerCategory {
			tools = tools[:maxToolsPerCategory]
		}
		out = append(out, models.ToolSuggestion{Category: name, Tools: tools})
	}
	return out
}
