package classify

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"audit-insights-go/internal/types"
)

// Canonical status keys used across the dashboard payload.
const (
	StatusAguardandoAuditoria = "aguardando_auditoria"
	StatusEmAuditoria         = "em_auditoria"
	StatusAguardandoCorrecao  = "aguardando_correcao"
	StatusAguardandoRevisao   = "aguardando_revisao"
	StatusEntregueFaturamento = "entregue_faturamento"
	StatusDesconhecido        = "desconhecido"
)

// StatusOpcoes lists the display form of every workflow status, in workflow
// order. Reports iterate this list so every status appears even with count 0.
var StatusOpcoes = []string{
	"Aguardando Auditoria",
	"Em Auditoria",
	"Aguardando Correção",
	"Aguardando Revisão",
	"Entregue ao Faturamento",
}

var statusMap = map[string]string{
	"Aguardando Auditoria":    StatusAguardandoAuditoria,
	"Em Auditoria":            StatusEmAuditoria,
	"Aguardando Correção":     StatusAguardandoCorrecao,
	"Aguardando Revisão":      StatusAguardandoRevisao,
	"Entregue ao Faturamento": StatusEntregueFaturamento,
}

// TitleStatus normalizes a raw status string to its display form: trimmed,
// title-cased, with the preposition in "Entregue ao Faturamento" forced back
// to lowercase (title-casing capitalizes it). The caser is built per call
// because cases.Caser is not safe for concurrent use.
func TitleStatus(raw string) string {
	titler := cases.Title(language.BrazilianPortuguese)
	return strings.ReplaceAll(titler.String(strings.TrimSpace(raw)), "Ao", "ao")
}

// Status maps a record's raw status onto its canonical key;
// anything off the fixed enumeration becomes "desconhecido".
func Status(p types.Prontuario) string {
	if key, ok := statusMap[TitleStatus(p.Status)]; ok {
		return key
	}
	return StatusDesconhecido
}

// NaoInformado is the bucket for records missing an insurer or sector.
const NaoInformado = "Não Informado"

// Convenio returns the insurer bucket for a record.
func Convenio(p types.Prontuario) string {
	if v := strings.TrimSpace(p.Convenio); v != "" {
		return v
	}
	return NaoInformado
}

// Setor returns the sector bucket for a record.
func Setor(p types.Prontuario) string {
	if v := strings.TrimSpace(p.Setor); v != "" {
		return v
	}
	return NaoInformado
}

// TemErro reports whether the record carries at least one error annotation.
func TemErro(p types.Prontuario) bool {
	return len(p.Erros) > 0
}
