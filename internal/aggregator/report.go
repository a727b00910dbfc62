package aggregator

import (
	"audit-insights-go/internal/classify"
	"audit-insights-go/internal/types"
)

// Relatorio computes the flat counters the reports screen renders: totals per
// workflow status (every status listed, zero or not), prontuário counts per
// error-type code (deduplicated per prontuário), and insurer/sector
// frequencies. Records with a blank status are skipped entirely.
func Relatorio(ps []types.Prontuario) types.RelatorioStats {
	totalPorStatus := map[string]int{}
	for _, status := range classify.StatusOpcoes {
		totalPorStatus[status] = 0
	}
	errosPorTipo := map[string]int{}
	convenios := map[string]int{}
	setores := map[string]int{}
	totalComErro := 0

	for _, p := range ps {
		if p.Status == "" {
			continue
		}
		status := classify.TitleStatus(p.Status)
		if _, ok := totalPorStatus[status]; ok {
			totalPorStatus[status]++
		}
		convenios[p.Convenio]++
		setores[p.Setor]++

		vistos := map[string]bool{}
		for _, e := range p.Erros {
			if !vistos[e.Tipo] {
				vistos[e.Tipo] = true
				errosPorTipo[e.Tipo]++
			}
		}
		if classify.TemErro(p) {
			totalComErro++
		}
	}

	return types.RelatorioStats{
		TotalPorStatus:          totalPorStatus,
		ErrosPorTipo:            errosPorTipo,
		Convenios:               convenios,
		Setores:                 setores,
		TotalProntuariosComErro: totalComErro,
	}
}
