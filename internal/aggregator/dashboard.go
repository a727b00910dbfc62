package aggregator

import (
	"time"

	"audit-insights-go/internal/catalog"
	"audit-insights-go/internal/classify"
	"audit-insights-go/internal/types"
)

// MetaTaxaErros is the target error rate shown against the actual one.
const MetaTaxaErros = 10.0

// Montar assembles the complete dashboard payload from an already-filtered
// prontuário list. todosErros is the unfiltered annotation history: the
// monthly error timeline deliberately spans everything, unlike the other
// aggregators. agora fixes the productivity month and the timeline window.
//
// An empty input produces the zero-data payload: zeroed counters, empty
// lists (never null) and the meta still set, so consumers render a blank
// dashboard instead of failing.
func Montar(ps []types.Prontuario, todosErros []types.Erro, cat *catalog.Catalog, agora time.Time) types.Dashboard {
	total := len(ps)
	if total == 0 {
		return types.Dashboard{
			Stats:                  types.DashboardStats{MetaTaxaErros: MetaTaxaErros},
			StatsResponsavel:       []types.RateEntry{},
			StatsConvenio:          []types.RateEntry{},
			StatsTopMotivos:        []types.RankingEntry{},
			StatsTopCausas:         []types.RankingEntry{},
			StatsTopSetores:        []types.RateEntry{},
			StatsMotivosDetalhados: []types.TipoErroDetalhado{},
			StatsGeraisErros:       types.StatsGeraisErros{},
			ProdutividadeMes:       types.TimeSeries{Labels: []string{}, Valores: []int{}},
			ErrosMensais:           types.TimeSeries{Labels: []string{}, Valores: []int{}},
		}
	}

	motivosDetalhados, geraisErros := ErrosPorMotivoDetalhado(ps, cat)

	statusCount := map[string]int{}
	for _, p := range ps {
		statusCount[classify.Status(p)]++
	}

	taxaErros := round1(100 * float64(geraisErros.TotalProntuariosComErro) / float64(total))
	entregues := statusCount[classify.StatusEntregueFaturamento]
	tempos := CalcTemposMedios(ps)

	topMotivos, topCausas := TopErros(ps, cat, TopLimitPadrao)

	return types.Dashboard{
		Stats: types.DashboardStats{
			AguardandoAuditoria: statusCount[classify.StatusAguardandoAuditoria],
			EmAuditoria:         statusCount[classify.StatusEmAuditoria],
			AguardandoCorrecao: statusCount[classify.StatusAguardandoCorrecao] +
				statusCount[classify.StatusAguardandoRevisao],
			Entregue:                entregues,
			TaxaErros:               taxaErros,
			MetaTaxaErros:           MetaTaxaErros,
			TotalRegistradosMes:     total,
			TempoMedioAuditoria:     tempos.Auditoria,
			TaxaConclusao:           round1(100 * float64(entregues) / float64(total)),
			PercentualComErros:      taxaErros,
			MediaErrosPorProntuario: geraisErros.MediaErrosPorProntuario,
			TotalProntuariosComErro: geraisErros.TotalProntuariosComErro,
			TotalErrosRegistrados:   geraisErros.TotalErrosRegistrados,
			TotalTiposErro:          geraisErros.TotalTiposErro,
		},
		StatsResponsavel:       TaxaErrosResponsavel(ps),
		StatsConvenio:          TaxaErrosConvenio(ps),
		StatsTopMotivos:        topMotivos,
		StatsTopCausas:         topCausas,
		StatsTopSetores:        TaxaErrosSetor(ps),
		StatsMotivosDetalhados: motivosDetalhados,
		StatsGeraisErros:       geraisErros,
		ProdutividadeMes:       ProdutividadeDiariaMes(ps, agora.Year(), int(agora.Month())),
		ErrosMensais:           ErrosTimelineMensal(todosErros, agora),
	}
}
