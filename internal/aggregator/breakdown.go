package aggregator

import (
	"audit-insights-go/internal/catalog"
	"audit-insights-go/internal/types"
)

// ErrosPorMotivoDetalhado computes per-error-type statistics over the
// error-bearing subset: how many prontuários carry the type (deduplicated per
// prontuário), how many annotations of it exist in total, its share of the
// error-bearing subset and the per-prontuário average. Rows sort by dossier
// count descending, encounter order on ties. A dataset with no errors yields
// an empty list and zeroed overall stats.
func ErrosPorMotivoDetalhado(ps []types.Prontuario, cat *catalog.Catalog) ([]types.TipoErroDetalhado, types.StatsGeraisErros) {
	erros := comErro(ps)
	totalComErro := len(erros)
	if totalComErro == 0 {
		return []types.TipoErroDetalhado{}, types.StatsGeraisErros{}
	}

	prontuariosPorTipo := novoContador()
	ocorrenciasPorTipo := novoContador()
	totalRegistrados := 0

	for _, p := range erros {
		vistos := map[string]bool{}
		var distintos []string
		for _, e := range p.Erros {
			if e.Tipo == "" {
				continue
			}
			ocorrenciasPorTipo.add(e.Tipo)
			totalRegistrados++
			if !vistos[e.Tipo] {
				vistos[e.Tipo] = true
				distintos = append(distintos, e.Tipo)
			}
		}
		for _, tipo := range distintos {
			prontuariosPorTipo.add(tipo)
		}
	}

	resultado := []types.TipoErroDetalhado{}
	for _, tipo := range maisComuns(prontuariosPorTipo, -1) {
		qtdProntuarios := prontuariosPorTipo.contagem[tipo]
		ocorrencias := ocorrenciasPorTipo.contagem[tipo]
		resultado = append(resultado, types.TipoErroDetalhado{
			Tipo:               tipo,
			Nome:               cat.NomeTipo(tipo),
			ProntuariosComErro: qtdProntuarios,
			TaxaProntuarios:    round1(100 * float64(qtdProntuarios) / float64(totalComErro)),
			TotalOcorrencias:   ocorrencias,
			MediaPorProntuario: round1(float64(ocorrencias) / float64(qtdProntuarios)),
			Cor:                cat.CorTipo(tipo),
		})
	}

	gerais := types.StatsGeraisErros{
		TotalProntuariosComErro: totalComErro,
		TotalErrosRegistrados:   totalRegistrados,
		TotalTiposErro:          len(prontuariosPorTipo.ordem),
		MediaErrosPorProntuario: round1(float64(totalRegistrados) / float64(totalComErro)),
	}
	return resultado, gerais
}
