package aggregator

import (
	"sort"

	"audit-insights-go/internal/catalog"
	"audit-insights-go/internal/classify"
	"audit-insights-go/internal/types"
)

// TopLimitPadrao is the ranking size the dashboard shows.
const TopLimitPadrao = 5

// Fallback labels for annotations missing their type or cause.
const (
	motivoDesconhecido = "Desconhecido"
	causaDesconhecida  = "Desconhecida"
)

// TopErros builds the two dashboard rankings over the error-bearing subset.
// Motivos count dossier presence: a prontuário with three annotations of the
// same tipo contributes one, not three. Causas count every annotation.
// Motivo codes resolve to their friendly catalog name; misses keep the code.
func TopErros(ps []types.Prontuario, cat *catalog.Catalog, limit int) (motivos, causas []types.RankingEntry) {
	contagemMotivos := novoContador()
	contagemCausas := novoContador()

	for _, p := range ps {
		if !classify.TemErro(p) {
			continue
		}
		vistos := map[string]bool{}
		var distintos []string
		for _, e := range p.Erros {
			motivo := e.Tipo
			if motivo == "" {
				motivo = motivoDesconhecido
			}
			causa := e.Causa
			if causa == "" {
				causa = causaDesconhecida
			}
			contagemCausas.add(causa)
			if !vistos[motivo] {
				vistos[motivo] = true
				distintos = append(distintos, motivo)
			}
		}
		for _, motivo := range distintos {
			contagemMotivos.add(motivo)
		}
	}

	motivos = []types.RankingEntry{}
	for _, codigo := range maisComuns(contagemMotivos, limit) {
		motivos = append(motivos, types.RankingEntry{
			Nome:     cat.NomeTipo(codigo),
			Contagem: contagemMotivos.contagem[codigo],
		})
	}
	causas = []types.RankingEntry{}
	for _, causa := range maisComuns(contagemCausas, limit) {
		causas = append(causas, types.RankingEntry{
			Nome:     causa,
			Contagem: contagemCausas.contagem[causa],
		})
	}
	return motivos, causas
}

// maisComuns returns up to limit keys ordered by descending count, keeping
// first-encounter order on ties.
func maisComuns(c *contador, limit int) []string {
	chaves := make([]string, len(c.ordem))
	copy(chaves, c.ordem)
	sort.SliceStable(chaves, func(i, j int) bool {
		return c.contagem[chaves[i]] > c.contagem[chaves[j]]
	})
	if limit >= 0 && len(chaves) > limit {
		chaves = chaves[:limit]
	}
	return chaves
}
