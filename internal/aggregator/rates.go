// Package aggregator holds the statistics engine of the audit dashboard:
// pure, deterministic functions over an already-filtered slice of projected
// prontuários. Nothing here mutates its input or touches I/O, so every
// function is safe to call concurrently with per-request inputs.
package aggregator

import (
	"fmt"
	"math"
	"sort"

	"audit-insights-go/internal/classify"
	"audit-insights-go/internal/types"
)

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func comErro(ps []types.Prontuario) []types.Prontuario {
	out := []types.Prontuario{}
	for _, p := range ps {
		if classify.TemErro(p) {
			out = append(out, p)
		}
	}
	return out
}

// contador counts keys while remembering first-encounter order, so ranking
// ties stay stable.
type contador struct {
	contagem map[string]int
	ordem    []string
}

func novoContador() *contador {
	return &contador{contagem: map[string]int{}}
}

func (c *contador) add(chave string) {
	if _, ok := c.contagem[chave]; !ok {
		c.ordem = append(c.ordem, chave)
	}
	c.contagem[chave]++
}

// taxaPorDimensao groups the error-bearing subset by a dimension classifier
// and emits one RateEntry per bucket, taxa relative to the error-bearing
// total, sorted by taxa descending with encounter order on ties.
func taxaPorDimensao(ps []types.Prontuario, dim func(types.Prontuario) string) []types.RateEntry {
	erros := comErro(ps)
	total := len(erros)
	if total == 0 {
		return []types.RateEntry{}
	}

	c := novoContador()
	for _, p := range erros {
		c.add(dim(p))
	}

	resultado := make([]types.RateEntry, 0, len(c.ordem))
	for _, nome := range c.ordem {
		qtd := c.contagem[nome]
		resultado = append(resultado, types.RateEntry{
			Nome:               nome,
			ProntuariosComErro: qtd,
			Taxa:               round1(100 * float64(qtd) / float64(total)),
		})
	}
	sort.SliceStable(resultado, func(i, j int) bool { return resultado[i].Taxa > resultado[j].Taxa })
	return resultado
}

// TaxaErrosSetor rates only the sectors that had error-bearing prontuários.
func TaxaErrosSetor(ps []types.Prontuario) []types.RateEntry {
	return taxaPorDimensao(ps, classify.Setor)
}

// TaxaErrosConvenio rates only the insurers that had error-bearing prontuários.
func TaxaErrosConvenio(ps []types.Prontuario) []types.RateEntry {
	return taxaPorDimensao(ps, classify.Convenio)
}

// TaxaErrosResponsavel rates responsáveis over the error-bearing subset.
// A prontuário with N responsáveis counts once toward each of the N buckets,
// and each entry carries the literal "count/total" participação string.
func TaxaErrosResponsavel(ps []types.Prontuario) []types.RateEntry {
	erros := comErro(ps)
	total := len(erros)
	if total == 0 {
		return []types.RateEntry{}
	}

	c := novoContador()
	for _, p := range erros {
		for _, responsavel := range p.Responsaveis {
			c.add(responsavel)
		}
	}

	resultado := make([]types.RateEntry, 0, len(c.ordem))
	for _, nome := range c.ordem {
		qtd := c.contagem[nome]
		resultado = append(resultado, types.RateEntry{
			Nome:               nome,
			ProntuariosComErro: qtd,
			Taxa:               round1(100 * float64(qtd) / float64(total)),
			Participacao:       fmt.Sprintf("%d/%d", qtd, total),
		})
	}
	sort.SliceStable(resultado, func(i, j int) bool { return resultado[i].Taxa > resultado[j].Taxa })
	return resultado
}
