package aggregator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"audit-insights-go/internal/catalog"
	"audit-insights-go/internal/types"
)

func TestTopErrosDedupPorProntuario(t *testing.T) {
	motivos, causas := TopErros(cenarioBase(), catalog.New(), TopLimitPadrao)

	// prontuário 2 carries two "A" annotations but counts once for the motivo
	require.Len(t, motivos, 2)
	assert.Equal(t, types.RankingEntry{Nome: "A", Contagem: 1}, motivos[0])
	assert.Equal(t, types.RankingEntry{Nome: "B", Contagem: 1}, motivos[1])

	// causas count every annotation
	require.Len(t, causas, 2)
	assert.Equal(t, types.RankingEntry{Nome: "x", Contagem: 2}, causas[0])
	assert.Equal(t, types.RankingEntry{Nome: "y", Contagem: 1}, causas[1])
}

func TestTopErrosResolveNomeAmigavel(t *testing.T) {
	cat := catalog.New()
	cat.AddTipoErro(catalog.TipoErro{Nome: "A", Descricao: "Documentação", Status: catalog.Ativo})

	motivos, _ := TopErros(cenarioBase(), cat, TopLimitPadrao)
	require.Len(t, motivos, 2)
	assert.Equal(t, "Documentação", motivos[0].Nome)
	assert.Equal(t, "B", motivos[1].Nome, "catalog miss keeps the raw code")
}

func TestTopErrosLimite(t *testing.T) {
	ps := []types.Prontuario{
		{Erros: []types.Erro{erro("A", "a1")}},
		{Erros: []types.Erro{erro("B", "b1")}},
		{Erros: []types.Erro{erro("C", "c1")}},
		{Erros: []types.Erro{erro("A", "a1")}},
	}
	motivos, causas := TopErros(ps, catalog.New(), 2)
	require.Len(t, motivos, 2)
	assert.Equal(t, types.RankingEntry{Nome: "A", Contagem: 2}, motivos[0])
	assert.Equal(t, types.RankingEntry{Nome: "B", Contagem: 1}, motivos[1], "tie keeps encounter order")
	require.Len(t, causas, 2)
	assert.Equal(t, types.RankingEntry{Nome: "a1", Contagem: 2}, causas[0])
}

func TestTopErrosAnotacoesSemTipoOuCausa(t *testing.T) {
	ps := []types.Prontuario{
		{Erros: []types.Erro{{Tipo: "", Causa: ""}}},
	}
	motivos, causas := TopErros(ps, catalog.New(), TopLimitPadrao)
	require.Len(t, motivos, 1)
	assert.Equal(t, "Desconhecido", motivos[0].Nome)
	require.Len(t, causas, 1)
	assert.Equal(t, "Desconhecida", causas[0].Nome)
}

func TestTopErrosVazio(t *testing.T) {
	motivos, causas := TopErros(nil, catalog.New(), TopLimitPadrao)
	assert.Empty(t, motivos)
	assert.Empty(t, causas)

	motivos, causas = TopErros([]types.Prontuario{{ID: 1}}, catalog.New(), TopLimitPadrao)
	assert.Empty(t, motivos)
	assert.Empty(t, causas)
}

// Motivo counts are bounded by the error-bearing dossier count while causa
// counts follow raw occurrences, so they diverge whenever a dossier repeats
// a type.
func TestTopErrosContagensDivergem(t *testing.T) {
	ps := []types.Prontuario{
		{Erros: []types.Erro{erro("A", "x"), erro("A", "x"), erro("A", "x")}},
	}
	motivos, causas := TopErros(ps, catalog.New(), TopLimitPadrao)
	require.Len(t, motivos, 1)
	require.Len(t, causas, 1)
	assert.Equal(t, 1, motivos[0].Contagem)
	assert.Equal(t, 3, causas[0].Contagem)
}
