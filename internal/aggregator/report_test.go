package aggregator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"audit-insights-go/internal/types"
)

func TestRelatorio(t *testing.T) {
	ps := []types.Prontuario{
		{Status: "Aguardando Auditoria", Convenio: "Unimed", Setor: "UTI"},
		{Status: "em auditoria", Convenio: "Unimed", Setor: "UTI",
			Erros: []types.Erro{erro("A", "x"), erro("A", "y"), erro("B", "z")}},
		{Status: "Entregue ao Faturamento", Convenio: "Amil", Setor: "Internação",
			Erros: []types.Erro{erro("A", "x")}},
		{Status: "", Convenio: "Bradesco Saúde", Setor: "UTI"}, // blank status skipped entirely
	}

	stats := Relatorio(ps)

	require.Len(t, stats.TotalPorStatus, 5, "every workflow status appears")
	assert.Equal(t, 1, stats.TotalPorStatus["Aguardando Auditoria"])
	assert.Equal(t, 1, stats.TotalPorStatus["Em Auditoria"])
	assert.Equal(t, 0, stats.TotalPorStatus["Aguardando Correção"])
	assert.Equal(t, 0, stats.TotalPorStatus["Aguardando Revisão"])
	assert.Equal(t, 1, stats.TotalPorStatus["Entregue ao Faturamento"])

	assert.Equal(t, 2, stats.ErrosPorTipo["A"], "dossier presence count, deduplicated")
	assert.Equal(t, 1, stats.ErrosPorTipo["B"])

	assert.Equal(t, 2, stats.Convenios["Unimed"])
	assert.Equal(t, 1, stats.Convenios["Amil"])
	assert.NotContains(t, stats.Convenios, "Bradesco Saúde", "blank-status record contributes nothing")
	assert.Equal(t, 2, stats.Setores["UTI"])

	assert.Equal(t, 2, stats.TotalProntuariosComErro)
}

func TestRelatorioVazio(t *testing.T) {
	stats := Relatorio(nil)
	require.Len(t, stats.TotalPorStatus, 5)
	for _, v := range stats.TotalPorStatus {
		assert.Equal(t, 0, v)
	}
	assert.Empty(t, stats.ErrosPorTipo)
	assert.Equal(t, 0, stats.TotalProntuariosComErro)
}
