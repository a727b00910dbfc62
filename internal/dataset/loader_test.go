package dataset

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func writeSheet(t *testing.T, f *excelize.File, sheet string, rows [][]interface{}) {
	t.Helper()
	_, err := f.NewSheet(sheet)
	require.NoError(t, err)
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow(sheet, cell, &row))
	}
}

func writeWorkbook(t *testing.T) string {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()

	writeSheet(t, f, SheetProntuarios, [][]interface{}{
		{"id", "beneficiario", "convenio", "setor", "atendimento", "status", "responsaveis", "admissao", "alta", "recebimento_prontuario", "enviado_faturamento", "diarias", "data_criacao"},
		{1, "Maria Silva", "Unimed", "UTI", "AT-001", "Em Auditoria", "Ana; Bruno", "01/12/2024", "10/12/2024", "11/12/2024", "", 9, "2024-12-11"},
		{2, "João Souza", "Amil", "Internação", "AT-002", "Entregue ao Faturamento", "", "", "", "", "", 0, "2024-12-15"},
		{"", "linha sem id, ignorada"},
	})
	writeSheet(t, f, SheetErros, [][]interface{}{
		{"id", "prontuario_id", "tipo", "causa", "responsavel_id", "categoria_erro_id", "data_criacao"},
		{1, 1, "documentacao", "Carimbo em falta", 1, 10, "2024-12-12"},
		{2, 1, "prazo", "Entrega atrasada", "", "", "2024-12-13"},
		{3, 999, "documentacao", "Sem prontuário correspondente", "", "", ""},
	})
	writeSheet(t, f, SheetTiposErro, [][]interface{}{
		{"id", "nome", "descricao", "cor", "status"},
		{1, "documentacao", "Documentação", "#0d6efd", "ativo"},
	})
	writeSheet(t, f, SheetCausas, [][]interface{}{
		{"id", "tipo", "nome", "status"},
		{1, "documentacao", "Carimbo em falta", "ativo"},
	})
	writeSheet(t, f, SheetResponsaveis, [][]interface{}{
		{"id", "nome", "status"},
		{1, "Ana", "ativo"},
	})
	writeSheet(t, f, SheetCategorias, [][]interface{}{
		{"id", "codigo", "nome", "status", "responsaveis"},
		{10, "assistencial", "Assistencial", "ativo", "1"},
	})

	path := filepath.Join(t.TempDir(), "snapshot.xlsx")
	require.NoError(t, f.SaveAs(path))
	return path
}

func TestLoad(t *testing.T) {
	snap, err := Load(writeWorkbook(t))
	require.NoError(t, err)

	require.Len(t, snap.Rows, 2)

	r := snap.Rows[0]
	assert.Equal(t, 1, r.ID)
	assert.Equal(t, "Maria Silva", r.Beneficiario)
	assert.Equal(t, "Unimed", r.Convenio)
	assert.Equal(t, []string{"Ana", "Bruno"}, r.Responsaveis, "names split on semicolon and trimmed")
	assert.Equal(t, 9, r.Diarias)
	require.Len(t, r.Erros, 2)
	assert.Equal(t, "documentacao", r.Erros[0].Tipo)
	require.NotNil(t, r.Erros[0].ResponsavelID)
	assert.Equal(t, 1, *r.Erros[0].ResponsavelID)
	assert.Nil(t, r.Erros[1].ResponsavelID, "blank foreign keys stay nil")

	r = snap.Rows[1]
	assert.Equal(t, 2, r.ID)
	assert.Empty(t, r.Responsaveis)
	assert.Empty(t, r.Erros)

	assert.Equal(t, "Documentação", snap.Catalog.NomeTipo("documentacao"))
	assert.Equal(t, "#0d6efd", snap.Catalog.CorTipo("documentacao"))
	nome, ok := snap.Catalog.NomeResponsavel(1)
	require.True(t, ok)
	assert.Equal(t, "Ana", nome)
	assert.True(t, snap.Catalog.PodeAtribuir(1, "assistencial"))

	tipo, ok := snap.Catalog.TipoErro("documentacao")
	require.True(t, ok)
	require.Len(t, tipo.Causas, 1)
	assert.Equal(t, "Carimbo em falta", tipo.Causas[0].Nome)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.xlsx"))
	assert.Error(t, err)
}
