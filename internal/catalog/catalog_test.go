package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildCatalog() *Catalog {
	c := New()
	c.AddTipoErro(TipoErro{ID: 1, Nome: "documentacao", Descricao: "Documentação", Cor: "#0d6efd", Status: Ativo})
	c.AddTipoErro(TipoErro{ID: 2, Nome: "prazo", Status: Ativo})
	c.AddResponsavel(Responsavel{ID: 1, Nome: "Ana", Status: Ativo})
	c.AddResponsavel(Responsavel{ID: 2, Nome: "Bruno", Status: "inativo"})
	c.AddCategoria(CategoriaErro{ID: 10, Codigo: "assistencial", Nome: "Assistencial", Status: Ativo})
	c.AddCategoria(CategoriaErro{ID: 11, Codigo: "administrativa", Nome: "Administrativa", Status: "inativo"})
	c.Vincular("assistencial", 1)
	c.Vincular("assistencial", 2)
	c.Vincular("administrativa", 1)
	return c
}

func TestNomeTipoResolution(t *testing.T) {
	c := buildCatalog()
	assert.Equal(t, "Documentação", c.NomeTipo("documentacao"))
	assert.Equal(t, "prazo", c.NomeTipo("prazo"), "entry without descrição keeps the code")
	assert.Equal(t, "inexistente", c.NomeTipo("inexistente"), "catalog miss keeps the code")
}

func TestCorTipoFallback(t *testing.T) {
	c := buildCatalog()
	assert.Equal(t, "#0d6efd", c.CorTipo("documentacao"))
	assert.Equal(t, CorPadrao, c.CorTipo("prazo"))
	assert.Equal(t, CorPadrao, c.CorTipo("inexistente"))
}

func TestResolucaoResponsavelCategoria(t *testing.T) {
	c := buildCatalog()

	nome, ok := c.NomeResponsavel(1)
	require.True(t, ok)
	assert.Equal(t, "Ana", nome)

	_, ok = c.NomeResponsavel(99)
	assert.False(t, ok)

	nome, ok = c.NomeCategoria(10)
	require.True(t, ok)
	assert.Equal(t, "Assistencial", nome)

	_, ok = c.NomeCategoria(99)
	assert.False(t, ok)
}

func TestCategoriasPorResponsavel(t *testing.T) {
	c := buildCatalog()

	cats := c.CategoriasPorResponsavel(1)
	require.Len(t, cats, 1, "inactive categories are hidden")
	assert.Equal(t, "assistencial", cats[0].Codigo)

	assert.Empty(t, c.CategoriasPorResponsavel(99))
}

func TestResponsaveisPorCategoria(t *testing.T) {
	c := buildCatalog()

	resps := c.ResponsaveisPorCategoria("assistencial")
	require.Len(t, resps, 1, "inactive responsáveis are hidden")
	assert.Equal(t, "Ana", resps[0].Nome)

	assert.Empty(t, c.ResponsaveisPorCategoria("administrativa"), "inactive category")
	assert.Empty(t, c.ResponsaveisPorCategoria("inexistente"))
}

func TestPodeAtribuir(t *testing.T) {
	c := buildCatalog()
	assert.True(t, c.PodeAtribuir(1, "assistencial"))
	assert.True(t, c.PodeAtribuir(2, "assistencial"))
	assert.False(t, c.PodeAtribuir(2, "administrativa"))
	assert.False(t, c.PodeAtribuir(1, "inexistente"))
}
