package catalog

// The lookup tables the aggregation core resolves display data through:
// the error-type catalog keyed by the same code snapshotted on annotations,
// the error categories and the responsible parties, with the many-to-many
// link restricting which responsável may take which category. Lookup misses
// are normal and fall back to sentinels — catalog edits never invalidate
// historical annotations.

// CorPadrao is the fallback color for an error type missing from the catalog.
const CorPadrao = "#6c757d"

// Ativo marks a catalog entry as active; inactive entries stay resolvable for
// historical data but are hidden from assignment lookups.
const Ativo = "ativo"

type Causa struct {
	ID     int    `json:"id"`
	Nome   string `json:"nome"`
	Status string `json:"status"`
}

// TipoErro is one catalog entry. Nome is the identifying code (e.g. "01.01"
// or "documentacao"), Descricao the friendly display name.
type TipoErro struct {
	ID        int     `json:"id"`
	Nome      string  `json:"nome"`
	Descricao string  `json:"descricao"`
	Cor       string  `json:"cor"`
	Status    string  `json:"status"`
	Causas    []Causa `json:"causas"`
}

type Responsavel struct {
	ID     int    `json:"id"`
	Nome   string `json:"nome"`
	Status string `json:"status"`
}

type CategoriaErro struct {
	ID     int    `json:"id"`
	Codigo string `json:"codigo"`
	Nome   string `json:"nome"`
	Status string `json:"status"`
}

// Catalog bundles every lookup table, indexed for O(1) resolution.
type Catalog struct {
	tipos        map[string]TipoErro
	responsaveis map[int]Responsavel
	categorias   map[string]CategoriaErro
	categoriasID map[int]CategoriaErro

	// categoria código -> responsável ids allowed to take it
	vinculos map[string][]int
}

func New() *Catalog {
	return &Catalog{
		tipos:        map[string]TipoErro{},
		responsaveis: map[int]Responsavel{},
		categorias:   map[string]CategoriaErro{},
		categoriasID: map[int]CategoriaErro{},
		vinculos:     map[string][]int{},
	}
}

func (c *Catalog) AddTipoErro(t TipoErro) {
	c.tipos[t.Nome] = t
}

func (c *Catalog) AddResponsavel(r Responsavel) {
	c.responsaveis[r.ID] = r
}

func (c *Catalog) AddCategoria(cat CategoriaErro) {
	c.categorias[cat.Codigo] = cat
	c.categoriasID[cat.ID] = cat
}

// Vincular allows responsável id to be assigned errors of the given category.
func (c *Catalog) Vincular(categoriaCodigo string, responsavelID int) {
	c.vinculos[categoriaCodigo] = append(c.vinculos[categoriaCodigo], responsavelID)
}

// TipoErro resolves an error-type code; ok is false on a catalog miss.
func (c *Catalog) TipoErro(codigo string) (TipoErro, bool) {
	t, ok := c.tipos[codigo]
	return t, ok
}

// NomeTipo resolves the friendly name of an error-type code, falling back to
// the raw code when unknown.
func (c *Catalog) NomeTipo(codigo string) string {
	if t, ok := c.tipos[codigo]; ok && t.Descricao != "" {
		return t.Descricao
	}
	return codigo
}

// CorTipo resolves the display color of an error-type code.
func (c *Catalog) CorTipo(codigo string) string {
	if t, ok := c.tipos[codigo]; ok && t.Cor != "" {
		return t.Cor
	}
	return CorPadrao
}

// NomeResponsavel resolves a responsável id to its display name.
func (c *Catalog) NomeResponsavel(id int) (string, bool) {
	r, ok := c.responsaveis[id]
	if !ok {
		return "", false
	}
	return r.Nome, true
}

// NomeCategoria resolves a categoria id to its display name.
func (c *Catalog) NomeCategoria(id int) (string, bool) {
	cat, ok := c.categoriasID[id]
	if !ok {
		return "", false
	}
	return cat.Nome, true
}

// CategoriasPorResponsavel lists the active categories a responsável may be
// assigned, in catalog insertion-independent (code-linked) order.
func (c *Catalog) CategoriasPorResponsavel(responsavelID int) []CategoriaErro {
	out := []CategoriaErro{}
	for codigo, ids := range c.vinculos {
		cat, ok := c.categorias[codigo]
		if !ok || cat.Status != Ativo {
			continue
		}
		for _, id := range ids {
			if id == responsavelID {
				out = append(out, cat)
				break
			}
		}
	}
	return out
}

// ResponsaveisPorCategoria lists the active responsáveis allowed for an
// active category code.
func (c *Catalog) ResponsaveisPorCategoria(codigo string) []Responsavel {
	out := []Responsavel{}
	cat, ok := c.categorias[codigo]
	if !ok || cat.Status != Ativo {
		return out
	}
	for _, id := range c.vinculos[codigo] {
		if r, ok := c.responsaveis[id]; ok && r.Status == Ativo {
			out = append(out, r)
		}
	}
	return out
}

// PodeAtribuir reports whether a responsável may take errors of a category.
func (c *Catalog) PodeAtribuir(responsavelID int, categoriaCodigo string) bool {
	for _, id := range c.vinculos[categoriaCodigo] {
		if id == responsavelID {
			return true
		}
	}
	return false
}
