package dataset

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"audit-insights-go/internal/catalog"
	"audit-insights-go/internal/logger"
	"audit-insights-go/internal/types"
)

// Snapshot is one consistent read of the audit base: every dossier row with
// its annotations eager-loaded, plus the catalog the projector and the
// aggregators resolve display data through.
type Snapshot struct {
	Rows    []types.ProntuarioRow
	Catalog *catalog.Catalog
}

// Workbook sheet names.
const (
	SheetProntuarios  = "Prontuarios"
	SheetErros        = "Erros"
	SheetTiposErro    = "TiposErro"
	SheetCausas       = "Causas"
	SheetResponsaveis = "Responsaveis"
	SheetCategorias   = "Categorias"
)

// Load reads a snapshot workbook. The Prontuarios and Erros sheets are
// required; catalog sheets are optional and simply leave lookups to fall back
// to sentinels. Rows missing an id are skipped quietly.
func Load(path string) (*Snapshot, error) {
	log := logger.New().WithField("component", "dataset.loader").WithField("path", path)
	log.Info("opening snapshot workbook")

	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open file: %w", err)
	}
	defer f.Close()

	cat := catalog.New()
	loadTiposErro(f, cat)
	loadResponsaveis(f, cat)
	loadCategorias(f, cat)

	errosPorProntuario, err := loadErros(f)
	if err != nil {
		return nil, err
	}

	rows, err := loadProntuarios(f, errosPorProntuario)
	if err != nil {
		return nil, err
	}

	log.WithField("prontuarios", len(rows)).Info("snapshot loaded")
	return &Snapshot{Rows: rows, Catalog: cat}, nil
}

// sheetRows returns the data rows of a sheet plus a header-name -> column
// index map (headers lowercased and trimmed).
func sheetRows(f *excelize.File, sheet string) ([][]string, map[string]int, error) {
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, nil, fmt.Errorf("read sheet %s: %w", sheet, err)
	}
	if len(rows) == 0 {
		return nil, map[string]int{}, nil
	}
	cols := map[string]int{}
	for i, h := range rows[0] {
		cols[strings.ToLower(strings.TrimSpace(h))] = i
	}
	return rows[1:], cols, nil
}

func cell(row []string, cols map[string]int, name string) string {
	i, ok := cols[name]
	if !ok || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

func cellInt(row []string, cols map[string]int, name string) int {
	v, _ := strconv.Atoi(cell(row, cols, name))
	return v
}

func cellIntPtr(row []string, cols map[string]int, name string) *int {
	s := cell(row, cols, name)
	if s == "" {
		return nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return nil
	}
	return &v
}

func loadProntuarios(f *excelize.File, erros map[int][]types.ErroRow) ([]types.ProntuarioRow, error) {
	rows, cols, err := sheetRows(f, SheetProntuarios)
	if err != nil {
		return nil, err
	}
	out := []types.ProntuarioRow{}
	for _, r := range rows {
		id := cellInt(r, cols, "id")
		if id == 0 {
			continue
		}
		var responsaveis []string
		for _, nome := range strings.Split(cell(r, cols, "responsaveis"), ";") {
			if nome = strings.TrimSpace(nome); nome != "" {
				responsaveis = append(responsaveis, nome)
			}
		}
		out = append(out, types.ProntuarioRow{
			ID:                    id,
			Beneficiario:          cell(r, cols, "beneficiario"),
			Convenio:              cell(r, cols, "convenio"),
			Setor:                 cell(r, cols, "setor"),
			Atendimento:           cell(r, cols, "atendimento"),
			Admissao:              cell(r, cols, "admissao"),
			Alta:                  cell(r, cols, "alta"),
			Status:                cell(r, cols, "status"),
			Responsaveis:          responsaveis,
			DataErro:              cell(r, cols, "data_erro"),
			RecebimentoProntuario: cell(r, cols, "recebimento_prontuario"),
			DataConta:             cell(r, cols, "data_conta"),
			EnviadoFaturamento:    cell(r, cols, "enviado_faturamento"),
			Diarias:               cellInt(r, cols, "diarias"),
			FimAuditoria:          cell(r, cols, "fim_auditoria"),
			Observacao:            cell(r, cols, "observacao"),
			DataCriacao:           cell(r, cols, "data_criacao"),
			DataAtualizacao:       cell(r, cols, "data_atualizacao"),
			Erros:                 erros[id],
		})
	}
	return out, nil
}

func loadErros(f *excelize.File) (map[int][]types.ErroRow, error) {
	rows, cols, err := sheetRows(f, SheetErros)
	if err != nil {
		return nil, err
	}
	out := map[int][]types.ErroRow{}
	for _, r := range rows {
		id := cellInt(r, cols, "id")
		prontuarioID := cellInt(r, cols, "prontuario_id")
		if id == 0 || prontuarioID == 0 {
			continue
		}
		out[prontuarioID] = append(out[prontuarioID], types.ErroRow{
			ID:              id,
			ProntuarioID:    prontuarioID,
			Tipo:            cell(r, cols, "tipo"),
			Causa:           cell(r, cols, "causa"),
			ResponsavelID:   cellIntPtr(r, cols, "responsavel_id"),
			CategoriaErroID: cellIntPtr(r, cols, "categoria_erro_id"),
			DataCriacao:     cell(r, cols, "data_criacao"),
		})
	}
	return out, nil
}

func loadTiposErro(f *excelize.File, cat *catalog.Catalog) {
	rows, cols, err := sheetRows(f, SheetTiposErro)
	if err != nil {
		return
	}
	causas := loadCausas(f)
	for _, r := range rows {
		nome := cell(r, cols, "nome")
		if nome == "" {
			continue
		}
		cat.AddTipoErro(catalog.TipoErro{
			ID:        cellInt(r, cols, "id"),
			Nome:      nome,
			Descricao: cell(r, cols, "descricao"),
			Cor:       cell(r, cols, "cor"),
			Status:    cell(r, cols, "status"),
			Causas:    causas[nome],
		})
	}
}

func loadCausas(f *excelize.File) map[string][]catalog.Causa {
	rows, cols, err := sheetRows(f, SheetCausas)
	if err != nil {
		return map[string][]catalog.Causa{}
	}
	out := map[string][]catalog.Causa{}
	for _, r := range rows {
		tipo := cell(r, cols, "tipo")
		nome := cell(r, cols, "nome")
		if tipo == "" || nome == "" {
			continue
		}
		out[tipo] = append(out[tipo], catalog.Causa{
			ID:     cellInt(r, cols, "id"),
			Nome:   nome,
			Status: cell(r, cols, "status"),
		})
	}
	return out
}

func loadResponsaveis(f *excelize.File, cat *catalog.Catalog) {
	rows, cols, err := sheetRows(f, SheetResponsaveis)
	if err != nil {
		return
	}
	for _, r := range rows {
		id := cellInt(r, cols, "id")
		if id == 0 {
			continue
		}
		cat.AddResponsavel(catalog.Responsavel{
			ID:     id,
			Nome:   cell(r, cols, "nome"),
			Status: cell(r, cols, "status"),
		})
	}
}

func loadCategorias(f *excelize.File, cat *catalog.Catalog) {
	rows, cols, err := sheetRows(f, SheetCategorias)
	if err != nil {
		return
	}
	for _, r := range rows {
		codigo := cell(r, cols, "codigo")
		if codigo == "" {
			continue
		}
		cat.AddCategoria(catalog.CategoriaErro{
			ID:     cellInt(r, cols, "id"),
			Codigo: codigo,
			Nome:   cell(r, cols, "nome"),
			Status: cell(r, cols, "status"),
		})
		for _, s := range strings.Split(cell(r, cols, "responsaveis"), ";") {
			if id, err := strconv.Atoi(strings.TrimSpace(s)); err == nil {
				cat.Vincular(codigo, id)
			}
		}
	}
}
