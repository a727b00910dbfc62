package projector

import (
	"audit-insights-go/internal/catalog"
	"audit-insights-go/internal/dates"
	"audit-insights-go/internal/logger"
	"audit-insights-go/internal/types"
)

// Sentinel display labels for unresolved annotation references.
const (
	NaoAtribuido    = "Não atribuído"
	NaoCategorizado = "Não categorizado"
)

// Project converts a persisted dossier row into the flat view the aggregators
// consume. One malformed row must never abort aggregation of a whole result
// set, so any panic while projecting collapses into a degraded view that
// keeps identity and dimension fields but drops errors and responsáveis.
func Project(row types.ProntuarioRow, cat *catalog.Catalog) (p types.Prontuario) {
	defer func() {
		if r := recover(); r != nil {
			logger.New().
				WithField("component", "projector").
				WithField("prontuario_id", row.ID).
				WithField("panic", r).
				Error("projection failed, returning degraded view")
			p = degraded(row)
		}
	}()

	erros := []types.Erro{}
	for _, e := range row.Erros {
		erros = append(erros, projectErro(e, cat))
	}

	responsaveis := row.Responsaveis
	if responsaveis == nil {
		responsaveis = []string{}
	}

	return types.Prontuario{
		ID:                    row.ID,
		Beneficiario:          row.Beneficiario,
		Convenio:              row.Convenio,
		Setor:                 row.Setor,
		Atendimento:           row.Atendimento,
		Admissao:              dates.FormatBR(row.Admissao),
		Alta:                  dates.FormatBR(row.Alta),
		Status:                row.Status,
		Responsaveis:          responsaveis,
		DataErro:              dates.FormatBR(row.DataErro),
		RecebimentoProntuario: dates.FormatBR(row.RecebimentoProntuario),
		DataConta:             dates.FormatBR(row.DataConta),
		EnviadoFaturamento:    dates.FormatBR(row.EnviadoFaturamento),
		Diarias:               row.Diarias,
		FimAuditoria:          dates.FormatBR(row.FimAuditoria),
		Observacao:            row.Observacao,
		DataCriacao:           dates.FormatISO(row.DataCriacao),
		DataAtualizacao:       dates.FormatISO(row.DataAtualizacao),
		Erros:                 erros,
		TotalErros:            len(erros),
		TemErros:              len(erros) > 0,
	}
}

// ProjectAll projects a snapshot in order.
func ProjectAll(rows []types.ProntuarioRow, cat *catalog.Catalog) []types.Prontuario {
	out := make([]types.Prontuario, 0, len(rows))
	for _, row := range rows {
		out = append(out, Project(row, cat))
	}
	return out
}

func projectErro(e types.ErroRow, cat *catalog.Catalog) types.Erro {
	responsavelNome := NaoAtribuido
	if e.ResponsavelID != nil {
		if nome, ok := cat.NomeResponsavel(*e.ResponsavelID); ok {
			responsavelNome = nome
		}
	}
	categoriaNome := NaoCategorizado
	if e.CategoriaErroID != nil {
		if nome, ok := cat.NomeCategoria(*e.CategoriaErroID); ok {
			categoriaNome = nome
		}
	}
	return types.Erro{
		ID:                e.ID,
		ProntuarioID:      e.ProntuarioID,
		Tipo:              e.Tipo,
		Causa:             e.Causa,
		Quantidade:        1,
		ResponsavelID:     e.ResponsavelID,
		ResponsavelNome:   responsavelNome,
		CategoriaErroID:   e.CategoriaErroID,
		CategoriaErroNome: categoriaNome,
		DataCriacao:       dates.FormatISO(e.DataCriacao),
	}
}

func degraded(row types.ProntuarioRow) types.Prontuario {
	return types.Prontuario{
		ID:           row.ID,
		Beneficiario: row.Beneficiario,
		Convenio:     row.Convenio,
		Setor:        row.Setor,
		Atendimento:  row.Atendimento,
		Status:       row.Status,
		Responsaveis: []string{},
		Erros:        []types.Erro{},
		TotalErros:   0,
		TemErros:     false,
	}
}
