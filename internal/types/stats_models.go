// internal/types/stats_models.go
package types

// --------------------------------------------
// Aggregation outputs (pure computed values)
// --------------------------------------------

// RateEntry is one dimension bucket (setor, convênio or responsável) in an
// error-rate table. Taxa is a percentage of the error-bearing subset.
// Participacao is only set by the responsável variant ("3/17" style).
type RateEntry struct {
	Nome               string  `json:"nome"`
	ProntuariosComErro int     `json:"prontuarios_com_erro"`
	Taxa               float64 `json:"taxa"`
	Participacao       string  `json:"participacao,omitempty"`
}

// RankingEntry is one row of a top-N ranking (motivos or causas).
type RankingEntry struct {
	Nome     string `json:"nome"`
	Contagem int    `json:"contagem"`
}

// TimeSeries is a chart-ready label/value pair list. TotalRegistrado is the
// sum of Valores for the daily productivity series; the monthly error
// timeline leaves it at zero.
type TimeSeries struct {
	Labels          []string `json:"labels"`
	Valores         []int    `json:"valores"`
	TotalRegistrado int      `json:"total_registrado,omitempty"`
}

// TipoErroDetalhado is the per-error-type breakdown row.
type TipoErroDetalhado struct {
	Tipo               string  `json:"tipo"`
	Nome               string  `json:"nome"`
	ProntuariosComErro int     `json:"prontuarios_com_erro"`
	TaxaProntuarios    float64 `json:"taxa_prontuarios"`
	TotalOcorrencias   int     `json:"total_ocorrencias"`
	MediaPorProntuario float64 `json:"media_por_prontuario"`
	Cor                string  `json:"cor"`
}

// StatsGeraisErros summarizes the whole error-bearing subset.
type StatsGeraisErros struct {
	TotalProntuariosComErro int     `json:"total_prontuarios_com_erro"`
	TotalErrosRegistrados   int     `json:"total_erros_registrados"`
	TotalTiposErro          int     `json:"total_tipos_erro"`
	MediaErrosPorProntuario float64 `json:"media_erros_por_prontuario"`
}

// --------------------------------------------
// Dashboard payload
// --------------------------------------------

// DashboardStats is the headline counter block of the dashboard. Field names
// are part of the consumer contract and must not change.
type DashboardStats struct {
	AguardandoAuditoria     int     `json:"aguardando_auditoria"`
	EmAuditoria             int     `json:"em_auditoria"`
	AguardandoCorrecao      int     `json:"aguardando_correcao"`
	Entregue                int     `json:"entregue"`
	TaxaErros               float64 `json:"taxa_erros"`
	MetaTaxaErros           float64 `json:"meta_taxa_erros"`
	TotalRegistradosMes     int     `json:"total_registrados_mes"`
	TempoMedioAuditoria     float64 `json:"tempo_medio_auditoria"`
	TaxaConclusao           float64 `json:"taxa_conclusao"`
	PercentualComErros      float64 `json:"percentual_com_erros"`
	MediaErrosPorProntuario float64 `json:"media_erros_por_prontuario"`
	TotalProntuariosComErro int     `json:"total_prontuarios_com_erro"`
	TotalErrosRegistrados   int     `json:"total_erros_registrados"`
	TotalTiposErro          int     `json:"total_tipos_erro"`
}

// Dashboard is the full assembled statistics payload delivered to the
// rendering/API layer.
type Dashboard struct {
	PeriodoInfo            string              `json:"periodo_info"`
	Stats                  DashboardStats      `json:"stats"`
	StatsResponsavel       []RateEntry         `json:"stats_responsavel"`
	StatsConvenio          []RateEntry         `json:"stats_convenio"`
	StatsTopMotivos        []RankingEntry      `json:"stats_top_motivos"`
	StatsTopCausas         []RankingEntry      `json:"stats_top_causas"`
	StatsTopSetores        []RateEntry         `json:"stats_top_setores"`
	StatsMotivosDetalhados []TipoErroDetalhado `json:"stats_motivos_detalhados"`
	StatsGeraisErros       StatsGeraisErros    `json:"stats_gerais_erros"`
	ProdutividadeMes       TimeSeries          `json:"dados_grafico_produtividade"`
	ErrosMensais           TimeSeries          `json:"dados_erros_mensais"`
}

// RelatorioStats is the flat counter view used by the reports screen.
// TotalPorStatus is keyed by display status name, ErrosPorTipo by error-type
// code (dossier presence count, deduplicated per dossier).
type RelatorioStats struct {
	TotalPorStatus          map[string]int `json:"total_por_status"`
	ErrosPorTipo            map[string]int `json:"erros_por_tipo"`
	Convenios               map[string]int `json:"convenios"`
	Setores                 map[string]int `json:"setores"`
	TotalProntuariosComErro int            `json:"total_prontuarios_com_erro"`
}
