package types

// Erro is one typed error annotation attached to a prontuário, as exposed to
// the aggregation layer. Tipo carries the error-type code snapshotted at
// creation time; display names are resolved through the catalog at read time,
// never kept in sync with later catalog edits.
type Erro struct {
	ID                int    `json:"id"`
	ProntuarioID      int    `json:"prontuario_id,omitempty"`
	Tipo              string `json:"tipo"`
	Causa             string `json:"causa"`
	Quantidade        int    `json:"quantidade"`
	ResponsavelID     *int   `json:"responsavel_id"`
	ResponsavelNome   string `json:"responsavel_nome"`
	CategoriaErroID   *int   `json:"categoria_erro_id"`
	CategoriaErroNome string `json:"categoria_erro_nome"`
	DataCriacao       string `json:"data_criacao"`
}

// Prontuario is the flat, aggregation-ready view of one audit dossier.
// Date fields hold display strings (DD/MM/YYYY) except the creation/update
// timestamps, which are ISO (YYYY-MM-DD). TotalErros and TemErros are always
// derived from Erros by the projector.
type Prontuario struct {
	ID                    int      `json:"id"`
	Beneficiario          string   `json:"beneficiario"`
	Convenio              string   `json:"convenio"`
	Setor                 string   `json:"setor"`
	Atendimento           string   `json:"atendimento"`
	Admissao              string   `json:"admissao"`
	Alta                  string   `json:"alta"`
	Status                string   `json:"status"`
	Responsaveis          []string `json:"responsaveis"`
	DataErro              string   `json:"data_erro"`
	RecebimentoProntuario string   `json:"recebimento_prontuario"`
	DataConta             string   `json:"data_conta"`
	EnviadoFaturamento    string   `json:"enviado_faturamento"`
	Diarias               int      `json:"diarias"`
	FimAuditoria          string   `json:"fim_auditoria"`
	Observacao            string   `json:"observacao"`
	DataCriacao           string   `json:"data_criacao"`
	DataAtualizacao       string   `json:"data_atualizacao"`
	Erros                 []Erro   `json:"erros"`
	TotalErros            int      `json:"total_erros"`
	TemErros              bool     `json:"tem_erros"`
}

// ErroRow is the persisted shape of an annotation before projection:
// foreign keys unresolved, dates in whatever format the source stored.
type ErroRow struct {
	ID              int
	ProntuarioID    int
	Tipo            string
	Causa           string
	ResponsavelID   *int
	CategoriaErroID *int
	DataCriacao     string
}

// ProntuarioRow is the persisted shape of a dossier with its responsible-party
// names and annotations already eager-loaded by the snapshot provider.
type ProntuarioRow struct {
	ID                    int
	Beneficiario          string
	Convenio              string
	Setor                 string
	Atendimento           string
	Admissao              string
	Alta                  string
	Status                string
	Responsaveis          []string
	DataErro              string
	RecebimentoProntuario string
	DataConta             string
	EnviadoFaturamento    string
	Diarias               int
	FimAuditoria          string
	Observacao            string
	DataCriacao           string
	DataAtualizacao       string
	Erros                 []ErroRow
}
