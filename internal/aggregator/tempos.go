package aggregator

import (
	"audit-insights-go/internal/dates"
	"audit-insights-go/internal/types"
)

// TemposMedios holds average workflow durations in days. Only the audit leg
// (record receipt to sent-to-billing) is measurable from the stored dates;
// the other legs stay zero until their timestamps exist in the data.
type TemposMedios struct {
	Aguardando float64 `json:"aguardando"`
	Auditoria  float64 `json:"auditoria"`
	Correcao   float64 `json:"correcao"`
	Total      float64 `json:"total"`
}

// CalcTemposMedios averages the receipt-to-billing turnaround over the
// prontuários that have both dates.
func CalcTemposMedios(ps []types.Prontuario) TemposMedios {
	totalDias, n := 0, 0
	for _, p := range ps {
		_, okRec := dates.Parse(p.RecebimentoProntuario)
		_, okEnv := dates.Parse(p.EnviadoFaturamento)
		if okRec && okEnv {
			n++
			totalDias += dates.DiffDays(p.RecebimentoProntuario, p.EnviadoFaturamento)
		}
	}
	if n == 0 {
		return TemposMedios{}
	}
	media := round1(float64(totalDias) / float64(n))
	return TemposMedios{Auditoria: media, Total: media}
}
