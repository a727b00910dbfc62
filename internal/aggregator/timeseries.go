package aggregator

import (
	"fmt"
	"time"

	"audit-insights-go/internal/dates"
	"audit-insights-go/internal/types"
)

var mesAbrevPT = [13]string{
	"", "Jan", "Fev", "Mar", "Abr", "Mai", "Jun",
	"Jul", "Ago", "Set", "Out", "Nov", "Dez",
}

func diasNoMes(ano, mes int) int {
	return time.Date(ano, time.Month(mes)+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// dataBase is the instant a prontuário is bucketed by: its creation instant,
// reduced to a plain calendar date.
func dataBase(p types.Prontuario) (time.Time, bool) {
	t, ok := dates.Parse(p.DataCriacao)
	if !ok {
		return time.Time{}, false
	}
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), true
}

// ProdutividadeDiariaMes counts prontuários registered on each calendar day
// of the given month. Records falling outside the month are silently
// excluded. Labels are "DD/MM" in day order; TotalRegistrado sums Valores.
func ProdutividadeDiariaMes(ps []types.Prontuario, ano, mes int) types.TimeSeries {
	numDias := diasNoMes(ano, mes)
	labels := make([]string, numDias)
	valores := make([]int, numDias)
	for dia := 1; dia <= numDias; dia++ {
		labels[dia-1] = fmt.Sprintf("%02d/%02d", dia, mes)
	}

	total := 0
	for _, p := range ps {
		dt, ok := dataBase(p)
		if !ok || dt.Year() != ano || int(dt.Month()) != mes {
			continue
		}
		valores[dt.Day()-1]++
		total++
	}
	return types.TimeSeries{Labels: labels, Valores: valores, TotalRegistrado: total}
}

// ErrosTimelineMensal counts error annotations per calendar month over the
// trailing six months ending at agora's month (inclusive). It runs over the
// entire annotation history, independent of the dossier-level filter applied
// to the rest of the dashboard. Labels are "Abr/25" style.
func ErrosTimelineMensal(todosErros []types.Erro, agora time.Time) types.TimeSeries {
	labels := make([]string, 0, 6)
	valores := make([]int, 0, 6)

	for i := 5; i >= 0; i-- {
		ano := agora.Year()
		mes := int(agora.Month()) - i
		if mes <= 0 {
			mes += 12
			ano--
		}
		labels = append(labels, fmt.Sprintf("%s/%02d", mesAbrevPT[mes], ano%100))

		total := 0
		for _, e := range todosErros {
			if dt, ok := dates.Parse(e.DataCriacao); ok &&
				dt.Year() == ano && int(dt.Month()) == mes {
				total++
			}
		}
		valores = append(valores, total)
	}
	return types.TimeSeries{Labels: labels, Valores: valores}
}
