package filter

import (
	"fmt"
	"strconv"
	"time"

	"audit-insights-go/internal/dates"
	"audit-insights-go/internal/types"
)

// Filtro is the dashboard's time-window selection, straight from query
// parameters. An explicit DataInicio/DataFim range overrides Periodo;
// Ano/Mes apply on top of either.
type Filtro struct {
	Ano        string
	Mes        string
	Periodo    string
	DataInicio string
	DataFim    string
}

var periodos = map[string]string{
	"hoje":      "Hoje",
	"ontem":     "Ontem",
	"semana":    "Última semana",
	"mes":       "Este Mês",
	"trimestre": "Este Trimestre",
	"ano":       "Este Ano",
	"todos":     "Todos os períodos",
}

var mesesPT = map[string]string{
	"01": "Janeiro", "02": "Fevereiro", "03": "Março", "04": "Abril",
	"05": "Maio", "06": "Junho", "07": "Julho", "08": "Agosto",
	"09": "Setembro", "10": "Outubro", "11": "Novembro", "12": "Dezembro",
}

// Aplicar selects the prontuários whose creation instant falls inside the
// filter window, keeping input order. Records with an unparseable creation
// date only survive the unbounded selections.
func Aplicar(ps []types.Prontuario, f Filtro, agora time.Time) []types.Prontuario {
	var inicio, fim time.Time
	temInicio, temFim := false, false

	if f.DataInicio == "" && f.DataFim == "" {
		switch f.Periodo {
		case "hoje":
			inicio = meiaNoite(agora)
			temInicio = true
		case "semana":
			inicio = agora.AddDate(0, 0, -7)
			temInicio = true
		case "mes":
			inicio = time.Date(agora.Year(), agora.Month(), 1, 0, 0, 0, 0, agora.Location())
			temInicio = true
		case "trimestre":
			trimestre := (int(agora.Month())-1)/3 + 1
			mesInicio := time.Month((trimestre-1)*3 + 1)
			inicio = time.Date(agora.Year(), mesInicio, 1, 0, 0, 0, 0, agora.Location())
			temInicio = true
		case "ano":
			inicio = time.Date(agora.Year(), 1, 1, 0, 0, 0, 0, agora.Location())
			temInicio = true
		}
		// "todos" and unknown periods stay unbounded
	}

	if f.DataInicio != "" {
		if t, ok := dates.Parse(f.DataInicio); ok {
			inicio, temInicio = t, true
		}
	}
	if f.DataFim != "" {
		if t, ok := dates.Parse(f.DataFim); ok {
			fim = time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, 0, t.Location())
			temFim = true
		}
	}

	ano, temAno := atoi(f.Ano)
	mes, temMes := atoi(f.Mes)

	out := []types.Prontuario{}
	for _, p := range ps {
		t, ok := dates.Parse(p.DataCriacao)
		if !ok {
			if !temInicio && !temFim && !temAno && !temMes {
				out = append(out, p)
			}
			continue
		}
		if temInicio && t.Before(inicio) {
			continue
		}
		if temFim && t.After(fim) {
			continue
		}
		if temAno && t.Year() != ano {
			continue
		}
		if temMes && int(t.Month()) != mes {
			continue
		}
		out = append(out, p)
	}
	return out
}

// TextoPeriodo renders the human label of the active window, e.g.
// "Este Mês", "De 01/03/2025 até 31/03/2025" or "Março de 2025".
func TextoPeriodo(f Filtro) string {
	if f.Periodo != "" {
		return periodos[f.Periodo]
	}
	if f.DataInicio != "" && f.DataFim != "" {
		return fmt.Sprintf("De %s até %s", dates.FormatBR(f.DataInicio), dates.FormatBR(f.DataFim))
	}
	if f.Ano != "" && f.Mes != "" {
		return fmt.Sprintf("%s de %s", mesesPT[pad2(f.Mes)], f.Ano)
	}
	if f.Ano != "" {
		return fmt.Sprintf("Ano de %s", f.Ano)
	}
	if f.Mes != "" {
		return fmt.Sprintf("Mês de %s", mesesPT[pad2(f.Mes)])
	}
	return "Todos os períodos"
}

func meiaNoite(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func atoi(s string) (int, bool) {
	if s == "" {
		return 0, false
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return v, true
}

func pad2(s string) string {
	if len(s) == 1 {
		return "0" + s
	}
	return s
}
