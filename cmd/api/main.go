package main

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"audit-insights-go/internal/aggregator"
	"audit-insights-go/internal/classify"
	"audit-insights-go/internal/dataset"
	"audit-insights-go/internal/filter"
	"audit-insights-go/internal/logger"
	"audit-insights-go/internal/projector"
	"audit-insights-go/internal/types"
)

func main() {
	_ = godotenv.Load() // loads .env

	log := logger.New()
	log.WithField("service", "audit-insights-go").Info("starting service")

	dataPath := envOr("SNAPSHOT_PATH", "prontuarios.xlsx")
	if url := os.Getenv("SNAPSHOT_URL"); url != "" {
		if err := dataset.Fetch(url, dataPath); err != nil {
			log.WithError(err).Fatal("failed to download snapshot")
		}
	}

	log.WithField("snapshot_path", dataPath).Info("loading snapshot")
	snap, err := dataset.Load(dataPath)
	if err != nil {
		log.WithError(err).Fatal("failed to load snapshot")
	}

	prontuarios := projector.ProjectAll(snap.Rows, snap.Catalog)
	todosErros := []types.Erro{}
	for _, p := range prontuarios {
		todosErros = append(todosErros, p.Erros...)
	}
	log.WithField("prontuarios", len(prontuarios)).
		WithField("erros", len(todosErros)).Info("snapshot projected")

	mux := http.NewServeMux()

	// health
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		logger.New().WithRequest(r).Info("health check")
		fmt.Fprint(w, "ok")
	})

	// full dashboard payload for the current filter window
	mux.HandleFunc("/api/dashboard", func(w http.ResponseWriter, r *http.Request) {
		reqLog := logger.New().WithRequest(r).WithField("handler", "dashboard")
		f := filtroFromQuery(r)
		if f.Periodo == "" && f.DataInicio == "" && f.DataFim == "" && f.Ano == "" && f.Mes == "" {
			f.Periodo = "mes"
		}
		reqLog.WithField("periodo", f.Periodo).Info("dashboard request")

		agora := time.Now()
		selecionados := filter.Aplicar(prontuarios, f, agora)
		dash := aggregator.Montar(selecionados, todosErros, snap.Catalog, agora)
		dash.PeriodoInfo = filter.TextoPeriodo(f)
		writeJSON(w, reqLog, dash)
	})

	// filtered record list
	mux.HandleFunc("/api/prontuarios", func(w http.ResponseWriter, r *http.Request) {
		reqLog := logger.New().WithRequest(r).WithField("handler", "prontuarios")
		f := filtroFromQuery(r)
		selecionados := filter.Aplicar(prontuarios, f, time.Now())

		status := r.URL.Query().Get("status")
		convenio := r.URL.Query().Get("convenio")
		out := []types.Prontuario{}
		for _, p := range selecionados {
			if status != "" && classify.TitleStatus(p.Status) != classify.TitleStatus(status) {
				continue
			}
			if convenio != "" && !strings.EqualFold(classify.Convenio(p), convenio) {
				continue
			}
			out = append(out, p)
		}
		reqLog.WithField("total", len(out)).Info("prontuarios request")
		writeJSON(w, reqLog, out)
	})

	// report counters over the filtered set
	mux.HandleFunc("/api/relatorios", func(w http.ResponseWriter, r *http.Request) {
		reqLog := logger.New().WithRequest(r).WithField("handler", "relatorios")
		f := filtroFromQuery(r)
		selecionados := filter.Aplicar(prontuarios, f, time.Now())
		reqLog.WithField("total", len(selecionados)).Info("relatorios request")
		writeJSON(w, reqLog, aggregator.Relatorio(selecionados))
	})

	addr := fmt.Sprintf(":%s", envOr("PORT", "8080"))
	srv := &http.Server{
		Addr:         addr,
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  120 * time.Second,
	}
	log.WithField("addr", addr).Info("listening")
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.WithError(err).Fatal("server terminated")
	}
}

func filtroFromQuery(r *http.Request) filter.Filtro {
	q := r.URL.Query()
	return filter.Filtro{
		Ano:        q.Get("ano"),
		Mes:        q.Get("mes"),
		Periodo:    q.Get("periodo"),
		DataInicio: q.Get("data_inicio"),
		DataFim:    q.Get("data_fim"),
	}
}

func writeJSON(w http.ResponseWriter, log *logrus.Entry, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		log.Error("failed to write response")
	}
}

func envOr(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
