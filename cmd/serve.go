package main

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Kleo12345/lead-scoring-system/internal/model"
	"github.com/Kleo12345/lead-scoring-system/internal/pipeline"
	"github.com/Kleo12345/lead-scoring-system/internal/scoring"
	"github.com/Kleo12345/lead-scoring-system/internal/store"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the scoring HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		scoringCfg, err := loadScoringConfig()
		if err != nil {
			return err
		}
		engine, err := scoring.NewEngine(scoringCfg)
		if err != nil {
			return err
		}

		st, err := store.Open(ctx, cfg.Store)
		if err != nil {
			return err
		}
		defer st.Close() //nolint:errcheck
		if err := st.Migrate(ctx); err != nil {
			return err
		}

		port := servePort
		if port == 0 {
			port = cfg.Server.Port
		}

		srv := &http.Server{
			Addr:    fmt.Sprintf(":%d", port),
			Handler: newRouter(engine, st),
		}

		go func() {
			<-ctx.Done()
			zap.L().Info("shutting down server")
			srv.Shutdown(ctx) //nolint:errcheck
		}()

		zap.L().Info("starting server", zap.Int("port", port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return eris.Wrap(err, "server listen")
		}

		return nil
	},
}

// newRouter builds the API routes. Split from serveCmd so tests can hit the
// handlers without binding a socket.
func newRouter(engine *scoring.Engine, st store.Store) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Get("/leads", func(w http.ResponseWriter, r *http.Request) {
		filter := store.LeadFilter{
			Tier: r.URL.Query().Get("tier"),
		}
		if v := r.URL.Query().Get("min_score"); v != "" {
			n, err := strconv.Atoi(v)
			if err != nil {
				writeError(w, http.StatusBadRequest, "min_score must be an integer")
				return
			}
			filter.MinScore = n
		}
		if v := r.URL.Query().Get("limit"); v != "" {
			n, err := strconv.Atoi(v)
			if err != nil {
				writeError(w, http.StatusBadRequest, "limit must be an integer")
				return
			}
			filter.Limit = n
		}

		leads, err := st.ListLeads(r.Context(), filter)
		if err != nil {
			zap.L().Error("list leads failed", zap.Error(err))
			writeError(w, http.StatusInternalServerError, "list leads failed")
			return
		}
		if leads == nil {
			leads = []model.ScoredLead{}
		}
		writeJSON(w, http.StatusOK, map[string]any{"leads": leads})
	})

	r.Post("/score", func(w http.ResponseWriter, r *http.Request) {
		var req scoreRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		if req.Lead.BusinessName == "" {
			writeError(w, http.StatusBadRequest, "lead.business_name is required")
			return
		}

		scored, opps := engine.ScoreLead(req.Lead, req.Website, req.Reviews, req.Social, pipeline.TechNeedsScore)
		writeJSON(w, http.StatusOK, scoreResponse{Lead: scored, Opportunities: opps})
	})

	return r
}

// scoreRequest scores one already-enriched lead; callers supply the signal
// bundles their own enrichment produced.
type scoreRequest struct {
	Lead    model.LeadAttributes `json:"lead"`
	Website model.WebsiteSignals `json:"website_signals"`
	Reviews model.ReviewSignals  `json:"review_signals"`
	Social  model.SocialSignals  `json:"social_signals"`
}

type scoreResponse struct {
	Lead          model.ScoredLead        `json:"lead"`
	Opportunities model.LeadOpportunities `json:"opportunities"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "server port (default from config)")
	rootCmd.AddCommand(serveCmd)
}
