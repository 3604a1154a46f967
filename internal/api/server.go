package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
	"github.com/sourcegraph/conc"

	"github.com/babylonlabs-io/nft-staking-engine/internal/config"
)

const (
	serverReadTimeout     = 10 * time.Second
	serverWriteTimeout    = 30 * time.Second
	serverIdleTimeout     = 60 * time.Second
	serverShutdownTimeout = 5 * time.Second
)

type Server struct {
	httpServer *http.Server
	service    StakingService
}

func New(cfg *config.ApiConfig, service StakingService) *Server {
	srv := &Server{service: service}

	srv.httpServer = &http.Server{
		Addr:         cfg.Address(),
		Handler:      srv.router(),
		ReadTimeout:  serverReadTimeout,
		WriteTimeout: serverWriteTimeout,
		IdleTimeout:  serverIdleTimeout,
	}

	return srv
}

func (s *Server) router() *chi.Mux {
	r := chi.NewRouter()

	r.Get("/healthcheck", registerHandler(s.healthcheck))
	r.Route("/v1", func(r chi.Router) {
		r.Post("/stake", registerHandler(s.stake))
		r.Post("/unstake", registerHandler(s.unstake))
		r.Get("/reward/{assetID}", registerHandler(s.getReward))
		r.Get("/stake/{assetID}", registerHandler(s.getStake))
		r.Get("/stake/{assetID}/history", registerHandler(s.getStakeHistory))
		r.Get("/stake/{assetID}/custody", registerHandler(s.verifyCustody))
		r.Get("/staker/{stakerAddress}/stakes", registerHandler(s.getStakerStakes))
		r.Get("/reward-rate", registerHandler(s.getRewardRate))
		r.Put("/reward-rate", registerHandler(s.setRewardRate))
	})

	return r
}

// Start serves until ctx is cancelled, then drains in-flight requests.
func (s *Server) Start(ctx context.Context) error {
	var wg conc.WaitGroup
	defer wg.Wait()

	wg.Go(func() {
		log.Info().Str("address", s.httpServer.Addr).Msg("starting staking api server")
		err := s.httpServer.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("staking api server exited")
		}
	})

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), serverShutdownTimeout)
	defer cancel()

	return s.httpServer.Shutdown(shutdownCtx)
}
