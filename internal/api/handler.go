package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/babylonlabs-io/nft-staking-engine/internal/observability/metrics"
	"github.com/babylonlabs-io/nft-staking-engine/internal/observability/tracing"
	"github.com/babylonlabs-io/nft-staking-engine/internal/types"
)

// Result is the successful outcome of a handler, serialized as the response
// body with the given status code.
type Result struct {
	Data       any
	StatusCode int
}

func NewResult(data any) *Result {
	return &Result{Data: data, StatusCode: http.StatusOK}
}

type handlerFunc func(r *http.Request) (*Result, *types.Error)

type errorResponse struct {
	ErrorCode string `json:"errorCode"`
	Message   string `json:"message"`
}

// registerHandler adapts a handlerFunc to net/http: it scopes a trace id to
// the request, serializes the outcome and records the request duration under
// the chi route pattern rather than the raw path.
func registerHandler(h handlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		r = r.WithContext(tracing.InjectTraceID(r.Context()))
		start := time.Now()

		result, err := h(r)

		statusCode := http.StatusOK
		if err != nil {
			statusCode = err.StatusCode
			if statusCode == types.UninitializedStatusCode {
				statusCode = http.StatusInternalServerError
			}
			writeResponse(w, r, statusCode, &errorResponse{
				ErrorCode: err.ErrorCode.String(),
				Message:   err.Error(),
			})
		} else {
			statusCode = result.StatusCode
			writeResponse(w, r, statusCode, result.Data)
		}

		metrics.RecordHttpRequestDuration(
			time.Since(start), r.Method, routePattern(r), statusCode,
		)
	}
}

func writeResponse(w http.ResponseWriter, r *http.Request, statusCode int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if body == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Ctx(r.Context()).Error().Err(err).Msg("failed to write response body")
	}
}

func routePattern(r *http.Request) string {
	rctx := chi.RouteContext(r.Context())
	if rctx == nil {
		return r.URL.Path
	}
	return rctx.RoutePattern()
}
