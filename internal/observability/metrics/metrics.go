package metrics

import (
	"fmt"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"
)

type Outcome string

const (
	Success                  Outcome       = "success"
	Error                    Outcome       = "error"
	MetricRequestTimeout     time.Duration = 5 * time.Second
	MetricRequestIdleTimeout time.Duration = 10 * time.Second
)

func (O Outcome) String() string {
	return string(O)
}

var (
	once                         sync.Once
	metricsRouter                *chi.Mux
	stakingOperationDuration     *prometheus.HistogramVec
	assetClientLatency           *prometheus.HistogramVec
	rewardClientLatency          *prometheus.HistogramVec
	dbLatency                    *prometheus.HistogramVec
	httpRequestDurationHistogram *prometheus.HistogramVec
	activeStakesGauge            prometheus.Gauge
	queueSendErrorCounter        prometheus.Counter
	custodyRollbackCounter       prometheus.Counter
)

// Init initializes the metrics package.
func Init(metricsPort int) {
	once.Do(func() {
		initMetricsRouter(metricsPort)
		registerMetrics()
	})
}

// initMetricsRouter initializes the metrics router.
func initMetricsRouter(metricsPort int) {
	metricsRouter = chi.NewRouter()
	metricsRouter.Get("/metrics", func(w http.ResponseWriter, r *http.Request) {
		promhttp.Handler().ServeHTTP(w, r)
	})
	// Create a custom server with timeout settings
	metricsAddr := fmt.Sprintf(":%d", metricsPort)
	server := &http.Server{
		Addr:         metricsAddr,
		Handler:      metricsRouter,
		ReadTimeout:  MetricRequestTimeout,
		WriteTimeout: MetricRequestTimeout,
		IdleTimeout:  MetricRequestIdleTimeout,
	}

	// Start the server in a separate goroutine
	go func() {
		log.Printf("Starting metrics server on %s", metricsAddr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msgf("Error starting metrics server on %s", metricsAddr)
		}
	}()
}

// registerMetrics initializes and register the Prometheus metrics.
func registerMetrics() {
	defaultHistogramBucketsSeconds := []float64{0.1, 0.5, 1, 2.5, 5, 10, 30}

	stakingOperationDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "staking_operation_duration_seconds",
			Help:    "Histogram of staking ledger operation durations in seconds.",
			Buckets: defaultHistogramBucketsSeconds,
		},
		[]string{"operation", "status"},
	)

	assetClientLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "asset_client_latency_seconds",
			Help:    "Histogram of asset custody client durations in seconds.",
			Buckets: defaultHistogramBucketsSeconds,
		},
		[]string{"method", "status"},
	)

	rewardClientLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "reward_client_latency_seconds",
			Help:    "Histogram of reward asset client durations in seconds.",
			Buckets: defaultHistogramBucketsSeconds,
		},
		[]string{"method", "status"},
	)

	dbLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "db_latency_seconds",
			Help:    "DB latency in seconds splitted by method and execution status",
			Buckets: defaultHistogramBucketsSeconds,
		},
		[]string{"method", "status"},
	)

	httpRequestDurationHistogram = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Histogram of incoming http request durations in seconds.",
			Buckets: defaultHistogramBucketsSeconds,
		},
		[]string{"method", "path", "status"},
	)

	activeStakesGauge = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "active_stakes_count",
			Help: "Number of assets currently held in custody with an active stake",
		},
	)

	// add a counter for the number of errors from the fail to push message into queue
	queueSendErrorCounter = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "queue_send_error_count",
			Help: "The total number of errors when sending messages to the queue",
		},
	)

	custodyRollbackCounter = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "custody_rollback_count",
			Help: "Number of compensating custody transfers after a failed collaborator call",
		},
	)

	prometheus.MustRegister(
		stakingOperationDuration,
		assetClientLatency,
		rewardClientLatency,
		dbLatency,
		httpRequestDurationHistogram,
		activeStakesGauge,
		queueSendErrorCounter,
		custodyRollbackCounter,
	)
}

func RecordStakingOperationDuration(d time.Duration, operation string, failure bool) {
	status := Success
	if failure {
		status = Error
	}

	stakingOperationDuration.WithLabelValues(operation, status.String()).Observe(d.Seconds())
}

func RecordAssetClientLatency(d time.Duration, method string, failure bool) {
	status := Success
	if failure {
		status = Error
	}

	assetClientLatency.WithLabelValues(method, status.String()).Observe(d.Seconds())
}

func RecordRewardClientLatency(d time.Duration, method string, failure bool) {
	status := Success
	if failure {
		status = Error
	}

	rewardClientLatency.WithLabelValues(method, status.String()).Observe(d.Seconds())
}

func RecordDbLatency(d time.Duration, method string, failure bool) {
	status := Success
	if failure {
		status = Error
	}

	dbLatency.WithLabelValues(method, status.String()).Observe(d.Seconds())
}

func RecordHttpRequestDuration(d time.Duration, method, path string, statusCode int) {
	httpRequestDurationHistogram.WithLabelValues(method, path, strconv.Itoa(statusCode)).Observe(d.Seconds())
}

func RecordActiveStakesCount(count int64) {
	activeStakesGauge.Set(float64(count))
}

func IncActiveStakes() {
	activeStakesGauge.Inc()
}

func DecActiveStakes() {
	activeStakesGauge.Dec()
}

func RecordQueueSendError() {
	queueSendErrorCounter.Inc()
}

func RecordCustodyRollback() {
	custodyRollbackCounter.Inc()
}
