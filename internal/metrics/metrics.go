package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// OperationsTotal counts user operations by outcome code
	OperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "aa_operations_total",
			Help: "Total number of user operations handled",
		},
		[]string{"code"},
	)

	// BatchSize tracks the number of operations per batch
	BatchSize = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "aa_batch_size",
			Help:    "Number of user operations per batch",
			Buckets: []float64{1, 2, 4, 8, 16, 32, 64},
		},
	)

	// BatchDuration tracks batch processing time
	BatchDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "aa_batch_duration_seconds",
			Help:    "Batch processing duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
	)

	// GasUsed tracks gas charged per operation
	GasUsed = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "aa_gas_used",
			Help:    "Gas used by user operations",
			Buckets: []float64{21000, 50000, 100000, 200000, 300000, 500000, 1000000},
		},
		[]string{"sponsorship"},
	)

	// PaymasterSettlements counts paymaster post-op settlements
	PaymasterSettlements = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "aa_paymaster_settlements_total",
			Help: "Total number of paymaster settlements",
		},
		[]string{"method", "mode"},
	)

	// BridgeTransfersTotal counts bridge locks, mints and burns
	BridgeTransfersTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bridge_transfers_total",
			Help: "Total number of bridge transfers",
		},
		[]string{"kind", "asset", "status"},
	)

	// BridgeVolume tracks cumulative volume per chain
	BridgeVolume = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bridge_volume_total",
			Help: "Cumulative bridged amount by chain and asset",
		},
		[]string{"chain", "asset"},
	)

	// SignatureFailures counts mints rejected for lack of valid signatures
	SignatureFailures = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "bridge_signature_failures_total",
			Help: "Total number of mints rejected for insufficient valid signatures",
		},
	)

	// RelayProcessed counts records processed by the relay engine
	RelayProcessed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bridge_relay_processed_total",
			Help: "Total number of records relayed",
		},
		[]string{"direction", "status"},
	)

	// RelayDuration tracks relay processing time
	RelayDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "bridge_relay_duration_seconds",
			Help:    "Relay processing duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"direction"},
	)

	// RelayPending tracks unclaimed records seen in the last poll
	RelayPending = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "bridge_relay_pending",
			Help: "Number of unclaimed records seen in the last poll",
		},
		[]string{"direction"},
	)

	// RelayLastProcessedID tracks the relay offset
	RelayLastProcessedID = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "bridge_relay_last_processed_id",
			Help: "Last processed record id by direction",
		},
		[]string{"direction"},
	)

	// ErrorsTotal counts errors by type
	ErrorsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "aa_bridge_errors_total",
			Help: "Total number of errors",
		},
		[]string{"component", "error_type"},
	)
)
