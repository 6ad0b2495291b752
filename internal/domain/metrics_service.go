package domain

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"
)

type metricsNetworkService struct {
	next NetworkService
	ops  *prometheus.CounterVec
}

// NewMetricsNetworkService counts every operation by outcome code so
// stuck Pending/Deleting records and provider outages show up on a
// dashboard, not just in logs.
func NewMetricsNetworkService(reg prometheus.Registerer, next NetworkService) NetworkService {
	if reg == nil || next == nil {
		return next
	}

	ops := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "vnetman",
		Name:      "network_operations_total",
		Help:      "Network operations by operation and result code.",
	}, []string{"op", "result"})
	reg.MustRegister(ops)

	return &metricsNetworkService{next: next, ops: ops}
}

func (s *metricsNetworkService) CreateNetwork(ctx context.Context, spec NetworkSpec) (Network, error) {
	network, err := s.next.CreateNetwork(ctx, spec)
	s.ops.WithLabelValues("create", Code(err)).Inc()
	return network, err
}

func (s *metricsNetworkService) GetNetwork(ctx context.Context, name string) (Network, error) {
	network, err := s.next.GetNetwork(ctx, name)
	s.ops.WithLabelValues("get", Code(err)).Inc()
	return network, err
}

func (s *metricsNetworkService) ListNetworks(ctx context.Context) ([]Network, error) {
	networks, err := s.next.ListNetworks(ctx)
	s.ops.WithLabelValues("list", Code(err)).Inc()
	return networks, err
}

func (s *metricsNetworkService) DeleteNetwork(ctx context.Context, name string) error {
	err := s.next.DeleteNetwork(ctx, name)
	s.ops.WithLabelValues("delete", Code(err)).Inc()
	return err
}
