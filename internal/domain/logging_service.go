package domain

import (
	"context"
	"log/slog"
)

type loggingNetworkService struct {
	logger *slog.Logger
	next   NetworkService
}

func NewLoggingNetworkService(logger *slog.Logger, next NetworkService) NetworkService {
	if logger == nil || next == nil {
		return next
	}

	return &loggingNetworkService{
		logger: logger,
		next:   next,
	}
}

func (s *loggingNetworkService) CreateNetwork(ctx context.Context, spec NetworkSpec) (Network, error) {
	network, err := s.next.CreateNetwork(ctx, spec)
	if err != nil {
		s.logger.ErrorContext(ctx, "create network failed", "name", spec.Name, "code", Code(err), "err", err.Error())
		return Network{}, err
	}

	s.logger.InfoContext(ctx, "network created",
		"name", network.Name,
		"address_space", network.AddressSpace.String(),
		"subnets", len(network.Subnets),
		"provider_id", network.ProviderID,
	)
	return network, nil
}

func (s *loggingNetworkService) GetNetwork(ctx context.Context, name string) (Network, error) {
	network, err := s.next.GetNetwork(ctx, name)
	if err != nil {
		s.logger.ErrorContext(ctx, "get network failed", "name", name, "code", Code(err), "err", err.Error())
	}
	return network, err
}

func (s *loggingNetworkService) ListNetworks(ctx context.Context) ([]Network, error) {
	networks, err := s.next.ListNetworks(ctx)
	if err != nil {
		s.logger.ErrorContext(ctx, "list networks failed", "code", Code(err), "err", err.Error())
	}
	return networks, err
}

func (s *loggingNetworkService) DeleteNetwork(ctx context.Context, name string) error {
	err := s.next.DeleteNetwork(ctx, name)
	if err != nil {
		s.logger.ErrorContext(ctx, "delete network failed", "name", name, "code", Code(err), "err", err.Error())
		return err
	}

	s.logger.InfoContext(ctx, "network deleted", "name", name)
	return nil
}
