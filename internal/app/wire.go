//go:build wireinject
// +build wireinject

package app

import (
	"context"

	awss3 "github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/google/wire"
	"github.com/jackc/pgx/v5/pgxpool"

	s3gateway "github.com/xhimmliuvo/ukhrul-connect-hub-sub000/internal/gateway/s3"
	"github.com/xhimmliuvo/ukhrul-connect-hub-sub000/internal/handlers/kafka-consumer/order_event"
	"github.com/xhimmliuvo/ukhrul-connect-hub-sub000/internal/handlers/tasks/pending_sweep"
	"github.com/xhimmliuvo/ukhrul-connect-hub-sub000/internal/pkg/config"
	"github.com/xhimmliuvo/ukhrul-connect-hub-sub000/internal/pkg/factory/dispatch_handle"
	"github.com/xhimmliuvo/ukhrul-connect-hub-sub000/internal/pkg/factory/eta_estimate"
	agentRepo "github.com/xhimmliuvo/ukhrul-connect-hub-sub000/internal/repository/agent"
	locationRepo "github.com/xhimmliuvo/ukhrul-connect-hub-sub000/internal/repository/location"
	orderRepo "github.com/xhimmliuvo/ukhrul-connect-hub-sub000/internal/repository/order"
	responseRepo "github.com/xhimmliuvo/ukhrul-connect-hub-sub000/internal/repository/response"
	agentService "github.com/xhimmliuvo/ukhrul-connect-hub-sub000/internal/service/agent"
	dispatchService "github.com/xhimmliuvo/ukhrul-connect-hub-sub000/internal/service/dispatch"
	"github.com/xhimmliuvo/ukhrul-connect-hub-sub000/internal/service/feed"
	orderService "github.com/xhimmliuvo/ukhrul-connect-hub-sub000/internal/service/order"
	statusService "github.com/xhimmliuvo/ukhrul-connect-hub-sub000/internal/service/status"
	"github.com/xhimmliuvo/ukhrul-connect-hub-sub000/pkg/logger"
	"github.com/xhimmliuvo/ukhrul-connect-hub-sub000/pkg/tx"
)

// InitializeApplication для HTTP сервиса (cmd/service)
func InitializeApplication(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	s3Client *awss3.Client,
	cfg *config.Config,
) (*Application, error) {
	wire.Build(
		provideTxManager,
		provideQuerier,
		provideSweepInterval,
		provideSweepMinAge,

		provideOrderRepository,
		provideAgentRepository,
		provideResponseRepository,
		provideLocationRepository,

		provideServiceOrder,
		provideServiceAgent,
		provideServiceDispatch,
		provideServiceStatus,
		provideProofGateway,
		provideEstimator,

		provideFeedHub,
		provideTracker,
		provideFeedListener,

		providePendingSweepTask,
		provideTaskList,
		provideBackgroundWorkers,

		wire.Struct(new(Application), "*"),

		wire.Bind(new(ServiceOrder), new(*orderService.Order)),
		wire.Bind(new(ServiceAgent), new(*agentService.Agent)),
		wire.Bind(new(ServiceDispatch), new(*dispatchService.Dispatch)),
		wire.Bind(new(ServiceStatus), new(*statusService.Status)),
		wire.Bind(new(Estimator), new(*eta_estimate.EtaFactory)),

		wire.Bind(new(orderService.Repository), new(*orderRepo.Repository)),
		wire.Bind(new(agentService.Repository), new(*agentRepo.Repository)),
		wire.Bind(new(dispatchService.OrderRepository), new(*orderRepo.Repository)),
		wire.Bind(new(dispatchService.AgentRepository), new(*agentRepo.Repository)),
		wire.Bind(new(dispatchService.ResponseRepository), new(*responseRepo.Repository)),
		wire.Bind(new(statusService.OrderRepository), new(*orderRepo.Repository)),
		wire.Bind(new(statusService.AgentRepository), new(*agentRepo.Repository)),
		wire.Bind(new(statusService.BlobGateway), new(*s3gateway.ProofGateway)),
		wire.Bind(new(feed.OrderRepository), new(*orderRepo.Repository)),
		wire.Bind(new(feed.LocationRepository), new(*locationRepo.Repository)),

		wire.Bind(new(dispatchService.TxManager), new(*tx.Manager)),
		wire.Bind(new(statusService.TxManager), new(*tx.Manager)),

		wire.Bind(new(pending_sweep.Service), new(*dispatchService.Dispatch)),
	)
	return &Application{}, nil
}

// InitializeKafkaWorkerApp для Kafka воркера (cmd/worker-order-events)
func InitializeKafkaWorkerApp(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	s3Client *awss3.Client,
	cfg *config.Config,
) (*KafkaWorkerApp, error) {
	wire.Build(
		provideTxManager,
		provideQuerier,

		provideOrderRepository,
		provideAgentRepository,
		provideResponseRepository,

		provideServiceDispatch,
		provideServiceStatus,
		provideProofGateway,

		provideEventHandlerFactory,
		provideOrderEventHandler,

		wire.Bind(new(dispatchService.OrderRepository), new(*orderRepo.Repository)),
		wire.Bind(new(dispatchService.AgentRepository), new(*agentRepo.Repository)),
		wire.Bind(new(dispatchService.ResponseRepository), new(*responseRepo.Repository)),
		wire.Bind(new(statusService.OrderRepository), new(*orderRepo.Repository)),
		wire.Bind(new(statusService.AgentRepository), new(*agentRepo.Repository)),
		wire.Bind(new(statusService.BlobGateway), new(*s3gateway.ProofGateway)),

		wire.Bind(new(dispatchService.TxManager), new(*tx.Manager)),
		wire.Bind(new(statusService.TxManager), new(*tx.Manager)),

		wire.Bind(new(dispatch_handle.DispatchService), new(*dispatchService.Dispatch)),
		wire.Bind(new(dispatch_handle.StatusService), new(*statusService.Status)),
		wire.Bind(new(order_event.HandlerFactory), new(*dispatch_handle.EventHandlerFactory)),

		wire.Struct(new(KafkaWorkerApp), "*"),
	)
	return nil, nil
}
