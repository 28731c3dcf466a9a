package app

import (
	"context"
	"time"

	awss3 "github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/jackc/pgx/v5/pgxpool"

	s3gateway "github.com/xhimmliuvo/ukhrul-connect-hub-sub000/internal/gateway/s3"
	"github.com/xhimmliuvo/ukhrul-connect-hub-sub000/internal/handlers/kafka-consumer/order_event"
	"github.com/xhimmliuvo/ukhrul-connect-hub-sub000/internal/handlers/rest/agent_get"
	"github.com/xhimmliuvo/ukhrul-connect-hub-sub000/internal/handlers/rest/agent_put"
	"github.com/xhimmliuvo/ukhrul-connect-hub-sub000/internal/handlers/rest/agents_get"
	"github.com/xhimmliuvo/ukhrul-connect-hub-sub000/internal/handlers/rest/assign_post"
	"github.com/xhimmliuvo/ukhrul-connect-hub-sub000/internal/handlers/rest/autoassign_post"
	"github.com/xhimmliuvo/ukhrul-connect-hub-sub000/internal/handlers/rest/availability_put"
	"github.com/xhimmliuvo/ukhrul-connect-hub-sub000/internal/handlers/rest/eta_get"
	"github.com/xhimmliuvo/ukhrul-connect-hub-sub000/internal/handlers/rest/order_cancel_post"
	"github.com/xhimmliuvo/ukhrul-connect-hub-sub000/internal/handlers/rest/order_get"
	"github.com/xhimmliuvo/ukhrul-connect-hub-sub000/internal/handlers/rest/order_patch"
	"github.com/xhimmliuvo/ukhrul-connect-hub-sub000/internal/handlers/rest/order_post"
	"github.com/xhimmliuvo/ukhrul-connect-hub-sub000/internal/handlers/rest/order_status_post"
	"github.com/xhimmliuvo/ukhrul-connect-hub-sub000/internal/handlers/rest/orders_agent_get"
	"github.com/xhimmliuvo/ukhrul-connect-hub-sub000/internal/handlers/rest/orders_user_get"
	"github.com/xhimmliuvo/ukhrul-connect-hub-sub000/internal/handlers/rest/respond_post"
	"github.com/xhimmliuvo/ukhrul-connect-hub-sub000/internal/handlers/rest/responses_get"
	"github.com/xhimmliuvo/ukhrul-connect-hub-sub000/internal/handlers/tasks/pending_sweep"
	"github.com/xhimmliuvo/ukhrul-connect-hub-sub000/internal/pkg/config"
	"github.com/xhimmliuvo/ukhrul-connect-hub-sub000/internal/pkg/factory/dispatch_handle"
	"github.com/xhimmliuvo/ukhrul-connect-hub-sub000/internal/pkg/factory/eta_estimate"
	"github.com/xhimmliuvo/ukhrul-connect-hub-sub000/internal/pkg/pgnotify"
	agentRepo "github.com/xhimmliuvo/ukhrul-connect-hub-sub000/internal/repository/agent"
	locationRepo "github.com/xhimmliuvo/ukhrul-connect-hub-sub000/internal/repository/location"
	orderRepo "github.com/xhimmliuvo/ukhrul-connect-hub-sub000/internal/repository/order"
	responseRepo "github.com/xhimmliuvo/ukhrul-connect-hub-sub000/internal/repository/response"
	agentService "github.com/xhimmliuvo/ukhrul-connect-hub-sub000/internal/service/agent"
	dispatchService "github.com/xhimmliuvo/ukhrul-connect-hub-sub000/internal/service/dispatch"
	"github.com/xhimmliuvo/ukhrul-connect-hub-sub000/internal/service/feed"
	orderService "github.com/xhimmliuvo/ukhrul-connect-hub-sub000/internal/service/order"
	statusService "github.com/xhimmliuvo/ukhrul-connect-hub-sub000/internal/service/status"
	"github.com/xhimmliuvo/ukhrul-connect-hub-sub000/pkg/background"
	"github.com/xhimmliuvo/ukhrul-connect-hub-sub000/pkg/logger"
	"github.com/xhimmliuvo/ukhrul-connect-hub-sub000/pkg/querier"
	"github.com/xhimmliuvo/ukhrul-connect-hub-sub000/pkg/tx"
)

type (
	SweepInterval time.Duration
	SweepMinAge   time.Duration
)

type Application struct {
	ServiceOrder    ServiceOrder
	ServiceAgent    ServiceAgent
	ServiceDispatch ServiceDispatch
	ServiceStatus   ServiceStatus
	Estimator       Estimator

	FeedHub      *feed.Hub
	Tracker      *feed.Tracker
	FeedListener *pgnotify.Listener

	BackgroundWorkers *background.Worker
}

type ServiceOrder interface {
	order_post.Service
	order_get.Service
	orders_user_get.Service
	orders_agent_get.Service
	order_patch.Service
}

type ServiceAgent interface {
	agent_get.Service
	agents_get.Service
	agent_put.Service
	availability_put.Service
}

type ServiceDispatch interface {
	assign_post.Service
	respond_post.Service
	autoassign_post.Service
	responses_get.Service
}

type ServiceStatus interface {
	order_cancel_post.Service
	order_status_post.Service
}

type Estimator interface {
	eta_get.Estimator
}

type KafkaWorkerApp struct {
	OrderEventHandler *order_event.Handler
}

func provideTxManager(pool *pgxpool.Pool) *tx.Manager {
	return tx.New(pool)
}

func provideQuerier(pool *pgxpool.Pool, getter *pgxv5.CtxGetter) *querier.Querier {
	return querier.New(pool, getter)
}

func provideOrderRepository(querier *querier.Querier) *orderRepo.Repository {
	return orderRepo.New(querier)
}

func provideAgentRepository(querier *querier.Querier) *agentRepo.Repository {
	return agentRepo.New(querier)
}

func provideResponseRepository(querier *querier.Querier) *responseRepo.Repository {
	return responseRepo.New(querier)
}

func provideLocationRepository(querier *querier.Querier) *locationRepo.Repository {
	return locationRepo.New(querier)
}

func provideServiceOrder(repository orderService.Repository) *orderService.Order {
	return orderService.New(repository)
}

func provideServiceAgent(repository agentService.Repository) *agentService.Agent {
	return agentService.New(repository)
}

func provideServiceDispatch(
	orderRepository dispatchService.OrderRepository,
	agentRepository dispatchService.AgentRepository,
	responseRepository dispatchService.ResponseRepository,
	txManager dispatchService.TxManager,
) *dispatchService.Dispatch {
	return dispatchService.New(orderRepository, agentRepository, responseRepository, txManager)
}

func provideServiceStatus(
	orderRepository statusService.OrderRepository,
	agentRepository statusService.AgentRepository,
	blobGateway statusService.BlobGateway,
	txManager statusService.TxManager,
) *statusService.Status {
	return statusService.New(orderRepository, agentRepository, blobGateway, txManager)
}

func provideProofGateway(client *awss3.Client, cfg *config.Config) *s3gateway.ProofGateway {
	return s3gateway.New(client, cfg.Blob.Bucket)
}

func provideFeedHub(log logger.Logger) *feed.Hub {
	return feed.NewHub(log)
}

func provideTracker(
	orderRepository feed.OrderRepository,
	locationRepository feed.LocationRepository,
	hub *feed.Hub,
) *feed.Tracker {
	return feed.NewTracker(orderRepository, locationRepository, hub)
}

func provideFeedListener(log logger.Logger, pool *pgxpool.Pool, hub *feed.Hub) *pgnotify.Listener {
	return pgnotify.New(log, pool, hub)
}

func provideSweepInterval(cfg *config.Config) SweepInterval {
	return SweepInterval(cfg.Tasks.PendingSweepInterval)
}

func provideSweepMinAge(cfg *config.Config) SweepMinAge {
	return SweepMinAge(cfg.Tasks.PendingSweepMinAge)
}

func providePendingSweepTask(
	log logger.Logger,
	service pending_sweep.Service,
	interval SweepInterval,
	minAge SweepMinAge,
) *pending_sweep.PendingSweep {
	return pending_sweep.NewPendingSweep(log, service, time.Duration(interval), time.Duration(minAge))
}

func provideTaskList(
	pendingSweepTask *pending_sweep.PendingSweep,
) []background.Task {
	return []background.Task{
		pendingSweepTask,
	}
}

func provideBackgroundWorkers(ctx context.Context, log logger.Logger, tasks []background.Task) (*background.Worker, error) {
	return background.New(ctx, log, tasks)
}

func provideEventHandlerFactory(
	dispatch dispatch_handle.DispatchService,
	status dispatch_handle.StatusService,
) *dispatch_handle.EventHandlerFactory {
	return dispatch_handle.NewEventHandlerFactory(dispatch, status)
}

// provideOrderEventHandler создает обработчик событий заказов для Kafka воркера
func provideOrderEventHandler(
	log logger.Logger,
	handlerFactory order_event.HandlerFactory,
	cfg *config.Config,
) *order_event.Handler {
	return order_event.New(log, handlerFactory, cfg.Kafka.Handlers.OrderEvent.ProcessTimeout)
}

func provideEstimator() *eta_estimate.EtaFactory {
	return eta_estimate.New()
}
