package agent

import (
	"context"
	"fmt"
	"time"

	"github.com/xhimmliuvo/ukhrul-connect-hub-sub000/internal/entities"
)

type Agent struct {
	repository Repository
}

func New(repository Repository) *Agent {
	return &Agent{
		repository: repository,
	}
}

func (s *Agent) GetAgent(ctx context.Context, id string) (*entities.DeliveryAgent, error) {
	if !isValidAgentID(id) {
		return nil, ErrInvalidAgentID
	}

	agentEntity, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get agent: %w", err)
	}

	return agentEntity, nil
}

func (s *Agent) GetAgentByUserID(ctx context.Context, userID string) (*entities.DeliveryAgent, error) {
	if !isValidAgentID(userID) {
		return nil, ErrInvalidAgentID
	}

	agentEntity, err := s.repository.GetByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get agent by user: %w", err)
	}

	return agentEntity, nil
}

// ListEligibleAgents возвращает активных верифицированных агентов
// в стабильном порядке реестра.
func (s *Agent) ListEligibleAgents(ctx context.Context, serviceAreaID *string) ([]entities.DeliveryAgent, error) {
	agents, err := s.repository.ListEligible(ctx, serviceAreaID)
	if err != nil {
		return nil, fmt.Errorf("list eligible agents: %w", err)
	}

	return agents, nil
}

func (s *Agent) UpdateAgent(ctx context.Context, agentModify entities.AgentModify) (*entities.DeliveryAgent, error) {
	if agentModify.ID == nil || !isValidAgentID(*agentModify.ID) {
		return nil, ErrInvalidAgentID
	}
	if agentModify.FullName == nil &&
		agentModify.Phone == nil &&
		agentModify.Email == nil &&
		agentModify.AvatarURL == nil &&
		agentModify.VehicleType == nil &&
		agentModify.ServiceAreaID == nil &&
		agentModify.IsVerified == nil &&
		agentModify.IsActive == nil {
		return nil, fmt.Errorf("no fields to update: %w", ErrMissingRequiredFields)
	}

	if agentModify.Phone != nil && !isValidPhone(*agentModify.Phone) {
		return nil, ErrInvalidPhone
	}
	if agentModify.VehicleType != nil && !isValidVehicle(agentModify.VehicleType.String()) {
		return nil, ErrInvalidVehicle
	}

	updated, err := s.repository.Update(ctx, agentModify)
	if err != nil {
		return nil, fmt.Errorf("update agent: %w", err)
	}

	return updated, nil
}

// SetAvailability принимает самодекларацию присутствия.
// Запись присутствия может изменить только сессия самого агента.
func (s *Agent) SetAvailability(ctx context.Context, actorAgentID, agentID string, status entities.AvailabilityStatusType) (*entities.AgentAvailability, error) {
	if !isValidAgentID(agentID) {
		return nil, ErrInvalidAgentID
	}
	if actorAgentID != agentID {
		return nil, ErrNotOwnAvailability
	}
	if !isValidAvailabilityStatus(status.String()) {
		return nil, ErrInvalidAvailabilityStatus
	}

	availability, err := s.repository.SetAvailability(ctx, agentID, status, time.Now().UTC())
	if err != nil {
		return nil, fmt.Errorf("set availability: %w", err)
	}

	return availability, nil
}

func (s *Agent) GetAvailability(ctx context.Context, agentID string) (*entities.AgentAvailability, error) {
	if !isValidAgentID(agentID) {
		return nil, ErrInvalidAgentID
	}

	availability, err := s.repository.GetAvailability(ctx, agentID)
	if err != nil {
		return nil, fmt.Errorf("get availability: %w", err)
	}

	return availability, nil
}

// CountActiveOrders — число заказов агента в статусах
// agent_assigned | picked_up | in_transit, тест занятости для matching.
func (s *Agent) CountActiveOrders(ctx context.Context, agentID string) (int64, error) {
	if !isValidAgentID(agentID) {
		return 0, ErrInvalidAgentID
	}

	count, err := s.repository.CountActiveOrders(ctx, agentID)
	if err != nil {
		return 0, fmt.Errorf("count active orders: %w", err)
	}

	return count, nil
}
