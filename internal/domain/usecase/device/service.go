package device

import (
	"context"
	"fmt"
	"time"

	"github.com/amirhossein-jamali/agent-console/internal/domain/entity"
	errs "github.com/amirhossein-jamali/agent-console/internal/domain/error"
	"github.com/amirhossein-jamali/agent-console/internal/domain/port/bridge"
	coreport "github.com/amirhossein-jamali/agent-console/internal/domain/port/core"
	"github.com/amirhossein-jamali/agent-console/internal/domain/port/persistence"
)

// Service implements usecase.DeviceUseCase
type Service struct {
	repo         persistence.DeviceRepository
	bridge       bridge.Client
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewService creates a new device service
func NewService(repo persistence.DeviceRepository, client bridge.Client, timeProvider coreport.TimeProvider, logger coreport.Logger) *Service {
	return &Service{repo: repo, bridge: client, timeProvider: timeProvider, logger: logger}
}

// SyncUserDevices refreshes a user's devices from the bridge and returns the stored list.
// When the bridge is unreachable the stored list is returned unchanged.
func (s *Service) SyncUserDevices(ctx context.Context, userID uint64) ([]*entity.Device, error) {
	if userID == 0 {
		return nil, errs.ErrInvalidUserID
	}

	remote, err := s.bridge.SyncDevices(ctx)
	if err != nil {
		s.logger.Warn("Bridge device sync failed, serving stored devices", map[string]any{
			"user_id": userID,
			"error":   err.Error(),
		})
		return s.repo.ListByUser(ctx, userID)
	}

	owned := make([]bridge.Device, 0, len(remote))
	for _, d := range remote {
		if d.UserID == userID {
			owned = append(owned, d)
		}
	}
	if err := s.store(ctx, userID, owned); err != nil {
		return nil, err
	}
	return s.repo.ListByUser(ctx, userID)
}

func (s *Service) ListDevices(ctx context.Context, userID uint64) ([]*entity.Device, error) {
	if userID == 0 {
		return nil, errs.ErrInvalidUserID
	}
	return s.repo.ListByUser(ctx, userID)
}

func (s *Service) ListAll(ctx context.Context) ([]*entity.Device, error) {
	return s.repo.ListAll(ctx)
}

// GetUserDevice returns a device owned by userID or ErrDeviceNotFound
func (s *Service) GetUserDevice(ctx context.Context, userID, deviceID uint64) (*entity.Device, error) {
	d, err := s.repo.GetByID(ctx, deviceID)
	if err != nil {
		return nil, err
	}
	if d.UserID != userID {
		return nil, errs.ErrDeviceNotFound
	}
	return d, nil
}

// SyncAll refreshes every device known to the bridge and marks the rest offline
func (s *Service) SyncAll(ctx context.Context) error {
	remote, err := s.bridge.SyncDevices(ctx)
	if err != nil {
		return fmt.Errorf("sync devices: %w", err)
	}

	byUser := make(map[uint64][]bridge.Device)
	for _, d := range remote {
		if d.UserID == 0 {
			continue
		}
		byUser[d.UserID] = append(byUser[d.UserID], d)
	}
	for userID, devices := range byUser {
		if err := s.store(ctx, userID, devices); err != nil {
			return err
		}
	}

	// owners absent from the response have lost every device
	owners, err := s.repo.OnlineUserIDs(ctx)
	if err != nil {
		return err
	}
	for _, userID := range owners {
		if _, ok := byUser[userID]; ok {
			continue
		}
		if _, err := s.repo.MarkOfflineExcept(ctx, userID, nil, s.timeProvider.Now()); err != nil {
			return err
		}
	}
	s.logger.Debug("Devices synced", map[string]any{"devices": len(remote), "users": len(byUser)})
	return nil
}

func (s *Service) store(ctx context.Context, userID uint64, devices []bridge.Device) error {
	now := s.timeProvider.Now()
	keep := make([]string, 0, len(devices))
	for _, d := range devices {
		device := &entity.Device{
			ExternalID: d.ID,
			UserID:     userID,
			Name:       d.Name,
			Model:      d.Model,
			Status:     entity.NormalizeDeviceStatus(d.Status),
			LastSeenAt: parseLastSeen(d.LastSeen),
			CreatedAt:  now,
			UpdatedAt:  now,
		}
		if err := s.repo.Upsert(ctx, device); err != nil {
			return err
		}
		keep = append(keep, d.ID)
	}
	_, err := s.repo.MarkOfflineExcept(ctx, userID, keep, now)
	return err
}

func parseLastSeen(s string) *time.Time {
	if s == "" {
		return nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return nil
	}
	t = t.UTC()
	return &t
}
