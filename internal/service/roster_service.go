package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"connectrpc.com/connect"
	"github.com/google/uuid"

	"github.com/mmynk/futmanager/internal/models"
	"github.com/mmynk/futmanager/internal/oracle"
	"github.com/mmynk/futmanager/internal/roster"
	"github.com/mmynk/futmanager/internal/storage"
	"github.com/mmynk/futmanager/pkg/api"
	"github.com/mmynk/futmanager/pkg/api/apiconnect"
)

// AvatarGenerator produces a profile picture as a data URI.
type AvatarGenerator interface {
	GenerateAvatar(ctx context.Context, name string, goalkeeper bool) (string, error)
}

// RosterService implements the Connect RosterService
type RosterService struct {
	store   storage.Store
	avatars AvatarGenerator
	now     func() time.Time
}

var _ apiconnect.RosterServiceHandler = (*RosterService)(nil)

// NewRosterService creates a new RosterService. avatars may be nil when no
// oracle is configured.
func NewRosterService(store storage.Store, avatars AvatarGenerator) *RosterService {
	return &RosterService{store: store, avatars: avatars, now: time.Now}
}

// ListPlayers returns the whole roster sorted by name.
func (s *RosterService) ListPlayers(ctx context.Context, req *connect.Request[api.ListPlayersRequest]) (*connect.Response[api.ListPlayersResponse], error) {
	players, err := s.store.LoadPlayers(ctx)
	if err != nil {
		return nil, internalError("Failed to load players", err)
	}
	roster.SortByName(players)

	slog.Debug("ListPlayers", "count", len(players))
	return connect.NewResponse(&api.ListPlayersResponse{Players: toAPIPlayers(players)}), nil
}

// SavePlayer creates or replaces a player.
func (s *RosterService) SavePlayer(ctx context.Context, req *connect.Request[api.SavePlayerRequest]) (*connect.Response[api.SavePlayerResponse], error) {
	if req.Msg.Player == nil {
		return nil, connect.NewError(connect.CodeInvalidArgument, errors.New("player is required"))
	}
	p := fromAPIPlayer(req.Msg.Player)
	p.Name = strings.TrimSpace(p.Name)
	slog.Info("SavePlayer request received", "player_id", p.ID, "name", p.Name)

	// Defaults for fields the form may leave out
	if p.Type == "" {
		p.Type = models.PlayerTypeMember
	}
	if p.Stars == 0 {
		p.Stars = models.DefaultStars
	}
	if p.IsMember() {
		p.SponsorID = ""
	}
	if err := roster.Validate(p); err != nil {
		return nil, rosterError(err)
	}

	isNew := p.ID == ""
	if isNew {
		p.ID = uuid.New().String()
	}

	var saved models.Player
	_, err := s.store.UpdatePlayers(ctx, func(players []models.Player) ([]models.Player, error) {
		if existing, ok := roster.Find(players, p.ID); ok {
			// Activity is changed through TogglePlayerStatus only
			p.IsActive = existing.IsActive
			if p.CreatedAt == 0 {
				p.CreatedAt = existing.CreatedAt
			}
		} else {
			p.IsActive = true
			if p.CreatedAt == 0 {
				p.CreatedAt = s.now().UnixMilli()
			}
		}
		if err := roster.CheckGuestSponsor(players, p); err != nil {
			return nil, err
		}
		saved = p
		return roster.Upsert(players, p), nil
	})
	if err != nil {
		return nil, rosterError(err)
	}

	slog.Info("Player saved", "player_id", saved.ID, "new", isNew)
	return connect.NewResponse(&api.SavePlayerResponse{Player: toAPIPlayer(saved)}), nil
}

// DeletePlayer removes a player. Guests it sponsored keep the dangling reference.
func (s *RosterService) DeletePlayer(ctx context.Context, req *connect.Request[api.DeletePlayerRequest]) (*connect.Response[api.DeletePlayerResponse], error) {
	slog.Info("DeletePlayer request received", "player_id", req.Msg.PlayerID)

	_, err := s.store.UpdatePlayers(ctx, func(players []models.Player) ([]models.Player, error) {
		return roster.Remove(players, req.Msg.PlayerID)
	})
	if err != nil {
		return nil, rosterError(err)
	}

	slog.Info("Player deleted", "player_id", req.Msg.PlayerID)
	return connect.NewResponse(&api.DeletePlayerResponse{}), nil
}

// TogglePlayerStatus flips the active flag.
func (s *RosterService) TogglePlayerStatus(ctx context.Context, req *connect.Request[api.TogglePlayerStatusRequest]) (*connect.Response[api.TogglePlayerStatusResponse], error) {
	p, err := s.updatePlayer(ctx, req.Msg.PlayerID, func(players []models.Player) ([]models.Player, error) {
		return roster.ToggleActive(players, req.Msg.PlayerID)
	})
	if err != nil {
		return nil, err
	}
	slog.Info("Player status toggled", "player_id", p.ID, "active", p.IsActive)
	return connect.NewResponse(&api.TogglePlayerStatusResponse{Player: toAPIPlayer(p)}), nil
}

// PromotePlayer turns a guest into a recurring member.
func (s *RosterService) PromotePlayer(ctx context.Context, req *connect.Request[api.PromotePlayerRequest]) (*connect.Response[api.PromotePlayerResponse], error) {
	p, err := s.updatePlayer(ctx, req.Msg.PlayerID, func(players []models.Player) ([]models.Player, error) {
		return roster.Promote(players, req.Msg.PlayerID)
	})
	if err != nil {
		return nil, err
	}
	slog.Info("Player promoted", "player_id", p.ID)
	return connect.NewResponse(&api.PromotePlayerResponse{Player: toAPIPlayer(p)}), nil
}

// DemotePlayer turns a recurring member into a guest.
func (s *RosterService) DemotePlayer(ctx context.Context, req *connect.Request[api.DemotePlayerRequest]) (*connect.Response[api.DemotePlayerResponse], error) {
	p, err := s.updatePlayer(ctx, req.Msg.PlayerID, func(players []models.Player) ([]models.Player, error) {
		return roster.Demote(players, req.Msg.PlayerID, req.Msg.SponsorID)
	})
	if err != nil {
		return nil, err
	}
	slog.Info("Player demoted", "player_id", p.ID, "sponsor_id", p.SponsorID)
	return connect.NewResponse(&api.DemotePlayerResponse{Player: toAPIPlayer(p)}), nil
}

// UpdateRating sets a player's stars.
func (s *RosterService) UpdateRating(ctx context.Context, req *connect.Request[api.UpdateRatingRequest]) (*connect.Response[api.UpdateRatingResponse], error) {
	p, err := s.updatePlayer(ctx, req.Msg.PlayerID, func(players []models.Player) ([]models.Player, error) {
		return roster.SetRating(players, req.Msg.PlayerID, req.Msg.Stars)
	})
	if err != nil {
		return nil, err
	}
	slog.Info("Player rating updated", "player_id", p.ID, "stars", p.Stars)
	return connect.NewResponse(&api.UpdateRatingResponse{Player: toAPIPlayer(p)}), nil
}

// SearchPlayers finds players by approximate name.
func (s *RosterService) SearchPlayers(ctx context.Context, req *connect.Request[api.SearchPlayersRequest]) (*connect.Response[api.SearchPlayersResponse], error) {
	players, err := s.store.LoadPlayers(ctx)
	if err != nil {
		return nil, internalError("Failed to load players", err)
	}
	matches := roster.Search(players, req.Msg.Query)

	slog.Debug("SearchPlayers", "query", req.Msg.Query, "count", len(matches))
	return connect.NewResponse(&api.SearchPlayersResponse{Players: toAPIPlayers(matches)}), nil
}

// GenerateAvatar asks the oracle for a profile picture. Nothing is stored;
// the client saves the returned URI with the player.
func (s *RosterService) GenerateAvatar(ctx context.Context, req *connect.Request[api.GenerateAvatarRequest]) (*connect.Response[api.GenerateAvatarResponse], error) {
	name := strings.TrimSpace(req.Msg.Name)
	if name == "" {
		return nil, connect.NewError(connect.CodeInvalidArgument, errors.New("name is required"))
	}
	if s.avatars == nil {
		return nil, connect.NewError(connect.CodeUnavailable, oracle.ErrDisabled)
	}

	uri, err := s.avatars.GenerateAvatar(ctx, name, req.Msg.IsGoalkeeper)
	if err != nil {
		slog.Warn("Avatar generation failed", "name", name, "error", err)
		return nil, connect.NewError(connect.CodeUnavailable, err)
	}
	return connect.NewResponse(&api.GenerateAvatarResponse{PhotoURL: uri}), nil
}

// updatePlayer applies a roster operation and returns the updated player.
func (s *RosterService) updatePlayer(ctx context.Context, id string, op func([]models.Player) ([]models.Player, error)) (models.Player, error) {
	players, err := s.store.UpdatePlayers(ctx, op)
	if err != nil {
		return models.Player{}, rosterError(err)
	}
	p, _ := roster.Find(players, id)
	return p, nil
}
