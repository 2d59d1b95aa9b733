// Package oracle talks to the external generative model used for team
// proposals and player avatars.
//
// Everything the model returns is untrusted: team proposals are validated and
// rebuilt by balancer.Reconstruct, and any error or empty answer fails the
// whole call.
package oracle

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"google.golang.org/genai"

	"github.com/mmynk/futmanager/internal/balancer"
	"github.com/mmynk/futmanager/internal/metrics"
)

var (
	// ErrDisabled is returned when no API key is configured.
	ErrDisabled = errors.New("oracle is not configured")

	// ErrEmptyResponse is returned when the model answers without usable content.
	ErrEmptyResponse = errors.New("oracle returned no content")
)

// Config holds the model settings.
type Config struct {
	APIKey     string
	TeamModel  string
	ImageModel string

	// Timeout bounds each call. Zero means no extra deadline.
	Timeout time.Duration
}

// generator is the subset of *genai.Models the client uses.
type generator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

// Client implements balancer.Proposer and avatar generation.
type Client struct {
	gen generator
	cfg Config
}

var _ balancer.Proposer = (*Client)(nil)

// New creates a Client for the Gemini API. It returns ErrDisabled when
// cfg.APIKey is empty.
func New(ctx context.Context, cfg Config) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, ErrDisabled
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create genai client: %w", err)
	}
	return newWithGenerator(client.Models, cfg), nil
}

func newWithGenerator(gen generator, cfg Config) *Client {
	return &Client{gen: gen, cfg: cfg}
}

// ProposeTeams asks the model for exactly req.TeamCount teams.
func (c *Client) ProposeTeams(ctx context.Context, req balancer.ProposalRequest) (teams []balancer.ProposedTeam, err error) {
	defer func() { metrics.OracleCalls.WithLabelValues("propose_teams", metrics.Outcome(err)).Inc() }()

	prompt, err := TeamPrompt(req)
	if err != nil {
		return nil, err
	}

	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	slog.Debug("Requesting team proposal", "model", c.cfg.TeamModel, "players", len(req.Players), "teams", req.TeamCount)
	resp, err := c.gen.GenerateContent(ctx, c.cfg.TeamModel, genai.Text(prompt), &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema:   proposalSchema,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to generate teams: %w", err)
	}
	if resp == nil {
		return nil, ErrEmptyResponse
	}
	return ParseProposal(resp.Text())
}

// GenerateAvatar returns a data URI ("data:<mime>;base64,<data>") with a
// generated profile picture.
func (c *Client) GenerateAvatar(ctx context.Context, name string, goalkeeper bool) (uri string, err error) {
	defer func() { metrics.OracleCalls.WithLabelValues("generate_avatar", metrics.Outcome(err)).Inc() }()

	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	resp, err := c.gen.GenerateContent(ctx, c.cfg.ImageModel, genai.Text(AvatarPrompt(name, goalkeeper)), nil)
	if err != nil {
		return "", fmt.Errorf("failed to generate avatar: %w", err)
	}
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", ErrEmptyResponse
	}
	for _, part := range resp.Candidates[0].Content.Parts {
		if part != nil && part.InlineData != nil && len(part.InlineData.Data) > 0 {
			return "data:" + part.InlineData.MIMEType + ";base64," +
				base64.StdEncoding.EncodeToString(part.InlineData.Data), nil
		}
	}
	return "", fmt.Errorf("%w: no image data", ErrEmptyResponse)
}

func (c *Client) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if c.cfg.Timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, c.cfg.Timeout)
}

// proposalSchema constrains the model to [{name, playerIds}].
var proposalSchema = &genai.Schema{
	Type: genai.TypeArray,
	Items: &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"name": {Type: genai.TypeString},
			"playerIds": {
				Type:  genai.TypeArray,
				Items: &genai.Schema{Type: genai.TypeString},
			},
		},
		Required: []string{"name", "playerIds"},
	},
}

// ParseProposal decodes the model's JSON answer. Structural checks against
// the player pool happen in balancer.Reconstruct.
func ParseProposal(text string) ([]balancer.ProposedTeam, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, ErrEmptyResponse
	}
	// some models wrap JSON in a markdown fence even in JSON mode
	text = strings.TrimPrefix(text, "```json")
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimSuffix(text, "```")

	var teams []balancer.ProposedTeam
	if err := json.Unmarshal([]byte(text), &teams); err != nil {
		return nil, fmt.Errorf("%w: %v", balancer.ErrMalformedProposal, err)
	}
	if len(teams) == 0 {
		return nil, ErrEmptyResponse
	}
	return teams, nil
}
