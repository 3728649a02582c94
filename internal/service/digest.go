package service

import (
	"context"
	"fmt"

	"github.com/Dan9191/bank-recommender/internal/models"
	"github.com/sirupsen/logrus"
)

// DigestSender delivers a recommendation digest
type DigestSender interface {
	SendRecommendationDigest(to, name string, resp *models.RecommendationResponse) error
}

// DigestService emails a client their current recommendations
type DigestService struct {
	clients         ClientStore
	recommendations *RecommendationService
	sender          DigestSender
	log             *logrus.Logger
}

// NewDigestService initializes a new digest service
func NewDigestService(clients ClientStore, recommendations *RecommendationService, sender DigestSender, log *logrus.Logger) *DigestService {
	return &DigestService{clients: clients, recommendations: recommendations, sender: sender, log: log}
}

// SendDigest emails the recommendations produced by mode to the client's address on file
func (s *DigestService) SendDigest(ctx context.Context, clientID, mode string) (*models.RecommendationResponse, error) {
	profile, err := s.clients.GetClientProfile(ctx, clientID)
	if err != nil {
		return nil, fmt.Errorf("failed to load client profile: %w", err)
	}
	if profile == nil {
		return nil, ErrClientNotFound
	}
	if profile.Email == "" {
		return nil, ErrNoRecipient
	}

	resp := s.recommendations.GetRecommendations(ctx, clientID, mode)
	name := profile.FullName
	if name == "" {
		name = "Valued Client"
	}
	if err := s.sender.SendRecommendationDigest(profile.Email, name, resp); err != nil {
		return nil, err
	}

	s.log.Infof("Recommendation digest with %d products sent to client %s", len(resp.Recommendations), clientID)
	return resp, nil
}
