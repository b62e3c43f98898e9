package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/swarmwrapped/wrapped-backend-go/internal/analysis"
	"github.com/swarmwrapped/wrapped-backend-go/internal/foursquare"
	"github.com/swarmwrapped/wrapped-backend-go/internal/models"
)

// ErrNoCheckins means the year genuinely has no data. It is deliberately a
// different failure than an upstream fetch error so the two are never
// confused.
var ErrNoCheckins = errors.New("no check-ins found for the requested year")

// WrappedService orchestrates fetching a year of check-ins and running the
// analysis pipeline over them.
type WrappedService struct {
	client *foursquare.Client
	year   int
}

// NewWrappedService creates a new wrapped service
func NewWrappedService(client *foursquare.Client, year int) *WrappedService {
	return &WrappedService{client: client, year: year}
}

// Year returns the report year.
func (s *WrappedService) Year() int {
	return s.year
}

// GenerateReport fetches the user's check-ins and analyzes them.
func (s *WrappedService) GenerateReport(ctx context.Context, token string, excludeSensitive bool) (*models.Stats, error) {
	checkins, err := s.client.FetchCheckins(ctx, token, s.year)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch check-ins: %w", err)
	}

	stats := analysis.Analyze(checkins, excludeSensitive)
	if stats == nil {
		return nil, ErrNoCheckins
	}

	logrus.Infof("[WrappedService] Generated report: %d check-ins, %d venues, personality=%s",
		stats.TotalCheckins, stats.UniqueVenues, stats.Personality.Type)
	return stats, nil
}

// GetProfile fetches the user's display profile.
func (s *WrappedService) GetProfile(ctx context.Context, token string) (*models.Profile, error) {
	profile, err := s.client.FetchProfile(ctx, token)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch profile: %w", err)
	}
	return profile, nil
}
