package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Dan9191/bank-recommender/internal/cache"
	"github.com/Dan9191/bank-recommender/internal/catalog"
	"github.com/Dan9191/bank-recommender/internal/config"
	"github.com/Dan9191/bank-recommender/internal/insights"
	"github.com/Dan9191/bank-recommender/internal/integrations/textgen"
	"github.com/Dan9191/bank-recommender/internal/models"
	"github.com/Dan9191/bank-recommender/internal/profiler"
	"github.com/Dan9191/bank-recommender/internal/scoring"
	"github.com/Dan9191/bank-recommender/internal/snapshot"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// RecommendationService produces the recommendation response for a client
type RecommendationService struct {
	clients     ClientStore
	cache       cache.Store
	catalog     *catalog.Catalog
	mapper      *insights.Mapper
	generator   InsightGenerator
	rates       RateSource
	defaultMode string
	log         *logrus.Logger
	now         func() time.Time
}

// NewRecommendationService wires the service. generator and rates may be nil.
func NewRecommendationService(clients ClientStore, store cache.Store, c *catalog.Catalog, generator InsightGenerator, rates RateSource, defaultMode string, log *logrus.Logger) *RecommendationService {
	if defaultMode == "" {
		defaultMode = config.ModeScoring
	}
	return &RecommendationService{
		clients:     clients,
		cache:       store,
		catalog:     c,
		mapper:      insights.NewMapper(c),
		generator:   generator,
		rates:       rates,
		defaultMode: defaultMode,
		log:         log,
		now:         time.Now,
	}
}

// clientState is everything derived from the stored records for one request
type clientState struct {
	data     models.ClientData
	snapshot models.ClientSnapshot
	risk     models.RiskProfile
}

// GetRecommendations never fails: any internal error yields the fallback response
func (s *RecommendationService) GetRecommendations(ctx context.Context, clientID, mode string) *models.RecommendationResponse {
	if mode == "" {
		mode = s.defaultMode
	}

	resp, err := s.recommend(ctx, clientID, mode)
	if err != nil {
		s.log.WithFields(logrus.Fields{"client_id": clientID, "mode": mode}).
			Errorf("Failed to build recommendations, serving fallback: %v", err)
		return s.fallbackResponse()
	}
	return resp
}

func (s *RecommendationService) fallbackResponse() *models.RecommendationResponse {
	return &models.RecommendationResponse{
		Recommendations: insights.Fallback(s.catalog),
		Fallback:        true,
	}
}

func (s *RecommendationService) recommend(ctx context.Context, clientID, mode string) (*models.RecommendationResponse, error) {
	st, err := s.load(ctx, clientID)
	if err != nil {
		return nil, err
	}

	resp := &models.RecommendationResponse{
		ClientProfile: &models.ClientProfileView{
			RiskProfile:       st.risk,
			InvestmentProfile: profiler.ComputeInvestmentProfile(st.snapshot),
			Snapshot:          st.snapshot,
		},
	}

	var recs []models.Recommendation
	switch mode {
	case config.ModeScoring:
		scored := scoring.ScoreCatalog(s.catalog.All(), st.snapshot, st.risk)
		recs = scoring.Rank(scored, st.snapshot, scoring.DefaultMinScore, scoring.DefaultTopN)
	case config.ModeInsights:
		resp.Insights = insights.Generate(st.snapshot, st.risk, st.data.Transactions)
		recs = s.mapper.Map(resp.Insights, st.snapshot, st.risk, st.data.Transactions)
	case config.ModeAI:
		entry, err := s.cachedInsights(ctx, clientID, st)
		if err != nil {
			return nil, err
		}
		resp.Insights = entry.Insights
		resp.Summary = entry.Summary
		recs = s.mapper.Map(entry.Insights, st.snapshot, st.risk, st.data.Transactions)
	default:
		return nil, fmt.Errorf("unknown recommendation mode %q", mode)
	}

	resp.Fallback = len(recs) == 0
	resp.Recommendations = insights.WithFallback(s.catalog, recs)
	return resp, nil
}

// load reads every client source concurrently; any failure fails the whole read
func (s *RecommendationService) load(ctx context.Context, clientID string) (*clientState, error) {
	var data models.ClientData
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() (err error) {
		data.Profile, err = s.clients.GetClientProfile(gctx, clientID)
		return err
	})
	g.Go(func() (err error) {
		data.Inputs, err = s.clients.GetFinancialInputs(gctx, clientID)
		return err
	})
	g.Go(func() (err error) {
		data.Metrics, err = s.clients.GetFinancialMetrics(gctx, clientID)
		return err
	})
	g.Go(func() (err error) {
		data.Behavior, err = s.clients.GetBehaviorSummary(gctx, clientID)
		return err
	})
	g.Go(func() (err error) {
		data.Transactions, err = s.clients.GetTransactions(gctx, clientID)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to load client %s: %w", clientID, err)
	}

	snap := snapshot.Build(data)
	return &clientState{
		data:     data,
		snapshot: snap,
		risk:     profiler.ComputeRiskProfile(snap),
	}, nil
}

// cachedInsights reuses the stored entry while the snapshot hash matches.
// Two concurrent requests for a stale client may both regenerate; the last upsert wins.
func (s *RecommendationService) cachedInsights(ctx context.Context, clientID string, st *clientState) (*models.CacheEntry, error) {
	hash, err := snapshot.Hash(st.snapshot)
	if err != nil {
		return nil, err
	}

	entry, err := s.cache.Get(ctx, clientID)
	if err != nil {
		return nil, fmt.Errorf("failed to read insight cache: %w", err)
	}
	if !snapshot.ShouldRegenerate(entry, hash) {
		s.log.Debugf("Reusing cached insights for client %s", clientID)
		return entry, nil
	}
	return s.regenerate(ctx, clientID, st, hash)
}

func (s *RecommendationService) regenerate(ctx context.Context, clientID string, st *clientState, hash string) (*models.CacheEntry, error) {
	if s.generator == nil {
		return nil, ErrTextGenDisabled
	}

	in := textgen.PromptInput{
		Profile:      st.data.Profile,
		Snapshot:     st.snapshot,
		Transactions: st.data.Transactions,
	}
	if s.rates != nil {
		rate, err := s.rates.GetRate(ctx)
		if err != nil {
			s.log.Warnf("Reference rate unavailable, prompting without market context: %v", err)
		} else {
			in.Market = rate.MarketContext()
		}
	}

	res, err := s.generator.RequestInsights(ctx, in)
	if err != nil {
		return nil, err
	}

	entry := &models.CacheEntry{
		ClientID:    clientID,
		Insights:    res.AsInsights(),
		Summary:     res.Summary,
		VersionHash: hash,
		GeneratedAt: s.now().UTC(),
	}
	if err := s.cache.Put(ctx, entry); err != nil {
		return nil, fmt.Errorf("failed to store insights: %w", err)
	}
	s.log.Infof("Generated %d insights for client %s", len(entry.Insights), clientID)
	return entry, nil
}

// RefreshInsights regenerates a client's insights regardless of the cached hash.
// Text generation errors are returned unchanged for operator diagnosis.
func (s *RecommendationService) RefreshInsights(ctx context.Context, clientID string) (*models.CacheEntry, error) {
	st, err := s.load(ctx, clientID)
	if err != nil {
		return nil, err
	}
	hash, err := snapshot.Hash(st.snapshot)
	if err != nil {
		return nil, err
	}
	return s.regenerate(ctx, clientID, st, hash)
}

// ClearInsights deletes the cached entry for a client
func (s *RecommendationService) ClearInsights(ctx context.Context, clientID string) error {
	if err := s.cache.Delete(ctx, clientID); err != nil {
		return fmt.Errorf("failed to clear insights: %w", err)
	}
	s.log.Infof("Cleared cached insights for client %s", clientID)
	return nil
}

// RefreshStaleInsights regenerates every cached entry whose snapshot changed.
// It keeps going past per-client failures and returns them joined.
func (s *RecommendationService) RefreshStaleInsights(ctx context.Context) (int, error) {
	ids, err := s.cache.ListClientIDs(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to list cached clients: %w", err)
	}

	var (
		refreshed int
		errs      []error
	)
	for _, id := range ids {
		if err := ctx.Err(); err != nil {
			return refreshed, err
		}
		st, err := s.load(ctx, id)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		hash, err := snapshot.Hash(st.snapshot)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		entry, err := s.cache.Get(ctx, id)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		if !snapshot.ShouldRegenerate(entry, hash) {
			continue
		}
		if _, err := s.regenerate(ctx, id, st, hash); err != nil {
			errs = append(errs, fmt.Errorf("client %s: %w", id, err))
			continue
		}
		refreshed++
	}

	s.log.Infof("Insight refresh finished: %d of %d clients regenerated, %d failures", refreshed, len(ids), len(errs))
	return refreshed, errors.Join(errs...)
}
