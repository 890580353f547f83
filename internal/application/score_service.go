package application

import (
	"context"
	"fmt"
	"runtime"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/abdidvp/wuxing/internal/domain"
	"github.com/abdidvp/wuxing/internal/domain/scoring"
)

// ScoreService orchestrates the scoring pipeline:
// load config → parse notation → score → check minimums.
type ScoreService struct {
	parser       domain.PillarParser
	configLoader domain.ConfigLoader
	logger       *zap.Logger
}

// NewScoreService wires the service. A nil logger disables logging.
func NewScoreService(
	parser domain.PillarParser,
	configLoader domain.ConfigLoader,
	logger *zap.Logger,
) *ScoreService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ScoreService{
		parser:       parser,
		configLoader: configLoader,
		logger:       logger,
	}
}

// ScoreChart parses input in the given notation and scores it.
func (s *ScoreService) ScoreChart(input string, n domain.Notation) (*domain.ScoringResult, error) {
	fp, err := s.parser.Parse(input, n)
	if err != nil {
		return nil, fmt.Errorf("parsing pillars: %w", err)
	}
	return s.ScorePillars(fp)
}

// ScorePillars scores an already parsed chart.
func (s *ScoreService) ScorePillars(fp domain.FourPillars) (*domain.ScoringResult, error) {
	res, err := scoring.Score(fp)
	if err != nil {
		s.logger.Debug("scoring failed", zap.String("pillars", fp.String()), zap.Error(err))
		return nil, err
	}
	s.logger.Debug("chart scored",
		zap.String("pillars", fp.String()),
		zap.Stringer("season", res.Season),
		zap.Stringer("strongest", res.Strongest()),
		zap.Stringer("weakest", res.Weakest()),
		zap.Int("exempt", len(res.Exempt)),
	)
	return res, nil
}

// ScoreBatch scores charts concurrently and returns results in input order.
// The first failure cancels the remaining work.
func (s *ScoreService) ScoreBatch(ctx context.Context, charts []domain.ChartSpec, n domain.Notation) ([]domain.ChartResult, error) {
	results := make([]domain.ChartResult, len(charts))

	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(runtime.GOMAXPROCS(0))
	for i, ch := range charts {
		eg.Go(func() error {
			if err := egCtx.Err(); err != nil {
				return err
			}
			res, err := s.ScoreChart(ch.Pillars, n)
			if err != nil {
				return fmt.Errorf("chart %q: %w", ch.Name, err)
			}
			results[i] = domain.ChartResult{Name: ch.Name, Result: res}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	s.logger.Info("batch scored", zap.Int("charts", len(charts)))
	return results, nil
}

// ScoreProject loads .wuxing.yaml from dir, scores every configured chart
// and records min_scores violations.
func (s *ScoreService) ScoreProject(ctx context.Context, dir string) (*domain.ProjectReport, domain.ProjectConfig, error) {
	cfg, err := s.configLoader.Load(dir)
	if err != nil {
		return nil, cfg, fmt.Errorf("loading config: %w", err)
	}
	if len(cfg.Charts) == 0 {
		return nil, cfg, fmt.Errorf("no charts configured in %s", dir)
	}

	results, err := s.ScoreBatch(ctx, cfg.Charts, cfg.Notation)
	if err != nil {
		return nil, cfg, err
	}

	report := &domain.ProjectReport{Charts: results}
	for _, r := range results {
		for _, f := range cfg.BelowMinimum(r.Result) {
			report.Failures = append(report.Failures, r.Name+": "+f)
		}
	}
	if !report.Passed() {
		s.logger.Warn("minimum scores not met", zap.Strings("failures", report.Failures))
	}
	return report, cfg, nil
}
