// Package resolve automatically resolves conflicts that need no human decision.
package resolve

import (
	"context"
	"log/slog"
	"sync"

	"github.com/hashicorp/go-multierror"
	"golang.org/x/sync/errgroup"

	"github.com/iudanet/vcresolve/internal/client/automerge"
	"github.com/iudanet/vcresolve/internal/client/classifier"
	"github.com/iudanet/vcresolve/internal/client/redundancy"
	"github.com/iudanet/vcresolve/internal/models"
)

// DefaultConcurrency число конфликтов, обрабатываемых параллельно
const DefaultConcurrency = 4

//go:generate moq -out contentmerger_mock.go . ContentMerger
//go:generate moq -out resolver_mock.go . ConflictResolver

// ContentMerger строит итог слияния содержимого и merged-файл
type ContentMerger interface {
	MergeContent(ctx context.Context, c *models.Conflict) error
}

// ConflictResolver отправляет выбранные разрешения на сервер.
// Успешно разрешенные конфликты помечаются Resolved.
type ConflictResolver interface {
	ResolveConflicts(ctx context.Context, conflicts []*models.Conflict, silent bool) error
}

// Result итог автоматического разрешения
type Result struct {
	// Resolved конфликты, которые сервер пометил разрешенными
	Resolved   []*models.Conflict
	Unresolved []*models.Conflict
	// Err ошибки отдельных конфликтов, не прерывающие обработку
	Err error
}

// Service runs the auto-resolve triage.
type Service interface {
	AutoResolve(ctx context.Context, conflicts []*models.Conflict, opts models.AutoResolveOptions, level models.ServiceLevel) *Result
}

type service struct {
	detector    redundancy.Detector
	registry    classifier.FileTypeRegistry
	content     ContentMerger
	resolver    ConflictResolver
	fs          redundancy.FileSystem
	logger      *slog.Logger
	concurrency int
}

func NewService(
	detector redundancy.Detector,
	registry classifier.FileTypeRegistry,
	content ContentMerger,
	resolver ConflictResolver,
	fs redundancy.FileSystem,
	concurrency int,
	logger *slog.Logger,
) Service {
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}
	return &service{
		detector:    detector,
		registry:    registry,
		content:     content,
		resolver:    resolver,
		fs:          fs,
		logger:      logger,
		concurrency: concurrency,
	}
}

type verdict int

const (
	verdictSkip verdict = iota // уже разрешен
	verdictUnresolved
	verdictResolve
)

// AutoResolve picks a resolution for every conflict that qualifies under opts,
// submits them and reports what is left. Per-conflict failures never abort
// the run: the conflict is reported unresolved and the error goes to Result.Err.
func (s *service) AutoResolve(ctx context.Context, conflicts []*models.Conflict, opts models.AutoResolveOptions, level models.ServiceLevel) *Result {
	verdicts := make([]verdict, len(conflicts))

	var (
		mu   sync.Mutex
		errs *multierror.Error
	)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.concurrency)

	for i, c := range conflicts {
		g.Go(func() error {
			v, err := s.triage(gctx, c, opts, level)
			if err != nil {
				s.logger.Info("Caught error while auto resolving conflict", "conflict_id", c.ID, "error", err)
				c.State().Resolution = models.ResolutionNone
				c.AutoResolved = false
				v = verdictUnresolved

				mu.Lock()
				errs = multierror.Append(errs, err)
				mu.Unlock()
			}
			verdicts[i] = v
			return nil
		})
	}
	_ = g.Wait()

	result := &Result{}
	var toResolve []*models.Conflict
	for i, c := range conflicts {
		switch verdicts[i] {
		case verdictResolve:
			toResolve = append(toResolve, c)
		case verdictUnresolved:
			result.Unresolved = append(result.Unresolved, c)
		}
	}

	if len(toResolve) > 0 {
		silent := opts.Contains(models.AutoResolveSilent)
		if err := s.resolver.ResolveConflicts(ctx, toResolve, silent); err != nil {
			if silent {
				s.logger.Debug("Failed to resolve conflicts", "error", err)
			} else {
				s.logger.Warn("Failed to resolve conflicts", "error", err)
			}
			errs = multierror.Append(errs, err)
		}
	}

	for _, c := range toResolve {
		if c.Resolved {
			result.Resolved = append(result.Resolved, c)
			continue
		}
		c.State().Resolution = models.ResolutionNone
		c.AutoResolved = false
		result.Unresolved = append(result.Unresolved, c)
	}

	// Merged-файлы отклоненных конфликтов больше не нужны
	for _, c := range result.Unresolved {
		s.detector.CleanUpMergedFile(c)
	}

	result.Err = errs.ErrorOrNil()
	s.logger.Debug("Auto resolve finished",
		"resolved", len(result.Resolved), "unresolved", len(result.Unresolved))
	return result
}

func (s *service) triage(ctx context.Context, c *models.Conflict, opts models.AutoResolveOptions, level models.ServiceLevel) (verdict, error) {
	if c.Resolved {
		return verdictSkip, nil
	}

	// Baseless merge никогда не разрешается автоматически
	if classifier.IsBaseless(c) {
		return verdictUnresolved, nil
	}

	resolution := models.ResolutionNone
	if opts.Contains(models.AutoResolveRedundant) {
		redundant, err := s.detector.IsRedundant(ctx, c, false, level)
		if err != nil {
			return verdictUnresolved, err
		}
		if redundant {
			resolution = models.ResolutionAcceptTheirs
		}
	}

	if resolution == models.ResolutionNone {
		valid, err := classifier.IsValidForAutoMerge(ctx, c, s.registry)
		if err != nil {
			return verdictUnresolved, err
		}
		if !valid {
			return verdictUnresolved, nil
		}
		resolution = models.ResolutionAcceptMerge
	}

	if resolution == models.ResolutionAcceptMerge && classifier.CanMergeContent(c) {
		ok, err := s.mergeContent(ctx, c, opts)
		if err != nil || !ok {
			return verdictUnresolved, err
		}
	}

	if resolution == models.ResolutionAcceptMerge && classifier.IsPropertyConflict(c) {
		summary, err := s.detector.MergeProperties(ctx, c)
		if err != nil {
			return verdictUnresolved, err
		}
		if automerge.HasConflictingPropertyChange(c) {
			return verdictUnresolved, nil
		}
		c.State().Options.AcceptMergeProperties = summary.Merged
	}

	if classifier.IsYourNameChanged(c) && classifier.IsTheirNameChanged(c) {
		// Сравнение с учетом регистра: разница только в регистре не разрешается
		if !classifier.IsNameChangeRedundant(c) {
			return verdictUnresolved, nil
		}
		c.State().Options.NewPath = c.Your.ServerItem
	}

	c.State().Resolution = resolution
	c.AutoResolved = true
	return verdictResolve, nil
}

// mergeContent reports whether the content merge result allows AcceptMerge.
func (s *service) mergeContent(ctx context.Context, c *models.Conflict, opts models.AutoResolveOptions) (bool, error) {
	basic, err := classifier.IsBasicMergeAllowed(ctx, c, s.registry)
	if err != nil {
		return false, err
	}

	if basic && !classifier.IsEncodingMismatched(c) {
		s.detector.ResetChangeSummaryIfLocalFileModified(c)

		// Повторное слияние, если merged-файл пропал после неудачной отправки
		state := c.State()
		if state.ContentMergeSummary == nil || state.MergedFileName == "" || !s.fs.Exists(state.MergedFileName) {
			if err := s.content.MergeContent(ctx, c); err != nil {
				return false, err
			}
		}
	}

	summary := c.State().ContentMergeSummary
	if summary == nil || automerge.HasConflictingContentChange(summary) || !automerge.Applicable(c, opts) {
		return false, nil
	}
	return true, nil
}
