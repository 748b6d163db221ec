// Package redundancy detects conflicts where both sides ended up with the same result.
package redundancy

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/iudanet/vcresolve/internal/client/classifier"
	"github.com/iudanet/vcresolve/internal/models"
	"github.com/iudanet/vcresolve/internal/vcpath"
)

// ErrHashCanceled возвращается, если подсчет хэша был прерван через контекст.
var ErrHashCanceled = errors.New("local hash calculation canceled")

//go:generate moq -out propertysource_mock.go . PropertySource
//go:generate moq -out propertiesmerger_mock.go . PropertiesMerger

// PropertySource загружает свойства версионируемых элементов с сервера.
// Отсутствующий элемент дает пустой список без ошибки.
type PropertySource interface {
	ItemProperties(ctx context.Context, serverItem string, version models.VersionSpec) ([]models.PropertyValue, error)
	ShelvedChangeProperties(ctx context.Context, shelveset, owner, serverItem string) ([]models.PropertyValue, error)
}

// PropertiesMerger сводит три набора свойств к итогу слияния
type PropertiesMerger interface {
	MergeProperties(base, yours, theirs []models.PropertyValue) *models.PropertiesMergeSummary
}

// Detector определяет избыточные конфликты и поддерживает кэши сессии разрешения.
type Detector interface {
	// LocalHashValue возвращает кэшированный MD5 локального файла или nil, если кэш невалиден
	LocalHashValue(c *models.Conflict) []byte
	// UpdateLocalHashValue пересчитывает MD5, если кэш невалиден
	UpdateLocalHashValue(ctx context.Context, c *models.Conflict) error
	MayBeRedundant(c *models.Conflict, level models.ServiceLevel) bool
	ContentMayHaveChanged(c *models.Conflict) bool
	ResetChangeSummaryIfLocalFileModified(c *models.Conflict)
	// CleanUpMergedFile удаляет merged-файл конфликта, ошибки только логируются
	CleanUpMergedFile(c *models.Conflict)
	IsRedundant(ctx context.Context, c *models.Conflict, quick bool, level models.ServiceLevel) (bool, error)
	MergeProperties(ctx context.Context, c *models.Conflict) (*models.PropertiesMergeSummary, error)
	DownloadProperties(ctx context.Context, c *models.Conflict) error
}

type detector struct {
	fs         FileSystem
	properties PropertySource
	merger     PropertiesMerger
	logger     *slog.Logger
}

// NewDetector creates a redundancy detector.
func NewDetector(fs FileSystem, properties PropertySource, merger PropertiesMerger, logger *slog.Logger) Detector {
	return &detector{
		fs:         fs,
		properties: properties,
		merger:     merger,
		logger:     logger,
	}
}

// coreChangeTypes изменения, которые должны совпасть с обеих сторон.
// Edit не учитывается, так как содержимое сравнивается отдельно,
// rename - потому что переименование родителя помечает и дочерние элементы.
var coreChangeTypes = models.ChangeTypeAll.Remove(
	models.ChangeTypeLock.Combine(models.ChangeTypeEdit).Combine(models.ChangeTypeRename),
)

// localModTime returns 0 when the file is missing or cannot be stat'ed.
func (d *detector) localModTime(c *models.Conflict) int64 {
	path := c.LocalPath()
	if path == "" {
		return 0
	}
	mtime, err := d.fs.ModTime(path)
	if err != nil {
		d.logger.Warn("Could not determine local file modification time", "path", path, "error", err)
		return 0
	}
	return mtime
}

func (d *detector) LocalHashValue(c *models.Conflict) []byte {
	state := c.State()
	if state.LocalHash.State(d.localModTime(c)) != models.CacheValid {
		state.LocalHash = models.HashCache{}
		return nil
	}
	return state.LocalHash.Value
}

func (d *detector) UpdateLocalHashValue(ctx context.Context, c *models.Conflict) error {
	if d.LocalHashValue(c) != nil {
		return nil
	}

	path := c.LocalPath()
	if path == "" || !d.fs.Exists(path) {
		return nil
	}

	hash, err := d.fs.HashFile(ctx, path)
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return fmt.Errorf("%w: %w", ErrHashCanceled, err)
		}
		d.logger.Warn("Could not determine local file hash value for conflict",
			"conflict_id", c.ID, "path", path, "error", err)
		return nil
	}

	c.State().LocalHash = models.HashCache{Value: hash, ModTime: d.localModTime(c)}
	return nil
}

func (d *detector) MayBeRedundant(c *models.Conflict, level models.ServiceLevel) bool {
	if level < models.ServiceLevelRedundancyMetadata {
		return false
	}

	if !classifier.IsVersionGetCheckinConflict(c) {
		return false
	}

	// Разные типы элементов бывают у конфликтов из удаленных shelveset'ов
	if c.Your.ItemType != c.Their.ItemType {
		return false
	}

	theirs := c.Their.ChangeType.Retain(coreChangeTypes)
	yours := c.Your.ChangeType.Retain(coreChangeTypes)
	if c.ShelvesetConflict && c.Type == models.ConflictTypeMerge {
		yours = c.YourLocalChangeType.Retain(coreChangeTypes)
	}
	if !theirs.Equal(yours) {
		return false
	}

	if classifier.IsNameChanged(c) &&
		(c.Their.ServerItem == "" || c.Your.ServerItem == "" ||
			!vcpath.Equal(c.Their.ServerItem, c.Your.ServerItem, false)) {
		return false
	}

	if classifier.IsEncodingChanged(c) && c.Their.Encoding != c.Your.Encoding {
		return false
	}

	return true
}

func (d *detector) ContentMayHaveChanged(c *models.Conflict) bool {
	changes := c.Your.ChangeType.Combine(c.Their.ChangeType).Combine(c.YourLocalChangeType)
	return changes.ContainsAny(models.ChangeTypeEdit.Combine(models.ChangeTypeBranch)) &&
		(c.Your.ItemType == models.ItemTypeFile || c.Their.ItemType == models.ItemTypeFile)
}

func (d *detector) ResetChangeSummaryIfLocalFileModified(c *models.Conflict) {
	if !c.HasState() {
		return
	}
	state := c.State()
	if state.ContentMergeSummary == nil {
		return
	}

	// Нулевое время значит, что надежной отметки нет и итог надо пересчитать
	recorded := state.ContentSummaryModTime
	if recorded != 0 && recorded == d.localModTime(c) {
		return
	}

	state.ContentMergeSummary = nil
	state.ContentSummaryModTime = 0
	d.CleanUpMergedFile(c)
}

func (d *detector) CleanUpMergedFile(c *models.Conflict) {
	if !c.HasState() {
		return
	}
	state := c.State()
	if state.MergedFileName == "" {
		return
	}
	if err := d.fs.Remove(state.MergedFileName); err != nil {
		d.logger.Debug("Failed to remove merged file", "path", state.MergedFileName, "error", err)
	}
	c.SetMergedFileName("")
}

func (d *detector) IsRedundant(ctx context.Context, c *models.Conflict, quick bool, level models.ServiceLevel) (bool, error) {
	if !d.MayBeRedundant(c, level) {
		return false, nil
	}

	// Без изменений содержимого достаточно проверок MayBeRedundant
	redundant := true
	if d.ContentMayHaveChanged(c) {
		d.ResetChangeSummaryIfLocalFileModified(c)

		if summary := c.State().ContentMergeSummary; summary != nil {
			redundant = summary.Conflicting == 0 && summary.LatestChanged == 0 && summary.LocalChanged == 0
		} else {
			if !quick {
				if err := d.UpdateLocalHashValue(ctx, c); err != nil {
					return false, err
				}
			}

			theirs := c.Their.HashValue
			local := d.LocalHashValue(c)
			redundant = theirs != nil && local != nil && len(theirs) != 0 && bytes.Equal(theirs, local)
		}
	}

	if classifier.IsPropertyConflict(c) {
		summary, err := d.MergeProperties(ctx, c)
		if err != nil {
			return false, err
		}
		redundant = redundant && summary.HasNoDifferences()
	}

	return redundant, nil
}
