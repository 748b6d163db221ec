package api

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/iudanet/vcresolve/internal/models"
	"github.com/iudanet/vcresolve/internal/validation"
	"github.com/iudanet/vcresolve/pkg/api"
)

// parseEnum ищет значение по имени без учета регистра; пустое имя дает zero value
func parseEnum[T interface {
	~int
	String() string
}](kind, name string, values ...T) (T, error) {
	var zero T
	if name == "" {
		return zero, nil
	}
	for _, v := range values {
		if strings.EqualFold(v.String(), name) {
			return v, nil
		}
	}
	return zero, fmt.Errorf("unknown %s %q", kind, name)
}

func parseConflictType(name string) (models.ConflictType, error) {
	return parseEnum("conflict type", name,
		models.ConflictTypeNone, models.ConflictTypeGet, models.ConflictTypeCheckin,
		models.ConflictTypeLocal, models.ConflictTypeMerge, models.ConflictTypeUnknown)
}

func parseItemType(name string) (models.ItemType, error) {
	return parseEnum("item type", name, models.ItemTypeAny, models.ItemTypeFolder, models.ItemTypeFile)
}

func parseResolution(name string) (models.Resolution, error) {
	return parseEnum("resolution", name,
		models.ResolutionNone, models.ResolutionAcceptMerge, models.ResolutionAcceptYours,
		models.ResolutionAcceptTheirs, models.ResolutionDeleteConflict,
		models.ResolutionAcceptYoursRenameTheirs, models.ResolutionOverwriteLocal)
}

// changeType собирает базовые флаги по именам и расширенное значение в один набор
func changeType(names []string, extended int32) (models.ChangeType, error) {
	flags, err := models.ParseChangeType(names)
	if err != nil {
		return models.ChangeTypeNone, err
	}
	return models.NewChangeType(flags, extended), nil
}

// ConflictFromAPI converts a wire conflict into the domain record.
// Change types are normalized here once.
func ConflictFromAPI(dto api.Conflict) (*models.Conflict, error) {
	for _, p := range []string{dto.YourServerItem, dto.YourServerItemSource, dto.TheirServerItem, dto.BaseServerItem} {
		if err := validation.ValidateOptionalServerPath(p); err != nil {
			return nil, fmt.Errorf("conflict %d: %w", dto.ID, err)
		}
	}
	if dto.TheirShelvesetOwner != "" {
		if err := validation.ValidateOwner(dto.TheirShelvesetOwner); err != nil {
			return nil, fmt.Errorf("conflict %d: %w", dto.ID, err)
		}
	}

	conflictType, err := parseConflictType(dto.Type)
	if err != nil {
		return nil, fmt.Errorf("conflict %d: %w", dto.ID, err)
	}

	c := &models.Conflict{
		ID:                   dto.ID,
		PendingChangeID:      dto.PendingChangeID,
		Reason:               dto.Reason,
		Type:                 conflictType,
		Options:              models.ConflictOptions(dto.Options),
		TheirVersionFrom:     dto.TheirVersionFrom,
		YourServerItemSource: dto.YourServerItemSource,
		TheirShelvesetName:   dto.TheirShelvesetName,
		TheirShelvesetOwner:  dto.TheirShelvesetOwner,
		SourceLocalItem:      dto.SourceLocalItem,
		TargetLocalItem:      dto.TargetLocalItem,
		Resolved:             dto.IsResolved,
		Forced:               dto.IsForced,
		NamespaceConflict:    dto.IsNamespaceConflict,
		ShelvesetConflict:    dto.IsShelvesetConflict,
	}

	if c.Your.ChangeType, err = changeType(dto.YourChangeType, dto.YourChangeTypeEx); err != nil {
		return nil, fmt.Errorf("conflict %d: your change: %w", dto.ID, err)
	}
	if c.YourLocalChangeType, err = changeType(dto.YourLocalChangeType, dto.YourLocalChangeTypeEx); err != nil {
		return nil, fmt.Errorf("conflict %d: your local change: %w", dto.ID, err)
	}
	if c.Base.ChangeType, err = changeType(dto.BaseChangeType, dto.BaseChangeTypeEx); err != nil {
		return nil, fmt.Errorf("conflict %d: base change: %w", dto.ID, err)
	}
	c.Their.ChangeType = models.NewChangeType(models.ChangeTypeNone, dto.TheirChangeTypeEx)

	if c.Your.ItemType, err = parseItemType(dto.YourItemType); err != nil {
		return nil, fmt.Errorf("conflict %d: %w", dto.ID, err)
	}
	if c.Their.ItemType, err = parseItemType(dto.TheirItemType); err != nil {
		return nil, fmt.Errorf("conflict %d: %w", dto.ID, err)
	}
	if c.Base.ItemType, err = parseItemType(dto.BaseItemType); err != nil {
		return nil, fmt.Errorf("conflict %d: %w", dto.ID, err)
	}

	resolution, err := parseResolution(dto.Resolution)
	if err != nil {
		return nil, fmt.Errorf("conflict %d: %w", dto.ID, err)
	}
	if resolution != models.ResolutionNone {
		c.State().Resolution = resolution
	}

	c.Your.ServerItem = dto.YourServerItem
	c.Your.ItemID = dto.YourItemID
	c.Your.Version = dto.YourVersion
	c.Your.LastMergedVersion = dto.YourLastMergedVersion
	c.Your.PropertyID = dto.YourPropertyID
	c.Your.DeletionID = dto.YourDeletionID
	c.Your.Encoding = models.Encoding(dto.YourEncoding)

	c.Their.ServerItem = dto.TheirServerItem
	c.Their.ItemID = dto.TheirItemID
	c.Their.Version = dto.TheirVersion
	c.Their.LastMergedVersion = dto.TheirLastMergedVersion
	c.Their.PropertyID = dto.TheirPropertyID
	c.Their.DeletionID = dto.TheirDeletionID
	c.Their.Encoding = models.Encoding(dto.TheirEncoding)
	c.Their.HashValue = dto.TheirHashValue
	c.Their.DownloadURL = dto.TheirDownloadURL

	c.Base.ServerItem = dto.BaseServerItem
	c.Base.ItemID = dto.BaseItemID
	c.Base.Version = dto.BaseVersion
	c.Base.PropertyID = dto.BasePropertyID
	c.Base.DeletionID = dto.BaseDeletionID
	c.Base.Encoding = models.Encoding(dto.BaseEncoding)
	c.Base.HashValue = dto.BaseHashValue
	c.Base.DownloadURL = dto.BaseDownloadURL

	return c, nil
}

// ConflictsFromAPI converts a list, stopping at the first invalid conflict.
func ConflictsFromAPI(dtos []api.Conflict) ([]*models.Conflict, error) {
	out := make([]*models.Conflict, 0, len(dtos))
	for _, dto := range dtos {
		c, err := ConflictFromAPI(dto)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}

// ResolutionToAPI describes the resolution chosen for c.
func ResolutionToAPI(c *models.Conflict) api.ConflictResolution {
	state := c.State()
	return api.ConflictResolution{
		ConflictID:            c.ID,
		Resolution:            state.Resolution.String(),
		NewPath:               state.Options.NewPath,
		NewEncoding:           int32(state.Options.NewEncoding),
		AcceptMergeProperties: propertiesToAPI(state.Options.AcceptMergeProperties),
	}
}

func propertiesToAPI(in []models.PropertyValue) []api.PropertyValue {
	if in == nil {
		return nil
	}
	out := make([]api.PropertyValue, len(in))
	for i, p := range in {
		out[i] = api.PropertyValue{Name: p.Name, Value: p.Value}
	}
	return out
}

func propertiesFromAPI(in []api.PropertyValue) []models.PropertyValue {
	out := make([]models.PropertyValue, len(in))
	for i, p := range in {
		out[i] = models.PropertyValue{Name: p.Name, Value: p.Value}
	}
	return out
}

func fileTypeFromAPI(in api.FileType) models.FileType {
	return models.FileType{
		Name:                  in.Name,
		Extensions:            in.Extensions,
		AllowMultipleCheckout: in.AllowMultipleCheckout,
	}
}

// DecodeConflicts reads a JSON array of wire conflicts.
func DecodeConflicts(r io.Reader) ([]*models.Conflict, error) {
	var dtos []api.Conflict
	if err := json.NewDecoder(r).Decode(&dtos); err != nil {
		return nil, fmt.Errorf("failed to decode conflicts: %w", err)
	}
	return ConflictsFromAPI(dtos)
}
