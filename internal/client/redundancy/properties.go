package redundancy

import (
	"context"
	"fmt"

	"github.com/iudanet/vcresolve/internal/client/classifier"
	"github.com/iudanet/vcresolve/internal/models"
)

// MergeProperties returns nil for conflicts without a property conflict.
// The summary is computed once per resolution session.
func (d *detector) MergeProperties(ctx context.Context, c *models.Conflict) (*models.PropertiesMergeSummary, error) {
	if !classifier.IsPropertyConflict(c) {
		return nil, nil
	}

	state := c.State()
	if state.PropertiesMergeSummary != nil {
		return state.PropertiesMergeSummary, nil
	}

	if !state.PropertiesLoaded {
		if err := d.DownloadProperties(ctx, c); err != nil {
			return nil, err
		}
	}

	state.PropertiesMergeSummary = d.merger.MergeProperties(state.BaseProperties, state.YourProperties, state.TheirProperties)
	return state.PropertiesMergeSummary, nil
}

func (d *detector) DownloadProperties(ctx context.Context, c *models.Conflict) error {
	state := c.State()

	yourPath, yourVersion := c.ServerPath(), models.ChangesetVersion(c.Your.Version)
	if classifier.IsVersionGetCheckinConflict(c) || c.ShelvesetConflict {
		yourPath, yourVersion = c.Your.ServerItem, models.WorkspaceVersion()
	}

	yours, err := d.properties.ItemProperties(ctx, yourPath, yourVersion)
	if err != nil {
		return fmt.Errorf("failed to download your properties: %w", err)
	}

	var base []models.PropertyValue
	if c.Base.ServerItem != "" {
		base, err = d.properties.ItemProperties(ctx, c.Base.ServerItem, models.ChangesetVersion(c.Base.Version))
		if err != nil {
			return fmt.Errorf("failed to download base properties: %w", err)
		}
	}

	var theirs []models.PropertyValue
	if c.ShelvesetConflict && c.Type == models.ConflictTypeMerge {
		theirs, err = d.properties.ShelvedChangeProperties(ctx, c.TheirShelvesetName, c.TheirShelvesetOwner, c.Their.ServerItem)
	} else {
		theirs, err = d.properties.ItemProperties(ctx, c.Their.ServerItem, models.ChangesetVersion(c.Their.Version))
	}
	if err != nil {
		return fmt.Errorf("failed to download their properties: %w", err)
	}
	if theirs == nil {
		theirs = []models.PropertyValue{}
	}

	state.YourProperties = yours
	state.BaseProperties = base
	state.TheirProperties = theirs
	state.PropertiesLoaded = true

	d.logger.Debug("Downloaded properties", "conflict_id", c.ID,
		"your", len(yours), "base", len(base), "their", len(theirs))
	return nil
}
