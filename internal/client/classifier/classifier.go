// Package classifier answers questions about a conflict from its metadata alone.
//
// All predicates are pure except IsBasicMergeAllowed and IsValidForAutoMerge,
// which cache the file-type lookup in the conflict's session state.
package classifier

import (
	"context"
	"fmt"

	"github.com/iudanet/vcresolve/internal/models"
	"github.com/iudanet/vcresolve/internal/vcpath"
)

//go:generate moq -out filetype_mock.go . FileTypeRegistry

// FileTypeRegistry looks up the registered file type for an extension.
type FileTypeRegistry interface {
	// FileType returns nil without an error when the extension is not registered.
	FileType(ctx context.Context, extension string) (*models.FileType, error)
}

func isGetOrCheckin(c *models.Conflict) bool {
	return c.Type == models.ConflictTypeGet || c.Type == models.ConflictTypeCheckin
}

// CanMergeContent reports whether the content of the conflict can be merged.
func CanMergeContent(c *models.Conflict) bool {
	// Папки и namespace-конфликты никогда не сливаются
	if c.Your.ItemType == models.ItemTypeFolder || (isGetOrCheckin(c) && c.NamespaceConflict) {
		return false
	}

	if c.Your.ChangeType.Contains(models.ChangeTypeEdit) && c.Base.ChangeType.Contains(models.ChangeTypeEdit) {
		return true
	}

	if c.Type == models.ConflictTypeMerge && c.Base.ChangeType.Contains(models.ChangeTypeEdit) {
		if c.YourLocalChangeType.Contains(models.ChangeTypeEdit) {
			return true
		}
		if c.Forced {
			return true
		}
		// У rollback-конфликтов нет last merged версий
		if !c.Base.ChangeType.Contains(models.ChangeTypeRollback) {
			if c.Their.LastMergedVersion != c.Base.Version || c.Your.LastMergedVersion != c.Your.Version {
				return true
			}
		}
	}

	return false
}

func IsEncodingMismatched(c *models.Conflict) bool {
	return c.Their.Encoding != c.Your.Encoding
}

// IsBaseless reports a merge conflict without a common ancestor.
func IsBaseless(c *models.Conflict) bool {
	return c.Type == models.ConflictTypeMerge && c.Base.ItemID == 0
}

func IsBinary(c *models.Conflict) bool {
	return c.Their.Encoding.IsBinary() ||
		c.Your.Encoding.IsBinary() ||
		(!IsBaseless(c) && c.Base.Encoding.IsBinary())
}

// IsLocalOrTargetInVersionControl is false for items that were never checked in.
func IsLocalOrTargetInVersionControl(c *models.Conflict) bool {
	return c.Your.Version != 0
}

// IsEncodingChanged reports an encoding difference that matters for the resolution.
func IsEncodingChanged(c *models.Conflict) bool {
	if !IsLocalOrTargetInVersionControl(c) {
		return false
	}

	if !IsBaseless(c) &&
		!c.Your.ChangeType.Contains(models.ChangeTypeEncoding) &&
		!c.Base.ChangeType.Contains(models.ChangeTypeEncoding) &&
		!CanMergeContent(c) {
		return false
	}

	return IsEncodingMismatched(c)
}

// RequiresExplicitAcceptMerge reports whether accepting a merge must be
// confirmed by the user: deletes on any side, or an undelete merged without
// a usable base.
func RequiresExplicitAcceptMerge(c *models.Conflict) bool {
	if c.Base.ChangeType.Contains(models.ChangeTypeDelete) ||
		c.Your.ChangeType.Contains(models.ChangeTypeDelete) ||
		c.YourLocalChangeType.Contains(models.ChangeTypeDelete) {
		return true
	}

	return isBaselessUndelete(c)
}

func isBaselessUndelete(c *models.Conflict) bool {
	if !c.Base.ChangeType.Contains(models.ChangeTypeUndelete) {
		return false
	}
	return IsBaseless(c) ||
		(c.Type == models.ConflictTypeMerge &&
			c.Their.LastMergedVersion != c.Base.Version &&
			!c.ShelvesetConflict)
}

func IsPropertyConflict(c *models.Conflict) bool {
	yours := c.Your.ChangeType.Combine(c.YourLocalChangeType)
	return (yours.Contains(models.ChangeTypeProperty) || IsBaseless(c)) &&
		c.Base.ChangeType.Contains(models.ChangeTypeProperty)
}

func IsYourNameChanged(c *models.Conflict) bool {
	return c.Your.ChangeType.Contains(models.ChangeTypeRename) ||
		c.YourLocalChangeType.Contains(models.ChangeTypeRename)
}

func IsTheirNameChanged(c *models.Conflict) bool {
	return c.Base.ChangeType.Contains(models.ChangeTypeRename)
}

// IsNameChanged для merge-конфликтов учитывает только входящее переименование.
func IsNameChanged(c *models.Conflict) bool {
	if !IsLocalOrTargetInVersionControl(c) {
		return false
	}
	if c.Type == models.ConflictTypeMerge {
		return IsTheirNameChanged(c)
	}
	return IsYourNameChanged(c) || IsTheirNameChanged(c)
}

// IsNameChangeRedundant compares server items case-sensitively:
// a case-only rename on both sides is not redundant.
func IsNameChangeRedundant(c *models.Conflict) bool {
	return IsVersionGetCheckinConflict(c) && vcpath.Equal(c.Your.ServerItem, c.Their.ServerItem, true)
}

func HasNoLocalRenames(c *models.Conflict) bool {
	return !c.Your.ChangeType.Combine(c.YourLocalChangeType).Contains(models.ChangeTypeRename)
}

func IsRollbackConflict(c *models.Conflict) bool {
	return c.Base.ChangeType.Contains(models.ChangeTypeRollback)
}

// IsVersionGetCheckinConflict covers get/checkin conflicts and conflicts
// raised while unshelving.
func IsVersionGetCheckinConflict(c *models.Conflict) bool {
	return !c.NamespaceConflict &&
		!IsRollbackConflict(c) &&
		(c.Type != models.ConflictTypeMerge || c.ShelvesetConflict)
}

func IsVersionConflictAndServerItemDoesNotExist(c *models.Conflict) bool {
	return IsVersionGetCheckinConflict(c) &&
		c.Base.ChangeType.IsNone() &&
		c.Their.Version == 0 &&
		c.Their.ServerItem == "" &&
		c.Their.DeletionID == 0
}

func IsFromDeletedShelveset(c *models.Conflict) bool {
	return c.ShelvesetConflict && (c.TheirShelvesetName == "" || c.TheirShelvesetOwner == "")
}

// MergeValidForFileType checks the file type registry once per conflict and
// caches the answer in the session state.
func MergeValidForFileType(ctx context.Context, c *models.Conflict, registry FileTypeRegistry) (bool, error) {
	state := c.State()
	if valid, known := state.MergeValidForFileType.Bool(); known {
		return valid, nil
	}

	fileType, err := registry.FileType(ctx, c.FileExtension())
	if err != nil {
		return false, fmt.Errorf("failed to query file type: %w", err)
	}

	valid := fileType == nil || fileType.AllowMultipleCheckout
	state.MergeValidForFileType = models.TristateOf(valid)
	return valid, nil
}

// IsBasicMergeAllowed reports whether merge options are available at all.
func IsBasicMergeAllowed(ctx context.Context, c *models.Conflict, registry FileTypeRegistry) (bool, error) {
	if c.Your.ItemType != models.ItemTypeFile {
		return false, nil
	}

	// Бинарные файлы сливаются только если нужно выбрать кодировку
	if IsBinary(c) && !IsEncodingChanged(c) {
		return false, nil
	}

	if c.Options.Contains(models.ConflictOptionsDisallowAutoMerge) {
		return false, nil
	}

	valid, err := MergeValidForFileType(ctx, c, registry)
	if err != nil {
		return false, err
	}
	if !valid {
		return false, nil
	}

	if IsFromDeletedShelveset(c) {
		return false, nil
	}

	// Элемента на сервере больше нет - сливать не с чем
	if IsVersionConflictAndServerItemDoesNotExist(c) {
		return false, nil
	}

	return true, nil
}

func IsValidForAutoMerge(ctx context.Context, c *models.Conflict, registry FileTypeRegistry) (bool, error) {
	basic, err := IsBasicMergeAllowed(ctx, c, registry)
	if err != nil || !basic {
		return false, err
	}

	return !IsEncodingChanged(c) &&
		(!IsNameChanged(c) || HasNoLocalRenames(c)) &&
		!RequiresExplicitAcceptMerge(c) &&
		!c.NamespaceConflict, nil
}
