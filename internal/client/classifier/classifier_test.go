package classifier

import (
	"context"
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/vcresolve/internal/models"
)

func registryWith(types map[string]*models.FileType) *FileTypeRegistryMock {
	return &FileTypeRegistryMock{
		FileTypeFunc: func(ctx context.Context, extension string) (*models.FileType, error) {
			return types[extension], nil
		},
	}
}

// editConflict get-конфликт по текстовому файлу, редактируемому с обеих сторон
func editConflict() *models.Conflict {
	return &models.Conflict{
		ID:              1,
		Type:            models.ConflictTypeGet,
		TargetLocalItem: "/ws/proj/main.go",
		Your: models.ItemDescription{
			ServerItem: "$/proj/main.go",
			ItemID:     10,
			Version:    5,
			ChangeType: models.ChangeTypeEdit,
			ItemType:   models.ItemTypeFile,
			Encoding:   65001,
		},
		Their: models.ItemDescription{
			ServerItem: "$/proj/main.go",
			ItemID:     10,
			Version:    7,
			ItemType:   models.ItemTypeFile,
			Encoding:   65001,
		},
		Base: models.ItemDescription{
			ServerItem: "$/proj/main.go",
			ItemID:     10,
			Version:    5,
			ChangeType: models.ChangeTypeEdit,
			ItemType:   models.ItemTypeFile,
			Encoding:   65001,
		},
	}
}

func TestCanMergeContent(t *testing.T) {
	tests := []struct {
		name   string
		modify func(c *models.Conflict)
		want   bool
	}{
		{
			name:   "edit on both sides",
			modify: func(c *models.Conflict) {},
			want:   true,
		},
		{
			name: "folder with edits",
			modify: func(c *models.Conflict) {
				c.Your.ItemType = models.ItemTypeFolder
			},
			want: false,
		},
		{
			name: "namespace get conflict",
			modify: func(c *models.Conflict) {
				c.NamespaceConflict = true
			},
			want: false,
		},
		{
			name: "namespace merge conflict still merges",
			modify: func(c *models.Conflict) {
				c.Type = models.ConflictTypeMerge
				c.NamespaceConflict = true
			},
			want: true,
		},
		{
			name: "only server edited",
			modify: func(c *models.Conflict) {
				c.Your.ChangeType = models.ChangeTypeNone
			},
			want: false,
		},
		{
			name: "merge with local edit",
			modify: func(c *models.Conflict) {
				c.Type = models.ConflictTypeMerge
				c.Your.ChangeType = models.ChangeTypeNone
				c.YourLocalChangeType = models.ChangeTypeEdit
			},
			want: true,
		},
		{
			name: "forced merge",
			modify: func(c *models.Conflict) {
				c.Type = models.ConflictTypeMerge
				c.Your.ChangeType = models.ChangeTypeNone
				c.Forced = true
			},
			want: true,
		},
		{
			name: "merge with stale last merged version",
			modify: func(c *models.Conflict) {
				c.Type = models.ConflictTypeMerge
				c.Your.ChangeType = models.ChangeTypeNone
				c.Their.LastMergedVersion = 3
			},
			want: true,
		},
		{
			name: "rollback ignores last merged versions",
			modify: func(c *models.Conflict) {
				c.Type = models.ConflictTypeMerge
				c.Your.ChangeType = models.ChangeTypeNone
				c.Base.ChangeType = models.ChangeTypeEdit | models.ChangeTypeRollback
				c.Their.LastMergedVersion = 3
			},
			want: false,
		},
		{
			name: "merge with up to date versions",
			modify: func(c *models.Conflict) {
				c.Type = models.ConflictTypeMerge
				c.Your.ChangeType = models.ChangeTypeNone
				c.Their.LastMergedVersion = c.Base.Version
				c.Your.LastMergedVersion = c.Your.Version
			},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := editConflict()
			tt.modify(c)
			assert.Equal(t, tt.want, CanMergeContent(c))
		})
	}
}

func TestCanMergeContent_FolderAlwaysFalse(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	flags := []models.ChangeType{
		models.ChangeTypeEdit, models.ChangeTypeRename, models.ChangeTypeRollback,
		models.ChangeTypeDelete, models.ChangeTypeProperty, models.ChangeTypeMerge,
	}
	randomFlags := func() models.ChangeType {
		var c models.ChangeType
		for _, f := range flags {
			if r.Intn(2) == 0 {
				c |= f
			}
		}
		return c
	}
	types := []models.ConflictType{
		models.ConflictTypeGet, models.ConflictTypeCheckin, models.ConflictTypeLocal, models.ConflictTypeMerge,
	}

	for i := 0; i < 300; i++ {
		c := editConflict()
		c.Your.ItemType = models.ItemTypeFolder
		c.Type = types[r.Intn(len(types))]
		c.Your.ChangeType = randomFlags()
		c.Base.ChangeType = randomFlags()
		c.YourLocalChangeType = randomFlags()
		c.Forced = r.Intn(2) == 0
		c.NamespaceConflict = r.Intn(2) == 0
		c.Their.LastMergedVersion = r.Intn(10)
		c.Your.LastMergedVersion = r.Intn(10)

		require.False(t, CanMergeContent(c), "folder conflict %+v", c)
	}
}

func TestScenarioD_FolderShortCircuit(t *testing.T) {
	c := editConflict()
	c.Your.ItemType = models.ItemTypeFolder
	c.Base.ChangeType = models.ChangeTypeEdit
	c.Your.ChangeType = models.ChangeTypeEdit

	assert.False(t, CanMergeContent(c))
}

func TestEncodingPredicates(t *testing.T) {
	t.Run("mismatch", func(t *testing.T) {
		c := editConflict()
		assert.False(t, IsEncodingMismatched(c))
		c.Their.Encoding = 1252
		assert.True(t, IsEncodingMismatched(c))
	})

	t.Run("binary", func(t *testing.T) {
		c := editConflict()
		assert.False(t, IsBinary(c))
		c.Base.Encoding = models.EncodingBinary
		assert.True(t, IsBinary(c))

		// Для baseless-слияния base не учитывается
		c.Type = models.ConflictTypeMerge
		c.Base.ItemID = 0
		assert.False(t, IsBinary(c))

		c.Their.Encoding = models.EncodingBinary
		assert.True(t, IsBinary(c))
	})

	t.Run("changed requires version control", func(t *testing.T) {
		c := editConflict()
		c.Their.Encoding = 1252
		assert.True(t, IsEncodingChanged(c))

		c.Your.Version = 0
		assert.False(t, IsEncodingChanged(c))
	})

	t.Run("changed without encoding flag and no content merge", func(t *testing.T) {
		c := editConflict()
		c.Their.Encoding = 1252
		c.Your.ChangeType = models.ChangeTypeRename
		assert.False(t, IsEncodingChanged(c))

		c.Base.ChangeType = models.ChangeTypeEncoding
		assert.True(t, IsEncodingChanged(c))
	})
}

func TestRequiresExplicitAcceptMerge(t *testing.T) {
	tests := []struct {
		name   string
		modify func(c *models.Conflict)
		want   bool
	}{
		{name: "plain edit", modify: func(c *models.Conflict) {}, want: false},
		{name: "base delete", modify: func(c *models.Conflict) { c.Base.ChangeType |= models.ChangeTypeDelete }, want: true},
		{name: "your delete", modify: func(c *models.Conflict) { c.Your.ChangeType |= models.ChangeTypeDelete }, want: true},
		{name: "local delete", modify: func(c *models.Conflict) { c.YourLocalChangeType = models.ChangeTypeDelete }, want: true},
		{
			name: "baseless undelete",
			modify: func(c *models.Conflict) {
				c.Type = models.ConflictTypeMerge
				c.Base.ItemID = 0
				c.Base.ChangeType = models.ChangeTypeUndelete
			},
			want: true,
		},
		{
			name: "merge undelete with stale last merged version",
			modify: func(c *models.Conflict) {
				c.Type = models.ConflictTypeMerge
				c.Base.ChangeType = models.ChangeTypeUndelete
				c.Their.LastMergedVersion = 2
			},
			want: true,
		},
		{
			name: "shelveset undelete",
			modify: func(c *models.Conflict) {
				c.Type = models.ConflictTypeMerge
				c.ShelvesetConflict = true
				c.Base.ChangeType = models.ChangeTypeUndelete
				c.Their.LastMergedVersion = 2
			},
			want: false,
		},
		{
			name: "undelete on get conflict",
			modify: func(c *models.Conflict) {
				c.Base.ChangeType = models.ChangeTypeUndelete
				c.Their.LastMergedVersion = 2
			},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := editConflict()
			tt.modify(c)
			assert.Equal(t, tt.want, RequiresExplicitAcceptMerge(c))
		})
	}
}

func TestIsPropertyConflict(t *testing.T) {
	c := editConflict()
	assert.False(t, IsPropertyConflict(c))

	c.Base.ChangeType |= models.ChangeTypeProperty
	assert.False(t, IsPropertyConflict(c))

	c.YourLocalChangeType = models.ChangeTypeProperty
	assert.True(t, IsPropertyConflict(c))

	// Baseless-слияние считается конфликтом свойств при изменении свойств в base
	b := editConflict()
	b.Type = models.ConflictTypeMerge
	b.Base.ItemID = 0
	b.Base.ChangeType = models.ChangeTypeProperty
	assert.True(t, IsPropertyConflict(b))
}

func TestRenamePredicates(t *testing.T) {
	c := editConflict()
	assert.False(t, IsNameChanged(c))
	assert.True(t, HasNoLocalRenames(c))

	c.YourLocalChangeType = models.ChangeTypeRename
	assert.True(t, IsYourNameChanged(c))
	assert.True(t, IsNameChanged(c))
	assert.False(t, HasNoLocalRenames(c))

	// Для merge-конфликта важно только входящее переименование
	c.Type = models.ConflictTypeMerge
	assert.False(t, IsNameChanged(c))
	c.Base.ChangeType |= models.ChangeTypeRename
	assert.True(t, IsTheirNameChanged(c))
	assert.True(t, IsNameChanged(c))

	// Элемент не под версионным контролем
	c.Your.Version = 0
	assert.False(t, IsNameChanged(c))
}

func TestIsNameChangeRedundant(t *testing.T) {
	c := editConflict()
	c.Your.ServerItem = "$/proj/new.go"
	c.Their.ServerItem = "$/proj/new.go"
	assert.True(t, IsNameChangeRedundant(c))

	c.Their.ServerItem = "$/proj/NEW.go"
	assert.False(t, IsNameChangeRedundant(c))

	c.Their.ServerItem = c.Your.ServerItem
	c.NamespaceConflict = true
	assert.False(t, IsNameChangeRedundant(c))
}

func TestIsVersionGetCheckinConflict(t *testing.T) {
	c := editConflict()
	assert.True(t, IsVersionGetCheckinConflict(c))

	c.Type = models.ConflictTypeMerge
	assert.False(t, IsVersionGetCheckinConflict(c))

	c.ShelvesetConflict = true
	assert.True(t, IsVersionGetCheckinConflict(c))

	c.Base.ChangeType |= models.ChangeTypeRollback
	assert.True(t, IsRollbackConflict(c))
	assert.False(t, IsVersionGetCheckinConflict(c))
}

func TestIsVersionConflictAndServerItemDoesNotExist(t *testing.T) {
	c := editConflict()
	c.Base.ChangeType = models.ChangeTypeNone
	c.Their = models.ItemDescription{}
	assert.True(t, IsVersionConflictAndServerItemDoesNotExist(c))

	c.Their.DeletionID = 4
	assert.False(t, IsVersionConflictAndServerItemDoesNotExist(c))
}

func TestIsFromDeletedShelveset(t *testing.T) {
	c := editConflict()
	assert.False(t, IsFromDeletedShelveset(c))

	c.ShelvesetConflict = true
	c.TheirShelvesetName = "fix"
	assert.True(t, IsFromDeletedShelveset(c))

	c.TheirShelvesetOwner = "alice"
	assert.False(t, IsFromDeletedShelveset(c))
}

func TestIsBasicMergeAllowed(t *testing.T) {
	ctx := context.Background()
	exclusive := map[string]*models.FileType{
		"bin": {Name: "binary", Extensions: []string{"bin"}, AllowMultipleCheckout: false},
		"go":  {Name: "go", Extensions: []string{"go"}, AllowMultipleCheckout: true},
	}

	tests := []struct {
		name   string
		modify func(c *models.Conflict)
		want   bool
	}{
		{name: "text file", modify: func(c *models.Conflict) {}, want: true},
		{name: "folder", modify: func(c *models.Conflict) { c.Your.ItemType = models.ItemTypeFolder }, want: false},
		{
			name: "binary without encoding change",
			modify: func(c *models.Conflict) {
				c.Your.Encoding = models.EncodingBinary
				c.Their.Encoding = models.EncodingBinary
			},
			want: false,
		},
		{
			name: "binary with encoding change",
			modify: func(c *models.Conflict) {
				c.Their.Encoding = models.EncodingBinary
			},
			want: true,
		},
		{
			name:   "disallowed by options",
			modify: func(c *models.Conflict) { c.Options = models.ConflictOptionsDisallowAutoMerge },
			want:   false,
		},
		{
			name:   "exclusive file type",
			modify: func(c *models.Conflict) { c.TargetLocalItem = "/ws/proj/data.bin" },
			want:   false,
		},
		{
			name:   "unregistered extension",
			modify: func(c *models.Conflict) { c.TargetLocalItem = "/ws/proj/notes.txt" },
			want:   true,
		},
		{
			name: "deleted shelveset",
			modify: func(c *models.Conflict) {
				c.ShelvesetConflict = true
			},
			want: false,
		},
		{
			name: "server item gone",
			modify: func(c *models.Conflict) {
				c.Base.ChangeType = models.ChangeTypeNone
				c.Their = models.ItemDescription{Encoding: c.Your.Encoding}
			},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := editConflict()
			tt.modify(c)
			got, err := IsBasicMergeAllowed(ctx, c, registryWith(exclusive))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMergeValidForFileType_Cached(t *testing.T) {
	registry := registryWith(map[string]*models.FileType{
		"go": {Name: "go", AllowMultipleCheckout: true},
	})
	c := editConflict()

	for i := 0; i < 3; i++ {
		ok, err := MergeValidForFileType(context.Background(), c, registry)
		require.NoError(t, err)
		assert.True(t, ok)
	}
	assert.Len(t, registry.FileTypeCalls(), 1)
	assert.Equal(t, "go", registry.FileTypeCalls()[0].Extension)

	// После сброса сессии реестр опрашивается снова
	c.ResetState()
	_, err := MergeValidForFileType(context.Background(), c, registry)
	require.NoError(t, err)
	assert.Len(t, registry.FileTypeCalls(), 2)
}

func TestIsBasicMergeAllowed_RegistryError(t *testing.T) {
	boom := errors.New("db closed")
	registry := &FileTypeRegistryMock{
		FileTypeFunc: func(ctx context.Context, extension string) (*models.FileType, error) {
			return nil, boom
		},
	}

	c := editConflict()
	_, err := IsBasicMergeAllowed(context.Background(), c, registry)
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)

	// Ошибка не кэшируется
	valid, known := c.State().MergeValidForFileType.Bool()
	assert.False(t, known)
	assert.False(t, valid)
}

func TestIsValidForAutoMerge(t *testing.T) {
	ctx := context.Background()
	registry := registryWith(nil)

	tests := []struct {
		name   string
		modify func(c *models.Conflict)
		want   bool
	}{
		{name: "plain edit", modify: func(c *models.Conflict) {}, want: true},
		{name: "encoding changed", modify: func(c *models.Conflict) { c.Their.Encoding = 1252 }, want: false},
		{name: "delete", modify: func(c *models.Conflict) { c.Base.ChangeType |= models.ChangeTypeDelete }, want: false},
		{name: "namespace", modify: func(c *models.Conflict) { c.NamespaceConflict = true }, want: false},
		{
			name:   "incoming rename only",
			modify: func(c *models.Conflict) { c.Base.ChangeType |= models.ChangeTypeRename },
			want:   true,
		},
		{
			name: "rename on both sides",
			modify: func(c *models.Conflict) {
				c.Base.ChangeType |= models.ChangeTypeRename
				c.Your.ChangeType |= models.ChangeTypeRename
			},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := editConflict()
			tt.modify(c)
			got, err := IsValidForAutoMerge(ctx, c, registry)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
