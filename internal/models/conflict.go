package models

import (
	"fmt"
	"sort"

	"github.com/iudanet/vcresolve/internal/vcpath"
)

// ItemDescription одна из трех параллельных сторон конфликта (your/their/base).
type ItemDescription struct {
	HashValue         []byte     `json:"hash_value,omitempty"` // HashValue MD5 содержимого, если сервер его прислал
	ServerItem        string     `json:"server_item"`
	DownloadURL       string     `json:"download_url,omitempty"`
	ItemID            int        `json:"item_id"`
	Version           int        `json:"version"`
	LastMergedVersion int        `json:"last_merged_version"`
	PropertyID        int        `json:"property_id"`
	DeletionID        int        `json:"deletion_id"`
	ChangeType        ChangeType `json:"change_type"`
	ItemType          ItemType   `json:"item_type"`
	Encoding          Encoding   `json:"encoding"`
}

func (d ItemDescription) clone() ItemDescription {
	if d.HashValue != nil {
		d.HashValue = append([]byte(nil), d.HashValue...)
	}
	return d
}

// Conflict описывает один конфликт, сообщенный сервером.
// Экземпляр изменяется на месте в ходе одной попытки разрешения и не должен
// использоваться из нескольких горутин одновременно.
type Conflict struct {
	session *SessionState

	YourServerItemSource string
	TheirShelvesetName   string
	TheirShelvesetOwner  string
	SourceLocalItem      string
	TargetLocalItem      string

	Your  ItemDescription
	Their ItemDescription
	Base  ItemDescription

	ID                  int
	PendingChangeID     int
	Reason              int
	TheirVersionFrom    int
	Type                ConflictType
	Options             ConflictOptions
	YourLocalChangeType ChangeType

	Resolved          bool
	AutoResolved      bool
	Forced            bool
	NamespaceConflict bool
	ShelvesetConflict bool
}

// ResolutionOptions параметры выбранного разрешения, которые уходят на сервер.
type ResolutionOptions struct {
	NewPath               string
	AcceptMergeProperties []PropertyValue
	NewEncoding           Encoding
	UseInternalEngine     bool
}

// CacheState tagged state of a cached value checked against a file timestamp.
type CacheState int

const (
	CacheUnknown CacheState = iota // never computed
	CacheStale                     // computed against a different timestamp
	CacheValid
)

// HashCache кэш MD5 локального файла вместе с временем модификации,
// для которого он был посчитан.
type HashCache struct {
	Value   []byte
	ModTime int64
}

// HashCacheState decides whether a cached hash can be used.
// A cache recorded against a zero timestamp is never valid.
func HashCacheState(value []byte, recorded, current int64) CacheState {
	if value == nil && recorded == 0 {
		return CacheUnknown
	}
	if recorded == 0 || recorded != current {
		return CacheStale
	}
	return CacheValid
}

// State returns the cache state for the given current modification time.
func (h HashCache) State(current int64) CacheState {
	return HashCacheState(h.Value, h.ModTime, current)
}

// SessionState изменяемое состояние одной попытки разрешения конфликта.
type SessionState struct {
	ContentMergeSummary    *MergeSummary
	PropertiesMergeSummary *PropertiesMergeSummary

	MergedFileName string

	YourProperties  []PropertyValue
	TheirProperties []PropertyValue
	BaseProperties  []PropertyValue

	LocalHash HashCache
	Options   ResolutionOptions

	localPath  *string
	serverPath *string
	fileName   *string

	// ContentSummaryModTime время модификации локального файла на момент
	// построения ContentMergeSummary
	ContentSummaryModTime int64
	Resolution            Resolution

	MergeValidForFileType Tristate
	PropertiesLoaded      bool
}

func (s *SessionState) clone() *SessionState {
	if s == nil {
		return nil
	}
	out := *s
	if s.ContentMergeSummary != nil {
		summary := *s.ContentMergeSummary
		out.ContentMergeSummary = &summary
	}
	out.PropertiesMergeSummary = s.PropertiesMergeSummary.Clone()
	out.YourProperties = cloneProperties(s.YourProperties)
	out.TheirProperties = cloneProperties(s.TheirProperties)
	out.BaseProperties = cloneProperties(s.BaseProperties)
	out.Options.AcceptMergeProperties = cloneProperties(s.Options.AcceptMergeProperties)
	if s.LocalHash.Value != nil {
		out.LocalHash.Value = append([]byte(nil), s.LocalHash.Value...)
	}
	return &out
}

// State returns the resolution session, creating it on first use.
func (c *Conflict) State() *SessionState {
	if c.session == nil {
		c.session = &SessionState{}
	}
	return c.session
}

// HasState reports whether a resolution session was started.
func (c *Conflict) HasState() bool {
	return c.session != nil
}

// ResetState drops the resolution session.
func (c *Conflict) ResetState() {
	c.session = nil
}

// Clone создает глубокую копию конфликта вместе с состоянием сессии.
func (c *Conflict) Clone() *Conflict {
	out := *c
	out.Your = c.Your.clone()
	out.Their = c.Their.clone()
	out.Base = c.Base.clone()
	out.session = c.session.clone()
	return &out
}

// SetMergedFileName stores the merged output path; an empty name clears it.
func (c *Conflict) SetMergedFileName(name string) {
	c.State().MergedFileName = name
}

// SetSourceLocalItem меняет локальный элемент и сбрасывает производные от него пути.
func (c *Conflict) SetSourceLocalItem(path string) {
	c.SourceLocalItem = path
	if c.session != nil {
		c.session.localPath = nil
		c.session.fileName = nil
	}
}

// LocalPath returns the local file the conflict is about, source item first.
func (c *Conflict) LocalPath() string {
	s := c.State()
	if s.localPath == nil {
		p := c.TargetLocalItem
		if c.SourceLocalItem != "" {
			p = c.SourceLocalItem
		}
		s.localPath = &p
	}
	return *s.localPath
}

// ServerPath returns the repository path used for display and property lookups.
func (c *Conflict) ServerPath() string {
	s := c.State()
	if s.serverPath == nil {
		var p string
		switch {
		case c.YourServerItemSource != "":
			p = c.YourServerItemSource
		case c.Your.ServerItem != "":
			p = c.Your.ServerItem
		default:
			p = c.Their.ServerItem
		}
		s.serverPath = &p
	}
	return *s.serverPath
}

func (c *Conflict) FileName() string {
	s := c.State()
	if s.fileName == nil {
		var name string
		if lp := c.LocalPath(); lp != "" {
			name = vcpath.LocalFileName(lp)
		} else if sp := c.ServerPath(); sp != "" {
			name = vcpath.FileName(sp)
		}
		s.fileName = &name
	}
	return *s.fileName
}

// FileExtension без ведущей точки, вычисляется каждый раз.
func (c *Conflict) FileExtension() string {
	return vcpath.Extension(c.FileName())
}

// TheirShelvesetDisplayName returns the shelveset name for display, qualified
// with the owner unless the owner is currentUser. Empty for non-shelveset conflicts.
func (c *Conflict) TheirShelvesetDisplayName(currentUser string) string {
	if !c.ShelvesetConflict {
		return ""
	}
	if c.TheirShelvesetName == "" {
		return "(deleted shelveset)"
	}
	if equalUserNames(currentUser, c.TheirShelvesetOwner) {
		return c.TheirShelvesetName
	}
	return c.TheirShelvesetName + ";" + c.TheirShelvesetOwner
}

func equalUserNames(a, b string) bool {
	return a != "" && vcpath.Equal(a, b, false)
}

// DetailedMessage describes the conflict in one line.
func (c *Conflict) DetailedMessage(asConflict bool) string {
	if c.Type != ConflictTypeMerge {
		path := c.TargetLocalItem
		if path == "" {
			path = c.SourceLocalItem
		}
		if path == "" {
			path = c.Their.ServerItem
		}
		return fmt.Sprintf("%s: %s", c.Your.ChangeType.Combine(c.YourLocalChangeType), path)
	}

	var source string
	switch {
	case c.Base.ChangeType.Contains(ChangeTypeRollback):
		source = formatVersioned(c.Base.ServerItem, c.TheirVersionFrom, c.Base.Version)
	case !c.Base.ChangeType.Contains(ChangeTypeMerge):
		source = ""
	case c.Base.ChangeType.Contains(ChangeTypeBranch):
		source = formatVersioned(c.Their.ServerItem, 0, c.Their.Version)
	default:
		from := c.Base.Version
		if c.Their.Version > 0 {
			from = c.Their.Version
		}
		source = formatVersioned(c.Their.ServerItem, from, c.Their.Version)
	}

	target := c.YourServerItemSource
	if !c.Base.ChangeType.Contains(ChangeTypeBranch) &&
		!c.YourLocalChangeType.Contains(ChangeTypeBranch) &&
		!c.YourLocalChangeType.Contains(ChangeTypeAdd) {
		target = formatVersioned(c.YourServerItemSource, 0, c.Your.Version)
	}

	switch {
	case asConflict:
		return fmt.Sprintf("%s: merging %s into %s", c.Base.ChangeType, source, target)
	case source == "":
		return fmt.Sprintf("%s: %s", c.Base.ChangeType, target)
	default:
		return fmt.Sprintf("%s: merged %s into %s", c.Base.ChangeType, source, target)
	}
}

func formatVersioned(path string, from, to int) string {
	if from > 0 && from != to {
		return fmt.Sprintf("%s;C%d~C%d", path, from, to)
	}
	return fmt.Sprintf("%s;C%d", path, to)
}

// Compare упорядочивает конфликты: сначала по your server item (сверху вниз),
// затем по their server item, затем по ID.
func Compare(a, b *Conflict) int {
	if a.Your.ServerItem != "" && b.Your.ServerItem != "" {
		if n := vcpath.CompareTopDown(a.Your.ServerItem, b.Your.ServerItem); n != 0 {
			return n
		}
	}
	if a.Their.ServerItem != "" && b.Their.ServerItem != "" {
		if n := vcpath.CompareTopDown(a.Their.ServerItem, b.Their.ServerItem); n != 0 {
			return n
		}
	}
	switch {
	case a.ID > b.ID:
		return 1
	case a.ID < b.ID:
		return -1
	default:
		return 0
	}
}

// SortConflicts sorts in place using Compare.
func SortConflicts(conflicts []*Conflict) {
	sort.SliceStable(conflicts, func(i, j int) bool {
		return Compare(conflicts[i], conflicts[j]) < 0
	})
}
