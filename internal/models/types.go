package models

import (
	"fmt"
	"strings"
)

// ItemType тип версионируемого элемента
type ItemType int

const (
	ItemTypeAny ItemType = iota
	ItemTypeFolder
	ItemTypeFile
)

func (t ItemType) String() string {
	switch t {
	case ItemTypeFolder:
		return "Folder"
	case ItemTypeFile:
		return "File"
	default:
		return "Any"
	}
}

// ConflictType тип конфликта, сообщенный сервером
type ConflictType int

const (
	ConflictTypeNone ConflictType = iota
	ConflictTypeGet
	ConflictTypeCheckin
	ConflictTypeLocal
	ConflictTypeMerge
	ConflictTypeUnknown
)

func (t ConflictType) String() string {
	switch t {
	case ConflictTypeGet:
		return "Get"
	case ConflictTypeCheckin:
		return "Checkin"
	case ConflictTypeLocal:
		return "Local"
	case ConflictTypeMerge:
		return "Merge"
	case ConflictTypeUnknown:
		return "Unknown"
	default:
		return "None"
	}
}

// Resolution выбранный способ разрешения конфликта
type Resolution int

const (
	ResolutionNone Resolution = iota
	ResolutionAcceptMerge
	ResolutionAcceptYours
	ResolutionAcceptTheirs
	ResolutionDeleteConflict
	ResolutionAcceptYoursRenameTheirs
	ResolutionOverwriteLocal
)

func (r Resolution) String() string {
	switch r {
	case ResolutionAcceptMerge:
		return "AcceptMerge"
	case ResolutionAcceptYours:
		return "AcceptYours"
	case ResolutionAcceptTheirs:
		return "AcceptTheirs"
	case ResolutionDeleteConflict:
		return "DeleteConflict"
	case ResolutionAcceptYoursRenameTheirs:
		return "AcceptYoursRenameTheirs"
	case ResolutionOverwriteLocal:
		return "OverwriteLocal"
	default:
		return "None"
	}
}

// ConflictOptions флаги, которые сервер прикладывает к конфликту
type ConflictOptions int

const (
	ConflictOptionsNone              ConflictOptions = 0
	ConflictOptionsDisallowAutoMerge ConflictOptions = 1
)

func (o ConflictOptions) Contains(other ConflictOptions) bool {
	return o&other == other
}

// AutoResolveOptions политика автоматического разрешения, задаваемая вызывающим кодом
type AutoResolveOptions int

const (
	AutoResolveNone                           AutoResolveOptions = 0
	AutoResolveOnlyLocalTarget                AutoResolveOptions = 1
	AutoResolveOnlyServerSource               AutoResolveOptions = 2
	AutoResolveBothLocalTargetAndServerSource AutoResolveOptions = 4
	AutoResolveIncomingRename                 AutoResolveOptions = 8
	AutoResolveRedundant                      AutoResolveOptions = 16
	AutoResolveSilent                         AutoResolveOptions = 32

	AutoResolveAllContent = AutoResolveOnlyLocalTarget | AutoResolveOnlyServerSource | AutoResolveBothLocalTargetAndServerSource
	AutoResolveAll        = AutoResolveAllContent | AutoResolveIncomingRename | AutoResolveRedundant
)

var autoResolveNames = map[string]AutoResolveOptions{
	"none":               AutoResolveNone,
	"onlylocaltarget":    AutoResolveOnlyLocalTarget,
	"onlyserversource":   AutoResolveOnlyServerSource,
	"bothlocalandsource": AutoResolveBothLocalTargetAndServerSource,
	"incomingrename":     AutoResolveIncomingRename,
	"redundant":          AutoResolveRedundant,
	"silent":             AutoResolveSilent,
	"allcontent":         AutoResolveAllContent,
	"all":                AutoResolveAll,
}

// Contains reports whether every bit of other is set.
func (o AutoResolveOptions) Contains(other AutoResolveOptions) bool {
	return o&other == other
}

// ParseAutoResolveOptions разбирает список через запятую, например "redundant,allcontent".
func ParseAutoResolveOptions(s string) (AutoResolveOptions, error) {
	var result AutoResolveOptions
	for _, part := range strings.Split(s, ",") {
		key := strings.ToLower(strings.NewReplacer("-", "", "_", "", " ", "").Replace(part))
		if key == "" {
			continue
		}
		opt, ok := autoResolveNames[key]
		if !ok {
			return AutoResolveNone, fmt.Errorf("unknown auto resolve option %q", strings.TrimSpace(part))
		}
		result |= opt
	}
	return result, nil
}

// Encoding кодовая страница файла
type Encoding int32

const (
	EncodingBinary    Encoding = -1
	EncodingUnchanged Encoding = -2
	EncodingDefault   Encoding = -3
)

func (e Encoding) IsBinary() bool {
	return e == EncodingBinary
}

// ServiceLevel уровень протокола веб-сервисов сервера
type ServiceLevel int

const (
	ServiceLevelUnknown ServiceLevel = iota
	ServiceLevelPreTFS2010
	ServiceLevelTFS2010
	ServiceLevelTFS2012
	ServiceLevelTFS2012QU1
	ServiceLevelTFS2012Update2
)

func (l ServiceLevel) String() string {
	switch l {
	case ServiceLevelPreTFS2010:
		return "PreTFS2010"
	case ServiceLevelTFS2010:
		return "TFS2010"
	case ServiceLevelTFS2012:
		return "TFS2012"
	case ServiceLevelTFS2012QU1:
		return "TFS2012QU1"
	case ServiceLevelTFS2012Update2:
		return "TFS2012Update2"
	default:
		return "Unknown"
	}
}

// ServiceLevelRedundancyMetadata is the first level that reports the
// metadata redundancy detection relies on.
const ServiceLevelRedundancyMetadata = ServiceLevelTFS2010

// FileType запись реестра типов файлов
type FileType struct {
	Name                  string   `json:"name"`
	Extensions            []string `json:"extensions"`
	AllowMultipleCheckout bool     `json:"allow_multiple_checkout"`
}

// VersionSpec версия, по которой запрашиваются свойства элемента.
// Workspace = true означает рабочую версию рабочего пространства.
type VersionSpec struct {
	Workspace bool
	Changeset int
}

func WorkspaceVersion() VersionSpec {
	return VersionSpec{Workspace: true}
}

func ChangesetVersion(cs int) VersionSpec {
	return VersionSpec{Changeset: cs}
}

func (v VersionSpec) String() string {
	if v.Workspace {
		return "W"
	}
	return fmt.Sprintf("C%d", v.Changeset)
}

// Tristate cached boolean that may not be computed yet.
type Tristate int8

const (
	TristateUnknown Tristate = iota
	TristateTrue
	TristateFalse
)

func TristateOf(b bool) Tristate {
	if b {
		return TristateTrue
	}
	return TristateFalse
}

// Bool returns the cached value and whether it is known.
func (t Tristate) Bool() (value, known bool) {
	switch t {
	case TristateTrue:
		return true, true
	case TristateFalse:
		return false, true
	default:
		return false, false
	}
}
