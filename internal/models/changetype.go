package models

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownChangeType возвращается при разборе неизвестного имени флага.
var ErrUnknownChangeType = errors.New("unknown change type")

// ChangeType описывает, что изменилось в элементе.
// Сервер передает базовый набор флагов и отдельное "расширенное" целое,
// оба диапазона объединяются один раз в NewChangeType.
type ChangeType uint32

const (
	ChangeTypeNone         ChangeType = 0
	ChangeTypeAdd          ChangeType = 2
	ChangeTypeEdit         ChangeType = 4
	ChangeTypeEncoding     ChangeType = 8
	ChangeTypeRename       ChangeType = 16
	ChangeTypeDelete       ChangeType = 32
	ChangeTypeUndelete     ChangeType = 64
	ChangeTypeBranch       ChangeType = 128
	ChangeTypeMerge        ChangeType = 256
	ChangeTypeLock         ChangeType = 512
	ChangeTypeRollback     ChangeType = 1024
	ChangeTypeSourceRename ChangeType = 2048
	ChangeTypeTargetRename ChangeType = 4096
	ChangeTypeProperty     ChangeType = 8192

	// ChangeTypeAll is the universal set used for "subtract then compare".
	ChangeTypeAll ChangeType = 0xffff
)

var changeTypeNames = []struct {
	flag ChangeType
	name string
}{
	{ChangeTypeAdd, "Add"},
	{ChangeTypeEdit, "Edit"},
	{ChangeTypeEncoding, "Encoding"},
	{ChangeTypeRename, "Rename"},
	{ChangeTypeDelete, "Delete"},
	{ChangeTypeUndelete, "Undelete"},
	{ChangeTypeBranch, "Branch"},
	{ChangeTypeMerge, "Merge"},
	{ChangeTypeLock, "Lock"},
	{ChangeTypeRollback, "Rollback"},
	{ChangeTypeSourceRename, "SourceRename"},
	{ChangeTypeTargetRename, "TargetRename"},
	{ChangeTypeProperty, "Property"},
}

// NewChangeType объединяет базовые и расширенные флаги в одно значение.
func NewChangeType(flags ChangeType, extended int32) ChangeType {
	return flags | ChangeType(uint32(extended)<<1)
}

// ParseChangeType converts wire flag names ("Add", "Edit", ...) into a ChangeType.
// "None" and empty names are ignored.
func ParseChangeType(names []string) (ChangeType, error) {
	var result ChangeType
	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" || strings.EqualFold(name, "None") {
			continue
		}
		flag, ok := changeTypeByName(name)
		if !ok {
			return ChangeTypeNone, fmt.Errorf("%w: %q", ErrUnknownChangeType, name)
		}
		result |= flag
	}
	return result, nil
}

func changeTypeByName(name string) (ChangeType, bool) {
	for _, n := range changeTypeNames {
		if strings.EqualFold(n.name, name) {
			return n.flag, true
		}
	}
	return ChangeTypeNone, false
}

// ExtendedFlags returns the value the server expects in the extended field.
func (c ChangeType) ExtendedFlags() int32 {
	return int32(c >> 1)
}

// Names returns the names of the set flags in canonical order.
func (c ChangeType) Names() []string {
	names := make([]string, 0, len(changeTypeNames))
	for _, n := range changeTypeNames {
		if c&n.flag != 0 {
			names = append(names, n.name)
		}
	}
	return names
}

// Contains reports whether every bit of other is set.
func (c ChangeType) Contains(other ChangeType) bool {
	return c&other == other
}

// ContainsAny reports whether at least one bit of other is set.
func (c ChangeType) ContainsAny(other ChangeType) bool {
	return c&other != 0
}

// Combine returns the union.
func (c ChangeType) Combine(other ChangeType) ChangeType {
	return c | other
}

// Retain returns the intersection.
func (c ChangeType) Retain(other ChangeType) ChangeType {
	return c & other
}

// Remove returns the difference.
func (c ChangeType) Remove(other ChangeType) ChangeType {
	return c &^ other
}

func (c ChangeType) Equal(other ChangeType) bool {
	return c == other
}

func (c ChangeType) IsNone() bool {
	return c == ChangeTypeNone
}

func (c ChangeType) String() string {
	if c == ChangeTypeNone {
		return "None"
	}
	return strings.Join(c.Names(), ", ")
}
