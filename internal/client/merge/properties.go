package merge

import (
	"sort"

	"github.com/iudanet/vcresolve/internal/models"
)

// PropertyMerger сливает свойства по именам: изменение одной стороны
// принимается, одинаковые изменения совпадают, разные считаются конфликтом.
type PropertyMerger struct{}

func NewPropertyMerger() *PropertyMerger {
	return &PropertyMerger{}
}

func (PropertyMerger) MergeProperties(base, yours, theirs []models.PropertyValue) *models.PropertiesMergeSummary {
	return CalculatePropertiesSummary(base, yours, theirs)
}

type propertyValue struct {
	value   string
	present bool
}

func index(values []models.PropertyValue) map[string]propertyValue {
	out := make(map[string]propertyValue, len(values))
	for _, v := range values {
		out[v.Name] = propertyValue{value: v.Value, present: true}
	}
	return out
}

// CalculatePropertiesSummary merges three property sets. On conflict the
// local value is kept. Merged is sorted by name and omits deleted properties.
func CalculatePropertiesSummary(base, yours, theirs []models.PropertyValue) *models.PropertiesMergeSummary {
	b, y, t := index(base), index(yours), index(theirs)

	names := make(map[string]struct{}, len(b)+len(y)+len(t))
	for _, m := range []map[string]propertyValue{b, y, t} {
		for name := range m {
			names[name] = struct{}{}
		}
	}

	summary := &models.PropertiesMergeSummary{Merged: []models.PropertyValue{}}
	for name := range names {
		bv, yv, tv := b[name], y[name], t[name]

		var result propertyValue
		switch {
		case yv == tv:
			result = yv
		case yv == bv:
			summary.TheirChanges++
			result = tv
		case tv == bv:
			summary.YourChanges++
			result = yv
		default:
			summary.TotalConflicts++
			result = yv
		}

		if result.present {
			summary.Merged = append(summary.Merged, models.PropertyValue{Name: name, Value: result.value})
		}
	}

	sort.Slice(summary.Merged, func(i, j int) bool {
		return summary.Merged[i].Name < summary.Merged[j].Name
	})

	summary.Redundant = summary.TotalConflicts == 0 && summary.YourChanges == 0 && summary.TheirChanges == 0
	return summary
}
