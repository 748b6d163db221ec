package models

// MergeSummary результат трехстороннего слияния содержимого (количество блоков строк).
type MergeSummary struct {
	Common        int `json:"common"`         // Common блоки без изменений
	LocalChanged  int `json:"local_changed"`  // LocalChanged изменено только локально (your)
	LatestChanged int `json:"latest_changed"` // LatestChanged изменено только на сервере (their)
	CommonChanged int `json:"common_changed"` // CommonChanged одинаково изменено с обеих сторон
	Conflicting   int `json:"conflicting"`    // Conflicting конфликтующие блоки
}

// PropertyValue одно свойство версионируемого элемента
type PropertyValue struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// PropertiesMergeSummary результат слияния наборов свойств base/your/their.
type PropertiesMergeSummary struct {
	Merged         []PropertyValue `json:"merged"`
	TotalConflicts int             `json:"total_conflicts"`
	YourChanges    int             `json:"your_changes"`
	TheirChanges   int             `json:"their_changes"`
	Redundant      bool            `json:"redundant"` // Redundant обе стороны пришли к одному набору свойств
}

// HasNoDifferences reports whether merging would change nothing.
func (s *PropertiesMergeSummary) HasNoDifferences() bool {
	return s != nil && s.Redundant
}

func (s *PropertiesMergeSummary) Clone() *PropertiesMergeSummary {
	if s == nil {
		return nil
	}
	out := *s
	out.Merged = cloneProperties(s.Merged)
	return &out
}

func cloneProperties(in []PropertyValue) []PropertyValue {
	if in == nil {
		return nil
	}
	out := make([]PropertyValue, len(in))
	copy(out, in)
	return out
}
