// Package automerge decides whether a content-merge result may be accepted
// without asking the user.
package automerge

import (
	"github.com/iudanet/vcresolve/internal/models"
)

// Bucket категория итогов трехстороннего слияния
type Bucket int

const (
	BucketNoChange Bucket = iota
	BucketLocalTargetOnly
	BucketServerSourceOnly
	// BucketBothNonConflicting изменения с обеих сторон без пересечений
	BucketBothNonConflicting
	BucketConflicting
)

func (b Bucket) String() string {
	switch b {
	case BucketNoChange:
		return "no-change"
	case BucketLocalTargetOnly:
		return "local-target-only"
	case BucketServerSourceOnly:
		return "server-source-only"
	case BucketBothNonConflicting:
		return "both-non-conflicting"
	case BucketConflicting:
		return "conflicting"
	default:
		return "unknown"
	}
}

// Classify places a merge summary into exactly one bucket.
func Classify(s models.MergeSummary) Bucket {
	switch {
	case s.Conflicting != 0:
		return BucketConflicting
	case s.LocalChanged == 0 && s.LatestChanged == 0:
		return BucketNoChange
	case s.LatestChanged == 0:
		return BucketLocalTargetOnly
	case s.LocalChanged == 0:
		return BucketServerSourceOnly
	default:
		return BucketBothNonConflicting
	}
}

func HasNoContentChange(s *models.MergeSummary) bool {
	return s != nil && Classify(*s) == BucketNoChange
}

func HasLocalTargetContentChangeOnly(s *models.MergeSummary) bool {
	return s != nil && Classify(*s) == BucketLocalTargetOnly
}

func HasServerSourceContentChangeOnly(s *models.MergeSummary) bool {
	return s != nil && Classify(*s) == BucketServerSourceOnly
}

// HasConflictingContentChange is false when no summary has been computed.
func HasConflictingContentChange(s *models.MergeSummary) bool {
	return s != nil && Classify(*s) == BucketConflicting
}

// rule одно независимое условие допустимости
type rule func(b Bucket, opts models.AutoResolveOptions) bool

// rules объединяются через "или", поэтому их порядок не влияет на результат.
var rules = []rule{
	func(b Bucket, _ models.AutoResolveOptions) bool {
		return b == BucketNoChange
	},
	func(b Bucket, opts models.AutoResolveOptions) bool {
		return opts.Contains(models.AutoResolveOnlyLocalTarget) && b == BucketLocalTargetOnly
	},
	func(b Bucket, opts models.AutoResolveOptions) bool {
		return opts.Contains(models.AutoResolveOnlyServerSource) && b == BucketServerSourceOnly
	},
	func(b Bucket, opts models.AutoResolveOptions) bool {
		return opts.Contains(models.AutoResolveAllContent) && b != BucketConflicting
	},
}

// IsAutoMergeApplicable reports whether a merge with the given summary may be
// accepted under opts. A missing summary or empty options never qualify.
func IsAutoMergeApplicable(s *models.MergeSummary, opts models.AutoResolveOptions) bool {
	return evaluate(rules, s, opts)
}

func evaluate(rs []rule, s *models.MergeSummary, opts models.AutoResolveOptions) bool {
	if s == nil || opts == models.AutoResolveNone {
		return false
	}

	bucket := Classify(*s)
	for _, r := range rs {
		if r(bucket, opts) {
			return true
		}
	}
	return false
}

// Applicable evaluates the conflict's current content-merge summary.
func Applicable(c *models.Conflict, opts models.AutoResolveOptions) bool {
	if !c.HasState() {
		return false
	}
	return IsAutoMergeApplicable(c.State().ContentMergeSummary, opts)
}

// HasConflictingPropertyChange is true when the merged properties still
// contain conflicts. Properties must be merged beforehand.
func HasConflictingPropertyChange(c *models.Conflict) bool {
	if !c.HasState() {
		return false
	}
	summary := c.State().PropertiesMergeSummary
	return summary != nil && summary.TotalConflicts != 0
}
