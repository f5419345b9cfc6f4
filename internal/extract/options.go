package extract

// DefaultDepth bounds nested traversal when the caller does not set one.
const DefaultDepth = 10

// Feature names accepted by the include/exclude toggles.
const (
	FeatureID         = "id"
	FeatureDefaults   = "defaults"
	FeatureValidators = "validators"
	FeatureTimestamps = "timestamps"
	FeatureVirtuals   = "virtuals"
	FeatureIndexes    = "indexes"
)

// Options controls what the walker emits.
type Options struct {
	IncludeID         bool
	IncludeTimestamps bool
	IncludeVirtuals   bool
	IncludeIndexes    bool
	IncludeValidators bool
	IncludeDefaults   bool

	// Depth bounds recursion; fields nested deeper degrade to Mixed.
	Depth int
}

// DefaultOptions enables every feature at the default depth.
func DefaultOptions() Options {
	return Options{
		IncludeID:         true,
		IncludeTimestamps: true,
		IncludeVirtuals:   true,
		IncludeIndexes:    true,
		IncludeValidators: true,
		IncludeDefaults:   true,
		Depth:             DefaultDepth,
	}
}

// ResolveOptions maps include/exclude feature lists to Options.
//
// A nil include list means "everything"; a non-nil list enables only the
// named features. An exclude entry always wins over an include entry. The
// id feature is special: it stays on unless explicitly excluded, even when
// the include list is empty. Depth <= 0 falls back to DefaultDepth; pass
// an explicit Options value to ExtractModel for a zero depth bound.
func ResolveOptions(include, exclude []string, depth int) Options {
	enabled := func(feature string) bool {
		if contains(exclude, feature) {
			return false
		}
		if include == nil {
			return true
		}
		return contains(include, feature)
	}

	if depth <= 0 {
		depth = DefaultDepth
	}

	return Options{
		IncludeID:         contains(include, FeatureID) || !contains(exclude, FeatureID),
		IncludeTimestamps: enabled(FeatureTimestamps),
		IncludeVirtuals:   enabled(FeatureVirtuals),
		IncludeIndexes:    enabled(FeatureIndexes),
		IncludeValidators: enabled(FeatureValidators),
		IncludeDefaults:   enabled(FeatureDefaults),
		Depth:             depth,
	}
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
