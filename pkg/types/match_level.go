package types

// MatchLevel determines how strictly candidate rows are filtered.
// The orchestrator walks the ladder from strict to loose and stops at
// the first level that yields any rows.
type MatchLevel string

const (
	// MatchStrict binds identity, style, coating, size, filling and supplier.
	MatchStrict MatchLevel = "STRICT"

	// MatchNoFinish relaxes the coating type to don't-care.
	MatchNoFinish MatchLevel = "NO_FINISH"

	// MatchNoStyle additionally relaxes the style; only identity, size,
	// filling and supplier remain binding.
	MatchNoStyle MatchLevel = "NO_STYLE"
)

// MatchLadder is the fixed relaxation order.
var MatchLadder = []MatchLevel{MatchStrict, MatchNoFinish, MatchNoStyle}

// RequireStyle reports whether the style attribute is binding at this level.
func (l MatchLevel) RequireStyle() bool {
	return l != MatchNoStyle
}

// RequireFinish reports whether the coating type is binding at this level.
func (l MatchLevel) RequireFinish() bool {
	return l == MatchStrict
}
