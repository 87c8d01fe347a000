package semblance

import "errors"

var (
	// ErrDanglingIndex means a template declared an indexed placeholder,
	// like $partner1, without at least one partner sharing its base name.
	ErrDanglingIndex = errors.New("indexed placeholder needs at least two positions")

	// ErrRepeatedPlaceholder means a template used the same placeholder
	// twice.
	ErrRepeatedPlaceholder = errors.New("repeated placeholder")

	// ErrArgumentCount means a statement received a different number of
	// terms than its clause has placeholders.
	ErrArgumentCount = errors.New("wrong number of terms for placeholders")

	// ErrUnknownSign means a comparison was built with a sign outside
	// =, !=, >, >=, < and <=.
	ErrUnknownSign = errors.New("unknown comparison sign")
)
