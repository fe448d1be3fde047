package tokenizer

// State is one of the eight tokenizer states spec.md §4's "State
// machines" section names: `DATA | TAG_OPEN | TAG_NAME | ATTR_NAME |
// ATTR_VALUE_{DQ,SQ,UNQ} | COMMENT | END_TAG`.
type State int

// Tokenizer states.
const (
	DataState State = iota
	TagOpenState
	TagNameState
	AttrNameState
	AttrValueDQState
	AttrValueSQState
	AttrValueUnquotedState
	CommentState
	EndTagState
)

// String names the state, for diagnostics.
func (s State) String() string {
	switch s {
	case DataState:
		return "DATA"
	case TagOpenState:
		return "TAG_OPEN"
	case TagNameState:
		return "TAG_NAME"
	case AttrNameState:
		return "ATTR_NAME"
	case AttrValueDQState:
		return "ATTR_VALUE_DQ"
	case AttrValueSQState:
		return "ATTR_VALUE_SQ"
	case AttrValueUnquotedState:
		return "ATTR_VALUE_UNQ"
	case CommentState:
		return "COMMENT"
	case EndTagState:
		return "END_TAG"
	default:
		return "UNKNOWN"
	}
}
