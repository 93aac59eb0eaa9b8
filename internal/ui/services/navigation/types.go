package navigation

// State holds the recent-searches cursor. Cursor is -1 when nothing is
// highlighted.
type State struct {
	Items  []string
	Cursor int
}

// Direction represents movement through the list
type Direction string

const (
	DirectionOlder Direction = "older"
	DirectionNewer Direction = "newer"
)
