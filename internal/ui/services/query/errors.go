package query

import "errors"

// errNoRecord covers a lookup that returned neither a record nor an error
var errNoRecord = errors.New("query: lookup returned no record")
