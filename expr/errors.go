package expr

import "errors"

// ErrParse is wrapped by every syntax error the parser returns.
var ErrParse = errors.New("expr: parse error")
