package core

import "errors"

// ErrNoFilename is returned by Buffer.Save when neither the argument nor
// the buffer itself carries a filename. The session reacts by prompting
// instead of failing.
var ErrNoFilename = errors.New("no filename")
