package resumes

import "errors"

// ErrNotFound signals that no resume exists for the requested id.
var ErrNotFound = errors.New("resume not found")
