package feeders

import "errors"

var (
	ErrFeedTargetNotPointer = errors.New("feeders: structure must be a non-nil pointer")
	ErrFeedTargetNotStruct  = errors.New("feeders: structure must point to a struct")
)
