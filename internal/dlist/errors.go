package dlist

import "errors"

var (
	ErrElementNil        = errors.New("dlist: element is nil")
	ErrElementNotInList  = errors.New("dlist: element is not in this list")
)
