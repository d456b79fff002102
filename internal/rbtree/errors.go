package rbtree

import "errors"

var (
	ErrNodeDuplicate = errors.New("rbtree: node is duplicated")
	ErrNodeNotFound  = errors.New("rbtree: node is not found")
)
