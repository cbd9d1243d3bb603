package sstable

import "errors"

var (
	ErrIndexOutOfRange = errors.New("sstable: index out of range")
	ErrBadShape        = errors.New("sstable: non-positive dimension not allowed")
	ErrCorruptedTable  = errors.New("sstable: serialized table corrupted")
)
