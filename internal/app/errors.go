package app

import "fmt"

type NotFoundError struct {
	What string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("not found: %s", e.What)
}

type RenameManyError struct {
	Count int
}

func (e *RenameManyError) Error() string {
	return fmt.Sprintf("--name can only be used when moving a single path, not %d", e.Count)
}
