package commands

import "petboard/internal/infra"

// markNotFound collapses a repository NOT_FOUND into the operation's
// sentinel; other repository failures pass through untouched.
func markNotFound(err error, sentinel error) error {
	if infra.IsKind(err, infra.KindNotFound) {
		return sentinel
	}
	return err
}
