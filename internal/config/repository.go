package config

import (
	"strings"

	"emperror.dev/errors"
)

// Repository identifies the GitHub repository whose workflow runs are
// crawled.
type Repository struct {
	// The owner of the repository (e.g., dapr)
	Owner string
	// The name of the repository (e.g., dapr)
	Name string
}

// String renders the identifier the way API paths expect it: "<owner>/<name>".
func (r Repository) String() string {
	return r.Owner + "/" + r.Name
}

// parseRepository splits an "<owner>/<name>" identifier. Exactly one slash
// separating two non-empty halves is accepted; anything else would address
// the wrong API route (or none at all).
func parseRepository(id string) (Repository, error) {
	owner, name, found := strings.Cut(id, "/")
	if !found || owner == "" || name == "" || strings.Contains(name, "/") {
		return Repository{}, errors.Errorf("must be of the form \"<owner>/<name>\" (got %q)", id)
	}
	return Repository{Owner: owner, Name: name}, nil
}
