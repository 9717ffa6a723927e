package config

import (
	"strconv"
	"strings"

	"emperror.dev/errors"
	validation "github.com/go-ozzo/ozzo-validation"
)

// validate checks the assembled values against their invariants. All fields
// are checked (not just the first failure) so a broken config file can be
// fixed in one pass.
func (r rawConfig) validate() error {
	err := validation.ValidateStruct(&r,
		validation.Field(&r.Repository, validation.Required, validation.By(checkRepository)),
		validation.Field(&r.WorkflowName, validation.Required, validation.By(checkWorkflowName)),
		validation.Field(&r.Parameters, validation.By(checkPageSize)),
		validation.Field(&r.OutputTarget, validation.Required),
	)
	if err == nil {
		return nil
	}
	if fields, ok := err.(validation.Errors); ok {
		return &ValidationError{Fields: fields}
	}
	return &ValidationError{Fields: validation.Errors{"Config": err}}
}

func checkRepository(value interface{}) error {
	_, err := parseRepository(value.(string))
	return err
}

// checkWorkflowName rejects paths: the GitHub API addresses a workflow by its
// bare file name (or numeric ID), so "ci/dapr-test.yml" would never resolve.
func checkWorkflowName(value interface{}) error {
	if strings.ContainsAny(value.(string), `/\`) {
		return errors.New("must be a workflow file name, not a path")
	}
	return nil
}

func checkPageSize(value interface{}) error {
	params := value.(map[string]string)
	raw, ok := params[ParamPerPage]
	if !ok {
		return errors.Errorf("must include %q", ParamPerPage)
	}
	size, err := strconv.Atoi(raw)
	if err != nil {
		return errors.Errorf("%s must be a positive integer, got %q", ParamPerPage, raw)
	}
	if size <= 0 {
		return errors.Errorf("%s must be positive, got %d", ParamPerPage, size)
	}
	if size > MaxPageSize {
		return errors.Errorf("%s must not exceed the API maximum of %d, got %d", ParamPerPage, MaxPageSize, size)
	}
	return nil
}
