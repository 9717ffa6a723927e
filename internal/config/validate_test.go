package config

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defaultRaw() rawConfig {
	return rawConfig{
		Repository:   DefaultRepository,
		WorkflowName: DefaultWorkflowName,
		Parameters:   map[string]string{ParamPerPage: strconv.Itoa(DefaultPageSize)},
		OutputTarget: DefaultOutputTarget,
	}
}

func TestValidateDefaults(t *testing.T) {
	require.NoError(t, defaultRaw().validate())
}

func TestValidateFieldInvariants(t *testing.T) {
	for _, tt := range []struct {
		name      string
		mutate    func(*rawConfig)
		wantField string
	}{
		{
			name:      "empty repository",
			mutate:    func(r *rawConfig) { r.Repository = "" },
			wantField: "Repository",
		},
		{
			name:      "empty workflow name",
			mutate:    func(r *rawConfig) { r.WorkflowName = "" },
			wantField: "WorkflowName",
		},
		{
			name:      "backslash in workflow name",
			mutate:    func(r *rawConfig) { r.WorkflowName = `workflows\dapr-test.yml` },
			wantField: "WorkflowName",
		},
		{
			name:      "empty output target",
			mutate:    func(r *rawConfig) { r.OutputTarget = "" },
			wantField: "OutputTarget",
		},
		{
			name:      "missing page size parameter",
			mutate:    func(r *rawConfig) { delete(r.Parameters, ParamPerPage) },
			wantField: "Parameters",
		},
	} {
		t.Run(tt.name, func(t *testing.T) {
			raw := defaultRaw()
			tt.mutate(&raw)

			err := raw.validate()
			require.Error(t, err)

			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Contains(t, verr.Fields, tt.wantField)
		})
	}
}

func TestValidateAllowsNumericWorkflowID(t *testing.T) {
	// The API accepts a numeric workflow ID anywhere it accepts a file name.
	raw := defaultRaw()
	raw.WorkflowName = "161335"
	require.NoError(t, raw.validate())
}

func TestValidateAllowsPageSizeAtMaximum(t *testing.T) {
	raw := defaultRaw()
	raw.Parameters[ParamPerPage] = strconv.Itoa(MaxPageSize)
	require.NoError(t, raw.validate())
}
