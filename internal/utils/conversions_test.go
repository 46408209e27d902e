package utils_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/adarsh5347/impacthub-client/internal/utils"
)

func TestToStringSlice(t *testing.T) {
	in := []any{"ROLE_ADMIN", float64(42), true, map[string]any{"skipped": 1}, nil}
	require.Equal(t, []string{"ROLE_ADMIN", "42", "true"}, utils.ToStringSlice(in))
}

func TestToStringSlice_Empty(t *testing.T) {
	require.Empty(t, utils.ToStringSlice(nil))
}
