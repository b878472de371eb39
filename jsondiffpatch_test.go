package jsondiffpatch_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/agentflare-ai/jsondiffpatch"
)

func parse(t *testing.T, text string) any {
	t.Helper()
	var v any
	require.NoError(t, json.Unmarshal([]byte(text), &v))
	return v
}

func TestDiff_ExcludePathsSkipsConfiguredFields(t *testing.T) {
	left := parse(t, `{"id":1,"name":"a","nested":{"id":2,"name":"x"}}`)
	right := parse(t, `{"id":9,"name":"b","nested":{"id":8,"name":"y"}}`)

	delta, err := jsondiffpatch.Diff(left, right, jsondiffpatch.WithExcludePaths("id", "nested.id"))
	require.NoError(t, err)

	deltaMap, ok := delta.(map[string]any)
	require.True(t, ok, "delta should be an object delta, got %#v", delta)
	require.NotContains(t, deltaMap, "id")

	nested, ok := deltaMap["nested"].(map[string]any)
	require.True(t, ok, "nested should still carry a name change")
	require.NotContains(t, nested, "id")
	require.Contains(t, nested, "name")

	patched, err := jsondiffpatch.Patch(left, delta)
	require.NoError(t, err)
	patchedMap := patched.(map[string]any)
	require.Equal(t, 1.0, patchedMap["id"])
	require.Equal(t, 2.0, patchedMap["nested"].(map[string]any)["id"])
}

func TestDiff_IgnoreMissingPropertiesSuppressesDeletes(t *testing.T) {
	left := parse(t, `{"a":1,"b":2}`)
	right := parse(t, `{"a":1}`)

	delta, err := jsondiffpatch.Diff(left, right, jsondiffpatch.WithBehaviors(jsondiffpatch.IgnoreMissingProperties))
	require.NoError(t, err)
	require.Nil(t, delta, "no delta expected once the missing key is ignored")
}

func TestDiff_IgnoreNewPropertiesSuppressesAdds(t *testing.T) {
	left := parse(t, `{"a":1}`)
	right := parse(t, `{"a":1,"b":2}`)

	delta, err := jsondiffpatch.Diff(left, right, jsondiffpatch.WithBehaviors(jsondiffpatch.IgnoreNewProperties))
	require.NoError(t, err)
	require.Nil(t, delta, "no delta expected once the new key is ignored")
}

func TestDiff_SimpleArrayModeReplacesWholeArray(t *testing.T) {
	left := parse(t, `[1,2,3]`)
	right := parse(t, `[1,2,3,4]`)

	delta, err := jsondiffpatch.Diff(left, right, jsondiffpatch.WithArrayDiffMode(jsondiffpatch.Simple))
	require.NoError(t, err)

	deltaSlice, ok := delta.([]any)
	require.True(t, ok, "simple mode should emit a scalar-form replace, got %#v", delta)
	require.Len(t, deltaSlice, 2)
	require.Equal(t, left, deltaSlice[0])
	require.Equal(t, right, deltaSlice[1])
}

func TestDiffString_RoundTripsThroughJSONText(t *testing.T) {
	left := `{"a":1,"b":[1,2,3]}`
	right := `{"a":2,"b":[1,2,3,4]}`

	delta, err := jsondiffpatch.DiffString(left, right)
	require.NoError(t, err)
	require.NotEmpty(t, delta)

	patched, err := jsondiffpatch.PatchString(left, delta)
	require.NoError(t, err)
	require.JSONEq(t, right, patched)

	unpatched, err := jsondiffpatch.UnpatchString(right, delta)
	require.NoError(t, err)
	require.JSONEq(t, left, unpatched)
}

func TestDiffString_EmptyInputIsEmptyStringScalar(t *testing.T) {
	delta, err := jsondiffpatch.DiffString("", `"hello"`)
	require.NoError(t, err)
	require.JSONEq(t, `["","hello"]`, delta)
}
