package maputil_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/hasbyte1/go-value-utils/maputil"
)

// ─────────────────────────────────────────────────────────────────────────────
// OverrideCopy
// ─────────────────────────────────────────────────────────────────────────────

func TestOverrideCopy_Precedence(t *testing.T) {
	base := map[string]any{"host": "localhost", "port": 8080, "debug": false}
	got := maputil.OverrideCopy(base, map[string]any{"port": 3000, "debug": true})

	want := map[string]any{"host": "localhost", "port": 3000, "debug": true}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("OverrideCopy mismatch (-want +got):\n%s", diff)
	}
}

func TestOverrideCopy_InsertsNewKeys(t *testing.T) {
	got := maputil.OverrideCopy(map[string]any{"a": 1}, map[string]any{"b": 2})
	if got["a"] != 1 || got["b"] != 2 {
		t.Fatalf("OverrideCopy = %v; want a=1, b=2", got)
	}
}

func TestOverrideCopy_InputsUntouched(t *testing.T) {
	base := map[string]any{"port": 8080}
	overrides := map[string]any{"port": 3000}
	_ = maputil.OverrideCopy(base, overrides)

	if base["port"] != 8080 {
		t.Fatalf("base port = %v; want 8080", base["port"])
	}
	if overrides["port"] != 3000 {
		t.Fatalf("overrides port = %v; want 3000", overrides["port"])
	}
}

func TestOverrideCopy_SharesOverrideValues(t *testing.T) {
	nested := map[string]any{"x": 1}
	got := maputil.OverrideCopy(map[string]any{}, map[string]any{"n": nested})

	// Shallow composition: the override value is the same container.
	got["n"].(map[string]any)["x"] = 2
	if nested["x"] != 2 {
		t.Fatal("override value was copied; want it shared")
	}
}

func TestOverrideCopy_NilInputs(t *testing.T) {
	got := maputil.OverrideCopy(nil, nil)
	if got == nil || len(got) != 0 {
		t.Fatalf("OverrideCopy(nil, nil) = %v; want empty non-nil map", got)
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// FlatMerge
// ─────────────────────────────────────────────────────────────────────────────

func TestFlatMerge_LaterMappingsWin(t *testing.T) {
	got := maputil.FlatMerge(
		map[string]any{"a": 1, "b": 2},
		map[string]any{"b": 99, "c": 3},
	)
	want := map[string]any{"a": 1, "b": 99, "c": 3}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("FlatMerge mismatch (-want +got):\n%s", diff)
	}
}

func TestFlatMerge_OneLevelOnly(t *testing.T) {
	got := maputil.FlatMerge(
		map[string]any{"db": map[string]any{"host": "localhost", "port": 5432}},
		map[string]any{"db": map[string]any{"port": 5433}},
	)
	db := got["db"].(map[string]any)
	if _, ok := db["host"]; ok {
		t.Fatal("FlatMerge recursed into nested maps; want wholesale replacement")
	}
	if db["port"] != 5433 {
		t.Fatalf("db.port = %v; want 5433", db["port"])
	}
}

func TestFlatMerge_Empty(t *testing.T) {
	got := maputil.FlatMerge()
	if got == nil || len(got) != 0 {
		t.Fatalf("FlatMerge() = %v; want empty non-nil map", got)
	}
}

func TestFlatMerge_SkipsNilMappings(t *testing.T) {
	got := maputil.FlatMerge(nil, map[string]any{"a": 1}, nil)
	if len(got) != 1 || got["a"] != 1 {
		t.Fatalf("FlatMerge = %v; want {a: 1}", got)
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// DeepMerge
// ─────────────────────────────────────────────────────────────────────────────

func TestDeepMerge_RecursesIntoNestedMappings(t *testing.T) {
	base := map[string]any{
		"db": map[string]any{"host": "localhost", "port": 5432},
	}
	override := map[string]any{
		"db":    map[string]any{"port": 5433},
		"cache": map[string]any{"enabled": true},
	}

	got, err := maputil.DeepMerge(base, override)
	if err != nil {
		t.Fatal(err)
	}
	want := map[string]any{
		"db":    map[string]any{"host": "localhost", "port": 5433},
		"cache": map[string]any{"enabled": true},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("DeepMerge mismatch (-want +got):\n%s", diff)
	}
}

func TestDeepMerge_InputsUntouched(t *testing.T) {
	base := map[string]any{
		"db":   map[string]any{"host": "localhost", "port": 5432},
		"tags": []any{"blue"},
	}
	override := map[string]any{
		"db": map[string]any{"port": 5433},
	}
	baseBefore, err := maputil.DeepCopy(base)
	if err != nil {
		t.Fatal(err)
	}
	overrideBefore, err := maputil.DeepCopy(override)
	if err != nil {
		t.Fatal(err)
	}

	if _, err := maputil.DeepMerge(base, override); err != nil {
		t.Fatal(err)
	}

	if diff := cmp.Diff(baseBefore, base); diff != "" {
		t.Fatalf("base mutated (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(overrideBefore, override); diff != "" {
		t.Fatalf("override mutated (-want +got):\n%s", diff)
	}
}

func TestDeepMerge_ResultIndependentOfInputs(t *testing.T) {
	base := map[string]any{"db": map[string]any{"host": "localhost"}}
	override := map[string]any{"cache": map[string]any{"enabled": true}}

	got, err := maputil.DeepMerge(base, override)
	if err != nil {
		t.Fatal(err)
	}

	// Writes through the result must not reach either input, even for
	// override-only keys.
	got["db"].(map[string]any)["host"] = "10.0.0.1"
	got["cache"].(map[string]any)["enabled"] = false

	if base["db"].(map[string]any)["host"] != "localhost" {
		t.Fatal("result shares the base's nested map")
	}
	if override["cache"].(map[string]any)["enabled"] != true {
		t.Fatal("result shares the override's nested map")
	}
}

func TestDeepMerge_MappingVsNonMappingReplaces(t *testing.T) {
	got, err := maputil.DeepMerge(
		map[string]any{"x": map[string]any{"a": 1}},
		map[string]any{"x": []any{1, 2}},
	)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(map[string]any{"x": []any{1, 2}}, got); diff != "" {
		t.Fatalf("mapping vs sequence should replace wholesale (-want +got):\n%s", diff)
	}
}

func TestDeepMerge_NonMappingVsMappingReplaces(t *testing.T) {
	got, err := maputil.DeepMerge(
		map[string]any{"x": 1},
		map[string]any{"x": map[string]any{"a": 1}},
	)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(map[string]any{"x": map[string]any{"a": 1}}, got); diff != "" {
		t.Fatalf("scalar vs mapping should replace wholesale (-want +got):\n%s", diff)
	}
}

func TestDeepMerge_SequencesReplacedNotMerged(t *testing.T) {
	got, err := maputil.DeepMerge(
		map[string]any{"tags": []any{"a", "b", "c"}},
		map[string]any{"tags": []any{"z"}},
	)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(map[string]any{"tags": []any{"z"}}, got); diff != "" {
		t.Fatalf("sequences should replace wholesale (-want +got):\n%s", diff)
	}
}

func TestDeepMerge_SetsReplacedNotMerged(t *testing.T) {
	baseSet, err := maputil.NewSet("a", "b")
	if err != nil {
		t.Fatal(err)
	}
	overSet, err := maputil.NewSet("z")
	if err != nil {
		t.Fatal(err)
	}

	got, err := maputil.DeepMerge(
		map[string]any{"perms": baseSet},
		map[string]any{"perms": overSet},
	)
	if err != nil {
		t.Fatal(err)
	}
	perms := got["perms"].(maputil.Set)
	if perms.Has("a") || !perms.Has("z") {
		t.Fatalf("sets should replace wholesale; got %v", perms.Items())
	}
	if err := perms.Add("w"); err != nil {
		t.Fatal(err)
	}
	if overSet.Len() != 1 {
		t.Fatal("result set shared with the override input")
	}
}

func TestDeepMerge_MixedMappingFormsReplace(t *testing.T) {
	// map[string]any vs map[any]any is a concrete-form mismatch: replace,
	// do not merge.
	got, err := maputil.DeepMerge(
		map[string]any{"x": map[string]any{"keep": 1}},
		map[string]any{"x": map[any]any{"new": 2}},
	)
	if err != nil {
		t.Fatal(err)
	}
	x := got["x"].(map[any]any)
	if _, ok := x["keep"]; ok {
		t.Fatal("mixed mapping forms were merged; want replacement")
	}
	if x["new"] != 2 {
		t.Fatalf("x = %v; want {new: 2}", x)
	}
}

func TestDeepMerge_NestedAnyMapsMerge(t *testing.T) {
	base := map[string]any{
		"legacy": map[any]any{1: "one", 2: "two"},
	}
	override := map[string]any{
		"legacy": map[any]any{2: "zwei", 3: "drei"},
	}
	got, err := maputil.DeepMerge(base, override)
	if err != nil {
		t.Fatal(err)
	}
	want := map[string]any{
		"legacy": map[any]any{1: "one", 2: "zwei", 3: "drei"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("nested map[any]any merge mismatch (-want +got):\n%s", diff)
	}
}

func TestDeepMerge_EmptyAndNilInputs(t *testing.T) {
	got, err := maputil.DeepMerge(nil, map[string]any{"a": 1})
	if err != nil {
		t.Fatal(err)
	}
	if got["a"] != 1 {
		t.Fatalf("DeepMerge(nil, {a:1}) = %v; want {a: 1}", got)
	}

	got, err = maputil.DeepMerge(map[string]any{"a": 1}, nil)
	if err != nil {
		t.Fatal(err)
	}
	if got["a"] != 1 {
		t.Fatalf("DeepMerge({a:1}, nil) = %v; want {a: 1}", got)
	}
}

func TestDeepMerge_CycleFailsFast(t *testing.T) {
	base := map[string]any{"a": 1}
	override := map[string]any{}
	override["self"] = override

	_, err := maputil.DeepMerge(base, override)
	if !errors.Is(err, maputil.ErrDepthExceeded) {
		t.Fatalf("errors.Is(%v, ErrDepthExceeded) = false", err)
	}
}

func TestDeepMerge_DeepOverrideValuesCopied(t *testing.T) {
	inner := map[string]any{"v": 1}
	override := map[string]any{"outer": map[string]any{"inner": inner}}

	got, err := maputil.DeepMerge(map[string]any{}, override)
	if err != nil {
		t.Fatal(err)
	}
	got["outer"].(map[string]any)["inner"].(map[string]any)["v"] = 2
	if inner["v"] != 1 {
		t.Fatal("override-side nested value shared with the result")
	}
}
