package loader

import (
	"reflect"
	"testing"
)

func TestDeepMergeOverridePrecedence(t *testing.T) {
	base := map[string]any{
		"api": map[string]any{
			"port":  8000,
			"debug": true,
		},
	}
	override := map[string]any{
		"api": map[string]any{
			"debug": false,
		},
	}

	got := DeepMerge(base, override)
	want := map[string]any{
		"api": map[string]any{
			"port":  8000,
			"debug": false,
		},
	}

	if !reflect.DeepEqual(got, want) {
		t.Errorf("DeepMerge() = %v, want %v", got, want)
	}
}

func TestDeepMergeEmptyOverride(t *testing.T) {
	base := map[string]any{
		"system": map[string]any{"name": "platform"},
		"port":   8000,
	}

	got := DeepMerge(base, map[string]any{})
	if !reflect.DeepEqual(got, base) {
		t.Errorf("DeepMerge(base, empty) = %v, want %v", got, base)
	}
}

func TestDeepMergeEmptyBase(t *testing.T) {
	override := map[string]any{
		"system": map[string]any{"name": "platform"},
	}

	got := DeepMerge(map[string]any{}, override)
	if !reflect.DeepEqual(got, override) {
		t.Errorf("DeepMerge(empty, override) = %v, want %v", got, override)
	}
}

func TestDeepMergeListsReplaceWholesale(t *testing.T) {
	base := map[string]any{
		"origins": []any{"a", "b", "c"},
	}
	override := map[string]any{
		"origins": []any{"d"},
	}

	got := DeepMerge(base, override)
	want := []any{"d"}
	if !reflect.DeepEqual(got["origins"], want) {
		t.Errorf("merged origins = %v, want %v", got["origins"], want)
	}
}

func TestDeepMergeScalarReplacesMap(t *testing.T) {
	base := map[string]any{
		"cache": map[string]any{"enabled": true},
	}
	override := map[string]any{
		"cache": "disabled",
	}

	got := DeepMerge(base, override)
	if got["cache"] != "disabled" {
		t.Errorf("merged cache = %v, want %q", got["cache"], "disabled")
	}
}

func TestDeepMergeNullOverride(t *testing.T) {
	base := map[string]any{
		"database": map[string]any{"host": "localhost"},
	}
	override := map[string]any{
		"database": nil,
	}

	got := DeepMerge(base, override)
	if got["database"] != nil {
		t.Errorf("merged database = %v, want nil", got["database"])
	}
}

func TestDeepMergeDoesNotModifyInputs(t *testing.T) {
	base := map[string]any{
		"api": map[string]any{"port": 8000},
	}
	override := map[string]any{
		"api": map[string]any{"port": 9000},
	}

	_ = DeepMerge(base, override)

	if base["api"].(map[string]any)["port"] != 8000 {
		t.Error("base was modified by DeepMerge")
	}
	if override["api"].(map[string]any)["port"] != 9000 {
		t.Error("override was modified by DeepMerge")
	}
}

func TestDeepMergeNestedLevels(t *testing.T) {
	base := map[string]any{
		"broker": map[string]any{
			"mt5": map[string]any{
				"enabled": true,
				"timeout": 30,
			},
		},
	}
	override := map[string]any{
		"broker": map[string]any{
			"mt5": map[string]any{
				"timeout": 60,
			},
		},
	}

	got := DeepMerge(base, override)
	mt5 := got["broker"].(map[string]any)["mt5"].(map[string]any)
	if mt5["enabled"] != true || mt5["timeout"] != 60 {
		t.Errorf("merged mt5 = %v, want enabled=true timeout=60", mt5)
	}
}
