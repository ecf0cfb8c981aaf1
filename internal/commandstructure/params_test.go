package commandstructure

import (
	"testing"
)

func TestGetStringParam(t *testing.T) {
	params := map[string]any{
		"key1": "value1",
		"key2": 123,
		"key3": "  padded  ",
	}

	if val := GetStringParam(params, "key1", "default"); val != "value1" {
		t.Errorf("Expected 'value1', got '%s'", val)
	}
	if val := GetStringParam(params, "key2", "default"); val != "default" {
		t.Errorf("Expected 'default', got '%s'", val)
	}
	if val := GetStringParam(params, "key3", "default"); val != "padded" {
		t.Errorf("Expected 'padded', got '%s'", val)
	}
	if val := GetStringParam(params, "missing", "default"); val != "default" {
		t.Errorf("Expected 'default', got '%s'", val)
	}
}

func TestGetIntParam(t *testing.T) {
	params := map[string]any{
		"key1": 123,
		"key2": int64(456),
		"key3": float64(789),
		"key4": "not-an-int",
	}

	tests := []struct {
		key      string
		expected int
	}{
		{"key1", 123},
		{"key2", 456},
		{"key3", 789},
		{"key4", -1},
		{"missing", -1},
	}

	for _, tt := range tests {
		if val := GetIntParam(params, tt.key, -1); val != tt.expected {
			t.Errorf("GetIntParam(%q): expected %d, got %d", tt.key, tt.expected, val)
		}
	}
}

func TestGetPositiveIntParam(t *testing.T) {
	tests := []struct {
		name    string
		params  map[string]any
		want    int
		wantErr bool
	}{
		{"positive", map[string]any{"width": 48}, 48, false},
		{"zero", map[string]any{"width": 0}, 0, true},
		{"negative", map[string]any{"width": -3}, 0, true},
		{"missing", map[string]any{}, 0, true},
		{"wrong type", map[string]any{"width": "48"}, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := GetPositiveIntParam(tt.params, "width")
			if (err != nil) != tt.wantErr {
				t.Fatalf("Expected error=%v, got %v", tt.wantErr, err)
			}
			if got != tt.want {
				t.Errorf("Expected %d, got %d", tt.want, got)
			}
		})
	}
}

func TestValidateRequiredParams(t *testing.T) {
	params := map[string]any{
		"width":  16,
		"height": 16,
	}

	if err := ValidateRequiredParams(params, []string{"width", "height"}); err != nil {
		t.Errorf("Expected no error, got %v", err)
	}
	if err := ValidateRequiredParams(params, []string{"width", "filter"}); err == nil {
		t.Error("Expected error for missing parameter")
	}
}
