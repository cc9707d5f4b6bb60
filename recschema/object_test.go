package recschema

import (
	"encoding/json"
	"slices"
	"testing"
)

func TestObjectKeyOrder(t *testing.T) {
	obj := NewObject()
	obj.Set("z", 1)
	obj.Set("a", 2)
	obj.Set("m", 3)

	want := []string{"z", "a", "m"}
	if !slices.Equal(obj.Keys(), want) {
		t.Errorf("got %v, want %v", obj.Keys(), want)
	}
}

func TestObjectSetExistingKeepsPosition(t *testing.T) {
	obj := NewObject()
	obj.Set("a", 1)
	obj.Set("b", 2)
	obj.Set("a", 3)

	want := []string{"a", "b"}
	if !slices.Equal(obj.Keys(), want) {
		t.Errorf("got %v, want %v", obj.Keys(), want)
	}
	if v, _ := obj.Get("a"); v != 3 {
		t.Errorf("got %v, want 3", v)
	}
}

func TestObjectGetAbsent(t *testing.T) {
	obj := NewObject()
	if v, ok := obj.Get("missing"); ok || v != nil {
		t.Errorf("got (%v, %v), want (nil, false)", v, ok)
	}
}

func TestObjectMarshalJSON(t *testing.T) {
	obj := NewObject()
	obj.Set("b", "x")
	obj.Set("a", json.Number("1"))

	got, err := json.Marshal(obj)
	if err != nil {
		t.Fatal(err)
	}
	want := `{"b":"x","a":1}`
	if string(got) != want {
		t.Errorf("got %s, want %s", got, want)
	}
}
