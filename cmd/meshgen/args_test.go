package main

import (
	"reflect"
	"testing"
)

func TestSplitParams(t *testing.T) {
	args := []string{"radius=2", "-rotate", "90,1,0,0", "height=3", "-name=post", "-translate", "0,1,0"}

	params, flags := splitParams(args)

	wantParams := []string{"radius=2", "height=3"}
	wantFlags := []string{"-rotate", "90,1,0,0", "-name=post", "-translate", "0,1,0"}
	if !reflect.DeepEqual(params, wantParams) {
		t.Errorf("params: expected %v, got %v", wantParams, params)
	}
	if !reflect.DeepEqual(flags, wantFlags) {
		t.Errorf("flags: expected %v, got %v", wantFlags, flags)
	}
}

func TestParseVec3(t *testing.T) {
	v, err := parseVec3("1, -2.5,3")
	if err != nil {
		t.Fatalf("parseVec3 failed: %v", err)
	}
	if v != [3]float32{1, -2.5, 3} {
		t.Errorf("expected [1 -2.5 3], got %v", v)
	}

	for _, bad := range []string{"", "1,2", "1,2,3,4", "a,b,c"} {
		if _, err := parseVec3(bad); err == nil {
			t.Errorf("expected error for %q", bad)
		}
	}
}

func TestParseRotation(t *testing.T) {
	rot, err := parseRotation("45,0,1,0")
	if err != nil {
		t.Fatalf("parseRotation failed: %v", err)
	}
	if rot.Degrees != 45 || rot.Axis != [3]float32{0, 1, 0} {
		t.Errorf("unexpected rotation %+v", rot)
	}

	if _, err := parseRotation("45,0,1"); err == nil {
		t.Error("expected error for missing axis component")
	}
}
