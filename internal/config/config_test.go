package config

import (
	"testing"
	"time"
)

func TestGetFallsBackOnBlank(t *testing.T) {
	t.Setenv("PLANNER_TEST_VALUE", "   ")
	if got := Get("PLANNER_TEST_VALUE", "default"); got != "default" {
		t.Fatalf("Get = %q, want %q", got, "default")
	}

	t.Setenv("PLANNER_TEST_VALUE", " set ")
	if got := Get("PLANNER_TEST_VALUE", "default"); got != "set" {
		t.Fatalf("Get = %q, want %q", got, "set")
	}
}

func TestGetIntIgnoresMalformed(t *testing.T) {
	t.Setenv("PLANNER_TEST_INT", "twelve")
	if got := GetInt("PLANNER_TEST_INT", 7); got != 7 {
		t.Fatalf("GetInt = %d, want 7", got)
	}

	t.Setenv("PLANNER_TEST_INT", "12")
	if got := GetInt("PLANNER_TEST_INT", 7); got != 12 {
		t.Fatalf("GetInt = %d, want 12", got)
	}
}

func TestGetDuration(t *testing.T) {
	t.Setenv("PLANNER_TEST_TTL", "90s")
	if got := GetDuration("PLANNER_TEST_TTL", time.Minute); got != 90*time.Second {
		t.Fatalf("GetDuration = %v, want 90s", got)
	}

	t.Setenv("PLANNER_TEST_TTL", "soon")
	if got := GetDuration("PLANNER_TEST_TTL", time.Minute); got != time.Minute {
		t.Fatalf("GetDuration = %v, want 1m", got)
	}
}
