package main

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestGrowthEventEncodesAllFields(t *testing.T) {
	data, err := json.Marshal(growthEvent{Type: "reset", Seed: 0})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	body := string(data)
	for _, field := range []string{`"type":"reset"`, `"seed":0`, `"order":0`, `"x":0`, `"y":0`} {
		if !strings.Contains(body, field) {
			t.Fatalf("event %s missing %s", body, field)
		}
	}
}
