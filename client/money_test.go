package client

import (
	"encoding/json"
	"testing"
)

func TestMoneyUnmarshal(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want Money
	}{
		{name: "number", in: `{"price": 250}`, want: 250},
		{name: "decimal number", in: `{"price": 99.5}`, want: 99.5},
		{name: "decimal string", in: `{"price": "250.00"}`, want: 250},
		{name: "padded string", in: `{"price": " 100.5 "}`, want: 100.5},
		{name: "null", in: `{"price": null}`, want: 0},
		{name: "absent", in: `{}`, want: 0},
		{name: "garbage string", in: `{"price": "abc"}`, want: 0},
		{name: "empty string", in: `{"price": ""}`, want: 0},
		{name: "bool", in: `{"price": true}`, want: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out struct {
				Price Money `json:"price"`
			}
			if err := json.Unmarshal([]byte(tt.in), &out); err != nil {
				t.Fatalf("unmarshal must never fail on a price, got %v", err)
			}
			if out.Price != tt.want {
				t.Errorf("price = %v, want %v", out.Price, tt.want)
			}
		})
	}
}

func TestMoneyString(t *testing.T) {
	if got := Money(600).String(); got != "600.00" {
		t.Errorf("String() = %q, want \"600.00\"", got)
	}
	if got := Money(99.5).String(); got != "99.50" {
		t.Errorf("String() = %q, want \"99.50\"", got)
	}
}
