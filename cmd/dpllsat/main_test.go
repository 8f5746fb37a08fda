package main

import (
	"testing"

	dpll "github.com/dpllsat/dpllsat"
)

func TestParseStrategy(t *testing.T) {
	for _, tt := range []struct {
		name       string
		s1, s2, s3 bool
		want       dpll.Strategy
		wantErr    bool
	}{
		{"S1 only", true, false, false, dpll.S1, false},
		{"S2 only", false, true, false, dpll.S2, false},
		{"S3 only", false, false, true, dpll.S3, false},
		{"none given", false, false, false, 0, true},
		{"S1 and S2 both given", true, true, false, 0, true},
		{"all three given", true, true, true, 0, true},
	} {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseStrategy(tt.s1, tt.s2, tt.s3)
			if (err != nil) != tt.wantErr {
				t.Fatalf("parseStrategy() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err == nil && got != tt.want {
				t.Errorf("parseStrategy() = %v, want %v", got, tt.want)
			}
		})
	}
}
