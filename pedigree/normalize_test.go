package pedigree

import "testing"

func TestNormalizeRepairsLabelNoise(t *testing.T) {
	raw := "Name:  Thumper\r\n\r\nariety: Dutch | We1ght: 4 Ib 2 0z\nLeg5: 4\nEar: TH1\nReq: R-9\nGC: G-1\nBorn Il-1O-24"
	want := "Name: Thumper\nVariety: Dutch Weight: 4 lb 2 oz\nLegs: 4\nEar # TH1\nReg # R-9\nGC # G-1\nBorn: Il-1O-24"
	if got := Normalize(raw); got != want {
		t.Fatalf("Normalize() = %q, want %q", got, want)
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{
		"Name:  Thumper\r\nWeight: 4 Ib 2 0z | Leg5: 4",
		"Req. R-9 GC, G-1 Ear# TH1",
		"plain text with no card labels at all",
		"",
	}
	for _, raw := range inputs {
		once := Normalize(raw)
		if twice := Normalize(once); twice != once {
			t.Fatalf("Normalize not idempotent for %q: first %q, second %q", raw, once, twice)
		}
	}
}

func TestNormalizeKeepsCleanTextUnchanged(t *testing.T) {
	clean := "Name: Thumper Variety: Dutch Weight: 4 lb 2 oz"
	if got := Normalize(clean); got != clean {
		t.Fatalf("Normalize() rewrote clean text: %q", got)
	}
}

func TestNormalizeWordBoundaries(t *testing.T) {
	// "Year" and "Stillborn" must not trip the Ear and Born repairs.
	raw := "Year: 2024 Stillborn kits: none"
	if got := Normalize(raw); got != raw {
		t.Fatalf("Normalize() mangled embedded words: %q", got)
	}
}
