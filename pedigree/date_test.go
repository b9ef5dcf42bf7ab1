package pedigree

import "testing"

func TestNormalizeDate(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"11-10-2024", "11/10/2024"},
		{"O1/I5/99", "01/15/1999"},
		{"3.4.07", "03/04/2007"},
		{"12/1/70", "12/01/1970"},
		{"1/2/69", "01/02/2069"},
		// Shape is checked, calendar validity is not.
		{"13/45/2024", "13/45/2024"},
		{"not-a-date", "not-a-date"},
		{"  11-10-2024  ", "11/10/2024"},
		{"11-10", "11-10"},
		{"", ""},
	}
	for _, tc := range cases {
		if got := NormalizeDate(tc.in); got != tc.want {
			t.Fatalf("NormalizeDate(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestParsePipeline(t *testing.T) {
	raw := "Name: Thumper ariety: Dutch We1ght: 4 Ib 2 0z Leg5: 4 Born: 11-10-2024\nSire: Big Chief Ear: AB-12\nDam: Willow Req: R-55"
	records := Parse(raw)
	if len(records) != 3 {
		t.Fatalf("expected 3 records, got %d: %+v", len(records), records)
	}
	subject, sire, dam := records[0], records[1], records[2]
	if subject.Role != RoleSubject || subject.Name != "Thumper" {
		t.Fatalf("unexpected subject: %+v", subject)
	}
	if subject.Variety != "Dutch" || subject.Weight != "4 lb 2 oz" || subject.Legs != "4" {
		t.Fatalf("unexpected subject fields: %+v", subject)
	}
	if subject.Born != "11/10/2024" {
		t.Fatalf("subject Born = %q, want 11/10/2024", subject.Born)
	}
	if sire.Role != RoleSire || sire.Name != "Big Chief" || sire.Ear != "AB-12" {
		t.Fatalf("unexpected sire: %+v", sire)
	}
	if dam.Role != RoleDam || dam.Name != "Willow" || dam.Reg != "R-55" {
		t.Fatalf("unexpected dam: %+v", dam)
	}
}
