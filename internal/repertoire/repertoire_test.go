package repertoire

import "testing"

func TestAll_SevenOpenings(t *testing.T) {
	if got := len(All()); got != 7 {
		t.Errorf("len(All()) = %d, want 7", got)
	}
}

func TestByCategory_Grouping(t *testing.T) {
	cases := []struct {
		category Category
		want     int
	}{
		{CategoryWhite, 3},
		{CategoryBlackVsE4, 2},
		{CategoryBlackVsD4, 2},
	}
	for _, c := range cases {
		if got := len(ByCategory(c.category)); got != c.want {
			t.Errorf("ByCategory(%s) has %d openings, want %d", c.category, got, c.want)
		}
	}
}

func TestCategoryOf(t *testing.T) {
	cases := []struct {
		name string
		want Category
	}{
		{"White - Italian Game", CategoryWhite},
		{"Black - Caro-Kann Advance", CategoryBlackVsE4},
		{"Black - King's Indian", CategoryBlackVsD4},
		{"Black - QGD Orthodox", CategoryBlackVsD4},
	}
	for _, c := range cases {
		o, ok := Get(c.name)
		if !ok {
			t.Fatalf("Get(%q) not found", c.name)
		}
		if got := CategoryOf(o); got != c.want {
			t.Errorf("CategoryOf(%s) = %s, want %s", c.name, got, c.want)
		}
	}
}

func TestGet_Missing(t *testing.T) {
	if _, ok := Get("White - Bongcloud"); ok {
		t.Error("Get of unknown opening reported found")
	}
}

func TestSideAndShortName(t *testing.T) {
	o, _ := Get("Black - Caro-Kann Classical")
	if o.Side() != "Black" {
		t.Errorf("Side = %q, want Black", o.Side())
	}
	if o.ShortName() != "Caro-Kann Classical" {
		t.Errorf("ShortName = %q, want Caro-Kann Classical", o.ShortName())
	}

	o, _ = Get("White - Catalan Open")
	if o.Side() != "White" {
		t.Errorf("Side = %q, want White", o.Side())
	}
}

func TestAnnotationForPly_SingleTag(t *testing.T) {
	o, _ := Get("White - Catalan Closed")

	idea, ok := o.AnnotationForPly(7)
	if !ok {
		t.Fatal("no annotation for ply 7")
	}
	if idea != "Move 7. Qc2: Queen supports e4 advance and eyes h7" {
		t.Errorf("annotation = %q", idea)
	}
}

func TestAnnotationForPly_DigitBoundary(t *testing.T) {
	// Ply 14 must match "Move 14", not the "Move 1..." tags.
	o, _ := Get("White - Catalan Closed")

	idea, ok := o.AnnotationForPly(14)
	if !ok {
		t.Fatal("no annotation for ply 14")
	}
	if idea != "Move 14. Bf4: Develop with tempo, control central squares" {
		t.Errorf("annotation = %q", idea)
	}
}

func TestAnnotationForPly_Range(t *testing.T) {
	o, _ := Get("Black - King's Indian")

	for ply := 1; ply <= 3; ply++ {
		idea, ok := o.AnnotationForPly(ply)
		if !ok {
			t.Fatalf("no annotation for ply %d", ply)
		}
		if idea != "Moves 1-3: King's Indian setup - fianchetto dark-squared bishop" {
			t.Errorf("ply %d annotation = %q", ply, idea)
		}
	}
}

func TestAnnotationForPly_Miss(t *testing.T) {
	o, _ := Get("White - Italian Game")
	if idea, ok := o.AnnotationForPly(99); ok {
		t.Errorf("unexpected annotation for ply 99: %q", idea)
	}
}
