package dimen

import (
	"math"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestParseDimen(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mdpdf.core")
	defer teardown()
	//
	d, _, err := ParseDimen("12px")
	if err != nil {
		t.Errorf("(1) %s", err.Error())
	} else if d != 12*BP {
		t.Errorf("(1) expected d to be 12bp (%d), is %d", 12*BP, d)
	}
	//
	d, _, err = ParseDimen("0")
	if err != nil {
		t.Errorf("(2) %s", err.Error())
	} else if d != 0 {
		t.Errorf("(2) expected d to be 0, is %d", d)
	}
	//
	_, ispcnt, err := ParseDimen("20%")
	if err != nil {
		t.Errorf("(3) %s", err.Error())
	} else if ispcnt != true {
		t.Errorf("(3) expected percentage-marker to be true, is %v", ispcnt)
	}
	//
	d, _, err = ParseDimen("10.5bp")
	if err != nil {
		t.Errorf("(4) %s", err.Error())
	} else if d != 21*BP/2 {
		t.Errorf("(4) expected d to be 10.5bp (%d), is %d", 21*BP/2, d)
	}
}

func TestParseDimenErrors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mdpdf.core")
	defer teardown()
	//
	for _, s := range []string{"", "pt", "12 pt", "12xx", "1.pt", "99999999in"} {
		if _, _, err := ParseDimen(s); err != ErrDimenFormat {
			t.Errorf("expected format error for %q, got %v", s, err)
		}
	}
}

func TestPointsConversion(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "mdpdf.core")
	defer teardown()
	//
	if p := (72 * BP).Points(); p != 72 {
		t.Errorf("expected 72bp to be 72 points, is %v", p)
	}
	if d := Points(1.5).DU(); d != 3*BP/2 {
		t.Errorf("expected 1.5 points to be %d, is %d", 3*BP/2, d)
	}
	inch := IN.Points()
	if math.Abs(float64(inch)-72) > 1e-4 {
		t.Errorf("expected 1in to be 72 points, is %v", inch)
	}
	if s := Points(12).String(); s != "12.00bp" {
		t.Errorf("unexpected string representation %q", s)
	}
}
