package rgb

import (
	"errors"
	"testing"
)

func expectPanic(t *testing.T, target error, f func()) {
	t.Helper()
	defer func() {
		t.Helper()
		r := recover()
		if r == nil {
			t.Fatalf("expected panic with %v, got none", target)
		}
		err, ok := r.(error)
		if !ok || !errors.Is(err, target) {
			t.Fatalf("expected panic with %v, got %v", target, r)
		}
	}()
	f()
}

func TestRgb(t *testing.T) {
	neg := MapRgb(NewRgb[int32](1, 2, 3), func(c int32) int32 { return -c })
	if neg != (Rgb[int32]{-1, -2, -3}) {
		t.Errorf("expected rgb(-1,-2,-3), got %s", neg)
	}

	px := NewRgb[uint8](3, 4, 5)
	Components[uint8](&px)[1] = 111
	if px.G != 111 {
		t.Errorf("expected green to be 111, got %d", px.G)
	}

	if v := NewRgb[uint8](250, 251, 252).WithAlpha(253); v != NewRgba[uint8, uint8](250, 251, 252, 253) {
		t.Errorf("expected rgba(250,251,252,253), got %s", v)
	}

	if v := (Rgb[uint8]{}); v != NewRgb[uint8](0, 0, 0) {
		t.Errorf("expected zero value to be black, got %s", v)
	}

	set := map[RGB8]bool{px: true}
	if !set[NewRgb[uint8](3, 111, 5)] {
		t.Error("expected pixel to be found in map")
	}
	if set[NewRgb[uint8](111, 5, 3)] {
		t.Error("expected permuted pixel not to be found in map")
	}
}

func TestRgbOrder(t *testing.T) {
	tests := []struct {
		a, b Rgb[uint8]
		want int
	}{
		{Rgb[uint8]{1, 2, 3}, Rgb[uint8]{2, 1, 1}, -1},
		{Rgb[uint8]{1, 1, 2}, Rgb[uint8]{1, 2, 1}, -1},
		{Rgb[uint8]{1, 1, 2}, Rgb[uint8]{2, 1, 1}, -1},
		{Rgb[uint8]{1, 2, 3}, Rgb[uint8]{1, 2, 3}, 0},
		{Rgb[uint8]{1, 2, 4}, Rgb[uint8]{1, 2, 3}, 1},
	}
	for _, test := range tests {
		t.Run(test.a.String()+"/"+test.b.String(), func(it *testing.T) {
			if v := test.a.Compare(test.b); v != test.want {
				it.Errorf("expected %d, got %d", test.want, v)
			}
			if v := test.a.Less(test.b); v != (test.want < 0) {
				it.Errorf("expected less to be %t, got %t", test.want < 0, v)
			}
		})
	}

	// Order follows the declared fields, not the color names.
	a, b := NewBgr[uint8](1, 2, 3), NewBgr[uint8](2, 1, 1)
	if !a.Less(b) {
		t.Errorf("expected %s < %s", a, b)
	}
	if a.ToRgb().Less(b.ToRgb()) {
		t.Errorf("expected %s >= %s", a.ToRgb(), b.ToRgb())
	}
}

func TestRgbOrderings(t *testing.T) {
	rgb := NewRgb[uint8](1, 2, 3)
	bgr := rgb.ToBgr()
	grb := rgb.ToGrb()

	if bgr != (Bgr[uint8]{B: 3, G: 2, R: 1}) {
		t.Errorf("expected bgr(3,2,1), got %s", bgr)
	}
	if grb != (Grb[uint8]{G: 2, R: 1, B: 3}) {
		t.Errorf("expected grb(2,1,3), got %s", grb)
	}
	if v := bgr.ToRgb(); v != rgb {
		t.Errorf("expected %s, got %s", rgb, v)
	}
	if v := grb.ToBgr().ToGrb(); v != grb {
		t.Errorf("expected %s, got %s", grb, v)
	}
	if v := Channels[uint8](bgr); v[0] != 3 || v[1] != 2 || v[2] != 1 {
		t.Errorf("expected [3 2 1], got %v", v)
	}

	grb = MapGrb(NewGrb[uint8](1, 2, 3), func(c uint8) uint8 { return c * 2 })
	grb = grb.Map(func(c uint8) uint8 { return c + 1 })
	if v := grb.ToRgb(); v != NewRgb[uint8](5, 3, 7) {
		t.Errorf("expected rgb(5,3,7), got %s", v)
	}
}

func TestRgbColor(t *testing.T) {
	px := NewBgr[uint16](10, 20, 30)
	for i, want := range []uint16{10, 20, 30} {
		if v := px.Color(i); v != want {
			t.Errorf("expected color %d to be %d, got %d", i, want, v)
		}
	}
	px.SetColor(2, 40)
	if px.R != 40 {
		t.Errorf("expected red to be 40, got %d", px.R)
	}
	expectPanic(t, ErrIndexOutOfRange, func() { px.Color(3) })
	expectPanic(t, ErrIndexOutOfRange, func() { px.Color(-1) })
	expectPanic(t, ErrIndexOutOfRange, func() { px.SetColor(3, 0) })
}

func TestRgbString(t *testing.T) {
	tests := []struct {
		px   interface{ String() string }
		want string
	}{
		{NewRgb[uint8](255, 1, 0), "rgb(255,1,0)"},
		{NewRgb[uint8](255, 1, 0).ToBgr(), "bgr(0,1,255)"},
		{NewGrb[uint8](1, 2, 3), "grb(1,2,3)"},
		{NewRgba[uint8, uint8](1, 2, 3, 4), "rgba(1,2,3,4)"},
		{NewArgb[uint8, uint16](4, 1, 2, 3), "argb(4,1,2,3)"},
		{NewGray[float32](0.5), "gray(0.5)"},
		{NewGrayAlpha[uint8, uint8](1, 2), "graya(1,2)"},
	}
	for _, test := range tests {
		if v := test.px.String(); v != test.want {
			t.Errorf("expected %q, got %q", test.want, v)
		}
	}
}
