package pix

import (
	"bytes"
	"errors"
	"testing"
)

func TestDrawCircleFilledSpans(t *testing.T) {
	img := mustNew(t, 11, 11, Black)
	if err := img.DrawCircleFilled(5, 5, 3, Blue); err != nil {
		t.Fatal(err)
	}

	// Half-width of a radius-3 circle per row offset from the center.
	spans := map[int]int{-3: 0, -2: 2, -1: 2, 0: 3, 1: 2, 2: 2, 3: 0}
	for y := 0; y < 11; y++ {
		for x := 0; x < 11; x++ {
			want := Black
			if w, ok := spans[y-5]; ok && x >= 5-w && x <= 5+w {
				want = Blue
			}
			if got := mustPixel(t, img, x, y); got != want {
				t.Errorf("pixel (%d, %d) = %+v, want %+v", x, y, got, want)
			}
		}
	}
}

func TestDrawCircleBorderRing(t *testing.T) {
	img := mustNew(t, 11, 11, Black)
	if err := img.DrawCircle(5, 5, 3, Red, 1); err != nil {
		t.Fatal(err)
	}

	// Ring pixels per row offset: outer span minus the span of the
	// radius-2 inner circle.
	wantX := map[int][]int{
		-3: {5},
		-2: {3, 4, 6, 7},
		-1: {3, 7},
		0:  {2, 8},
		1:  {3, 7},
		2:  {3, 4, 6, 7},
		3:  {5},
	}
	for y := 0; y < 11; y++ {
		ring := map[int]bool{}
		for _, x := range wantX[y-5] {
			ring[x] = true
		}
		for x := 0; x < 11; x++ {
			want := Black
			if ring[x] {
				want = Red
			}
			if got := mustPixel(t, img, x, y); got != want {
				t.Errorf("pixel (%d, %d) = %+v, want %+v", x, y, got, want)
			}
		}
	}
}

func TestDrawEllipseBorderPlusInteriorEqualsFilled(t *testing.T) {
	// Painting the border and then the shrunken interior must produce
	// exactly the filled shape: the ring leaves no gap.
	cases := [][3]int{
		{5, 4, 1},
		{5, 4, 2},
		{7, 3, 3},
		{6, 6, 2},
	}
	for _, c := range cases {
		rx, ry, thickness := c[0], c[1], c[2]

		composed := mustNew(t, 17, 17, Black)
		if err := composed.DrawEllipse(8, 8, rx, ry, White, thickness); err != nil {
			t.Fatalf("DrawEllipse(rx=%d, ry=%d, t=%d): %v", rx, ry, thickness, err)
		}
		if err := composed.DrawEllipseFilled(8, 8, rx-thickness, ry-thickness, White); err != nil {
			t.Fatal(err)
		}

		filled := mustNew(t, 17, 17, Black)
		if err := filled.DrawEllipseFilled(8, 8, rx, ry, White); err != nil {
			t.Fatal(err)
		}

		if !bytes.Equal(composed.Bytes(), filled.Bytes()) {
			t.Errorf("rx=%d ry=%d thickness=%d: border plus interior differs from filled ellipse",
				rx, ry, thickness)
		}
	}
}

func TestDrawCircleZeroRadius(t *testing.T) {
	img := mustNew(t, 5, 5, Black)
	if err := img.DrawCircleFilled(2, 2, 0, White); err != nil {
		t.Fatal(err)
	}
	for y := 0; y < 5; y++ {
		for x := 0; x < 5; x++ {
			want := Black
			if x == 2 && y == 2 {
				want = White
			}
			if got := mustPixel(t, img, x, y); got != want {
				t.Errorf("pixel (%d, %d) = %+v, want %+v", x, y, got, want)
			}
		}
	}

	// The border form degenerates to the same single pixel.
	img2 := mustNew(t, 5, 5, Black)
	if err := img2.DrawCircle(2, 2, 0, White, 1); err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(img.Bytes(), img2.Bytes()) {
		t.Error("zero-radius border differs from zero-radius fill")
	}
}

func TestDrawCircleMatchesEqualAxesEllipse(t *testing.T) {
	a := mustNew(t, 13, 13, Black)
	b := mustNew(t, 13, 13, Black)
	if err := a.DrawCircle(6, 6, 4, Magenta, 2); err != nil {
		t.Fatal(err)
	}
	if err := b.DrawEllipse(6, 6, 4, 4, Magenta, 2); err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(a.Bytes(), b.Bytes()) {
		t.Error("DrawCircle differs from DrawEllipse with equal semi-axes")
	}
}

func TestDrawEllipseMaxThicknessFills(t *testing.T) {
	a := mustNew(t, 15, 11, Black)
	b := mustNew(t, 15, 11, Black)
	if err := a.DrawEllipse(7, 5, 6, 4, White, 5); err != nil {
		t.Fatal(err)
	}
	if err := b.DrawEllipseFilled(7, 5, 6, 4, White); err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(a.Bytes(), b.Bytes()) {
		t.Error("max thickness border differs from the filled ellipse")
	}
}

func TestDrawEllipseZeroThicknessEqualsOne(t *testing.T) {
	a := mustNew(t, 13, 13, Black)
	b := mustNew(t, 13, 13, Black)
	if err := a.DrawEllipse(6, 6, 5, 3, Red, 0); err != nil {
		t.Fatal(err)
	}
	if err := b.DrawEllipse(6, 6, 5, 3, Red, 1); err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(a.Bytes(), b.Bytes()) {
		t.Error("thickness 0 and 1 drew different borders")
	}
}

func TestDrawEllipseThicknessTooLarge(t *testing.T) {
	img := mustNew(t, 15, 11, Black)

	// The cap is the shorter semi-axis plus one: min(6, 4)+1 = 5.
	if err := img.DrawEllipse(7, 5, 6, 4, Red, 6); !errors.Is(err, ErrThicknessTooLarge) {
		t.Errorf("thickness 6 error = %v, want ErrThicknessTooLarge", err)
	}
	if err := img.DrawEllipse(7, 5, 6, 4, Red, -1); !errors.Is(err, ErrThicknessTooLarge) {
		t.Errorf("thickness -1 error = %v, want ErrThicknessTooLarge", err)
	}
	if !allZero(img) {
		t.Error("failed draws wrote pixels")
	}
}

func TestDrawEllipseExtentOutOfBounds(t *testing.T) {
	img := mustNew(t, 10, 10, Black)
	cases := [][4]int{
		{2, 5, 3, 2}, // cx-rx = -1
		{7, 5, 3, 2}, // cx+rx = 10
		{5, 1, 3, 2}, // cy-ry = -1
		{5, 8, 3, 2}, // cy+ry = 10
	}
	for _, c := range cases {
		if err := img.DrawEllipseFilled(c[0], c[1], c[2], c[3], Red); !errors.Is(err, ErrOutOfBounds) {
			t.Errorf("DrawEllipseFilled(%v) error = %v, want ErrOutOfBounds", c, err)
		}
		if err := img.DrawEllipse(c[0], c[1], c[2], c[3], Red, 1); !errors.Is(err, ErrOutOfBounds) {
			t.Errorf("DrawEllipse(%v) error = %v, want ErrOutOfBounds", c, err)
		}
	}
	if !allZero(img) {
		t.Error("failed draws wrote pixels")
	}
}

func TestDrawEllipseNegativeAxes(t *testing.T) {
	img := mustNew(t, 10, 10, Black)
	if err := img.DrawEllipseFilled(5, 5, -1, 2, Red); !errors.Is(err, ErrInvalidDimensions) {
		t.Errorf("negative rx error = %v, want ErrInvalidDimensions", err)
	}
	if err := img.DrawCircle(5, 5, -3, Red, 1); !errors.Is(err, ErrInvalidDimensions) {
		t.Errorf("negative radius error = %v, want ErrInvalidDimensions", err)
	}
	if !allZero(img) {
		t.Error("failed draws wrote pixels")
	}
}

func TestDrawEllipseFlatAndThin(t *testing.T) {
	img := mustNew(t, 11, 5, Black)
	// ry = 0 degenerates to a horizontal bar.
	if err := img.DrawEllipseFilled(5, 2, 4, 0, White); err != nil {
		t.Fatal(err)
	}
	for x := 0; x < 11; x++ {
		want := Black
		if x >= 1 && x <= 9 {
			want = White
		}
		if got := mustPixel(t, img, x, 2); got != want {
			t.Errorf("pixel (%d, 2) = %+v, want %+v", x, got, want)
		}
	}

	img2 := mustNew(t, 5, 11, Black)
	// rx = 0 degenerates to a vertical bar.
	if err := img2.DrawEllipseFilled(2, 5, 0, 4, White); err != nil {
		t.Fatal(err)
	}
	for y := 0; y < 11; y++ {
		want := Black
		if y >= 1 && y <= 9 {
			want = White
		}
		if got := mustPixel(t, img2, 2, y); got != want {
			t.Errorf("pixel (2, %d) = %+v, want %+v", y, got, want)
		}
	}
}
