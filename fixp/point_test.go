package fixp

import "testing"

import "image"

func TestPointOps(t *testing.T) {
	point := IntsToPoint(3, -2)
	if point.X != Q16FromInt(3) || point.Y != Q16FromInt(-2) {
		t.Fatalf("unexpected point %s", point.String())
	}
	if point != ValuesToPoint(Q16FromInt(3), Q16FromInt(-2)) {
		t.Fatal("constructors disagree")
	}

	point = point.AddValues(HalfQ16, HalfQ16)
	x, y := point.ToFloat64s()
	if x != 3.5 || y != -1.5 {
		t.Fatalf("expected (3.5, -1.5), got (%f, %f)", x, y)
	}

	point = point.AddPoint(IntsToPoint(1, 1)).SubPoint(IntsToPoint(4, -1))
	if point != ValuesToPoint(HalfQ16, HalfQ16) {
		t.Fatalf("expected (0.5, 0.5), got %s", point.String())
	}

	point = point.Scale(Q16FromInt(4))
	if point != IntsToPoint(2, 2) {
		t.Fatalf("expected (2, 2), got %s", point.String())
	}

	dot := IntsToPoint(3, 4).Dot(IntsToPoint(2, -1))
	if dot != Q16FromInt(2) {
		t.Fatalf("expected dot product 2, got %s", dot.String())
	}
}

func TestPointConversions(t *testing.T) {
	point := ValuesToPoint(Q16FromFloat64(2.4), Q16FromFloat64(-2.5))
	if pt := point.ImagePoint(); pt != image.Pt(2, -3) {
		t.Fatalf("expected image point (2, -3), got %v", pt)
	}
	if x, y := point.ToInts(); x != 2 || y != -3 {
		t.Fatalf("expected ints (2, -3), got (%d, %d)", x, y)
	}

	str := IntsToPoint(2, -4).AddValues(HalfQ16, 0).String()
	if str != "(2.5, -4)" {
		t.Fatalf("unexpected point string %s", str)
	}
}
