package viviani4d

import "testing"

func TestPointAdd(t *testing.T) {
	p := Point4{1, 2, 3, 4}
	q := p.Add(Vector4{1, -1, 0.5, 0})
	if q != (Point4{2, 1, 3.5, 4}) {
		t.Fatalf("Add: %+v", q)
	}
	if v := q.Sub(p); v != (Vector4{1, -1, 0.5, 0}) {
		t.Fatalf("Sub: %+v", v)
	}
	if v := p.Vec(); v != (Vector4{1, 2, 3, 4}) {
		t.Fatalf("Vec: %+v", v)
	}
	assertSlice(t, "Point4.Slice", p.Slice(), []Real{1, 2, 3, 4}, 0)

	a := Point3{1, 2, 3}
	b := a.Add(Vector3{1, 1, 1})
	if b.Sub(a) != (Vector3{1, 1, 1}) {
		t.Fatalf("Point3 Add/Sub: %+v", b)
	}
	assertSlice(t, "Point3.Slice", b.Slice(), []Real{2, 3, 4}, 0)
}

func TestPoint4Of(t *testing.T) {
	if p := point4Of([]Real{1, 2}); p != (Point4{1, 2, 0, 0}) {
		t.Fatalf("short slice: %+v", p)
	}
	if p := point4Of([]Real{1, 2, 3, 4, 5}); p != (Point4{1, 2, 3, 4}) {
		t.Fatalf("long slice: %+v", p)
	}
}
