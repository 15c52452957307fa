package ir

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestCloneIsDeep(t *testing.T) {
	in := obj("a", obj("b", "v"), "c", arr(FromString("x")))
	cl := in.Clone()
	cl.Get("a").SetField("b", FromString("w"))
	cl.Get("c").Append(FromString("y"))
	if in.Get("a").Get("b").Text() != "v" {
		t.Error("clone shares object values with original")
	}
	if in.Get("c").Len() != 1 {
		t.Error("clone shares array backing with original")
	}
}

func TestCompareObjectsOrderInsensitive(t *testing.T) {
	a := Object()
	a.SetField("x", FromString("1"))
	a.SetField("y", FromString("2"))
	b := Object()
	b.SetField("y", FromString("2"))
	b.SetField("x", FromString("1"))
	if !Equal(a, b) {
		t.Error("field order should not affect equality")
	}
}

func TestSetFieldReplaces(t *testing.T) {
	y := Object()
	y.SetField("a", FromString("1"))
	y.SetField("a", FromString("2"))
	if y.Len() != 1 || y.Get("a").Text() != "2" {
		t.Errorf("got %v", ToAny(y))
	}
}

func TestAnyRoundTrip(t *testing.T) {
	in := obj(
		"name", "box",
		"empty", nil,
		"tags", arr(FromString("a"), FromString("b")),
		"general", obj("id", "3"),
	)
	got, err := FromAny(ToAny(in))
	if err != nil {
		t.Fatal(err)
	}
	if !Equal(in, got) {
		t.Errorf("round trip mismatch: %s", cmp.Diff(ToAny(in), ToAny(got)))
	}
}
