package tstep

import "testing"

func TestTimeSeriesToJSONAndBack(t *testing.T) {
	ts := newFloatSeries(
		Pair[float64, float64]{T: 0, V: 1},
		Pair[float64, float64]{T: 10, V: 2},
	)
	ts.Name = "demo"
	ts.Comment = "a comment"

	dto := ts.ToJSON()
	if dto.Name != "demo" || dto.Comment != "a comment" {
		t.Fatalf("ToJSON() name/comment mismatch: %+v", dto)
	}
	if len(dto.T) != 2 || len(dto.V) != 2 {
		t.Fatalf("ToJSON() column lengths = %d,%d, want 2,2", len(dto.T), len(dto.V))
	}

	rebuilt := FromJSON[float64, float64](dto, FloatClock{}, ExtendBack[float64]())
	if !ts.Equal(rebuilt) {
		t.Fatalf("round-tripped series should equal the original: %v vs %v", ts.Items(), rebuilt.Items())
	}
}

func TestTsContainerToJSON(t *testing.T) {
	c := NewTsContainerWithID[float64, float64]("demo")
	c.Add("a", newFloatSeries(Pair[float64, float64]{T: 0, V: 1}))
	c.Add("b", newFloatSeries(Pair[float64, float64]{T: 1, V: 2}))

	dto := c.ToJSON()
	if dto.ID != c.ID || dto.Name != c.Name {
		t.Fatalf("ToJSON() id/name mismatch: %+v", dto)
	}
	if len(dto.Series) != 2 {
		t.Fatalf("ToJSON() series count = %d, want 2", len(dto.Series))
	}
	if dto.Series["a"].V[0] != 1 {
		t.Fatalf("series a's exported value = %v, want 1", dto.Series["a"].V[0])
	}
}
