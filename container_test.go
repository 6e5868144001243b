package tstep

import "testing"

func TestTsContainerAddGetRemove(t *testing.T) {
	c := NewTsContainer[float64, float64]("demo")
	ts := newFloatSeries(Pair[float64, float64]{T: 0, V: 1})
	c.Add("series-a", ts)

	got, ok := c.Get("series-a")
	if !ok || got != ts {
		t.Fatalf("Get(series-a) = %v,%v", got, ok)
	}
	if c.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", c.Len())
	}
	keys := c.Keys()
	if len(keys) != 1 || keys[0] != "series-a" {
		t.Fatalf("Keys() = %v, want [series-a]", keys)
	}

	c.Remove("series-a")
	if _, ok := c.Get("series-a"); ok {
		t.Fatal("series should be gone after Remove")
	}
	if c.Len() != 0 {
		t.Fatalf("Len() after Remove = %d, want 0", c.Len())
	}
}

func TestTsContainerWithIDIsStamped(t *testing.T) {
	c := NewTsContainerWithID[float64, float64]("demo")
	if c.ID == "" {
		t.Fatal("NewTsContainerWithID should stamp a non-empty ID")
	}
	plain := NewTsContainer[float64, float64]("demo2")
	if plain.ID != "" {
		t.Fatal("NewTsContainer should not stamp an ID")
	}
}
