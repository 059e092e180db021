package pagination

import "testing"

func TestGetMeta(t *testing.T) {
	meta := GetMeta(&Params{Page: 2, Limit: 10}, 25)
	if meta.TotalPages != 3 {
		t.Errorf("TotalPages = %d, want 3", meta.TotalPages)
	}
	if !meta.HasNext || !meta.HasPrev {
		t.Errorf("HasNext=%v HasPrev=%v, want both true", meta.HasNext, meta.HasPrev)
	}
}

func TestSlice(t *testing.T) {
	items := []int{1, 2, 3, 4, 5}

	got := Slice(items, &Params{Page: 2, Limit: 2, Offset: 2})
	if len(got) != 2 || got[0] != 3 || got[1] != 4 {
		t.Errorf("Slice page 2 = %v, want [3 4]", got)
	}

	got = Slice(items, &Params{Page: 3, Limit: 2, Offset: 4})
	if len(got) != 1 || got[0] != 5 {
		t.Errorf("Slice last page = %v, want [5]", got)
	}

	got = Slice(items, &Params{Page: 9, Limit: 2, Offset: 16})
	if len(got) != 0 {
		t.Errorf("Slice past end = %v, want empty", got)
	}
}
