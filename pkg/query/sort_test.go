package query

import (
	"fmt"
	"testing"

	"github.com/everfind/everfind/pkg/engine"
)

func TestSortModeTotalAndInjective(t *testing.T) {
	keys := []SortKey{
		SortByName, SortByTypeName, SortByPath, SortBySize, SortByExtension,
		SortByDateCreated, SortByDateModified, SortByDateAccessed, SortByAttributes,
	}
	orders := []SortOrder{Ascending, Descending}

	seen := make(map[engine.SortMode]string, len(keys)*len(orders))
	for _, key := range keys {
		for _, order := range orders {
			mode := sortMode(key, order)
			if mode == 0 {
				t.Errorf("sortMode(%d, %d) produced the zero mode", key, order)
			}
			label := fmt.Sprintf("key=%d order=%d", key, order)
			if prev, dup := seen[mode]; dup {
				t.Errorf("mode %d produced by both %s and %s", mode, prev, label)
			}
			seen[mode] = label
		}
	}

	if len(seen) != 18 {
		t.Errorf("expected 18 distinct sort modes, got %d", len(seen))
	}
}

func TestSortModeKnownCodes(t *testing.T) {
	tests := []struct {
		key   SortKey
		order SortOrder
		want  engine.SortMode
	}{
		{SortByName, Ascending, engine.SortNameAscending},
		{SortByName, Descending, engine.SortNameDescending},
		{SortBySize, Descending, engine.SortSizeDescending},
		{SortByDateModified, Ascending, engine.SortDateModifiedAscending},
		{SortByDateAccessed, Descending, engine.SortDateAccessedDescending},
		{SortByAttributes, Ascending, engine.SortAttributesAscending},
	}

	for _, tt := range tests {
		if got := sortMode(tt.key, tt.order); got != tt.want {
			t.Errorf("sortMode(%d, %d): expected %d, got %d", tt.key, tt.order, tt.want, got)
		}
	}
}
