package style

import "testing"

func TestItemStrategyFor_AllStyles(t *testing.T) {
	for _, s := range AllItemStyles {
		strat := ItemStrategyFor(s)
		if strat.Style != s {
			t.Errorf("strategy for %s reports style %s", s, strat.Style)
		}
		if strat.Template == "" {
			t.Errorf("strategy for %s has no template", s)
		}
		if strat.Columns < 1 {
			t.Errorf("strategy for %s has %d columns", s, strat.Columns)
		}
	}
}

func TestItemStrategyFor_UnknownDefaultsToList(t *testing.T) {
	strat := ItemStrategyFor(ItemStyle("holographic"))
	if strat.Style != ItemList {
		t.Errorf("expected list default, got %s", strat.Style)
	}
}

func TestCategoryStrategyFor_AllStyles(t *testing.T) {
	for _, s := range AllCategoryStyles {
		strat := CategoryStrategyFor(s)
		if strat.Style != s {
			t.Errorf("strategy for %s reports style %s", s, strat.Style)
		}
		if strat.Template == "" {
			t.Errorf("strategy for %s has no template", s)
		}
	}
}

func TestDecorationStrategyFor_AllTypes(t *testing.T) {
	for _, d := range AllDecorationTypes {
		strat := DecorationStrategyFor(d)
		if strat.Type != d {
			t.Errorf("strategy for %s reports type %s", d, strat.Type)
		}
		if d == DecorationNone {
			if strat.HasOverlay() {
				t.Error("none motif must not render an overlay")
			}
			continue
		}
		if !strat.HasOverlay() {
			t.Errorf("motif %s renders nothing", d)
		}
	}
}

func TestDecorationDividers(t *testing.T) {
	dividers := map[DecorationType]bool{
		DecorationGoldLines: true,
		DecorationWaves:     true,
	}
	for _, d := range AllDecorationTypes {
		if got := DecorationStrategyFor(d).Divider; got != dividers[d] {
			t.Errorf("motif %s: Divider = %v, want %v", d, got, dividers[d])
		}
	}
}

// Every combination of the three closed sets must resolve without
// surprises; the page builder never branches on unknown strategies.
func TestRegistry_AllCombinations(t *testing.T) {
	for _, is := range AllItemStyles {
		for _, cs := range AllCategoryStyles {
			for _, dt := range AllDecorationTypes {
				item := ItemStrategyFor(is)
				cat := CategoryStrategyFor(cs)
				deco := DecorationStrategyFor(dt)
				if item.Style != is || cat.Style != cs || deco.Type != dt {
					t.Fatalf("combination %s/%s/%s resolved to %s/%s/%s",
						is, cs, dt, item.Style, cat.Style, deco.Type)
				}
			}
		}
	}
}

func TestFeatured_MagazineEveryThird(t *testing.T) {
	magazine := ItemStrategyFor(ItemMagazine)
	for i := 0; i < 12; i++ {
		want := i%3 == 0
		if got := magazine.Featured(i); got != want {
			t.Errorf("magazine Featured(%d) = %v, want %v", i, got, want)
		}
	}
}

func TestFeatured_NonAlternatingNeverFeatures(t *testing.T) {
	for _, s := range AllItemStyles {
		if s == ItemMagazine {
			continue
		}
		strat := ItemStrategyFor(s)
		for i := 0; i < 6; i++ {
			if strat.Featured(i) {
				t.Errorf("style %s features position %d", s, i)
			}
		}
	}
}
