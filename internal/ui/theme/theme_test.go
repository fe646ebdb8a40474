package theme

import "testing"

func TestColorThemes_AllResolvable(t *testing.T) {
	for _, name := range ColorThemes() {
		if _, ok := palettes[name]; !ok {
			t.Errorf("no palette for %q", name)
		}
	}
}

func TestSetColorTheme(t *testing.T) {
	t.Cleanup(func() { SetColorTheme("theme-default") })

	SetColorTheme("theme-ocean")
	if Primary != palettes["theme-ocean"].Primary {
		t.Error("expected Primary to switch to the ocean palette")
	}
	if Title.GetForeground() != Primary {
		t.Error("expected Title style to be rebuilt with the new Primary")
	}
}

func TestSetColorTheme_UnknownFallsBack(t *testing.T) {
	t.Cleanup(func() { SetColorTheme("theme-default") })

	SetColorTheme("theme-nope")
	if Primary != palettes["theme-default"].Primary {
		t.Error("expected unknown theme to keep the default palette")
	}
}
