package theme

import "testing"

func TestIconSize(t *testing.T) {
	for name, data := range map[string][]byte{
		"success": IconSuccess,
		"fail":    IconFail,
		"info":    IconInfo,
	} {
		w, h := IconSize(data)
		if w != 16 || h != 16 {
			t.Errorf("%s: size = %dx%d, want 16x16", name, w, h)
		}
	}
}

func TestIconSize_Malformed(t *testing.T) {
	cases := [][]byte{
		nil,
		{'G'},
		{'X', 1, 16, 16},
		append([]byte{'G', 1, 16, 16}, make([]byte, 10)...), // truncated rows
	}
	for i, data := range cases {
		if w, h := IconSize(data); w != 0 || h != 0 {
			t.Errorf("case %d: size = %dx%d, want 0x0", i, w, h)
		}
	}
}

func TestIconBit(t *testing.T) {
	// IconFail's top-left arm: bit (1, 2) is set, bit (0, 0) is not.
	if !IconBit(IconFail, 1, 2) {
		t.Error("bit (1,2) of the cross should be set")
	}
	if IconBit(IconFail, 0, 0) {
		t.Error("bit (0,0) of the cross should be clear")
	}
	if IconBit(IconFail, -1, 0) || IconBit(IconFail, 16, 0) {
		t.Error("out-of-range bits must read clear")
	}
}

func TestInit_SwitchesPalette(t *testing.T) {
	Init(ModeDark)
	dark := ColorBg
	Init(ModeLight)
	if ColorBg == dark {
		t.Error("light palette should change the background color")
	}
	if CurrentMode() != ModeLight {
		t.Errorf("CurrentMode = %s, want light", CurrentMode())
	}
	Init(ModeDark)
}
