package vqonsole

import "testing"

func TestRuneWidthBasicAscii(t *testing.T) {
	if w := RuneWidth('a'); w != 1 {
		t.Errorf("expected width 1, got %d", w)
	}
}

func TestRuneWidthNull(t *testing.T) {
	if w := RuneWidth(0); w != 0 {
		t.Errorf("expected width 0 for NUL, got %d", w)
	}
}

func TestRuneWidthC0Control(t *testing.T) {
	for _, cp := range []rune{1, 7, 31, 0x7F, 0x9F} {
		if w := RuneWidth(cp); w != -1 {
			t.Errorf("RuneWidth(%#x) = %d, want -1", cp, w)
		}
	}
}

func TestRuneWidthCombiningMark(t *testing.T) {
	// U+0301 COMBINING ACUTE ACCENT (Mn)
	if w := RuneWidth(0x0301); w != 0 {
		t.Errorf("expected width 0 for combining mark, got %d", w)
	}
}

func TestRuneWidthSoftHyphenKeepsWidthOne(t *testing.T) {
	if w := RuneWidth(0x00AD); w != 1 {
		t.Errorf("SOFT HYPHEN should keep width 1, got %d", w)
	}
}

func TestRuneWidthHangulJamoMedial(t *testing.T) {
	if w := RuneWidth(0x1160); w != 0 {
		t.Errorf("Hangul Jamo medial should be width 0, got %d", w)
	}
}

func TestRuneWidthZeroWidthSpace(t *testing.T) {
	if w := RuneWidth(0x200B); w != 0 {
		t.Errorf("ZERO WIDTH SPACE should be width 0, got %d", w)
	}
}

func TestRuneWidthCJK(t *testing.T) {
	// U+4E2D CJK ideograph "中"
	if w := RuneWidth(0x4E2D); w != 2 {
		t.Errorf("expected width 2 for CJK ideograph, got %d", w)
	}
}

func TestRuneWidthHangulSyllable(t *testing.T) {
	if w := RuneWidth(0xAC00); w != 2 {
		t.Errorf("expected width 2 for Hangul syllable, got %d", w)
	}
}

func TestRuneWidthFullwidthForm(t *testing.T) {
	if w := RuneWidth(0xFF21); w != 2 { // FULLWIDTH LATIN CAPITAL A
		t.Errorf("expected width 2 for fullwidth form, got %d", w)
	}
}

func TestRuneWidthSupplementaryCJK(t *testing.T) {
	if w := RuneWidth(0x20000); w != 2 {
		t.Errorf("expected width 2 for supplementary CJK plane, got %d", w)
	}
}
