package audio

import (
	"go/build"
	"strings"
	"testing"
)

func TestSoundString(t *testing.T) {
	tests := []struct {
		s        Sound
		expected string
	}{
		{SoundShot, "shot"},
		{SoundStretch, "stretch"},
		{SoundSubmit, "submit"},
		{Sound(42), "unknown"},
	}

	for _, tc := range tests {
		if got := tc.s.String(); got != tc.expected {
			t.Errorf("Sound(%d).String() = %q, expected %q", tc.s, got, tc.expected)
		}
	}
}

func TestNopPlayer(t *testing.T) {
	var p Player = Nop{}
	p.Play(SoundShot) // must not panic
}

// Scenes, sessions and the terminal frontends import this package, so it
// must stay free of the speaker stack.
func TestNoPlaybackImports(t *testing.T) {
	pkg, err := build.ImportDir(".", 0)
	if err != nil {
		t.Fatalf("ImportDir() error = %v", err)
	}
	for _, imp := range pkg.Imports {
		if strings.HasPrefix(imp, "github.com/gopxl/beep") || strings.HasSuffix(imp, "/audio/sfx") {
			t.Errorf("package audio imports %s", imp)
		}
	}
}
