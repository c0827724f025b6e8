package window

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/heart-quest/internal/core"
)

func fakeKeys(pressed, just []ebiten.Key) KeyReader {
	in := func(set []ebiten.Key) func(ebiten.Key) bool {
		return func(k ebiten.Key) bool {
			for _, s := range set {
				if s == k {
					return true
				}
			}
			return false
		}
	}
	return KeyReader{Pressed: in(pressed), JustPressed: in(just)}
}

func TestKeyReaderFrame(t *testing.T) {
	tests := []struct {
		name    string
		pressed []ebiten.Key
		just    []ebiten.Key
		want    []core.Action
	}{
		{"nothing", nil, nil, nil},
		{"arrows", []ebiten.Key{ebiten.KeyArrowLeft, ebiten.KeyArrowUp}, nil, []core.Action{core.ActionLeft, core.ActionUp}},
		{"wasd", []ebiten.Key{ebiten.KeyD, ebiten.KeyS}, nil, []core.Action{core.ActionRight, core.ActionDown}},
		{"opposites both held", []ebiten.Key{ebiten.KeyA, ebiten.KeyArrowRight}, nil, []core.Action{core.ActionLeft, core.ActionRight}},
		{"restart", nil, []ebiten.Key{ebiten.KeyR}, []core.Action{core.ActionRestart}},
		{"held r is not a restart", []ebiten.Key{ebiten.KeyR}, nil, nil},
		{"escape quits", nil, []ebiten.Key{ebiten.KeyEscape}, []core.Action{core.ActionQuit}},
	}
	all := []core.Action{core.ActionLeft, core.ActionRight, core.ActionUp, core.ActionDown, core.ActionRestart, core.ActionQuit}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := fakeKeys(tt.pressed, tt.just).Frame()
			want := core.NewInputFrame()
			for _, a := range tt.want {
				want.Set(a)
			}
			for _, a := range all {
				if in.Has(a) != want.Has(a) {
					t.Errorf("%v held = %v, want %v", a, in.Has(a), want.Has(a))
				}
			}
		})
	}
}
