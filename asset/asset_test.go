package asset

import (
	"errors"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/kungfu-chess/core"
	"github.com/lixenwraith/kungfu-chess/engine"
	"github.com/lixenwraith/kungfu-chess/engine/fsm"
	"github.com/lixenwraith/kungfu-chess/physics"
	"github.com/lixenwraith/kungfu-chess/rules"
)

const miniBoard = `
rows = [
    "KB,,",
    ",,",
    "KW,RW,",
]
`

const miniKing = `
[states.idle]
moves = ["-1,0", "1,0", "0,1", "0,-1"]
[states.idle.graphics]
frames = ["K"]
`

const miniRook = `
[states.idle]
moves = ["-1,0", "-2,0", "0,1"]
[states.idle.graphics]
frames = ["R", "r"]
fps = 4.0

[states.move]
speed_units_per_sec = -3.0

[states.cool_rest]
duration_ms = 250

[[transitions]]
from = "idle"
event = "move"
to = "move"

[[transitions]]
from = "move"
event = "done"
to = "cool_rest"

[[transitions]]
from = "cool_rest"
event = "done"
to = "idle"

[[transitions]]
from = "cool_rest"
event = "done"
to = "missing_state"
`

func miniFS() fstest.MapFS {
	return fstest.MapFS{
		"board.toml": {Data: []byte(miniBoard)},
		"K.toml":     {Data: []byte(miniKing)},
		"R.toml":     {Data: []byte(miniRook)},
		"notes.txt":  {Data: []byte("ignored")},
	}
}

func TestLoadDefault(t *testing.T) {
	set, err := LoadDefault()
	require.NoError(t, err)
	assert.Equal(t, SourceEmbedded, set.Source)
	assert.Equal(t, 8, set.Board.Rows())
	assert.Equal(t, 8, set.Board.Cols())
	assert.Equal(t, []byte("BKNPQR"), set.Types())

	pieces, err := set.Pieces()
	require.NoError(t, err)
	assert.Len(t, pieces, 32)

	kings := 0
	for _, p := range pieces {
		assert.Equal(t, fsm.InitialState, p.StateName())
		assert.Equal(t, p.Home(), p.Cell())
		if p.IsKing() {
			kings++
		}
	}
	assert.Equal(t, 2, kings)

	_, err = set.NewGame(engine.WithTickInterval(0))
	require.NoError(t, err)
}

func TestLoadFS(t *testing.T) {
	set, err := LoadFS(miniFS(), "mini")
	require.NoError(t, err)
	assert.Equal(t, 3, set.Board.Rows())
	assert.Equal(t, 3, set.Board.Cols())

	pieces, err := set.Pieces()
	require.NoError(t, err)
	require.Len(t, pieces, 3)
	ids := []string{pieces[0].ID(), pieces[1].ID(), pieces[2].ID()}
	assert.Equal(t, []string{"KB_0_0", "KW_2_0", "RW_2_1"}, ids)
}

func TestStateDefaults(t *testing.T) {
	set, err := LoadFS(miniFS(), "mini")
	require.NoError(t, err)

	rook, err := set.NewPiece('R', core.White, core.Cell{Row: 2, Col: 1})
	require.NoError(t, err)
	m := rook.Machine()

	moveID, ok := m.Lookup("move")
	require.True(t, ok)
	move := m.State(moveID)
	require.Equal(t, physics.KindMove, move.Physics.Kind())
	assert.Equal(t, 3.0, move.Physics.(*physics.Move).Speed(), "negative speed normalized")
	assert.Nil(t, move.Moves, "state without moves has zero legal moves")

	restID, ok := m.Lookup("cool_rest")
	require.True(t, ok)
	rest := m.State(restID)
	assert.Equal(t, physics.KindRest, rest.Physics.Kind(), "kind inferred from rest suffix")
	assert.Equal(t, int64(250), rest.Physics.(*physics.Rest).Duration())

	next, ok := rest.Next(core.KindDone)
	require.True(t, ok)
	assert.Equal(t, "idle", m.State(next).Name, "edge to unknown state skipped")

	assert.Equal(t, "R", rook.Frame())
	restFrames, ok := rest.Presenter.(engine.Framer)
	require.True(t, ok)
	assert.Equal(t, "R", restFrames.Frame(), "rest inherits idle frames")
	assert.True(t, m.Current().NeedClearPath, "need_clear_path defaults to true")
}

func TestBlackTablesMirrored(t *testing.T) {
	set, err := LoadFS(miniFS(), "mini")
	require.NoError(t, err)

	white, err := set.NewPiece('R', core.White, core.Cell{Row: 2, Col: 1})
	require.NoError(t, err)
	black, err := set.NewPiece('R', core.Black, core.Cell{Row: 0, Col: 1})
	require.NoError(t, err)

	tag, ok := white.State().Moves.Lookup(-2, 0)
	assert.True(t, ok)
	assert.Equal(t, rules.TagEither, tag)

	_, ok = black.State().Moves.Lookup(-2, 0)
	assert.False(t, ok)
	_, ok = black.State().Moves.Lookup(2, 0)
	assert.True(t, ok)

	other, err := set.NewPiece('R', core.White, core.Cell{Row: 1, Col: 2})
	require.NoError(t, err)
	assert.Same(t, white.State().Moves, other.State().Moves, "tables shared per type and color")
	assert.NotSame(t, white.State().Physics, other.State().Physics, "physics owned per piece")
}

func TestLoadErrors(t *testing.T) {
	cases := []struct {
		name  string
		patch func(fstest.MapFS)
		want  error
	}{
		{"missing type file", func(f fstest.MapFS) { delete(f, "R.toml") }, ErrUnknownPiece},
		{"malformed rule", func(f fstest.MapFS) {
			f["R.toml"] = &fstest.MapFile{Data: []byte("[states.idle]\nmoves = [\"x,1\"]\n[states.idle.graphics]\nframes = [\"R\"]\n")}
		}, rules.ErrMalformedRule},
		{"idle without frames", func(f fstest.MapFS) {
			f["R.toml"] = &fstest.MapFile{Data: []byte("[states.idle]\nmoves = [\"1,0\"]\n")}
		}, ErrMissingFrames},
		{"no idle state", func(f fstest.MapFS) {
			f["R.toml"] = &fstest.MapFile{Data: []byte("[states.move]\nkind = \"move\"\n")}
		}, fsm.ErrMissingInitial},
		{"zero speed", func(f fstest.MapFS) {
			f["R.toml"] = &fstest.MapFile{Data: []byte("[states.idle.graphics]\nframes = [\"R\"]\n[states.move]\nkind = \"move\"\nspeed_units_per_sec = 0.0\n")}
		}, physics.ErrZeroSpeed},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			fsys := miniFS()
			tc.patch(fsys)
			_, err := LoadFS(fsys, "mini")
			require.Error(t, err)
			assert.True(t, errors.Is(err, tc.want), "got %v", err)
		})
	}
}

func TestLoadMissingBoard(t *testing.T) {
	fsys := miniFS()
	delete(fsys, "board.toml")
	_, err := LoadFS(fsys, "mini")
	assert.Error(t, err)
}

func TestRaggedBoard(t *testing.T) {
	fsys := miniFS()
	fsys["board.toml"] = &fstest.MapFile{Data: []byte("rows = [\"KB,,\", \",\", \"KW,RW,\"]\n")}
	_, err := LoadFS(fsys, "mini")
	assert.Error(t, err)
}

func TestLoadAutoExplicitDir(t *testing.T) {
	dir := t.TempDir()
	_, err := LoadAuto(dir + "/nope")
	assert.Error(t, err)
}
