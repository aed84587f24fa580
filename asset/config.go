package asset

import (
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
)

// BoardFile is the layout file name inside a piece directory
const BoardFile = "board.toml"

// BoardDef is the decoded board.toml
type BoardDef struct {
	CellPxW    int      `toml:"cell_px_w"`
	CellPxH    int      `toml:"cell_px_h"`
	CellUnitsW float64  `toml:"cell_units_w"`
	CellUnitsH float64  `toml:"cell_units_h"`
	Rows       []string `toml:"rows"`
}

// Layout splits rows into cells; an empty field is an empty cell
func (d *BoardDef) Layout() [][]string {
	layout := make([][]string, len(d.Rows))
	for r, row := range d.Rows {
		fields := strings.Split(row, ",")
		for i := range fields {
			fields[i] = strings.TrimSpace(fields[i])
		}
		layout[r] = fields
	}
	return layout
}

// GraphicsDef is the sprite section of a state
type GraphicsDef struct {
	Frames []string `toml:"frames"`
	FPS    float64  `toml:"fps"`
	Loop   *bool    `toml:"loop"` // default true
}

// StateDef is one [states.<name>] table
type StateDef struct {
	Kind             string      `toml:"kind"` // empty: inferred from the state name
	NeedClearPath    *bool       `toml:"need_clear_path"`
	Moves            []string    `toml:"moves"`               // absent: zero legal moves
	SpeedUnitsPerSec *float64    `toml:"speed_units_per_sec"` // absent: default speed
	DurationMs       int64       `toml:"duration_ms"`
	Graphics         GraphicsDef `toml:"graphics"`
}

// TransitionDef is one [[transitions]] edge
type TransitionDef struct {
	From  string `toml:"from"`
	Event string `toml:"event"`
	To    string `toml:"to"`
}

// PieceDef is the decoded <TYPE>.toml
type PieceDef struct {
	States      map[string]StateDef `toml:"states"`
	Transitions []TransitionDef     `toml:"transitions"`
}

// DecodeBoard parses board.toml content
func DecodeBoard(data string) (*BoardDef, error) {
	var def BoardDef
	md, err := toml.Decode(data, &def)
	if err != nil {
		return nil, errors.Wrap(err, "decode board")
	}
	warnUndecoded(BoardFile, md)
	if len(def.Rows) == 0 {
		return nil, errors.New("board: no rows")
	}
	return &def, nil
}

// DecodePiece parses a piece type file
func DecodePiece(name, data string) (*PieceDef, error) {
	var def PieceDef
	md, err := toml.Decode(data, &def)
	if err != nil {
		return nil, errors.Wrapf(err, "decode %s", name)
	}
	warnUndecoded(name, md)
	return &def, nil
}
