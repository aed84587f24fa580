package asset

// Default chess set, used when no piece directory is configured
// Each constant is the content of the file named in DefaultFiles

const DefaultBoard = `# Row 0 is Black's back rank; empty fields are empty cells
cell_px_w = 64
cell_px_h = 64
cell_units_w = 1.0
cell_units_h = 1.0
rows = [
    "RB,NB,BB,QB,KB,BB,NB,RB",
    "PB,PB,PB,PB,PB,PB,PB,PB",
    ",,,,,,,",
    ",,,,,,,",
    ",,,,,,,",
    ",,,,,,,",
    "PW,PW,PW,PW,PW,PW,PW,PW",
    "RW,NW,BW,QW,KW,BW,NW,RW",
]
`

const DefaultKing = `# K: moves written from White's side
[states.idle]
kind = "idle"
need_clear_path = true
moves = [
    "-1,0", "1,0", "0,-1", "0,1", "-1,-1", "-1,1", "1,-1", "1,1",
]
[states.idle.graphics]
frames = ["K"]
fps = 2.0
loop = true

[states.move]
kind = "move"
speed_units_per_sec = 1.0
[states.move.graphics]
frames = ["K", "k"]
fps = 8.0

[states.jump]
kind = "jump"
duration_ms = 1000
[states.jump.graphics]
frames = ["^"]

[states.long_rest]
kind = "rest"
duration_ms = 2000
[states.long_rest.graphics]
frames = ["k"]

[states.short_rest]
kind = "rest"
duration_ms = 1000
[states.short_rest.graphics]
frames = ["k"]

[[transitions]]
from = "idle"
event = "move"
to = "move"

[[transitions]]
from = "idle"
event = "jump"
to = "jump"

[[transitions]]
from = "move"
event = "done"
to = "long_rest"

[[transitions]]
from = "jump"
event = "done"
to = "short_rest"

[[transitions]]
from = "long_rest"
event = "done"
to = "idle"

[[transitions]]
from = "short_rest"
event = "done"
to = "idle"
`

const DefaultQueen = `# Q: moves written from White's side
[states.idle]
kind = "idle"
need_clear_path = true
moves = [
    "-1,0", "-2,0", "-3,0", "-4,0", "-5,0", "-6,0", "-7,0", "1,0",
    "2,0", "3,0", "4,0", "5,0", "6,0", "7,0", "0,-1", "0,-2",
    "0,-3", "0,-4", "0,-5", "0,-6", "0,-7", "0,1", "0,2", "0,3",
    "0,4", "0,5", "0,6", "0,7", "-1,-1", "-2,-2", "-3,-3", "-4,-4",
    "-5,-5", "-6,-6", "-7,-7", "-1,1", "-2,2", "-3,3", "-4,4", "-5,5",
    "-6,6", "-7,7", "1,-1", "2,-2", "3,-3", "4,-4", "5,-5", "6,-6",
    "7,-7", "1,1", "2,2", "3,3", "4,4", "5,5", "6,6", "7,7",
]
[states.idle.graphics]
frames = ["Q"]
fps = 2.0
loop = true

[states.move]
kind = "move"
speed_units_per_sec = 2.0
[states.move.graphics]
frames = ["Q", "q"]
fps = 8.0

[states.jump]
kind = "jump"
duration_ms = 1000
[states.jump.graphics]
frames = ["^"]

[states.long_rest]
kind = "rest"
duration_ms = 2000
[states.long_rest.graphics]
frames = ["q"]

[states.short_rest]
kind = "rest"
duration_ms = 1000
[states.short_rest.graphics]
frames = ["q"]

[[transitions]]
from = "idle"
event = "move"
to = "move"

[[transitions]]
from = "idle"
event = "jump"
to = "jump"

[[transitions]]
from = "move"
event = "done"
to = "long_rest"

[[transitions]]
from = "jump"
event = "done"
to = "short_rest"

[[transitions]]
from = "long_rest"
event = "done"
to = "idle"

[[transitions]]
from = "short_rest"
event = "done"
to = "idle"
`

const DefaultRook = `# R: moves written from White's side
[states.idle]
kind = "idle"
need_clear_path = true
moves = [
    "-1,0", "-2,0", "-3,0", "-4,0", "-5,0", "-6,0", "-7,0", "1,0",
    "2,0", "3,0", "4,0", "5,0", "6,0", "7,0", "0,-1", "0,-2",
    "0,-3", "0,-4", "0,-5", "0,-6", "0,-7", "0,1", "0,2", "0,3",
    "0,4", "0,5", "0,6", "0,7",
]
[states.idle.graphics]
frames = ["R"]
fps = 2.0
loop = true

[states.move]
kind = "move"
speed_units_per_sec = 2.0
[states.move.graphics]
frames = ["R", "r"]
fps = 8.0

[states.jump]
kind = "jump"
duration_ms = 1000
[states.jump.graphics]
frames = ["^"]

[states.long_rest]
kind = "rest"
duration_ms = 2000
[states.long_rest.graphics]
frames = ["r"]

[states.short_rest]
kind = "rest"
duration_ms = 1000
[states.short_rest.graphics]
frames = ["r"]

[[transitions]]
from = "idle"
event = "move"
to = "move"

[[transitions]]
from = "idle"
event = "jump"
to = "jump"

[[transitions]]
from = "move"
event = "done"
to = "long_rest"

[[transitions]]
from = "jump"
event = "done"
to = "short_rest"

[[transitions]]
from = "long_rest"
event = "done"
to = "idle"

[[transitions]]
from = "short_rest"
event = "done"
to = "idle"
`

const DefaultBishop = `# B: moves written from White's side
[states.idle]
kind = "idle"
need_clear_path = true
moves = [
    "-1,-1", "-2,-2", "-3,-3", "-4,-4", "-5,-5", "-6,-6", "-7,-7", "-1,1",
    "-2,2", "-3,3", "-4,4", "-5,5", "-6,6", "-7,7", "1,-1", "2,-2",
    "3,-3", "4,-4", "5,-5", "6,-6", "7,-7", "1,1", "2,2", "3,3",
    "4,4", "5,5", "6,6", "7,7",
]
[states.idle.graphics]
frames = ["B"]
fps = 2.0
loop = true

[states.move]
kind = "move"
speed_units_per_sec = 2.0
[states.move.graphics]
frames = ["B", "b"]
fps = 8.0

[states.jump]
kind = "jump"
duration_ms = 1000
[states.jump.graphics]
frames = ["^"]

[states.long_rest]
kind = "rest"
duration_ms = 2000
[states.long_rest.graphics]
frames = ["b"]

[states.short_rest]
kind = "rest"
duration_ms = 1000
[states.short_rest.graphics]
frames = ["b"]

[[transitions]]
from = "idle"
event = "move"
to = "move"

[[transitions]]
from = "idle"
event = "jump"
to = "jump"

[[transitions]]
from = "move"
event = "done"
to = "long_rest"

[[transitions]]
from = "jump"
event = "done"
to = "short_rest"

[[transitions]]
from = "long_rest"
event = "done"
to = "idle"

[[transitions]]
from = "short_rest"
event = "done"
to = "idle"
`

const DefaultKnight = `# N: moves written from White's side
[states.idle]
kind = "idle"
need_clear_path = false
moves = [
    "-2,-1", "-2,1", "-1,-2", "-1,2", "1,-2", "1,2", "2,-1", "2,1",
]
[states.idle.graphics]
frames = ["N"]
fps = 2.0
loop = true

[states.move]
kind = "move"
speed_units_per_sec = 2.0
[states.move.graphics]
frames = ["N", "n"]
fps = 8.0

[states.jump]
kind = "jump"
duration_ms = 1000
[states.jump.graphics]
frames = ["^"]

[states.long_rest]
kind = "rest"
duration_ms = 2000
[states.long_rest.graphics]
frames = ["n"]

[states.short_rest]
kind = "rest"
duration_ms = 1000
[states.short_rest.graphics]
frames = ["n"]

[[transitions]]
from = "idle"
event = "move"
to = "move"

[[transitions]]
from = "idle"
event = "jump"
to = "jump"

[[transitions]]
from = "move"
event = "done"
to = "long_rest"

[[transitions]]
from = "jump"
event = "done"
to = "short_rest"

[[transitions]]
from = "long_rest"
event = "done"
to = "idle"

[[transitions]]
from = "short_rest"
event = "done"
to = "idle"
`

const DefaultPawn = `# P: idle allows the double step; after the first move the pawn lives in the ready_* cycle
[states.idle]
kind = "idle"
need_clear_path = true
moves = ["-1,0:non_capture", "-2,0:non_capture", "-1,-1:capture", "-1,1:capture"]
[states.idle.graphics]
frames = ["P"]
fps = 2.0
loop = true

[states.move]
kind = "move"
speed_units_per_sec = 2.0
[states.move.graphics]
frames = ["P", "p"]
fps = 8.0

[states.jump]
kind = "jump"
duration_ms = 1000
[states.jump.graphics]
frames = ["^"]

[states.long_rest]
kind = "rest"
duration_ms = 2000
[states.long_rest.graphics]
frames = ["p"]

[states.short_rest]
kind = "rest"
duration_ms = 1000
[states.short_rest.graphics]
frames = ["p"]

[states.ready]
kind = "idle"
need_clear_path = true
moves = ["-1,0:non_capture", "-1,-1:capture", "-1,1:capture"]

[states.ready_move]
kind = "move"
speed_units_per_sec = 2.0
[states.ready_move.graphics]
frames = ["P", "p"]
fps = 8.0

[states.ready_jump]
kind = "jump"
duration_ms = 1000
[states.ready_jump.graphics]
frames = ["^"]

[states.ready_long_rest]
kind = "rest"
duration_ms = 2000
[states.ready_long_rest.graphics]
frames = ["p"]

[states.ready_short_rest]
kind = "rest"
duration_ms = 1000
[states.ready_short_rest.graphics]
frames = ["p"]

[[transitions]]
from = "idle"
event = "move"
to = "move"

[[transitions]]
from = "idle"
event = "jump"
to = "jump"

[[transitions]]
from = "move"
event = "done"
to = "ready_long_rest"

[[transitions]]
from = "jump"
event = "done"
to = "short_rest"

[[transitions]]
from = "long_rest"
event = "done"
to = "idle"

[[transitions]]
from = "short_rest"
event = "done"
to = "idle"

[[transitions]]
from = "ready"
event = "move"
to = "ready_move"

[[transitions]]
from = "ready"
event = "jump"
to = "ready_jump"

[[transitions]]
from = "ready_move"
event = "done"
to = "ready_long_rest"

[[transitions]]
from = "ready_jump"
event = "done"
to = "ready_short_rest"

[[transitions]]
from = "ready_long_rest"
event = "done"
to = "ready"

[[transitions]]
from = "ready_short_rest"
event = "done"
to = "ready"
`

// DefaultFiles maps file names to the embedded set
var DefaultFiles = map[string]string{
	BoardFile: DefaultBoard,
	"K.toml":  DefaultKing,
	"Q.toml":  DefaultQueen,
	"R.toml":  DefaultRook,
	"B.toml":  DefaultBishop,
	"N.toml":  DefaultKnight,
	"P.toml":  DefaultPawn,
}
