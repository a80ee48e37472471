// Package export serializes game snapshots to JSON and renders them as
// Graphviz diagrams.
//
// # JSON Format
//
// A snapshot records one moment of a game:
//
//	{
//	  "game_id": "6f1c...",
//	  "seed": 42,
//	  "size": 8,
//	  "score": 16,
//	  "state": "playing",
//	  "board": [[0, 3, 0, ...], ...],
//	  "selection": [
//	    {"slot": 0, "shape": "square2", "rows": ["11", "11"], "color": 4, "active": true}
//	  ]
//	}
//
// The board is indexed board[y][x]; zero marks an empty cell. Consumed
// selection slots have active set to false and carry no shape.
//
// # Rendering
//
// [ToDOT] lays the board out as a single HTML-table node with one filled
// cell per board cell and the active pieces below it. [RenderSVG] and
// [RenderPNG] run the DOT source through the embedded Graphviz runtime.
package export
