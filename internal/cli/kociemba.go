package cli

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/ehrlich-b/cube/internal/cube"
	"github.com/ehrlich-b/cube/internal/kociemba"
	"github.com/spf13/cobra"
)

// faceOrder maps a kociemba.Face index (U,R,F,D,L,B) to the naive
// cube's Face, so the sticker grid's facelet array can be replayed on
// an independent representation.
var faceOrder = [6]cube.Face{cube.Up, cube.Right, cube.Front, cube.Down, cube.Left, cube.Back}

// naiveCubeFromColors rebuilds the scrambled cube the sticker grid
// describes on the naive cube.Cube, so the solver's own output can be
// replayed and checked against a representation the solver never
// touches.
func naiveCubeFromColors(colors [54]kociemba.Color) *cube.Cube {
	c := cube.NewCube()
	for face := 0; face < 6; face++ {
		for row := 0; row < 3; row++ {
			for col := 0; col < 3; col++ {
				c.Faces[faceOrder[face]][row][col] = cube.Color(colors[9*face+3*row+col])
			}
		}
	}
	return c
}

// parseSolutionMoves turns a solution string (a face letter repeated
// once, twice, or three times per move) into naive cube moves.
func parseSolutionMoves(solution string) ([]cube.Move, error) {
	letterFace := map[byte]cube.Face{
		'U': cube.Up, 'R': cube.Right, 'F': cube.Front,
		'D': cube.Down, 'L': cube.Left, 'B': cube.Back,
	}
	var moves []cube.Move
	i := 0
	for i < len(solution) {
		ch := solution[i]
		face, ok := letterFace[ch]
		if !ok {
			return nil, fmt.Errorf("kociemba: unrecognized move letter %q in solution", string(ch))
		}
		j := i
		for j < len(solution) && solution[j] == ch {
			j++
		}
		switch run := j - i; run {
		case 1:
			moves = append(moves, cube.Move{Face: face, Clockwise: true})
		case 2:
			moves = append(moves, cube.Move{Face: face, Double: true})
		case 3:
			moves = append(moves, cube.Move{Face: face, Clockwise: false})
		default:
			return nil, fmt.Errorf("kociemba: move letter %q repeated %d times in solution", string(ch), run)
		}
		i = j
	}
	return moves, nil
}

var kociembaCmd = &cobra.Command{
	Use:   "kociemba <input> <output>",
	Short: "Solve a 3x3x3 cube from a 9-line sticker grid file",
	Long: `Solve a 3x3x3 cube using Kociemba's two-phase algorithm.

The input file holds the scrambled cube as a 9-line sticker grid: lines
1-3 are the up face, lines 4-6 are left/front/right/back side by side,
lines 7-9 are the down face, using the physical colors
O(range)/B(lue)/W(hite)/R(ed)/G(reen)/Y(ellow).

The output file receives the solution as a string over {U,R,F,D,L,B},
or a single "Error N" token (N 1-8) if the cube can't be solved.`,
	Args: cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		inputPath, outputPath := args[0], args[1]
		maxDepth, _ := cmd.Flags().GetInt("max-depth")
		timeout, _ := cmd.Flags().GetDuration("timeout")

		if err := runKociemba(inputPath, outputPath, maxDepth, timeout); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	},
}

func runKociemba(inputPath, outputPath string, maxDepth int, timeout time.Duration) error {
	raw, err := os.ReadFile(inputPath)
	if err != nil {
		return fmt.Errorf("reading input file: %w", err)
	}

	lines := strings.Split(strings.TrimRight(string(raw), "\n"), "\n")
	colors, err := kociemba.ParseStickerGrid(lines)
	if err != nil {
		return writeResult(outputPath, kociemba.ErrMalformedInput.String())
	}

	solution, solveErr := kociemba.Solve(colors, maxDepth, timeout)
	if solveErr != nil {
		return writeResult(outputPath, solveErr.Code.String())
	}

	if err := verifySolution(colors, solution); err != nil {
		return fmt.Errorf("internal: %w", err)
	}

	return writeResult(outputPath, solution)
}

// verifySolution replays the solver's output on a fresh naive sticker
// cube built from the original scramble and confirms it restores the
// solved coloring. A failure here means the engine produced a move
// sequence that doesn't actually solve the cube it was given, distinct
// from the Error N codes Solve itself reports.
func verifySolution(colors [54]kociemba.Color, solution string) error {
	moves, err := parseSolutionMoves(solution)
	if err != nil {
		return err
	}
	replay := naiveCubeFromColors(colors)
	replay.ApplyMoves(moves)
	if !replay.IsSolved() {
		return fmt.Errorf("kociemba: solution %q did not solve the replayed cube", solution)
	}
	return nil
}

func writeResult(outputPath, content string) error {
	if err := os.WriteFile(outputPath, []byte(content+"\n"), 0644); err != nil {
		return fmt.Errorf("writing output file: %w", err)
	}
	return nil
}

func init() {
	kociembaCmd.Flags().Int("max-depth", kociemba.DefaultMaxDepth, "Maximum solution length in quarter-turn-equivalent moves")
	kociembaCmd.Flags().Duration("timeout", kociemba.DefaultTimeout, "Maximum time to search before giving up")
}
