package ui

import (
	"snake-walls/game"
	"snake-walls/game/types"

	rl "github.com/gen2brain/raylib-go/raylib"
	"golang.org/x/exp/rand"
)

const (
	fontSize      = 20
	lineHeight    = 24
	borderPadding = 20
	boostWidth    = 3
)

var (
	snakeColor    = rl.Color{R: 0, G: 255, B: 0, A: 255}
	obstacleColor = rl.Color{R: 128, G: 128, B: 128, A: 255}
	appleColor    = rl.Color{R: 255, G: 0, B: 0, A: 255}
	pillColor     = rl.Color{R: 255, G: 0, B: 255, A: 255}
	fastPillColor = rl.Color{R: 255, G: 215, B: 0, A: 255}
	boostColor    = rl.Color{R: 0, G: 191, B: 255, A: 255}
	background    = rl.Color{R: 10, G: 10, B: 10, A: 255}
)

// Renderer is the raylib frontend. The window is one cell size per grid
// cell.
type Renderer struct {
	cellSize     int32
	screenWidth  int32
	screenHeight int32
	rng          *rand.Rand // Rainbow colours only
}

// NewRenderer opens the window. It must be called from the main goroutine.
func NewRenderer(grid types.Grid, cellSize int, seed uint64) *Renderer {
	r := &Renderer{
		cellSize:     int32(cellSize),
		screenWidth:  int32(grid.Width * cellSize),
		screenHeight: int32(grid.Height * cellSize),
		rng:          rand.New(rand.NewSource(seed)),
	}

	rl.SetTraceLogLevel(rl.LogWarning)
	rl.InitWindow(r.screenWidth, r.screenHeight, "Snake")
	rl.SetExitKey(0) // Escape pauses instead of closing
	rl.SetTargetFPS(60)
	return r
}

var keyInputs = []struct {
	key   int32
	input Input
}{
	{rl.KeyUp, InputUp},
	{rl.KeyW, InputUp},
	{rl.KeyDown, InputDown},
	{rl.KeyS, InputDown},
	{rl.KeyLeft, InputLeft},
	{rl.KeyA, InputLeft},
	{rl.KeyRight, InputRight},
	{rl.KeyD, InputRight},
	{rl.KeyEnter, InputSelect},
	{rl.KeyEscape, InputBack},
}

func (r *Renderer) Poll() []Input {
	var inputs []Input
	if rl.WindowShouldClose() {
		inputs = append(inputs, InputClose)
	}
	for _, k := range keyInputs {
		if rl.IsKeyPressed(k.key) {
			inputs = append(inputs, k.input)
		}
	}
	return inputs
}

func (r *Renderer) Closed() bool {
	return rl.WindowShouldClose()
}

func (r *Renderer) Close() {
	rl.CloseWindow()
}

func (r *Renderer) DrawMenu(m *Menu) {
	rl.BeginDrawing()
	rl.ClearBackground(rl.Black)

	r.drawCentered(m.Title, r.screenHeight/4, fontSize*2, rl.White)
	y := r.screenHeight/2 - int32(len(m.Items))*lineHeight
	for i, item := range m.Items {
		color := rl.Gray
		label := item.Label
		if i == m.Cursor {
			color = snakeColor
			label = "> " + label + " <"
		}
		r.drawCentered(label, y, fontSize, color)
		y += lineHeight * 2
	}

	rl.EndDrawing()
}

func (r *Renderer) DrawRecords(lines []string) {
	rl.BeginDrawing()
	rl.ClearBackground(rl.Black)

	rl.DrawText(recordsTitle, borderPadding, borderPadding, fontSize, rl.White)
	y := int32(borderPadding + lineHeight*2)
	for _, line := range lines {
		if y > r.screenHeight-lineHeight {
			break
		}
		rl.DrawText(line, borderPadding, y, fontSize, rl.White)
		y += lineHeight
	}

	rl.EndDrawing()
}

func (r *Renderer) DrawGame(snap game.Snapshot) {
	rl.BeginDrawing()
	rl.ClearBackground(rl.Black)
	r.drawBoard(snap)
	rl.EndDrawing()
}

func (r *Renderer) DrawPause(snap game.Snapshot) {
	rl.BeginDrawing()
	rl.ClearBackground(rl.Black)
	r.drawCentered(pauseQuestion, r.screenHeight/2-lineHeight, fontSize, rl.White)
	r.drawCentered(pauseHint, r.screenHeight/2+lineHeight, fontSize, rl.White)
	rl.EndDrawing()
}

func (r *Renderer) DrawGameOver(score int) {
	rl.BeginDrawing()
	rl.ClearBackground(background)
	r.drawCentered(gameOverLine(score), r.screenHeight/2-lineHeight, fontSize, rl.White)
	rl.EndDrawing()
}

func (r *Renderer) drawBoard(snap game.Snapshot) {
	for _, p := range snap.Body {
		color := snakeColor
		if snap.Rainbow {
			color = rl.Color{R: RainbowChannel(r.rng), G: RainbowChannel(r.rng), B: RainbowChannel(r.rng), A: 255}
		}
		r.drawCell(p, color)
	}

	for _, p := range snap.Obstacles {
		r.drawCell(p, obstacleColor)
	}

	r.drawCell(snap.Apple, appleColor)
	if snap.Pill != nil {
		r.drawCell(*snap.Pill, pillColor)
	}
	if snap.FastPill != nil {
		r.drawCell(*snap.FastPill, fastPillColor)
	}

	rl.DrawText(scoreLine(snap.Score), borderPadding, borderPadding, fontSize, rl.White)

	if snap.SpeedBoost {
		for i := int32(0); i < boostWidth; i++ {
			rl.DrawRectangleLines(i, i, r.screenWidth-2*i, r.screenHeight-2*i, boostColor)
		}
	}
}

// drawCell skips cells off the board; walk obstacles may leave it.
func (r *Renderer) drawCell(p types.Point, color rl.Color) {
	x := int32(p.X) * r.cellSize
	y := int32(p.Y) * r.cellSize
	if x < 0 || y < 0 || x >= r.screenWidth || y >= r.screenHeight {
		return
	}
	rl.DrawRectangle(x, y, r.cellSize, r.cellSize, color)
}

func (r *Renderer) drawCentered(text string, y, size int32, color rl.Color) {
	width := rl.MeasureText(text, size)
	rl.DrawText(text, (r.screenWidth-width)/2, y, size, color)
}
