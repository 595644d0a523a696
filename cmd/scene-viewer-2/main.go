// Command scene-viewer-2 renders a running scene with ebiten: entities
// on a tile grid, the message stream below.
package main

import (
	"fmt"
	"image/color"
	"log"
	"strings"

	"github.com/hajimehoshi/bitmapfont/v3"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/azurelit/groundvm/cli"
	"github.com/azurelit/groundvm/op"
	"github.com/azurelit/groundvm/vm"
)

var fontFace = text.NewGoXFace(bitmapfont.Face)

const initialScreenWidth, initialScreenHeight = 1024, 768

const tileSize = 24

const maxLogLines = 12

var kindColors = map[op.RoutineKind]color.RGBA{
	op.RoutineActor:     {R: 0x66, G: 0xdd, B: 0x66, A: 0xff},
	op.RoutineObject:    {R: 0x66, G: 0x99, B: 0xee, A: 0xff},
	op.RoutinePerformer: {R: 0xcc, G: 0x66, B: 0xcc, A: 0xff},
}

// Game implements ebiten.Game interface.
type Game struct {
	v *vm.VM

	logLines []string
	paused   bool
	finished bool
}

// Update proceeds the game state.
// Update is called every tick (1/60 [s] by default).
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	step := inpututil.IsKeyJustPressed(ebiten.KeyN)
	if (g.paused && !step) || g.finished {
		g.drainMessages()
		return nil
	}

	if g.v.Done() {
		g.finished = true
		g.logLines = append(g.logLines, "scene end")
		return nil
	}
	if err := g.v.Tick(); err != nil {
		return fmt.Errorf("failed to execute frame: %w", err)
	}
	g.drainMessages()
	return nil
}

func (g *Game) drainMessages() {
	for {
		select {
		case msg := <-g.v.Messages:
			line := fmt.Sprintf("%s: %s", msg.Type, msg.Text)
			if msg.Routine != nil {
				line = fmt.Sprintf("[%s] %s", msg.Routine, line)
			}
			g.logLines = append(g.logLines, line)
			if len(g.logLines) > maxLogLines {
				g.logLines = g.logLines[len(g.logLines)-maxLogLines:]
			}
		default:
			return
		}
	}
}

func (g *Game) drawEntity(screen *ebiten.Image, kind op.RoutineKind, slot int, c color.RGBA) {
	ent, err := g.v.Registry.Entity(kind, slot)
	if err != nil || !g.v.Registry.Enabled(kind, slot) {
		return
	}
	center := ent.CollisionCenter()
	x := float32(center.X * tileSize)
	y := float32(center.Y * tileSize)
	vector.DrawFilledRect(screen, x, y, tileSize-2, tileSize-2, c, false)

	textOp := &text.DrawOptions{}
	textOp.GeoM.Translate(float64(x), float64(y)+tileSize)
	textOp.ColorScale.ScaleWithColor(c)
	text.Draw(screen, fmt.Sprintf("%s%d:%s", kind.String()[:1], slot, ent.Direction()), fontFace, textOp)
}

// Draw draws the game screen.
// Draw is called every frame (typically 1/60[s] for 60Hz display).
func (g *Game) Draw(screen *ebiten.Image) {
	for kind, c := range kindColors {
		for slot := 0; slot < kind.Capacity(); slot++ {
			g.drawEntity(screen, kind, slot, c)
		}
	}

	status := fmt.Sprintf("scene %q  frame %d  [space] pause  [n] step", g.v.Scene.Name, g.v.Frame)
	if g.paused {
		status += "  (paused)"
	}
	textOp := &text.DrawOptions{}
	textOp.LineSpacing = fontFace.Metrics().HLineGap + fontFace.Metrics().HAscent + fontFace.Metrics().HDescent
	textOp.GeoM.Translate(8, float64(initialScreenHeight)-16*(maxLogLines+2))
	textOp.ColorScale.ScaleWithColor(color.RGBA{R: 255, G: 255, B: 255, A: 255})
	text.Draw(screen, status+"\n"+strings.Join(g.logLines, "\n"), fontFace, textOp)
}

// Layout takes the outside size (e.g., the window size) and returns the (logical) screen size.
// If you don't have to adjust the screen size with the outside size, just return a fixed size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	return initialScreenWidth, initialScreenHeight
}

func main() {
	opts, err := cli.ParseConfig()
	if err != nil {
		log.Fatalf("Failed to parse CLI config: %s.", err)
	}

	v := vm.NewVM(opts.Config)
	if err := v.LoadScene(opts.Scene); err != nil {
		log.Fatalf("Failed to load scene: %s.", err)
	}

	ebiten.SetWindowSize(initialScreenWidth, initialScreenHeight)
	ebiten.SetWindowTitle("groundvm - " + v.Scene.Name)
	if err := ebiten.RunGame(&Game{v: v, paused: true}); err != nil {
		log.Fatalf("Failed to run game: %s.", err)
	}
}
