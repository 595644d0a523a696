// Command scene-viewer runs a scene in a terminal UI: the packed value
// record, the routine table and the message stream, frame by frame.
package main

import (
	"context"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/azurelit/groundvm/cli"
	"github.com/azurelit/groundvm/luabind"
	"github.com/azurelit/groundvm/op"
	"github.com/azurelit/groundvm/vm"
)

var kindColors = map[op.RoutineKind]tcell.Color{
	op.RoutineMaster:    tcell.ColorYellow,
	op.RoutineActor:     tcell.ColorLightGreen,
	op.RoutineObject:    tcell.ColorLightBlue,
	op.RoutinePerformer: tcell.ColorOrchid,
}

func NewGame(ctx context.Context, v *vm.VM) *Game {
	app := tview.NewApplication().EnableMouse(true)

	newTextView := func(text string) *tview.TextView {
		return tview.NewTextView().
			SetDynamicColors(true).
			SetText(text)
	}

	recordView := tview.NewTable().SetBorders(false)

	logsView := newTextView("")
	logsView.SetTitle("Messages").SetBorder(true)
	logsView.ScrollToEnd()

	routineListView := tview.NewTable().SetBorders(false)
	routineListView.SetTitle("Routines").SetBorder(true)

	stateView := newTextView("State")
	stateView.SetTitle("State").SetBorder(true)

	rightPane := tview.NewFlex().SetDirection(tview.FlexRow)
	rightPane.
		AddItem(stateView, 0, 1, false).
		AddItem(logsView, 0, 2, false).
		AddItem(routineListView, 0, 3, false)

	recordPane := tview.NewFlex()
	recordPane.SetBorder(true)
	recordPane.SetTitle("Value Store")
	recordPane.AddItem(recordView, 0, 1, false)

	flex := tview.NewFlex().
		AddItem(recordPane, 0, 3, true).
		AddItem(rightPane, 0, 2, false)

	pages := tview.NewPages()
	pages.AddPage("main", flex, true, true)

	ctx, cancel := context.WithCancel(ctx)

	return &Game{
		app: app,

		root: pages,

		recordView:      recordView,
		routineListView: routineListView,
		stateView:       stateView,
		logsView:        logsView,

		v:      v,
		ctx:    ctx,
		cancel: cancel,

		paused: true,
	}
}

type Game struct {
	app *tview.Application

	root *tview.Pages

	recordView      *tview.Table
	routineListView *tview.Table
	stateView       *tview.TextView
	logsView        *tview.TextView

	v *vm.VM

	paused   bool
	pausedMu sync.Mutex

	nextStep   bool
	nextStepMu sync.Mutex

	ctx    context.Context
	cancel context.CancelFunc
}

func (g *Game) Stop() {
	g.app.Stop()
	g.cancel()
}

func (g *Game) Init() {
	f := func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyCtrlC, tcell.KeyEscape:
			g.Stop()
			return nil
		}
		switch event.Rune() {
		case 'n':
			g.nextStepMu.Lock()
			g.nextStep = true
			g.nextStepMu.Unlock()
			return nil
		case ' ':
			g.pausedMu.Lock()
			g.paused = !g.paused
			g.pausedMu.Unlock()
			return nil
		case 'q':
			g.Stop()
			return nil
		}
		return event
	}
	g.root.SetInputCapture(f)
	go func() {
	loop:
		select {
		case msg := <-g.v.Messages:
			g.app.QueueUpdateDraw(func() {
				colorCode := "[" + tcell.ColorDefault.String() + ":::]"
				if msg.Routine != nil {
					if c, ok := kindColors[msg.Routine.Kind]; ok {
						colorCode = "[" + c.String() + ":::]"
					}
					fmt.Fprintf(g.logsView, "%s[%s] %s: %s[:::]\n", colorCode, msg.Routine, msg.Type, strings.TrimSuffix(msg.Text, "\n"))
				} else {
					fmt.Fprintf(g.logsView, "%s%s: %s[:::]\n", colorCode, msg.Type, strings.TrimSuffix(msg.Text, "\n"))
				}
			})
		case <-g.ctx.Done():
			return
		}
		goto loop
	}()
}

// Update runs one scheduler frame unless paused.
func (g *Game) Update() error {
	isPaused := func() bool {
		g.pausedMu.Lock()
		defer g.pausedMu.Unlock()
		return g.paused
	}
	forceNextStep := func() bool {
		g.nextStepMu.Lock()
		defer g.nextStepMu.Unlock()
		if g.nextStep {
			g.nextStep = false
			return true
		}
		return false
	}
	if !forceNextStep() && isPaused() {
		return nil
	}

	if err := g.v.Tick(); err != nil {
		return fmt.Errorf("failed to execute frame: %w", err)
	}
	return nil
}

func (g *Game) drawRoutineList() {
	routines := g.v.Registry.Routines()
	g.routineListView.Clear()
	for i, elem := range []string{
		"routine",
		"pc",
		"lock",
		"timer",
		"state",
	} {
		cell := tview.NewTableCell(elem).
			SetAttributes(tcell.AttrBold).
			SetAlign(tview.AlignCenter)
		g.routineListView.SetCell(0, i, cell).SetFixed(1, i)
	}

	row := 1
	for _, r := range routines {
		if !g.v.Registry.Enabled(r.Kind, r.Slot) {
			continue
		}
		state := "run"
		switch {
		case r.Done:
			state = "done"
		case r.Held:
			state = "held"
		case r.LockID >= 0:
			state = "locked"
		case r.Timer > 0:
			state = "wait"
		}
		for j, content := range []any{
			r.String(),
			fmt.Sprintf("%04x", r.States[0].PC),
			r.LockID,
			r.Timer,
			state,
		} {
			cell := tview.NewTableCell(fmt.Sprint(content)).SetAlign(tview.AlignRight)
			if c, ok := kindColors[r.Kind]; ok {
				cell.SetTextColor(c)
			}
			g.routineListView.SetCell(row, j, cell)
		}
		row++
	}
}

func (g *Game) drawState() {
	sv := g.stateView
	sv.Clear()

	fmt.Fprintf(sv, "Scene: %s\n", g.v.Scene.Name)
	fmt.Fprintf(sv, "Frame: %d\n", g.v.Frame)
	fmt.Fprintf(sv, "Opcode budget: %d\n", g.v.Config.OpcodeBudget)
	fmt.Fprintf(sv, "Blob size: %d\n", len(g.v.Scene.Blob))
	fmt.Fprintf(sv, "Coroutines: %d\n", len(g.v.Scene.Commons))
}

func (g *Game) drawRecord() {
	const width = 32
	record := g.v.Values.Bytes()
	for i, elem := range record {
		cell := tview.NewTableCell(fmt.Sprintf("%02x", elem))
		if elem == 0 {
			cell.SetTextColor(tcell.ColorDimGray)
			cell.SetAttributes(tcell.AttrDim)
		} else {
			cell.SetTextColor(tcell.ColorLightGreen)
		}
		g.recordView.SetCell(i/width, i%width, cell)
	}
}

func (g *Game) Draw() {
	g.drawRecord()
	g.drawState()
	g.drawRoutineList()
}

func main() {
	opts, err := cli.ParseConfig()
	if err != nil {
		log.Fatalf("Failed to parse CLI config: %s.", err)
	}

	v := vm.NewVM(opts.Config)
	if opts.LuaPath != "" {
		b := luabind.New(v)
		defer b.Close()
		if err := b.DoFile(opts.LuaPath); err != nil {
			log.Fatalf("Failed to load lua bindings: %s.", err)
		}
	}
	if err := v.LoadScene(opts.Scene); err != nil {
		log.Fatalf("Failed to load scene: %s.", err)
	}

	g := NewGame(context.Background(), v)
	g.Init()
	g.Draw()

	go func() {
		ticker := time.NewTicker(opts.Config.FrameDuration)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				g.app.QueueUpdateDraw(func() {
					if err := g.Update(); err != nil {
						fmt.Fprintf(g.logsView, "%s\n", err)
						return
					}
					g.Draw()
				})
			case <-g.ctx.Done():
				return
			}
		}
	}()

	if err := g.app.SetRoot(g.root, true).Run(); err != nil {
		log.Fatalf("Failed to run application: %s.", err)
	}
}
