package vm

import (
	"fmt"

	"github.com/azurelit/groundvm/op"
)

// Pos is a ground-plane position in map units.
type Pos struct {
	X, Y int32
}

// Rect is an axis-aligned collision box.
type Rect struct {
	Min, Max Pos
}

// Entity is the capability table shared by every entity kind. Opcode
// handlers and the scheduler go through this interface so they never
// branch on kind. Any new kind must supply every operation or be
// rejected at registration.
type Entity interface {
	ID() int
	SetID(int)
	Kind() op.RoutineKind

	CollisionBox() Rect
	CollisionCenter() Pos
	Height() int32
	SetHeight(int32)
	Direction() op.Direction
	SetDirection(op.Direction)
	Attributes() uint32
	SetAttributes(uint32)

	SetPosition(Pos)
	SetPositionInitial(Pos)
	SetPositionOffset(dx, dy int32)
	SetMovementRange(min, max Pos)
	SetAnimation(id int)
	AnimationDone() bool
	SetEffect(id int)
	EffectDone() bool
	SetBlink(on bool, period int)
}

// core carries the state shared by all entity variants and implements
// the capability table once. Variants embed it.
type core struct {
	id      int
	kind    op.RoutineKind
	Enabled bool

	pos        Pos
	initialPos Pos
	height     int32
	dir        op.Direction
	initialDir op.Direction
	attrs      uint32
	box        Rect
	limitMin   Pos
	limitMax   Pos

	anim       int
	animFrames int // Frames until the animation reports done.
	effect     int
	effFrames  int
	blink      bool
	blinkEvery int

	// In-flight Move2Position/Slide2Position.
	moving     bool
	moveTarget Pos
	moveSpeed  int32

	Routine Routine
}

func (c *core) ID() int                  { return c.id }
func (c *core) SetID(id int)             { c.id = id }
func (c *core) Kind() op.RoutineKind     { return c.kind }
func (c *core) Height() int32            { return c.height }
func (c *core) SetHeight(h int32)        { c.height = h }
func (c *core) Direction() op.Direction  { return c.dir }
func (c *core) Attributes() uint32       { return c.attrs }
func (c *core) SetAttributes(a uint32)   { c.attrs = a }
func (c *core) AnimationDone() bool      { return c.animFrames <= 0 }
func (c *core) EffectDone() bool         { return c.effFrames <= 0 }

func (c *core) SetDirection(d op.Direction) {
	c.dir = d % op.DirectionCount
}

func (c *core) CollisionBox() Rect {
	return Rect{
		Min: Pos{X: c.pos.X + c.box.Min.X, Y: c.pos.Y + c.box.Min.Y},
		Max: Pos{X: c.pos.X + c.box.Max.X, Y: c.pos.Y + c.box.Max.Y},
	}
}

func (c *core) CollisionCenter() Pos {
	b := c.CollisionBox()
	return Pos{X: (b.Min.X + b.Max.X) / 2, Y: (b.Min.Y + b.Max.Y) / 2}
}

// clampPos applies the movement range. Out-of-range positions clamp
// rather than abort.
func (c *core) clampPos(p Pos) Pos {
	if c.limitMin == (Pos{}) && c.limitMax == (Pos{}) {
		return p
	}
	if p.X < c.limitMin.X {
		p.X = c.limitMin.X
	}
	if p.Y < c.limitMin.Y {
		p.Y = c.limitMin.Y
	}
	if p.X > c.limitMax.X {
		p.X = c.limitMax.X
	}
	if p.Y > c.limitMax.Y {
		p.Y = c.limitMax.Y
	}
	return p
}

func (c *core) SetPosition(p Pos) {
	c.pos = c.clampPos(p)
	c.moving = false
}

func (c *core) SetPositionInitial(p Pos) {
	c.initialPos = p
	c.SetPosition(p)
}

func (c *core) SetPositionOffset(dx, dy int32) {
	c.SetPosition(Pos{X: c.pos.X + dx, Y: c.pos.Y + dy})
}

func (c *core) SetMovementRange(min, max Pos) {
	c.limitMin, c.limitMax = min, max
	c.pos = c.clampPos(c.pos)
}

func (c *core) SetAnimation(id int) {
	c.anim = id
	// Without the sprite file the real duration is unknowable; model
	// a short fixed clip so WaitAnimation has something to wait on.
	c.animFrames = 8
}

func (c *core) SetEffect(id int) {
	c.effect = id
	c.effFrames = 16
}

func (c *core) SetBlink(on bool, period int) {
	c.blink = on
	c.blinkEvery = period
}

func (c *core) moveTo(target Pos, speed int32) {
	if speed <= 0 {
		speed = 1
	}
	c.moveTarget = c.clampPos(target)
	c.moveSpeed = speed
	c.moving = c.moveTarget != c.pos
}

func step1(cur, want, speed int32) int32 {
	switch {
	case cur+speed < want:
		return cur + speed
	case cur-speed > want:
		return cur - speed
	default:
		return want
	}
}

// tick advances per-frame entity simulation: in-flight movement and
// animation/effect countdowns.
func (c *core) tick() {
	if c.moving {
		c.pos.X = step1(c.pos.X, c.moveTarget.X, c.moveSpeed)
		c.pos.Y = step1(c.pos.Y, c.moveTarget.Y, c.moveSpeed)
		if c.pos == c.moveTarget {
			c.moving = false
		}
	}
	if c.animFrames > 0 {
		c.animFrames--
	}
	if c.effFrames > 0 {
		c.effFrames--
	}
}

// Moving reports whether a Move2Position/Slide2Position is in flight.
func (c *core) Moving() bool { return c.moving }

// Position returns the current ground position.
func (c *core) Position() Pos { return c.pos }

// Actor is a live character participating in a scene.
type Actor struct {
	core
	SpriteID int
}

// Object is a scenery prop with an optional routine.
type Object struct {
	core
	ObjectID int
}

// Performer is a scripted extra used by cutscene choreography.
type Performer struct {
	core
	PerformerType int
}

// Event is a trigger region. Events reference a coroutine id instead of
// owning live scripting state; the scheduler never steps them.
type Event struct {
	core
	CoroutineID uint16
}

// Compile-time capability checks: a kind missing any operation does not
// build.
var (
	_ Entity = (*Actor)(nil)
	_ Entity = (*Object)(nil)
	_ Entity = (*Performer)(nil)
	_ Entity = (*Event)(nil)
)

// Registry owns the fixed-capacity entity tables and the master
// routine. Slots are preallocated and reused; indices are stable
// handles for the lifetime of a session.
type Registry struct {
	Master Routine

	Actors     [op.MaxActors]Actor
	Objects    [op.MaxObjects]Object
	Performers [op.MaxPerformers]Performer
	Events     [op.MaxEvents]Event
}

func NewRegistry() *Registry {
	reg := &Registry{}
	reg.Master = Routine{Name: "master", Kind: op.RoutineMaster, LockID: -1}
	for i := range reg.Actors {
		reg.Actors[i].core = core{kind: op.RoutineActor}
		reg.Actors[i].Routine = Routine{Kind: op.RoutineActor, Slot: i, LockID: -1}
	}
	for i := range reg.Objects {
		reg.Objects[i].core = core{kind: op.RoutineObject}
		reg.Objects[i].Routine = Routine{Kind: op.RoutineObject, Slot: i, LockID: -1}
	}
	for i := range reg.Performers {
		reg.Performers[i].core = core{kind: op.RoutinePerformer}
		reg.Performers[i].Routine = Routine{Kind: op.RoutinePerformer, Slot: i, LockID: -1}
	}
	for i := range reg.Events {
		reg.Events[i].core = core{kind: op.RoutineEvent}
	}
	return reg
}

// Entity returns the capability view of (kind, slot).
func (reg *Registry) Entity(kind op.RoutineKind, slot int) (Entity, error) {
	if slot < 0 || slot >= kind.Capacity() {
		return nil, fmt.Errorf("%s slot %d out of range", kind, slot)
	}
	switch kind {
	case op.RoutineActor:
		return &reg.Actors[slot], nil
	case op.RoutineObject:
		return &reg.Objects[slot], nil
	case op.RoutinePerformer:
		return &reg.Performers[slot], nil
	case op.RoutineEvent:
		return &reg.Events[slot], nil
	default:
		return nil, fmt.Errorf("kind %s has no entity table", kind)
	}
}

func (reg *Registry) entityCore(kind op.RoutineKind, slot int) *core {
	if slot < 0 || slot >= kind.Capacity() {
		return nil
	}
	switch kind {
	case op.RoutineActor:
		return &reg.Actors[slot].core
	case op.RoutineObject:
		return &reg.Objects[slot].core
	case op.RoutinePerformer:
		return &reg.Performers[slot].core
	case op.RoutineEvent:
		return &reg.Events[slot].core
	default:
		return nil
	}
}

// RoutineAt returns the routine bound to (kind, slot), the master for
// RoutineMaster. Events own no routine.
func (reg *Registry) RoutineAt(kind op.RoutineKind, slot int) (*Routine, error) {
	if kind == op.RoutineMaster {
		return &reg.Master, nil
	}
	if kind == op.RoutineEvent {
		return nil, fmt.Errorf("events have no live routine")
	}
	if slot < 0 || slot >= kind.Capacity() {
		return nil, fmt.Errorf("%s slot %d out of range", kind, slot)
	}
	c := reg.entityCore(kind, slot)
	return &c.Routine, nil
}

// Routines returns every schedulable routine in fixed table order:
// master, actors, objects, performers. This order is the determinism
// contract for both dispatch and lock wake-ups.
func (reg *Registry) Routines() []*Routine {
	out := make([]*Routine, 0, 1+op.MaxActors+op.MaxObjects+op.MaxPerformers)
	out = append(out, &reg.Master)
	for i := range reg.Actors {
		out = append(out, &reg.Actors[i].Routine)
	}
	for i := range reg.Objects {
		out = append(out, &reg.Objects[i].Routine)
	}
	for i := range reg.Performers {
		out = append(out, &reg.Performers[i].Routine)
	}
	return out
}

// Enabled reports whether (kind, slot) participates in scheduling.
// The master is always enabled.
func (reg *Registry) Enabled(kind op.RoutineKind, slot int) bool {
	if kind == op.RoutineMaster {
		return true
	}
	c := reg.entityCore(kind, slot)
	return c != nil && c.Enabled
}

// Enable marks the slot live. Execution state is initialized fresh by
// the caller binding a routine; re-enabling never restores prior state.
func (reg *Registry) Enable(kind op.RoutineKind, slot int) error {
	c := reg.entityCore(kind, slot)
	if c == nil {
		return fmt.Errorf("%s has no entity table", kind)
	}
	c.Enabled = true
	return nil
}

// Disable immediately excludes the slot from scheduling and discards
// its routine's call-stack state. No graceful drain.
func (reg *Registry) Disable(kind op.RoutineKind, slot int) error {
	c := reg.entityCore(kind, slot)
	if c == nil {
		return fmt.Errorf("%s has no entity table", kind)
	}
	c.Enabled = false
	if kind != op.RoutineEvent {
		c.Routine.Reset(nil, nil, 0)
		c.Routine.Done = true
	}
	return nil
}

// Tick advances per-frame simulation for every enabled entity.
func (reg *Registry) Tick() {
	for i := range reg.Actors {
		if reg.Actors[i].Enabled {
			reg.Actors[i].tick()
		}
	}
	for i := range reg.Objects {
		if reg.Objects[i].Enabled {
			reg.Objects[i].tick()
		}
	}
	for i := range reg.Performers {
		if reg.Performers[i].Enabled {
			reg.Performers[i].tick()
		}
	}
}
