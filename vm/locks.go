package vm

// LockManager implements cooperative suspension keyed by small integer
// lock ids. Neither an Unlock nor a hold release wakes anyone
// immediately: both are recorded and applied by HandleUnlocks at the
// start of the next frame, before the dispatch pass, so resumption
// order is always the fixed entity table order regardless of which
// routine issued the release.
type LockManager struct {
	pending map[int]struct{}
	release []*Routine
}

func NewLockManager() *LockManager {
	return &LockManager{pending: map[int]struct{}{}}
}

// Lock records the id on the routine and marks it waiting. The lock
// opcode advances the program counter first, so a resumed routine
// continues at the opcode immediately following its lock call.
func (lm *LockManager) Lock(r *Routine, id int) {
	r.LockID = id
	r.yield = true
}

// Unlock schedules a wake-up of every routine waiting on id.
func (lm *LockManager) Unlock(id int) {
	lm.pending[id] = struct{}{}
}

// ReleaseHold schedules clearing the routine's hold at the next frame
// boundary.
func (lm *LockManager) ReleaseHold(r *Routine) {
	lm.release = append(lm.release, r)
}

// HandleUnlocks applies pending unlocks and hold releases against the
// given routines, which must be in entity-table order: multiple
// waiters on one id resume in that order. Called once per frame before
// dispatch.
func (lm *LockManager) HandleUnlocks(routines []*Routine) {
	for _, r := range lm.release {
		r.Held = false
	}
	lm.release = lm.release[:0]
	if len(lm.pending) == 0 {
		return
	}
	for _, r := range routines {
		if r.LockID < 0 {
			continue
		}
		if _, ok := lm.pending[r.LockID]; ok {
			r.LockID = -1
		}
	}
	clear(lm.pending)
}
