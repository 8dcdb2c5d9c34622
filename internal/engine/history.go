package engine

import (
	"fmt"
	"strconv"

	"go.uber.org/zap"

	"gotodir/internal/model"
	"gotodir/internal/protocol"
	"gotodir/internal/store"
)

// PushHistory puts path (default: the cwd) on top of the history stack at
// full priority. Only existing directories are pushed.
func (e *Engine) PushHistory(path string) (protocol.Result, error) {
	path = e.normalize(path)
	if err := model.ValidatePath(path); err != nil {
		return protocol.Result{}, err
	}
	if !e.opts.Exists(path) {
		return protocol.Result{}, fmt.Errorf("%w: %s is not a directory", model.ErrInvalidArgument, path)
	}
	stack, err := e.store.LoadHistory()
	if err != nil {
		return protocol.Result{}, err
	}
	stack.Push(e.entry(path))
	if err := e.store.SaveHistory(stack); err != nil {
		return protocol.Result{}, err
	}
	return protocol.Value("pushed " + path), nil
}

// PopHistory removes the top entry and navigates to it. Entries whose
// directory is gone are discarded when skip_missing is on. An empty stack
// navigates home.
func (e *Engine) PopHistory() (protocol.Result, error) {
	stack, err := e.store.LoadHistory()
	if err != nil {
		return protocol.Result{}, err
	}

	dest := e.cfg.Home
	popped := 0
	for {
		top, ok := stack.Pop()
		if !ok {
			break
		}
		popped++
		if e.cfg.SkipMissing && !e.opts.Exists(top.Path) {
			e.log.Debug("skipping vanished history entry", zap.String("path", top.Path))
			continue
		}
		dest = top.Path
		break
	}

	if popped > 0 {
		if err := e.store.SaveHistory(stack); err != nil {
			return protocol.Result{}, err
		}
	}
	if !protocol.Safe(dest) {
		return protocol.Result{}, fmt.Errorf("%w: path %q cannot be navigated to", model.ErrInvalidArgument, dest)
	}
	return e.cd(dest), nil
}

// AdjustPriority adds delta to one entry, addressed by index (0 = top) or
// by path. The result is clamped to [0, priority_ceiling].
func (e *Engine) AdjustPriority(target string, delta int) (protocol.Result, error) {
	stack, err := e.store.LoadHistory()
	if err != nil {
		return protocol.Result{}, err
	}
	i := e.historyIndex(stack, target)
	if i < 0 {
		return protocol.Result{}, fmt.Errorf("%w: history entry %s", model.ErrNotFound, target)
	}
	entry, err := stack.Adjust(i, delta, e.cfg.PriorityCeiling)
	if err != nil {
		return protocol.Result{}, err
	}
	if err := e.store.SaveHistory(stack); err != nil {
		return protocol.Result{}, err
	}
	return protocol.Value(fmt.Sprintf("%s: priority %d", entry.Path, entry.Priority)), nil
}

func (e *Engine) historyIndex(stack *store.HistoryStack, target string) int {
	if i, err := strconv.Atoi(target); err == nil {
		if _, ok := stack.At(i); ok {
			return i
		}
		return -1
	}
	return stack.IndexOf(e.normalize(target))
}

// Decay lowers every priority by delta; a negative delta means decay_step.
func (e *Engine) Decay(delta int) (protocol.Result, error) {
	if delta < 0 {
		delta = e.cfg.DecayStep
	}
	stack, err := e.store.LoadHistory()
	if err != nil {
		return protocol.Result{}, err
	}
	expired := stack.Decay(delta)
	if err := e.store.SaveHistory(stack); err != nil {
		return protocol.Result{}, err
	}
	return protocol.Value(fmt.Sprintf("decayed %d entries by %d, %d expired", stack.Len(), delta, expired)), nil
}

// Reset restores every priority to the ceiling.
func (e *Engine) Reset() (protocol.Result, error) {
	stack, err := e.store.LoadHistory()
	if err != nil {
		return protocol.Result{}, err
	}
	stack.Reset(e.cfg.PriorityCeiling)
	if err := e.store.SaveHistory(stack); err != nil {
		return protocol.Result{}, err
	}
	return protocol.Value(fmt.Sprintf("reset %d entries to %d", stack.Len(), e.cfg.PriorityCeiling)), nil
}

// Prune drops expired entries and caps the stack at limit entries; a
// negative limit means history_max.
func (e *Engine) Prune(limit int) (protocol.Result, error) {
	if limit < 0 {
		limit = e.cfg.HistoryMax
	}
	stack, err := e.store.LoadHistory()
	if err != nil {
		return protocol.Result{}, err
	}
	removed := stack.Prune(limit)
	if removed > 0 {
		if err := e.store.SaveHistory(stack); err != nil {
			return protocol.Result{}, err
		}
	}
	return protocol.Value(fmt.Sprintf("pruned %d entries, %d left", removed, stack.Len())), nil
}
