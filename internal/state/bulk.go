package state

import (
	"path/filepath"
	"strconv"

	"github.com/kk-code-lab/beniya/internal/i18n"
	"github.com/sirupsen/logrus"
)

type bulkOp int

const (
	bulkMove bulkOp = iota
	bulkCopy
	bulkDelete
)

func (op bulkOp) String() string {
	switch op {
	case bulkMove:
		return "move"
	case bulkCopy:
		return "copy"
	default:
		return "delete"
	}
}

func (op bulkOp) keys() (title, confirm, summary i18n.MessageKey) {
	switch op {
	case bulkMove:
		return i18n.BulkMoveTitle, i18n.BulkMoveConfirm, i18n.BulkMoveSummary
	case bulkCopy:
		return i18n.BulkCopyTitle, i18n.BulkCopyConfirm, i18n.BulkCopySummary
	default:
		return i18n.BulkDeleteTitle, i18n.BulkDeleteConfirm, i18n.BulkDeleteSummary
	}
}

// BulkResult aggregates one bulk operation.
type BulkResult struct {
	Total    int
	Success  int
	Failures []string
}

func (b BulkResult) OK() bool {
	return len(b.Failures) == 0
}

// confirmTransfer asks before moving or copying the selection into the base
// directory. Without a selection it does nothing.
func (r *StateReducer) confirmTransfer(state *AppState, op bulkOp) bool {
	names := state.SelectedNames()
	if len(names) == 0 {
		return false
	}
	title, confirm, _ := op.keys()
	if state.BaseDir == "" {
		state.pushModal(&MessageModal{Title: r.msg(title), Lines: []string{r.msg(i18n.BulkNoBaseDir)}, Tone: ToneWarning})
		return true
	}
	lines := []string{r.msg(confirm, "count", len(names), "dest", state.BaseDir)}
	state.pushModal(&ConfirmModal{
		Title: r.msg(title),
		Lines: append(lines, indentNames(names)...),
		OnAccept: func(r *StateReducer, s *AppState) {
			r.finishBulk(s, op, r.transfer(s, op, s.SelectedNames()))
		},
	})
	return true
}

// confirmDelete shows the destructive confirmation with a bell.
func (r *StateReducer) confirmDelete(state *AppState) bool {
	names := state.SelectedNames()
	if len(names) == 0 {
		return false
	}
	title, confirm, _ := bulkDelete.keys()
	lines := []string{r.msg(confirm, "count", len(names))}
	lines = append(lines, indentNames(names)...)
	lines = append(lines, "", r.msg(i18n.BulkDeleteWarning))
	state.pushModal(&ConfirmModal{
		Title: r.msg(title),
		Lines: lines,
		Tone:  ToneError,
		OnAccept: func(r *StateReducer, s *AppState) {
			r.finishBulk(s, bulkDelete, r.deleteSelected(s, s.SelectedNames()))
		},
	})
	state.ringBell()
	return true
}

// transfer moves or copies each name into the base directory. Existing
// destinations are never overwritten.
func (r *StateReducer) transfer(state *AppState, op bulkOp, names []string) BulkResult {
	result := BulkResult{Total: len(names)}
	for _, name := range names {
		src := filepath.Join(state.Dir.Path, name)
		dst := filepath.Join(state.BaseDir, name)
		entry := r.log.WithFields(logrus.Fields{"op": op.String(), "name": name, "path": dst})

		if r.deps.Files.Exists(dst) {
			entry.Warn("destination exists")
			result.Failures = append(result.Failures, r.msg(i18n.BulkDestExists, "name", name))
			continue
		}
		var err error
		if op == bulkMove {
			err = r.deps.Files.Move(src, dst)
		} else {
			err = r.deps.Files.Copy(src, dst)
		}
		if err != nil {
			entry.WithError(err).Warn("bulk item failed")
			result.Failures = append(result.Failures, name+": "+reasonOf(err))
			continue
		}
		result.Success++
	}
	return result
}

// deleteSelected removes each name and classifies the outcome by checking
// the path afterwards, not by the call's return value alone.
func (r *StateReducer) deleteSelected(state *AppState, names []string) BulkResult {
	result := BulkResult{Total: len(names)}
	for _, name := range names {
		path := filepath.Join(state.Dir.Path, name)
		entry := r.log.WithFields(logrus.Fields{"op": bulkDelete.String(), "name": name, "path": path})

		if !r.deps.Files.Exists(path) {
			entry.Warn("item not found")
			result.Failures = append(result.Failures, r.msg(i18n.BulkNotFound, "name", name))
			continue
		}
		if err := r.deps.Files.Remove(path); err != nil {
			entry.WithError(err).Warn("bulk item failed")
			result.Failures = append(result.Failures, name+": "+reasonOf(err))
			continue
		}
		if r.deps.Files.Exists(path) {
			entry.Warn("item still exists")
			result.Failures = append(result.Failures, r.msg(i18n.BulkStillExists, "name", name))
			continue
		}
		result.Success++
	}
	return result
}

// finishBulk clears the selection, relists and reports the result.
func (r *StateReducer) finishBulk(state *AppState, op bulkOp, result BulkResult) {
	state.clearSelection()
	r.refresh(state)

	r.log.WithFields(logrus.Fields{
		"op":      op.String(),
		"success": result.Success,
		"total":   result.Total,
	}).Info("bulk operation finished")

	_, _, summary := op.keys()
	tone, verdict := ToneSuccess, r.msg(i18n.BulkAllSucceeded)
	if !result.OK() {
		tone, verdict = ToneError, r.msg(i18n.BulkSomeFailed)
	}
	lines := []string{r.msg(summary, "success", result.Success, "total", result.Total), verdict}
	if len(result.Failures) > 0 {
		lines = append(lines, "")
		lines = append(lines, result.Failures...)
	}
	state.pushModal(&BulkResultModal{
		MessageModal: MessageModal{Title: r.msg(i18n.BulkResultTitle), Lines: lines, Tone: tone},
		Result:       result,
	})
}

// BulkResultModal is the acknowledgement shown after a bulk operation.
type BulkResultModal struct {
	MessageModal
	Result BulkResult
}

const maxListedNames = 8

func indentNames(names []string) []string {
	lines := make([]string, 0, min(len(names), maxListedNames)+1)
	for i, name := range names {
		if i == maxListedNames {
			lines = append(lines, "  ... +"+strconv.Itoa(len(names)-maxListedNames))
			break
		}
		lines = append(lines, "  "+name)
	}
	return lines
}
