package events

import "github.com/atomicstack/pomotree/internal/logging"

type TreeTracer struct{}

type NavTracer struct{}

type RenameTracer struct{}

type FindTracer struct{}

type WatchTracer struct{}

type renameReason string

const (
	ReasonEscape renameReason = "escape"
	ReasonEmpty  renameReason = "empty"
)

var (
	Tree   = TreeTracer{}
	Nav    = NavTracer{}
	Rename = RenameTracer{}
	Find   = FindTracer{}
	Watch  = WatchTracer{}
)

func (TreeTracer) Expand(path string, added, length int) {
	logging.Trace("tree.expand", map[string]interface{}{"path": path, "added": added, "rows": length})
}

func (TreeTracer) Collapse(path string, removed, length int) {
	logging.Trace("tree.collapse", map[string]interface{}{"path": path, "removed": removed, "rows": length})
}

func (TreeTracer) ScanError(path string, err error) {
	logging.Trace("tree.scan-error", map[string]interface{}{"path": path, "error": err.Error()})
}

func (TreeTracer) Refresh(path string, length int) {
	logging.Trace("tree.refresh", map[string]interface{}{"path": path, "rows": length})
}

func (NavTracer) Cursor(cursor, length int) {
	logging.Trace("nav.cursor", map[string]interface{}{"cursor": cursor, "rows": length})
}

func (RenameTracer) Start(path string) {
	logging.Trace("rename.start", map[string]interface{}{"path": path})
}

func (RenameTracer) Submit(path, name string) {
	logging.Trace("rename.submit", map[string]interface{}{"path": path, "name": name})
}

func (RenameTracer) Cancel(path string, reason renameReason) {
	logging.Trace("rename.cancel", map[string]interface{}{"path": path, "reason": reason})
}

func (FindTracer) Query(query string, match int) {
	logging.Trace("find.query", map[string]interface{}{"query": query, "match": match})
}

func (WatchTracer) Change(dir, op string) {
	logging.Trace("watch.change", map[string]interface{}{"dir": dir, "op": op})
}

func (WatchTracer) Error(err error) {
	if err == nil {
		return
	}
	logging.Trace("watch.error", map[string]interface{}{"error": err.Error()})
}
