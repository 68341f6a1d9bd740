package model

// Pull request event actions the pipeline reacts to. Anything else is a
// soft no-op: logged and ignored without error.
const (
	ActionOpened      = "opened"
	ActionReopened    = "reopened"
	ActionSynchronize = "synchronize"
)

// ChangeEvent describes why the run was triggered and which revisions are
// involved. It is constructed once from the workflow event payload and
// never mutated.
type ChangeEvent struct {
	Action string
	Owner  string
	Repo   string
	Number int

	// Before and After are the head SHAs on either side of a synchronize
	// event. Empty for opened/reopened events.
	Before string
	After  string
}

// Supported reports whether the pipeline handles this event's action.
func (e ChangeEvent) Supported() bool {
	switch e.Action {
	case ActionOpened, ActionReopened, ActionSynchronize:
		return true
	}
	return false
}

// FullRange reports whether the event reviews the PR's entire diff
// (opened/reopened) rather than the range between two head revisions.
func (e ChangeEvent) FullRange() bool {
	return e.Action != ActionSynchronize
}

// PRContext is the pull request metadata embedded in every chunk prompt.
// Fetched once per run; read-only afterwards.
type PRContext struct {
	Owner       string
	Repo        string
	Number      int
	Title       string
	Description string
}
