// Package action reads the workflow event payload that triggered the run
// and maps it onto the domain's ChangeEvent.
package action

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/diffwatch/reviewbot/internal/domain/model"
)

// payload mirrors the subset of the pull_request webhook payload the
// pipeline needs. Everything else in the document is ignored.
type payload struct {
	Action string `json:"action"`
	Number int    `json:"number"`
	Before string `json:"before"`
	After  string `json:"after"`

	PullRequest struct {
		Number int `json:"number"`
	} `json:"pull_request"`

	Repository struct {
		Name  string `json:"name"`
		Owner struct {
			Login string `json:"login"`
		} `json:"owner"`
	} `json:"repository"`
}

// LoadEvent reads and validates the event payload at path (normally the
// runner-provided GITHUB_EVENT_PATH). An unsupported action is not an
// error here; callers check ChangeEvent.Supported and no-op. Missing
// required fields are event-shape errors and fatal.
func LoadEvent(path string) (model.ChangeEvent, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return model.ChangeEvent{}, model.NewPipelineError(model.KindEventShape, "read event payload", err)
	}

	var p payload
	if err := json.Unmarshal(data, &p); err != nil {
		return model.ChangeEvent{}, model.NewPipelineError(model.KindEventShape, "decode event payload", err)
	}

	number := p.Number
	if number == 0 {
		number = p.PullRequest.Number
	}

	event := model.ChangeEvent{
		Action: p.Action,
		Owner:  p.Repository.Owner.Login,
		Repo:   p.Repository.Name,
		Number: number,
		Before: p.Before,
		After:  p.After,
	}

	if !event.Supported() {
		// Validated no further; the run logs and exits cleanly.
		return event, nil
	}

	if event.Owner == "" || event.Repo == "" || event.Number == 0 {
		return model.ChangeEvent{}, model.NewPipelineError(model.KindEventShape, "validate event payload",
			fmt.Errorf("missing repository owner, name, or PR number in %s event", event.Action))
	}
	if event.Action == model.ActionSynchronize && (event.Before == "" || event.After == "") {
		return model.ChangeEvent{}, model.NewPipelineError(model.KindEventShape, "validate event payload",
			fmt.Errorf("synchronize event missing before/after revisions"))
	}

	return event, nil
}
