package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestChangeEvent_Supported(t *testing.T) {
	assert.True(t, ChangeEvent{Action: ActionOpened}.Supported())
	assert.True(t, ChangeEvent{Action: ActionReopened}.Supported())
	assert.True(t, ChangeEvent{Action: ActionSynchronize}.Supported())
	assert.False(t, ChangeEvent{Action: "closed"}.Supported())
	assert.False(t, ChangeEvent{}.Supported())
}

func TestChangeEvent_FullRange(t *testing.T) {
	assert.True(t, ChangeEvent{Action: ActionOpened}.FullRange())
	assert.True(t, ChangeEvent{Action: ActionReopened}.FullRange())
	assert.False(t, ChangeEvent{Action: ActionSynchronize}.FullRange())
}
