package domain

import "fmt"

// RowState is the client-observable state of one product row
type RowState string

const (
	RowUnclassified RowState = "unclassified"
	RowClassifying  RowState = "classifying"
	RowClassified   RowState = "classified"
	RowSaving       RowState = "saving"
	RowSaved        RowState = "saved"
)

// RowEvent drives a RowState transition
type RowEvent string

const (
	EventClassify       RowEvent = "classify"
	EventClassified     RowEvent = "classified"
	EventClassifyFailed RowEvent = "classify_failed"
	EventSave           RowEvent = "save"
	EventSaved          RowEvent = "saved"
	EventSaveFailed     RowEvent = "save_failed"
)

// Action is a user action offered for a row
type Action string

const (
	ActionClassify Action = "classify"
	ActionSave     Action = "save"
)

// Next returns the state after event. A failed classification or save
// returns the row to the state it had before the attempt, which is why
// the previous stable state is passed in; it must be unclassified,
// classified or saved.
func (s RowState) Next(event RowEvent, previous RowState) (RowState, error) {
	switch {
	case event == EventClassify && s.stable():
		return RowClassifying, nil
	case s == RowClassifying && event == EventClassified:
		return RowClassified, nil
	case s == RowClassifying && event == EventClassifyFailed && previous.stable():
		return previous, nil
	case s == RowClassified && event == EventSave:
		return RowSaving, nil
	case s == RowSaving && event == EventSaved:
		return RowSaved, nil
	case s == RowSaving && event == EventSaveFailed:
		return RowClassified, nil
	}
	return s, fmt.Errorf("%w: %s on %s", ErrInvalidTransition, event, s)
}

// Actions lists what the user may do with a row in state s.
// Save is only offered for an unsaved classification.
func (s RowState) Actions() []Action {
	switch s {
	case RowUnclassified, RowSaved:
		return []Action{ActionClassify}
	case RowClassified:
		return []Action{ActionClassify, ActionSave}
	default:
		return []Action{}
	}
}

func (s RowState) stable() bool {
	return s == RowUnclassified || s == RowClassified || s == RowSaved
}
