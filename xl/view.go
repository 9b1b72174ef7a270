package xl

import "fmt"

// PaneID identifies one of the four panes of a split or frozen view.
type PaneID int

const (
	PaneBottomRight PaneID = iota
	PaneTopRight
	PaneBottomLeft
	PaneTopLeft
)

func (p PaneID) xmlValue() (string, error) {
	switch p {
	case PaneBottomRight:
		return "bottomRight", nil
	case PaneTopRight:
		return "topRight", nil
	case PaneBottomLeft:
		return "bottomLeft", nil
	case PaneTopLeft:
		return "topLeft", nil
	}
	return "", unsupported("pane", int(p))
}

type PaneState int

const (
	PaneSplit PaneState = iota
	PaneFrozen
	PaneFrozenSplit
)

func (s PaneState) xmlValue() (string, error) {
	switch s {
	case PaneSplit:
		return "split", nil
	case PaneFrozen:
		return "frozen", nil
	case PaneFrozenSplit:
		return "frozenSplit", nil
	}
	return "", unsupported("pane state", int(s))
}

// Pane describes the split of a sheet view. Nil fields are not written.
type Pane struct {
	XSplit      *int // columns left of the split
	YSplit      *int // rows above the split
	ActivePane  *PaneID
	State       *PaneState
	TopLeftCell string // first visible cell of the bottom-right pane
}

// Selection is the selected cell within one pane.
type Selection struct {
	ActivePane PaneID
	ActiveCell string
}

// SheetView is one view of a sheet. Excel only honors the first.
type SheetView struct {
	TabSelected *bool
	ShowRuler   *bool
	Pane        *Pane

	selections []Selection
}

// AddSelection adds a selection for a pane. Each pane holds at most one
// selection; if overwrite is false a second selection for the same pane
// fails with ErrDuplicateSelection, otherwise it replaces the first.
func (sv *SheetView) AddSelection(sel Selection, overwrite bool) error {
	if _, err := sel.ActivePane.xmlValue(); err != nil {
		return err
	}
	for i, s := range sv.selections {
		if s.ActivePane != sel.ActivePane {
			continue
		}
		if !overwrite {
			return fmt.Errorf("%w: %v", ErrDuplicateSelection, sel.ActivePane)
		}
		sv.selections = append(sv.selections[:i], sv.selections[i+1:]...)
		break
	}
	sv.selections = append(sv.selections, sel)
	return nil
}

func (sv *SheetView) Selections() []Selection {
	return sv.selections
}

func (p PaneID) String() string {
	if s, err := p.xmlValue(); err == nil {
		return s
	}
	return fmt.Sprintf("PaneID(%d)", int(p))
}
