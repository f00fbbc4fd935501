package modes

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"folio/internal/ui/input/types"
)

// PagerMode maps keys to navigation requests for a paged screen
type PagerMode struct {
	name     string
	bindings []pagerBinding
}

type pagerBinding struct {
	binding key.Binding
	request types.Request
}

// NewCarouselMode binds only the previous/next slide keys
func NewCarouselMode(prev, next key.Binding) *PagerMode {
	return &PagerMode{
		name: "carousel",
		bindings: []pagerBinding{
			{prev, types.RequestRetreat},
			{next, types.RequestAdvance},
		},
	}
}

// NewCalendarMode binds month paging and the jump to today
func NewCalendarMode(prev, next, today key.Binding) *PagerMode {
	return &PagerMode{
		name: "calendar",
		bindings: []pagerBinding{
			{prev, types.RequestRetreat},
			{next, types.RequestAdvance},
			{today, types.RequestToday},
		},
	}
}

func (m *PagerMode) Name() string {
	return m.name
}

func (m *PagerMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	for _, b := range m.bindings {
		if key.Matches(msg, b.binding) {
			return []types.Action{types.NavigateAction{Request: b.request}}, true
		}
	}
	return nil, false
}
