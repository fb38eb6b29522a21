package ports

import "github.com/catalogadmin/console/internal/core/domain"

// View is the presentation collaborator. The console core calls it and never
// reads presentation state back.
type View interface {
	RenderList(kind domain.ResourceKind, items []domain.Entity)
	ShowError(form domain.Form, message string)
	ShowSuccess(message string)
	SwitchPanel(panel domain.Panel)
}
