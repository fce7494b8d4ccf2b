package usecase

import (
	"go.uber.org/fx"

	"github.com/movecrm/backoffice/internal/editor"
)

// Module provides core business use cases to the fx container.
var Module = fx.Provide(
	NewAuthUseCase,
	NewOrderUseCase,
	NewDirectoryUseCase,
	func(w *editor.Workflow) WorkflowGate { return w },
)
