package in

import (
	"context"

	storein "mindmate/internal/modules/store/port/in"
)

type CLIHandler struct {
	docs storein.Documents
}

func NewCLIHandler(docs storein.Documents) CLIHandler {
	return CLIHandler{docs: docs}
}

// Dump returns the whole document as indented JSON.
func (h CLIHandler) Dump(ctx context.Context) ([]byte, error) {
	return h.docs.Export(ctx)
}
