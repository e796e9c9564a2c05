package ports

import "valueguard/internal/core/domain/model/holder"

// CleanupRegistry attaches deferred cleanup to holders. The cleanup runs at
// some point after the holder is no longer referenced, without any further
// call from the code that registered it.
//
// Implementations must refuse holders that fail Validate, so cleanup can only
// ever observe fully constructed instances.
type CleanupRegistry interface {
	Register(h *holder.Holder) error
}
