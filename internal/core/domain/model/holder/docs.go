// Package holder provides the Holder entity: a PositiveValue with an identity.
//
// A Holder is the first object in the model that has identity in both senses
// the runtime cares about: a kernel.UUID that other code can look it up by, and
// a heap address that a cleanup mechanism such as runtime.AddCleanup can attach
// to. Every constructor in this package finishes all of its checks before it
// allocates the Holder or mints its UUID, so no cleanup can ever be attached to
// a Holder whose value is invalid.
package holder
