package entities

// BuildVersion is the released version of cargobump, set at link time with
// -ldflags "-X github.com/rios0rios0/cargobump/internal/domain/entities.BuildVersion=...".
//
//nolint:gochecknoglobals // set by the linker
var BuildVersion = "dev"
